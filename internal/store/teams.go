package store

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/poloclub/polo-league/internal/models"
)

var teamColumns = map[string]bool{
	"name": true, "grade": true, "club_id": true, "created_at": true,
}

// CreateTeam inserts a new team.
func (s *Store) CreateTeam(t *models.Team) error {
	return s.db.Create(t).Error
}

// GetTeam fetches a team by ID with its club and current roster preloaded.
func (s *Store) GetTeam(id uuid.UUID) (*models.Team, error) {
	var t models.Team
	if err := s.db.Preload("Club").Preload("Players").First(&t, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

// UpdateTeam saves the full team record.
func (s *Store) UpdateTeam(t *models.Team) error {
	return s.db.Save(t).Error
}

// ListTeams returns teams matching the options.
func (s *Store) ListTeams(opts ListOptions) ([]models.Team, error) {
	var teams []models.Team
	err := applyList(s.db.Model(&models.Team{}), opts, teamColumns).Find(&teams).Error
	return teams, err
}

// AddPlayerToTeam puts a player on the team's roster. Adding an existing
// member is a no-op at the database level (the join row is keyed on both IDs).
func (s *Store) AddPlayerToTeam(teamID, playerID uuid.UUID) error {
	team := models.Team{ID: teamID}
	player := models.Player{ID: playerID}
	return s.db.Model(&team).Association("Players").Append(&player)
}

// RemovePlayerFromTeam takes a player off the roster. The player record
// itself is untouched — membership is a relationship, not ownership.
func (s *Store) RemovePlayerFromTeam(teamID, playerID uuid.UUID) error {
	team := models.Team{ID: teamID}
	player := models.Player{ID: playerID}
	return s.db.Model(&team).Association("Players").Delete(&player)
}

// DeleteTeam removes a team and resolves its relationships atomically:
//
//	cascade — every match the team played as Team A or Team B, including
//	          each match's statistic and chukker rows
//	nullify — roster memberships (the players survive) and award references
func (s *Store) DeleteTeam(id uuid.UUID) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		matchIDs, err := matchIDsWhere(tx, "team_a_id = ? OR team_b_id = ?", id, id)
		if err != nil {
			return err
		}
		if err := deleteMatchesTx(tx, matchIDs); err != nil {
			return err
		}
		if err := tx.Exec("DELETE FROM team_players WHERE team_id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.Award{}).Where("team_id = ?", id).
			Update("team_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Team{}, "id = ?", id).Error
	})
}
