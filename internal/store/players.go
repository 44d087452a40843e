package store

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/poloclub/polo-league/internal/models"
)

var playerColumns = map[string]bool{
	"name": true, "handicap": true, "nationality": true,
	"club_id": true, "user_id": true, "created_at": true,
}

// CreatePlayer inserts a new player. The handicap is clamped to [-2, 10] by
// the model's BeforeSave hook — out-of-range input is corrected, not rejected.
func (s *Store) CreatePlayer(p *models.Player) error {
	return s.db.Create(p).Error
}

// GetPlayer fetches a player by ID with club and roster memberships preloaded.
func (s *Store) GetPlayer(id uuid.UUID) (*models.Player, error) {
	var p models.Player
	if err := s.db.Preload("Club").Preload("Teams").First(&p, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

// UpdatePlayer saves the full player record, clamping the handicap on the way
// through the same BeforeSave hook that guards creation.
func (s *Store) UpdatePlayer(p *models.Player) error {
	return s.db.Save(p).Error
}

// ListPlayers returns players matching the options.
func (s *Store) ListPlayers(opts ListOptions) ([]models.Player, error) {
	var players []models.Player
	err := applyList(s.db.Model(&models.Player{}), opts, playerColumns).Find(&players).Error
	return players, err
}

// DeletePlayer removes a player and resolves every relationship the player
// participates in, atomically:
//
//	cascade — duties assigned to the player, and the player's statistic rows
//	nullify — roster memberships (the teams survive), award references
//
// The club and user back-references live on the player row itself, so they
// disappear with it.
func (s *Store) DeletePlayer(id uuid.UUID) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.Duty{}, "player_id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Delete(&models.PlayerStatistic{}, "player_id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Exec("DELETE FROM team_players WHERE player_id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.Award{}).Where("player_id = ?", id).
			Update("player_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Player{}, "id = ?", id).Error
	})
}
