package store

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/poloclub/polo-league/internal/models"
)

// AddPlayerStatistic records one player's participation in one match.
// MatchDate is denormalized from the match when the caller didn't set it.
// The composite unique index rejects a second row for the same (player, match).
func (s *Store) AddPlayerStatistic(row *models.PlayerStatistic) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if row.MatchDate.IsZero() {
			var m models.Match
			if err := tx.First(&m, "id = ?", row.MatchID).Error; err != nil {
				return err
			}
			row.MatchDate = m.Date
		}
		return tx.Create(row).Error
	})
}

// PlayerStatistics returns a player's participation rows, oldest first.
func (s *Store) PlayerStatistics(playerID uuid.UUID) ([]models.PlayerStatistic, error) {
	var rows []models.PlayerStatistic
	err := s.db.Where("player_id = ?", playerID).
		Order("match_date, created_at").Find(&rows).Error
	return rows, err
}

// DeletePlayerStatistic removes a single participation row.
func (s *Store) DeletePlayerStatistic(id uuid.UUID) error {
	return s.db.Delete(&models.PlayerStatistic{}, "id = ?", id).Error
}

// AddHorseStatistic records one horse's participation in one match.
func (s *Store) AddHorseStatistic(row *models.HorseStatistic) error {
	return s.db.Create(row).Error
}

// HorseStatistics returns a horse's participation rows, oldest first.
func (s *Store) HorseStatistics(horseID uuid.UUID) ([]models.HorseStatistic, error) {
	var rows []models.HorseStatistic
	err := s.db.Where("horse_id = ?", horseID).Order("created_at").Find(&rows).Error
	return rows, err
}

// DeleteHorseStatistic removes a single participation row.
func (s *Store) DeleteHorseStatistic(id uuid.UUID) error {
	return s.db.Delete(&models.HorseStatistic{}, "id = ?", id).Error
}

// ChukkerScores returns a match's chukker snapshots in play order — the
// replayable timeline. There is no update or single-row delete for these;
// they only leave the database when their match cascades away.
func (s *Store) ChukkerScores(matchID uuid.UUID) ([]models.ChukkerScore, error) {
	var rows []models.ChukkerScore
	err := s.db.Where("match_id = ?", matchID).Order("chukker_number").Find(&rows).Error
	return rows, err
}
