package store

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/poloclub/polo-league/internal/models"
)

var horseColumns = map[string]bool{
	"name": true, "gender": true, "color": true,
	"registration_number": true, "breeder_id": true, "created_at": true,
}

// CreateHorse inserts a new horse.
func (s *Store) CreateHorse(h *models.Horse) error {
	return s.db.Create(h).Error
}

// GetHorse fetches a horse by ID with its breeder preloaded.
func (s *Store) GetHorse(id uuid.UUID) (*models.Horse, error) {
	var h models.Horse
	if err := s.db.Preload("Breeder").First(&h, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &h, nil
}

// UpdateHorse saves the full horse record.
func (s *Store) UpdateHorse(h *models.Horse) error {
	return s.db.Save(h).Error
}

// ListHorses returns horses matching the options.
func (s *Store) ListHorses(opts ListOptions) ([]models.Horse, error) {
	var horses []models.Horse
	err := applyList(s.db.Model(&models.Horse{}), opts, horseColumns).Find(&horses).Error
	return horses, err
}

// DeleteHorse removes a horse, cascading its statistic rows and clearing
// award references to it, atomically.
func (s *Store) DeleteHorse(id uuid.UUID) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.HorseStatistic{}, "horse_id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.Award{}).Where("horse_id = ?", id).
			Update("horse_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Horse{}, "id = ?", id).Error
	})
}
