package store

import (
	"github.com/google/uuid"

	"github.com/poloclub/polo-league/internal/models"
)

var dutyColumns = map[string]bool{
	"type": true, "assigned_at": true, "completed": true,
	"player_id": true, "match_id": true, "tournament_id": true, "created_at": true,
}

// CreateDuty inserts a new duty assignment.
func (s *Store) CreateDuty(d *models.Duty) error {
	return s.db.Create(d).Error
}

// GetDuty fetches a duty with its assignee and context preloaded.
func (s *Store) GetDuty(id uuid.UUID) (*models.Duty, error) {
	var d models.Duty
	err := s.db.Preload("Player").Preload("Match").Preload("Tournament").
		First(&d, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// UpdateDuty saves the full duty record.
func (s *Store) UpdateDuty(d *models.Duty) error {
	return s.db.Save(d).Error
}

// ListDuties returns duties matching the options.
func (s *Store) ListDuties(opts ListOptions) ([]models.Duty, error) {
	var duties []models.Duty
	err := applyList(s.db.Model(&models.Duty{}), opts, dutyColumns).Find(&duties).Error
	return duties, err
}

// DeleteDuty removes a duty assignment. Nothing depends on a duty.
func (s *Store) DeleteDuty(id uuid.UUID) error {
	return s.db.Delete(&models.Duty{}, "id = ?", id).Error
}
