package store

import (
	"github.com/google/uuid"

	"github.com/poloclub/polo-league/internal/models"
)

var awardColumns = map[string]bool{
	"name": true, "type": true, "awarded_on": true, "tournament_id": true,
	"player_id": true, "horse_id": true, "team_id": true, "created_at": true,
}

// CreateAward inserts a new award. The recipient is whichever of the
// player/horse/team references is set; no check is made against the award
// type's recipient kind — see models.AwardType.RecipientKind for callers
// that want stricter validation.
func (s *Store) CreateAward(a *models.Award) error {
	return s.db.Create(a).Error
}

// GetAward fetches an award with its tournament and recipient preloaded.
func (s *Store) GetAward(id uuid.UUID) (*models.Award, error) {
	var a models.Award
	err := s.db.Preload("Tournament").Preload("Player").
		Preload("Horse").Preload("Team").
		First(&a, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// UpdateAward saves the full award record.
func (s *Store) UpdateAward(a *models.Award) error {
	return s.db.Save(a).Error
}

// ListAwards returns awards matching the options.
func (s *Store) ListAwards(opts ListOptions) ([]models.Award, error) {
	var awards []models.Award
	err := applyList(s.db.Model(&models.Award{}), opts, awardColumns).Find(&awards).Error
	return awards, err
}

// DeleteAward removes an award. Nothing depends on an award, so there is
// nothing to propagate.
func (s *Store) DeleteAward(id uuid.UUID) error {
	return s.db.Delete(&models.Award{}, "id = ?", id).Error
}
