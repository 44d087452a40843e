package store

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/poloclub/polo-league/internal/models"
)

// Columns clubs can be filtered and sorted by.
var clubColumns = map[string]bool{
	"name": true, "location": true, "active": true, "created_at": true,
}

// CreateClub inserts a new club.
func (s *Store) CreateClub(c *models.Club) error {
	return s.db.Create(c).Error
}

// GetClub fetches a club by ID, with its teams and players preloaded.
func (s *Store) GetClub(id uuid.UUID) (*models.Club, error) {
	var c models.Club
	if err := s.db.Preload("Teams").Preload("Players").First(&c, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

// UpdateClub saves the full club record.
func (s *Store) UpdateClub(c *models.Club) error {
	return s.db.Save(c).Error
}

// ListClubs returns clubs matching the options.
func (s *Store) ListClubs(opts ListOptions) ([]models.Club, error) {
	var clubs []models.Club
	err := applyList(s.db.Model(&models.Club{}), opts, clubColumns).Find(&clubs).Error
	return clubs, err
}

// DeleteClub removes a club. Every club relationship is nullify: its teams,
// players, and tournament associations all survive with the club reference
// cleared — the club is an affiliation, not an owner.
func (s *Store) DeleteClub(id uuid.UUID) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Team{}).Where("club_id = ?", id).
			Update("club_id", nil).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.Player{}).Where("club_id = ?", id).
			Update("club_id", nil).Error; err != nil {
			return err
		}
		// many2many association rows with tournaments
		if err := tx.Exec("DELETE FROM tournament_clubs WHERE club_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Club{}, "id = ?", id).Error
	})
}
