package store

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/poloclub/polo-league/internal/models"
)

var userColumns = map[string]bool{
	"display_name": true, "email": true, "profile": true, "created_at": true,
}

// CreateUser inserts a new user account.
func (s *Store) CreateUser(u *models.User) error {
	return s.db.Create(u).Error
}

// GetUser fetches a user by ID with their player link and bred horses.
func (s *Store) GetUser(id uuid.UUID) (*models.User, error) {
	var u models.User
	if err := s.db.Preload("Player").Preload("BredHorses").First(&u, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

// GetUserByEmail fetches a user by their unique email.
func (s *Store) GetUserByEmail(email string) (*models.User, error) {
	var u models.User
	if err := s.db.First(&u, "email = ?", email).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

// UpdateUser saves the full user record.
func (s *Store) UpdateUser(u *models.User) error {
	return s.db.Save(u).Error
}

// ListUsers returns users matching the options.
func (s *Store) ListUsers(opts ListOptions) ([]models.User, error) {
	var users []models.User
	err := applyList(s.db.Model(&models.User{}), opts, userColumns).Find(&users).Error
	return users, err
}

// DeleteUser removes a user account. The linked player record and any bred
// horses survive with their user reference cleared — people's playing and
// breeding history outlives the account.
func (s *Store) DeleteUser(id uuid.UUID) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Player{}).Where("user_id = ?", id).
			Update("user_id", nil).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.Horse{}).Where("breeder_id = ?", id).
			Update("breeder_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(&models.User{}, "id = ?", id).Error
	})
}
