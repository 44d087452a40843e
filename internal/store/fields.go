package store

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/poloclub/polo-league/internal/models"
)

var fieldColumns = map[string]bool{
	"name": true, "location": true, "grade": true, "surface": true, "created_at": true,
}

// CreateField inserts a new field.
func (s *Store) CreateField(f *models.Field) error {
	return s.db.Create(f).Error
}

// GetField fetches a field by ID with its matches preloaded.
func (s *Store) GetField(id uuid.UUID) (*models.Field, error) {
	var f models.Field
	if err := s.db.Preload("Matches").First(&f, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &f, nil
}

// UpdateField saves the full field record.
func (s *Store) UpdateField(f *models.Field) error {
	return s.db.Save(f).Error
}

// ListFields returns fields matching the options.
func (s *Store) ListFields(opts ListOptions) ([]models.Field, error) {
	var fields []models.Field
	err := applyList(s.db.Model(&models.Field{}), opts, fieldColumns).Find(&fields).Error
	return fields, err
}

// DeleteField removes a field and cascades every match hosted on it (with
// each match's statistic and chukker rows), then clears its tournament
// associations, atomically. A match without its field is meaningless, which
// is why this relationship cascades where the tournament one merely nullifies.
func (s *Store) DeleteField(id uuid.UUID) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		matchIDs, err := matchIDsWhere(tx, "field_id = ?", id)
		if err != nil {
			return err
		}
		if err := deleteMatchesTx(tx, matchIDs); err != nil {
			return err
		}
		if err := tx.Exec("DELETE FROM tournament_fields WHERE field_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Field{}, "id = ?", id).Error
	})
}
