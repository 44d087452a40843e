package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Field represents a polo field where matches are played.
// A full-size grass field is 300 by 160 yards; arena fields are much smaller,
// which is why the dimensions are optional rather than defaulted.
//
// Field → Match is a cascade relationship: deleting a field deletes the
// matches scheduled on it (and, transitively, their statistic and chukker
// rows). A match without a field makes no sense, unlike a match whose
// tournament was removed.
type Field struct {
	ID        uuid.UUID    `gorm:"type:uuid;primaryKey"`
	Name      string       `gorm:"not null"`
	Location  string       `gorm:"not null;default:''"`
	Grade     Grade        `gorm:"type:grade;not null"`
	Surface   FieldSurface `gorm:"type:field_surface;not null"`
	LengthYd  *int         // Optional playing length in yards
	WidthYd   *int         // Optional playing width in yards
	CreatedAt time.Time
	UpdatedAt time.Time

	Matches []Match `gorm:"foreignKey:FieldID"` // Matches hosted on this field
}

// BeforeCreate assigns the UUID primary key client-side (see Club.BeforeCreate).
func (f *Field) BeforeCreate(*gorm.DB) error {
	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}
	return nil
}
