package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Horse represents a registered polo pony.
// Pedigree is recorded as free-text sire and dam names — the registry does
// not require both parents to exist as records of their own.
//
// A horse's activity totals (games played, distinct tournaments) are derived
// from its HorseStatistic rows by the stats package, never stored here.
type Horse struct {
	ID                 uuid.UUID   `gorm:"type:uuid;primaryKey"`
	Name               string      `gorm:"not null"`
	BirthDate          *time.Time  // Optional; nil means the horse's age is undefined
	Gender             HorseGender `gorm:"type:horse_gender;not null"`
	Color              CoatColor   `gorm:"type:coat_color;not null"`
	Sire               *string     // Father's name, free text
	Dam                *string     // Mother's name, free text
	RegistrationNumber *string     `gorm:"uniqueIndex"` // Breed-registry number; optional but unique when present
	BreederID          *uuid.UUID  `gorm:"type:uuid"`   // Nullable: the user (breeder profile) who bred this horse
	Breeder            *User       `gorm:"foreignKey:BreederID"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// BeforeCreate assigns the UUID primary key client-side (see Club.BeforeCreate).
func (h *Horse) BeforeCreate(*gorm.DB) error {
	if h.ID == uuid.Nil {
		h.ID = uuid.New()
	}
	return nil
}

// Age returns the horse's whole-year age at the given instant, or nil when
// no birth date is recorded.
func (h *Horse) Age(now time.Time) *int {
	return wholeYearAge(h.BirthDate, now)
}
