package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User represents a registered account on the platform.
// The Profile field is a descriptive role tag — it drives route-level access
// checks in the HTTP layer but carries no domain semantics of its own.
//
// A user may be linked to at most one Player record (their own playing
// identity; the foreign key lives on Player), and a user with the "breeder"
// profile owns zero or more bred horses.
type User struct {
	ID          uuid.UUID   `gorm:"type:uuid;primaryKey"`
	DisplayName string      `gorm:"not null"`
	Email       string      `gorm:"uniqueIndex;not null"`
	Profile     ProfileType `gorm:"type:profile_type;not null;default:'user'"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Player     *Player `gorm:"foreignKey:UserID"`    // Optional link to this user's playing record
	BredHorses []Horse `gorm:"foreignKey:BreederID"` // Horses this user bred and registered
}

// BeforeCreate assigns the UUID primary key client-side (see Club.BeforeCreate).
func (u *User) BeforeCreate(*gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}
