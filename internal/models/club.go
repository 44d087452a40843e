package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Club represents a member club of the organization — the entity that fields
// teams, registers players, and hosts tournaments.
//
// Deleting a club never deletes its teams, players, or tournaments: those
// relationships are nullified (the back-reference is cleared, the record
// survives). See the store package for how that is applied.
type Club struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name         string    `gorm:"not null"`
	Location     string    `gorm:"not null;default:''"`
	ContactEmail *string   // Optional; pointer = nullable in the DB
	ContactPhone *string
	Active       bool `gorm:"not null;default:true"` // Inactive clubs are kept for history but filtered out of rosters
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Teams   []Team   `gorm:"foreignKey:ClubID"` // One-to-many: teams fielded by this club
	Players []Player `gorm:"foreignKey:ClubID"` // One-to-many: players registered with this club
}

// BeforeCreate assigns the UUID primary key client-side, so the same model
// works on Postgres in production and SQLite in tests without relying on a
// database-side default.
func (c *Club) BeforeCreate(*gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}
