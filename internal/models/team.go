package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Team represents a named team fielded (optionally) by a club.
// Roster membership is many-to-many through the team_players join table —
// players move between teams season to season, so membership is a
// relationship, not ownership.
//
// A team's win/loss record and total handicap are derived values: the stats
// package recomputes them from the team's matches and current roster on
// every read. Nothing here is cached.
type Team struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Name      string     `gorm:"not null"`
	Grade     Grade      `gorm:"type:grade;not null"`
	Color     *string    // Jersey color; optional
	ClubID    *uuid.UUID `gorm:"type:uuid"` // Nullable: independent teams have no club
	Club      *Club      `gorm:"foreignKey:ClubID"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Players []Player `gorm:"many2many:team_players"` // Current roster
}

// BeforeCreate assigns the UUID primary key client-side (see Club.BeforeCreate).
func (t *Team) BeforeCreate(*gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}
