package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Duty represents an officiating or support assignment for a player —
// umpiring a match, keeping time, setting up a field.
//
// A duty is always assigned to exactly one player (cascade: the assignment
// is meaningless without its assignee). It may be contextualized by a match
// or by a tournament; by convention one or the other, but both fields are
// allowed to be set — the source data was never exclusive, so the model
// doesn't enforce it.
type Duty struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Type         DutyType  `gorm:"type:duty_type;not null"`
	AssignedAt   time.Time `gorm:"not null"` // When the duty is to be performed
	Completed    bool      `gorm:"not null;default:false"`
	Notes        *string
	PlayerID     uuid.UUID   `gorm:"type:uuid;not null"`
	Player       *Player     `gorm:"foreignKey:PlayerID"`
	MatchID      *uuid.UUID  `gorm:"type:uuid"` // Optional match context; nullified if the match goes away
	Match        *Match      `gorm:"foreignKey:MatchID"`
	TournamentID *uuid.UUID  `gorm:"type:uuid"` // Optional tournament context
	Tournament   *Tournament `gorm:"foreignKey:TournamentID"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// BeforeCreate assigns the UUID primary key client-side (see Club.BeforeCreate).
func (d *Duty) BeforeCreate(*gorm.DB) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	return nil
}
