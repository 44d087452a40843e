package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Award represents a recognition given to a player, horse, or team, usually
// in the context of a tournament.
//
// The recipient is whichever of PlayerID/HorseID/TeamID is set. The model
// deliberately does not force the recipient to match Type.RecipientKind()
// (an MVP award could in principle be hung on a team) — the classification is
// exposed for callers that want to validate, and the permissive behavior is
// kept so historical data entered loosely still loads.
//
// Every relationship here is nullify: deleting the tournament or the
// recipient clears the reference, but the award record itself survives as a
// historical fact.
type Award struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name         string    `gorm:"not null"`
	Type         AwardType `gorm:"type:award_type;not null"`
	AwardedOn    time.Time `gorm:"not null"`
	Description  *string
	TournamentID *uuid.UUID  `gorm:"type:uuid"`
	Tournament   *Tournament `gorm:"foreignKey:TournamentID"`
	PlayerID     *uuid.UUID  `gorm:"type:uuid"`
	Player       *Player     `gorm:"foreignKey:PlayerID"`
	HorseID      *uuid.UUID  `gorm:"type:uuid"`
	Horse        *Horse      `gorm:"foreignKey:HorseID"`
	TeamID       *uuid.UUID  `gorm:"type:uuid"`
	Team         *Team       `gorm:"foreignKey:TeamID"`
	CreatedAt    time.Time
}

// BeforeCreate assigns the UUID primary key client-side (see Club.BeforeCreate).
func (a *Award) BeforeCreate(*gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}
