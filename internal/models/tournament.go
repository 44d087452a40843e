package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Tournament is the top-level container for scheduled competition.
// It associates clubs (the hosts/entrants), fields (venues), matches, and
// awards. All of those survive its deletion — every tournament relationship
// is nullify, not cascade, because matches and awards remain meaningful
// historical records even when the tournament entry is removed.
type Tournament struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"not null"`
	Grade     Grade     `gorm:"type:grade;not null"`
	StartDate time.Time `gorm:"not null"`
	EndDate   time.Time `gorm:"not null"`
	Location  *string   // Optional; often implied by the participating clubs
	CreatedAt time.Time
	UpdatedAt time.Time

	Clubs   []Club  `gorm:"many2many:tournament_clubs"`  // Participating clubs
	Fields  []Field `gorm:"many2many:tournament_fields"` // Venues in use
	Matches []Match `gorm:"foreignKey:TournamentID"`
	Awards  []Award `gorm:"foreignKey:TournamentID"`
}

// BeforeCreate assigns the UUID primary key client-side (see Club.BeforeCreate).
func (t *Tournament) BeforeCreate(*gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}
