package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Handicap bounds. Polo handicaps run from -2 (novice) to 10 (the best
// players in the world). The clamping policy is deliberately permissive:
// out-of-range input is corrected to the nearest bound, never rejected,
// so data entry can't fail on a typo. Callers that want strict validation
// can compare against ClampHandicap's result before saving.
const (
	HandicapMin = -2.0
	HandicapMax = 10.0
)

// ClampHandicap corrects a handicap to the closed range [HandicapMin, HandicapMax].
func ClampHandicap(h float64) float64 {
	if h < HandicapMin {
		return HandicapMin
	}
	if h > HandicapMax {
		return HandicapMax
	}
	return h
}

// Player represents a registered polo player.
// A player belongs to at most one club and at most one user account, and can
// be on many team rosters (the team_players join table).
//
// Career statistics (total goals, matches, average) are never stored here —
// they are derived from PlayerStatistic rows by the stats package on read.
type Player struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Name        string     `gorm:"not null"`
	Handicap    float64    `gorm:"type:decimal(4,1);not null;default:0"` // Always within [-2, 10]; clamped in BeforeSave
	BirthDate   *time.Time // Optional; nil means the player's age is undefined
	Nationality *string
	ClubID      *uuid.UUID `gorm:"type:uuid"` // Nullable: a player can be unattached
	Club        *Club      `gorm:"foreignKey:ClubID"`
	UserID      *uuid.UUID `gorm:"type:uuid"` // Nullable link back to the owning user account
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Teams []Team `gorm:"many2many:team_players"` // Roster membership; join rows are cleared, not cascaded, on delete
}

// BeforeCreate assigns the UUID primary key client-side (see Club.BeforeCreate).
func (p *Player) BeforeCreate(*gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// BeforeSave clamps the handicap on every create and full-record update, so
// an out-of-range value can never reach the database through the model path.
func (p *Player) BeforeSave(*gorm.DB) error {
	p.Handicap = ClampHandicap(p.Handicap)
	return nil
}

// Age returns the player's whole-year age at the given instant, or nil when
// no birth date is recorded.
func (p *Player) Age(now time.Time) *int {
	return wholeYearAge(p.BirthDate, now)
}

// wholeYearAge computes a whole-year difference between a birth date and now.
// The year delta is reduced by one if the birthday hasn't occurred yet this year.
// Shared by Player.Age and Horse.Age.
func wholeYearAge(birth *time.Time, now time.Time) *int {
	if birth == nil {
		return nil
	}
	years := now.Year() - birth.Year()
	// Compare (month, day) to decide whether this year's birthday has passed
	if now.Month() < birth.Month() ||
		(now.Month() == birth.Month() && now.Day() < birth.Day()) {
		years--
	}
	return &years
}
