package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PlayerStatistic is one player's participation record for one match —
// exactly one row per (player, match) pair, enforced by the composite unique
// index. Career totals and averages are computed from these rows on read;
// nothing aggregate is ever written back.
//
// Both the player and match relationships are cascade: the row is a fact
// about that specific participation and has no meaning once either side is gone.
type PlayerStatistic struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	PlayerID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_player_match"`
	Player      *Player   `gorm:"foreignKey:PlayerID"`
	MatchID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_player_match"`
	Match       *Match    `gorm:"foreignKey:MatchID"`
	Goals       int       `gorm:"not null;default:0"`
	Assists     int       `gorm:"not null;default:0"`
	Fouls       int       `gorm:"not null;default:0"`
	YellowCards int       `gorm:"not null;default:0"`
	RedCards    int       `gorm:"not null;default:0"`
	MatchDate   time.Time `gorm:"not null"` // Denormalized from the match for date-range queries
	CreatedAt   time.Time
}

// BeforeCreate assigns the UUID primary key client-side (see Club.BeforeCreate).
func (s *PlayerStatistic) BeforeCreate(*gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// HorseStatistic is one horse's participation record for one match.
// PerformanceRating is the rider/judge assessment for that outing (1–10 by
// convention; not clamped — it's an opinion, not a handicap).
type HorseStatistic struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey"`
	HorseID           uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_horse_match"`
	Horse             *Horse    `gorm:"foreignKey:HorseID"`
	MatchID           uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_horse_match"`
	Match             *Match    `gorm:"foreignKey:MatchID"`
	PerformanceRating int       `gorm:"not null;default:0"`
	InjuryNote        *string   // Set only when the horse came off injured
	CreatedAt         time.Time
}

// BeforeCreate assigns the UUID primary key client-side (see Club.BeforeCreate).
func (s *HorseStatistic) BeforeCreate(*gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// ChukkerScore is an immutable snapshot of the running score at the end of
// one chukker. Rows are only ever appended as play progresses — never edited —
// which makes the sequence a replayable timeline of the match.
// One row per (match, chukker), enforced by the composite unique index.
type ChukkerScore struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	MatchID       uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_match_chukker"`
	Match         *Match    `gorm:"foreignKey:MatchID"`
	ChukkerNumber int       `gorm:"not null;uniqueIndex:idx_match_chukker"` // 1-based
	TeamAScore    int       `gorm:"not null;default:0"`                     // Running total, not the chukker's delta
	TeamBScore    int       `gorm:"not null;default:0"`
	RecordedAt    time.Time `gorm:"autoCreateTime"` // Set automatically by GORM on insert
}

// BeforeCreate assigns the UUID primary key client-side (see Club.BeforeCreate).
func (s *ChukkerScore) BeforeCreate(*gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}
