package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Errors returned by match lifecycle methods. Handlers match on these to
// translate a rule violation into the right HTTP response.
var (
	ErrInvalidTransition   = errors.New("invalid match status transition")
	ErrMatchNotLive        = errors.New("match is not in progress")
	ErrMatchFinal          = errors.New("match is completed or cancelled")
	ErrChukkerOverflow     = errors.New("current chukker cannot exceed total chukkers")
	ErrInvalidChukkerCount = errors.New("total chukkers must be at least 1 and not below the current chukker")
)

// DefaultTotalChukkers is the standard chukker count for a full outdoor match.
// Lower-goal and arena matches configure fewer at creation time.
const DefaultTotalChukkers = 6

// Match represents one scheduled or played game between two teams.
//
// The tournament, field, and both team references are individually optional
// so a match can be entered before it is fully scheduled (e.g. a final whose
// participants aren't known yet). TeamAScore/TeamBScore are the live running
// totals; the chukker-by-chukker history lives in ChukkerScore rows.
//
// Status follows a small state machine:
//
//	scheduled → in_progress → completed   (terminal)
//	scheduled → postponed  → scheduled    (reschedule)
//	postponed → cancelled                 (terminal)
//	scheduled | in_progress → cancelled   (terminal)
//
// Once a match is completed or cancelled, no score or chukker mutation is
// permitted. The winner is a derived value (see Winner), never a column.
type Match struct {
	ID             uuid.UUID   `gorm:"type:uuid;primaryKey"`
	Date           time.Time   `gorm:"not null"`
	StartTime      *time.Time  // Actual throw-in time; set when play begins
	EndTime        *time.Time  // Set when the match completes
	Status         MatchStatus `gorm:"type:match_status;not null;default:'scheduled'"`
	TeamAScore     int         `gorm:"not null;default:0"`
	TeamBScore     int         `gorm:"not null;default:0"`
	CurrentChukker int         `gorm:"not null;default:0"` // 0 before throw-in; never exceeds TotalChukkers
	TotalChukkers  int         `gorm:"not null;default:6"`
	TournamentID   *uuid.UUID  `gorm:"type:uuid"`
	Tournament     *Tournament `gorm:"foreignKey:TournamentID"`
	FieldID        *uuid.UUID  `gorm:"type:uuid"`
	Field          *Field      `gorm:"foreignKey:FieldID"`
	TeamAID        *uuid.UUID  `gorm:"type:uuid"`
	TeamA          *Team       `gorm:"foreignKey:TeamAID"`
	TeamBID        *uuid.UUID  `gorm:"type:uuid"`
	TeamB          *Team       `gorm:"foreignKey:TeamBID"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// BeforeCreate assigns the UUID primary key client-side and fills in the
// default chukker count when the caller didn't set one.
func (m *Match) BeforeCreate(*gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	if m.TotalChukkers == 0 {
		m.TotalChukkers = DefaultTotalChukkers
	}
	return nil
}

// transitions is the allowed-successor table for the match state machine.
// A status missing from the map (completed, cancelled) is terminal.
var transitions = map[MatchStatus][]MatchStatus{
	MatchStatusScheduled:  {MatchStatusInProgress, MatchStatusPostponed, MatchStatusCancelled},
	MatchStatusInProgress: {MatchStatusCompleted, MatchStatusCancelled},
	MatchStatusPostponed:  {MatchStatusScheduled, MatchStatusCancelled},
}

// CanTransition reports whether moving from the match's current status to
// the target status is allowed.
func (m *Match) CanTransition(to MatchStatus) bool {
	for _, next := range transitions[m.Status] {
		if next == to {
			return true
		}
	}
	return false
}

// Transition moves the match to the target status, or returns
// ErrInvalidTransition if the state machine forbids it. Entering in_progress
// stamps the start time; entering completed stamps the end time.
func (m *Match) Transition(to MatchStatus, now time.Time) error {
	if !m.CanTransition(to) {
		return ErrInvalidTransition
	}
	switch to {
	case MatchStatusInProgress:
		if m.StartTime == nil {
			t := now
			m.StartTime = &t
		}
	case MatchStatusCompleted:
		t := now
		m.EndTime = &t
	}
	m.Status = to
	return nil
}

// SetTotalChukkers changes the match length. The count must be positive and
// can never drop below the chukker already in play, otherwise CurrentChukker
// would point past the end of the match.
func (m *Match) SetTotalChukkers(n int) error {
	if n < 1 || n < m.CurrentChukker {
		return ErrInvalidChukkerCount
	}
	m.TotalChukkers = n
	return nil
}

// RecordScore sets the running score. Scores only change while play is live;
// completed and cancelled matches are immutable.
func (m *Match) RecordScore(teamA, teamB int) error {
	if m.Status != MatchStatusInProgress {
		return ErrMatchNotLive
	}
	m.TeamAScore = teamA
	m.TeamBScore = teamB
	return nil
}

// AdvanceChukker moves play to the next chukker. It fails if the match isn't
// live or if the match is already in its final chukker.
func (m *Match) AdvanceChukker() error {
	if m.Status != MatchStatusInProgress {
		return ErrMatchNotLive
	}
	if m.CurrentChukker >= m.TotalChukkers {
		return ErrChukkerOverflow
	}
	m.CurrentChukker++
	return nil
}

// Winner returns the ID of the winning team.
// It is defined only for completed matches: Team A on a higher A score,
// Team B on a higher B score, and nil on a tie or any non-completed status.
// Win/loss records are derived from this — never stored on the team.
func (m *Match) Winner() *uuid.UUID {
	if m.Status != MatchStatusCompleted {
		return nil
	}
	switch {
	case m.TeamAScore > m.TeamBScore:
		return m.TeamAID
	case m.TeamBScore > m.TeamAScore:
		return m.TeamBID
	default:
		return nil // Tie — no winner
	}
}
