package models

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClampHandicap(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want float64
	}{
		{"below minimum", -5, HandicapMin},
		{"at minimum", -2, -2},
		{"typical", 6.5, 6.5},
		{"at maximum", 10, 10},
		{"above maximum", 12, HandicapMax},
		{"zero", 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClampHandicap(tt.in))
		})
	}
}

func TestPlayerBeforeSaveClampsHandicap(t *testing.T) {
	p := Player{Name: "x", Handicap: 99}
	require.NoError(t, p.BeforeSave(nil))
	assert.Equal(t, HandicapMax, p.Handicap)

	p.Handicap = -7
	require.NoError(t, p.BeforeSave(nil))
	assert.Equal(t, HandicapMin, p.Handicap)
}

func TestWholeYearAge(t *testing.T) {
	now := time.Date(2026, time.June, 15, 12, 0, 0, 0, time.UTC)

	birthdayPassed := time.Date(2000, time.March, 1, 0, 0, 0, 0, time.UTC)
	birthdayAhead := time.Date(2000, time.December, 25, 0, 0, 0, 0, time.UTC)
	birthdayToday := time.Date(2000, time.June, 15, 0, 0, 0, 0, time.UTC)

	p := Player{BirthDate: &birthdayPassed}
	require.NotNil(t, p.Age(now))
	assert.Equal(t, 26, *p.Age(now))

	p.BirthDate = &birthdayAhead
	assert.Equal(t, 25, *p.Age(now))

	p.BirthDate = &birthdayToday
	assert.Equal(t, 26, *p.Age(now))

	p.BirthDate = nil
	assert.Nil(t, p.Age(now))

	h := Horse{BirthDate: &birthdayPassed}
	require.NotNil(t, h.Age(now))
	assert.Equal(t, 26, *h.Age(now))
}

func TestMatchTransitions(t *testing.T) {
	tests := []struct {
		from MatchStatus
		to   MatchStatus
		ok   bool
	}{
		{MatchStatusScheduled, MatchStatusInProgress, true},
		{MatchStatusScheduled, MatchStatusPostponed, true},
		{MatchStatusScheduled, MatchStatusCancelled, true},
		{MatchStatusScheduled, MatchStatusCompleted, false}, // must pass through play
		{MatchStatusInProgress, MatchStatusCompleted, true},
		{MatchStatusInProgress, MatchStatusCancelled, true},
		{MatchStatusInProgress, MatchStatusPostponed, false},
		{MatchStatusPostponed, MatchStatusScheduled, true},
		{MatchStatusPostponed, MatchStatusCancelled, true},
		{MatchStatusPostponed, MatchStatusInProgress, false},
		{MatchStatusCompleted, MatchStatusInProgress, false}, // terminal
		{MatchStatusCompleted, MatchStatusScheduled, false},
		{MatchStatusCancelled, MatchStatusScheduled, false}, // terminal
	}
	for _, tt := range tests {
		t.Run(string(tt.from)+"_to_"+string(tt.to), func(t *testing.T) {
			m := Match{Status: tt.from}
			assert.Equal(t, tt.ok, m.CanTransition(tt.to))

			err := m.Transition(tt.to, time.Now())
			if tt.ok {
				require.NoError(t, err)
				assert.Equal(t, tt.to, m.Status)
			} else {
				assert.ErrorIs(t, err, ErrInvalidTransition)
				assert.Equal(t, tt.from, m.Status)
			}
		})
	}
}

func TestTransitionStampsTimes(t *testing.T) {
	now := time.Date(2026, time.April, 19, 15, 0, 0, 0, time.UTC)

	m := Match{Status: MatchStatusScheduled}
	require.NoError(t, m.Transition(MatchStatusInProgress, now))
	require.NotNil(t, m.StartTime)
	assert.Equal(t, now, *m.StartTime)
	assert.Nil(t, m.EndTime)

	end := now.Add(90 * time.Minute)
	require.NoError(t, m.Transition(MatchStatusCompleted, end))
	require.NotNil(t, m.EndTime)
	assert.Equal(t, end, *m.EndTime)
}

func TestTerminalStatuses(t *testing.T) {
	assert.True(t, MatchStatusCompleted.Terminal())
	assert.True(t, MatchStatusCancelled.Terminal())
	assert.False(t, MatchStatusScheduled.Terminal())
	assert.False(t, MatchStatusInProgress.Terminal())
	assert.False(t, MatchStatusPostponed.Terminal())
}

func TestRecordScoreRequiresLiveMatch(t *testing.T) {
	m := Match{Status: MatchStatusScheduled}
	assert.ErrorIs(t, m.RecordScore(1, 0), ErrMatchNotLive)

	m.Status = MatchStatusInProgress
	require.NoError(t, m.RecordScore(4, 2))
	assert.Equal(t, 4, m.TeamAScore)
	assert.Equal(t, 2, m.TeamBScore)

	// Completion freezes the score.
	m.Status = MatchStatusCompleted
	assert.ErrorIs(t, m.RecordScore(9, 9), ErrMatchNotLive)
	assert.Equal(t, 4, m.TeamAScore)
}

func TestAdvanceChukker(t *testing.T) {
	m := Match{Status: MatchStatusInProgress, TotalChukkers: 2}

	require.NoError(t, m.AdvanceChukker())
	assert.Equal(t, 1, m.CurrentChukker)
	require.NoError(t, m.AdvanceChukker())
	assert.Equal(t, 2, m.CurrentChukker)

	assert.ErrorIs(t, m.AdvanceChukker(), ErrChukkerOverflow)
	assert.Equal(t, 2, m.CurrentChukker)

	m2 := Match{Status: MatchStatusScheduled, TotalChukkers: 6}
	assert.ErrorIs(t, m2.AdvanceChukker(), ErrMatchNotLive)
}

func TestSetTotalChukkers(t *testing.T) {
	m := Match{Status: MatchStatusInProgress, CurrentChukker: 2, TotalChukkers: 6}

	assert.ErrorIs(t, m.SetTotalChukkers(0), ErrInvalidChukkerCount)
	assert.ErrorIs(t, m.SetTotalChukkers(-4), ErrInvalidChukkerCount)
	assert.ErrorIs(t, m.SetTotalChukkers(1), ErrInvalidChukkerCount)
	assert.Equal(t, 6, m.TotalChukkers)

	require.NoError(t, m.SetTotalChukkers(2))
	assert.Equal(t, 2, m.TotalChukkers)
	require.NoError(t, m.SetTotalChukkers(8))
	assert.Equal(t, 8, m.TotalChukkers)
}

func TestWinner(t *testing.T) {
	a, b := uuid.New(), uuid.New()

	m := Match{Status: MatchStatusCompleted, TeamAID: &a, TeamBID: &b, TeamAScore: 8, TeamBScore: 6}
	require.NotNil(t, m.Winner())
	assert.Equal(t, a, *m.Winner())

	m.TeamAScore, m.TeamBScore = 3, 5
	require.NotNil(t, m.Winner())
	assert.Equal(t, b, *m.Winner())

	m.TeamBScore = 3 // draw
	assert.Nil(t, m.Winner())

	m.Status = MatchStatusInProgress
	m.TeamAScore = 10
	assert.Nil(t, m.Winner(), "no winner until completed")
}

func TestAwardTypeRecipientKind(t *testing.T) {
	assert.Equal(t, RecipientKindTeam, AwardTypeChampion.RecipientKind())
	assert.Equal(t, RecipientKindTeam, AwardTypeRunnerUp.RecipientKind())
	assert.Equal(t, RecipientKindTeam, AwardTypeSubsidiary.RecipientKind())
	assert.Equal(t, RecipientKindHorse, AwardTypeBestPlayingPony.RecipientKind())
	assert.Equal(t, RecipientKindPlayer, AwardTypeMostValuable.RecipientKind())
	assert.Equal(t, RecipientKindPlayer, AwardTypeTopScorer.RecipientKind())
	assert.Equal(t, RecipientKindPlayer, AwardTypeSportsmanship.RecipientKind())
}

func TestDutyTypeRequiresMount(t *testing.T) {
	assert.True(t, DutyTypeUmpire.RequiresMount())
	assert.False(t, DutyTypeReferee.RequiresMount())
	assert.False(t, DutyTypeTimekeeper.RequiresMount())
	assert.False(t, DutyTypeFieldSetup.RequiresMount())
}

func TestBeforeCreateAssignsID(t *testing.T) {
	c := Club{Name: "x"}
	require.NoError(t, c.BeforeCreate(nil))
	assert.NotEqual(t, uuid.Nil, c.ID)

	// An explicitly set ID is preserved.
	fixed := uuid.New()
	c2 := Club{ID: fixed}
	require.NoError(t, c2.BeforeCreate(nil))
	assert.Equal(t, fixed, c2.ID)
}

func TestMatchBeforeCreateDefaultsChukkers(t *testing.T) {
	m := Match{}
	require.NoError(t, m.BeforeCreate(nil))
	assert.Equal(t, DefaultTotalChukkers, m.TotalChukkers)

	m2 := Match{TotalChukkers: 4}
	require.NoError(t, m2.BeforeCreate(nil))
	assert.Equal(t, 4, m2.TotalChukkers)
}
