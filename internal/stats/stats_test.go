package stats

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poloclub/polo-league/internal/models"
)

func completedMatch(teamA, teamB uuid.UUID, scoreA, scoreB int) models.Match {
	return models.Match{
		Status:     models.MatchStatusCompleted,
		TeamAID:    &teamA,
		TeamBID:    &teamB,
		TeamAScore: scoreA,
		TeamBScore: scoreB,
	}
}

func TestTeamRecord(t *testing.T) {
	us := uuid.New()
	them := uuid.New()
	other := uuid.New()

	tests := []struct {
		name    string
		matches []models.Match
		want    Record
	}{
		{
			name:    "no matches",
			matches: nil,
			want:    Record{},
		},
		{
			name: "single win as team A",
			matches: []models.Match{
				completedMatch(us, them, 8, 6),
			},
			want: Record{Wins: 1, Losses: 0, WinPercentage: 100},
		},
		{
			name: "win and loss across both roles",
			matches: []models.Match{
				completedMatch(us, them, 8, 6),
				completedMatch(them, us, 10, 4),
			},
			want: Record{Wins: 1, Losses: 1, WinPercentage: 50},
		},
		{
			name: "draws count in neither column",
			matches: []models.Match{
				completedMatch(us, them, 7, 7),
				completedMatch(us, them, 9, 3),
			},
			want: Record{Wins: 1, Losses: 0, WinPercentage: 100},
		},
		{
			name: "scheduled matches are ignored",
			matches: []models.Match{
				{Status: models.MatchStatusScheduled, TeamAID: &us, TeamBID: &them, TeamAScore: 3, TeamBScore: 1},
			},
			want: Record{},
		},
		{
			name: "matches between other teams are ignored",
			matches: []models.Match{
				completedMatch(them, other, 5, 2),
			},
			want: Record{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TeamRecord(us, tt.matches))
		})
	}
}

func TestPlayerCareerStats(t *testing.T) {
	rows := []models.PlayerStatistic{
		{Goals: 2}, {Goals: 3}, {Goals: 0},
	}
	cs := PlayerCareerStats(rows)
	assert.Equal(t, 5, cs.TotalGoals)
	assert.Equal(t, 3, cs.TotalMatches)
	assert.InDelta(t, 1.6667, cs.AverageGoalsPerMatch, 0.001)
}

func TestPlayerCareerStatsEmpty(t *testing.T) {
	cs := PlayerCareerStats(nil)
	assert.Zero(t, cs.TotalGoals)
	assert.Zero(t, cs.TotalMatches)
	assert.Zero(t, cs.AverageGoalsPerMatch) // no division by zero
}

func TestHorseActivityDistinctTournaments(t *testing.T) {
	tournament := uuid.New()
	m1, m2, m3 := uuid.New(), uuid.New(), uuid.New()

	matches := map[uuid.UUID]models.Match{
		m1: {ID: m1, TournamentID: &tournament},
		m2: {ID: m2, TournamentID: &tournament},
		m3: {ID: m3}, // friendly, no tournament
	}
	rows := []models.HorseStatistic{
		{MatchID: m1}, {MatchID: m2}, {MatchID: m3},
	}

	act := HorseActivity(rows, matches)
	assert.Equal(t, 3, act.TotalGames)
	assert.Equal(t, 1, act.TotalTournaments) // same tournament counts once
}

func TestHorseActivityUnresolvedMatch(t *testing.T) {
	rows := []models.HorseStatistic{{MatchID: uuid.New()}}
	act := HorseActivity(rows, map[uuid.UUID]models.Match{})
	assert.Equal(t, 1, act.TotalGames)
	assert.Zero(t, act.TotalTournaments)
}

func TestTournamentSummary(t *testing.T) {
	a, b, c := uuid.New(), uuid.New(), uuid.New()
	matches := []models.Match{
		{TeamAID: &a, TeamBID: &b},
		{TeamAID: &b, TeamBID: &c},
		{TeamAID: &a, TeamBID: &c},
	}

	sum := TournamentSummary(matches, 2, 4)
	assert.Equal(t, 3, sum.MatchCount)
	assert.Equal(t, 3, sum.DistinctTeamCount)
	assert.Equal(t, 2, sum.FieldCount)
	assert.Equal(t, 4, sum.AwardCount)
}

func TestTournamentSummaryEmpty(t *testing.T) {
	sum := TournamentSummary(nil, 0, 0)
	assert.Equal(t, Summary{}, sum)
}

func TestAwardsByType(t *testing.T) {
	awards := []models.Award{
		{Name: "First MVP", Type: models.AwardTypeMostValuable},
		{Name: "The Cup", Type: models.AwardTypeChampion},
		{Name: "Second MVP", Type: models.AwardTypeMostValuable},
	}

	groups := AwardsByType(awards)
	require.Len(t, groups, 2)

	// Sorted by label: "Champion" before "Most Valuable Player".
	assert.Equal(t, models.AwardTypeChampion, groups[0].Type)
	assert.Len(t, groups[0].Awards, 1)

	assert.Equal(t, models.AwardTypeMostValuable, groups[1].Type)
	require.Len(t, groups[1].Awards, 2)
	// Caller's order preserved within a group.
	assert.Equal(t, "First MVP", groups[1].Awards[0].Name)
	assert.Equal(t, "Second MVP", groups[1].Awards[1].Name)
}

func TestTotalHandicap(t *testing.T) {
	roster := []models.Player{
		{Handicap: 8}, {Handicap: 6}, {Handicap: -2}, {Handicap: -2},
	}
	assert.InDelta(t, 10.0, TotalHandicap(roster), 0.0001)
	assert.Zero(t, TotalHandicap(nil))
}
