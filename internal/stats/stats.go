// Package stats is the aggregation engine: read-only derived statistics
// computed from in-memory collections of domain records.
//
// Every function here is pure — explicit inputs, no database handle, no
// hidden global state — and is recomputed from scratch on each call rather
// than incrementally maintained. Callers supply pre-filtered collections
// (e.g. only completed matches, only the current roster); the engine never
// filters on their behalf, which keeps each function composable and
// testable in isolation.
//
// Degenerate inputs are total, not errors: every division guards the
// zero-denominator case and yields 0, never NaN and never a failure.
package stats

import (
	"sort"

	"github.com/google/uuid"

	"github.com/poloclub/polo-league/internal/models"
)

// Record is a team's derived win/loss standing.
// Draws and undecided matches count in neither column, so Wins+Losses can be
// less than the number of completed matches the team played.
type Record struct {
	Wins          int     `json:"wins"`
	Losses        int     `json:"losses"`
	WinPercentage float64 `json:"win_percentage"` // wins / (wins+losses) × 100; 0 with no decided games
}

// TeamRecord classifies each match for the given team — in either the A or
// B role — and computes the win percentage over decided games only.
func TeamRecord(teamID uuid.UUID, matches []models.Match) Record {
	var rec Record
	for i := range matches {
		m := &matches[i]
		winner := m.Winner()
		if winner == nil {
			continue // Not completed, or a tie — counts as neither win nor loss
		}
		switch {
		case *winner == teamID:
			rec.Wins++
		case participates(teamID, m):
			rec.Losses++
		}
	}
	if decided := rec.Wins + rec.Losses; decided > 0 {
		rec.WinPercentage = float64(rec.Wins) / float64(decided) * 100
	}
	return rec
}

// participates reports whether the team played in the match on either side.
func participates(teamID uuid.UUID, m *models.Match) bool {
	return (m.TeamAID != nil && *m.TeamAID == teamID) ||
		(m.TeamBID != nil && *m.TeamBID == teamID)
}

// CareerStats are a player's derived career totals.
// One PlayerStatistic row is one match participation, so TotalMatches is
// simply the row count.
type CareerStats struct {
	TotalGoals           int     `json:"total_goals"`
	TotalMatches         int     `json:"total_matches"`
	AverageGoalsPerMatch float64 `json:"average_goals_per_match"` // 0 with no matches
}

// PlayerCareerStats sums goals across the player's statistic rows and
// derives the per-match average.
func PlayerCareerStats(rows []models.PlayerStatistic) CareerStats {
	var cs CareerStats
	for i := range rows {
		cs.TotalGoals += rows[i].Goals
		cs.TotalMatches++
	}
	if cs.TotalMatches > 0 {
		cs.AverageGoalsPerMatch = float64(cs.TotalGoals) / float64(cs.TotalMatches)
	}
	return cs
}

// Activity is a horse's derived participation summary.
type Activity struct {
	TotalGames       int `json:"total_games"`
	TotalTournaments int `json:"total_tournaments"` // Distinct tournaments, not statistic rows
}

// HorseActivity counts the horse's games (one statistic row each) and the
// distinct tournaments reachable through row → match → tournament.
// matchesByID resolves each row's match; a horse with several games inside
// the same tournament counts that tournament once.
func HorseActivity(rows []models.HorseStatistic, matchesByID map[uuid.UUID]models.Match) Activity {
	act := Activity{TotalGames: len(rows)}
	seen := make(map[uuid.UUID]bool)
	for i := range rows {
		m, ok := matchesByID[rows[i].MatchID]
		if !ok || m.TournamentID == nil {
			continue
		}
		if !seen[*m.TournamentID] {
			seen[*m.TournamentID] = true
			act.TotalTournaments++
		}
	}
	return act
}

// Summary is a tournament's derived headline numbers.
type Summary struct {
	MatchCount        int `json:"match_count"`
	DistinctTeamCount int `json:"distinct_team_count"` // A team playing several matches counts once
	FieldCount        int `json:"field_count"`
	AwardCount        int `json:"award_count"`
}

// TournamentSummary derives the summary from the tournament's matches plus
// its field and award counts (which the caller already has — no refetching).
// DistinctTeamCount is the cardinality of the union of A and B teams across
// the matches.
func TournamentSummary(matches []models.Match, fieldCount, awardCount int) Summary {
	teams := make(map[uuid.UUID]bool)
	for i := range matches {
		if id := matches[i].TeamAID; id != nil {
			teams[*id] = true
		}
		if id := matches[i].TeamBID; id != nil {
			teams[*id] = true
		}
	}
	return Summary{
		MatchCount:        len(matches),
		DistinctTeamCount: len(teams),
		FieldCount:        fieldCount,
		AwardCount:        awardCount,
	}
}

// AwardGroup is one partition of an award collection, keyed by type.
type AwardGroup struct {
	Type   models.AwardType `json:"type"`
	Label  string           `json:"label"`
	Awards []models.Award   `json:"awards"`
}

// AwardsByType partitions awards by their type for summary display.
// Groups come back sorted lexicographically by type label so repeated calls
// over the same data produce identical output; within a group the caller's
// order is preserved.
func AwardsByType(awards []models.Award) []AwardGroup {
	byType := make(map[models.AwardType][]models.Award)
	for _, a := range awards {
		byType[a.Type] = append(byType[a.Type], a)
	}
	groups := make([]AwardGroup, 0, len(byType))
	for t, as := range byType {
		groups = append(groups, AwardGroup{Type: t, Label: t.Label(), Awards: as})
	}
	sort.Slice(groups, func(i, j int) bool {
		return groups[i].Label < groups[j].Label
	})
	return groups
}

// TotalHandicap sums the handicaps of the given roster.
// It is recomputed on every read — team handicap is never stored, so a
// player's rating change is visible immediately on all their teams.
func TotalHandicap(roster []models.Player) float64 {
	var total float64
	for i := range roster {
		total += roster[i].Handicap
	}
	return total
}
