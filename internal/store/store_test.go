package store

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	moderncSqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/poloclub/polo-league/internal/database"
	"github.com/poloclub/polo-league/internal/models"

	_ "modernc.org/sqlite"
)

// newTestStore opens a fresh in-memory SQLite database per test. The pool is
// pinned to one connection — each in-memory connection is its own database,
// so a second connection would see empty tables.
func newTestStore(t *testing.T) *Store {
	t.Helper()

	db, err := gorm.Open(moderncSqlite.New(moderncSqlite.Config{
		DSN:        ":memory:",
		DriverName: "sqlite",
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.AutoMigrate(db))
	return New(db)
}

func mkClub(t *testing.T, s *Store, name string) *models.Club {
	t.Helper()
	c := &models.Club{Name: name, Location: "somewhere"}
	require.NoError(t, s.CreateClub(c))
	return c
}

func mkTeam(t *testing.T, s *Store, name string, clubID *uuid.UUID) *models.Team {
	t.Helper()
	tm := &models.Team{Name: name, Grade: models.GradeHigh, ClubID: clubID}
	require.NoError(t, s.CreateTeam(tm))
	return tm
}

func mkPlayer(t *testing.T, s *Store, name string, handicap float64) *models.Player {
	t.Helper()
	p := &models.Player{Name: name, Handicap: handicap}
	require.NoError(t, s.CreatePlayer(p))
	return p
}

func mkMatch(t *testing.T, s *Store, mutate func(*models.Match)) *models.Match {
	t.Helper()
	m := &models.Match{Date: time.Date(2026, time.April, 19, 15, 0, 0, 0, time.UTC)}
	if mutate != nil {
		mutate(m)
	}
	require.NoError(t, s.CreateMatch(m))
	return m
}

// liveMatch creates a match and walks it into the first chukker of play.
func liveMatch(t *testing.T, s *Store, mutate func(*models.Match)) *models.Match {
	t.Helper()
	m := mkMatch(t, s, mutate)
	m, err := s.TransitionMatch(m.ID, models.MatchStatusInProgress)
	require.NoError(t, err)
	m, err = s.AdvanceChukker(m.ID)
	require.NoError(t, err)
	return m
}

func TestCreateAndGetClub(t *testing.T) {
	s := newTestStore(t)

	c := mkClub(t, s, "La Pampa")
	require.NotEqual(t, uuid.Nil, c.ID, "BeforeCreate assigns the ID")

	got, err := s.GetClub(c.ID)
	require.NoError(t, err)
	assert.Equal(t, "La Pampa", got.Name)
	assert.True(t, got.Active, "clubs default to active")
}

func TestGetClubNotFound(t *testing.T) {
	s := newTestStore(t)
	_, err := s.GetClub(uuid.New())
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestListClubsFilterAndSort(t *testing.T) {
	s := newTestStore(t)
	mkClub(t, s, "Bravo")
	mkClub(t, s, "Alpha")
	inactive := mkClub(t, s, "Charlie")
	inactive.Active = false
	require.NoError(t, s.UpdateClub(inactive))

	clubs, err := s.ListClubs(ListOptions{
		Filters: map[string]any{"active": true},
		SortBy:  "name",
	})
	require.NoError(t, err)
	require.Len(t, clubs, 2)
	assert.Equal(t, "Alpha", clubs[0].Name)
	assert.Equal(t, "Bravo", clubs[1].Name)
}

func TestListIgnoresUnknownColumns(t *testing.T) {
	s := newTestStore(t)
	mkClub(t, s, "Alpha")
	mkClub(t, s, "Bravo")

	// An unknown filter key is dropped and an unknown sort key falls back to
	// created_at — neither reaches the SQL string.
	clubs, err := s.ListClubs(ListOptions{
		Filters: map[string]any{"name; DROP TABLE clubs": "x"},
		SortBy:  "name) ; --",
	})
	require.NoError(t, err)
	assert.Len(t, clubs, 2)
}

func TestPlayerHandicapClampedOnWrite(t *testing.T) {
	s := newTestStore(t)

	p := mkPlayer(t, s, "Santiago", 14)
	got, err := s.GetPlayer(p.ID)
	require.NoError(t, err)
	assert.Equal(t, models.HandicapMax, got.Handicap)
}

func TestRosterMembership(t *testing.T) {
	s := newTestStore(t)
	tm := mkTeam(t, s, "La Pampa I", nil)
	p := mkPlayer(t, s, "Santiago", 8)

	require.NoError(t, s.AddPlayerToTeam(tm.ID, p.ID))

	got, err := s.GetTeam(tm.ID)
	require.NoError(t, err)
	require.Len(t, got.Players, 1)
	assert.Equal(t, p.ID, got.Players[0].ID)

	require.NoError(t, s.RemovePlayerFromTeam(tm.ID, p.ID))
	got, err = s.GetTeam(tm.ID)
	require.NoError(t, err)
	assert.Empty(t, got.Players)

	// Removal touches only the join row; both entities survive.
	_, err = s.GetPlayer(p.ID)
	require.NoError(t, err)
}

func TestDeletePlayerPropagation(t *testing.T) {
	s := newTestStore(t)
	tm := mkTeam(t, s, "La Pampa I", nil)
	p := mkPlayer(t, s, "Santiago", 8)
	require.NoError(t, s.AddPlayerToTeam(tm.ID, p.ID))

	m := mkMatch(t, s, nil)
	require.NoError(t, s.AddPlayerStatistic(&models.PlayerStatistic{
		PlayerID: p.ID, MatchID: m.ID, Goals: 3,
	}))
	require.NoError(t, s.CreateDuty(&models.Duty{
		Type: models.DutyTypeUmpire, AssignedAt: m.Date, PlayerID: p.ID, MatchID: &m.ID,
	}))
	award := &models.Award{
		Name: "MVP", Type: models.AwardTypeMostValuable,
		AwardedOn: m.Date, PlayerID: &p.ID,
	}
	require.NoError(t, s.CreateAward(award))

	require.NoError(t, s.DeletePlayer(p.ID))

	_, err := s.GetPlayer(p.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	// Cascade: duties and statistic rows are gone.
	duties, err := s.ListDuties(ListOptions{})
	require.NoError(t, err)
	assert.Empty(t, duties)
	rows, err := s.PlayerStatistics(p.ID)
	require.NoError(t, err)
	assert.Empty(t, rows)

	// Nullify: the team survives with an empty roster, the award survives
	// without its recipient.
	team, err := s.GetTeam(tm.ID)
	require.NoError(t, err)
	assert.Empty(t, team.Players)
	got, err := s.GetAward(award.ID)
	require.NoError(t, err)
	assert.Nil(t, got.PlayerID)
}

func TestDeleteClubNullifies(t *testing.T) {
	s := newTestStore(t)
	club := mkClub(t, s, "La Pampa")
	tm := mkTeam(t, s, "La Pampa I", &club.ID)
	p := &models.Player{Name: "Santiago", ClubID: &club.ID}
	require.NoError(t, s.CreatePlayer(p))

	require.NoError(t, s.DeleteClub(club.ID))

	team, err := s.GetTeam(tm.ID)
	require.NoError(t, err)
	assert.Nil(t, team.ClubID)

	player, err := s.GetPlayer(p.ID)
	require.NoError(t, err)
	assert.Nil(t, player.ClubID)
}

func TestDeleteMatchCascadesFacts(t *testing.T) {
	s := newTestStore(t)
	p := mkPlayer(t, s, "Santiago", 8)
	h := &models.Horse{Name: "Luna", Gender: models.HorseGenderMare, Color: models.CoatColorBay}
	require.NoError(t, s.CreateHorse(h))

	m := liveMatch(t, s, nil)
	_, err := s.AppendChukkerScore(m.ID)
	require.NoError(t, err)
	require.NoError(t, s.AddPlayerStatistic(&models.PlayerStatistic{PlayerID: p.ID, MatchID: m.ID}))
	require.NoError(t, s.AddHorseStatistic(&models.HorseStatistic{HorseID: h.ID, MatchID: m.ID}))
	require.NoError(t, s.CreateDuty(&models.Duty{
		Type: models.DutyTypeTimekeeper, AssignedAt: m.Date, PlayerID: p.ID, MatchID: &m.ID,
	}))

	require.NoError(t, s.DeleteMatch(m.ID))

	_, err = s.GetMatch(m.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	rows, err := s.PlayerStatistics(p.ID)
	require.NoError(t, err)
	assert.Empty(t, rows)
	hrows, err := s.HorseStatistics(h.ID)
	require.NoError(t, err)
	assert.Empty(t, hrows)
	snaps, err := s.ChukkerScores(m.ID)
	require.NoError(t, err)
	assert.Empty(t, snaps)

	// The duty survives, detached from the deleted match.
	duties, err := s.ListDuties(ListOptions{})
	require.NoError(t, err)
	require.Len(t, duties, 1)
	assert.Nil(t, duties[0].MatchID)
	assert.Equal(t, p.ID, duties[0].PlayerID)
}

func TestDeleteTeamCascadesItsMatches(t *testing.T) {
	s := newTestStore(t)
	a := mkTeam(t, s, "A", nil)
	b := mkTeam(t, s, "B", nil)

	asA := mkMatch(t, s, func(m *models.Match) { m.TeamAID = &a.ID; m.TeamBID = &b.ID })
	asB := mkMatch(t, s, func(m *models.Match) { m.TeamAID = &b.ID; m.TeamBID = &a.ID })
	unrelated := mkMatch(t, s, func(m *models.Match) { m.TeamAID = &b.ID })

	require.NoError(t, s.DeleteTeam(a.ID))

	_, err := s.GetMatch(asA.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	_, err = s.GetMatch(asB.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	_, err = s.GetMatch(unrelated.ID)
	require.NoError(t, err)

	// The opponent team is untouched.
	_, err = s.GetTeam(b.ID)
	require.NoError(t, err)
}

func TestDeleteFieldCascadesItsMatches(t *testing.T) {
	s := newTestStore(t)
	f := &models.Field{Name: "Cancha Uno", Grade: models.GradeHigh, Surface: models.FieldSurfaceGrass}
	require.NoError(t, s.CreateField(f))

	hosted := mkMatch(t, s, func(m *models.Match) { m.FieldID = &f.ID })
	elsewhere := mkMatch(t, s, nil)

	require.NoError(t, s.DeleteField(f.ID))

	_, err := s.GetField(f.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	_, err = s.GetMatch(hosted.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	_, err = s.GetMatch(elsewhere.ID)
	require.NoError(t, err)
}

func TestDeleteTournamentKeepsHistory(t *testing.T) {
	s := newTestStore(t)
	club := mkClub(t, s, "La Pampa")
	p := mkPlayer(t, s, "Santiago", 8)

	tn := &models.Tournament{
		Name: "Spring Open", Grade: models.GradeHigh,
		StartDate: time.Date(2026, time.April, 10, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2026, time.April, 19, 0, 0, 0, 0, time.UTC),
	}
	require.NoError(t, s.CreateTournament(tn))
	require.NoError(t, s.AttachClub(tn.ID, club.ID))

	m := mkMatch(t, s, func(m *models.Match) { m.TournamentID = &tn.ID })
	award := &models.Award{Name: "Cup", Type: models.AwardTypeChampion, AwardedOn: tn.EndDate, TournamentID: &tn.ID}
	require.NoError(t, s.CreateAward(award))
	duty := &models.Duty{Type: models.DutyTypeFieldSetup, AssignedAt: tn.StartDate, PlayerID: p.ID, TournamentID: &tn.ID}
	require.NoError(t, s.CreateDuty(duty))

	require.NoError(t, s.DeleteTournament(tn.ID))

	match, err := s.GetMatch(m.ID)
	require.NoError(t, err)
	assert.Nil(t, match.TournamentID)

	gotAward, err := s.GetAward(award.ID)
	require.NoError(t, err)
	assert.Nil(t, gotAward.TournamentID)

	gotDuty, err := s.GetDuty(duty.ID)
	require.NoError(t, err)
	assert.Nil(t, gotDuty.TournamentID)

	// The club itself is untouched.
	_, err = s.GetClub(club.ID)
	require.NoError(t, err)
}

func TestDeleteUserKeepsPlayerAndHorses(t *testing.T) {
	s := newTestStore(t)
	u := &models.User{DisplayName: "Breeder", Email: "b@polo.example", Profile: models.ProfileTypeBreeder}
	require.NoError(t, s.CreateUser(u))

	p := &models.Player{Name: "Santiago", UserID: &u.ID}
	require.NoError(t, s.CreatePlayer(p))
	h := &models.Horse{Name: "Luna", Gender: models.HorseGenderMare, Color: models.CoatColorBay, BreederID: &u.ID}
	require.NoError(t, s.CreateHorse(h))

	require.NoError(t, s.DeleteUser(u.ID))

	player, err := s.GetPlayer(p.ID)
	require.NoError(t, err)
	assert.Nil(t, player.UserID)

	horse, err := s.GetHorse(h.ID)
	require.NoError(t, err)
	assert.Nil(t, horse.BreederID)
}

func TestGetUserByEmail(t *testing.T) {
	s := newTestStore(t)
	u := &models.User{DisplayName: "Admin", Email: "admin@polo.example", Profile: models.ProfileTypeAdministrator}
	require.NoError(t, s.CreateUser(u))

	got, err := s.GetUserByEmail("admin@polo.example")
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)

	_, err = s.GetUserByEmail("nobody@polo.example")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestTransitionMatchLifecycle(t *testing.T) {
	s := newTestStore(t)
	m := mkMatch(t, s, nil)

	live, err := s.TransitionMatch(m.ID, models.MatchStatusInProgress)
	require.NoError(t, err)
	assert.Equal(t, models.MatchStatusInProgress, live.Status)
	assert.NotNil(t, live.StartTime)

	done, err := s.TransitionMatch(m.ID, models.MatchStatusCompleted)
	require.NoError(t, err)
	assert.Equal(t, models.MatchStatusCompleted, done.Status)
	assert.NotNil(t, done.EndTime)

	// Terminal: no way back.
	_, err = s.TransitionMatch(m.ID, models.MatchStatusScheduled)
	assert.ErrorIs(t, err, models.ErrInvalidTransition)
}

func TestRecordScorePersists(t *testing.T) {
	s := newTestStore(t)
	m := liveMatch(t, s, nil)

	_, err := s.RecordScore(m.ID, 5, 3)
	require.NoError(t, err)

	got, err := s.GetMatch(m.ID)
	require.NoError(t, err)
	assert.Equal(t, 5, got.TeamAScore)
	assert.Equal(t, 3, got.TeamBScore)
}

func TestRecordScoreRejectedWhenNotLive(t *testing.T) {
	s := newTestStore(t)
	m := mkMatch(t, s, nil)

	_, err := s.RecordScore(m.ID, 1, 0)
	assert.ErrorIs(t, err, models.ErrMatchNotLive)
}

func TestAppendChukkerScore(t *testing.T) {
	s := newTestStore(t)
	m := mkMatch(t, s, nil)

	// Not live yet.
	_, err := s.AppendChukkerScore(m.ID)
	assert.ErrorIs(t, err, models.ErrMatchNotLive)

	_, err = s.TransitionMatch(m.ID, models.MatchStatusInProgress)
	require.NoError(t, err)

	// Live, but throw-in hasn't happened (chukker 0).
	_, err = s.AppendChukkerScore(m.ID)
	assert.ErrorIs(t, err, ErrNoChukkerInPlay)

	_, err = s.AdvanceChukker(m.ID)
	require.NoError(t, err)
	_, err = s.RecordScore(m.ID, 2, 1)
	require.NoError(t, err)

	snap, err := s.AppendChukkerScore(m.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, snap.ChukkerNumber)
	assert.Equal(t, 2, snap.TeamAScore)
	assert.Equal(t, 1, snap.TeamBScore)

	// One snapshot per chukker.
	_, err = s.AppendChukkerScore(m.ID)
	assert.ErrorIs(t, err, ErrChukkerAlreadySnapshotted)

	_, err = s.AdvanceChukker(m.ID)
	require.NoError(t, err)
	_, err = s.RecordScore(m.ID, 4, 1)
	require.NoError(t, err)
	snap, err = s.AppendChukkerScore(m.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, snap.ChukkerNumber)

	snaps, err := s.ChukkerScores(m.ID)
	require.NoError(t, err)
	require.Len(t, snaps, 2)
	assert.Equal(t, 1, snaps[0].ChukkerNumber)
	assert.Equal(t, 2, snaps[1].ChukkerNumber)
}

func TestAdvanceChukkerOverflow(t *testing.T) {
	s := newTestStore(t)
	m := mkMatch(t, s, func(m *models.Match) { m.TotalChukkers = 1 })

	_, err := s.TransitionMatch(m.ID, models.MatchStatusInProgress)
	require.NoError(t, err)
	_, err = s.AdvanceChukker(m.ID)
	require.NoError(t, err)
	_, err = s.AdvanceChukker(m.ID)
	assert.ErrorIs(t, err, models.ErrChukkerOverflow)
}

func TestAddPlayerStatisticDenormalizesMatchDate(t *testing.T) {
	s := newTestStore(t)
	p := mkPlayer(t, s, "Santiago", 8)
	m := mkMatch(t, s, nil)

	row := &models.PlayerStatistic{PlayerID: p.ID, MatchID: m.ID, Goals: 2}
	require.NoError(t, s.AddPlayerStatistic(row))
	assert.True(t, row.MatchDate.Equal(m.Date), "match date filled in from the match")

	// One row per (player, match).
	err := s.AddPlayerStatistic(&models.PlayerStatistic{PlayerID: p.ID, MatchID: m.ID})
	assert.Error(t, err)
}

func TestTeamMatchesCoversBothRoles(t *testing.T) {
	s := newTestStore(t)
	a := mkTeam(t, s, "A", nil)
	b := mkTeam(t, s, "B", nil)

	mkMatch(t, s, func(m *models.Match) { m.TeamAID = &a.ID; m.TeamBID = &b.ID })
	mkMatch(t, s, func(m *models.Match) { m.TeamAID = &b.ID; m.TeamBID = &a.ID })
	mkMatch(t, s, func(m *models.Match) { m.TeamAID = &b.ID })

	matches, err := s.TeamMatches(a.ID)
	require.NoError(t, err)
	assert.Len(t, matches, 2)
}
