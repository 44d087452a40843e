// cmd/seed/main.go
// Seeds a development database with a small, self-consistent data set:
// two clubs, four teams, a full tournament with fields, matches, fact rows,
// awards, and duties. Intended for local development and demos only — it
// creates rows unconditionally, so run it against a fresh database.
package main

import (
	"fmt"
	"log"
	"time"

	"gorm.io/gorm"

	"github.com/poloclub/polo-league/internal/config"
	"github.com/poloclub/polo-league/internal/database"
	"github.com/poloclub/polo-league/internal/models"
)

func main() {
	cfg := config.Load()

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	if err := database.RunMigrations(cfg.DatabaseURL); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	if err := db.Transaction(seed); err != nil {
		log.Fatal("Seed failed:", err)
	}

	fmt.Println("✓ Seed completed")
}

func strp(s string) *string { return &s }

func datep(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func seed(tx *gorm.DB) error {
	pampa := models.Club{Name: "La Pampa Polo Club", Location: "Buenos Aires, Argentina", ContactEmail: strp("office@lapampa.example")}
	windsor := models.Club{Name: "Windsor Park Polo Club", Location: "Windsor, England"}
	if err := tx.Create(&pampa).Error; err != nil {
		return err
	}
	if err := tx.Create(&windsor).Error; err != nil {
		return err
	}
	fmt.Println("Created 2 clubs")

	admin := models.User{DisplayName: "League Admin", Email: "admin@polo.example", Profile: models.ProfileTypeAdministrator}
	breeder := models.User{DisplayName: "Estancia Breeder", Email: "breeder@polo.example", Profile: models.ProfileTypeBreeder}
	if err := tx.Create(&admin).Error; err != nil {
		return err
	}
	if err := tx.Create(&breeder).Error; err != nil {
		return err
	}

	players := []models.Player{
		{Name: "Santiago Aguirre", Handicap: 8, BirthDate: datep(1990, time.March, 14), Nationality: strp("AR"), ClubID: &pampa.ID},
		{Name: "Marcos Villanueva", Handicap: 6, BirthDate: datep(1994, time.July, 2), Nationality: strp("AR"), ClubID: &pampa.ID},
		{Name: "Tomás Echeverría", Handicap: 4, Nationality: strp("AR"), ClubID: &pampa.ID},
		{Name: "Lucía Fernández", Handicap: 5, BirthDate: datep(1997, time.November, 23), Nationality: strp("AR"), ClubID: &pampa.ID},
		{Name: "Henry Ashworth", Handicap: 7, BirthDate: datep(1988, time.January, 30), Nationality: strp("GB"), ClubID: &windsor.ID},
		{Name: "Oliver Pemberton", Handicap: 5, Nationality: strp("GB"), ClubID: &windsor.ID},
		{Name: "Charlotte Hayes", Handicap: 3, BirthDate: datep(1999, time.May, 8), Nationality: strp("GB"), ClubID: &windsor.ID},
		{Name: "James Whitfield", Handicap: 2, Nationality: strp("GB"), ClubID: &windsor.ID},
	}
	if err := tx.Create(&players).Error; err != nil {
		return err
	}
	fmt.Printf("Created %d players\n", len(players))

	horses := []models.Horse{
		{Name: "Dolfina Luna", Gender: models.HorseGenderMare, Color: models.CoatColorBay, BirthDate: datep(2017, time.September, 1), BreederID: &breeder.ID, RegistrationNumber: strp("AR-2017-0412")},
		{Name: "Pampero", Gender: models.HorseGenderGelding, Color: models.CoatColorChestnut, BirthDate: datep(2015, time.October, 12), BreederID: &breeder.ID},
		{Name: "Windsor Mist", Gender: models.HorseGenderMare, Color: models.CoatColorGray},
	}
	if err := tx.Create(&horses).Error; err != nil {
		return err
	}
	fmt.Printf("Created %d horses\n", len(horses))

	teams := []models.Team{
		{Name: "La Pampa I", Grade: models.GradeHigh, Color: strp("black"), ClubID: &pampa.ID},
		{Name: "La Pampa II", Grade: models.GradeIntermediate, ClubID: &pampa.ID},
		{Name: "Windsor Park", Grade: models.GradeHigh, Color: strp("navy"), ClubID: &windsor.ID},
		{Name: "The Wanderers", Grade: models.GradeIntermediate}, // independent, no club
	}
	if err := tx.Create(&teams).Error; err != nil {
		return err
	}
	// Rosters: first four players to the Pampa sides, the rest to Windsor.
	if err := tx.Model(&teams[0]).Association("Players").Append(&players[0], &players[1]); err != nil {
		return err
	}
	if err := tx.Model(&teams[1]).Association("Players").Append(&players[2], &players[3]); err != nil {
		return err
	}
	if err := tx.Model(&teams[2]).Association("Players").Append(&players[4], &players[5]); err != nil {
		return err
	}
	if err := tx.Model(&teams[3]).Association("Players").Append(&players[6], &players[7]); err != nil {
		return err
	}
	fmt.Printf("Created %d teams with rosters\n", len(teams))

	fields := []models.Field{
		{Name: "Cancha Uno", Location: "La Pampa grounds", Grade: models.GradeHigh, Surface: models.FieldSurfaceGrass, LengthYd: intp(300), WidthYd: intp(160)},
		{Name: "Smith's Lawn", Location: "Windsor Great Park", Grade: models.GradeHigh, Surface: models.FieldSurfaceGrass},
	}
	if err := tx.Create(&fields).Error; err != nil {
		return err
	}

	open := models.Tournament{
		Name:      "Spring Open",
		Grade:     models.GradeHigh,
		StartDate: time.Date(2026, time.April, 10, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2026, time.April, 19, 0, 0, 0, 0, time.UTC),
		Location:  strp("Buenos Aires"),
	}
	if err := tx.Create(&open).Error; err != nil {
		return err
	}
	if err := tx.Model(&open).Association("Clubs").Append(&pampa, &windsor); err != nil {
		return err
	}
	if err := tx.Model(&open).Association("Fields").Append(&fields[0], &fields[1]); err != nil {
		return err
	}
	fmt.Println("Created tournament with clubs and fields")

	// One finished match and one still on the calendar.
	final := models.Match{
		Date:           time.Date(2026, time.April, 19, 15, 0, 0, 0, time.UTC),
		Status:         models.MatchStatusCompleted,
		TeamAScore:     8,
		TeamBScore:     6,
		CurrentChukker: 6,
		TotalChukkers:  6,
		TournamentID:   &open.ID,
		FieldID:        &fields[0].ID,
		TeamAID:        &teams[0].ID,
		TeamBID:        &teams[2].ID,
		StartTime:      datep(2026, time.April, 19),
		EndTime:        datep(2026, time.April, 19),
	}
	upcoming := models.Match{
		Date:         time.Date(2026, time.April, 12, 11, 0, 0, 0, time.UTC),
		TournamentID: &open.ID,
		FieldID:      &fields[1].ID,
		TeamAID:      &teams[1].ID,
		TeamBID:      &teams[3].ID,
	}
	if err := tx.Create(&final).Error; err != nil {
		return err
	}
	if err := tx.Create(&upcoming).Error; err != nil {
		return err
	}

	chukkers := []models.ChukkerScore{
		{MatchID: final.ID, ChukkerNumber: 1, TeamAScore: 1, TeamBScore: 1},
		{MatchID: final.ID, ChukkerNumber: 2, TeamAScore: 3, TeamBScore: 2},
		{MatchID: final.ID, ChukkerNumber: 3, TeamAScore: 4, TeamBScore: 3},
		{MatchID: final.ID, ChukkerNumber: 4, TeamAScore: 5, TeamBScore: 5},
		{MatchID: final.ID, ChukkerNumber: 5, TeamAScore: 7, TeamBScore: 5},
		{MatchID: final.ID, ChukkerNumber: 6, TeamAScore: 8, TeamBScore: 6},
	}
	if err := tx.Create(&chukkers).Error; err != nil {
		return err
	}

	playerFacts := []models.PlayerStatistic{
		{PlayerID: players[0].ID, MatchID: final.ID, Goals: 5, Assists: 2, MatchDate: final.Date},
		{PlayerID: players[1].ID, MatchID: final.ID, Goals: 3, Assists: 4, Fouls: 1, MatchDate: final.Date},
		{PlayerID: players[4].ID, MatchID: final.ID, Goals: 4, Assists: 1, YellowCards: 1, MatchDate: final.Date},
		{PlayerID: players[5].ID, MatchID: final.ID, Goals: 2, Assists: 3, MatchDate: final.Date},
	}
	if err := tx.Create(&playerFacts).Error; err != nil {
		return err
	}

	horseFacts := []models.HorseStatistic{
		{HorseID: horses[0].ID, MatchID: final.ID, PerformanceRating: 9},
		{HorseID: horses[1].ID, MatchID: final.ID, PerformanceRating: 7, InjuryNote: strp("minor foreleg strain, 2 weeks rest")},
	}
	if err := tx.Create(&horseFacts).Error; err != nil {
		return err
	}
	fmt.Println("Created matches, chukker snapshots, and statistic rows")

	awards := []models.Award{
		{Name: "Spring Open Champion", Type: models.AwardTypeChampion, AwardedOn: open.EndDate, TournamentID: &open.ID, TeamID: &teams[0].ID},
		{Name: "Most Valuable Player", Type: models.AwardTypeMostValuable, AwardedOn: open.EndDate, TournamentID: &open.ID, PlayerID: &players[0].ID},
		{Name: "Best Playing Pony", Type: models.AwardTypeBestPlayingPony, AwardedOn: open.EndDate, TournamentID: &open.ID, HorseID: &horses[0].ID},
	}
	if err := tx.Create(&awards).Error; err != nil {
		return err
	}

	duties := []models.Duty{
		{Type: models.DutyTypeUmpire, AssignedAt: upcoming.Date, PlayerID: players[0].ID, MatchID: &upcoming.ID},
		{Type: models.DutyTypeTimekeeper, AssignedAt: upcoming.Date, PlayerID: players[7].ID, MatchID: &upcoming.ID},
		{Type: models.DutyTypeFieldSetup, AssignedAt: open.StartDate, PlayerID: players[3].ID, TournamentID: &open.ID, Completed: true},
	}
	if err := tx.Create(&duties).Error; err != nil {
		return err
	}
	fmt.Println("Created awards and duties")

	return nil
}

func intp(n int) *int { return &n }
