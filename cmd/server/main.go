// cmd/server/main.go
// Entry point for the Polo League API server.
// The cmd/ folder holds executable binaries; internal/ holds the packages they
// are built from and that are not importable by other projects.
package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/poloclub/polo-league/internal/config"
	"github.com/poloclub/polo-league/internal/database"
	"github.com/poloclub/polo-league/internal/handlers"
	"github.com/poloclub/polo-league/internal/middleware"
	"github.com/poloclub/polo-league/internal/store"
	"github.com/poloclub/polo-league/internal/websocket"
)

func main() {
	// Load configuration from environment variables (and optionally a .env file).
	cfg := config.Load()

	// Connect to PostgreSQL. The returned *gorm.DB is shared by the auth
	// middleware and the store layer.
	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Run any pending SQL migration files (in the migrations/ directory) so the
	// schema is always in sync when the server starts.
	if err := database.RunMigrations(cfg.DatabaseURL); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	// The Hub manages live WebSocket connections — clients watching chukker-by-
	// chukker scores. go hub.Run() starts its event loop in the background.
	hub := websocket.NewHub()
	go hub.Run()

	// All database access from handlers goes through the store, which owns the
	// deletion-propagation transactions.
	st := store.New(db)

	app := fiber.New(fiber.Config{
		AppName: "Polo League API",
	})

	// --- Global middleware ---
	// recover turns handler panics into 500 responses instead of crashing the server.
	app.Use(recover.New())
	// logger prints each request: method, path, status code, duration.
	app.Use(logger.New())
	// cors allows requests from any origin. In production, lock this down.
	app.Use(cors.New())

	// --- Public routes (no auth required) ---
	// GET /health is a liveness check used by load balancers.
	app.Get("/health", handlers.HealthCheck)

	// Live score stream. Spectators subscribe here and receive every chukker
	// snapshot for the match as it's appended over the REST API.
	app.Get("/ws/matches/:id", websocket.UpgradeRequired, websocket.ServeMatch(hub))

	// --- Authenticated API routes ---
	// Everything under /api/v1 requires a valid JWT. middleware.Auth validates
	// the token AND syncs the user row into our database.
	api := app.Group("/api/v1", middleware.Auth(cfg, db))

	// Mutating routes are restricted to administrator/operator profiles.
	staff := middleware.RequireProfile("administrator", "operator")

	// Reference data for form-building clients.
	api.Get("/meta/enums", handlers.Enums)

	// Users are created lazily by the auth middleware, so there is no POST
	// here. Account administration is administrator-only.
	admin := middleware.RequireProfile("administrator")
	api.Get("/users", admin, handlers.ListUsers(st))
	api.Get("/users/:id", handlers.GetUser(st))
	api.Put("/users/:id", admin, handlers.UpdateUser(st))
	api.Delete("/users/:id", admin, handlers.DeleteUser(st))

	api.Get("/clubs", handlers.ListClubs(st))
	api.Get("/clubs/:id", handlers.GetClub(st))
	api.Post("/clubs", staff, handlers.CreateClub(st))
	api.Put("/clubs/:id", staff, handlers.UpdateClub(st))
	api.Delete("/clubs/:id", staff, handlers.DeleteClub(st))

	api.Get("/players", handlers.ListPlayers(st))
	api.Get("/players/:id", handlers.GetPlayer(st))
	api.Get("/players/:id/career", handlers.PlayerCareer(st))
	api.Get("/players/:id/statistics", handlers.ListPlayerStatistics(st))
	api.Post("/players", staff, handlers.CreatePlayer(st))
	api.Put("/players/:id", staff, handlers.UpdatePlayer(st))
	api.Delete("/players/:id", staff, handlers.DeletePlayer(st))

	api.Get("/horses", handlers.ListHorses(st))
	api.Get("/horses/:id", handlers.GetHorse(st))
	api.Get("/horses/:id/activity", handlers.HorseActivity(st))
	api.Get("/horses/:id/statistics", handlers.ListHorseStatistics(st))
	api.Post("/horses", staff, handlers.CreateHorse(st))
	api.Put("/horses/:id", staff, handlers.UpdateHorse(st))
	api.Delete("/horses/:id", staff, handlers.DeleteHorse(st))

	api.Get("/teams", handlers.ListTeams(st))
	api.Get("/teams/:id", handlers.GetTeam(st))
	api.Get("/teams/:id/record", handlers.TeamRecord(st))
	api.Post("/teams", staff, handlers.CreateTeam(st))
	api.Put("/teams/:id", staff, handlers.UpdateTeam(st))
	api.Delete("/teams/:id", staff, handlers.DeleteTeam(st))
	// Roster membership is a join-table edit, not a team update. The player
	// comes in the request body.
	api.Post("/teams/:id/players", staff, handlers.AddRosterPlayer(st))
	api.Delete("/teams/:id/players", staff, handlers.RemoveRosterPlayer(st))

	api.Get("/fields", handlers.ListFields(st))
	api.Get("/fields/:id", handlers.GetField(st))
	api.Post("/fields", staff, handlers.CreateField(st))
	api.Put("/fields/:id", staff, handlers.UpdateField(st))
	api.Delete("/fields/:id", staff, handlers.DeleteField(st))

	api.Get("/tournaments", handlers.ListTournaments(st))
	api.Get("/tournaments/:id", handlers.GetTournament(st))
	api.Get("/tournaments/:id/summary", handlers.TournamentSummary(st))
	api.Post("/tournaments", staff, handlers.CreateTournament(st))
	api.Put("/tournaments/:id", staff, handlers.UpdateTournament(st))
	api.Delete("/tournaments/:id", staff, handlers.DeleteTournament(st))
	api.Post("/tournaments/:id/clubs", staff, handlers.AttachTournamentClub(st))
	api.Delete("/tournaments/:id/clubs", staff, handlers.DetachTournamentClub(st))
	api.Post("/tournaments/:id/fields", staff, handlers.AttachTournamentField(st))
	api.Delete("/tournaments/:id/fields", staff, handlers.DetachTournamentField(st))

	api.Get("/matches", handlers.ListMatches(st))
	api.Get("/matches/:id", handlers.GetMatch(st))
	api.Get("/matches/:id/chukkers", handlers.ListChukkerScores(st))
	api.Post("/matches", staff, handlers.CreateMatch(st))
	api.Put("/matches/:id", staff, handlers.UpdateMatch(st))
	api.Delete("/matches/:id", staff, handlers.DeleteMatch(st))
	// Lifecycle and live-scoring actions. These return 409 when the match is in
	// the wrong state, never silently coerce it.
	api.Post("/matches/:id/status", staff, handlers.TransitionMatch(st))
	api.Post("/matches/:id/score", staff, handlers.RecordScore(st))
	api.Post("/matches/:id/chukkers/advance", staff, handlers.AdvanceChukker(st))
	api.Post("/matches/:id/chukkers", staff, handlers.AppendChukkerScore(st, hub))
	// Per-match fact rows. Deletion is by fact-row id.
	api.Post("/matches/:id/player-stats", staff, handlers.AddPlayerStatistic(st))
	api.Post("/matches/:id/horse-stats", staff, handlers.AddHorseStatistic(st))
	api.Delete("/player-stats/:id", staff, handlers.DeletePlayerStatistic(st))
	api.Delete("/horse-stats/:id", staff, handlers.DeleteHorseStatistic(st))

	api.Get("/awards", handlers.ListAwards(st))
	api.Get("/awards/by-type", handlers.AwardsByType(st))
	api.Get("/awards/:id", handlers.GetAward(st))
	api.Post("/awards", staff, handlers.CreateAward(st))
	api.Put("/awards/:id", staff, handlers.UpdateAward(st))
	api.Delete("/awards/:id", staff, handlers.DeleteAward(st))

	api.Get("/duties", handlers.ListDuties(st))
	api.Get("/duties/:id", handlers.GetDuty(st))
	api.Post("/duties", staff, handlers.CreateDuty(st))
	api.Put("/duties/:id", staff, handlers.UpdateDuty(st))
	api.Delete("/duties/:id", staff, handlers.DeleteDuty(st))

	log.Printf("Starting server on port %s", cfg.Port)
	log.Fatal(app.Listen(":" + cfg.Port))
}
