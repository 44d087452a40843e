package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	moderncSqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/poloclub/polo-league/internal/database"
	"github.com/poloclub/polo-league/internal/store"
	"github.com/poloclub/polo-league/internal/websocket"

	_ "modernc.org/sqlite"
)

// newTestApp wires the handlers onto a Fiber app backed by in-memory SQLite,
// without the auth middleware — access control is route plumbing, tested at
// the middleware level, not here.
func newTestApp(t *testing.T) *fiber.App {
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

	st := store.New(db)
	hub := websocket.NewHub()
	go hub.Run()

	app := fiber.New()
	app.Get("/health", HealthCheck)
	app.Get("/meta/enums", Enums)

	app.Get("/clubs", ListClubs(st))
	app.Get("/clubs/:id", GetClub(st))
	app.Post("/clubs", CreateClub(st))
	app.Put("/clubs/:id", UpdateClub(st))
	app.Delete("/clubs/:id", DeleteClub(st))

	app.Post("/matches", CreateMatch(st))
	app.Get("/matches/:id", GetMatch(st))
	app.Put("/matches/:id", UpdateMatch(st))
	app.Post("/matches/:id/status", TransitionMatch(st))
	app.Post("/matches/:id/score", RecordScore(st))
	app.Post("/matches/:id/chukkers/advance", AdvanceChukker(st))
	app.Post("/matches/:id/chukkers", AppendChukkerScore(st, hub))
	app.Get("/matches/:id/chukkers", ListChukkerScores(st))

	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body any) (*http.Response, []byte) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	resp.Body.Close()
	return resp, raw
}

func TestHealthCheck(t *testing.T) {
	app := newTestApp(t)
	resp, raw := doJSON(t, app, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"status":"ok"}`, string(raw))
}

func TestEnumsEndpoint(t *testing.T) {
	app := newTestApp(t)
	resp, raw := doJSON(t, app, http.MethodGet, "/meta/enums", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var out map[string][]struct {
		Value string `json:"value"`
		Label string `json:"label"`
	}
	require.NoError(t, json.Unmarshal(raw, &out))
	assert.Len(t, out["grades"], 4)
	assert.Len(t, out["match_statuses"], 5)
	assert.Len(t, out["award_types"], 7)
}

func TestClubCRUD(t *testing.T) {
	app := newTestApp(t)

	resp, raw := doJSON(t, app, http.MethodPost, "/clubs", fiber.Map{
		"name": "La Pampa", "location": "Buenos Aires",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var club struct {
		ID     string `json:"ID"`
		Name   string `json:"Name"`
		Active bool   `json:"Active"`
	}
	require.NoError(t, json.Unmarshal(raw, &club))
	require.NotEmpty(t, club.ID)
	assert.True(t, club.Active)

	resp, raw = doJSON(t, app, http.MethodGet, "/clubs/"+club.ID, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NoError(t, json.Unmarshal(raw, &club))
	assert.Equal(t, "La Pampa", club.Name)

	resp, _ = doJSON(t, app, http.MethodDelete, "/clubs/"+club.ID, nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp, _ = doJSON(t, app, http.MethodGet, "/clubs/"+club.ID, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestCreateClubValidation(t *testing.T) {
	app := newTestApp(t)

	resp, raw := doJSON(t, app, http.MethodPost, "/clubs", fiber.Map{"location": "nowhere"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var body struct {
		Error     string `json:"error"`
		Operation string `json:"operation"`
	}
	require.NoError(t, json.Unmarshal(raw, &body))
	assert.Equal(t, "create club", body.Operation)
	assert.Equal(t, "name is required", body.Error)
}

func TestGetClubBadID(t *testing.T) {
	app := newTestApp(t)
	resp, _ := doJSON(t, app, http.MethodGet, "/clubs/not-a-uuid", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestMatchLifecycleOverHTTP(t *testing.T) {
	app := newTestApp(t)

	resp, raw := doJSON(t, app, http.MethodPost, "/matches", fiber.Map{"date": "2026-04-19"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var match struct {
		ID string `json:"ID"`
	}
	require.NoError(t, json.Unmarshal(raw, &match))

	// Completing a match that never started is a state conflict, not a 400.
	resp, _ = doJSON(t, app, http.MethodPost, "/matches/"+match.ID+"/status", fiber.Map{"status": "completed"})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	resp, _ = doJSON(t, app, http.MethodPost, "/matches/"+match.ID+"/status", fiber.Map{"status": "in_progress"})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, _ = doJSON(t, app, http.MethodPost, "/matches/"+match.ID+"/chukkers/advance", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, _ = doJSON(t, app, http.MethodPost, "/matches/"+match.ID+"/score", fiber.Map{
		"team_a_score": 3, "team_b_score": 1,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, raw = doJSON(t, app, http.MethodPost, "/matches/"+match.ID+"/chukkers", nil)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var snap struct {
		ChukkerNumber int `json:"ChukkerNumber"`
		TeamAScore    int `json:"TeamAScore"`
	}
	require.NoError(t, json.Unmarshal(raw, &snap))
	assert.Equal(t, 1, snap.ChukkerNumber)
	assert.Equal(t, 3, snap.TeamAScore)

	// A second snapshot of the same chukker is a conflict — the timeline is
	// append-only, one row per chukker.
	resp, _ = doJSON(t, app, http.MethodPost, "/matches/"+match.ID+"/chukkers", nil)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	resp, _ = doJSON(t, app, http.MethodPost, "/matches/"+match.ID+"/status", fiber.Map{"status": "completed"})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	// Terminal: the score is frozen.
	resp, _ = doJSON(t, app, http.MethodPost, "/matches/"+match.ID+"/score", fiber.Map{
		"team_a_score": 99, "team_b_score": 99,
	})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	resp, raw = doJSON(t, app, http.MethodGet, "/matches/"+match.ID+"/chukkers", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var timeline []json.RawMessage
	require.NoError(t, json.Unmarshal(raw, &timeline))
	assert.Len(t, timeline, 1)
}

func TestUpdateMatchGuards(t *testing.T) {
	app := newTestApp(t)

	// Zero chukkers is never a valid match length.
	resp, _ := doJSON(t, app, http.MethodPost, "/matches", fiber.Map{
		"date": "2026-04-19", "total_chukkers": 0,
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, raw := doJSON(t, app, http.MethodPost, "/matches", fiber.Map{"date": "2026-04-19"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var match struct {
		ID string `json:"ID"`
	}
	require.NoError(t, json.Unmarshal(raw, &match))

	resp, _ = doJSON(t, app, http.MethodPost, "/matches/"+match.ID+"/status", fiber.Map{"status": "in_progress"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	for i := 0; i < 2; i++ {
		resp, _ = doJSON(t, app, http.MethodPost, "/matches/"+match.ID+"/chukkers/advance", nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
	}

	// Play is in the second chukker, so the match can't shrink below it.
	resp, _ = doJSON(t, app, http.MethodPut, "/matches/"+match.ID, fiber.Map{"total_chukkers": 1})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	// Shortening to exactly the current chukker is fine.
	resp, raw = doJSON(t, app, http.MethodPut, "/matches/"+match.ID, fiber.Map{"total_chukkers": 2})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var updated struct {
		CurrentChukker int `json:"CurrentChukker"`
		TotalChukkers  int `json:"TotalChukkers"`
	}
	require.NoError(t, json.Unmarshal(raw, &updated))
	assert.Equal(t, 2, updated.TotalChukkers)

	resp, _ = doJSON(t, app, http.MethodPost, "/matches/"+match.ID+"/status", fiber.Map{"status": "completed"})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	// Completed means frozen: no edits of any kind, even scheduling fields.
	resp, _ = doJSON(t, app, http.MethodPut, "/matches/"+match.ID, fiber.Map{"total_chukkers": 1})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	resp, _ = doJSON(t, app, http.MethodPut, "/matches/"+match.ID, fiber.Map{"date": "2026-05-01"})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	// The record is untouched by the rejected edits.
	resp, raw = doJSON(t, app, http.MethodGet, "/matches/"+match.ID, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NoError(t, json.Unmarshal(raw, &updated))
	assert.Equal(t, 2, updated.CurrentChukker)
	assert.LessOrEqual(t, updated.CurrentChukker, updated.TotalChukkers)
}
