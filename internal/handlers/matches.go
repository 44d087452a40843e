package handlers

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/poloclub/polo-league/internal/models"
	"github.com/poloclub/polo-league/internal/store"
	"github.com/poloclub/polo-league/internal/websocket"
)

// MatchRequest is the JSON body for creating or updating a match.
// Tournament, field, and both teams are individually optional so a match can
// be entered before it's fully scheduled.
type MatchRequest struct {
	Date          string  `json:"date"` // "YYYY-MM-DD"; required on create
	TotalChukkers *int    `json:"total_chukkers"`
	TournamentID  *string `json:"tournament_id"`
	FieldID       *string `json:"field_id"`
	TeamAID       *string `json:"team_a_id"`
	TeamBID       *string `json:"team_b_id"`
}

// MatchResponse adds the derived winner to the raw record. Winner is only
// defined for completed, non-tied matches; otherwise null.
type MatchResponse struct {
	models.Match
	WinnerID *string `json:"winner_id"`
}

func matchResponse(m *models.Match) MatchResponse {
	return MatchResponse{Match: *m, WinnerID: optionalUUIDString(m.Winner())}
}

// ListMatches handles GET /api/v1/matches.
// Optional query params: ?status=completed&tournament_id=<uuid>&team_a_id=...
func ListMatches(st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		filters := map[string]any{}
		for _, key := range []string{"status", "tournament_id", "field_id", "team_a_id", "team_b_id"} {
			if v := c.Query(key); v != "" {
				filters[key] = v
			}
		}
		matches, err := st.ListMatches(listOptions(c, filters))
		if err != nil {
			return storeError(c, "list matches", "", err)
		}
		resp := make([]MatchResponse, len(matches))
		for i := range matches {
			resp[i] = matchResponse(&matches[i])
		}
		return c.JSON(resp)
	}
}

// GetMatch handles GET /api/v1/matches/:id.
func GetMatch(st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := idParam(c)
		if err != nil {
			return opError(c, fiber.StatusBadRequest, "get match", c.Params("id"), "invalid id")
		}
		m, err := st.GetMatch(id)
		if err != nil {
			return storeError(c, "get match", id.String(), err)
		}
		return c.JSON(matchResponse(m))
	}
}

// CreateMatch handles POST /api/v1/matches.
func CreateMatch(st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req MatchRequest
		if err := c.BodyParser(&req); err != nil {
			return opError(c, fiber.StatusBadRequest, "create match", "", "invalid request body")
		}
		date, err := time.Parse("2006-01-02", req.Date)
		if err != nil {
			return opError(c, fiber.StatusBadRequest, "create match", "", "invalid date")
		}
		m := models.Match{Date: date, Status: models.MatchStatusScheduled}
		if req.TotalChukkers != nil {
			if err := m.SetTotalChukkers(*req.TotalChukkers); err != nil {
				return opError(c, fiber.StatusBadRequest, "create match", "", err.Error())
			}
		}
		if err := applyMatchRefs(&m, &req); err != nil {
			return opError(c, fiber.StatusBadRequest, "create match", "", err.Error())
		}
		if err := st.CreateMatch(&m); err != nil {
			return storeError(c, "create match", "", err)
		}
		return c.Status(fiber.StatusCreated).JSON(matchResponse(&m))
	}
}

// UpdateMatch handles PUT /api/v1/matches/:id — scheduling fields only.
// Status moves through the transition endpoint and scores through the score
// endpoint, so the state-machine rules can't be bypassed by a plain update.
// Completed and cancelled matches are immutable and come back as 409.
func UpdateMatch(st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := idParam(c)
		if err != nil {
			return opError(c, fiber.StatusBadRequest, "update match", c.Params("id"), "invalid id")
		}
		m, err := st.GetMatch(id)
		if err != nil {
			return storeError(c, "update match", id.String(), err)
		}
		if m.Status.Terminal() {
			return opError(c, fiber.StatusConflict, "update match", id.String(), models.ErrMatchFinal.Error())
		}
		var req MatchRequest
		if err := c.BodyParser(&req); err != nil {
			return opError(c, fiber.StatusBadRequest, "update match", id.String(), "invalid request body")
		}
		if req.Date != "" {
			date, err := time.Parse("2006-01-02", req.Date)
			if err != nil {
				return opError(c, fiber.StatusBadRequest, "update match", id.String(), "invalid date")
			}
			m.Date = date
		}
		if req.TotalChukkers != nil {
			if err := m.SetTotalChukkers(*req.TotalChukkers); err != nil {
				return opError(c, fiber.StatusBadRequest, "update match", id.String(), err.Error())
			}
		}
		if err := applyMatchRefs(m, &req); err != nil {
			return opError(c, fiber.StatusBadRequest, "update match", id.String(), err.Error())
		}
		if err := st.UpdateMatch(m); err != nil {
			return storeError(c, "update match", id.String(), err)
		}
		return c.JSON(matchResponse(m))
	}
}

// applyMatchRefs parses and applies the optional scheduling references.
// An explicit empty string clears the reference; an absent field leaves it alone.
func applyMatchRefs(m *models.Match, req *MatchRequest) error {
	refs := []struct {
		raw  *string
		dest **uuid.UUID
	}{
		{req.TournamentID, &m.TournamentID},
		{req.FieldID, &m.FieldID},
		{req.TeamAID, &m.TeamAID},
		{req.TeamBID, &m.TeamBID},
	}
	for _, r := range refs {
		if r.raw == nil {
			continue
		}
		id, err := parseOptionalUUID(r.raw)
		if err != nil {
			return err
		}
		*r.dest = id
	}
	return nil
}

// DeleteMatch handles DELETE /api/v1/matches/:id.
// The match's statistic and chukker rows cascade away with it; duty
// references are cleared.
func DeleteMatch(st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := idParam(c)
		if err != nil {
			return opError(c, fiber.StatusBadRequest, "delete match", c.Params("id"), "invalid id")
		}
		if err := st.DeleteMatch(id); err != nil {
			return storeError(c, "delete match", id.String(), err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

// transitionRequest is the body for POST /api/v1/matches/:id/status.
type transitionRequest struct {
	Status string `json:"status"`
}

// TransitionMatch handles POST /api/v1/matches/:id/status — the only way to
// move a match through its lifecycle. Illegal transitions (completing a
// scheduled match, touching a cancelled one) come back as 409 Conflict.
func TransitionMatch(st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := idParam(c)
		if err != nil {
			return opError(c, fiber.StatusBadRequest, "transition match", c.Params("id"), "invalid id")
		}
		var req transitionRequest
		if err := c.BodyParser(&req); err != nil {
			return opError(c, fiber.StatusBadRequest, "transition match", id.String(), "invalid request body")
		}
		m, err := st.TransitionMatch(id, models.MatchStatus(req.Status))
		if err != nil {
			if errors.Is(err, models.ErrInvalidTransition) {
				return opError(c, fiber.StatusConflict, "transition match", id.String(), err.Error())
			}
			return storeError(c, "transition match", id.String(), err)
		}
		return c.JSON(matchResponse(m))
	}
}

// scoreRequest is the body for POST /api/v1/matches/:id/score.
type scoreRequest struct {
	TeamAScore int `json:"team_a_score"`
	TeamBScore int `json:"team_b_score"`
}

// RecordScore handles POST /api/v1/matches/:id/score — updates the running
// score of a live match. Rejected with 409 once the match is terminal.
func RecordScore(st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := idParam(c)
		if err != nil {
			return opError(c, fiber.StatusBadRequest, "record score", c.Params("id"), "invalid id")
		}
		var req scoreRequest
		if err := c.BodyParser(&req); err != nil {
			return opError(c, fiber.StatusBadRequest, "record score", id.String(), "invalid request body")
		}
		m, err := st.RecordScore(id, req.TeamAScore, req.TeamBScore)
		if err != nil {
			if errors.Is(err, models.ErrMatchNotLive) {
				return opError(c, fiber.StatusConflict, "record score", id.String(), err.Error())
			}
			return storeError(c, "record score", id.String(), err)
		}
		return c.JSON(matchResponse(m))
	}
}

// AdvanceChukker handles POST /api/v1/matches/:id/chukkers/advance.
func AdvanceChukker(st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := idParam(c)
		if err != nil {
			return opError(c, fiber.StatusBadRequest, "advance chukker", c.Params("id"), "invalid id")
		}
		m, err := st.AdvanceChukker(id)
		if err != nil {
			if errors.Is(err, models.ErrMatchNotLive) || errors.Is(err, models.ErrChukkerOverflow) {
				return opError(c, fiber.StatusConflict, "advance chukker", id.String(), err.Error())
			}
			return storeError(c, "advance chukker", id.String(), err)
		}
		return c.JSON(matchResponse(m))
	}
}

// AppendChukkerScore handles POST /api/v1/matches/:id/chukkers — snapshots
// the current chukker's running score as an immutable row and pushes it to
// every WebSocket client watching the match.
func AppendChukkerScore(st *store.Store, hub *websocket.Hub) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := idParam(c)
		if err != nil {
			return opError(c, fiber.StatusBadRequest, "append chukker score", c.Params("id"), "invalid id")
		}
		snap, err := st.AppendChukkerScore(id)
		if err != nil {
			if errors.Is(err, models.ErrMatchNotLive) || errors.Is(err, store.ErrNoChukkerInPlay) ||
				errors.Is(err, store.ErrChukkerAlreadySnapshotted) {
				return opError(c, fiber.StatusConflict, "append chukker score", id.String(), err.Error())
			}
			return storeError(c, "append chukker score", id.String(), err)
		}
		// Push the snapshot to live spectators. Marshal can't fail for this
		// struct, but skip the broadcast rather than fail the request if it does.
		if data, err := json.Marshal(snap); err == nil {
			hub.BroadcastToMatch(id.String(), data)
		}
		return c.Status(fiber.StatusCreated).JSON(snap)
	}
}

// ListChukkerScores handles GET /api/v1/matches/:id/chukkers — the match's
// replayable chukker-by-chukker timeline, in play order.
func ListChukkerScores(st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := idParam(c)
		if err != nil {
			return opError(c, fiber.StatusBadRequest, "list chukker scores", c.Params("id"), "invalid id")
		}
		rows, err := st.ChukkerScores(id)
		if err != nil {
			return storeError(c, "list chukker scores", id.String(), err)
		}
		return c.JSON(rows)
	}
}
