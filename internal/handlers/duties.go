package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/poloclub/polo-league/internal/models"
	"github.com/poloclub/polo-league/internal/store"
)

// DutyRequest is the JSON body for creating or updating a duty assignment.
// A duty always belongs to one player; match and tournament context are both
// optional (and, unusually, both may be set — the data was never exclusive).
type DutyRequest struct {
	Type         string  `json:"type"`
	AssignedAt   string  `json:"assigned_at"` // RFC 3339 timestamp; required on create
	Completed    *bool   `json:"completed"`
	Notes        *string `json:"notes"`
	PlayerID     string  `json:"player_id"` // Required on create
	MatchID      *string `json:"match_id"`
	TournamentID *string `json:"tournament_id"`
}

// ListDuties handles GET /api/v1/duties.
// Optional query params: ?player_id=<uuid>&completed=false&type=umpire.
func ListDuties(st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		filters := map[string]any{}
		for _, key := range []string{"type", "player_id", "match_id", "tournament_id"} {
			if v := c.Query(key); v != "" {
				filters[key] = v
			}
		}
		if v := c.Query("completed"); v != "" {
			filters["completed"] = v == "true"
		}
		duties, err := st.ListDuties(listOptions(c, filters))
		if err != nil {
			return storeError(c, "list duties", "", err)
		}
		return c.JSON(duties)
	}
}

// GetDuty handles GET /api/v1/duties/:id.
func GetDuty(st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := idParam(c)
		if err != nil {
			return opError(c, fiber.StatusBadRequest, "get duty", c.Params("id"), "invalid id")
		}
		d, err := st.GetDuty(id)
		if err != nil {
			return storeError(c, "get duty", id.String(), err)
		}
		return c.JSON(d)
	}
}

// CreateDuty handles POST /api/v1/duties.
func CreateDuty(st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req DutyRequest
		if err := c.BodyParser(&req); err != nil {
			return opError(c, fiber.StatusBadRequest, "create duty", "", "invalid request body")
		}
		playerID, err := uuid.Parse(req.PlayerID)
		if err != nil {
			return opError(c, fiber.StatusBadRequest, "create duty", "", "invalid player_id")
		}
		assignedAt, err := time.Parse(time.RFC3339, req.AssignedAt)
		if err != nil {
			return opError(c, fiber.StatusBadRequest, "create duty", "", "invalid assigned_at")
		}
		d := models.Duty{
			Type:       models.DutyType(req.Type),
			AssignedAt: assignedAt,
			Notes:      req.Notes,
			PlayerID:   playerID,
		}
		if req.Completed != nil {
			d.Completed = *req.Completed
		}
		matchID, err := parseOptionalUUID(req.MatchID)
		if err != nil {
			return opError(c, fiber.StatusBadRequest, "create duty", "", "invalid match_id")
		}
		d.MatchID = matchID
		tournamentID, err := parseOptionalUUID(req.TournamentID)
		if err != nil {
			return opError(c, fiber.StatusBadRequest, "create duty", "", "invalid tournament_id")
		}
		d.TournamentID = tournamentID
		if err := st.CreateDuty(&d); err != nil {
			return storeError(c, "create duty", "", err)
		}
		return c.Status(fiber.StatusCreated).JSON(d)
	}
}

// UpdateDuty handles PUT /api/v1/duties/:id — typically flipping the
// completion flag or amending notes after the duty is worked.
func UpdateDuty(st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := idParam(c)
		if err != nil {
			return opError(c, fiber.StatusBadRequest, "update duty", c.Params("id"), "invalid id")
		}
		d, err := st.GetDuty(id)
		if err != nil {
			return storeError(c, "update duty", id.String(), err)
		}
		var req DutyRequest
		if err := c.BodyParser(&req); err != nil {
			return opError(c, fiber.StatusBadRequest, "update duty", id.String(), "invalid request body")
		}
		if req.Type != "" {
			d.Type = models.DutyType(req.Type)
		}
		if req.AssignedAt != "" {
			assignedAt, err := time.Parse(time.RFC3339, req.AssignedAt)
			if err != nil {
				return opError(c, fiber.StatusBadRequest, "update duty", id.String(), "invalid assigned_at")
			}
			d.AssignedAt = assignedAt
		}
		if req.Completed != nil {
			d.Completed = *req.Completed
		}
		if req.Notes != nil {
			d.Notes = req.Notes
		}
		if req.MatchID != nil {
			matchID, err := parseOptionalUUID(req.MatchID)
			if err != nil {
				return opError(c, fiber.StatusBadRequest, "update duty", id.String(), "invalid match_id")
			}
			d.MatchID = matchID
		}
		if req.TournamentID != nil {
			tournamentID, err := parseOptionalUUID(req.TournamentID)
			if err != nil {
				return opError(c, fiber.StatusBadRequest, "update duty", id.String(), "invalid tournament_id")
			}
			d.TournamentID = tournamentID
		}
		if err := st.UpdateDuty(d); err != nil {
			return storeError(c, "update duty", id.String(), err)
		}
		return c.JSON(d)
	}
}

// DeleteDuty handles DELETE /api/v1/duties/:id.
func DeleteDuty(st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := idParam(c)
		if err != nil {
			return opError(c, fiber.StatusBadRequest, "delete duty", c.Params("id"), "invalid id")
		}
		if err := st.DeleteDuty(id); err != nil {
			return storeError(c, "delete duty", id.String(), err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}
