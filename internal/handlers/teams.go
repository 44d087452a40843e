package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/poloclub/polo-league/internal/models"
	"github.com/poloclub/polo-league/internal/stats"
	"github.com/poloclub/polo-league/internal/store"
)

// TeamRequest is the JSON body for creating or updating a team.
type TeamRequest struct {
	Name   string  `json:"name"` // Required on create
	Grade  string  `json:"grade"`
	Color  *string `json:"color"`
	ClubID *string `json:"club_id"`
}

// ListTeams handles GET /api/v1/teams.
// Optional query params: ?grade=high&club_id=<uuid> plus sort/order/limit.
func ListTeams(st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		filters := map[string]any{}
		if v := c.Query("grade"); v != "" {
			filters["grade"] = v
		}
		if v := c.Query("club_id"); v != "" {
			filters["club_id"] = v
		}
		teams, err := st.ListTeams(listOptions(c, filters))
		if err != nil {
			return storeError(c, "list teams", "", err)
		}
		return c.JSON(teams)
	}
}

// GetTeam handles GET /api/v1/teams/:id.
// The response carries the derived total handicap of the current roster —
// recomputed here, never stored, so a player's rating change shows up
// immediately on every team they ride for.
func GetTeam(st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := idParam(c)
		if err != nil {
			return opError(c, fiber.StatusBadRequest, "get team", c.Params("id"), "invalid id")
		}
		team, err := st.GetTeam(id)
		if err != nil {
			return storeError(c, "get team", id.String(), err)
		}
		return c.JSON(fiber.Map{
			"team":           team,
			"total_handicap": stats.TotalHandicap(team.Players),
		})
	}
}

// CreateTeam handles POST /api/v1/teams.
func CreateTeam(st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req TeamRequest
		if err := c.BodyParser(&req); err != nil {
			return opError(c, fiber.StatusBadRequest, "create team", "", "invalid request body")
		}
		if req.Name == "" {
			return opError(c, fiber.StatusBadRequest, "create team", "", "name is required")
		}
		clubID, err := parseOptionalUUID(req.ClubID)
		if err != nil {
			return opError(c, fiber.StatusBadRequest, "create team", "", "invalid club_id")
		}
		team := models.Team{
			Name:   req.Name,
			Grade:  models.Grade(req.Grade),
			Color:  req.Color,
			ClubID: clubID,
		}
		if err := st.CreateTeam(&team); err != nil {
			return storeError(c, "create team", "", err)
		}
		return c.Status(fiber.StatusCreated).JSON(team)
	}
}

// UpdateTeam handles PUT /api/v1/teams/:id.
func UpdateTeam(st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := idParam(c)
		if err != nil {
			return opError(c, fiber.StatusBadRequest, "update team", c.Params("id"), "invalid id")
		}
		team, err := st.GetTeam(id)
		if err != nil {
			return storeError(c, "update team", id.String(), err)
		}
		var req TeamRequest
		if err := c.BodyParser(&req); err != nil {
			return opError(c, fiber.StatusBadRequest, "update team", id.String(), "invalid request body")
		}
		if req.Name != "" {
			team.Name = req.Name
		}
		if req.Grade != "" {
			team.Grade = models.Grade(req.Grade)
		}
		team.Color = req.Color
		if req.ClubID != nil {
			clubID, err := parseOptionalUUID(req.ClubID)
			if err != nil {
				return opError(c, fiber.StatusBadRequest, "update team", id.String(), "invalid club_id")
			}
			team.ClubID = clubID
		}
		if err := st.UpdateTeam(team); err != nil {
			return storeError(c, "update team", id.String(), err)
		}
		return c.JSON(team)
	}
}

// DeleteTeam handles DELETE /api/v1/teams/:id.
// The store cascades the team's matches (and their fact rows) and clears
// roster and award references atomically.
func DeleteTeam(st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := idParam(c)
		if err != nil {
			return opError(c, fiber.StatusBadRequest, "delete team", c.Params("id"), "invalid id")
		}
		if err := st.DeleteTeam(id); err != nil {
			return storeError(c, "delete team", id.String(), err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

// rosterRequest is the body for roster membership changes.
type rosterRequest struct {
	PlayerID string `json:"player_id"`
}

// AddRosterPlayer handles POST /api/v1/teams/:id/players.
func AddRosterPlayer(st *store.Store) fiber.Handler {
	return rosterChange(st, "add roster player", (*store.Store).AddPlayerToTeam)
}

// RemoveRosterPlayer handles DELETE /api/v1/teams/:id/players.
// The player record survives — only the membership goes away.
func RemoveRosterPlayer(st *store.Store) fiber.Handler {
	return rosterChange(st, "remove roster player", (*store.Store).RemovePlayerFromTeam)
}

// rosterChange is the shared handler shape for both roster mutations; the
// two endpoints differ only in which store method they call.
func rosterChange(st *store.Store, op string, apply func(*store.Store, uuid.UUID, uuid.UUID) error) fiber.Handler {
	return func(c *fiber.Ctx) error {
		teamID, err := idParam(c)
		if err != nil {
			return opError(c, fiber.StatusBadRequest, op, c.Params("id"), "invalid id")
		}
		var req rosterRequest
		if err := c.BodyParser(&req); err != nil {
			return opError(c, fiber.StatusBadRequest, op, teamID.String(), "invalid request body")
		}
		playerID, err := uuid.Parse(req.PlayerID)
		if err != nil {
			return opError(c, fiber.StatusBadRequest, op, teamID.String(), "invalid player_id")
		}
		if err := apply(st, teamID, playerID); err != nil {
			return storeError(c, op, teamID.String(), err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

// TeamRecord handles GET /api/v1/teams/:id/record — the derived win/loss
// standing over every match the team played, on either side.
func TeamRecord(st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := idParam(c)
		if err != nil {
			return opError(c, fiber.StatusBadRequest, "team record", c.Params("id"), "invalid id")
		}
		matches, err := st.TeamMatches(id)
		if err != nil {
			return storeError(c, "team record", id.String(), err)
		}
		return c.JSON(stats.TeamRecord(id, matches))
	}
}
