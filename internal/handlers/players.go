package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/poloclub/polo-league/internal/models"
	"github.com/poloclub/polo-league/internal/stats"
	"github.com/poloclub/polo-league/internal/store"
)

// PlayerRequest is the JSON body for creating or updating a player.
// An out-of-range handicap is not an error: the model clamps it to [-2, 10]
// on the way to the database. Permissive by design — data entry never fails
// on a rating typo.
type PlayerRequest struct {
	Name        string   `json:"name"` // Required on create
	Handicap    *float64 `json:"handicap"`
	BirthDate   *string  `json:"birth_date"` // "YYYY-MM-DD"
	Nationality *string  `json:"nationality"`
	ClubID      *string  `json:"club_id"`
	UserID      *string  `json:"user_id"`
}

// PlayerResponse adds the derived age to the raw record.
type PlayerResponse struct {
	models.Player
	Age *int `json:"age"` // Whole years; null when no birth date is recorded
}

func playerResponse(p *models.Player) PlayerResponse {
	return PlayerResponse{Player: *p, Age: p.Age(time.Now().UTC())}
}

// ListPlayers handles GET /api/v1/players.
// Optional query params: ?club_id=<uuid>&nationality=ARG plus sort/order/limit.
func ListPlayers(st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		filters := map[string]any{}
		if v := c.Query("club_id"); v != "" {
			filters["club_id"] = v
		}
		if v := c.Query("nationality"); v != "" {
			filters["nationality"] = v
		}
		players, err := st.ListPlayers(listOptions(c, filters))
		if err != nil {
			return storeError(c, "list players", "", err)
		}
		resp := make([]PlayerResponse, len(players))
		for i := range players {
			resp[i] = playerResponse(&players[i])
		}
		return c.JSON(resp)
	}
}

// GetPlayer handles GET /api/v1/players/:id.
func GetPlayer(st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := idParam(c)
		if err != nil {
			return opError(c, fiber.StatusBadRequest, "get player", c.Params("id"), "invalid id")
		}
		p, err := st.GetPlayer(id)
		if err != nil {
			return storeError(c, "get player", id.String(), err)
		}
		return c.JSON(playerResponse(p))
	}
}

// CreatePlayer handles POST /api/v1/players.
func CreatePlayer(st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req PlayerRequest
		if err := c.BodyParser(&req); err != nil {
			return opError(c, fiber.StatusBadRequest, "create player", "", "invalid request body")
		}
		if req.Name == "" {
			return opError(c, fiber.StatusBadRequest, "create player", "", "name is required")
		}
		p, err := playerFromRequest(&models.Player{}, &req)
		if err != nil {
			return opError(c, fiber.StatusBadRequest, "create player", "", err.Error())
		}
		if err := st.CreatePlayer(p); err != nil {
			return storeError(c, "create player", "", err)
		}
		return c.Status(fiber.StatusCreated).JSON(playerResponse(p))
	}
}

// UpdatePlayer handles PUT /api/v1/players/:id.
func UpdatePlayer(st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := idParam(c)
		if err != nil {
			return opError(c, fiber.StatusBadRequest, "update player", c.Params("id"), "invalid id")
		}
		existing, err := st.GetPlayer(id)
		if err != nil {
			return storeError(c, "update player", id.String(), err)
		}
		var req PlayerRequest
		if err := c.BodyParser(&req); err != nil {
			return opError(c, fiber.StatusBadRequest, "update player", id.String(), "invalid request body")
		}
		p, err := playerFromRequest(existing, &req)
		if err != nil {
			return opError(c, fiber.StatusBadRequest, "update player", id.String(), err.Error())
		}
		if err := st.UpdatePlayer(p); err != nil {
			return storeError(c, "update player", id.String(), err)
		}
		return c.JSON(playerResponse(p))
	}
}

// playerFromRequest applies the request fields onto the player record.
// Shared by create and update so both paths parse dates and UUIDs identically.
func playerFromRequest(p *models.Player, req *PlayerRequest) (*models.Player, error) {
	if req.Name != "" {
		p.Name = req.Name
	}
	if req.Handicap != nil {
		p.Handicap = *req.Handicap // Clamped by the model's BeforeSave hook
	}
	birth, err := parseOptionalDate(req.BirthDate)
	if err != nil {
		return nil, err
	}
	if birth != nil {
		p.BirthDate = birth
	}
	if req.Nationality != nil {
		p.Nationality = req.Nationality
	}
	clubID, err := parseOptionalUUID(req.ClubID)
	if err != nil {
		return nil, err
	}
	if req.ClubID != nil {
		p.ClubID = clubID // "" explicitly clears the club link
	}
	userID, err := parseOptionalUUID(req.UserID)
	if err != nil {
		return nil, err
	}
	if req.UserID != nil {
		p.UserID = userID
	}
	return p, nil
}

// DeletePlayer handles DELETE /api/v1/players/:id.
// The store cascades the player's duties and statistic rows and clears
// roster/award references, all in one transaction.
func DeletePlayer(st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := idParam(c)
		if err != nil {
			return opError(c, fiber.StatusBadRequest, "delete player", c.Params("id"), "invalid id")
		}
		if err := st.DeletePlayer(id); err != nil {
			return storeError(c, "delete player", id.String(), err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

// PlayerCareer handles GET /api/v1/players/:id/career — the derived career
// totals, recomputed from the player's statistic rows on every call.
func PlayerCareer(st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := idParam(c)
		if err != nil {
			return opError(c, fiber.StatusBadRequest, "player career", c.Params("id"), "invalid id")
		}
		rows, err := st.PlayerStatistics(id)
		if err != nil {
			return storeError(c, "player career", id.String(), err)
		}
		return c.JSON(stats.PlayerCareerStats(rows))
	}
}
