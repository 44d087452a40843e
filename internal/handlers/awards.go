package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/poloclub/polo-league/internal/models"
	"github.com/poloclub/polo-league/internal/stats"
	"github.com/poloclub/polo-league/internal/store"
)

// AwardRequest is the JSON body for creating or updating an award.
// The recipient is whichever of player_id/horse_id/team_id is set. The API
// doesn't force the recipient to match the award type's recipient kind —
// the classification is advisory (models.AwardType.RecipientKind), and
// loosely-entered historical data remains loadable.
type AwardRequest struct {
	Name         string  `json:"name"` // Required on create
	Type         string  `json:"type"`
	AwardedOn    string  `json:"awarded_on"` // "YYYY-MM-DD"; required on create
	Description  *string `json:"description"`
	TournamentID *string `json:"tournament_id"`
	PlayerID     *string `json:"player_id"`
	HorseID      *string `json:"horse_id"`
	TeamID       *string `json:"team_id"`
}

// ListAwards handles GET /api/v1/awards.
// Optional query params: ?type=champion&tournament_id=<uuid>.
func ListAwards(st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		filters := map[string]any{}
		for _, key := range []string{"type", "tournament_id", "player_id", "horse_id", "team_id"} {
			if v := c.Query(key); v != "" {
				filters[key] = v
			}
		}
		awards, err := st.ListAwards(listOptions(c, filters))
		if err != nil {
			return storeError(c, "list awards", "", err)
		}
		return c.JSON(awards)
	}
}

// AwardsByType handles GET /api/v1/awards/by-type — awards partitioned by
// type, groups ordered by type label so the output is reproducible.
func AwardsByType(st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		filters := map[string]any{}
		if v := c.Query("tournament_id"); v != "" {
			filters["tournament_id"] = v
		}
		awards, err := st.ListAwards(listOptions(c, filters))
		if err != nil {
			return storeError(c, "awards by type", "", err)
		}
		return c.JSON(stats.AwardsByType(awards))
	}
}

// GetAward handles GET /api/v1/awards/:id.
func GetAward(st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := idParam(c)
		if err != nil {
			return opError(c, fiber.StatusBadRequest, "get award", c.Params("id"), "invalid id")
		}
		a, err := st.GetAward(id)
		if err != nil {
			return storeError(c, "get award", id.String(), err)
		}
		return c.JSON(a)
	}
}

// CreateAward handles POST /api/v1/awards.
func CreateAward(st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req AwardRequest
		if err := c.BodyParser(&req); err != nil {
			return opError(c, fiber.StatusBadRequest, "create award", "", "invalid request body")
		}
		if req.Name == "" {
			return opError(c, fiber.StatusBadRequest, "create award", "", "name is required")
		}
		awardedOn, err := time.Parse("2006-01-02", req.AwardedOn)
		if err != nil {
			return opError(c, fiber.StatusBadRequest, "create award", "", "invalid awarded_on")
		}
		a := models.Award{
			Name:        req.Name,
			Type:        models.AwardType(req.Type),
			AwardedOn:   awardedOn,
			Description: req.Description,
		}
		if err := applyAwardRefs(&a, &req); err != nil {
			return opError(c, fiber.StatusBadRequest, "create award", "", err.Error())
		}
		if err := st.CreateAward(&a); err != nil {
			return storeError(c, "create award", "", err)
		}
		return c.Status(fiber.StatusCreated).JSON(a)
	}
}

// UpdateAward handles PUT /api/v1/awards/:id.
func UpdateAward(st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := idParam(c)
		if err != nil {
			return opError(c, fiber.StatusBadRequest, "update award", c.Params("id"), "invalid id")
		}
		a, err := st.GetAward(id)
		if err != nil {
			return storeError(c, "update award", id.String(), err)
		}
		var req AwardRequest
		if err := c.BodyParser(&req); err != nil {
			return opError(c, fiber.StatusBadRequest, "update award", id.String(), "invalid request body")
		}
		if req.Name != "" {
			a.Name = req.Name
		}
		if req.Type != "" {
			a.Type = models.AwardType(req.Type)
		}
		if req.AwardedOn != "" {
			awardedOn, err := time.Parse("2006-01-02", req.AwardedOn)
			if err != nil {
				return opError(c, fiber.StatusBadRequest, "update award", id.String(), "invalid awarded_on")
			}
			a.AwardedOn = awardedOn
		}
		if req.Description != nil {
			a.Description = req.Description
		}
		if err := applyAwardRefs(a, &req); err != nil {
			return opError(c, fiber.StatusBadRequest, "update award", id.String(), err.Error())
		}
		if err := st.UpdateAward(a); err != nil {
			return storeError(c, "update award", id.String(), err)
		}
		return c.JSON(a)
	}
}

// applyAwardRefs parses the optional tournament and recipient references.
func applyAwardRefs(a *models.Award, req *AwardRequest) error {
	pairs := []struct {
		raw  *string
		dest **uuid.UUID
	}{
		{req.TournamentID, &a.TournamentID},
		{req.PlayerID, &a.PlayerID},
		{req.HorseID, &a.HorseID},
		{req.TeamID, &a.TeamID},
	}
	for _, p := range pairs {
		if p.raw == nil {
			continue
		}
		id, err := parseOptionalUUID(p.raw)
		if err != nil {
			return err
		}
		*p.dest = id
	}
	return nil
}

// DeleteAward handles DELETE /api/v1/awards/:id.
func DeleteAward(st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := idParam(c)
		if err != nil {
			return opError(c, fiber.StatusBadRequest, "delete award", c.Params("id"), "invalid id")
		}
		if err := st.DeleteAward(id); err != nil {
			return storeError(c, "delete award", id.String(), err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}
