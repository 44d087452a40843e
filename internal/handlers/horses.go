package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/poloclub/polo-league/internal/models"
	"github.com/poloclub/polo-league/internal/stats"
	"github.com/poloclub/polo-league/internal/store"
)

// HorseRequest is the JSON body for creating or updating a horse.
type HorseRequest struct {
	Name               string  `json:"name"` // Required on create
	BirthDate          *string `json:"birth_date"`
	Gender             string  `json:"gender"`
	Color              string  `json:"color"`
	Sire               *string `json:"sire"`
	Dam                *string `json:"dam"`
	RegistrationNumber *string `json:"registration_number"`
	BreederID          *string `json:"breeder_id"`
}

// HorseResponse adds the derived age to the raw record.
type HorseResponse struct {
	models.Horse
	Age *int `json:"age"` // Whole years; null when no birth date is recorded
}

func horseResponse(h *models.Horse) HorseResponse {
	return HorseResponse{Horse: *h, Age: h.Age(time.Now().UTC())}
}

// ListHorses handles GET /api/v1/horses.
// Optional query params: ?gender=mare&color=bay&breeder_id=<uuid>.
func ListHorses(st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		filters := map[string]any{}
		for _, key := range []string{"gender", "color", "breeder_id"} {
			if v := c.Query(key); v != "" {
				filters[key] = v
			}
		}
		horses, err := st.ListHorses(listOptions(c, filters))
		if err != nil {
			return storeError(c, "list horses", "", err)
		}
		resp := make([]HorseResponse, len(horses))
		for i := range horses {
			resp[i] = horseResponse(&horses[i])
		}
		return c.JSON(resp)
	}
}

// GetHorse handles GET /api/v1/horses/:id.
func GetHorse(st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := idParam(c)
		if err != nil {
			return opError(c, fiber.StatusBadRequest, "get horse", c.Params("id"), "invalid id")
		}
		h, err := st.GetHorse(id)
		if err != nil {
			return storeError(c, "get horse", id.String(), err)
		}
		return c.JSON(horseResponse(h))
	}
}

// CreateHorse handles POST /api/v1/horses.
func CreateHorse(st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req HorseRequest
		if err := c.BodyParser(&req); err != nil {
			return opError(c, fiber.StatusBadRequest, "create horse", "", "invalid request body")
		}
		if req.Name == "" {
			return opError(c, fiber.StatusBadRequest, "create horse", "", "name is required")
		}
		h, err := horseFromRequest(&models.Horse{}, &req)
		if err != nil {
			return opError(c, fiber.StatusBadRequest, "create horse", "", err.Error())
		}
		if err := st.CreateHorse(h); err != nil {
			return storeError(c, "create horse", "", err)
		}
		return c.Status(fiber.StatusCreated).JSON(horseResponse(h))
	}
}

// UpdateHorse handles PUT /api/v1/horses/:id.
func UpdateHorse(st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := idParam(c)
		if err != nil {
			return opError(c, fiber.StatusBadRequest, "update horse", c.Params("id"), "invalid id")
		}
		existing, err := st.GetHorse(id)
		if err != nil {
			return storeError(c, "update horse", id.String(), err)
		}
		var req HorseRequest
		if err := c.BodyParser(&req); err != nil {
			return opError(c, fiber.StatusBadRequest, "update horse", id.String(), "invalid request body")
		}
		h, err := horseFromRequest(existing, &req)
		if err != nil {
			return opError(c, fiber.StatusBadRequest, "update horse", id.String(), err.Error())
		}
		if err := st.UpdateHorse(h); err != nil {
			return storeError(c, "update horse", id.String(), err)
		}
		return c.JSON(horseResponse(h))
	}
}

// horseFromRequest applies the request fields onto the horse record.
func horseFromRequest(h *models.Horse, req *HorseRequest) (*models.Horse, error) {
	if req.Name != "" {
		h.Name = req.Name
	}
	birth, err := parseOptionalDate(req.BirthDate)
	if err != nil {
		return nil, err
	}
	if birth != nil {
		h.BirthDate = birth
	}
	if req.Gender != "" {
		h.Gender = models.HorseGender(req.Gender)
	}
	if req.Color != "" {
		h.Color = models.CoatColor(req.Color)
	}
	if req.Sire != nil {
		h.Sire = req.Sire
	}
	if req.Dam != nil {
		h.Dam = req.Dam
	}
	if req.RegistrationNumber != nil {
		h.RegistrationNumber = req.RegistrationNumber
	}
	if req.BreederID != nil {
		breederID, err := parseOptionalUUID(req.BreederID)
		if err != nil {
			return nil, err
		}
		h.BreederID = breederID
	}
	return h, nil
}

// DeleteHorse handles DELETE /api/v1/horses/:id.
func DeleteHorse(st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := idParam(c)
		if err != nil {
			return opError(c, fiber.StatusBadRequest, "delete horse", c.Params("id"), "invalid id")
		}
		if err := st.DeleteHorse(id); err != nil {
			return storeError(c, "delete horse", id.String(), err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

// HorseActivity handles GET /api/v1/horses/:id/activity — total games and
// distinct tournaments, derived from the horse's statistic rows through
// their matches. A horse playing three matches in one tournament counts that
// tournament once.
func HorseActivity(st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := idParam(c)
		if err != nil {
			return opError(c, fiber.StatusBadRequest, "horse activity", c.Params("id"), "invalid id")
		}
		rows, err := st.HorseStatistics(id)
		if err != nil {
			return storeError(c, "horse activity", id.String(), err)
		}
		matchIDs := make([]uuid.UUID, 0, len(rows))
		for i := range rows {
			matchIDs = append(matchIDs, rows[i].MatchID)
		}
		matchesByID, err := st.MatchesByIDs(matchIDs)
		if err != nil {
			return storeError(c, "horse activity", id.String(), err)
		}
		return c.JSON(stats.HorseActivity(rows, matchesByID))
	}
}
