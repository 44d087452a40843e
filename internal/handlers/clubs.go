package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/poloclub/polo-league/internal/models"
	"github.com/poloclub/polo-league/internal/store"
)

// ClubRequest is the JSON body for creating or updating a club.
type ClubRequest struct {
	Name         string  `json:"name"` // Required
	Location     string  `json:"location"`
	ContactEmail *string `json:"contact_email"`
	ContactPhone *string `json:"contact_phone"`
	Active       *bool   `json:"active"` // Optional on update; defaults to true on create
}

// ListClubs handles GET /api/v1/clubs.
// Optional query params: ?active=true|false, plus the common sort/order/limit.
func ListClubs(st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		filters := map[string]any{}
		if active := c.Query("active"); active != "" {
			filters["active"] = active == "true"
		}
		clubs, err := st.ListClubs(listOptions(c, filters))
		if err != nil {
			return storeError(c, "list clubs", "", err)
		}
		return c.JSON(clubs)
	}
}

// GetClub handles GET /api/v1/clubs/:id.
func GetClub(st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := idParam(c)
		if err != nil {
			return opError(c, fiber.StatusBadRequest, "get club", c.Params("id"), "invalid id")
		}
		club, err := st.GetClub(id)
		if err != nil {
			return storeError(c, "get club", id.String(), err)
		}
		return c.JSON(club)
	}
}

// CreateClub handles POST /api/v1/clubs.
func CreateClub(st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req ClubRequest
		if err := c.BodyParser(&req); err != nil {
			return opError(c, fiber.StatusBadRequest, "create club", "", "invalid request body")
		}
		if req.Name == "" {
			return opError(c, fiber.StatusBadRequest, "create club", "", "name is required")
		}

		club := models.Club{
			Name:         req.Name,
			Location:     req.Location,
			ContactEmail: req.ContactEmail,
			ContactPhone: req.ContactPhone,
			Active:       true,
		}
		if req.Active != nil {
			club.Active = *req.Active
		}
		if err := st.CreateClub(&club); err != nil {
			return storeError(c, "create club", "", err)
		}
		return c.Status(fiber.StatusCreated).JSON(club)
	}
}

// UpdateClub handles PUT /api/v1/clubs/:id.
// The whole record is replaced from the request body (scalar fields only —
// relationship membership has its own endpoints).
func UpdateClub(st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := idParam(c)
		if err != nil {
			return opError(c, fiber.StatusBadRequest, "update club", c.Params("id"), "invalid id")
		}
		club, err := st.GetClub(id)
		if err != nil {
			return storeError(c, "update club", id.String(), err)
		}

		var req ClubRequest
		if err := c.BodyParser(&req); err != nil {
			return opError(c, fiber.StatusBadRequest, "update club", id.String(), "invalid request body")
		}
		if req.Name != "" {
			club.Name = req.Name
		}
		club.Location = req.Location
		club.ContactEmail = req.ContactEmail
		club.ContactPhone = req.ContactPhone
		if req.Active != nil {
			club.Active = *req.Active
		}
		if err := st.UpdateClub(club); err != nil {
			return storeError(c, "update club", id.String(), err)
		}
		return c.JSON(club)
	}
}

// DeleteClub handles DELETE /api/v1/clubs/:id.
// Teams, players, and tournament links survive with their club reference
// cleared — the store applies the nullify policy atomically.
func DeleteClub(st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := idParam(c)
		if err != nil {
			return opError(c, fiber.StatusBadRequest, "delete club", c.Params("id"), "invalid id")
		}
		if err := st.DeleteClub(id); err != nil {
			return storeError(c, "delete club", id.String(), err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}
