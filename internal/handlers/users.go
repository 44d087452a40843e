package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/poloclub/polo-league/internal/models"
	"github.com/poloclub/polo-league/internal/store"
)

// UserRequest is the JSON body for updating a user record. Users are created
// lazily by the Auth middleware on first authenticated request, so there is
// no create endpoint — only read, update, and delete.
type UserRequest struct {
	DisplayName string `json:"display_name"`
	Profile     string `json:"profile"`
}

// ListUsers handles GET /api/v1/users (administrators only).
func ListUsers(st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		filters := map[string]any{}
		if v := c.Query("profile"); v != "" {
			filters["profile"] = v
		}
		users, err := st.ListUsers(listOptions(c, filters))
		if err != nil {
			return storeError(c, "list users", "", err)
		}
		return c.JSON(users)
	}
}

// GetUser handles GET /api/v1/users/:id.
func GetUser(st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := idParam(c)
		if err != nil {
			return opError(c, fiber.StatusBadRequest, "get user", c.Params("id"), "invalid id")
		}
		u, err := st.GetUser(id)
		if err != nil {
			return storeError(c, "get user", id.String(), err)
		}
		return c.JSON(u)
	}
}

// UpdateUser handles PUT /api/v1/users/:id (administrators only).
func UpdateUser(st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := idParam(c)
		if err != nil {
			return opError(c, fiber.StatusBadRequest, "update user", c.Params("id"), "invalid id")
		}
		u, err := st.GetUser(id)
		if err != nil {
			return storeError(c, "update user", id.String(), err)
		}
		var req UserRequest
		if err := c.BodyParser(&req); err != nil {
			return opError(c, fiber.StatusBadRequest, "update user", id.String(), "invalid request body")
		}
		if req.DisplayName != "" {
			u.DisplayName = req.DisplayName
		}
		if req.Profile != "" {
			u.Profile = models.ProfileType(req.Profile)
		}
		if err := st.UpdateUser(u); err != nil {
			return storeError(c, "update user", id.String(), err)
		}
		return c.JSON(u)
	}
}

// DeleteUser handles DELETE /api/v1/users/:id (administrators only).
// The linked player and any bred horses survive with their user reference
// cleared.
func DeleteUser(st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := idParam(c)
		if err != nil {
			return opError(c, fiber.StatusBadRequest, "delete user", c.Params("id"), "invalid id")
		}
		if err := st.DeleteUser(id); err != nil {
			return storeError(c, "delete user", id.String(), err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}
