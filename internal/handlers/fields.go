package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/poloclub/polo-league/internal/models"
	"github.com/poloclub/polo-league/internal/store"
)

// FieldRequest is the JSON body for creating or updating a field.
type FieldRequest struct {
	Name     string `json:"name"` // Required on create
	Location string `json:"location"`
	Grade    string `json:"grade"`
	Surface  string `json:"surface"`
	LengthYd *int   `json:"length_yd"`
	WidthYd  *int   `json:"width_yd"`
}

// ListFields handles GET /api/v1/fields.
// Optional query params: ?surface=grass&grade=open plus sort/order/limit.
func ListFields(st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		filters := map[string]any{}
		for _, key := range []string{"surface", "grade", "location"} {
			if v := c.Query(key); v != "" {
				filters[key] = v
			}
		}
		fields, err := st.ListFields(listOptions(c, filters))
		if err != nil {
			return storeError(c, "list fields", "", err)
		}
		return c.JSON(fields)
	}
}

// GetField handles GET /api/v1/fields/:id.
func GetField(st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := idParam(c)
		if err != nil {
			return opError(c, fiber.StatusBadRequest, "get field", c.Params("id"), "invalid id")
		}
		f, err := st.GetField(id)
		if err != nil {
			return storeError(c, "get field", id.String(), err)
		}
		return c.JSON(f)
	}
}

// CreateField handles POST /api/v1/fields.
func CreateField(st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req FieldRequest
		if err := c.BodyParser(&req); err != nil {
			return opError(c, fiber.StatusBadRequest, "create field", "", "invalid request body")
		}
		if req.Name == "" {
			return opError(c, fiber.StatusBadRequest, "create field", "", "name is required")
		}
		f := models.Field{
			Name:     req.Name,
			Location: req.Location,
			Grade:    models.Grade(req.Grade),
			Surface:  models.FieldSurface(req.Surface),
			LengthYd: req.LengthYd,
			WidthYd:  req.WidthYd,
		}
		if err := st.CreateField(&f); err != nil {
			return storeError(c, "create field", "", err)
		}
		return c.Status(fiber.StatusCreated).JSON(f)
	}
}

// UpdateField handles PUT /api/v1/fields/:id.
func UpdateField(st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := idParam(c)
		if err != nil {
			return opError(c, fiber.StatusBadRequest, "update field", c.Params("id"), "invalid id")
		}
		f, err := st.GetField(id)
		if err != nil {
			return storeError(c, "update field", id.String(), err)
		}
		var req FieldRequest
		if err := c.BodyParser(&req); err != nil {
			return opError(c, fiber.StatusBadRequest, "update field", id.String(), "invalid request body")
		}
		if req.Name != "" {
			f.Name = req.Name
		}
		if req.Location != "" {
			f.Location = req.Location
		}
		if req.Grade != "" {
			f.Grade = models.Grade(req.Grade)
		}
		if req.Surface != "" {
			f.Surface = models.FieldSurface(req.Surface)
		}
		if req.LengthYd != nil {
			f.LengthYd = req.LengthYd
		}
		if req.WidthYd != nil {
			f.WidthYd = req.WidthYd
		}
		if err := st.UpdateField(f); err != nil {
			return storeError(c, "update field", id.String(), err)
		}
		return c.JSON(f)
	}
}

// DeleteField handles DELETE /api/v1/fields/:id.
// Matches hosted on the field are deleted with it (cascade), along with
// their statistic and chukker rows; tournament venue links are cleared.
func DeleteField(st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := idParam(c)
		if err != nil {
			return opError(c, fiber.StatusBadRequest, "delete field", c.Params("id"), "invalid id")
		}
		if err := st.DeleteField(id); err != nil {
			return storeError(c, "delete field", id.String(), err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}
