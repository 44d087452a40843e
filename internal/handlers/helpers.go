// Package handlers contains HTTP route handler functions for the Polo League API.
// Each exported function follows the "handler factory" pattern: it takes the
// store (and sometimes the websocket hub) and returns a fiber.Handler — a
// function that handles a single HTTP request. This lets us inject
// dependencies without using global variables.
//
// Handlers are a thin collaborator over the store and stats packages: they
// decode requests, call one store operation, and encode the result. Domain
// rules (handicap clamping, the match state machine, deletion propagation)
// live below this layer and hold no matter which route invokes them.
package handlers

import (
	"errors"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/poloclub/polo-league/internal/store"
)

// opError writes the uniform error body for a failed mutation: what was
// attempted, on which entity, and why. Read and aggregate endpoints never use
// this for domain reasons — they are total — only for malformed requests.
func opError(c *fiber.Ctx, status int, op, entityID, msg string) error {
	return c.Status(status).JSON(fiber.Map{
		"error":     msg,
		"operation": op,
		"entity_id": entityID,
	})
}

// idParam parses the :id route parameter as a UUID.
func idParam(c *fiber.Ctx) (uuid.UUID, error) {
	return uuid.Parse(c.Params("id"))
}

// storeError maps a store failure onto the right HTTP status:
// gorm.ErrRecordNotFound → 404, everything else → 500.
func storeError(c *fiber.Ctx, op, entityID string, err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return opError(c, fiber.StatusNotFound, op, entityID, "not found")
	}
	return opError(c, fiber.StatusInternalServerError, op, entityID, err.Error())
}

// listOptions builds store.ListOptions from the common query parameters:
// ?sort=<column>&order=desc&limit=50 plus any entity-specific filters the
// caller collected. Unknown sort columns are ignored by the store whitelist.
func listOptions(c *fiber.Ctx, filters map[string]any) store.ListOptions {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			limit = n
		}
	}
	return store.ListOptions{
		Filters: filters,
		SortBy:  c.Query("sort"),
		Desc:    c.Query("order") == "desc",
		Limit:   limit,
	}
}

// formatOptionalDate converts a *time.Time to a *string in "2006-01-02" format.
// Returns nil if the input is nil (preserving the nullable property in the JSON response).
func formatOptionalDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.UTC().Format("2006-01-02")
	return &s
}

// parseOptionalDate parses an optional date string ("YYYY-MM-DD") into a *time.Time.
// Returns nil if the input string pointer is nil or empty.
// Returns an error if the string is non-empty but not a valid date.
func parseOptionalDate(s *string) (*time.Time, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", *s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// parseOptionalUUID parses an optional UUID string, treating nil and "" as absent.
func parseOptionalUUID(s *string) (*uuid.UUID, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	id, err := uuid.Parse(*s)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

// optionalUUIDString renders an optional UUID for a response body.
func optionalUUIDString(id *uuid.UUID) *string {
	if id == nil {
		return nil
	}
	s := id.String()
	return &s
}
