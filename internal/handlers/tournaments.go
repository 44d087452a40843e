package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/poloclub/polo-league/internal/models"
	"github.com/poloclub/polo-league/internal/stats"
	"github.com/poloclub/polo-league/internal/store"
)

// TournamentRequest is the JSON body for creating or updating a tournament.
type TournamentRequest struct {
	Name      string  `json:"name"` // Required on create
	Grade     string  `json:"grade"`
	StartDate string  `json:"start_date"` // "YYYY-MM-DD"; required on create
	EndDate   string  `json:"end_date"`   // "YYYY-MM-DD"; required on create
	Location  *string `json:"location"`
}

// ListTournaments handles GET /api/v1/tournaments.
func ListTournaments(st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		filters := map[string]any{}
		if v := c.Query("grade"); v != "" {
			filters["grade"] = v
		}
		ts, err := st.ListTournaments(listOptions(c, filters))
		if err != nil {
			return storeError(c, "list tournaments", "", err)
		}
		return c.JSON(ts)
	}
}

// GetTournament handles GET /api/v1/tournaments/:id.
func GetTournament(st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := idParam(c)
		if err != nil {
			return opError(c, fiber.StatusBadRequest, "get tournament", c.Params("id"), "invalid id")
		}
		t, err := st.GetTournament(id)
		if err != nil {
			return storeError(c, "get tournament", id.String(), err)
		}
		return c.JSON(t)
	}
}

// CreateTournament handles POST /api/v1/tournaments.
func CreateTournament(st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req TournamentRequest
		if err := c.BodyParser(&req); err != nil {
			return opError(c, fiber.StatusBadRequest, "create tournament", "", "invalid request body")
		}
		if req.Name == "" {
			return opError(c, fiber.StatusBadRequest, "create tournament", "", "name is required")
		}
		start, err := time.Parse("2006-01-02", req.StartDate)
		if err != nil {
			return opError(c, fiber.StatusBadRequest, "create tournament", "", "invalid start_date")
		}
		end, err := time.Parse("2006-01-02", req.EndDate)
		if err != nil {
			return opError(c, fiber.StatusBadRequest, "create tournament", "", "invalid end_date")
		}
		t := models.Tournament{
			Name:      req.Name,
			Grade:     models.Grade(req.Grade),
			StartDate: start,
			EndDate:   end,
			Location:  req.Location,
		}
		if err := st.CreateTournament(&t); err != nil {
			return storeError(c, "create tournament", "", err)
		}
		return c.Status(fiber.StatusCreated).JSON(t)
	}
}

// UpdateTournament handles PUT /api/v1/tournaments/:id.
func UpdateTournament(st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := idParam(c)
		if err != nil {
			return opError(c, fiber.StatusBadRequest, "update tournament", c.Params("id"), "invalid id")
		}
		t, err := st.GetTournament(id)
		if err != nil {
			return storeError(c, "update tournament", id.String(), err)
		}
		var req TournamentRequest
		if err := c.BodyParser(&req); err != nil {
			return opError(c, fiber.StatusBadRequest, "update tournament", id.String(), "invalid request body")
		}
		if req.Name != "" {
			t.Name = req.Name
		}
		if req.Grade != "" {
			t.Grade = models.Grade(req.Grade)
		}
		if req.StartDate != "" {
			start, err := time.Parse("2006-01-02", req.StartDate)
			if err != nil {
				return opError(c, fiber.StatusBadRequest, "update tournament", id.String(), "invalid start_date")
			}
			t.StartDate = start
		}
		if req.EndDate != "" {
			end, err := time.Parse("2006-01-02", req.EndDate)
			if err != nil {
				return opError(c, fiber.StatusBadRequest, "update tournament", id.String(), "invalid end_date")
			}
			t.EndDate = end
		}
		if req.Location != nil {
			t.Location = req.Location
		}
		if err := st.UpdateTournament(t); err != nil {
			return storeError(c, "update tournament", id.String(), err)
		}
		return c.JSON(t)
	}
}

// DeleteTournament handles DELETE /api/v1/tournaments/:id.
// Matches, awards, and duties survive with their tournament reference
// cleared — history outlives the tournament entry.
func DeleteTournament(st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := idParam(c)
		if err != nil {
			return opError(c, fiber.StatusBadRequest, "delete tournament", c.Params("id"), "invalid id")
		}
		if err := st.DeleteTournament(id); err != nil {
			return storeError(c, "delete tournament", id.String(), err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

// associationRequest is the body for attaching/detaching clubs and fields.
type associationRequest struct {
	ClubID  string `json:"club_id"`
	FieldID string `json:"field_id"`
}

// AttachTournamentClub handles POST /api/v1/tournaments/:id/clubs.
func AttachTournamentClub(st *store.Store) fiber.Handler {
	return tournamentAssociation(st, "attach tournament club", func(s *store.Store, tid uuid.UUID, req associationRequest) error {
		clubID, err := uuid.Parse(req.ClubID)
		if err != nil {
			return err
		}
		return s.AttachClub(tid, clubID)
	})
}

// DetachTournamentClub handles DELETE /api/v1/tournaments/:id/clubs.
func DetachTournamentClub(st *store.Store) fiber.Handler {
	return tournamentAssociation(st, "detach tournament club", func(s *store.Store, tid uuid.UUID, req associationRequest) error {
		clubID, err := uuid.Parse(req.ClubID)
		if err != nil {
			return err
		}
		return s.DetachClub(tid, clubID)
	})
}

// AttachTournamentField handles POST /api/v1/tournaments/:id/fields.
func AttachTournamentField(st *store.Store) fiber.Handler {
	return tournamentAssociation(st, "attach tournament field", func(s *store.Store, tid uuid.UUID, req associationRequest) error {
		fieldID, err := uuid.Parse(req.FieldID)
		if err != nil {
			return err
		}
		return s.AttachField(tid, fieldID)
	})
}

// DetachTournamentField handles DELETE /api/v1/tournaments/:id/fields.
func DetachTournamentField(st *store.Store) fiber.Handler {
	return tournamentAssociation(st, "detach tournament field", func(s *store.Store, tid uuid.UUID, req associationRequest) error {
		fieldID, err := uuid.Parse(req.FieldID)
		if err != nil {
			return err
		}
		return s.DetachField(tid, fieldID)
	})
}

func tournamentAssociation(st *store.Store, op string, apply func(*store.Store, uuid.UUID, associationRequest) error) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := idParam(c)
		if err != nil {
			return opError(c, fiber.StatusBadRequest, op, c.Params("id"), "invalid id")
		}
		var req associationRequest
		if err := c.BodyParser(&req); err != nil {
			return opError(c, fiber.StatusBadRequest, op, id.String(), "invalid request body")
		}
		if err := apply(st, id, req); err != nil {
			return storeError(c, op, id.String(), err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

// TournamentSummary handles GET /api/v1/tournaments/:id/summary — match
// count, distinct teams across those matches, venue count, and award count,
// derived fresh on each call.
func TournamentSummary(st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := idParam(c)
		if err != nil {
			return opError(c, fiber.StatusBadRequest, "tournament summary", c.Params("id"), "invalid id")
		}
		t, err := st.GetTournament(id)
		if err != nil {
			return storeError(c, "tournament summary", id.String(), err)
		}
		return c.JSON(stats.TournamentSummary(t.Matches, len(t.Fields), len(t.Awards)))
	}
}
