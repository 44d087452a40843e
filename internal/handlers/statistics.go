package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/poloclub/polo-league/internal/models"
	"github.com/poloclub/polo-league/internal/store"
)

// PlayerStatisticRequest is the body for recording a player's participation
// in a match. One row per (player, match) — a duplicate is rejected by the
// database's composite unique index.
type PlayerStatisticRequest struct {
	PlayerID    string `json:"player_id"`
	Goals       int    `json:"goals"`
	Assists     int    `json:"assists"`
	Fouls       int    `json:"fouls"`
	YellowCards int    `json:"yellow_cards"`
	RedCards    int    `json:"red_cards"`
}

// AddPlayerStatistic handles POST /api/v1/matches/:id/player-stats.
func AddPlayerStatistic(st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		matchID, err := idParam(c)
		if err != nil {
			return opError(c, fiber.StatusBadRequest, "add player statistic", c.Params("id"), "invalid id")
		}
		var req PlayerStatisticRequest
		if err := c.BodyParser(&req); err != nil {
			return opError(c, fiber.StatusBadRequest, "add player statistic", matchID.String(), "invalid request body")
		}
		playerID, err := uuid.Parse(req.PlayerID)
		if err != nil {
			return opError(c, fiber.StatusBadRequest, "add player statistic", matchID.String(), "invalid player_id")
		}
		row := models.PlayerStatistic{
			PlayerID:    playerID,
			MatchID:     matchID,
			Goals:       req.Goals,
			Assists:     req.Assists,
			Fouls:       req.Fouls,
			YellowCards: req.YellowCards,
			RedCards:    req.RedCards,
		}
		if err := st.AddPlayerStatistic(&row); err != nil {
			return storeError(c, "add player statistic", matchID.String(), err)
		}
		return c.Status(fiber.StatusCreated).JSON(row)
	}
}

// ListPlayerStatistics handles GET /api/v1/players/:id/statistics — the raw
// participation rows behind the career aggregates, oldest first.
func ListPlayerStatistics(st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := idParam(c)
		if err != nil {
			return opError(c, fiber.StatusBadRequest, "list player statistics", c.Params("id"), "invalid id")
		}
		rows, err := st.PlayerStatistics(id)
		if err != nil {
			return storeError(c, "list player statistics", id.String(), err)
		}
		return c.JSON(rows)
	}
}

// DeletePlayerStatistic handles DELETE /api/v1/player-stats/:id — removes a
// single mis-entered participation row.
func DeletePlayerStatistic(st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := idParam(c)
		if err != nil {
			return opError(c, fiber.StatusBadRequest, "delete player statistic", c.Params("id"), "invalid id")
		}
		if err := st.DeletePlayerStatistic(id); err != nil {
			return storeError(c, "delete player statistic", id.String(), err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

// HorseStatisticRequest is the body for recording a horse's participation.
type HorseStatisticRequest struct {
	HorseID           string  `json:"horse_id"`
	PerformanceRating int     `json:"performance_rating"`
	InjuryNote        *string `json:"injury_note"`
}

// AddHorseStatistic handles POST /api/v1/matches/:id/horse-stats.
func AddHorseStatistic(st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		matchID, err := idParam(c)
		if err != nil {
			return opError(c, fiber.StatusBadRequest, "add horse statistic", c.Params("id"), "invalid id")
		}
		var req HorseStatisticRequest
		if err := c.BodyParser(&req); err != nil {
			return opError(c, fiber.StatusBadRequest, "add horse statistic", matchID.String(), "invalid request body")
		}
		horseID, err := uuid.Parse(req.HorseID)
		if err != nil {
			return opError(c, fiber.StatusBadRequest, "add horse statistic", matchID.String(), "invalid horse_id")
		}
		row := models.HorseStatistic{
			HorseID:           horseID,
			MatchID:           matchID,
			PerformanceRating: req.PerformanceRating,
			InjuryNote:        req.InjuryNote,
		}
		if err := st.AddHorseStatistic(&row); err != nil {
			return storeError(c, "add horse statistic", matchID.String(), err)
		}
		return c.Status(fiber.StatusCreated).JSON(row)
	}
}

// ListHorseStatistics handles GET /api/v1/horses/:id/statistics.
func ListHorseStatistics(st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := idParam(c)
		if err != nil {
			return opError(c, fiber.StatusBadRequest, "list horse statistics", c.Params("id"), "invalid id")
		}
		rows, err := st.HorseStatistics(id)
		if err != nil {
			return storeError(c, "list horse statistics", id.String(), err)
		}
		return c.JSON(rows)
	}
}

// DeleteHorseStatistic handles DELETE /api/v1/horse-stats/:id.
func DeleteHorseStatistic(st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := idParam(c)
		if err != nil {
			return opError(c, fiber.StatusBadRequest, "delete horse statistic", c.Params("id"), "invalid id")
		}
		if err := st.DeleteHorseStatistic(id); err != nil {
			return storeError(c, "delete horse statistic", id.String(), err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}
