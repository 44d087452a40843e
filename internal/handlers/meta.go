package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/poloclub/polo-league/internal/models"
)

// enumValue is one enumerated constant with its stable display label and,
// where the type has one, a derived classification.
type enumValue struct {
	Value         string `json:"value"`
	Label         string `json:"label"`
	RecipientKind string `json:"recipient_kind,omitempty"` // Award types only
	RequiresMount *bool  `json:"requires_mount,omitempty"` // Duty types only
}

// Enums handles GET /api/v1/meta/enums — every enumerated reference type the
// API uses, so form-building clients never hardcode the value lists.
func Enums(c *fiber.Ctx) error {
	grades := []models.Grade{models.GradeLow, models.GradeIntermediate, models.GradeHigh, models.GradeOpen}
	genders := []models.HorseGender{models.HorseGenderMare, models.HorseGenderStallion, models.HorseGenderGelding}
	colors := []models.CoatColor{
		models.CoatColorBay, models.CoatColorChestnut, models.CoatColorBlack, models.CoatColorGray,
		models.CoatColorBrown, models.CoatColorPalomino, models.CoatColorRoan,
	}
	statuses := []models.MatchStatus{
		models.MatchStatusScheduled, models.MatchStatusInProgress, models.MatchStatusCompleted,
		models.MatchStatusPostponed, models.MatchStatusCancelled,
	}
	dutyTypes := []models.DutyType{
		models.DutyTypeUmpire, models.DutyTypeReferee, models.DutyTypeGoalJudge,
		models.DutyTypeTimekeeper, models.DutyTypeScorekeeper, models.DutyTypeFieldSetup,
	}
	awardTypes := []models.AwardType{
		models.AwardTypeChampion, models.AwardTypeRunnerUp, models.AwardTypeSubsidiary,
		models.AwardTypeMostValuable, models.AwardTypeTopScorer, models.AwardTypeSportsmanship,
		models.AwardTypeBestPlayingPony,
	}
	surfaces := []models.FieldSurface{
		models.FieldSurfaceGrass, models.FieldSurfaceSand, models.FieldSurfaceSnow, models.FieldSurfaceHybrid,
	}
	profiles := []models.ProfileType{
		models.ProfileTypeAdministrator, models.ProfileTypeOperator, models.ProfileTypePlayer,
		models.ProfileTypeBreeder, models.ProfileTypeUser,
	}

	out := fiber.Map{}

	vs := make([]enumValue, len(grades))
	for i, v := range grades {
		vs[i] = enumValue{Value: string(v), Label: v.Label()}
	}
	out["grades"] = vs

	vs = make([]enumValue, len(genders))
	for i, v := range genders {
		vs[i] = enumValue{Value: string(v), Label: v.Label()}
	}
	out["horse_genders"] = vs

	vs = make([]enumValue, len(colors))
	for i, v := range colors {
		vs[i] = enumValue{Value: string(v), Label: v.Label()}
	}
	out["coat_colors"] = vs

	vs = make([]enumValue, len(statuses))
	for i, v := range statuses {
		vs[i] = enumValue{Value: string(v), Label: v.Label()}
	}
	out["match_statuses"] = vs

	vs = make([]enumValue, len(dutyTypes))
	for i, v := range dutyTypes {
		mount := v.RequiresMount()
		vs[i] = enumValue{Value: string(v), Label: v.Label(), RequiresMount: &mount}
	}
	out["duty_types"] = vs

	vs = make([]enumValue, len(awardTypes))
	for i, v := range awardTypes {
		vs[i] = enumValue{Value: string(v), Label: v.Label(), RecipientKind: string(v.RecipientKind())}
	}
	out["award_types"] = vs

	vs = make([]enumValue, len(surfaces))
	for i, v := range surfaces {
		vs[i] = enumValue{Value: string(v), Label: v.Label()}
	}
	out["field_surfaces"] = vs

	vs = make([]enumValue, len(profiles))
	for i, v := range profiles {
		vs[i] = enumValue{Value: string(v), Label: v.Label()}
	}
	out["profile_types"] = vs

	return c.JSON(out)
}
