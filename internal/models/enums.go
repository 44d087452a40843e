// Package models defines the data structures (models) that map to database tables.
// GORM uses these structs to generate SQL queries and map database rows back to Go values.
// The struct field tags (the backtick strings like `gorm:"..."`) tell GORM how to handle
// each field: its column type, constraints, default values, and relationships.
//
// The data model represents a polo organization where:
//   - Clubs field Teams made up of Players, each with a handicap rating
//   - Tournaments schedule Matches between two Teams on a Field
//   - Matches record scores chukker by chukker, plus per-player and per-horse
//     participation rows used to derive career statistics
//   - Awards recognize a player, horse, or team; Duties assign officiating work
//
// Relationships are stored as foreign keys and join tables, never as
// mutually-owning object pointers — cascade and nullify resolution on delete
// is an explicit traversal in the store package, not an ownership side effect.
package models

// --- Enums ---
// Go doesn't have a built-in enum keyword, so we simulate them using a named string type
// plus constants. This gives us type safety — you can't accidentally pass a Grade
// where a MatchStatus is expected — while keeping the values human-readable in the database.

// Grade is the competitive tier classification shared by Teams, Tournaments, and Fields.
// Polo grades teams by combined handicap range; "open" is the unrestricted top tier.
type Grade string

const (
	GradeLow          Grade = "low"          // Combined team handicap roughly 0–8
	GradeIntermediate Grade = "intermediate" // Combined team handicap roughly 8–16
	GradeHigh         Grade = "high"         // Combined team handicap roughly 16–22
	GradeOpen         Grade = "open"         // No handicap restriction — the top competitive tier
)

// Label returns the human-readable display name for the grade.
func (g Grade) Label() string {
	switch g {
	case GradeLow:
		return "Low Goal"
	case GradeIntermediate:
		return "Intermediate Goal"
	case GradeHigh:
		return "High Goal"
	case GradeOpen:
		return "Open"
	default:
		return string(g)
	}
}

// HorseGender indicates the sex classification of a polo pony.
type HorseGender string

const (
	HorseGenderMare     HorseGender = "mare"     // Female
	HorseGenderStallion HorseGender = "stallion" // Intact male
	HorseGenderGelding  HorseGender = "gelding"  // Castrated male — the most common playing pony
)

// Label returns the display name for the horse gender.
func (g HorseGender) Label() string {
	switch g {
	case HorseGenderMare:
		return "Mare"
	case HorseGenderStallion:
		return "Stallion"
	case HorseGenderGelding:
		return "Gelding"
	default:
		return string(g)
	}
}

// CoatColor describes a horse's coat.
type CoatColor string

const (
	CoatColorBay      CoatColor = "bay"
	CoatColorChestnut CoatColor = "chestnut"
	CoatColorBlack    CoatColor = "black"
	CoatColorGray     CoatColor = "gray"
	CoatColorBrown    CoatColor = "brown"
	CoatColorPalomino CoatColor = "palomino"
	CoatColorRoan     CoatColor = "roan"
)

// Label returns the display name for the coat color.
func (c CoatColor) Label() string {
	switch c {
	case CoatColorBay:
		return "Bay"
	case CoatColorChestnut:
		return "Chestnut"
	case CoatColorBlack:
		return "Black"
	case CoatColorGray:
		return "Gray"
	case CoatColorBrown:
		return "Brown"
	case CoatColorPalomino:
		return "Palomino"
	case CoatColorRoan:
		return "Roan"
	default:
		return string(c)
	}
}

// MatchStatus tracks the lifecycle of a match. The allowed transitions form a
// small state machine (see match.go): scheduled → inProgress → completed,
// scheduled ↔ postponed, and any non-terminal state → cancelled.
// "completed" and "cancelled" are terminal — no score or chukker mutation after that.
type MatchStatus string

const (
	MatchStatusScheduled  MatchStatus = "scheduled"   // On the calendar but not started
	MatchStatusInProgress MatchStatus = "in_progress" // Currently being played; scores are live
	MatchStatusCompleted  MatchStatus = "completed"   // Finished; scores are final
	MatchStatusPostponed  MatchStatus = "postponed"   // Pushed back; can return to scheduled
	MatchStatusCancelled  MatchStatus = "cancelled"   // Called off before completion
)

// Label returns the display name for the match status.
func (s MatchStatus) Label() string {
	switch s {
	case MatchStatusScheduled:
		return "Scheduled"
	case MatchStatusInProgress:
		return "In Progress"
	case MatchStatusCompleted:
		return "Completed"
	case MatchStatusPostponed:
		return "Postponed"
	case MatchStatusCancelled:
		return "Cancelled"
	default:
		return string(s)
	}
}

// Terminal reports whether the status permits no further transitions.
func (s MatchStatus) Terminal() bool {
	return s == MatchStatusCompleted || s == MatchStatusCancelled
}

// DutyType classifies officiating and support work assigned to a player.
// Umpiring is done on horseback, so those duties require the assignee to be mounted.
type DutyType string

const (
	DutyTypeUmpire      DutyType = "umpire"      // Mounted official on the field
	DutyTypeReferee     DutyType = "referee"     // Third man — off-field arbiter between the two umpires
	DutyTypeGoalJudge   DutyType = "goal_judge"  // Flags goals from behind the goal posts
	DutyTypeTimekeeper  DutyType = "timekeeper"  // Runs the chukker clock and horn
	DutyTypeScorekeeper DutyType = "scorekeeper" // Maintains the official score sheet
	DutyTypeFieldSetup  DutyType = "field_setup" // Boards, goal posts, divot duty coordination
)

// Label returns the display name for the duty type.
func (d DutyType) Label() string {
	switch d {
	case DutyTypeUmpire:
		return "Umpire"
	case DutyTypeReferee:
		return "Referee"
	case DutyTypeGoalJudge:
		return "Goal Judge"
	case DutyTypeTimekeeper:
		return "Timekeeper"
	case DutyTypeScorekeeper:
		return "Scorekeeper"
	case DutyTypeFieldSetup:
		return "Field Setup"
	default:
		return string(d)
	}
}

// RequiresMount reports whether the assignee performs this duty on horseback.
// Only umpires ride; every other duty is worked from the sideline.
func (d DutyType) RequiresMount() bool {
	return d == DutyTypeUmpire
}

// RecipientKind says what kind of entity an award type is given to.
// Used by callers that want to validate an Award's recipient against its type;
// the store itself does not enforce the pairing (see award.go).
type RecipientKind string

const (
	RecipientKindTeam   RecipientKind = "team"
	RecipientKindPlayer RecipientKind = "player"
	RecipientKindHorse  RecipientKind = "horse"
)

// AwardType classifies a recognition given at (or outside) a tournament.
type AwardType string

const (
	AwardTypeChampion        AwardType = "champion"          // Tournament-winning team
	AwardTypeRunnerUp        AwardType = "runner_up"         // Losing finalist team
	AwardTypeSubsidiary      AwardType = "subsidiary"        // Winner of the consolation bracket
	AwardTypeMostValuable    AwardType = "most_valuable"     // MVP — best individual player
	AwardTypeTopScorer       AwardType = "top_scorer"        // Most goals across the tournament
	AwardTypeSportsmanship   AwardType = "sportsmanship"     // Fair-play recognition for a player
	AwardTypeBestPlayingPony AwardType = "best_playing_pony" // Best horse of the tournament
)

// Label returns the display name for the award type.
func (a AwardType) Label() string {
	switch a {
	case AwardTypeChampion:
		return "Champion"
	case AwardTypeRunnerUp:
		return "Runner Up"
	case AwardTypeSubsidiary:
		return "Subsidiary Winner"
	case AwardTypeMostValuable:
		return "Most Valuable Player"
	case AwardTypeTopScorer:
		return "Top Scorer"
	case AwardTypeSportsmanship:
		return "Sportsmanship"
	case AwardTypeBestPlayingPony:
		return "Best Playing Pony"
	default:
		return string(a)
	}
}

// RecipientKind returns the kind of entity this award type targets.
// Champion, runner-up and subsidiary go to teams; best playing pony goes to a
// horse; everything else goes to an individual player.
func (a AwardType) RecipientKind() RecipientKind {
	switch a {
	case AwardTypeChampion, AwardTypeRunnerUp, AwardTypeSubsidiary:
		return RecipientKindTeam
	case AwardTypeBestPlayingPony:
		return RecipientKindHorse
	default:
		return RecipientKindPlayer
	}
}

// FieldSurface describes what a polo field is played on.
type FieldSurface string

const (
	FieldSurfaceGrass  FieldSurface = "grass"  // Traditional outdoor turf, full-size field
	FieldSurfaceSand   FieldSurface = "sand"   // Arena polo surface
	FieldSurfaceSnow   FieldSurface = "snow"   // Winter exhibition surface
	FieldSurfaceHybrid FieldSurface = "hybrid" // Reinforced turf (natural grass + synthetic fibres)
)

// Label returns the display name for the field surface.
func (f FieldSurface) Label() string {
	switch f {
	case FieldSurfaceGrass:
		return "Grass"
	case FieldSurfaceSand:
		return "Sand"
	case FieldSurfaceSnow:
		return "Snow"
	case FieldSurfaceHybrid:
		return "Hybrid Turf"
	default:
		return string(f)
	}
}

// ProfileType represents a user's role across the platform.
// It is a descriptive tag used for route-level access checks in the HTTP layer;
// the domain model itself does not gate operations on it.
type ProfileType string

const (
	ProfileTypeAdministrator ProfileType = "administrator" // Full access: manage every record type
	ProfileTypeOperator      ProfileType = "operator"      // Club staff: schedule matches, record scores
	ProfileTypePlayer        ProfileType = "player"        // A registered player's own account
	ProfileTypeBreeder       ProfileType = "breeder"       // Registers and owns bred horses
	ProfileTypeUser          ProfileType = "user"          // Regular read-mostly account
)

// Label returns the display name for the profile type.
func (p ProfileType) Label() string {
	switch p {
	case ProfileTypeAdministrator:
		return "Administrator"
	case ProfileTypeOperator:
		return "Operator"
	case ProfileTypePlayer:
		return "Player"
	case ProfileTypeBreeder:
		return "Breeder"
	case ProfileTypeUser:
		return "User"
	default:
		return string(p)
	}
}
