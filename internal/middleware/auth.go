// Package middleware contains HTTP middleware functions for the Polo League API.
// Middleware sits between the HTTP server and route handlers — it runs on every
// request that passes through it, making it the right place for cross-cutting
// concerns like authentication, logging, and rate limiting.
package middleware

import (
	"fmt"
	"strings"

	// fiber is the HTTP framework; fiber.Handler is the function signature for middleware
	"github.com/gofiber/fiber/v2"
	// jwt is used to parse and verify JSON Web Tokens (JWTs) from the Authorization header
	"github.com/golang-jwt/jwt/v5"
	"gorm.io/gorm"

	"github.com/poloclub/polo-league/internal/config"
	"github.com/poloclub/polo-league/internal/models"
)

// Claims defines the data we expect inside an API token payload.
// The identity provider issues HMAC-signed tokens whose Subject is its stable
// external user ID, plus custom claims we use to populate our users table:
//
//	"profile": the user's role — administrator, operator, player, breeder, or user
//	"email":   the user's primary email address
//	"name":    display name for our users table
//
// Without the custom claims, profile defaults to "user" (least privileged)
// and email/name fall back to deterministic placeholders.
type Claims struct {
	jwt.RegisteredClaims        // Standard JWT fields: Subject (user ID), ExpiresAt, IssuedAt, etc.
	Profile              string `json:"profile"` // Custom claim: profile role
	Email                string `json:"email"`   // Custom claim: the user's primary email address
	Name                 string `json:"name"`    // Custom claim: the user's full name
}

// Auth returns a Fiber middleware handler that:
//  1. Validates the JWT from the "Authorization: Bearer <token>" header
//  2. Finds the matching user in our database (or creates one on first visit)
//  3. Syncs the user's profile role from the JWT into the database
//  4. Stores the user's internal UUID and profile in the request context (c.Locals)
//     so downstream handlers can read them without re-parsing the token
//
// This is a closure — a function that returns another function, capturing cfg and db
// in its scope so they're available every time a request comes in.
func Auth(cfg *config.Config, db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		// --- Step 1: Extract the token from the Authorization header ---

		authHeader := c.Get("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "missing or invalid authorization header",
			})
		}

		// Strip the "Bearer " prefix to get just the raw JWT string
		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")

		// --- Step 2: Parse and verify the JWT ---
		// The keyfunc hands the parser our shared HMAC secret and, by returning
		// an error for any other signing method, rejects tokens that try to
		// downgrade to "none" or switch to an RSA key we never issued.
		token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
			}
			return []byte(cfg.JWTSecret), nil
		})
		if err != nil || !token.Valid {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "invalid token",
			})
		}

		claims, ok := token.Claims.(*Claims)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "invalid token claims",
			})
		}

		// claims.Subject is the standard JWT "sub" field — the provider's stable user ID
		subject := claims.Subject
		if subject == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "token missing subject",
			})
		}

		// --- Step 3: Find or create the user in our database ---
		// This is "lazy user sync": the first time a user hits any authenticated endpoint,
		// we create their record in our database. On subsequent requests we just look them up.

		// Determine the profile from the JWT claim, defaulting to "user" if not set
		profile := profileFromClaim(claims.Profile)

		// Build placeholder email and name in case the token doesn't include them.
		// These use the subject so they're deterministic and unique per user.
		email := claims.Email
		if email == "" {
			email = fmt.Sprintf("%s@accounts.local", subject)
		}

		name := claims.Name
		if name == "" {
			name = "User" // Generic fallback display name
		}

		var user models.User

		// Try to find an existing user by email (the unique key we control)
		result := db.Where("email = ?", email).First(&user)

		if result.Error != nil {
			// User not found — create a new record for them.
			// gorm.ErrRecordNotFound is the expected "not found" error; anything else is a DB problem
			if result.Error != gorm.ErrRecordNotFound {
				return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
					"error": "database error",
				})
			}

			// Create the user row — the model's BeforeCreate hook assigns the UUID
			user = models.User{
				DisplayName: name,
				Email:       email,
				Profile:     profile,
			}
			if err := db.Create(&user).Error; err != nil {
				return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
					"error": "failed to create user record",
				})
			}
		} else {
			// User found — sync their profile in case it changed at the identity provider
			if user.Profile != profile && claims.Profile != "" {
				db.Model(&user).Update("profile", profile)
				user.Profile = profile
			}
		}

		// --- Step 4: Store user info in the request context ---
		// c.Locals is a key-value store scoped to this single request.
		// Handlers read "userID" (our internal UUID) and "userProfile" from here.
		c.Locals("userID", user.ID.String())
		c.Locals("userProfile", string(user.Profile))

		// Pass control to the next middleware or route handler
		return c.Next()
	}
}

// profileFromClaim converts the raw profile string from the JWT into our typed
// ProfileType enum. If the claim is missing or unrecognised, it defaults to
// "user" (least privileged).
func profileFromClaim(s string) models.ProfileType {
	switch s {
	case "administrator":
		return models.ProfileTypeAdministrator
	case "operator":
		return models.ProfileTypeOperator
	case "player":
		return models.ProfileTypePlayer
	case "breeder":
		return models.ProfileTypeBreeder
	default:
		// Unknown or empty profile — default to regular user
		return models.ProfileTypeUser
	}
}
