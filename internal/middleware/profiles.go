// Package middleware contains HTTP middleware functions for the Polo League API.
// This file handles profile-based access control — checking that the
// authenticated user has permission to perform the requested action.
package middleware

// profiles.go — Profile-based access control middleware.
// The app has five profiles: administrator, operator, player, breeder, user.
// These middleware functions are applied to routes that require specific permissions.

import "github.com/gofiber/fiber/v2"

// RequireProfile returns a middleware handler that allows only users whose
// profile matches one of the provided profiles. Returns HTTP 403 Forbidden if
// the profile doesn't match.
//
// It accepts a variadic list of profiles ("..." syntax) so you can allow one
// or more profiles on a route with a single call:
//
//	api.Post("/clubs", middleware.RequireProfile("administrator", "operator"), handlers.CreateClub(st))
//
// RequireProfile must be used AFTER the Auth middleware, because Auth is what
// populates the "userProfile" value in the request context via c.Locals.
func RequireProfile(profiles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		// c.Locals("userProfile") retrieves the profile string that the Auth
		// middleware stored earlier in this request's context. The .(string) is
		// a type assertion to convert the interface{} value to a concrete string.
		// If the value is missing or isn't a string, ok will be false.
		userProfile, ok := c.Locals("userProfile").(string)
		if !ok || userProfile == "" {
			// If we couldn't read a profile, the Auth middleware either wasn't applied
			// or failed silently — deny access with 403 Forbidden (not 401, because
			// the user might be authenticated but still not have a profile set)
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": "forbidden",
			})
		}

		// Check if the user's profile is in the allowed list.
		// Return c.Next() the moment we find a match — allowing the request to continue.
		for _, p := range profiles {
			if userProfile == p {
				// Profile is allowed — pass the request to the next handler
				return c.Next()
			}
		}

		// No matching profile was found — the user is authenticated but not authorized
		// to perform this action. Return 403 Forbidden with a descriptive message.
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "insufficient permissions",
		})
	}
}
