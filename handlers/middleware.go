package handlers

import (
	"time"

	"recipebox/models"

	fiber "github.com/gofiber/fiber/v2"
)

// OptionalAuthMiddleware validates the session cookie when present and
// records the result for templates. It never blocks the request.
func OptionalAuthMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Cookies(sessionTokenCookie)
		if token != "" && models.ValidateSessionToken(token) == nil {
			c.Locals("authenticated", true)
		}
		return c.Next()
	}
}

// AuthMiddleware guards protected routes. Requests without a valid session
// are redirected to the login page before the handler ever runs.
func AuthMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if isAuthenticated(c) {
			return c.Next()
		}

		token := c.Cookies(sessionTokenCookie)
		if token != "" && models.ValidateSessionToken(token) == nil {
			c.Locals("authenticated", true)
			return c.Next()
		}

		return c.Redirect("/login", fiber.StatusSeeOther)
	}
}

// SetSessionCookie attaches the session token to the response
func SetSessionCookie(c *fiber.Ctx, token string) {
	c.Cookie(&fiber.Cookie{
		Name:     sessionTokenCookie,
		Value:    token,
		Path:     "/",
		Expires:  time.Now().Add(models.SessionTokenDuration),
		HTTPOnly: true,
		SameSite: "Lax",
	})
}

// ClearSessionCookie expires the session cookie
func ClearSessionCookie(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     sessionTokenCookie,
		Value:    "",
		Path:     "/",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		SameSite: "Lax",
	})
}
