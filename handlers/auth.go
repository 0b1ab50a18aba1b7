package handlers

import (
	"recipebox/models"

	fiber "github.com/gofiber/fiber/v2"
)

// HandleLoginPage renders the login form.
func HandleLoginPage(c *fiber.Ctx) error {
	return c.Render("login", fiber.Map{
		"Authenticated": isAuthenticated(c),
	})
}

// HandleLogin validates the submitted credentials against the configured
// owner pair and issues a session on success. Failures re-render the form
// with a generic message, no distinction between bad username and bad password.
func HandleLogin(c *fiber.Ctx) error {
	username := c.FormValue("username")
	password := c.FormValue("password")

	if appConfig.Owner == nil || !appConfig.Owner.Verify(username, password) {
		return c.Status(fiber.StatusUnauthorized).Render("login", fiber.Map{
			"Error":         "Wrong login",
			"Authenticated": false,
		})
	}

	token, err := models.CreateSessionToken()
	if err != nil {
		return handleError(c, err)
	}

	SetSessionCookie(c, token)
	return c.Redirect("/", fiber.StatusSeeOther)
}

// HandleLogout destroys the current session unconditionally.
func HandleLogout(c *fiber.Ctx) error {
	if token := c.Cookies(sessionTokenCookie); token != "" {
		models.DeleteSessionToken(token)
	}

	ClearSessionCookie(c)
	return c.Redirect("/", fiber.StatusSeeOther)
}
