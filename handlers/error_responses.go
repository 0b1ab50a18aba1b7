package handlers

import (
	fiber "github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
)

// handleError logs a store failure and renders the generic error page
func handleError(c *fiber.Ctx, err error) error {
	log.Errorf("Handler error on %s %s: %v", c.Method(), c.Path(), err)
	return c.Status(fiber.StatusInternalServerError).Render("error", fiber.Map{
		"Message":       "Something went wrong.",
		"Authenticated": isAuthenticated(c),
	})
}

// sendNotFound renders the error page with a 404 status
func sendNotFound(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusNotFound).Render("error", fiber.Map{
		"Message":       message,
		"Authenticated": isAuthenticated(c),
	})
}

// sendBadRequest renders the error page with a 400 status
func sendBadRequest(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).Render("error", fiber.Map{
		"Message":       message,
		"Authenticated": isAuthenticated(c),
	})
}
