package handlers

import (
	"strconv"

	fiber "github.com/gofiber/fiber/v2"
)

const sessionTokenCookie = "session_token"

// parseIDParam parses a route param as int64. Reports false when the value
// is not numeric; the caller is responsible for the 400 response.
func parseIDParam(c *fiber.Ctx, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Params(name), 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}

// requiredFormValue reads a form field, distinguishing a field that was
// submitted empty (allowed) from one missing entirely (a validation error).
// Works for both multipart and urlencoded bodies.
func requiredFormValue(c *fiber.Ctx, name string) (string, bool) {
	if form, err := c.MultipartForm(); err == nil && form != nil {
		values, ok := form.Value[name]
		if !ok || len(values) == 0 {
			return "", false
		}
		return values[0], true
	}
	if c.Request().PostArgs().Has(name) {
		return string(c.Request().PostArgs().Peek(name)), true
	}
	return "", false
}

// parseFolderField reads the optional "folder" form field. An absent or empty
// value means unfiled; anything else must be a numeric folder ID. The
// reference is weak, so the ID is not checked against existing folders.
func parseFolderField(c *fiber.Ctx) (*int64, bool) {
	value, ok := requiredFormValue(c, "folder")
	if !ok || value == "" {
		return nil, true
	}
	id, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return nil, false
	}
	return &id, true
}

// folderRedirectTarget is where a recipe mutation lands: the recipe's folder
// view when filed, the root listing otherwise.
func folderRedirectTarget(folderID *int64) string {
	if folderID == nil {
		return "/"
	}
	return "/folder/" + strconv.FormatInt(*folderID, 10)
}

// isAuthenticated reports whether the optional auth middleware validated a session.
func isAuthenticated(c *fiber.Ctx) bool {
	authenticated, ok := c.Locals("authenticated").(bool)
	return ok && authenticated
}
