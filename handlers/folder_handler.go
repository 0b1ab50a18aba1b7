package handlers

import (
	"recipebox/models"

	fiber "github.com/gofiber/fiber/v2"
)

// HandleFolders renders the folder management page: list plus create form.
func HandleFolders(c *fiber.Ctx) error {
	folders, err := models.GetFolders()
	if err != nil {
		return handleError(c, err)
	}

	return c.Render("folders", fiber.Map{
		"Folders":       folders,
		"Authenticated": isAuthenticated(c),
	})
}

// HandleCreateFolder creates a folder and re-renders the management page
// with the new folder included.
func HandleCreateFolder(c *fiber.Ctx) error {
	name, ok := requiredFormValue(c, "name")
	if !ok {
		return sendBadRequest(c, "Missing required field: name")
	}

	if _, err := models.CreateFolder(name); err != nil {
		return handleError(c, err)
	}

	return HandleFolders(c)
}

// HandleDeleteFolder removes a folder, unfiling its recipes. Deleting an
// unknown folder ID is tolerated and redirects as if it succeeded.
func HandleDeleteFolder(c *fiber.Ctx) error {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return sendBadRequest(c, "Invalid folder ID")
	}

	if err := models.DeleteFolder(id); err != nil {
		return handleError(c, err)
	}

	return c.Redirect("/", fiber.StatusSeeOther)
}
