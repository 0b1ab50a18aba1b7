package handlers

import (
	"recipebox/models"

	fiber "github.com/gofiber/fiber/v2"
)

// HandleHome renders the root listing: all folders, no recipes shown.
func HandleHome(c *fiber.Ctx) error {
	folders, err := models.GetFolders()
	if err != nil {
		return handleError(c, err)
	}

	return c.Render("index", fiber.Map{
		"Folders":       folders,
		"Recipes":       []models.Recipe{},
		"ActiveFolder":  nil,
		"Authenticated": isAuthenticated(c),
	})
}

// HandleFolder renders a folder's detail view with its recipes.
func HandleFolder(c *fiber.Ctx) error {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return sendBadRequest(c, "Invalid folder ID")
	}

	folder, err := models.GetFolder(id)
	if err != nil {
		return handleError(c, err)
	}
	if folder == nil {
		return sendNotFound(c, "Folder not found")
	}

	recipes, err := models.GetRecipesByFolder(id)
	if err != nil {
		return handleError(c, err)
	}

	folders, err := models.GetFolders()
	if err != nil {
		return handleError(c, err)
	}

	return c.Render("index", fiber.Map{
		"Folders":       folders,
		"Recipes":       recipes,
		"ActiveFolder":  folder,
		"Authenticated": isAuthenticated(c),
	})
}
