package handlers

import (
	"os"
	"path/filepath"

	"recipebox/models"
	"recipebox/utils"

	fiber "github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// HandleNewRecipe renders the empty recipe form with folder choices.
func HandleNewRecipe(c *fiber.Ctx) error {
	folders, err := models.GetFolders()
	if err != nil {
		return handleError(c, err)
	}

	return c.Render("recipe_form", fiber.Map{
		"Folders":       folders,
		"Recipe":        nil,
		"Authenticated": isAuthenticated(c),
	})
}

// HandleCreateRecipe creates a recipe from the submitted form, storing the
// uploaded image first when one is present.
func HandleCreateRecipe(c *fiber.Ctx) error {
	title, ok := requiredFormValue(c, "title")
	if !ok {
		return sendBadRequest(c, "Missing required field: title")
	}
	ingredients, ok := requiredFormValue(c, "ingredients")
	if !ok {
		return sendBadRequest(c, "Missing required field: ingredients")
	}
	instructions, ok := requiredFormValue(c, "instructions")
	if !ok {
		return sendBadRequest(c, "Missing required field: instructions")
	}
	folderID, ok := parseFolderField(c)
	if !ok {
		return sendBadRequest(c, "Invalid folder ID")
	}

	image, err := saveUploadedImage(c)
	if err != nil {
		return handleError(c, err)
	}

	if _, err := models.CreateRecipe(title, ingredients, instructions, folderID, image); err != nil {
		return handleError(c, err)
	}

	return c.Redirect(folderRedirectTarget(folderID), fiber.StatusSeeOther)
}

// HandleEditRecipe renders the pre-filled recipe form.
func HandleEditRecipe(c *fiber.Ctx) error {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return sendBadRequest(c, "Invalid recipe ID")
	}

	recipe, err := models.GetRecipe(id)
	if err != nil {
		return handleError(c, err)
	}
	if recipe == nil {
		return sendNotFound(c, "Recipe not found")
	}

	folders, err := models.GetFolders()
	if err != nil {
		return handleError(c, err)
	}

	return c.Render("recipe_form", fiber.Map{
		"Folders":       folders,
		"Recipe":        recipe,
		"Authenticated": isAuthenticated(c),
	})
}

// HandleUpdateRecipe overwrites the recipe's text fields and folder
// association. The stored image is never changed by an edit.
func HandleUpdateRecipe(c *fiber.Ctx) error {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return sendBadRequest(c, "Invalid recipe ID")
	}

	title, ok := requiredFormValue(c, "title")
	if !ok {
		return sendBadRequest(c, "Missing required field: title")
	}
	ingredients, ok := requiredFormValue(c, "ingredients")
	if !ok {
		return sendBadRequest(c, "Missing required field: ingredients")
	}
	instructions, ok := requiredFormValue(c, "instructions")
	if !ok {
		return sendBadRequest(c, "Missing required field: instructions")
	}
	folderID, ok := parseFolderField(c)
	if !ok {
		return sendBadRequest(c, "Invalid folder ID")
	}

	recipe, err := models.UpdateRecipe(id, title, ingredients, instructions, folderID)
	if err != nil {
		return handleError(c, err)
	}
	if recipe == nil {
		return sendNotFound(c, "Recipe not found")
	}

	return c.Redirect(folderRedirectTarget(recipe.FolderID), fiber.StatusSeeOther)
}

// HandleDeleteRecipe deletes a recipe and returns to the root listing.
func HandleDeleteRecipe(c *fiber.Ctx) error {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return sendBadRequest(c, "Invalid recipe ID")
	}

	recipe, err := models.GetRecipe(id)
	if err != nil {
		return handleError(c, err)
	}
	if recipe == nil {
		return sendNotFound(c, "Recipe not found")
	}

	if err := models.DeleteRecipe(id); err != nil {
		return handleError(c, err)
	}

	return c.Redirect("/", fiber.StatusSeeOther)
}

// saveUploadedImage persists the optional "image" upload under a fresh
// uuid-prefixed filename so concurrent uploads of the same file never
// collide. Returns nil when no file was submitted.
func saveUploadedImage(c *fiber.Ctx) (*string, error) {
	file, err := c.FormFile("image")
	if err != nil || file == nil || file.Filename == "" || file.Size == 0 {
		return nil, nil
	}

	if err := os.MkdirAll(appConfig.UploadsDirectory, 0755); err != nil {
		return nil, err
	}

	unique := uuid.New().String() + "_" + utils.SanitizeFilename(file.Filename)
	if err := c.SaveFile(file, filepath.Join(appConfig.UploadsDirectory, unique)); err != nil {
		return nil, err
	}

	return &unique, nil
}
