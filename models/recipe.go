package models

import (
	"database/sql"
	"time"

	"recipebox/utils"

	"github.com/gofiber/fiber/v2/log"
)

// Recipe represents a titled entry with ingredients and instructions, an
// optional stored image, and an optional folder association. A nil FolderID
// means the recipe is unfiled.
type Recipe struct {
	ID           int64   `json:"id"`
	Title        string  `json:"title"`
	Ingredients  string  `json:"ingredients"`
	Instructions string  `json:"instructions"`
	Image        *string `json:"image,omitempty"`
	FolderID     *int64  `json:"folder_id,omitempty"`
}

// FolderIDValue returns the folder ID or zero when unfiled. Used by templates.
func (r Recipe) FolderIDValue() int64 {
	if r.FolderID != nil {
		return *r.FolderID
	}
	return 0
}

// ImageName returns the stored image filename or an empty string. Used by templates.
func (r Recipe) ImageName() string {
	if r.Image != nil {
		return *r.Image
	}
	return ""
}

func nullInt64(v *int64) sql.NullInt64 {
	if v == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: *v, Valid: true}
}

func nullString(v *string) sql.NullString {
	if v == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *v, Valid: true}
}

// CreateRecipe creates a new recipe
func CreateRecipe(title, ingredients, instructions string, folderID *int64, image *string) (*Recipe, error) {
	start := time.Now()
	defer utils.LogDuration("CreateRecipe", start, title)

	result, err := db.Exec(`
		INSERT INTO recipes (title, ingredients, instructions, image, folder_id)
		VALUES (?, ?, ?, ?, ?)`,
		title, ingredients, instructions, nullString(image), nullInt64(folderID))
	if err != nil {
		log.Error("Failed to create recipe:", err)
		return nil, err
	}

	id, err := result.LastInsertId()
	if err != nil {
		log.Error("Failed to get recipe ID:", err)
		return nil, err
	}

	return &Recipe{
		ID:           id,
		Title:        title,
		Ingredients:  ingredients,
		Instructions: instructions,
		Image:        image,
		FolderID:     folderID,
	}, nil
}

func scanRecipe(row interface{ Scan(...interface{}) error }) (*Recipe, error) {
	var recipe Recipe
	var image sql.NullString
	var folderID sql.NullInt64

	err := row.Scan(&recipe.ID, &recipe.Title, &recipe.Ingredients, &recipe.Instructions, &image, &folderID)
	if err != nil {
		return nil, err
	}

	if image.Valid {
		recipe.Image = &image.String
	}
	if folderID.Valid {
		recipe.FolderID = &folderID.Int64
	}
	return &recipe, nil
}

// GetRecipe retrieves a recipe by ID, returning nil when it does not exist
func GetRecipe(id int64) (*Recipe, error) {
	start := time.Now()
	defer utils.LogDuration("GetRecipe", start, id)

	row := db.QueryRow(`
		SELECT id, title, ingredients, instructions, image, folder_id
		FROM recipes
		WHERE id = ?`, id)

	recipe, err := scanRecipe(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		log.Error("Failed to get recipe:", err)
		return nil, err
	}

	return recipe, nil
}

// GetRecipesByFolder retrieves all recipes filed under a folder
func GetRecipesByFolder(folderID int64) ([]Recipe, error) {
	start := time.Now()
	defer utils.LogDuration("GetRecipesByFolder", start, folderID)

	rows, err := db.Query(`
		SELECT id, title, ingredients, instructions, image, folder_id
		FROM recipes
		WHERE folder_id = ?
		ORDER BY id`, folderID)
	if err != nil {
		log.Error("Failed to get recipes:", err)
		return nil, err
	}
	defer rows.Close()

	var recipes []Recipe
	for rows.Next() {
		recipe, err := scanRecipe(rows)
		if err != nil {
			return nil, err
		}
		recipes = append(recipes, *recipe)
	}

	return recipes, rows.Err()
}

// UpdateRecipe overwrites a recipe's text fields and folder association.
// The stored image is never touched by an update. Returns nil when the
// recipe does not exist.
func UpdateRecipe(id int64, title, ingredients, instructions string, folderID *int64) (*Recipe, error) {
	start := time.Now()
	defer utils.LogDuration("UpdateRecipe", start, id)

	result, err := db.Exec(`
		UPDATE recipes
		SET title = ?, ingredients = ?, instructions = ?, folder_id = ?
		WHERE id = ?`,
		title, ingredients, instructions, nullInt64(folderID), id)
	if err != nil {
		log.Error("Failed to update recipe:", err)
		return nil, err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, nil
	}

	return GetRecipe(id)
}

// DeleteRecipe removes a recipe
func DeleteRecipe(id int64) error {
	start := time.Now()
	defer utils.LogDuration("DeleteRecipe", start, id)

	return DeleteRecord(`DELETE FROM recipes WHERE id = ?`, id)
}

// CountRecipes returns the total number of recipes
func CountRecipes() (int64, error) {
	return CountRecords(`SELECT COUNT(*) FROM recipes`)
}
