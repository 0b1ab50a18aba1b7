package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// setupTestDB opens a real SQLite database in a temp directory and applies
// the schema. The package-global connection is restored on cleanup.
func setupTestDB(t *testing.T) {
	t.Helper()

	if err := InitializeWithMigration(t.TempDir(), true); err != nil {
		t.Fatalf("Failed to initialize test database: %v", err)
	}
	t.Cleanup(func() {
		if err := Close(); err != nil {
			t.Errorf("Failed to close test database: %v", err)
		}
	})
}

func TestMigrateIsIdempotent(t *testing.T) {
	dir := t.TempDir()

	assert.NoError(t, InitializeWithMigration(dir, true))
	version, err := SchemaVersion()
	assert.NoError(t, err)
	assert.Equal(t, len(migrations), version)
	assert.NoError(t, Close())

	// A second startup against the same database must be a no-op
	assert.NoError(t, InitializeWithMigration(dir, true))
	version, err = SchemaVersion()
	assert.NoError(t, err)
	assert.Equal(t, len(migrations), version)
	assert.NoError(t, Close())
}

func TestFolderRecipeFiling(t *testing.T) {
	setupTestDB(t)

	desserts, err := CreateFolder("Desserts")
	assert.NoError(t, err)
	soups, err := CreateFolder("Soups")
	assert.NoError(t, err)

	cake, err := CreateRecipe("Cake", "flour, eggs, sugar", "mix and bake", &desserts.ID, nil)
	assert.NoError(t, err)
	assert.Nil(t, cake.Image)

	inDesserts, err := GetRecipesByFolder(desserts.ID)
	assert.NoError(t, err)
	assert.Len(t, inDesserts, 1)
	assert.Equal(t, "Cake", inDesserts[0].Title)

	inSoups, err := GetRecipesByFolder(soups.ID)
	assert.NoError(t, err)
	assert.Empty(t, inSoups)
}

func TestDeleteFolderUnfilesRecipes(t *testing.T) {
	setupTestDB(t)

	desserts, err := CreateFolder("Desserts")
	assert.NoError(t, err)

	cake, err := CreateRecipe("Cake", "flour", "bake", &desserts.ID, nil)
	assert.NoError(t, err)

	assert.NoError(t, DeleteFolder(desserts.ID))

	folder, err := GetFolder(desserts.ID)
	assert.NoError(t, err)
	assert.Nil(t, folder)

	folders, err := GetFolders()
	assert.NoError(t, err)
	assert.Empty(t, folders)

	// The recipe survives, unfiled
	survivor, err := GetRecipe(cake.ID)
	assert.NoError(t, err)
	assert.NotNil(t, survivor)
	assert.Nil(t, survivor.FolderID)
}

func TestDeleteFolderTolerant(t *testing.T) {
	setupTestDB(t)

	folder, err := CreateFolder("Keep me")
	assert.NoError(t, err)

	assert.NoError(t, DeleteFolder(9999))

	// Store unchanged
	kept, err := GetFolder(folder.ID)
	assert.NoError(t, err)
	assert.NotNil(t, kept)
}

func TestUpdateRecipeMovesFolders(t *testing.T) {
	setupTestDB(t)

	desserts, err := CreateFolder("Desserts")
	assert.NoError(t, err)
	soups, err := CreateFolder("Soups")
	assert.NoError(t, err)

	image := "abc_cake.jpg"
	cake, err := CreateRecipe("Cake", "flour", "bake", &desserts.ID, &image)
	assert.NoError(t, err)

	updated, err := UpdateRecipe(cake.ID, "Savory cake", "flour, broth", "simmer", &soups.ID)
	assert.NoError(t, err)
	assert.NotNil(t, updated)
	assert.Equal(t, soups.ID, *updated.FolderID)
	// Edits never touch the stored image
	assert.Equal(t, image, *updated.Image)

	inSoups, err := GetRecipesByFolder(soups.ID)
	assert.NoError(t, err)
	assert.Len(t, inSoups, 1)

	inDesserts, err := GetRecipesByFolder(desserts.ID)
	assert.NoError(t, err)
	assert.Empty(t, inDesserts)
}

func TestDeleteRecipe(t *testing.T) {
	setupTestDB(t)

	cake, err := CreateRecipe("Cake", "flour", "bake", nil, nil)
	assert.NoError(t, err)

	assert.NoError(t, DeleteRecipe(cake.ID))

	gone, err := GetRecipe(cake.ID)
	assert.NoError(t, err)
	assert.Nil(t, gone)
}

func TestCounts(t *testing.T) {
	setupTestDB(t)

	_, err := CreateFolder("Desserts")
	assert.NoError(t, err)
	_, err = CreateRecipe("Cake", "flour", "bake", nil, nil)
	assert.NoError(t, err)
	_, err = CreateRecipe("Pie", "apples", "bake", nil, nil)
	assert.NoError(t, err)

	folders, err := CountFolders()
	assert.NoError(t, err)
	assert.Equal(t, int64(1), folders)

	recipes, err := CountRecipes()
	assert.NoError(t, err)
	assert.Equal(t, int64(2), recipes)
}
