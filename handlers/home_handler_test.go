package handlers

import (
	"net/http/httptest"
	"testing"

	"recipebox/models"

	"github.com/stretchr/testify/assert"
)

func TestHandleHome(t *testing.T) {
	setupHandlerTest(t)
	app := newTestApp(t)
	app.Get("/", HandleHome)

	_, err := models.CreateFolder("Desserts")
	assert.NoError(t, err)

	req := httptest.NewRequest("GET", "/", nil)
	resp, err := app.Test(req, 5000)
	assert.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	body := readBody(t, resp)
	assert.Contains(t, body, "Desserts")
	// Root shows no recipes
	assert.Contains(t, body, "Pick a folder")
}

func TestHandleFolder(t *testing.T) {
	setupHandlerTest(t)
	app := newTestApp(t)
	app.Get("/folder/:id", HandleFolder)

	folder, err := models.CreateFolder("Desserts")
	assert.NoError(t, err)
	_, err = models.CreateRecipe("Cake", "flour", "bake", &folder.ID, nil)
	assert.NoError(t, err)

	req := httptest.NewRequest("GET", "/folder/1", nil)
	resp, err := app.Test(req, 5000)
	assert.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	body := readBody(t, resp)
	assert.Contains(t, body, "Desserts")
	assert.Contains(t, body, "Cake")
}

func TestHandleFolder_NotFound(t *testing.T) {
	setupHandlerTest(t)
	app := newTestApp(t)
	app.Get("/folder/:id", HandleFolder)

	req := httptest.NewRequest("GET", "/folder/123", nil)
	resp, err := app.Test(req, 5000)
	assert.NoError(t, err)
	assert.Equal(t, 404, resp.StatusCode)
}

func TestHandleFolder_InvalidID(t *testing.T) {
	setupHandlerTest(t)
	app := newTestApp(t)
	app.Get("/folder/:id", HandleFolder)

	req := httptest.NewRequest("GET", "/folder/abc", nil)
	resp, err := app.Test(req, 5000)
	assert.NoError(t, err)
	assert.Equal(t, 400, resp.StatusCode)
}
