package handlers

import (
	"bytes"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"recipebox/models"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/template/html/v2"
	"github.com/stretchr/testify/assert"
)

// newTestApp builds a fiber app with the real view templates so handlers
// can render, without the middleware stack or a listener.
func newTestApp(t *testing.T) *fiber.App {
	t.Helper()

	engine := html.New("../views", ".html")
	return fiber.New(fiber.Config{
		Views:       engine,
		ViewsLayout: "base",
	})
}

// setupHandlerTest opens a real temp database and points the handler config
// at a temp upload directory and a known owner credential pair.
func setupHandlerTest(t *testing.T) {
	t.Helper()

	if err := models.Initialize(t.TempDir()); err != nil {
		t.Fatalf("Failed to initialize test database: %v", err)
	}
	t.Cleanup(func() {
		if err := models.Close(); err != nil {
			t.Errorf("Failed to close test database: %v", err)
		}
	})

	owner, err := models.NewOwnerCredentials("mama", "secret")
	if err != nil {
		t.Fatalf("Failed to create owner credentials: %v", err)
	}

	originalConfig := appConfig
	appConfig = Config{
		Owner:            owner,
		UploadsDirectory: t.TempDir(),
	}
	t.Cleanup(func() { appConfig = originalConfig })
}

// formRequest builds an urlencoded POST request
func formRequest(target string, values url.Values) *http.Request {
	req := httptest.NewRequest("POST", target, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

// multipartRequest builds a multipart POST request with optional file upload
func multipartRequest(t *testing.T, target string, fields map[string]string, fileField, fileName, fileContent string) *http.Request {
	t.Helper()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	for key, value := range fields {
		assert.NoError(t, writer.WriteField(key, value))
	}
	if fileField != "" {
		part, err := writer.CreateFormFile(fileField, fileName)
		assert.NoError(t, err)
		_, err = io.WriteString(part, fileContent)
		assert.NoError(t, err)
	}
	assert.NoError(t, writer.Close())

	req := httptest.NewRequest("POST", target, &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

// loginSession creates a session directly and returns its cookie value
func loginSession(t *testing.T) string {
	t.Helper()

	token, err := models.CreateSessionToken()
	if err != nil {
		t.Fatalf("Failed to create session token: %v", err)
	}
	return token
}

func readBody(t *testing.T, resp *http.Response) string {
	t.Helper()

	body, err := io.ReadAll(resp.Body)
	assert.NoError(t, err)
	return string(body)
}
