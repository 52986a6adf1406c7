package api

import (
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/fallowfield/lendora/internal/db"
	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func newTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	_, testFile, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("resolve current test file path")
	}

	apiDir := filepath.Dir(testFile)
	templatesDir := filepath.Join(filepath.Dir(apiDir), "templates")
	databasePath := filepath.Join(t.TempDir(), "lendora-test.db")

	database, err := db.OpenSQLite(databasePath)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := database.DB()
	if err != nil {
		t.Fatalf("open sql db: %v", err)
	}
	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	handler, err := NewHandler(database, "test-secret-key", templatesDir, time.UTC, false)
	if err != nil {
		t.Fatalf("init handler: %v", err)
	}

	app := fiber.New()
	RegisterRoutes(app, handler)
	return app, database
}

func postForm(t *testing.T, app *fiber.App, path string, values url.Values, cookie string) *http.Response {
	t.Helper()

	request := httptest.NewRequest(http.MethodPost, path, strings.NewReader(values.Encode()))
	request.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if cookie != "" {
		request.Header.Set("Cookie", cookie)
	}

	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("POST %s failed: %v", path, err)
	}
	return response
}

func getPage(t *testing.T, app *fiber.App, path string, cookie string) *http.Response {
	t.Helper()

	request := httptest.NewRequest(http.MethodGet, path, nil)
	if cookie != "" {
		request.Header.Set("Cookie", cookie)
	}

	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("GET %s failed: %v", path, err)
	}
	return response
}

func readBody(t *testing.T, response *http.Response) string {
	t.Helper()

	defer response.Body.Close()
	body, err := io.ReadAll(response.Body)
	if err != nil {
		t.Fatalf("read response body: %v", err)
	}
	return string(body)
}

func responseCookieValue(response *http.Response, name string) string {
	for _, cookie := range response.Cookies() {
		if cookie.Name == name {
			return cookie.Value
		}
	}
	return ""
}

func authCookieHeader(t *testing.T, response *http.Response) string {
	t.Helper()

	token := responseCookieValue(response, authCookieName)
	if token == "" {
		t.Fatal("expected auth cookie to be set")
	}
	return authCookieName + "=" + token
}

func registerTestUser(t *testing.T, app *fiber.App, username string) string {
	t.Helper()

	response := postForm(t, app, "/api/auth/register", url.Values{
		"username":         {username},
		"password":         {"StrongPass1"},
		"confirm_password": {"StrongPass1"},
		"full_name":        {"Test User"},
		"email":            {username + "@lendora.local"},
	}, "")
	defer response.Body.Close()

	if response.StatusCode != http.StatusSeeOther {
		t.Fatalf("register expected 303, got %d", response.StatusCode)
	}
	return authCookieHeader(t, response)
}

func seedAdminSession(t *testing.T, app *fiber.App, database *gorm.DB) string {
	t.Helper()

	passwordHash, err := bcrypt.GenerateFromPassword([]byte("AdminPass1"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash admin password: %v", err)
	}
	if err := db.EnsureAdminUser(database, string(passwordHash)); err != nil {
		t.Fatalf("seed admin: %v", err)
	}

	response := postForm(t, app, "/api/auth/login", url.Values{
		"username": {db.AdminUsername},
		"password": {"AdminPass1"},
	}, "")
	defer response.Body.Close()

	if response.StatusCode != http.StatusSeeOther {
		t.Fatalf("admin login expected 303, got %d", response.StatusCode)
	}
	return authCookieHeader(t, response)
}

func uintString(value uint) string {
	return strconv.FormatUint(uint64(value), 10)
}

func submitProfile(t *testing.T, app *fiber.App, cookie string, age string, income string, employment string) *http.Response {
	t.Helper()

	return postForm(t, app, "/api/profile", url.Values{
		"age":               {age},
		"income":            {income},
		"employment_status": {employment},
	}, cookie)
}
