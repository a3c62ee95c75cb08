package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/trabajitos-sv/trabajitos-api/internal/app"
	"github.com/trabajitos-sv/trabajitos-api/internal/db"
	"github.com/trabajitos-sv/trabajitos-api/internal/db/models"
	"github.com/trabajitos-sv/trabajitos-api/internal/mailer"
)

// testEnv is a full application over a throwaway sqlite database, driven
// through the HTTP surface exactly like a client would.
type testEnv struct {
	t   *testing.T
	app *fiber.App
	db  *gorm.DB
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	gdb, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.Migrate(gdb))
	require.NoError(t, db.SeedStatuses(gdb))

	return &testEnv{
		t:   t,
		app: app.New(gdb, "test-signing-key", mailer.NewLogMailer()),
		db:  gdb,
	}
}

func (e *testEnv) request(method, path, token string, body interface{}) (*http.Response, map[string]interface{}) {
	e.t.Helper()

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		require.NoError(e.t, err)
		reader = bytes.NewReader(encoded)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := e.app.Test(req, -1)
	require.NoError(e.t, err)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(e.t, err)
	resp.Body.Close()

	var decoded map[string]interface{}
	if len(raw) > 0 {
		require.NoError(e.t, json.Unmarshal(raw, &decoded), "body: %s", raw)
	}
	return resp, decoded
}

// registerAndLogin creates an account through the API and returns its token.
func (e *testEnv) registerAndLogin(email string) string {
	e.t.Helper()

	resp, _ := e.request(http.MethodPost, "/api/v1/auth/register", "", fiber.Map{
		"name":     "Test User",
		"phone":    "7777-7777",
		"email":    email,
		"password": "s3cret-password",
	})
	require.Equal(e.t, http.StatusCreated, resp.StatusCode)

	resp, body := e.request(http.MethodPost, "/api/v1/auth/login", "", fiber.Map{
		"identifier": email,
		"password":   "s3cret-password",
	})
	require.Equal(e.t, http.StatusOK, resp.StatusCode)

	token, _ := body["data"].(map[string]interface{})["token"].(string)
	require.NotEmpty(e.t, token)
	return token
}

func (e *testEnv) promoteToSysadmin(email string) {
	e.t.Helper()
	err := e.db.Model(&models.User{}).
		Where("email = ?", email).
		Update("role", models.UserRoleSysadmin).Error
	require.NoError(e.t, err)
}

func (e *testEnv) userID(email string) uint {
	e.t.Helper()
	var user models.User
	require.NoError(e.t, e.db.Where("email = ?", email).First(&user).Error)
	return user.ID
}

func (e *testEnv) statusID(name string) uint {
	e.t.Helper()
	var status models.Status
	require.NoError(e.t, e.db.Where("name = ?", name).First(&status).Error)
	return status.ID
}

func data(body map[string]interface{}) map[string]interface{} {
	d, _ := body["data"].(map[string]interface{})
	return d
}

func TestAuthenticationRequired(t *testing.T) {
	e := newTestEnv(t)

	resp, _ := e.request(http.MethodGet, "/api/v1/trabajito/requests", "", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp, _ = e.request(http.MethodGet, "/api/v1/trabajito/requests", "not-a-token", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAdminListingRequiresSysadmin(t *testing.T) {
	e := newTestEnv(t)
	ana := e.registerAndLogin("ana@example.com")

	resp, _ := e.request(http.MethodGet, "/api/v1/trabajito/", ana, nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	e.registerAndLogin("admin@example.com")
	e.promoteToSysadmin("admin@example.com")
	admin := e.login(t, "admin@example.com")

	resp, body := e.request(http.MethodGet, "/api/v1/trabajito/", admin, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "success", body["slug"])
}

// login fetches a fresh token for an already registered account.
func (e *testEnv) login(t *testing.T, email string) string {
	t.Helper()
	resp, body := e.request(http.MethodPost, "/api/v1/auth/login", "", fiber.Map{
		"identifier": email,
		"password":   "s3cret-password",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	token, _ := data(body)["token"].(string)
	require.NotEmpty(t, token)
	return token
}

func TestTrabajitoLifecycleOverHTTP(t *testing.T) {
	e := newTestEnv(t)

	ana := e.registerAndLogin("ana@example.com")
	beto := e.registerAndLogin("beto@example.com")
	carla := e.registerAndLogin("carla@example.com")

	requested := e.statusID(models.StatusRequested)
	inProgress := e.statusID(models.StatusInProgress)
	completed := e.statusID(models.StatusCompleted)

	// Ana requests a job from Beto.
	resp, body := e.request(http.MethodPost, "/api/v1/trabajito/", ana, fiber.Map{
		"description": "fix the kitchen sink",
		"dateInit":    time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		"status":      requested,
		"id_hired":    e.userID("beto@example.com"),
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	created := data(body)
	assert.Equal(t, "requested", created["state"])
	id := uint(created["ID"].(float64))
	require.NotZero(t, id)

	// Carla is a stranger on every surface: not-found, never forbidden.
	resp, _ = e.request(http.MethodGet, fmt.Sprintf("/api/v1/trabajito/requests/%d", id), carla, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp, _ = e.request(http.MethodGet, fmt.Sprintf("/api/v1/trabajito/job/%d", id), carla, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	// Beto starts the job.
	resp, body = e.request(http.MethodPatch, "/api/v1/trabajito/start", beto, fiber.Map{
		"id":         id,
		"dateFinish": time.Date(2024, 3, 3, 0, 0, 0, 0, time.UTC),
		"status":     inProgress,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "in_progress", data(body)["state"])

	// Beto adds a bill line.
	resp, body = e.request(http.MethodPost, fmt.Sprintf("/api/v1/trabajito/%d/bill", id), beto, fiber.Map{
		"item": "pipe fitting",
		"cost": 12.50,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	lines, _ := data(body)["billLines"].([]interface{})
	assert.Len(t, lines, 1)

	// Beto registers the confirmation number. It must never appear in the
	// response body.
	resp, body = e.request(http.MethodPatch, "/api/v1/trabajito/finish", beto, fiber.Map{
		"id":        id,
		"endNumber": "7731",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "awaiting_confirmation", data(body)["state"])
	raw, _ := json.Marshal(body)
	assert.NotContains(t, string(raw), "7731")

	// Ana confirms with the wrong number, then the right one.
	resp, _ = e.request(http.MethodPatch, "/api/v1/trabajito/finalization", ana, fiber.Map{
		"id":        id,
		"endNumber": "0000",
		"status":    completed,
	})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	resp, body = e.request(http.MethodPatch, "/api/v1/trabajito/finalization", ana, fiber.Map{
		"id":        id,
		"endNumber": "7731",
		"status":    completed,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "completed", data(body)["state"])
	assert.NotNil(t, data(body)["confirmedAt"])

	// Confirming twice is a conflict.
	resp, _ = e.request(http.MethodPatch, "/api/v1/trabajito/finalization", ana, fiber.Map{
		"id":        id,
		"endNumber": "7731",
		"status":    completed,
	})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}

func TestSoftDeleteOverHTTP(t *testing.T) {
	e := newTestEnv(t)

	ana := e.registerAndLogin("ana@example.com")
	beto := e.registerAndLogin("beto@example.com")

	resp, body := e.request(http.MethodPost, "/api/v1/trabajito/", ana, fiber.Map{
		"description": "paint the fence",
		"dateInit":    time.Now(),
		"status":      e.statusID(models.StatusRequested),
		"id_hired":    e.userID("beto@example.com"),
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	id := uint(data(body)["ID"].(float64))

	// The worker cannot soft-delete someone else's request.
	resp, _ = e.request(http.MethodPatch, fmt.Sprintf("/api/v1/trabajito/deletion/%d", id), beto, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, body = e.request(http.MethodPatch, fmt.Sprintf("/api/v1/trabajito/deletion/%d", id), ana, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, true, data(body)["hidden"])

	// Gone from the solicitor's listing, still on the worker's.
	resp, body = e.request(http.MethodGet, "/api/v1/trabajito/requests", ana, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	items, _ := data(body)["items"].([]interface{})
	assert.Empty(t, items)

	resp, body = e.request(http.MethodGet, "/api/v1/trabajito/jobs", beto, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	items, _ = data(body)["items"].([]interface{})
	assert.Len(t, items, 1)
}

func TestCreateValidationOverHTTP(t *testing.T) {
	e := newTestEnv(t)
	ana := e.registerAndLogin("ana@example.com")
	e.registerAndLogin("beto@example.com")

	t.Run("missing fields", func(t *testing.T) {
		resp, body := e.request(http.MethodPost, "/api/v1/trabajito/", ana, fiber.Map{
			"description": "no date or status",
		})
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "invalid-input", body["slug"])
	})

	t.Run("self hire", func(t *testing.T) {
		resp, _ := e.request(http.MethodPost, "/api/v1/trabajito/", ana, fiber.Map{
			"description": "hire myself",
			"dateInit":    time.Now(),
			"status":      e.statusID(models.StatusRequested),
			"id_hired":    e.userID("ana@example.com"),
		})
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("unknown hired user", func(t *testing.T) {
		resp, _ := e.request(http.MethodPost, "/api/v1/trabajito/", ana, fiber.Map{
			"description": "ghost worker",
			"dateInit":    time.Now(),
			"status":      e.statusID(models.StatusRequested),
			"id_hired":    9999,
		})
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}

func TestPaginationOverHTTP(t *testing.T) {
	e := newTestEnv(t)
	ana := e.registerAndLogin("ana@example.com")
	e.registerAndLogin("beto@example.com")
	betoID := e.userID("beto@example.com")
	requested := e.statusID(models.StatusRequested)

	for i := 0; i < 3; i++ {
		resp, _ := e.request(http.MethodPost, "/api/v1/trabajito/", ana, fiber.Map{
			"description": fmt.Sprintf("job %d", i),
			"dateInit":    time.Now(),
			"status":      requested,
			"id_hired":    betoID,
		})
		require.Equal(t, http.StatusCreated, resp.StatusCode)
	}

	resp, body := e.request(http.MethodGet, "/api/v1/trabajito/requests?page=2&page_size=2", ana, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	page := data(body)
	items, _ := page["items"].([]interface{})
	assert.Len(t, items, 1)
	assert.Equal(t, float64(3), page["total"])
	assert.Equal(t, float64(2), page["page"])
	assert.Equal(t, float64(2), page["page_size"])
}
