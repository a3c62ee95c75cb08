package handlers_test

import (
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterValidation(t *testing.T) {
	e := newTestEnv(t)

	t.Run("short password", func(t *testing.T) {
		resp, body := e.request(http.MethodPost, "/api/v1/auth/register", "", fiber.Map{
			"name":     "Ana",
			"phone":    "7777-7777",
			"email":    "ana@example.com",
			"password": "short",
		})
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "invalid-input", body["slug"])
	})

	t.Run("bad email", func(t *testing.T) {
		resp, _ := e.request(http.MethodPost, "/api/v1/auth/register", "", fiber.Map{
			"name":     "Ana",
			"phone":    "7777-7777",
			"email":    "not-an-email",
			"password": "s3cret-password",
		})
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("duplicate email", func(t *testing.T) {
		e.registerAndLogin("ana@example.com")
		resp, body := e.request(http.MethodPost, "/api/v1/auth/register", "", fiber.Map{
			"name":     "Other Ana",
			"phone":    "6666-6666",
			"email":    "ana@example.com",
			"password": "s3cret-password",
		})
		assert.Equal(t, http.StatusConflict, resp.StatusCode)
		assert.Equal(t, "conflict", body["slug"])
	})
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	e := newTestEnv(t)
	e.registerAndLogin("ana@example.com")

	resp, body := e.request(http.MethodPost, "/api/v1/auth/login", "", fiber.Map{
		"identifier": "ana@example.com",
		"password":   "wrong-password",
	})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	// The response never says which half of the credential was wrong.
	assert.Equal(t, "Invalid credentials", body["error"])

	resp, _ = e.request(http.MethodPost, "/api/v1/auth/login", "", fiber.Map{
		"identifier": "nobody@example.com",
		"password":   "s3cret-password",
	})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestWhoAmI(t *testing.T) {
	e := newTestEnv(t)
	token := e.registerAndLogin("ana@example.com")

	resp, body := e.request(http.MethodGet, "/api/v1/auth/whoami", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	identity := data(body)
	assert.Equal(t, "ana@example.com", identity["email"])
	assert.Equal(t, "user", identity["role"])
}

func TestVerifyResetCodeRejectsUnknown(t *testing.T) {
	e := newTestEnv(t)
	e.registerAndLogin("ana@example.com")

	resp, body := e.request(http.MethodGet, "/api/v1/auth/reset-code/00000000000000000000000000000000", "", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "invalid-input", body["slug"])
}
