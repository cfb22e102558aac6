//go:build integration

package integration

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gamevault/platform/test/integration/testutil"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─── Registration Tests ─────────────────────────────────────────────────────

func TestRegister_Success(t *testing.T) {
	env := testutil.NewTestEnv(t)
	resp := env.POST("/auth/register", map[string]string{
		"username": "newplayer", "email": "newplayer@test.com", "password": "securepass123",
	}, "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	var result struct {
		Token      string    `json:"token"`
		CustomerID uuid.UUID `json:"customer_id"`
		Username   string    `json:"username"`
		Email      string    `json:"email"`
		Balance    string    `json:"balance"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	assert.NotEmpty(t, result.Token)
	assert.NotEqual(t, uuid.Nil, result.CustomerID)
	assert.Equal(t, "newplayer", result.Username)
	assert.Equal(t, "newplayer@test.com", result.Email)
	assert.Equal(t, "40", result.Balance[:2])
}

func TestRegister_StartingBalance(t *testing.T) {
	env := testutil.NewTestEnv(t)
	_, customerID := env.RegisterCustomer("starter", "starter@test.com", "securepass123")

	testutil.AssertBalance(t, env, customerID, "40.00")
}

func TestRegister_WritesOutboxEvent(t *testing.T) {
	env := testutil.NewTestEnv(t)
	_, customerID := env.RegisterCustomer("outboxed", "outboxed@test.com", "securepass123")

	assert.Equal(t, 1, testutil.CountOutboxEvents(t, env, customerID))
}

func TestRegister_DuplicateEmail(t *testing.T) {
	env := testutil.NewTestEnv(t)
	env.RegisterCustomer("original", "dup@test.com", "securepass123")

	resp := env.POST("/auth/register", map[string]string{
		"username": "someoneelse", "email": "dup@test.com", "password": "securepass123",
	}, "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}

func TestRegister_DuplicateUsername(t *testing.T) {
	env := testutil.NewTestEnv(t)
	env.RegisterCustomer("taken", "first@test.com", "securepass123")

	resp := env.POST("/auth/register", map[string]string{
		"username": "taken", "email": "second@test.com", "password": "securepass123",
	}, "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}

func TestRegister_InvalidInput(t *testing.T) {
	env := testutil.NewTestEnv(t)

	tests := []struct {
		name string
		body map[string]string
	}{
		{"bad email", map[string]string{"username": "player", "email": "notanemail", "password": "securepass123"}},
		{"short username", map[string]string{"username": "ab", "email": "ok@test.com", "password": "securepass123"}},
		{"short password", map[string]string{"username": "player", "email": "ok@test.com", "password": "short"}},
		{"missing everything", map[string]string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := env.POST("/auth/register", tt.body, "")
			defer resp.Body.Close()
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		})
	}
}

// ─── Login Tests ────────────────────────────────────────────────────────────

func TestLogin_Success(t *testing.T) {
	env := testutil.NewTestEnv(t)
	env.RegisterCustomer("loginuser", "login@test.com", "securepass123")

	token := env.LoginCustomer("login@test.com", "securepass123")
	assert.NotEmpty(t, token)

	resp := env.AuthGET("/account/me", token)
	testutil.AssertStatus(t, resp, http.StatusOK)

	var me struct {
		Username string `json:"username"`
	}
	testutil.DecodeJSON(t, resp, &me)
	assert.Equal(t, "loginuser", me.Username)
}

func TestLogin_WrongPassword(t *testing.T) {
	env := testutil.NewTestEnv(t)
	env.RegisterCustomer("wrongpw", "wrongpw@test.com", "securepass123")

	resp := env.POST("/auth/login", map[string]string{
		"email": "wrongpw@test.com", "password": "notthepassword",
	}, "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestLogin_UnknownEmail(t *testing.T) {
	env := testutil.NewTestEnv(t)

	resp := env.POST("/auth/login", map[string]string{
		"email": "ghost@test.com", "password": "securepass123",
	}, "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestLogout_ReturnsNoContent(t *testing.T) {
	env := testutil.NewTestEnv(t)

	resp := env.POST("/auth/logout", nil, "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
}

// ─── Auth Middleware Tests ──────────────────────────────────────────────────

func TestProtectedRoutes_RequireToken(t *testing.T) {
	env := testutil.NewTestEnv(t)

	paths := []string{"/account/me", "/account/purchases", "/account/returns"}
	for _, path := range paths {
		resp := env.GET(path)
		resp.Body.Close()
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode, "path %s", path)
	}
}

func TestProtectedRoutes_RejectGarbageToken(t *testing.T) {
	env := testutil.NewTestEnv(t)

	resp := env.AuthGET("/account/me", "not-a-real-token")
	resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
