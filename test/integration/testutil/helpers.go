//go:build integration

package testutil

import (
	"bytes"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
)

// RegisterCustomer creates a new account and returns the auth token and
// customer ID.
func (env *TestEnv) RegisterCustomer(username, email, password string) (token string, customerID uuid.UUID) {
	env.t.Helper()
	resp := env.POST("/auth/register", map[string]string{
		"username": username,
		"email":    email,
		"password": password,
	}, "")
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		env.t.Fatalf("RegisterCustomer: expected 201, got %d", resp.StatusCode)
	}

	var result struct {
		Token      string    `json:"token"`
		CustomerID uuid.UUID `json:"customer_id"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		env.t.Fatalf("RegisterCustomer: decode: %v", err)
	}
	return result.Token, result.CustomerID
}

// LoginCustomer authenticates an existing account and returns the auth token.
func (env *TestEnv) LoginCustomer(email, password string) string {
	env.t.Helper()
	resp := env.POST("/auth/login", map[string]string{
		"email":    email,
		"password": password,
	}, "")
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		env.t.Fatalf("LoginCustomer: expected 200, got %d", resp.StatusCode)
	}

	var result struct {
		Token string `json:"token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		env.t.Fatalf("LoginCustomer: decode: %v", err)
	}
	return result.Token
}

// BuyGame purchases a game and returns the purchase ID.
func (env *TestEnv) BuyGame(token, game string, qty int) uuid.UUID {
	env.t.Helper()
	resp := env.POST("/store/purchases", map[string]interface{}{
		"game":     game,
		"quantity": qty,
	}, token)
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		env.t.Fatalf("BuyGame %s: expected 201, got %d", game, resp.StatusCode)
	}

	var result struct {
		Purchase struct {
			ID uuid.UUID `json:"id"`
		} `json:"purchase"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		env.t.Fatalf("BuyGame: decode: %v", err)
	}
	return result.Purchase.ID
}

// GET performs an unauthenticated GET request.
func (env *TestEnv) GET(path string) *http.Response {
	env.t.Helper()
	resp, err := http.Get(env.Server.URL + path)
	if err != nil {
		env.t.Fatalf("GET %s: %v", path, err)
	}
	return resp
}

// POST performs a POST request with optional auth token.
func (env *TestEnv) POST(path string, body interface{}, token string) *http.Response {
	env.t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			env.t.Fatalf("POST %s: encode: %v", path, err)
		}
	}
	req, err := http.NewRequest("POST", env.Server.URL+path, &buf)
	if err != nil {
		env.t.Fatalf("POST %s: new request: %v", path, err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		env.t.Fatalf("POST %s: %v", path, err)
	}
	return resp
}

// AuthGET performs an authenticated GET request.
func (env *TestEnv) AuthGET(path, token string) *http.Response {
	env.t.Helper()
	req, err := http.NewRequest("GET", env.Server.URL+path, nil)
	if err != nil {
		env.t.Fatalf("AuthGET %s: new request: %v", path, err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		env.t.Fatalf("AuthGET %s: %v", path, err)
	}
	return resp
}
