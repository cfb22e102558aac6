package auth

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestJWTManager() *JWTManager {
	return NewJWTManager("test-secret-key", 24*time.Hour)
}

func TestGenerateAndValidateToken(t *testing.T) {
	mgr := newTestJWTManager()
	customerID := uuid.New()

	token, err := mgr.GenerateToken(customerID, "player_one", "p1@example.com")
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := mgr.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, customerID.String(), claims.Subject)
	assert.Equal(t, "player_one", claims.Username)
	assert.Equal(t, "p1@example.com", claims.Email)
}

func TestExpiredTokenRejected(t *testing.T) {
	mgr := NewJWTManager("test-secret-key", -1*time.Hour)
	customerID := uuid.New()

	token, err := mgr.GenerateToken(customerID, "player_one", "p1@example.com")
	require.NoError(t, err)

	_, err = mgr.ValidateToken(token)
	require.Error(t, err)
}

func TestWrongSecretRejected(t *testing.T) {
	mgr := newTestJWTManager()
	other := NewJWTManager("another-secret-key", 24*time.Hour)
	customerID := uuid.New()

	token, err := mgr.GenerateToken(customerID, "player_one", "p1@example.com")
	require.NoError(t, err)

	_, err = other.ValidateToken(token)
	require.Error(t, err)
}

func TestGarbageTokenRejected(t *testing.T) {
	mgr := newTestJWTManager()

	_, err := mgr.ValidateToken("not.a.token")
	require.Error(t, err)

	_, err = mgr.ValidateToken("")
	require.Error(t, err)
}

func TestTokenHasUniqueID(t *testing.T) {
	mgr := newTestJWTManager()
	customerID := uuid.New()

	t1, err := mgr.GenerateToken(customerID, "player_one", "p1@example.com")
	require.NoError(t, err)
	t2, err := mgr.GenerateToken(customerID, "player_one", "p1@example.com")
	require.NoError(t, err)

	c1, err := mgr.ValidateToken(t1)
	require.NoError(t, err)
	c2, err := mgr.ValidateToken(t2)
	require.NoError(t, err)

	assert.NotEqual(t, c1.ID, c2.ID)
}
