package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestManager(t *testing.T, ttl time.Duration) *Manager {
	t.Helper()
	hash, err := HashPassword("s3cret")
	require.NoError(t, err)
	return NewManager("admin", hash, "test-signing-secret", ttl)
}

func TestManager_LoginAndVerify(t *testing.T) {
	m := newTestManager(t, time.Hour)

	token, err := m.Login("admin", "s3cret")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := m.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Username)
	assert.Equal(t, RoleAdmin, claims.Role)
}

func TestManager_Login_WrongPassword(t *testing.T) {
	m := newTestManager(t, time.Hour)

	_, err := m.Login("admin", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestManager_Login_WrongUsername(t *testing.T) {
	m := newTestManager(t, time.Hour)

	_, err := m.Login("root", "s3cret")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestManager_Verify_Garbage(t *testing.T) {
	m := newTestManager(t, time.Hour)

	_, err := m.Verify("not.a.token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestManager_Verify_Expired(t *testing.T) {
	m := newTestManager(t, -time.Minute)

	token, err := m.Login("admin", "s3cret")
	require.NoError(t, err)

	_, err = m.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestManager_Verify_ForeignSecret(t *testing.T) {
	m := newTestManager(t, time.Hour)
	token, err := m.Login("admin", "s3cret")
	require.NoError(t, err)

	hash, err := HashPassword("s3cret")
	require.NoError(t, err)
	other := NewManager("admin", hash, "another-secret", time.Hour)

	_, err = other.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
