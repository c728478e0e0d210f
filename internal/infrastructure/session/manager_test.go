package session

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/shop/storefront/internal/domain/identity"
)

func signedToken(t *testing.T, expiresAt time.Time) string {
	t.Helper()
	claims := jwt.RegisteredClaims{
		Subject:   "u1",
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return token
}

func tokenPath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "token")
}

func TestManager_StartsSignedOut(t *testing.T) {
	m := NewManager(tokenPath(t), zap.NewNop())
	assert.False(t, m.Authenticated())
	assert.Empty(t, m.Token())
	assert.Nil(t, m.CurrentUser())
}

func TestManager_BeginAndEnd(t *testing.T) {
	path := tokenPath(t)
	m := NewManager(path, zap.NewNop())

	var transitions []bool
	m.Subscribe(func(authenticated bool) {
		transitions = append(transitions, authenticated)
	})

	user := &identity.User{ID: "u1", Name: "Ada"}
	require.NoError(t, m.Begin("token-abc", user))

	assert.True(t, m.Authenticated())
	assert.Equal(t, "token-abc", m.Token())
	require.NotNil(t, m.CurrentUser())
	assert.Equal(t, "Ada", m.CurrentUser().Name)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "token-abc", string(raw))

	m.End()
	assert.False(t, m.Authenticated())
	assert.Nil(t, m.CurrentUser())
	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))

	assert.Equal(t, []bool{true, false}, transitions)
}

func TestManager_RestoresPersistedToken(t *testing.T) {
	path := tokenPath(t)
	token := signedToken(t, time.Now().Add(time.Hour))
	require.NoError(t, os.WriteFile(path, []byte(token), 0o600))

	m := NewManager(path, zap.NewNop())
	assert.True(t, m.Authenticated())
	assert.Equal(t, token, m.Token())
	// The profile is fetched lazily after restore.
	assert.Nil(t, m.CurrentUser())
}

func TestManager_DiscardsExpiredToken(t *testing.T) {
	path := tokenPath(t)
	token := signedToken(t, time.Now().Add(-time.Hour))
	require.NoError(t, os.WriteFile(path, []byte(token), 0o600))

	m := NewManager(path, zap.NewNop())
	assert.False(t, m.Authenticated())

	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func TestManager_DiscardsMalformedToken(t *testing.T) {
	path := tokenPath(t)
	require.NoError(t, os.WriteFile(path, []byte("not-a-jwt"), 0o600))

	m := NewManager(path, zap.NewNop())
	assert.False(t, m.Authenticated())
}

func TestManager_SetUserDoesNotNotify(t *testing.T) {
	m := NewManager(tokenPath(t), zap.NewNop())

	notified := 0
	m.Subscribe(func(bool) { notified++ })

	m.SetUser(&identity.User{ID: "u1"})
	assert.Equal(t, 0, notified)
	require.NotNil(t, m.CurrentUser())
}

func TestManager_CurrentUserReturnsCopy(t *testing.T) {
	m := NewManager(tokenPath(t), zap.NewNop())
	require.NoError(t, m.Begin("tok", &identity.User{ID: "u1", Name: "Ada"}))

	u := m.CurrentUser()
	u.Name = "mutated"
	assert.Equal(t, "Ada", m.CurrentUser().Name)
}
