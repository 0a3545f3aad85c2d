package auth

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/ayoisaiah/tally/internal/config"
)

func newTestAuthenticator(t *testing.T) *Authenticator {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("secret"), bcrypt.MinCost)
	require.NoError(t, err)

	users := map[string]config.UserCredential{
		"ayo": {Name: "Ayooluwa", Password: string(hash)},
	}

	cookie := config.CookieConfig{
		Name:       "tally_auth",
		Key:        "signing-key",
		ExpiryDays: 30,
	}

	return New(users, cookie, filepath.Join(t.TempDir(), "auth.json"))
}

func TestLoginSuccess(t *testing.T) {
	a := newTestAuthenticator(t)

	id, err := a.Login("Ayo", "secret")
	require.NoError(t, err)

	assert.Equal(t, Identity{
		DisplayName: "Ayooluwa",
		UserID:      "ayo",
		Status:      Authenticated,
	}, id)

	assert.Equal(t, id, a.Current())
}

func TestLoginWrongPassword(t *testing.T) {
	a := newTestAuthenticator(t)

	id, err := a.Login("ayo", "wrong")
	assert.ErrorIs(t, err, ErrBadCredentials)
	assert.Equal(t, Rejected, id.Status)
	assert.Equal(t, Unknown, a.Current().Status)
}

func TestLoginUnknownUser(t *testing.T) {
	a := newTestAuthenticator(t)

	id, err := a.Login("bola", "secret")
	assert.ErrorIs(t, err, ErrBadCredentials)
	assert.Equal(t, Rejected, id.Status)
}

func TestLoginWithoutUsername(t *testing.T) {
	a := newTestAuthenticator(t)

	id, err := a.Login("", "")
	assert.NoError(t, err)
	assert.Equal(t, Unknown, id.Status)
}

func TestLoginWithoutAccounts(t *testing.T) {
	a := New(nil, config.CookieConfig{}, filepath.Join(t.TempDir(), "auth.json"))

	_, err := a.Login("ayo", "secret")
	assert.ErrorIs(t, err, ErrNoUsers)
}

func TestLogout(t *testing.T) {
	a := newTestAuthenticator(t)

	_, err := a.Login("ayo", "secret")
	require.NoError(t, err)

	require.NoError(t, a.Logout())
	assert.Equal(t, Unknown, a.Current().Status)

	// logging out twice is fine
	assert.NoError(t, a.Logout())
}

func TestRememberedLoginExpires(t *testing.T) {
	a := newTestAuthenticator(t)

	_, err := a.Login("ayo", "secret")
	require.NoError(t, err)

	a.now = func() time.Time {
		return time.Now().AddDate(0, 0, 31)
	}

	assert.Equal(t, Unknown, a.Current().Status)
}

func TestRememberedLoginRejectsOtherKey(t *testing.T) {
	a := newTestAuthenticator(t)

	_, err := a.Login("ayo", "secret")
	require.NoError(t, err)

	a.cookie.Key = "rotated"

	assert.Equal(t, Unknown, a.Current().Status)
}

func TestNoRememberWhenExpiryIsZero(t *testing.T) {
	a := newTestAuthenticator(t)
	a.cookie.ExpiryDays = 0

	id, err := a.Login("ayo", "secret")
	require.NoError(t, err)
	assert.Equal(t, Authenticated, id.Status)

	assert.Equal(t, Unknown, a.Current().Status)
}
