// Package auth checks user credentials and remembers successful logins
package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"os"
	"strconv"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/ayoisaiah/tally/internal/apperr"
	"github.com/ayoisaiah/tally/internal/config"
	"github.com/ayoisaiah/tally/internal/osutil"
)

// Status is the outcome of an authentication attempt.
type Status int

const (
	// Unknown means no credentials were presented.
	Unknown Status = iota
	Authenticated
	Rejected
)

func (s Status) String() string {
	switch s {
	case Authenticated:
		return "authenticated"
	case Rejected:
		return "rejected"
	default:
		return "unknown"
	}
}

var (
	ErrBadCredentials = &apperr.Error{
		Message: "username/password is incorrect",
	}

	ErrNoUsers = &apperr.Error{
		Message: "no user accounts are configured: add one with 'tally user add'",
	}
)

// Identity describes the user of the current invocation.
type Identity struct {
	DisplayName string
	UserID      string
	Status      Status
}

// token is the remembered login written to disk.
type token struct {
	Name      string `json:"name"`
	UserID    string `json:"user_id"`
	Signature string `json:"signature"`
	Expires   int64  `json:"expires"`
}

// Authenticator verifies credentials against the configured accounts.
type Authenticator struct {
	users     map[string]config.UserCredential
	now       func() time.Time
	cookie    config.CookieConfig
	tokenPath string
}

// New returns an Authenticator for the given accounts. Successful logins are
// remembered in a signed token at tokenPath.
func New(
	users map[string]config.UserCredential,
	cookie config.CookieConfig,
	tokenPath string,
) *Authenticator {
	return &Authenticator{
		users:     users,
		cookie:    cookie,
		tokenPath: tokenPath,
		now:       time.Now,
	}
}

// HasUsers reports whether any account is configured.
func (a *Authenticator) HasUsers() bool {
	return len(a.users) > 0
}

// Login checks the password of userID. On success the login is remembered
// until the cookie expires.
func (a *Authenticator) Login(userID, password string) (Identity, error) {
	if !a.HasUsers() {
		return Identity{Status: Unknown}, ErrNoUsers
	}

	userID = strings.ToLower(strings.TrimSpace(userID))

	if userID == "" {
		return Identity{Status: Unknown}, nil
	}

	user, ok := a.users[userID]
	if !ok {
		return Identity{UserID: userID, Status: Rejected}, ErrBadCredentials
	}

	err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password))
	if err != nil {
		return Identity{UserID: userID, Status: Rejected}, ErrBadCredentials
	}

	err = a.remember(userID)
	if err != nil {
		return Identity{}, err
	}

	return a.identity(userID), nil
}

// Current returns the remembered identity, or an identity with Unknown status
// if there is no valid remembered login.
func (a *Authenticator) Current() Identity {
	b, err := os.ReadFile(a.tokenPath)
	if err != nil {
		return Identity{Status: Unknown}
	}

	var t token

	err = json.Unmarshal(b, &t)
	if err != nil {
		return Identity{Status: Unknown}
	}

	if t.Name != a.cookie.Name || a.now().Unix() > t.Expires {
		return Identity{Status: Unknown}
	}

	if !hmac.Equal([]byte(t.Signature), []byte(a.sign(t.UserID, t.Expires))) {
		return Identity{Status: Unknown}
	}

	if _, ok := a.users[t.UserID]; !ok {
		return Identity{Status: Unknown}
	}

	return a.identity(t.UserID)
}

// Logout forgets the remembered login.
func (a *Authenticator) Logout() error {
	err := os.Remove(a.tokenPath)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}

	return nil
}

func (a *Authenticator) identity(userID string) Identity {
	name := a.users[userID].Name
	if name == "" {
		name = userID
	}

	return Identity{
		DisplayName: name,
		UserID:      userID,
		Status:      Authenticated,
	}
}

func (a *Authenticator) remember(userID string) error {
	if a.cookie.ExpiryDays == 0 || a.cookie.Key == "" {
		return nil
	}

	expires := a.now().AddDate(0, 0, a.cookie.ExpiryDays).Unix()

	b, err := json.Marshal(token{
		Name:      a.cookie.Name,
		UserID:    userID,
		Expires:   expires,
		Signature: a.sign(userID, expires),
	})
	if err != nil {
		return err
	}

	return os.WriteFile(a.tokenPath, b, osutil.FilePermission)
}

func (a *Authenticator) sign(userID string, expires int64) string {
	mac := hmac.New(sha256.New, []byte(a.cookie.Key))
	mac.Write([]byte(a.cookie.Name + "|" + userID + "|" + strconv.FormatInt(expires, 10)))

	return hex.EncodeToString(mac.Sum(nil))
}
