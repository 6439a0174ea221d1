// Package session holds the process-wide sign-in state and UI preferences and
// persists them across restarts.
package session

import (
	"context"
	"crypto/subtle"
	"errors"
	"strings"
	"sync"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/op/go-logging"
)

var log = logging.MustGetLogger("log")

type Theme string

const (
	ThemeDark  Theme = "dark"
	ThemeLight Theme = "light"

	DefaultTheme = ThemeDark
)

var ErrInvalidTheme = errors.New("theme must be dark or light")

func ParseTheme(raw string) (Theme, error) {
	switch Theme(strings.ToLower(strings.TrimSpace(raw))) {
	case ThemeDark:
		return ThemeDark, nil
	case ThemeLight:
		return ThemeLight, nil
	}
	return "", ErrInvalidTheme
}

// State is what gets persisted.
type State struct {
	AccessToken  string `json:"accessToken,omitempty"`
	RefreshToken string `json:"refreshToken,omitempty"`
	Theme        Theme  `json:"theme"`
}

type Store interface {
	Load(ctx context.Context) (State, error)
	Save(ctx context.Context, state State) error
}

type tokenContextKey struct{}

// WithToken attaches a caller-supplied bearer token to ctx. It takes
// precedence over the stored session token.
func WithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenContextKey{}, token)
}

func TokenFromContext(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(tokenContextKey{}).(string)
	return token, ok && token != ""
}

type Manager struct {
	mu    sync.RWMutex
	store Store
	state State
	now   func() time.Time
}

// NewManager loads the persisted state. A store that cannot be read yields a
// signed-out session with the default theme.
func NewManager(ctx context.Context, store Store) *Manager {
	m := &Manager{store: store, now: time.Now}
	if store != nil {
		state, err := store.Load(ctx)
		if err != nil {
			log.Warningf("[session] could not load saved session: %v", err)
		} else {
			m.state = state
		}
	}
	if _, err := ParseTheme(string(m.state.Theme)); err != nil {
		m.state.Theme = DefaultTheme
	}
	return m
}

func (m *Manager) Login(ctx context.Context, accessToken, refreshToken string) error {
	accessToken = strings.TrimSpace(accessToken)
	if accessToken == "" {
		return errors.New("access token is required")
	}
	return m.update(ctx, func(s *State) {
		s.AccessToken = accessToken
		s.RefreshToken = strings.TrimSpace(refreshToken)
	})
}

// Logout clears the tokens and keeps the theme.
func (m *Manager) Logout(ctx context.Context) error {
	return m.update(ctx, func(s *State) {
		s.AccessToken = ""
		s.RefreshToken = ""
	})
}

// Token implements apiclient.TokenSource. A token carried by ctx wins over the
// stored one; an expired stored token is not sent.
func (m *Manager) Token(ctx context.Context) (string, error) {
	if token, ok := TokenFromContext(ctx); ok {
		return token, nil
	}
	m.mu.RLock()
	token := m.state.AccessToken
	m.mu.RUnlock()
	if token == "" || Expired(token, m.now()) {
		return "", nil
	}
	return token, nil
}

// Holds reports whether token is the stored access token.
func (m *Manager) Holds(token string) bool {
	token = strings.TrimSpace(token)
	if token == "" {
		return false
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	return subtle.ConstantTimeCompare([]byte(token), []byte(m.state.AccessToken)) == 1
}

func (m *Manager) RefreshToken() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.state.RefreshToken
}

func (m *Manager) IsAuthenticated() bool {
	m.mu.RLock()
	token := m.state.AccessToken
	m.mu.RUnlock()
	return token != "" && !Expired(token, m.now())
}

func (m *Manager) Theme() Theme {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.state.Theme
}

func (m *Manager) SetTheme(ctx context.Context, theme Theme) error {
	parsed, err := ParseTheme(string(theme))
	if err != nil {
		return err
	}
	return m.update(ctx, func(s *State) {
		s.Theme = parsed
	})
}

func (m *Manager) ToggleTheme(ctx context.Context) (Theme, error) {
	var next Theme
	err := m.update(ctx, func(s *State) {
		if s.Theme == ThemeDark {
			next = ThemeLight
		} else {
			next = ThemeDark
		}
		s.Theme = next
	})
	return next, err
}

// update applies fn and persists the result. The in-memory state is only
// replaced once the store accepted it.
func (m *Manager) update(ctx context.Context, fn func(*State)) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	next := m.state
	fn(&next)
	if m.store != nil {
		if err := m.store.Save(ctx, next); err != nil {
			return err
		}
	}
	m.state = next
	return nil
}

// Expired reports whether token is a JWT whose exp claim is in the past.
// Tokens that are not JWTs or carry no exp never expire here.
func Expired(token string, now time.Time) bool {
	exp, ok := expiry(token)
	return ok && !now.Before(exp)
}

// Subject returns the token's sub claim, or "" when it has none.
func Subject(token string) string {
	claims, ok := unverifiedClaims(token)
	if !ok {
		return ""
	}
	sub, err := claims.GetSubject()
	if err != nil {
		return ""
	}
	return sub
}

func expiry(token string) (time.Time, bool) {
	claims, ok := unverifiedClaims(token)
	if !ok {
		return time.Time{}, false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}
	return exp.Time, true
}

func unverifiedClaims(token string) (jwtlib.MapClaims, bool) {
	claims := jwtlib.MapClaims{}
	if _, _, err := jwtlib.NewParser().ParseUnverified(token, claims); err != nil {
		return nil, false
	}
	return claims, true
}
