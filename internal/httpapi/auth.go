package httpapi

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"net/http"
	"strings"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"

	"github.com/Wessamoreira/ambiente-precificador/internal/apiclient"
	"github.com/Wessamoreira/ambiente-precificador/internal/domain"
	"github.com/Wessamoreira/ambiente-precificador/internal/service"
	"github.com/Wessamoreira/ambiente-precificador/internal/session"
)

var (
	errMissingToken = errors.New("missing bearer token")
	errInvalidToken = errors.New("invalid or expired token")
)

// Authenticator is the upstream account API; *apiclient.Client satisfies it.
type Authenticator interface {
	Login(ctx context.Context, req domain.LoginRequest) (domain.AuthResponse, error)
	Logout(ctx context.Context, refreshToken string) error
}

type TokenVerifier struct {
	secret []byte
	now    func() time.Time
}

func NewTokenVerifier(secret string) *TokenVerifier {
	v := &TokenVerifier{now: time.Now}
	if secret = strings.TrimSpace(secret); secret != "" {
		v.secret = []byte(secret)
	}
	return v
}

// Verify returns the cache scope for token. A signature-checked token is
// scoped by its subject. Without a secret the claims are only read for
// expiry and the scope is a digest of the token itself.
func (v *TokenVerifier) Verify(token string) (string, error) {
	claims := &jwtlib.RegisteredClaims{}

	if v.secret == nil {
		if _, _, err := jwtlib.NewParser().ParseUnverified(token, claims); err != nil {
			return "", errInvalidToken
		}
		if claims.ExpiresAt != nil && !v.now().Before(claims.ExpiresAt.Time) {
			return "", errInvalidToken
		}
		return tokenScope(token), nil
	}

	parsed, err := jwtlib.ParseWithClaims(token, claims, func(t *jwtlib.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwtlib.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return v.secret, nil
	}, jwtlib.WithValidMethods([]string{"HS256"}), jwtlib.WithTimeFunc(v.now))
	if err != nil || !parsed.Valid {
		return "", errInvalidToken
	}
	if claims.Subject == "" {
		return tokenScope(token), nil
	}
	return claims.Subject, nil
}

func tokenScope(token string) string {
	sum := sha256.Sum256([]byte(token))
	return "token:" + hex.EncodeToString(sum[:])
}

// requireAuth only admits requests carrying their own bearer token.
func (a *API) requireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, err := bearerToken(r)
		if err != nil {
			writeError(w, http.StatusUnauthorized, err)
			return
		}

		scope, err := a.verifier.Verify(token)
		if err != nil {
			writeError(w, http.StatusUnauthorized, err)
			return
		}

		ctx := session.WithToken(r.Context(), token)
		ctx = service.WithScope(ctx, scope)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func bearerToken(r *http.Request) (string, error) {
	authorization := strings.TrimSpace(r.Header.Get("Authorization"))
	if !strings.HasPrefix(strings.ToLower(authorization), "bearer ") {
		return "", errMissingToken
	}
	token := strings.TrimSpace(authorization[len("Bearer "):])
	if token == "" {
		return "", errMissingToken
	}
	return token, nil
}

func (a *API) handleLogin(w http.ResponseWriter, r *http.Request) {
	if !a.loginLimiter.Allow(clientKey(r)) {
		writeError(w, http.StatusTooManyRequests, errors.New("too many login attempts"))
		return
	}

	var req domain.LoginRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	req.Email = strings.TrimSpace(req.Email)
	if req.Email == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, errors.New("email and password are required"))
		return
	}

	resp, err := a.auth.Login(r.Context(), req)
	if err != nil {
		var upstream *apiclient.Error
		if errors.As(err, &upstream) && upstream.StatusCode >= 400 && upstream.StatusCode < 500 {
			writeError(w, http.StatusUnauthorized, errors.New("invalid credentials"))
			return
		}
		writeError(w, http.StatusBadGateway, err)
		return
	}

	if err := a.session.Login(r.Context(), resp.AccessToken, resp.RefreshToken); err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	log.Infof("[api] signed in email=%s", req.Email)

	writeJSON(w, http.StatusOK, resp)
}

// handleLogout drops the caller's snapshots. The stored session is only
// revoked and cleared when the caller holds its access token; local state is
// cleared even when the upstream revocation fails.
func (a *API) handleLogout(w http.ResponseWriter, r *http.Request) {
	if err := a.service.Refresh(r.Context()); err != nil {
		log.Warningf("[api] could not drop snapshots on logout: %v", err)
	}

	token, _ := session.TokenFromContext(r.Context())
	if !a.session.Holds(token) {
		writeJSON(w, http.StatusOK, map[string]any{"ok": true})
		return
	}

	if refresh := a.session.RefreshToken(); refresh != "" {
		if err := a.auth.Logout(r.Context(), refresh); err != nil {
			log.Warningf("[api] upstream logout failed: %v", err)
		}
	}
	if err := a.session.Logout(r.Context()); err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"ok": true})
}
