package identity

import (
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/shopfront/client/internal/domain/shared"
)

// RoleAdmin is the authority that unlocks the back-office operations
const RoleAdmin = "ROLE_ADMIN"

// ErrInvalidToken indicates an access token that could not be decoded
var ErrInvalidToken = shared.NewDomainError("INVALID_TOKEN", "Access token could not be decoded")

// AccessClaims mirrors the claims the backend encodes into its access tokens.
// Authorities is a space-separated role list.
type AccessClaims struct {
	UserID      int64  `json:"userId"`
	Authorities string `json:"auth"`
	jwt.RegisteredClaims
}

// Session is the client's view of the authenticated user, derived entirely
// from the access token it holds
type Session struct {
	Token     string
	UserID    int64
	Login     string
	Roles     []string
	ExpiresAt time.Time
}

// Anonymous returns an unauthenticated session
func Anonymous() *Session {
	return &Session{}
}

// FromToken decodes an access token into a session. The client holds no
// signing key, so the token is decoded without signature verification, the
// same way a browser reads its own stored token; the backend verifies the
// signature on every request anyway.
func FromToken(token string) (*Session, error) {
	claims := &AccessClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return nil, ErrInvalidToken
	}

	s := &Session{
		Token:  token,
		UserID: claims.UserID,
		Login:  claims.Subject,
		Roles:  strings.Fields(claims.Authorities),
	}
	if claims.ExpiresAt != nil {
		s.ExpiresAt = claims.ExpiresAt.Time
	}
	return s, nil
}

// Authenticated reports whether the session holds a usable token
func (s *Session) Authenticated() bool {
	if s == nil || s.Token == "" {
		return false
	}
	return s.ExpiresAt.IsZero() || time.Now().Before(s.ExpiresAt)
}

// HasRole reports whether the session carries the given authority
func (s *Session) HasRole(role string) bool {
	if s == nil {
		return false
	}
	for _, r := range s.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// IsAdmin reports whether the session may use the back-office operations
func (s *Session) IsAdmin() bool {
	return s.Authenticated() && s.HasRole(RoleAdmin)
}
