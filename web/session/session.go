// Package session issues and verifies the signed session tokens carried in
// the auth cookie. Tokens are only issued at login and cleared at logout;
// there is no refresh.
package session

import (
	"net/http"
	"time"

	"nouasseur-portal/database/model"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const (
	// CookieName is the session cookie carrying the signed token.
	CookieName = "auth"

	// TokenLifetime is the fixed validity of an issued token.
	TokenLifetime = 24 * time.Hour

	identityKey = "SESSION_IDENTITY"
)

// Identity is the authenticated principal embedded in a session token.
type Identity struct {
	Id       int    `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

type sessionClaims struct {
	Id       int    `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	jwt.RegisteredClaims
}

// Manager signs and verifies session tokens with a server-held secret.
type Manager struct {
	secret []byte
}

// NewManager creates a session manager around the given signing secret.
func NewManager(secret string) *Manager {
	return &Manager{secret: []byte(secret)}
}

// Issue produces a signed token for the given user with a fixed expiry.
func (m *Manager) Issue(user *model.User) (string, error) {
	now := time.Now()
	claims := sessionClaims{
		Id:       user.Id,
		Username: user.Username,
		Email:    user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(TokenLifetime)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

// Verify parses and validates a token. It fails closed: any malformed,
// tampered or expired token yields nil, same as an absent token.
func (m *Manager) Verify(tokenString string) *Identity {
	if tokenString == "" {
		return nil
	}
	claims := &sessionClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return m.secret, nil
	})
	if err != nil || !token.Valid {
		return nil
	}
	return &Identity{Id: claims.Id, Username: claims.Username, Email: claims.Email}
}

// SetCookie delivers the token as an HTTP-only, same-site-lax cookie.
func (m *Manager) SetCookie(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(CookieName, token, int(TokenLifetime.Seconds()), "/", "", false, true)
}

// ClearCookie removes the session cookie.
func (m *Manager) ClearCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(CookieName, "", -1, "/", "", false, true)
}

// SetIdentity stores the verified identity in the request context.
func SetIdentity(c *gin.Context, id *Identity) {
	c.Set(identityKey, id)
}

// GetIdentity returns the identity established for this request, or nil.
func GetIdentity(c *gin.Context) *Identity {
	if obj, ok := c.Get(identityKey); ok {
		if id, ok := obj.(*Identity); ok {
			return id
		}
	}
	return nil
}

// IsAuthenticated reports whether the request carries a valid identity.
func IsAuthenticated(c *gin.Context) bool {
	return GetIdentity(c) != nil
}
