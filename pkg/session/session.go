// Package session keeps the whole admin session inside one signed cookie.
// There is no server-side session table: the HS256-signed claims are the
// session, so horizontal scaling needs nothing shared beyond the secret.
package session

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const CookieName = "qr_admin_session"

// MaxAge bounds a session regardless of cookie lifetime games.
const MaxAge = 7 * 24 * time.Hour

// Session is the cookie-resident state. The zero value is anonymous.
type Session struct {
	AdminID      string `json:"adminId"`
	RestaurantID string `json:"restaurantId"` // acting restaurant for super-admins
	Email        string `json:"email"`
	IsLoggedIn   bool   `json:"isLoggedIn"`
	IsSuperAdmin bool   `json:"isSuperAdmin"`
}

type sessionClaims struct {
	Session
	jwt.RegisteredClaims
}

type Store struct {
	secret []byte
	secure bool
}

// NewStore builds a store signing with secret; secure marks the cookie
// Secure (production only, so plain-http dev setups keep working).
func NewStore(secret string, secure bool) *Store {
	return &Store{secret: []byte(secret), secure: secure}
}

// Load reads the session cookie. Tampering, a bad signature, an expired
// token or a missing cookie all yield the anonymous session, never an error.
func (s *Store) Load(c *gin.Context) Session {
	raw, err := c.Cookie(CookieName)
	if err != nil || raw == "" {
		return Session{}
	}

	var claims sessionClaims
	token, err := jwt.ParseWithClaims(raw, &claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return Session{}
	}
	return claims.Session
}

// Save signs sess and sets the cookie for another MaxAge window.
func (s *Store) Save(c *gin.Context, sess Session) error {
	now := time.Now()
	claims := sessionClaims{
		Session: sess,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(MaxAge)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return err
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(CookieName, signed, int(MaxAge.Seconds()), "/", "", s.secure, true)
	return nil
}

// Clear drops the cookie (logout).
func (s *Store) Clear(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(CookieName, "", -1, "/", "", s.secure, true)
}
