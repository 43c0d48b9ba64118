package models

import (
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is the payload of an access token: the registered claims plus the
// username of the subject. The subject claim holds the decimal user id.
type Claims struct {
	jwt.RegisteredClaims
	Username string `json:"username"`
}

// UserID parses the subject claim as an int64.
func (c *Claims) UserID() (int64, error) {
	sub, err := c.GetSubject()
	if err != nil {
		return 0, fmt.Errorf("error extracting subject from claims: %w", err)
	}

	id, err := strconv.ParseInt(sub, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("error converting subject %q to user id: %w", sub, err)
	}

	return id, nil
}

// Token is an issued or verified access token.
//
// SignedString holds the compact header.payload.signature form and is only
// set on issued tokens. UserID and Username are copied out of the claims.
type Token struct {
	Claims       Claims    `json:"-"`
	SignedString string    `json:"-"`
	UserID       int64     `json:"-"`
	Username     string    `json:"-"`
	ExpiresAt    time.Time `json:"-"`
}

// String returns the compact serialization of the token.
func (t Token) String() string {
	return t.SignedString
}
