package models

import (
	"fmt"
	"strconv"

	"github.com/golang-jwt/jwt/v5"
)

// Token wraps a JWT access token with convenience accessors. The client
// treats access tokens as opaque strings; signing and verification happen
// on the backend and in the dev stub server, which is where this type is
// used.
type Token struct {
	// Token is the underlying JWT used for signing and claim inspection.
	*jwt.Token `json:"-"`

	// RegisteredClaims provides the standard claim set (sub, exp, iat,
	// iss) as defined by RFC 7519.
	jwt.RegisteredClaims

	// SignedString is the compact JWS representation of the token.
	SignedString string `json:"-"`

	// UserID is the owner identifier extracted from the "sub" claim.
	UserID int64 `json:"-"`
}

// GetUserID extracts the user identifier from the token's "sub" claim and
// parses it as a base-10 int64.
func (t *Token) GetUserID() (int64, error) {
	sub, err := t.GetSubject()
	if err != nil {
		return 0, fmt.Errorf("error extracting UserID from token: %w", err)
	}

	userID, err := strconv.ParseInt(sub, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("error converting UserID from token to int64: %w", err)
	}

	return userID, nil
}

// String returns the compact JWS serialization of the token.
func (t *Token) String() string {
	return t.SignedString
}
