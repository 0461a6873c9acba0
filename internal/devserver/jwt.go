package devserver

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/logilink/logilink-client/models"
)

// generateJWTToken creates a signed HMAC-SHA256 JWT with the standard
// claims iss, sub (user ID as base-10 string), iat and exp.
func generateJWTToken(issuer string, userID int64, tokenDuration time.Duration, signKey string) (models.Token, error) {
	if issuer == "" || tokenDuration == 0 || signKey == "" {
		return models.Token{}, errors.New("invalid params for generating JWT Token")
	}

	now := time.Now()
	token := &models.Token{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   strconv.FormatInt(userID, 10),
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenDuration)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		UserID: userID,
	}

	jwtToken := jwt.NewWithClaims(jwt.SigningMethodHS256, token)
	signed, err := jwtToken.SignedString([]byte(signKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during signing JWT token: %w", err)
	}

	token.Token = jwtToken
	token.SignedString = signed
	return *token, nil
}

// validateAndParseJWTToken verifies the signature, issuer and expiry of
// tokenString and extracts the user ID from the sub claim.
func validateAndParseJWTToken(tokenString, tokenSignKey, tokenIssuer string) (models.Token, error) {
	// the token itself is the claims object, so sub lands in its
	// embedded RegisteredClaims where GetUserID reads it
	token := &models.Token{}
	parsed, err := jwt.ParseWithClaims(tokenString, token,
		func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
			}
			return []byte(tokenSignKey), nil
		},
		jwt.WithIssuer(tokenIssuer),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return models.Token{}, fmt.Errorf("error parsing JWT token: %w", err)
	}

	token.Token = parsed
	token.SignedString = tokenString

	userID, err := token.GetUserID()
	if err != nil {
		return models.Token{}, err
	}
	token.UserID = userID

	return *token, nil
}
