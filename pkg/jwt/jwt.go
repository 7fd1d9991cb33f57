package jwt

import (
	"errors"
	"fmt"
	"strconv"

	"equarior/backend/internal/config"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrInvalidToken is returned when a token is malformed, signed with the
	// wrong key, or uses an unexpected signing method.
	ErrInvalidToken = errors.New("invalid token signature")
	// ErrMissingSubject is returned when a verified token carries no subject.
	ErrMissingSubject = errors.New("token has no subject")
)

// GenerateToken creates a new JWT whose subject is the given user ID in
// decimal form. The claim set carries nothing else; in particular there is
// no expiry.
func GenerateToken(userID uint) (string, error) {
	claims := jwt.RegisteredClaims{
		Subject: strconv.FormatUint(uint64(userID), 10),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString([]byte(config.AppConfig.JWTSecret))
}

// ParseSubject verifies a token's HMAC signature and returns its subject
// unchanged. It is the only place in the codebase where tokens are verified.
func ParseSubject(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(config.AppConfig.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return "", ErrInvalidToken
	}

	subject, err := token.Claims.GetSubject()
	if err != nil || subject == "" {
		return "", ErrMissingSubject
	}

	return subject, nil
}

// ParseUserID verifies a token and parses its subject as a numeric user ID.
func ParseUserID(tokenString string) (uint, error) {
	subject, err := ParseSubject(tokenString)
	if err != nil {
		return 0, err
	}

	userID, err := strconv.ParseUint(subject, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("malformed subject %q: %w", subject, err)
	}

	return uint(userID), nil
}
