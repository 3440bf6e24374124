// Package auth verifies the bearer tokens issued by the platform's auth service.
// This service never issues tokens.
package auth

import (
	"errors"
	"fitmanager/routine-service/internal/domain"
	"fmt"
	"strconv"
	"strings"

	"github.com/golang-jwt/jwt/v4"
)

var (
	// ErrMissingToken means no bearer token could be extracted from the request.
	ErrMissingToken = errors.New("access token required")
	// ErrInvalidToken covers bad signatures, unexpected algorithms, expiry and missing claims.
	ErrInvalidToken = errors.New("invalid token")
)

// claims mirrors the payload signed by the auth service: {id, username, email, role}.
// The id is usually a string but is accepted as a JSON number too.
type claims struct {
	ID       interface{} `json:"id"`
	Username string      `json:"username,omitempty"`
	Email    string      `json:"email,omitempty"`
	Role     domain.Role `json:"role,omitempty"`
	jwt.RegisteredClaims
}

// Verifier validates HS256 tokens against a shared secret.
type Verifier struct {
	secret []byte
}

// NewVerifier creates a verifier for the given secret.
func NewVerifier(secret string) *Verifier {
	return &Verifier{secret: []byte(secret)}
}

// TokenFromHeader extracts the token from an Authorization header value of the form
// "Bearer <token>".
func TokenFromHeader(header string) (string, error) {
	parts := strings.Fields(header)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return "", ErrMissingToken
	}
	return parts[1], nil
}

// Verify parses and validates a token and returns the caller identity.
func (v *Verifier) Verify(tokenString string) (domain.Identity, error) {
	if tokenString == "" {
		return domain.Identity{}, ErrMissingToken
	}

	c := &claims{}
	token, err := jwt.ParseWithClaims(tokenString, c, func(token *jwt.Token) (interface{}, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return v.secret, nil
	})
	if err != nil {
		return domain.Identity{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !token.Valid {
		return domain.Identity{}, ErrInvalidToken
	}

	subject := subjectString(c.ID)
	if subject == "" {
		return domain.Identity{}, fmt.Errorf("%w: missing id claim", ErrInvalidToken)
	}

	role := c.Role
	if role == "" {
		role = domain.RoleUser
	}
	return domain.Identity{SubjectID: subject, Role: role}, nil
}

func subjectString(raw interface{}) string {
	switch id := raw.(type) {
	case string:
		return strings.TrimSpace(id)
	case float64:
		return strconv.FormatFloat(id, 'f', -1, 64)
	default:
		return ""
	}
}
