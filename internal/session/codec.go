package session

import (
	"errors"
	"fmt"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/google/uuid"
)

// Codec turns a Session into an opaque signed token and back.
type Codec interface {
	Encode(s *Session) (string, error)
	// Decode verifies token. Any failure yields an error and the caller
	// should fall back to an anonymous session.
	Decode(token string) (*Session, error)
}

// ErrInvalidToken is returned by Decode for tokens that fail verification.
var ErrInvalidToken = errors.New("invalid session token")

type claims struct {
	Session
	jwt.StandardClaims
}

// JWTCodec signs sessions as HS256 JSON Web Tokens.
type JWTCodec struct {
	secret []byte
	ttl    time.Duration
}

// NewJWTCodec creates a codec using secret; tokens expire after ttl.
func NewJWTCodec(secret string, ttl time.Duration) *JWTCodec {
	return &JWTCodec{
		secret: []byte(secret),
		ttl:    ttl,
	}
}

// Encode signs s.
func (c *JWTCodec) Encode(s *Session) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		Session: *s,
		StandardClaims: jwt.StandardClaims{
			Id:        uuid.New().String(),
			IssuedAt:  now.Unix(),
			ExpiresAt: now.Add(c.ttl).Unix(),
		},
	})

	signed, err := token.SignedString(c.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign session: %w", err)
	}
	return signed, nil
}

// Decode parses and verifies token.
func (c *JWTCodec) Decode(token string) (*Session, error) {
	var cl claims
	parsed, err := jwt.ParseWithClaims(token, &cl, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return c.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !parsed.Valid {
		return nil, ErrInvalidToken
	}

	s := cl.Session
	s.normalize()
	return &s, nil
}
