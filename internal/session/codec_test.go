package session_test

import (
	"encoding/base64"
	"strings"
	"testing"
	"time"

	"gudang/internal/models"
	"gudang/internal/session"

	"github.com/dgrijalva/jwt-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test_session_secret"

func TestJWTCodec_RoundTrip(t *testing.T) {
	codec := session.NewJWTCodec(testSecret, time.Hour)

	in := &session.Session{}
	in.Establish("admin", models.RoleAdmin)
	in.Flash(session.Success, "Login successful!")

	token, err := codec.Encode(in)
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	out, err := codec.Decode(token)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestJWTCodec_TokensAreUnique(t *testing.T) {
	codec := session.NewJWTCodec(testSecret, time.Hour)
	s := &session.Session{Username: "user1", Role: models.RoleUser}

	a, err := codec.Encode(s)
	require.NoError(t, err)
	b, err := codec.Encode(s)
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestJWTCodec_RejectsBadTokens(t *testing.T) {
	codec := session.NewJWTCodec(testSecret, time.Hour)
	good, err := codec.Encode(&session.Session{Username: "user1", Role: models.RoleUser})
	require.NoError(t, err)

	otherSecret, err := session.NewJWTCodec("another_secret", time.Hour).Encode(&session.Session{Username: "admin", Role: models.RoleAdmin})
	require.NoError(t, err)

	expired, err := session.NewJWTCodec(testSecret, -time.Hour).Encode(&session.Session{Username: "admin", Role: models.RoleAdmin})
	require.NoError(t, err)

	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"username": "admin",
		"role":     "admin",
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	tests := map[string]string{
		"garbage":      "not.a.token",
		"empty":        "",
		"wrong secret": otherSecret,
		"expired":      expired,
		"alg none":     unsigned,
		"tampered":     tamper(good),
	}
	for name, token := range tests {
		t.Run(name, func(t *testing.T) {
			s, err := codec.Decode(token)
			assert.ErrorIs(t, err, session.ErrInvalidToken)
			assert.Nil(t, s)
		})
	}
}

func TestJWTCodec_DecodeNormalizesPartialSession(t *testing.T) {
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"username": "user1",
		"exp":      time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte(testSecret))
	require.NoError(t, err)

	s, err := session.NewJWTCodec(testSecret, time.Hour).Decode(token)
	require.NoError(t, err)
	assert.False(t, s.IsAuthenticated())
	assert.Empty(t, s.Username)
}

// tamper swaps the payload of token while keeping its original signature.
func tamper(token string) string {
	parts := strings.Split(token, ".")
	parts[1] = base64.RawURLEncoding.EncodeToString([]byte(`{"username":"admin","role":"admin"}`))
	return strings.Join(parts, ".")
}
