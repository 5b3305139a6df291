package jwt

import (
	"context"
	"testing"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTAuthVerifiesTokensSignedWithSharedSecret(t *testing.T) {
	svc := NewJWTService("test-secret-key")

	_, tokenString, err := svc.JWTAuth().Encode(map[string]any{
		"user_id": "user-1",
		"type":    "access",
		"exp":     time.Now().Add(time.Hour).Unix(),
	})
	require.NoError(t, err)

	token, err := jwtauth.VerifyToken(svc.JWTAuth(), tokenString)
	require.NoError(t, err)

	claims, err := token.AsMap(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims["user_id"])
	assert.Equal(t, "access", claims["type"])
}

func TestJWTAuthRejectsTokensSignedWithAnotherSecret(t *testing.T) {
	issuer := NewJWTService("issuer-secret")
	verifier := NewJWTService("different-secret")

	_, tokenString, err := issuer.JWTAuth().Encode(map[string]any{"user_id": "user-1"})
	require.NoError(t, err)

	_, err = jwtauth.VerifyToken(verifier.JWTAuth(), tokenString)
	assert.Error(t, err)
}
