package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTService_IssueAndVerify(t *testing.T) {
	service := NewJWTService("test-secret", 60)

	token, expiresAt, err := service.Issue(7, "admin@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().UTC().Add(60*time.Minute), expiresAt, 5*time.Second)

	claims, err := service.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, uint(7), claims.UserID)
	assert.Equal(t, "admin@example.com", claims.Email)
}

func TestJWTService_VerifyRejectsWrongSecret(t *testing.T) {
	service := NewJWTService("secret-a", 60)
	other := NewJWTService("secret-b", 60)

	token, _, err := service.Issue(1, "user@example.com")
	require.NoError(t, err)

	_, err = other.Verify(token)
	assert.Error(t, err)
}

func TestJWTService_VerifyRejectsGarbage(t *testing.T) {
	service := NewJWTService("test-secret", 60)

	tests := []struct {
		name  string
		token string
	}{
		{"empty token", ""},
		{"not a jwt", "abc.def.ghi"},
		{"truncated", "eyJhbGciOiJIUzI1NiJ9"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.Verify(tt.token)
			assert.Error(t, err)
		})
	}
}

func TestBcryptPasswordHasher_RoundTrip(t *testing.T) {
	hasher := NewBcryptPasswordHasher(10)

	hash, err := hasher.Hash("correct horse battery staple")
	require.NoError(t, err)
	require.NotEqual(t, "correct horse battery staple", hash)

	require.NoError(t, hasher.Verify(hash, "correct horse battery staple"))
	assert.Error(t, hasher.Verify(hash, "wrong password"))
}
