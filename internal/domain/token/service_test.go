package token

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"
)

func newTestService(secret string, ttl time.Duration) *Service {
	return NewService(secret, ttl, slog.Default())
}

func TestService_IssueAndVerify(t *testing.T) {
	svc := newTestService("test-secret", 24*time.Hour)

	tokenString, err := svc.Issue("8b5c0c6e-1f0a-4f7a-9a57-000000000001", "a@x.com")
	require.NoError(t, err)
	require.NotEmpty(t, tokenString)

	identity, err := svc.Verify(tokenString)
	require.NoError(t, err)
	assert.Equal(t, "8b5c0c6e-1f0a-4f7a-9a57-000000000001", identity.UserID)
	assert.Equal(t, "a@x.com", identity.Email)
}

func TestService_Verify_WrongSecret(t *testing.T) {
	issuer := newTestService("secret-one", 24*time.Hour)
	verifier := newTestService("secret-two", 24*time.Hour)

	tokenString, err := issuer.Issue("user-uuid", "a@x.com")
	require.NoError(t, err)

	_, err = verifier.Verify(tokenString)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestService_Verify_Expired(t *testing.T) {
	svc := newTestService("test-secret", -time.Minute)

	tokenString, err := svc.Issue("user-uuid", "a@x.com")
	require.NoError(t, err)

	_, err = svc.Verify(tokenString)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestService_Verify_Malformed(t *testing.T) {
	svc := newTestService("test-secret", 24*time.Hour)

	tests := []struct {
		name  string
		token string
	}{
		{name: "empty", token: ""},
		{name: "garbage", token: "not.a.jwt"},
		{name: "truncated", token: "eyJhbGciOiJIUzI1NiJ9"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Verify(tt.token)
			assert.ErrorIs(t, err, ErrInvalidToken)
		})
	}
}
