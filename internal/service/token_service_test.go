package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestTokenServiceIssueAndVerify(t *testing.T) {
	t.Parallel()

	svc := NewTokenService("test-secret", 24*time.Hour)

	token, err := svc.Issue("user-1", "a@x.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	identity, ok := svc.Verify(token)
	require.True(t, ok)
	require.Equal(t, "user-1", identity.UserID)
	require.Equal(t, "a@x.com", identity.Email)
}

func TestTokenServiceRejectsWrongSecret(t *testing.T) {
	t.Parallel()

	issuer := NewTokenService("secret-one", 24*time.Hour)
	verifier := NewTokenService("secret-two", 24*time.Hour)

	token, err := issuer.Issue("user-1", "a@x.com")
	require.NoError(t, err)

	_, ok := verifier.Verify(token)
	require.False(t, ok)
}

func TestTokenServiceRejectsGarbage(t *testing.T) {
	t.Parallel()

	svc := NewTokenService("test-secret", 24*time.Hour)

	for _, input := range []string{"", "garbage", "a.b.c", "eyJhbGciOiJIUzI1NiJ9"} {
		_, ok := svc.Verify(input)
		require.False(t, ok, "input %q should not verify", input)
	}
}

func TestTokenServiceRejectsExpiredToken(t *testing.T) {
	t.Parallel()

	svc := NewTokenService("test-secret", time.Hour)

	// Issue in the past, verify at the real present.
	svc.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	token, err := svc.Issue("user-1", "a@x.com")
	require.NoError(t, err)

	svc.now = time.Now
	_, ok := svc.Verify(token)
	require.False(t, ok)
}
