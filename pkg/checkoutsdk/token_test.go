package checkoutsdk

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

func TestTokenDeadlineFromExpClaim(t *testing.T) {
	t.Parallel()

	exp := time.Now().Add(10 * time.Minute).Truncate(time.Second)
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(exp),
	}).SignedString([]byte("irrelevant"))
	require.NoError(t, err)

	deadline, ok := tokenDeadline(token)
	require.True(t, ok)
	require.WithinDuration(t, exp, deadline, time.Second)
}

func TestTokenDeadlineRejectsNonJWT(t *testing.T) {
	t.Parallel()

	for _, token := range []string{"", "opaque-session-token", "a.b"} {
		_, ok := tokenDeadline(token)
		require.False(t, ok, "token %q should yield no deadline", token)
	}
}

func TestTokenDeadlineNoExpClaim(t *testing.T) {
	t.Parallel()

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject: "co-1",
	}).SignedString([]byte("irrelevant"))
	require.NoError(t, err)

	_, ok := tokenDeadline(token)
	require.False(t, ok)
}
