package checkoutsdk

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// tokenDeadline extracts the exp claim from a JWT-shaped bearer token. Some
// deployments omit expiresAt from the info response but still mint a JWT with
// an exp claim; falling back to it keeps the countdown available.
//
// The signature is deliberately not verified: the token is opaque to us and
// only the backend validates it. The claim is used for countdown tracking,
// never for authorisation decisions.
func tokenDeadline(token string) (time.Time, bool) {
	if token == "" {
		return time.Time{}, false
	}

	var claims jwt.RegisteredClaims
	parser := jwt.NewParser(jwt.WithoutClaimsValidation())
	if _, _, err := parser.ParseUnverified(token, &claims); err != nil {
		return time.Time{}, false
	}
	if claims.ExpiresAt == nil {
		return time.Time{}, false
	}

	return claims.ExpiresAt.Time, true
}
