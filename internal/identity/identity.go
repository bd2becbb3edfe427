// Package identity resolves the owner's name and email, the caller identity
// the remote service requires on trip creation. The auth provider itself is
// external; all this package does is read the claims it already issued.
package identity

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"

	"github.com/jmoraes/planner/internal/domain"
)

// FromToken extracts the owner identity from the auth provider's cached
// access token. The signature is deliberately not verified: the remote
// service is the verifier, and the client only needs the display claims.
func FromToken(token string) (domain.Owner, error) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return domain.Owner{}, fmt.Errorf("identity.FromToken: parse token: %w", err)
	}

	name, _ := claims["name"].(string)
	email, _ := claims["email"].(string)
	if email == "" {
		return domain.Owner{}, fmt.Errorf("identity.FromToken: token has no email claim")
	}
	return domain.Owner{Name: name, Email: email}, nil
}

// Resolve returns the owner identity to use for trip creation. Explicitly
// configured values win; the token claims fill whatever is left blank.
// An error is returned only when no email can be resolved at all.
func Resolve(name, email, token string) (domain.Owner, error) {
	owner := domain.Owner{Name: name, Email: email}
	if owner.Email != "" && owner.Name != "" {
		return owner, nil
	}

	if token != "" {
		fromToken, err := FromToken(token)
		if err == nil {
			if owner.Name == "" {
				owner.Name = fromToken.Name
			}
			if owner.Email == "" {
				owner.Email = fromToken.Email
			}
		}
	}

	if owner.Email == "" {
		return domain.Owner{}, fmt.Errorf("identity.Resolve: owner email not configured and not present in token")
	}
	return owner, nil
}
