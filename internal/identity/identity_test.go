package identity_test

import (
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmoraes/planner/internal/domain"
	"github.com/jmoraes/planner/internal/identity"
)

// signedToken builds a token carrying the given claims. The signing key is
// irrelevant: the package never verifies signatures.
func signedToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-key"))
	require.NoError(t, err)
	return token
}

func TestFromToken(t *testing.T) {
	token := signedToken(t, jwt.MapClaims{"name": "Ana Souza", "email": "ana@x.com"})

	owner, err := identity.FromToken(token)

	require.NoError(t, err)
	assert.Equal(t, domain.Owner{Name: "Ana Souza", Email: "ana@x.com"}, owner)
}

func TestFromToken_MissingEmailClaim(t *testing.T) {
	token := signedToken(t, jwt.MapClaims{"name": "Ana Souza"})

	_, err := identity.FromToken(token)

	assert.Error(t, err)
}

func TestFromToken_Garbage(t *testing.T) {
	_, err := identity.FromToken("not-a-jwt")

	assert.Error(t, err)
}

func TestResolve_ConfigWinsOverToken(t *testing.T) {
	token := signedToken(t, jwt.MapClaims{"name": "Token Name", "email": "token@x.com"})

	owner, err := identity.Resolve("Config Name", "config@x.com", token)

	require.NoError(t, err)
	assert.Equal(t, domain.Owner{Name: "Config Name", Email: "config@x.com"}, owner)
}

func TestResolve_TokenFillsBlanks(t *testing.T) {
	token := signedToken(t, jwt.MapClaims{"name": "Ana Souza", "email": "ana@x.com"})

	owner, err := identity.Resolve("", "", token)

	require.NoError(t, err)
	assert.Equal(t, domain.Owner{Name: "Ana Souza", Email: "ana@x.com"}, owner)
}

func TestResolve_NoEmailAnywhere(t *testing.T) {
	_, err := identity.Resolve("Ana", "", "")

	assert.Error(t, err)
}
