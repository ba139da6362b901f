package meili

import (
	"encoding/base64"
	"encoding/json"
	"strings"
	"testing"

	"github.com/meilisearch/meilisearch-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Tenant tokens are signed locally against the search key, so no
// running search instance is needed here.
func setupTenantTokenEnv(t *testing.T) {
	t.Setenv("MEILISEARCH_SEARCH_KEY", "search-key-for-tests")
	t.Setenv("MEILISEARCH_SEARCH_KEY_UID", "9e1a4c2b-3f5d-4a6b-8c7d-2e1f3a4b5c6d")

	defaultClient = meilisearch.NewClient(meilisearch.ClientConfig{
		Host:   "http://localhost:7700",
		APIKey: "master-key-for-tests",
	})
}

type tenantTokenClaims struct {
	APIKeyUID   string                    `json:"apiKeyUid"`
	SearchRules map[string]map[string]any `json:"searchRules"`
}

func decodeClaims(t *testing.T, token string) tenantTokenClaims {
	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)

	payload, err := base64.RawURLEncoding.DecodeString(parts[1])
	require.NoError(t, err)

	var claims tenantTokenClaims
	require.NoError(t, json.Unmarshal(payload, &claims))
	return claims
}

func TestGenerateTenantTokenScopesToOwner(t *testing.T) {
	setupTenantTokenEnv(t)

	token, err := GenerateTenantToken("user-abc")
	require.NoError(t, err)

	claims := decodeClaims(t, token)
	assert.Equal(t, "9e1a4c2b-3f5d-4a6b-8c7d-2e1f3a4b5c6d", claims.APIKeyUID)

	for _, index := range []string{IndexRepos, IndexFiles} {
		rule, ok := claims.SearchRules[index]
		require.True(t, ok, "missing rule for index %s", index)
		assert.Equal(t, "userId = user-abc", rule["filter"])
	}
}

func TestGenerateTenantTokenDiffersPerUser(t *testing.T) {
	setupTenantTokenEnv(t)

	tokenA, err := GenerateTenantToken("user-a")
	require.NoError(t, err)
	tokenB, err := GenerateTenantToken("user-b")
	require.NoError(t, err)

	assert.NotEqual(t, tokenA, tokenB)

	claimsA := decodeClaims(t, tokenA)
	claimsB := decodeClaims(t, tokenB)
	assert.Equal(t, "userId = user-a", claimsA.SearchRules[IndexRepos]["filter"])
	assert.Equal(t, "userId = user-b", claimsB.SearchRules[IndexRepos]["filter"])
}
