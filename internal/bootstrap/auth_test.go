package bootstrap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SowvikSuvo/chefbazaar-gateway/config"
)

func TestBuildAuthComponents_MockMode(t *testing.T) {
	components, err := BuildAuthComponents(config.AuthConfig{
		Mode: config.AuthModeMock,
		DevAuth: config.DevAuthConfig{
			UserID: "dev-user",
			Email:  "dev@example.com",
			Name:   "Dev User",
		},
	}, nil)

	require.NoError(t, err)
	assert.NotNil(t, components.Provider)
	assert.NotNil(t, components.Tokens)
}

func TestBuildAuthComponents_MockModeRequiresIdentity(t *testing.T) {
	_, err := BuildAuthComponents(config.AuthConfig{Mode: config.AuthModeMock}, nil)
	assert.Error(t, err)
}

func TestBuildAuthComponents_OAuthRequiresDiscovery(t *testing.T) {
	_, err := BuildAuthComponents(config.AuthConfig{
		Mode: config.AuthModeOAuth,
		OAuth: config.OAuthConfig{
			ClientID:     "id",
			ClientSecret: "secret",
			// DiscoveryURL deliberately missing
		},
	}, nil)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "OAUTH_DISCOVERY_URL")
}

func TestBuildAuthComponents_UnknownMode(t *testing.T) {
	_, err := BuildAuthComponents(config.AuthConfig{Mode: config.AuthMode("saml")}, nil)
	assert.Error(t, err)
}
