package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaults(t *testing.T) {
	assert.Equal(t, 8080, Server.Port())
	assert.Equal(t, 20.0, Server.RateLimit())
	assert.Equal(t, []string{"http://localhost:3000"}, Server.CorsAllowedOrigins())
	assert.True(t, IsDev())
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("APP_ENV", "production")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example")

	assert.Equal(t, 9090, Server.Port())
	assert.False(t, IsDev())
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, Server.CorsAllowedOrigins())
}

func TestInvalidNumbersFallBack(t *testing.T) {
	t.Setenv("SERVER_PORT", "not a port")
	t.Setenv("SERVER_RATE_LIMIT", "fast")

	assert.Equal(t, 8080, Server.Port())
	assert.Equal(t, 20.0, Server.RateLimit())
}
