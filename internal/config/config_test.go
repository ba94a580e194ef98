package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestInitUsesDefaultsWithoutFile(t *testing.T) {
	require.NoError(t, Init(t.TempDir(), zap.NewNop()))

	assert.Equal(t, "8080", Conf.Server.Port)
	assert.Equal(t, 60, Conf.Auth.TokenTTLMinutes)
	assert.Equal(t, 60, Conf.Leaderboard.RefreshIntervalSeconds)
	assert.False(t, Conf.Uploads.AutoVerify)
}

func TestInitEnvOverride(t *testing.T) {
	t.Setenv("FITTRACK_SERVER_PORT", "9999")
	t.Setenv("FITTRACK_AUTH_JWT_SECRET", "env-secret")

	require.NoError(t, Init(t.TempDir(), zap.NewNop()))

	assert.Equal(t, "9999", Conf.Server.Port)
	assert.Equal(t, "env-secret", Conf.Auth.JWTSecret)
}
