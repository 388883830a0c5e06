package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadReadsFile(t *testing.T) {
	cfg, err := Load("test")
	require.NoError(t, err)

	assert.Equal(t, 640, cfg.GetWindowWidth())
	assert.Equal(t, 480, cfg.GetWindowHeight())
	assert.Equal(t, "Flick Cap Test", cfg.GetWindowTitle())
	assert.Equal(t, "debug", cfg.GetLogLevel())
	assert.Equal(t, 2, cfg.GetCapCount())
	assert.Equal(t, 0.9, cfg.GetGlideFactor(0.95))
	assert.Equal(t, 7.5, cfg.GetFlickPower(5))
}

func TestExplicitZeroIsKept(t *testing.T) {
	cfg, err := Load("test")
	require.NoError(t, err)

	assert.Equal(t, 0.0, cfg.GetBounceDamping(0.6))
}

func TestMissingKeysFallBack(t *testing.T) {
	cfg, err := Load("test")
	require.NoError(t, err)

	assert.Equal(t, defaultAppName, cfg.GetAppName())
	assert.Equal(t, defaultCapSize, cfg.GetCapSize())
	assert.Equal(t, 1.0, cfg.GetMinVelocity(1))
	assert.Equal(t, 300.0, cfg.GetMaxDragDistance(300))
	assert.Equal(t, 80.0, cfg.GetArrowDistance(80))
}

func TestEnvironmentOverridesFile(t *testing.T) {
	t.Setenv("WINDOW_WIDTH", "1024")
	t.Setenv("FLICK_POWER", "2.5")
	t.Setenv("BOUNCE_DAMPING", "0.25")
	t.Setenv("APP_NAME", "flickcap-dev")

	cfg, err := Load("test")
	require.NoError(t, err)

	assert.Equal(t, 1024, cfg.GetWindowWidth())
	assert.Equal(t, 2.5, cfg.GetFlickPower(5))
	assert.Equal(t, 0.25, cfg.GetBounceDamping(0.6))
	assert.Equal(t, "flickcap-dev", cfg.GetAppName())
}

func TestUnknownEnvironmentUsesDefaults(t *testing.T) {
	cfg, err := Load("does-not-exist")
	require.NoError(t, err)

	assert.Equal(t, defaultWindowWidth, cfg.GetWindowWidth())
	assert.Equal(t, defaultWindowTitle, cfg.GetWindowTitle())
	assert.Equal(t, defaultCapCount, cfg.GetCapCount())
	assert.Equal(t, 0.95, cfg.GetGlideFactor(0.95))
}
