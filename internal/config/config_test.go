package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadAppliesDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "release", cfg.Server.Mode)
	assert.True(t, cfg.RateLimit.Enabled)
	assert.Equal(t, "pingshui", cfg.Prosody.RhymeSystem)
	assert.Greater(t, cfg.Database.MaxOpenConns, 0)
	assert.Greater(t, cfg.Batch.Workers, 0)
}

func TestLoadRhymeSystemFromEnv(t *testing.T) {
	t.Setenv("RHYME_SYSTEM", "xin")
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "xin", cfg.Prosody.RhymeSystem)
}

func TestLoadMissingConfigFileErrors(t *testing.T) {
	_, err := Load("does-not-exist.yaml")
	assert.Error(t, err)
}

func TestValidateRejectsBadPort(t *testing.T) {
	cfg := &Config{
		Server:    ServerConfig{Port: 0, Mode: "release"},
		Database:  DatabaseConfig{Path: "data/scores.db"},
		RateLimit: RateLimitConfig{RequestsPerSecond: 1, Burst: 1},
		Prosody:   ProsodyConfig{RhymeSystem: "pingshui"},
	}
	assert.Error(t, cfg.Validate())
}

func TestValidateRejectsUnknownRhymeSystem(t *testing.T) {
	cfg := &Config{
		Server:    ServerConfig{Port: 8080, Mode: "release"},
		Database:  DatabaseConfig{Path: "data/scores.db"},
		RateLimit: RateLimitConfig{RequestsPerSecond: 1, Burst: 1},
		Prosody:   ProsodyConfig{RhymeSystem: "unknown"},
	}
	assert.Error(t, cfg.Validate())
}

func TestValidateAcceptsWellFormedConfig(t *testing.T) {
	cfg := &Config{
		Server:    ServerConfig{Port: 8080, Mode: "debug"},
		Database:  DatabaseConfig{Path: "data/scores.db"},
		RateLimit: RateLimitConfig{RequestsPerSecond: 10, Burst: 20},
		Prosody:   ProsodyConfig{RhymeSystem: "tong"},
	}
	assert.NoError(t, cfg.Validate())
}
