package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{EnvHighScoreFile, EnvAudio, EnvVolume, EnvSeed, EnvRosterFile, EnvScale} {
		t.Setenv(k, "")
	}
}

func TestDefaults(t *testing.T) {
	clearEnv(t)
	cfg := FromEnv()
	assert.True(t, cfg.AudioEnabled)
	assert.Equal(t, 0.3, cfg.Volume)
	assert.Zero(t, cfg.Seed)
	assert.Empty(t, cfg.RosterFile)
	assert.Equal(t, 1.0, cfg.Scale)
	assert.Equal(t, "highscore.json", filepath.Base(cfg.HighScoreFile))
}

func TestFromEnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvHighScoreFile, "/tmp/best.json")
	t.Setenv(EnvAudio, "false")
	t.Setenv(EnvVolume, "75")
	t.Setenv(EnvSeed, "1234")
	t.Setenv(EnvRosterFile, "forms.json")
	t.Setenv(EnvScale, "0.5")

	cfg := FromEnv()
	assert.Equal(t, "/tmp/best.json", cfg.HighScoreFile)
	assert.False(t, cfg.AudioEnabled)
	assert.Equal(t, 0.75, cfg.Volume)
	assert.Equal(t, int64(1234), cfg.Seed)
	assert.Equal(t, "forms.json", cfg.RosterFile)
	assert.Equal(t, 0.5, cfg.Scale)
}

func TestFromEnvInvalidValuesKeepDefaults(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvAudio, "maybe")
	t.Setenv(EnvVolume, "loud")
	t.Setenv(EnvSeed, "x")
	t.Setenv(EnvScale, "-2")

	cfg := FromEnv()
	def := Default()
	assert.Equal(t, def.AudioEnabled, cfg.AudioEnabled)
	assert.Equal(t, def.Volume, cfg.Volume)
	assert.Equal(t, def.Seed, cfg.Seed)
	assert.Equal(t, def.Scale, cfg.Scale)
}

func TestVolumeIsClamped(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvVolume, "250")
	assert.Equal(t, 1.0, FromEnv().Volume)
	t.Setenv(EnvVolume, "-5")
	assert.Equal(t, 0.0, FromEnv().Volume)
}

func TestLoadReadsDotEnv(t *testing.T) {
	clearEnv(t)
	require.NoError(t, os.Unsetenv(EnvSeed))
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte(EnvSeed+"=77\n"), 0o644))
	t.Chdir(dir)

	assert.Equal(t, int64(77), Load().Seed)
}
