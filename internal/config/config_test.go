package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "single", cfg.Mode)
	assert.Equal(t, "238U", cfg.Nuclide)
	assert.Positive(t, cfg.InitialPopulation)
	assert.Positive(t, cfg.Steps)
	assert.NoError(t, cfg.Validate())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"unknown mode", func(c *Config) { c.Mode = "bateman" }},
		{"negative population", func(c *Config) { c.InitialPopulation = -1 }},
		{"negative steps", func(c *Config) { c.Steps = -5 }},
		{"negative total time", func(c *Config) { c.TotalTime = -0.5 }},
		{"ratio above one", func(c *Config) { c.Mode = "branching"; c.BranchingRatioA = 1.5 }},
		{"ratio below zero", func(c *Config) { c.Mode = "branching"; c.BranchingRatioA = -0.2 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestLoadSaveRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "run.yaml")

	cfg := DefaultConfig()
	cfg.Mode = "chain"
	cfg.Nuclide = "232Th"
	cfg.Steps = 9000
	cfg.TotalTime = 7.025e10

	require.NoError(t, Save(path, cfg))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestLoadAppliesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "partial.yaml")
	require.NoError(t, os.WriteFile(path, []byte("mode: chain\nnuclide: 235U\n"), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "chain", cfg.Mode)
	assert.Equal(t, "235U", cfg.Nuclide)
	assert.EqualValues(t, DefaultInitialPopulation, cfg.InitialPopulation)
	assert.Equal(t, DefaultSteps, cfg.Steps)
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("chain", "uranium-thorium")
	require.NotNil(t, cfg)
	assert.Equal(t, "238U", cfg.Nuclide)

	assert.Nil(t, GetPreset("chain", "nonexistent"))
	assert.Nil(t, GetPreset("nonexistent", "uranium-thorium"))
}

func TestListPresets(t *testing.T) {
	assert.NotEmpty(t, ListPresets("single"))
	assert.NotEmpty(t, ListPresets("branching"))
	assert.Nil(t, ListPresets("nonexistent"))
}
