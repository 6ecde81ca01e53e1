package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Default(t *testing.T) {
	p, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, DefaultProfile, p)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("ISCCSUM_AVG_SIZE", "4096")
	t.Setenv("ISCCSUM_NAME", "large")

	p, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 4096, p.AvgSize)
	assert.Equal(t, "large", p.Name)
}

func TestLoad_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "profile.yaml")
	require.NoError(t, os.WriteFile(path, []byte("name: wide\navg_size: 2048\n"), 0o644))

	p, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "wide", p.Name)
	assert.Equal(t, 2048, p.AvgSize)
}

func TestLoad_RejectsNonPositiveAvgSize(t *testing.T) {
	t.Setenv("ISCCSUM_AVG_SIZE", "0")
	_, err := Load("")
	assert.Error(t, err)
}
