package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aluvm-go/aluvm/regfile"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, uint64(1_000_000), cfg.Execution.MaxCycles)
	assert.Equal(t, "", cfg.Execution.DefaultEntry)
	assert.False(t, cfg.Execution.EnableTrace)

	assert.Equal(t, regfile.MaxCallDepth, cfg.Limits.CallStackDepth)
	assert.Equal(t, int(regfile.MaxCounter), cfg.Limits.LibraryDepth)
}

func TestGetConfigPath(t *testing.T) {
	path := GetConfigPath()
	assert.NotEmpty(t, path)
	assert.Equal(t, "config.toml", filepath.Base(path))
}

func TestEntryHash_RoundTrip(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Execution.DefaultEntry = "0102030405060708090a0b0c0d0e0f101112131415161718191a1b1c1d1e1f"

	hash, err := cfg.EntryHash()
	require.NoError(t, err)
	assert.Equal(t, byte(0x01), hash[0])
	assert.Equal(t, byte(0x1f), hash[31])
}

func TestEntryHash_EmptyErrors(t *testing.T) {
	cfg := DefaultConfig()
	_, err := cfg.EntryHash()
	assert.Error(t, err)
}

func TestEntryHash_WrongLengthErrors(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Execution.DefaultEntry = "0102"
	_, err := cfg.EntryHash()
	assert.Error(t, err)
}

func TestSaveAndLoad(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "test_config.toml")

	cfg := DefaultConfig()
	cfg.Execution.MaxCycles = 5000000
	cfg.Execution.EnableTrace = true
	cfg.Limits.CallStackDepth = 128

	require.NoError(t, cfg.SaveTo(configPath))
	_, err := os.Stat(configPath)
	require.NoError(t, err)

	loaded, err := LoadFrom(configPath)
	require.NoError(t, err)

	assert.Equal(t, uint64(5000000), loaded.Execution.MaxCycles)
	assert.True(t, loaded.Execution.EnableTrace)
	assert.Equal(t, 128, loaded.Limits.CallStackDepth)
}

func TestLoadNonExistent(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "nonexistent.toml")

	cfg, err := LoadFrom(configPath)
	require.NoError(t, err)
	assert.Equal(t, uint64(1_000_000), cfg.Execution.MaxCycles)
}

func TestLoadInvalidTOML(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "invalid.toml")

	invalidTOML := `
[execution]
max_cycles = "not a number"
`
	require.NoError(t, os.WriteFile(configPath, []byte(invalidTOML), 0644))

	_, err := LoadFrom(configPath)
	assert.Error(t, err)
}

func TestSaveCreatesDirectory(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "subdir1", "subdir2", "config.toml")

	cfg := DefaultConfig()
	require.NoError(t, cfg.SaveTo(configPath))

	_, err := os.Stat(configPath)
	require.NoError(t, err)
}
