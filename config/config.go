// Package config implements ambient, TOML-backed configuration for the
// ALU-VM tooling (spec.md carries no configuration surface of its own;
// this is the ambient layer SPEC_FULL.md's Ambient Stack section calls
// for). Grounded on arm-emulator config/config.go's
// Config/DefaultConfig/Load shape: defaults first, then overlay from an
// optional file.
package config

import (
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/BurntSushi/toml"

	"github.com/aluvm-go/aluvm/regfile"
)

// Config holds the tunables cmd/aluvm's run subcommand reads before
// constructing an exec.VM.
type Config struct {
	// Execution settings: what program to run and how long to let it.
	Execution struct {
		MaxCycles    uint64 `toml:"max_cycles"`
		DefaultEntry string `toml:"default_entry"` // hex-encoded 32-byte library hash
		EnableTrace  bool   `toml:"enable_trace"`
	} `toml:"execution"`

	// Limits settings: bounds this build enforces, for operator
	// visibility. These mirror regfile's compiled-in MaxCounter/
	// MaxCallDepth constants (spec.md §3's "at least 256" floor) rather
	// than overriding them — spec.md names these as hard minimums, not
	// a knob a config file may loosen.
	Limits struct {
		CallStackDepth int `toml:"call_stack_depth"`
		LibraryDepth   int `toml:"library_depth"`
	} `toml:"limits"`
}

// DefaultConfig returns a configuration with default values.
func DefaultConfig() *Config {
	cfg := &Config{}

	cfg.Execution.MaxCycles = 1_000_000
	cfg.Execution.DefaultEntry = ""
	cfg.Execution.EnableTrace = false

	cfg.Limits.CallStackDepth = regfile.MaxCallDepth
	cfg.Limits.LibraryDepth = int(regfile.MaxCounter)

	return cfg
}

// EntryHash decodes Execution.DefaultEntry as a 32-byte library hash.
func (c *Config) EntryHash() ([32]byte, error) {
	var hash [32]byte
	if c.Execution.DefaultEntry == "" {
		return hash, fmt.Errorf("config: execution.default_entry is not set")
	}
	b, err := hex.DecodeString(c.Execution.DefaultEntry)
	if err != nil {
		return hash, fmt.Errorf("config: execution.default_entry is not valid hex: %w", err)
	}
	if len(b) != len(hash) {
		return hash, fmt.Errorf("config: execution.default_entry must be %d bytes, got %d", len(hash), len(b))
	}
	copy(hash[:], b)
	return hash, nil
}

// GetConfigPath returns the platform-specific config file path.
func GetConfigPath() string {
	var configDir string

	switch runtime.GOOS {
	case "windows":
		configDir = os.Getenv("APPDATA")
		if configDir == "" {
			configDir = filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming")
		}
		configDir = filepath.Join(configDir, "aluvm")

	case "darwin", "linux":
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "config.toml"
		}
		configDir = filepath.Join(homeDir, ".config", "aluvm")

	default:
		return "config.toml"
	}

	if err := os.MkdirAll(configDir, 0750); err != nil {
		return "config.toml"
	}

	return filepath.Join(configDir, "config.toml")
}

// Load loads configuration from the default config file.
func Load() (*Config, error) {
	return LoadFrom(GetConfigPath())
}

// LoadFrom loads configuration from the specified file, returning
// defaults unchanged if the file does not exist.
func LoadFrom(path string) (*Config, error) {
	cfg := DefaultConfig()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return cfg, nil
}

// Save saves configuration to the default config file.
func (c *Config) Save() error {
	return c.SaveTo(GetConfigPath())
}

// SaveTo saves configuration to the specified file.
func (c *Config) SaveTo(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	f, err := os.Create(path) // #nosec G304 -- user config file path
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	defer f.Close()

	encoder := toml.NewEncoder(f)
	if err := encoder.Encode(c); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	return nil
}
