package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/BurntSushi/toml"
)

// Config represents the simulator's persisted configuration.
type Config struct {
	VM      VMConfig      `toml:"vm"`
	Logging LoggingConfig `toml:"logging"`
}

// VMConfig holds construction-time defaults for the VM that the CLI's
// register-count and -v arguments override when present.
type VMConfig struct {
	DefaultActiveCount uint32 `toml:"default_active_count"`
	RAMBase            uint32 `toml:"ram_base"`
	RAMSizeWords       uint32 `toml:"ram_size_words"`
	Verbose            bool   `toml:"verbose"`
}

// LoggingConfig holds diagnostic-channel settings. TimestampWarnings is
// loaded and saved with the rest of the config; package diag does not
// read it, so warnings carry no timestamp.
type LoggingConfig struct {
	TimestampWarnings bool `toml:"timestamp_warnings"`
}

// DefaultConfig returns a configuration with default values matching
// spec.md §6's RAM collaborator sizing.
func DefaultConfig() *Config {
	return &Config{
		VM: VMConfig{
			DefaultActiveCount: 32,
			RAMBase:            0x0000,
			RAMSizeWords:       16384,
			Verbose:            false,
		},
		Logging: LoggingConfig{
			TimestampWarnings: false,
		},
	}
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
		configDir = filepath.Join(configDir, "riscv-sim")

	case "darwin", "linux":
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "config.toml"
		}
		configDir = filepath.Join(homeDir, ".config", "riscv-sim")

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
// defaults if the file does not exist.
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
func (c *Config) SaveTo(path string) (err error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	f, err := os.Create(path) // #nosec G304 -- user config file path
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("failed to close config file: %w", closeErr)
		}
	}()

	if encErr := toml.NewEncoder(f).Encode(c); encErr != nil {
		return fmt.Errorf("failed to encode config: %w", encErr)
	}

	return nil
}
