package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	// Output settings
	OutputJSONFile string
	OutputJSONDir  string

	// Report settings
	NoColor bool

	// Command flags
	Flags Flags
}

// Flags holds command-line flags
type Flags struct {
	Format       string
	Progress     bool
	NoSave       bool
	WithFailures bool
}

// New creates a new Config with defaults, applying .env and environment
// overrides when present.
func New() *Config {
	cfg := &Config{
		OutputJSONFile: DefaultOutputJSONFile,
		OutputJSONDir:  DefaultOutputJSONDir,
		Flags:          Flags{Format: DefaultFormat},
	}
	cfg.applyEnv()
	return cfg
}

// Load creates a config and applies flags
func Load(flags Flags) *Config {
	cfg := New()
	cfg.Flags = flags
	if cfg.Flags.Format == "" {
		cfg.Flags.Format = DefaultFormat
	}
	return cfg
}

// applyEnv loads a .env file if one exists and applies SPECRUN_*
// environment overrides. A missing .env file is not an error.
func (c *Config) applyEnv() {
	_ = godotenv.Load(EnvFile)

	if v := os.Getenv("SPECRUN_OUTPUT_DIR"); v != "" {
		c.OutputJSONDir = v
	}
	if v := os.Getenv("SPECRUN_OUTPUT_FILE"); v != "" {
		c.OutputJSONFile = v
	}
	if os.Getenv("SPECRUN_NO_COLOR") != "" {
		c.NoColor = true
	}
}

// GetOutputPath returns the full path to the run record JSON file.
// Resolves to an absolute path so demo and failures always read/write the
// same file regardless of cwd.
func (c *Config) GetOutputPath() string {
	p := filepath.Join(c.OutputJSONDir, c.OutputJSONFile)
	if abs, err := filepath.Abs(p); err == nil {
		return abs
	}
	return p
}
