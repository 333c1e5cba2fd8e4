package config

const (
	// DefaultOutputJSONFile is the default run record file name
	DefaultOutputJSONFile = "run-results.json"
	// DefaultOutputJSONDir is the default output directory
	DefaultOutputJSONDir = ".specrun"
	// DefaultFormat is the default report format
	DefaultFormat = "text"
	// EnvFile is the dotenv file loaded for overrides
	EnvFile = ".env"
)
