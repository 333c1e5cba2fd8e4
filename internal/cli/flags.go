package cli

import "specrun/internal/config"

// Flags holds command-line flags
type Flags struct {
	Format       string
	Progress     bool
	NoSave       bool
	WithFailures bool
}

// ToConfigFlags converts CLI flags to config flags
func (f *Flags) ToConfigFlags() config.Flags {
	return config.Flags{
		Format:       f.Format,
		Progress:     f.Progress,
		NoSave:       f.NoSave,
		WithFailures: f.WithFailures,
	}
}
