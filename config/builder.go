package config

import (
	"github.com/jpalmerr/projectboard"
)

// BuildOptions converts parsed configuration into SDK options.
//
// The result sets the title and form limits and seeds every configured
// project in file order. Callers append their own options, such as a
// logger, before passing the slice to [projectboard.New].
func BuildOptions(cfg *Config) []projectboard.Option {
	opts := []projectboard.Option{
		projectboard.WithTitle(cfg.Title),
		projectboard.WithLimits(cfg.Validation.Limits()),
	}

	for _, p := range cfg.Projects {
		opts = append(opts, projectboard.WithProject(p.Title, p.Description, p.People, p.Status.Status()))
	}

	return opts
}
