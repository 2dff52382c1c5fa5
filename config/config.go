// Package config provides YAML configuration parsing for ProjectBoard.
//
// This package enables running ProjectBoard as a standalone binary with a
// configuration file, as an alternative to the programmatic SDK approach.
//
// Example configuration:
//
//	title: Sprint 12
//
//	validation:
//	  description_min: 5
//	  description_max: 100
//	  people_min: 1
//	  people_max: 10
//
//	projects:
//	  - title: Project 1
//	    description: This is Project 1
//	    people: 1
//	  - title: Release notes
//	    description: Written by ${USER:-someone}
//	    people: 2
//	    status: completed
package config

import (
	"fmt"
	"os"
	"regexp"

	"github.com/jpalmerr/projectboard"
	"github.com/jpalmerr/projectboard/internal/validation"
	"gopkg.in/yaml.v3"
)

const defaultTitle = "ProjectBoard"

// Config is the root configuration structure for ProjectBoard.
//
// It maps directly to the YAML configuration file structure.
// Use [Load] or [Parse] to create a Config from YAML.
type Config struct {
	// Title is the board title. Defaults to "ProjectBoard" if not set.
	// Supports environment variable substitution.
	Title string `yaml:"title"`

	// Validation overrides the project form limits.
	Validation ValidationConfig `yaml:"validation"`

	// Projects are added to the board at startup, in order.
	Projects []ProjectConfig `yaml:"projects"`
}

// ValidationConfig holds the project form limits.
// Zero values are replaced by the defaults.
type ValidationConfig struct {
	// DescriptionMin is the minimum description length. Defaults to 5.
	DescriptionMin int `yaml:"description_min"`

	// DescriptionMax is the maximum description length. Defaults to 100.
	DescriptionMax int `yaml:"description_max"`

	// PeopleMin is the minimum headcount. Defaults to 1.
	PeopleMin int `yaml:"people_min"`

	// PeopleMax is the maximum headcount. Defaults to 10.
	PeopleMax int `yaml:"people_max"`
}

// Limits converts the section into form limits.
func (v ValidationConfig) Limits() validation.Limits {
	return validation.Limits{
		DescriptionMin: v.DescriptionMin,
		DescriptionMax: v.DescriptionMax,
		PeopleMin:      v.PeopleMin,
		PeopleMax:      v.PeopleMax,
	}
}

// ProjectConfig defines a project present when the board starts.
type ProjectConfig struct {
	// Title is the project title. Supports environment variable substitution.
	Title string `yaml:"title"`

	// Description is the project description.
	// Supports environment variable substitution.
	Description string `yaml:"description"`

	// People is the headcount.
	People int `yaml:"people"`

	// Status is "active" (default) or "completed".
	Status Status `yaml:"status"`
}

// Status wraps projectboard.Status for YAML unmarshalling.
type Status projectboard.Status

// UnmarshalYAML implements yaml.Unmarshaler for Status.
func (s *Status) UnmarshalYAML(node *yaml.Node) error {
	var raw string
	if err := node.Decode(&raw); err != nil {
		return err
	}

	parsed, err := projectboard.ParseStatus(raw)
	if err != nil {
		return err
	}

	*s = Status(parsed)
	return nil
}

// Status returns the underlying projectboard.Status value.
// An unset status is active.
func (s Status) Status() projectboard.Status {
	if s == "" {
		return projectboard.StatusActive
	}
	return projectboard.Status(s)
}

// envVarPattern matches ${VAR} and ${VAR:-default} patterns.
// Group 1: variable name
// Group 2: the ":-default" part (if present, indicates a default was specified)
// Group 3: the default value (may be empty for ${VAR:-})
var envVarPattern = regexp.MustCompile(`\$\{([^}:]+)(:-([^}]*))?\}`)

// expandEnvVars replaces ${VAR} and ${VAR:-default} patterns with environment values.
func expandEnvVars(s string) (string, error) {
	var firstErr error

	result := envVarPattern.ReplaceAllStringFunc(s, func(match string) string {
		if firstErr != nil {
			return match
		}

		submatches := envVarPattern.FindStringSubmatch(match)
		if len(submatches) < 2 {
			return match
		}

		varName := submatches[1]
		hasDefault := len(submatches) > 2 && submatches[2] != ""
		defaultVal := ""
		if hasDefault && len(submatches) > 3 {
			defaultVal = submatches[3]
		}

		value, exists := os.LookupEnv(varName)
		if !exists {
			if hasDefault {
				return defaultVal
			}
			firstErr = fmt.Errorf("environment variable %q is not set", varName)
			return match
		}
		return value
	})

	if firstErr != nil {
		return "", firstErr
	}
	return result, nil
}

// Load reads and parses a YAML configuration file.
//
// Environment variables in the file are expanded after parsing.
// Returns an error if the file cannot be read or parsed.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return Parse(data)
}

// Parse parses YAML configuration data.
//
// Environment variables are expanded in the title and in project titles
// and descriptions. Defaults are applied to the title and to every unset
// validation limit. Seeded projects must satisfy the configured limits.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	cfg.applyDefaults()

	if err := cfg.expandAndValidate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Title == "" {
		c.Title = defaultTitle
	}

	v := &c.Validation
	if v.DescriptionMin == 0 {
		v.DescriptionMin = validation.DefaultDescriptionMin
	}
	if v.DescriptionMax == 0 {
		v.DescriptionMax = validation.DefaultDescriptionMax
	}
	if v.PeopleMin == 0 {
		v.PeopleMin = validation.DefaultPeopleMin
	}
	if v.PeopleMax == 0 {
		v.PeopleMax = validation.DefaultPeopleMax
	}
}

// expandAndValidate expands environment variables and validates the config.
func (c *Config) expandAndValidate() error {
	title, err := expandEnvVars(c.Title)
	if err != nil {
		return fmt.Errorf("title: %w", err)
	}
	c.Title = title

	limits := c.Validation.Limits()
	if err := limits.Validate(); err != nil {
		return fmt.Errorf("validation: %w", err)
	}

	for i := range c.Projects {
		p := &c.Projects[i]

		if p.Title == "" {
			return fmt.Errorf("projects[%d]: title is required", i)
		}

		expanded, err := expandEnvVars(p.Title)
		if err != nil {
			return fmt.Errorf("projects[%d]: title: %w", i, err)
		}
		p.Title = expanded

		expanded, err = expandEnvVars(p.Description)
		if err != nil {
			return fmt.Errorf("projects[%d] (%s): description: %w", i, p.Title, err)
		}
		p.Description = expanded

		if err := validation.ValidateProject(p.Title, p.Description, p.People, limits); err != nil {
			return fmt.Errorf("projects[%d] (%s): %w", i, p.Title, err)
		}
	}

	return nil
}
