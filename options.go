package projectboard

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/jpalmerr/projectboard/internal/validation"
	"github.com/prometheus/client_golang/prometheus"
)

// Limits are the bounds the project form enforces.
type Limits = validation.Limits

// DefaultLimits returns the standard form limits: a description of 5 to
// 100 characters and 1 to 10 people.
func DefaultLimits() Limits {
	return validation.DefaultLimits()
}

// seedProject is a project added while the board is built.
type seedProject struct {
	title       string
	description string
	people      int
	status      Status
}

// boardConfig holds mutable state during Board construction.
type boardConfig struct {
	title       string
	logger      *slog.Logger
	limits      Limits
	callbacks   []func([]Project)
	seeds       []seedProject
	idGenerator func() string
	registerer  prometheus.Registerer
	alerter     func(string)

	errorHandlers []func(error)
}

// Option is a function that configures a [Board] during construction.
//
// Option implements the functional options pattern. Options return an
// error if validation fails.
type Option func(*boardConfig) error

// WithTitle sets the board title shown in the rendered header.
//
// If not specified, defaults to "ProjectBoard".
func WithTitle(title string) Option {
	return func(cfg *boardConfig) error {
		cfg.title = title
		return nil
	}
}

// WithLogger sets a custom [slog.Logger] for the board, its store and its
// views. If not specified, [slog.Default] is used.
//
// Returns an error if the logger is nil.
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *boardConfig) error {
		if logger == nil {
			return errors.New("logger cannot be nil")
		}
		cfg.logger = logger
		return nil
	}
}

// WithLimits overrides the form limits used by [Board.Submit].
//
// Returns an error if the limits are inconsistent.
func WithLimits(l Limits) Option {
	return func(cfg *boardConfig) error {
		if err := l.Validate(); err != nil {
			return fmt.Errorf("invalid limits: %w", err)
		}
		cfg.limits = l
		return nil
	}
}

// WithProjectsCallback registers a function called with a snapshot of all
// projects after every change.
//
// Multiple callbacks may be registered; they run in registration order,
// after the board's own lists have been updated. Each callback receives
// its own copy of the snapshot. Callbacks are invoked synchronously;
// panics are recovered and logged.
//
// Example:
//
//	board, err := projectboard.New(
//	    projectboard.WithProjectsCallback(func(projects []projectboard.Project) {
//	        log.Printf("%d projects on the board", len(projects))
//	    }),
//	)
//
// Nil callbacks are silently ignored.
func WithProjectsCallback(cb func([]Project)) Option {
	return func(cfg *boardConfig) error {
		if cb == nil {
			return nil
		}
		cfg.callbacks = append(cfg.callbacks, cb)
		return nil
	}
}

// WithProject seeds the board with a project.
//
// Seeds bypass form validation, like any direct store call, but must still
// have a non-empty title, a positive headcount and a valid status. They are
// added in option order once the lists are subscribed, so the first render
// already shows them.
func WithProject(title, description string, people int, status Status) Option {
	return func(cfg *boardConfig) error {
		if title == "" {
			return errors.New("seed project title cannot be empty")
		}
		if people < 1 {
			return fmt.Errorf("seed project %q: people must be positive, got %d", title, people)
		}
		if status == "" {
			status = StatusActive
		}
		if !status.Valid() {
			return fmt.Errorf("seed project %q: %w: %q", title, ErrInvalidStatus, status)
		}
		cfg.seeds = append(cfg.seeds, seedProject{
			title:       title,
			description: description,
			people:      people,
			status:      status,
		})
		return nil
	}
}

// WithIDGenerator replaces the UUID generator used for project IDs.
//
// The board still guarantees unique IDs: colliding values are rejected.
// Returns an error if gen is nil.
func WithIDGenerator(gen func() string) Option {
	return func(cfg *boardConfig) error {
		if gen == nil {
			return errors.New("id generator cannot be nil")
		}
		cfg.idGenerator = gen
		return nil
	}
}

// WithMetricsRegisterer records store metrics on reg.
//
// Use a dedicated [prometheus.Registry] per board; registering two boards
// on the same registerer fails.
func WithMetricsRegisterer(reg prometheus.Registerer) Option {
	return func(cfg *boardConfig) error {
		if reg == nil {
			return errors.New("metrics registerer cannot be nil")
		}
		cfg.registerer = reg
		return nil
	}
}

// WithAlerter sets the function that shows rejected-input messages.
//
// If not specified, alerts are logged at WARN.
func WithAlerter(alert func(message string)) Option {
	return func(cfg *boardConfig) error {
		if alert == nil {
			return errors.New("alerter cannot be nil")
		}
		cfg.alerter = alert
		return nil
	}
}

// WithErrorHandler registers a function that receives an error for every
// listener or callback that panicked. The panic is logged either way.
//
// Nil handlers are silently ignored.
func WithErrorHandler(fn func(error)) Option {
	return func(cfg *boardConfig) error {
		if fn == nil {
			return nil
		}
		cfg.errorHandlers = append(cfg.errorHandlers, fn)
		return nil
	}
}
