package store

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidStatus is returned by [ParseStatus] for unknown status names.
var ErrInvalidStatus = errors.New("invalid project status")

// Status is the lifecycle state of a project.
//
// Exactly two values exist: [StatusActive] and [StatusCompleted].
type Status string

const (
	// StatusActive is assigned to every new project.
	StatusActive Status = "active"

	// StatusCompleted marks a project that was moved to the completed list.
	StatusCompleted Status = "completed"
)

// String returns the string representation of the status.
func (s Status) String() string {
	return string(s)
}

// Valid reports whether s is one of the two known statuses.
func (s Status) Valid() bool {
	return s == StatusActive || s == StatusCompleted
}

// ParseStatus converts a user-supplied name into a [Status].
//
// Matching is case-insensitive. "complete" is accepted as an alias for
// [StatusCompleted].
func ParseStatus(s string) (Status, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "active":
		return StatusActive, nil
	case "completed", "complete":
		return StatusCompleted, nil
	default:
		return "", fmt.Errorf("%w: %q (expected active or completed)", ErrInvalidStatus, s)
	}
}

// Project is a single project record.
//
// ID, Title, Description and People never change after creation; only
// Status is mutated, and only by [Store.MoveProject]. All fields are
// scalars, so copying a []Project copies every record.
type Project struct {
	// ID is the opaque unique identifier assigned at creation.
	ID string `json:"id"`

	// Title is the display title.
	Title string `json:"title"`

	// Description is the display description.
	Description string `json:"description"`

	// People is the number of people assigned.
	People int `json:"people"`

	// Status is the current list the project belongs to.
	Status Status `json:"status"`
}

// Listener receives a snapshot of all projects after every committed change.
type Listener func(projects []Project)

// Store defines the project state container.
//
// Store implementations must be safe for concurrent access and must hand
// listeners copies, never the live record list.
type Store interface {
	// Subscribe registers a listener for future changes. The listener is not
	// invoked until the next mutation. The returned function removes this
	// registration.
	Subscribe(l Listener) (unsubscribe func())

	// AddProject appends a new active project and notifies listeners.
	AddProject(title, description string, people int) Project

	// MoveProject changes the status of the project with the given ID.
	// Unknown IDs and unchanged statuses are silent no-ops; the result
	// reports whether a change was committed.
	MoveProject(id string, status Status) bool
}
