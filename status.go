package projectboard

import "github.com/jpalmerr/projectboard/internal/store"

// Status is the lifecycle state of a project.
//
// Status is a string type with exactly two values, [StatusActive] and
// [StatusCompleted]. Every project starts active; dragging its card onto
// the other list changes it.
type Status = store.Status

const (
	// StatusActive is assigned to every new project.
	StatusActive = store.StatusActive

	// StatusCompleted marks a project on the completed list.
	StatusCompleted = store.StatusCompleted
)

// ErrInvalidStatus is returned by [ParseStatus] for unknown names.
var ErrInvalidStatus = store.ErrInvalidStatus

// ParseStatus converts "active" or "completed" (case-insensitive, with
// "complete" accepted as an alias) into a [Status].
func ParseStatus(s string) (Status, error) {
	return store.ParseStatus(s)
}

// Project is a single project record.
//
// Project values handed out by the library are copies. Changing one never
// affects the board.
type Project = store.Project

// Listener receives a snapshot of every project after each change.
type Listener = store.Listener
