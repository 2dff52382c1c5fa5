package projectboard

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/jpalmerr/projectboard/internal/store"
)

func TestWithProjectsCallback_InvokedOnChange(t *testing.T) {
	var snapshots [][]Project
	b := newTestBoard(t, WithProjectsCallback(func(projects []Project) {
		snapshots = append(snapshots, projects)
	}))

	p, _ := b.Submit("Project 1", "This is Project 1", "1")
	b.Move(p.ID, StatusCompleted)

	if len(snapshots) != 2 {
		t.Fatalf("callback called %d times, want 2", len(snapshots))
	}
	if snapshots[0][0].Status != StatusActive {
		t.Errorf("first snapshot status = %v, want %v", snapshots[0][0].Status, StatusActive)
	}
	if snapshots[1][0].Status != StatusCompleted {
		t.Errorf("second snapshot status = %v, want %v", snapshots[1][0].Status, StatusCompleted)
	}
}

func TestWithProjectsCallback_SeesUpdatedLists(t *testing.T) {
	var b *Board
	var activeSeen int
	b = newTestBoard(t, WithProjectsCallback(func([]Project) {
		// lists subscribe first, so they are already current here
		activeSeen = len(b.Projects(StatusActive))
	}))

	_, _ = b.Submit("Project 1", "This is Project 1", "1")
	if activeSeen != 1 {
		t.Errorf("callback saw %d active projects, want 1", activeSeen)
	}
}

func TestWithProjectsCallback_SeedsNotify(t *testing.T) {
	var calls int
	b := newTestBoard(t,
		WithProjectsCallback(func([]Project) { calls++ }),
		WithProject("Seed", "Seeded project", 1, StatusCompleted),
	)
	_ = b

	// one add plus one move
	if calls != 2 {
		t.Errorf("callback called %d times for a completed seed, want 2", calls)
	}
}

func TestWithProjectsCallback_PanicRecovery(t *testing.T) {
	var logBuf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logBuf, nil))

	var normalCalled bool
	var reported []error

	b, err := New(
		WithLogger(logger),
		WithProjectsCallback(func([]Project) { panic("intentional test panic") }),
		WithProjectsCallback(func([]Project) { normalCalled = true }), // should still be called after panic
		WithErrorHandler(func(err error) { reported = append(reported, err) }),
	)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer b.Close()

	// should not panic
	if _, err := b.Submit("Project 1", "This is Project 1", "1"); err != nil {
		t.Fatalf("Submit() error = %v", err)
	}

	if !normalCalled {
		t.Error("subsequent callbacks should still run after panic")
	}
	if len(b.Projects(StatusActive)) != 1 {
		t.Error("lists should still update when a callback panics")
	}

	if len(reported) != 1 {
		t.Fatalf("error handler called %d times, want 1", len(reported))
	}
	var lerr *store.ListenerError
	if !errors.As(reported[0], &lerr) {
		t.Errorf("reported error = %T, want *store.ListenerError", reported[0])
	}

	if !strings.Contains(logBuf.String(), "listener panic") {
		t.Error("panic should have been logged")
	}
}

func TestWithProjectsCallback_NilIsSafe(t *testing.T) {
	b, err := New(WithLogger(quietLogger()), WithProjectsCallback(nil), WithErrorHandler(nil))
	if err != nil {
		t.Fatalf("New() error = %v, want nil (nil callback should be accepted)", err)
	}
	defer b.Close()

	if _, err := b.Submit("Project 1", "This is Project 1", "1"); err != nil {
		t.Errorf("Submit() error = %v", err)
	}
}

func TestWithProjectsCallback_NoSharedReferences(t *testing.T) {
	var second []Project
	b := newTestBoard(t,
		WithProjectsCallback(func(projects []Project) {
			// mutate to verify independence - this should NOT affect other
			// callbacks or the board
			projects[0].Title = "mutated"
			projects[0].Status = StatusCompleted
		}),
		WithProjectsCallback(func(projects []Project) {
			second = projects
		}),
	)

	p, _ := b.Submit("Project 1", "This is Project 1", "1")

	if second[0].Title != "Project 1" {
		t.Errorf("second callback saw Title = %q, want %q", second[0].Title, "Project 1")
	}
	active := b.Projects(StatusActive)
	if len(active) != 1 || active[0].Title != "Project 1" {
		t.Errorf("board changed by callback: %+v", active)
	}

	// the store still considers the project active
	if !b.Move(p.ID, StatusCompleted) {
		t.Error("Move() = false, want true")
	}
}
