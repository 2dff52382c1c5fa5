package projectboard

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"testing"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestBoard(t *testing.T, opts ...Option) *Board {
	t.Helper()
	opts = append([]Option{WithLogger(quietLogger())}, opts...)
	b, err := New(opts...)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	t.Cleanup(b.Close)
	return b
}

func TestBoard_SubmitAndMove(t *testing.T) {
	b := newTestBoard(t)

	p1, err := b.Submit("Project 1", "This is Project 1", "1")
	if err != nil {
		t.Fatalf("Submit() error = %v", err)
	}
	p2, err := b.Submit("Project 2", "This is Project 2", "2")
	if err != nil {
		t.Fatalf("Submit() error = %v", err)
	}

	active := b.Projects(StatusActive)
	if len(active) != 2 || active[0].ID != p1.ID || active[1].ID != p2.ID {
		t.Fatalf("active = %+v, want [Project 1, Project 2]", active)
	}
	if len(b.Projects(StatusCompleted)) != 0 {
		t.Error("completed list should start empty")
	}

	if !b.Move(p1.ID, StatusCompleted) {
		t.Fatal("Move() = false, want true")
	}

	active = b.Projects(StatusActive)
	if len(active) != 1 || active[0].ID != p2.ID {
		t.Errorf("active after move = %+v, want only Project 2", active)
	}
	completed := b.Projects(StatusCompleted)
	if len(completed) != 1 || completed[0].ID != p1.ID {
		t.Errorf("completed after move = %+v, want only Project 1", completed)
	}
	if completed[0].Status != StatusCompleted {
		t.Errorf("Status = %v, want %v", completed[0].Status, StatusCompleted)
	}

	// moving twice only changes the board once
	if b.Move(p1.ID, StatusCompleted) {
		t.Error("second Move() = true, want false")
	}
}

func TestBoard_MoveNotifiesOnce(t *testing.T) {
	var calls int
	b := newTestBoard(t, WithProjectsCallback(func([]Project) { calls++ }))

	p, _ := b.Submit("Project 1", "This is Project 1", "1")
	if calls != 1 {
		t.Fatalf("calls after submit = %d, want 1", calls)
	}

	b.Move(p.ID, StatusCompleted)
	b.Move(p.ID, StatusCompleted)
	b.Move("unknown", StatusActive)

	if calls != 2 {
		t.Errorf("calls = %d, want 2", calls)
	}
}

func TestBoard_MoveInvalidStatus(t *testing.T) {
	b := newTestBoard(t)
	p, _ := b.Submit("Project 1", "This is Project 1", "1")

	if b.Move(p.ID, Status("archived")) {
		t.Error("Move() to unknown status = true, want false")
	}
	if len(b.Projects(StatusActive)) != 1 {
		t.Error("project left the active list")
	}
	if b.Projects(Status("archived")) != nil {
		t.Error("Projects() for unknown status should be nil")
	}
}

func TestBoard_SubmitRejected(t *testing.T) {
	var alerts []string
	b := newTestBoard(t, WithAlerter(func(msg string) { alerts = append(alerts, msg) }))

	_, err := b.Submit("", "This is Project 1", "1")
	if !errors.Is(err, ErrInvalidInput) {
		t.Errorf("Submit() error = %v, want ErrInvalidInput", err)
	}
	if len(alerts) != 1 || alerts[0] != "Invalid input, please try again!" {
		t.Errorf("alerts = %v, want one invalid input alert", alerts)
	}
	if len(b.Projects(StatusActive)) != 0 {
		t.Error("rejected submission reached the board")
	}
}

func TestBoard_SubmitWithCustomLimits(t *testing.T) {
	b := newTestBoard(t, WithLimits(Limits{DescriptionMin: 1, DescriptionMax: 500, PeopleMin: 1, PeopleMax: 50}))

	if _, err := b.Submit("Big", "x", "42"); err != nil {
		t.Errorf("Submit() error = %v, want nil with relaxed limits", err)
	}
	if _, err := b.Submit("Bigger", "x", "51"); err == nil {
		t.Error("Submit() with 51 people error = nil, want error")
	}
}

func TestBoard_SeedProjects(t *testing.T) {
	b := newTestBoard(t,
		WithProject("Seed 1", "First seeded project", 1, StatusActive),
		WithProject("Seed 2", "Second seeded project", 2, StatusCompleted),
		WithProject("Seed 3", "Third seeded project", 3, ""),
	)

	active := b.Projects(StatusActive)
	if len(active) != 2 || active[0].Title != "Seed 1" || active[1].Title != "Seed 3" {
		t.Errorf("active = %+v, want [Seed 1, Seed 3]", active)
	}
	completed := b.Projects(StatusCompleted)
	if len(completed) != 1 || completed[0].Title != "Seed 2" {
		t.Errorf("completed = %+v, want [Seed 2]", completed)
	}
}

func TestBoard_Resolve(t *testing.T) {
	ids := []string{"abc123", "abd456", "xyz789"}
	n := 0
	b := newTestBoard(t, WithIDGenerator(func() string {
		id := ids[n%len(ids)]
		n++
		return id
	}))

	for i := range ids {
		if _, err := b.Submit(fmt.Sprintf("Project %d", i), "description", "1"); err != nil {
			t.Fatalf("Submit() error = %v", err)
		}
	}
	b.Move("xyz789", StatusCompleted)

	tests := []struct {
		ref     string
		wantID  string
		wantErr error
	}{
		{ref: "abc123", wantID: "abc123"},
		{ref: "abd", wantID: "abd456"},
		{ref: "xy", wantID: "xyz789"},
		{ref: "ab", wantErr: ErrAmbiguousID},
		{ref: "nope", wantErr: ErrProjectNotFound},
		{ref: "  ", wantErr: ErrProjectNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.ref, func(t *testing.T) {
			p, err := b.Resolve(tt.ref)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("Resolve(%q) error = %v, want %v", tt.ref, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Resolve(%q) error = %v", tt.ref, err)
			}
			if p.ID != tt.wantID {
				t.Errorf("Resolve(%q) = %q, want %q", tt.ref, p.ID, tt.wantID)
			}
		})
	}
}

func TestBoard_Render(t *testing.T) {
	b := newTestBoard(t, WithTitle("Sprint 12"))

	p, _ := b.Submit("Project 1", "This is Project 1", "1")
	_, _ = b.Submit("Project 2", "This is Project 2", "2")
	b.Move(p.ID, StatusCompleted)

	var buf bytes.Buffer
	if err := b.Render(&buf); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		"# Sprint 12",
		"ACTIVE PROJECTS (1)",
		"COMPLETED PROJECTS (1)",
		"2 people assigned",
		"1 person assigned",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("render missing %q\nGot:\n%s", want, out)
		}
	}

	// completed list comes after the active list, Project 1 is in it
	iActive := strings.Index(out, "ACTIVE PROJECTS")
	iCompleted := strings.Index(out, "COMPLETED PROJECTS")
	iP1 := strings.Index(out, "Project 1")
	iP2 := strings.Index(out, "Project 2")
	if !(iActive < iP2 && iP2 < iCompleted && iCompleted < iP1) {
		t.Errorf("render layout wrong:\n%s", out)
	}
}

func TestBoard_DefaultTitle(t *testing.T) {
	b := newTestBoard(t)
	if b.Title() != "ProjectBoard" {
		t.Errorf("Title() = %q, want %q", b.Title(), "ProjectBoard")
	}
}

func TestBoard_Subscribe(t *testing.T) {
	b := newTestBoard(t)

	var got [][]Project
	unsubscribe := b.Subscribe(func(projects []Project) { got = append(got, projects) })

	_, _ = b.Submit("Project 1", "This is Project 1", "1")
	unsubscribe()
	_, _ = b.Submit("Project 2", "This is Project 2", "1")

	if len(got) != 1 {
		t.Fatalf("listener called %d times, want 1", len(got))
	}
	if len(got[0]) != 1 || got[0][0].Title != "Project 1" {
		t.Errorf("snapshot = %+v, want [Project 1]", got[0])
	}
}

func TestBoard_Close(t *testing.T) {
	b, err := New(WithLogger(quietLogger()))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	b.Close()

	_, _ = b.Submit("Project 1", "This is Project 1", "1")
	if len(b.Projects(StatusActive)) != 0 {
		t.Error("closed board lists still update")
	}
}
