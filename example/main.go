package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/jpalmerr/projectboard"
)

func main() {
	// seed two projects, one already finished
	board, err := projectboard.New(
		projectboard.WithTitle("ProjectBoard Demo"),
		projectboard.WithProject("Project 1", "This is Project 1", 1, projectboard.StatusActive),
		projectboard.WithProject("Launch plan", "Agree the launch checklist", 4, projectboard.StatusCompleted),
		projectboard.WithAlerter(func(message string) {
			fmt.Println("alert:", message)
		}),
	)
	if err != nil {
		slog.Error("failed to create board", "error", err)
		os.Exit(1)
	}
	defer board.Close()

	// every change delivers a fresh copy of all projects
	unsubscribe := board.Subscribe(func(projects []projectboard.Project) {
		fmt.Printf("board changed: %d projects\n", len(projects))
	})
	defer unsubscribe()

	p, err := board.Submit("Project 2", "This is Project 2", "3")
	if err != nil {
		slog.Error("failed to add project", "error", err)
		os.Exit(1)
	}

	// rejected: the description is too short
	if _, err := board.Submit("Project 3", "abc", "2"); err != nil {
		fmt.Println("rejected:", err)
	}

	board.Move(p.ID, projectboard.StatusCompleted)

	// moving to the same list is a no-op and notifies nobody
	board.Move(p.ID, projectboard.StatusCompleted)

	fmt.Println()
	if err := board.Render(os.Stdout); err != nil {
		slog.Error("failed to render board", "error", err)
		os.Exit(1)
	}
}
