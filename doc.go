// Package projectboard provides an embeddable, in-memory project tracker.
//
// A board holds a list of projects. Users submit a title, a description and
// a headcount through a form; each accepted submission appears as a card on
// the "active" list, and cards can be dragged between the "active" and
// "completed" lists. State lives only in memory and is lost when the
// process exits.
//
// # Quick Start
//
//	board, _ := projectboard.New(projectboard.WithTitle("Sprint 12"))
//
//	p, err := board.Submit("Project 1", "This is Project 1", "1")
//	if err != nil {
//	    // input rejected: errors.Is(err, projectboard.ErrInvalidInput)
//	}
//
//	board.Move(p.ID, projectboard.StatusCompleted)
//	board.Render(os.Stdout)
//
// # Configuration
//
// ProjectBoard uses the functional options pattern for configuration:
//
//	board, err := projectboard.New(
//	    projectboard.WithTitle("Sprint 12"),
//	    projectboard.WithLimits(projectboard.Limits{
//	        DescriptionMin: 5, DescriptionMax: 200,
//	        PeopleMin: 1, PeopleMax: 20,
//	    }),
//	    projectboard.WithProject("Kickoff", "Plan the sprint", 3, projectboard.StatusActive),
//	    projectboard.WithProjectsCallback(func(projects []projectboard.Project) {
//	        log.Printf("%d projects", len(projects))
//	    }),
//	)
//
// # Form Validation
//
// [Board.Submit] accepts a submission only when the title is non-empty
// after trimming, the description is between 5 and 100 characters and the
// headcount is a whole number between 1 and 10. Rejected input changes
// nothing. The limits can be changed with [WithLimits].
//
// # Notifications
//
// Every accepted submission and every move that changes a project's status
// sends all subscribers a snapshot: an independent copy of the full,
// ordered project list. Moving a card onto the list it is already on, or
// naming an unknown project, sends nothing. Subscribers that panic are
// isolated, logged and reported to [WithErrorHandler]; the others are
// still notified.
//
// # Architecture
//
// ProjectBoard consists of several internal packages (under internal/):
//
//   - internal/store: The project store with subscriber notification
//   - internal/view: Form, list and card components with drag and drop
//   - internal/validation: Form input rules
//   - internal/metrics: Prometheus collectors for store activity
//   - dashboard: Embedded view templates
//
// The internal packages are not part of the public API and may change
// without notice.
package projectboard
