package projectboard

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/jpalmerr/projectboard/internal/metrics"
	"github.com/jpalmerr/projectboard/internal/store"
	"github.com/jpalmerr/projectboard/internal/validation"
	"github.com/jpalmerr/projectboard/internal/view"
	"github.com/prometheus/client_golang/prometheus"
)

const defaultTitle = "ProjectBoard"

var (
	// ErrInvalidInput is matched by every rejected [Board.Submit].
	ErrInvalidInput = validation.ErrInvalidInput

	// ErrProjectNotFound is returned by [Board.Resolve] when no card matches.
	ErrProjectNotFound = errors.New("project not found")

	// ErrAmbiguousID is returned by [Board.Resolve] when a prefix matches
	// more than one card.
	ErrAmbiguousID = errors.New("ambiguous project id")
)

// Board is the project tracker: one store shared by a form and two lists.
//
// Board creates the store once and injects it into every view. The form
// adds projects, the active and completed lists subscribe to the store and
// show the projects of their status, and moving a card drags it from its
// list and drops it onto the other one.
//
// The typical lifecycle is:
//
//	board, err := projectboard.New(projectboard.WithTitle("Sprint"))
//	if err != nil {
//	    slog.Error("failed to create board", "error", err)
//	    os.Exit(1)
//	}
//
//	p, err := board.Submit("Project 1", "This is Project 1", "1")
//	board.Move(p.ID, projectboard.StatusCompleted)
//	board.Render(os.Stdout)
//
// Board methods are safe to call from several goroutines, but Move and
// Submit report results based on the lists' state right after the call,
// which assumes no other goroutine is mutating the board at the same time.
type Board struct {
	title  string
	logger *slog.Logger
	store  *store.MemoryStore
	host   *view.Host
	input  *view.ProjectInput
	lists  []*view.ProjectList
}

// New creates a [Board] with the given options.
//
// Without options the board is empty, titled "ProjectBoard", uses the
// default form limits and logs to [slog.Default].
//
// Returns an error if any option is invalid.
//
// Example:
//
//	board, err := projectboard.New(
//	    projectboard.WithTitle("Sprint 12"),
//	    projectboard.WithProject("Project 1", "This is Project 1", 1, projectboard.StatusActive),
//	    projectboard.WithLogger(logger),
//	)
func New(opts ...Option) (*Board, error) {
	cfg := &boardConfig{
		title:  defaultTitle,
		limits: validation.DefaultLimits(),
	}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	logger := cfg.logger
	if logger == nil {
		logger = slog.Default()
	}

	storeOpts := []store.Option{
		store.WithLogger(logger),
		store.WithIDGenerator(cfg.idGenerator),
	}
	if cfg.registerer != nil {
		m, err := registerMetrics(cfg.registerer)
		if err != nil {
			return nil, err
		}
		storeOpts = append(storeOpts, store.WithMetrics(m))
	}
	if len(cfg.errorHandlers) > 0 {
		handlers := cfg.errorHandlers
		storeOpts = append(storeOpts, store.WithErrorHandler(func(err error) {
			for _, h := range handlers {
				h(err)
			}
		}))
	}

	alert := cfg.alerter
	if alert == nil {
		alert = func(msg string) {
			logger.Warn("alert", "message", msg)
		}
	}

	s := store.NewMemoryStore(storeOpts...)

	host := view.NewHost("app")
	input := view.NewProjectInput(s, cfg.limits, alert, logger)
	host.Attach(input, true)

	lists := []*view.ProjectList{
		view.NewProjectList(s, StatusActive, logger),
		view.NewProjectList(s, StatusCompleted, logger),
	}
	for _, l := range lists {
		host.Attach(l, false)
	}

	// callbacks run after the lists so they observe an up to date board
	for _, cb := range cfg.callbacks {
		s.Subscribe(cb)
	}

	for _, seed := range cfg.seeds {
		p := s.AddProject(seed.title, seed.description, seed.people)
		if seed.status != StatusActive {
			s.MoveProject(p.ID, seed.status)
		}
	}

	logger.Info("board ready", "title", cfg.title, "projects", len(cfg.seeds))

	return &Board{
		title:  cfg.title,
		logger: logger,
		store:  s,
		host:   host,
		input:  input,
		lists:  lists,
	}, nil
}

// registerMetrics creates the store collectors, turning a registration
// panic into an error.
func registerMetrics(reg prometheus.Registerer) (m *metrics.Metrics, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("failed to register metrics: %v", r)
		}
	}()
	return metrics.New(reg), nil
}

// Title returns the board title.
func (b *Board) Title() string {
	return b.title
}

// Subscribe registers l to receive a snapshot of every project after each
// future change. The returned function removes the registration.
func (b *Board) Subscribe(l Listener) (unsubscribe func()) {
	return b.store.Subscribe(l)
}

// Submit fills the project form with the given raw values and submits it.
//
// people is parsed as typed into a form field. Rejected input returns an
// error matching [ErrInvalidInput], alerts the user and leaves the board
// unchanged.
func (b *Board) Submit(title, description, people string) (Project, error) {
	b.input.SetInputs(title, description, people)
	return b.input.Submit()
}

// Move drags the card with the given ID onto the list for status.
//
// It reports whether the card ended up on that list because of this call.
// Moving a card onto the list it is already on, or naming an unknown ID,
// does nothing and returns false.
func (b *Board) Move(id string, status Status) bool {
	target := b.list(status)
	if target == nil {
		return false
	}

	dt := view.NewDataTransfer()
	var source *view.ProjectItem
	for _, l := range b.lists {
		if item, ok := l.Item(id); ok {
			source = item
			break
		}
	}
	if source != nil {
		view.StartDrag(source, dt)
		defer view.EndDrag(source, dt)
	} else {
		// a stale id still goes through the drop so the store decides
		dt.SetData(view.MIMEText, id)
	}

	_, wasThere := target.Item(id)
	view.DropOn(target, dt)
	_, isThere := target.Item(id)

	moved := !wasThere && isThere
	if moved {
		b.logger.Info("project moved", "id", id, "list", target.ID())
	}
	return moved
}

// Projects returns the projects currently shown on the list for status.
func (b *Board) Projects(status Status) []Project {
	l := b.list(status)
	if l == nil {
		return nil
	}
	return l.Projects()
}

// Resolve finds a project by its full ID or by a unique ID prefix, as
// shown on the cards.
func (b *Board) Resolve(ref string) (Project, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return Project{}, fmt.Errorf("%w: empty id", ErrProjectNotFound)
	}

	var matches []Project
	for _, l := range b.lists {
		for _, p := range l.Projects() {
			if p.ID == ref {
				return p, nil
			}
			if strings.HasPrefix(p.ID, ref) {
				matches = append(matches, p)
			}
		}
	}

	switch len(matches) {
	case 0:
		return Project{}, fmt.Errorf("%w: %q", ErrProjectNotFound, ref)
	case 1:
		return matches[0], nil
	default:
		return Project{}, fmt.Errorf("%w: %q matches %d projects", ErrAmbiguousID, ref, len(matches))
	}
}

// Render writes the whole board: title, form and both lists.
func (b *Board) Render(w io.Writer) error {
	if err := view.RenderHeader(w, b.title); err != nil {
		return err
	}
	return b.host.Render(w)
}

// Close detaches the lists from the store. The board should not be used
// afterwards.
func (b *Board) Close() {
	for _, l := range b.lists {
		l.Close()
	}
}

func (b *Board) list(status Status) *view.ProjectList {
	for _, l := range b.lists {
		if l.Status() == status {
			return l
		}
	}
	return nil
}
