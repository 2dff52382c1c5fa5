package store

import (
	"fmt"
	"log/slog"
	"runtime/debug"
	"slices"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
	"github.com/jpalmerr/projectboard/internal/metrics"
)

// maxIDAttempts bounds how often a custom ID generator is retried on
// collision before falling back to a random UUID.
const maxIDAttempts = 8

// ListenerError reports a listener that panicked during notification.
//
// The full stack trace is logged with the same CorrelationID.
type ListenerError struct {
	// CorrelationID ties this error to the logged stack trace.
	CorrelationID string

	// Index is the listener's position in registration order.
	Index int

	// Value is the value passed to panic.
	Value any
}

func (e *ListenerError) Error() string {
	return fmt.Sprintf("listener %d panicked: %v (correlation_id: %s)", e.Index, e.Value, e.CorrelationID)
}

// Option configures a [MemoryStore] during construction.
type Option func(*MemoryStore)

// WithLogger sets the logger used for store events and listener failures.
// A nil logger is ignored.
func WithLogger(logger *slog.Logger) Option {
	return func(m *MemoryStore) {
		if logger != nil {
			m.logger = logger
		}
	}
}

// WithIDGenerator replaces the default UUID generator.
//
// Generated IDs that are empty or already issued are rejected and the
// generator is asked again; after a few attempts the store falls back to
// a random UUID. A nil generator is ignored.
func WithIDGenerator(gen func() string) Option {
	return func(m *MemoryStore) {
		if gen != nil {
			m.newID = gen
		}
	}
}

// WithErrorHandler registers a function that receives every
// [*ListenerError]. The handler is called synchronously from the
// notification loop.
func WithErrorHandler(fn func(error)) Option {
	return func(m *MemoryStore) {
		m.onError = fn
	}
}

// WithMetrics records store activity on the given collectors.
func WithMetrics(mt *metrics.Metrics) Option {
	return func(m *MemoryStore) {
		m.metrics = mt
	}
}

// registration is one Subscribe call. The same Listener may be
// registered several times; each registration is notified separately.
type registration struct {
	fn      Listener
	removed atomic.Bool
}

// notification is a committed change waiting to be delivered: the snapshot
// taken at commit time and the listeners registered at that moment.
type notification struct {
	projects  []Project
	listeners []*registration
}

// MemoryStore is an in-memory implementation of [Store].
//
// Records keep insertion order. Every mutation is committed and queued for
// delivery in one critical section, so listeners see changes in commit
// order. Delivery runs with the lock released and is performed by one
// caller at a time; a mutation made from inside a listener is delivered
// after the current fan-out finishes.
type MemoryStore struct {
	mu          sync.Mutex
	projects    []Project
	index       map[string]int
	listeners   []*registration
	pending     []notification
	dispatching bool

	newID   func() string
	logger  *slog.Logger
	onError func(error)
	metrics *metrics.Metrics
}

// NewMemoryStore creates an empty [MemoryStore].
//
// Construct one store per application session and pass it to every view
// that needs it.
func NewMemoryStore(opts ...Option) *MemoryStore {
	m := &MemoryStore{
		index:  make(map[string]int),
		newID:  uuid.NewString,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Subscribe registers l for every future change.
//
// No snapshot is delivered at subscription time. Registering the same
// function twice results in two invocations per change. The returned
// function removes this registration only; it is safe to call more than
// once. A nil listener is ignored.
func (m *MemoryStore) Subscribe(l Listener) func() {
	if l == nil {
		return func() {}
	}

	reg := &registration{fn: l}

	m.mu.Lock()
	m.listeners = append(m.listeners, reg)
	n := len(m.listeners)
	m.mu.Unlock()

	m.metrics.SetListeners(n)

	var once sync.Once
	return func() {
		once.Do(func() { m.unsubscribe(reg) })
	}
}

func (m *MemoryStore) unsubscribe(reg *registration) {
	reg.removed.Store(true)

	m.mu.Lock()
	m.listeners = slices.DeleteFunc(m.listeners, func(r *registration) bool {
		return r == reg
	})
	n := len(m.listeners)
	m.mu.Unlock()

	m.metrics.SetListeners(n)
}

// AddProject appends a new project with [StatusActive] and notifies every
// listener.
//
// The store performs no validation; callers validate user input first.
func (m *MemoryStore) AddProject(title, description string, people int) Project {
	m.mu.Lock()
	p := Project{
		ID:          m.uniqueIDLocked(),
		Title:       title,
		Description: description,
		People:      people,
		Status:      StatusActive,
	}
	m.index[p.ID] = len(m.projects)
	m.projects = append(m.projects, p)
	m.enqueueLocked()
	m.mu.Unlock()

	m.metrics.IncAdded()
	m.logger.Debug("project added", "id", p.ID, "title", p.Title, "people", p.People)

	m.dispatch()
	return p
}

// MoveProject sets the status of the project with the given ID.
//
// Listeners are notified only when the project exists and its status
// actually changes. An unknown ID, an unchanged status or an invalid
// status value is a silent no-op. The result reports whether a change was
// committed.
func (m *MemoryStore) MoveProject(id string, status Status) bool {
	if !status.Valid() {
		m.metrics.IncIgnored(metrics.ReasonInvalid)
		return false
	}

	m.mu.Lock()
	i, ok := m.index[id]
	if !ok {
		m.mu.Unlock()
		m.metrics.IncIgnored(metrics.ReasonUnknownID)
		m.logger.Debug("move ignored", "id", id, "reason", metrics.ReasonUnknownID)
		return false
	}
	from := m.projects[i].Status
	if from == status {
		m.mu.Unlock()
		m.metrics.IncIgnored(metrics.ReasonUnchanged)
		return false
	}
	m.projects[i].Status = status
	m.enqueueLocked()
	m.mu.Unlock()

	m.metrics.IncMoved(status.String())
	m.logger.Debug("project moved", "id", id, "from", from, "to", status)

	m.dispatch()
	return true
}

// uniqueIDLocked returns an ID that this store has never issued.
// Must be called with m.mu held.
func (m *MemoryStore) uniqueIDLocked() string {
	for i := 0; i < maxIDAttempts; i++ {
		id := m.newID()
		if _, taken := m.index[id]; id != "" && !taken {
			return id
		}
	}
	m.logger.Warn("id generator kept colliding, falling back to uuid", "attempts", maxIDAttempts)
	for {
		id := uuid.NewString()
		if _, taken := m.index[id]; !taken {
			return id
		}
	}
}

// enqueueLocked queues the current state for delivery.
// Must be called with m.mu held.
func (m *MemoryStore) enqueueLocked() {
	m.pending = append(m.pending, notification{
		projects:  slices.Clone(m.projects),
		listeners: slices.Clone(m.listeners),
	})
}

// dispatch delivers queued notifications until the queue is empty.
//
// If another call is already delivering, dispatch returns immediately and
// that call picks up whatever was queued.
func (m *MemoryStore) dispatch() {
	m.mu.Lock()
	if m.dispatching {
		m.mu.Unlock()
		return
	}
	m.dispatching = true

	for len(m.pending) > 0 {
		n := m.pending[0]
		m.pending[0] = notification{}
		m.pending = m.pending[1:]

		m.mu.Unlock()
		m.deliver(n)
		m.mu.Lock()
	}

	m.pending = nil
	m.dispatching = false
	m.mu.Unlock()
}

// deliver hands every listener of n its own copy of the snapshot, in
// registration order.
func (m *MemoryStore) deliver(n notification) {
	for i, reg := range n.listeners {
		if reg.removed.Load() {
			continue
		}
		if err := m.invokeSafe(i, reg.fn, slices.Clone(n.projects)); err != nil {
			m.report(err)
			continue
		}
		m.metrics.IncNotified()
	}
}

// invokeSafe calls a listener with panic recovery.
// A panic is logged with its stack trace and returned as a [*ListenerError].
func (m *MemoryStore) invokeSafe(index int, fn Listener, projects []Project) (err error) {
	defer func() {
		if r := recover(); r != nil {
			correlationID := uuid.NewString()

			m.logger.Error("listener panic",
				"correlation_id", correlationID,
				"listener", index,
				"panic", fmt.Sprintf("%v", r),
				"stack", string(debug.Stack()),
			)
			m.metrics.IncPanics()

			err = &ListenerError{CorrelationID: correlationID, Index: index, Value: r}
		}
	}()
	fn(projects)
	return nil
}

// report forwards a listener failure to the error handler, if any.
// A panicking handler is logged and otherwise ignored so the notification
// loop keeps running.
func (m *MemoryStore) report(err error) {
	if m.onError == nil {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			m.logger.Error("error handler panicked", "panic", fmt.Sprintf("%v", r), "error", err)
		}
	}()
	m.onError(err)
}
