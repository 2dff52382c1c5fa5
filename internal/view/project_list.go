package view

import (
	"io"
	"log/slog"
	"slices"
	"strings"
	"sync"

	"github.com/jpalmerr/projectboard/internal/store"
)

// ProjectList shows every project with one status and accepts cards
// dropped onto it.
type ProjectList struct {
	status store.Status
	store  store.Store
	logger *slog.Logger

	mu          sync.RWMutex
	items       []*ProjectItem
	droppable   bool
	unsubscribe func()
}

// NewProjectList creates a list for status and subscribes it to s.
func NewProjectList(s store.Store, status store.Status, logger *slog.Logger) *ProjectList {
	if logger == nil {
		logger = slog.Default()
	}
	l := &ProjectList{
		status: status,
		store:  s,
		logger: logger,
	}
	l.Configure()
	return l
}

// ID returns the list identifier, e.g. "active-projects".
func (l *ProjectList) ID() string {
	return string(l.status) + "-projects"
}

// Status returns the status this list shows.
func (l *ProjectList) Status() store.Status {
	return l.status
}

// Heading returns the list title, e.g. "ACTIVE PROJECTS".
func (l *ProjectList) Heading() string {
	return strings.ToUpper(string(l.status)) + " PROJECTS"
}

// Configure implements [Component]. It registers the list with the store.
func (l *ProjectList) Configure() {
	l.unsubscribe = l.store.Subscribe(l.renderProjects)
}

// Close detaches the list from the store.
func (l *ProjectList) Close() {
	if l.unsubscribe != nil {
		l.unsubscribe()
	}
}

// renderProjects replaces the list's items with the projects in snapshot
// that have the list's status.
func (l *ProjectList) renderProjects(snapshot []store.Project) {
	items := make([]*ProjectItem, 0, len(snapshot))
	for _, p := range snapshot {
		if p.Status == l.status {
			items = append(items, NewProjectItem(p, l.logger))
		}
	}

	l.mu.Lock()
	l.items = items
	l.mu.Unlock()
}

// Items returns the cards currently shown.
func (l *ProjectList) Items() []*ProjectItem {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return slices.Clone(l.items)
}

// Item returns the card for the project with the given ID.
func (l *ProjectList) Item(id string) (*ProjectItem, bool) {
	for _, item := range l.Items() {
		if item.project.ID == id {
			return item, true
		}
	}
	return nil, false
}

// Projects returns the projects currently shown, in store order.
func (l *ProjectList) Projects() []store.Project {
	items := l.Items()
	projects := make([]store.Project, len(items))
	for i, item := range items {
		projects[i] = item.project
	}
	return projects
}

// Droppable reports whether a drag is hovering over the list.
func (l *ProjectList) Droppable() bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.droppable
}

// RenderContent implements [Component].
func (l *ProjectList) RenderContent(w io.Writer) error {
	items := l.Items()
	err := instantiate(w, "project-list", struct {
		ID        string
		Heading   string
		Count     int
		Droppable bool
	}{
		ID:        l.ID(),
		Heading:   l.Heading(),
		Count:     len(items),
		Droppable: l.Droppable(),
	})
	if err != nil {
		return err
	}

	if len(items) == 0 {
		return instantiate(w, "project-list-empty", nil)
	}
	for _, item := range items {
		if err := item.RenderContent(w); err != nil {
			return err
		}
	}
	return nil
}

// DragOver implements [DropTarget]. Only project ID payloads are accepted.
func (l *ProjectList) DragOver(dt *DataTransfer) bool {
	types := dt.Types()
	if len(types) == 0 || types[0] != MIMEText {
		return false
	}
	l.setDroppable(true)
	return true
}

// Drop implements [DropTarget]. The dropped project is moved to this
// list's status; dropping onto the list it came from changes nothing.
func (l *ProjectList) Drop(dt *DataTransfer) {
	l.setDroppable(false)

	id := dt.GetData(MIMEText)
	if !l.store.MoveProject(id, l.status) {
		l.logger.Debug("drop changed nothing", "id", id, "list", l.ID())
	}
}

// DragLeave implements [DropTarget].
func (l *ProjectList) DragLeave(dt *DataTransfer) {
	l.setDroppable(false)
}

func (l *ProjectList) setDroppable(v bool) {
	l.mu.Lock()
	l.droppable = v
	l.mu.Unlock()
}
