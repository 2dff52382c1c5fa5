package view

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/jpalmerr/projectboard/internal/store"
)

// shortIDLen is how many ID characters a card shows.
const shortIDLen = 8

// ProjectItem is the card for a single project.
type ProjectItem struct {
	project store.Project
	logger  *slog.Logger
}

// NewProjectItem creates a card for p.
func NewProjectItem(p store.Project, logger *slog.Logger) *ProjectItem {
	if logger == nil {
		logger = slog.Default()
	}
	item := &ProjectItem{project: p, logger: logger}
	item.Configure()
	return item
}

// Project returns the project shown on the card.
func (i *ProjectItem) Project() store.Project {
	return i.project
}

// PeopleAssigned returns the headcount line, e.g. "1 person assigned".
func (i *ProjectItem) PeopleAssigned() string {
	noun := "people"
	if i.project.People == 1 {
		noun = "person"
	}
	return fmt.Sprintf("%d %s assigned", i.project.People, noun)
}

// Configure implements [Component]. Cards have nothing to wire.
func (i *ProjectItem) Configure() {}

// RenderContent implements [Component].
func (i *ProjectItem) RenderContent(w io.Writer) error {
	return instantiate(w, "single-project", struct {
		ShortID        string
		Title          string
		Description    string
		PeopleAssigned string
	}{
		ShortID:        ShortID(i.project.ID),
		Title:          i.project.Title,
		Description:    i.project.Description,
		PeopleAssigned: i.PeopleAssigned(),
	})
}

// DragStart implements [Draggable]. The payload is the project ID.
func (i *ProjectItem) DragStart(dt *DataTransfer) {
	dt.SetData(MIMEText, i.project.ID)
	dt.EffectAllowed = EffectMove
}

// DragEnd implements [Draggable].
func (i *ProjectItem) DragEnd(dt *DataTransfer) {
	i.logger.Debug("drag ended", "id", i.project.ID)
}

// ShortID returns the prefix of id shown on cards.
func ShortID(id string) string {
	if len(id) <= shortIDLen {
		return id
	}
	return id[:shortIDLen]
}
