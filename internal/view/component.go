package view

import (
	"fmt"
	"io"
	"slices"
	"sync"
	"text/template"

	"github.com/jpalmerr/projectboard/dashboard"
)

// templates holds every named view template.
var templates = template.Must(template.New("views").ParseFS(dashboard.Templates, "templates/*.tmpl"))

// Component is a renderable view.
//
// Configure wires the component to its collaborators and is called once by
// the constructor. RenderContent writes the component's current state.
type Component interface {
	Configure()
	RenderContent(w io.Writer) error
}

// instantiate executes the named template into w.
func instantiate(w io.Writer, name string, data any) error {
	if err := templates.ExecuteTemplate(w, name, data); err != nil {
		return fmt.Errorf("render %s: %w", name, err)
	}
	return nil
}

// RenderHeader writes the board title.
func RenderHeader(w io.Writer, title string) error {
	return instantiate(w, "board", struct{ Title string }{title})
}

// Host is a named attachment point that renders its components in order.
type Host struct {
	id         string
	mu         sync.RWMutex
	components []Component
}

// NewHost creates an empty host.
func NewHost(id string) *Host {
	return &Host{id: id}
}

// ID returns the host identifier.
func (h *Host) ID() string {
	return h.id
}

// Attach inserts c at the beginning of the host when atStart is true and
// at the end otherwise.
func (h *Host) Attach(c Component, atStart bool) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if atStart {
		h.components = slices.Insert(h.components, 0, c)
		return
	}
	h.components = append(h.components, c)
}

// Components returns the attached components in render order.
func (h *Host) Components() []Component {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return slices.Clone(h.components)
}

// Render writes every attached component to w.
func (h *Host) Render(w io.Writer) error {
	for _, c := range h.Components() {
		if err := c.RenderContent(w); err != nil {
			return err
		}
	}
	return nil
}
