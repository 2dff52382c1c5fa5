package view

import (
	"io"
	"log/slog"
	"sync"

	"github.com/jpalmerr/projectboard/internal/store"
	"github.com/jpalmerr/projectboard/internal/validation"
)

// InvalidInputMessage is the alert shown when a submission is rejected.
const InvalidInputMessage = "Invalid input, please try again!"

// Alerter shows a blocking message to the user.
type Alerter func(message string)

// ProjectInput is the form that creates projects.
//
// Inputs are kept as the raw strings a user typed; Submit parses and
// validates them before anything reaches the store.
type ProjectInput struct {
	store  store.Store
	limits validation.Limits
	alert  Alerter
	logger *slog.Logger

	mu          sync.Mutex
	title       string
	description string
	people      string
}

// NewProjectInput creates a form that adds projects to s.
// A nil alert discards messages.
func NewProjectInput(s store.Store, limits validation.Limits, alert Alerter, logger *slog.Logger) *ProjectInput {
	if alert == nil {
		alert = func(string) {}
	}
	if logger == nil {
		logger = slog.Default()
	}
	in := &ProjectInput{
		store:  s,
		limits: limits,
		alert:  alert,
		logger: logger,
	}
	in.Configure()
	return in
}

// ID returns the form identifier.
func (in *ProjectInput) ID() string {
	return "user-input"
}

// Configure implements [Component]. The form is wired through Submit.
func (in *ProjectInput) Configure() {}

// SetInputs replaces the form fields.
func (in *ProjectInput) SetInputs(title, description, people string) {
	in.mu.Lock()
	defer in.mu.Unlock()
	in.title = title
	in.description = description
	in.people = people
}

// Inputs returns the current form fields.
func (in *ProjectInput) Inputs() (title, description, people string) {
	in.mu.Lock()
	defer in.mu.Unlock()
	return in.title, in.description, in.people
}

// Submit validates the form and adds the project.
//
// On rejection the user is alerted, the fields are kept and the store is
// not touched. On success the fields are cleared.
func (in *ProjectInput) Submit() (store.Project, error) {
	title, description, rawPeople := in.Inputs()

	people, err := validation.ParsePeople(rawPeople)
	if err == nil {
		err = validation.ValidateProject(title, description, people, in.limits)
	}
	if err != nil {
		in.logger.Warn("project submission rejected", "error", err)
		in.alert(InvalidInputMessage)
		return store.Project{}, err
	}

	p := in.store.AddProject(title, description, people)
	in.clearInputs()
	return p, nil
}

func (in *ProjectInput) clearInputs() {
	in.SetInputs("", "", "")
}

// RenderContent implements [Component].
func (in *ProjectInput) RenderContent(w io.Writer) error {
	title, description, people := in.Inputs()
	return instantiate(w, "project-input", struct {
		ID          string
		Title       string
		Description string
		People      string
	}{
		ID:          in.ID(),
		Title:       title,
		Description: description,
		People:      people,
	})
}
