package validation

import (
	"errors"
	"strings"
	"testing"
)

func TestValidateProject(t *testing.T) {
	tests := []struct {
		name        string
		title       string
		description string
		people      int
		wantFields  []string
	}{
		{
			name:        "valid",
			title:       "Project 1",
			description: "This is Project 1",
			people:      1,
		},
		{
			name:        "boundaries are inclusive",
			title:       "P",
			description: "12345",
			people:      10,
		},
		{
			name:        "max description length",
			title:       "P",
			description: strings.Repeat("a", 100),
			people:      5,
		},
		{
			name:        "empty title",
			title:       "",
			description: "This is Project 1",
			people:      1,
			wantFields:  []string{"title"},
		},
		{
			name:        "whitespace title",
			title:       "   ",
			description: "This is Project 1",
			people:      1,
			wantFields:  []string{"title"},
		},
		{
			name:        "description too short",
			title:       "Project",
			description: "1234",
			people:      1,
			wantFields:  []string{"description"},
		},
		{
			name:        "description too long",
			title:       "Project",
			description: strings.Repeat("a", 101),
			people:      1,
			wantFields:  []string{"description"},
		},
		{
			name:        "blank description",
			title:       "Project",
			description: "      ",
			people:      1,
			wantFields:  []string{"description"},
		},
		{
			name:        "zero people",
			title:       "Project",
			description: "This is a project",
			people:      0,
			wantFields:  []string{"people"},
		},
		{
			name:        "too many people",
			title:       "Project",
			description: "This is a project",
			people:      11,
			wantFields:  []string{"people"},
		},
		{
			name:        "everything wrong",
			title:       "",
			description: "",
			people:      -1,
			wantFields:  []string{"title", "description", "description", "people"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateProject(tt.title, tt.description, tt.people, DefaultLimits())
			if len(tt.wantFields) == 0 {
				if err != nil {
					t.Errorf("ValidateProject() error = %v, want nil", err)
				}
				return
			}

			if !errors.Is(err, ErrInvalidInput) {
				t.Fatalf("ValidateProject() error = %v, want ErrInvalidInput", err)
			}
			var fe FieldErrors
			if !errors.As(err, &fe) {
				t.Fatalf("ValidateProject() error type = %T, want FieldErrors", err)
			}
			if len(fe) != len(tt.wantFields) {
				t.Fatalf("got %d field errors (%v), want %d", len(fe), fe, len(tt.wantFields))
			}
			for i, field := range tt.wantFields {
				if fe[i].Field != field {
					t.Errorf("field error %d = %q, want %q", i, fe[i].Field, field)
				}
			}
		})
	}
}

func TestValidateProject_CountsRunes(t *testing.T) {
	// five characters, more than five bytes
	if err := ValidateProject("Café", "héllo", 1, DefaultLimits()); err != nil {
		t.Errorf("ValidateProject() error = %v, want nil", err)
	}
}

func TestValidateProject_CustomLimits(t *testing.T) {
	limits := Limits{DescriptionMin: 0, DescriptionMax: 3, PeopleMin: 2, PeopleMax: 2}

	// description is still required even with a zero minimum
	if err := ValidateProject("P", "", 2, limits); err == nil {
		t.Error("ValidateProject() with empty description error = nil, want error")
	}
	if err := ValidateProject("P", "abc", 2, limits); err != nil {
		t.Errorf("ValidateProject() error = %v, want nil", err)
	}
	if err := ValidateProject("P", "abc", 1, limits); err == nil {
		t.Error("ValidateProject() with 1 person error = nil, want error")
	}
}

func TestRule_Unbounded(t *testing.T) {
	r := Rule{Field: "notes"}
	if errs := r.CheckString(""); len(errs) != 0 {
		t.Errorf("CheckString() = %v, want no errors", errs)
	}
	if errs := r.CheckInt(-100); len(errs) != 0 {
		t.Errorf("CheckInt() = %v, want no errors", errs)
	}
}

func TestParsePeople(t *testing.T) {
	tests := []struct {
		input   string
		want    int
		wantErr bool
	}{
		{input: "3", want: 3},
		{input: " 10 ", want: 10},
		{input: "0", want: 0},
		{input: "", wantErr: true},
		{input: "two", wantErr: true},
		{input: "2.5", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParsePeople(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidInput) {
					t.Errorf("ParsePeople(%q) error = %v, want ErrInvalidInput", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParsePeople(%q) error = %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParsePeople(%q) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestLimits_Validate(t *testing.T) {
	tests := []struct {
		name    string
		limits  Limits
		wantErr string
	}{
		{name: "defaults", limits: DefaultLimits()},
		{name: "negative description", limits: Limits{DescriptionMin: -1, DescriptionMax: 5, PeopleMin: 1, PeopleMax: 1}, wantErr: "cannot be negative"},
		{name: "description inverted", limits: Limits{DescriptionMin: 10, DescriptionMax: 5, PeopleMin: 1, PeopleMax: 1}, wantErr: "description maximum"},
		{name: "zero people", limits: Limits{DescriptionMin: 1, DescriptionMax: 5, PeopleMin: 0, PeopleMax: 1}, wantErr: "at least 1"},
		{name: "people inverted", limits: Limits{DescriptionMin: 1, DescriptionMax: 5, PeopleMin: 3, PeopleMax: 2}, wantErr: "people maximum"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.limits.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() error = %v, want nil", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() error = %v, want containing %q", err, tt.wantErr)
			}
		})
	}
}
