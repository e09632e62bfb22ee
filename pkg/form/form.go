// Package form asks a sequence of typed questions through a safeinput.Scanner.
//
// A form is usually loaded from YAML, JSON or CUE:
//
//	title: Signup
//	questions:
//	  - name: age
//	    prompt: "Age: "
//	    type: uint
//	  - name: plan
//	    prompt: "Plan (a/b/c): "
//	    type: charf
//	    allowed: abc
//
// Answers keep question order and can be rendered with a mustache template
// or marshaled to JSON.
package form

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidForm indicates a form definition that cannot be run.
	ErrInvalidForm = errors.New("form: invalid definition")

	// ErrIncomplete indicates the input ended before every question was answered.
	ErrIncomplete = errors.New("form: input ended before all questions were answered")
)

// Form is an ordered list of questions.
type Form struct {
	Title     string     `json:"title,omitempty"`
	Questions []Question `json:"questions"`
}

// Question describes one value to read.
type Question struct {
	Name    string `json:"name"`
	Prompt  string `json:"prompt,omitempty"`
	Type    string `json:"type"`
	Allowed string `json:"allowed,omitempty"` // Only for charf
}

// Validate checks that every question can be asked.
func (f *Form) Validate() error {
	if len(f.Questions) == 0 {
		return fmt.Errorf("%w: no questions", ErrInvalidForm)
	}

	seen := make(map[string]bool, len(f.Questions))
	for i, q := range f.Questions {
		if q.Name == "" {
			return fmt.Errorf("%w: question %d has no name", ErrInvalidForm, i)
		}
		if seen[q.Name] {
			return fmt.Errorf("%w: duplicate question %q", ErrInvalidForm, q.Name)
		}
		seen[q.Name] = true

		if _, ok := readers[q.Type]; !ok {
			return fmt.Errorf("%w: question %q has unknown type %q", ErrInvalidForm, q.Name, q.Type)
		}
		if q.Type == TypeCharF && q.Allowed == "" {
			return fmt.Errorf("%w: question %q needs allowed characters", ErrInvalidForm, q.Name)
		}
	}
	return nil
}
