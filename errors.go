package fsa

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrDefinition is matched by every error returned from the definition constructors.
	ErrDefinition = errors.New("invalid automaton definition")

	// ErrInconsistent reports an internal-consistency failure found while merging
	// equivalent states. It never results from user input that passed validation.
	ErrInconsistent = errors.New("inconsistent automaton")
)

// DefinitionError represents a single definition validation failure.
type DefinitionError struct {
	Field  string // states, alphabet, initial, acceptable or transitions
	Reason string
	Value  string
}

func (e *DefinitionError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Reason)
	}
	return fmt.Sprintf("%s: %s (got %q)", e.Field, e.Reason, e.Value)
}

func (e *DefinitionError) Is(target error) bool {
	return target == ErrDefinition
}

// DefinitionErrors represents multiple validation failures.
type DefinitionErrors struct {
	Errors []*DefinitionError
}

func (e *DefinitionErrors) Error() string {
	if len(e.Errors) == 1 {
		return e.Errors[0].Error()
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "%d definition errors:", len(e.Errors))
	for i, err := range e.Errors {
		fmt.Fprintf(&sb, "\n  %d. %s", i+1, err.Error())
	}
	return sb.String()
}

func (e *DefinitionErrors) Is(target error) bool {
	return target == ErrDefinition
}

func (e *DefinitionErrors) Unwrap() []error {
	errs := make([]error, len(e.Errors))
	for i, err := range e.Errors {
		errs[i] = err
	}
	return errs
}

type violations struct {
	errs []*DefinitionError
}

func (v *violations) add(field, reason, value string) {
	v.errs = append(v.errs, &DefinitionError{Field: field, Reason: reason, Value: value})
}

func (v *violations) err() error {
	switch len(v.errs) {
	case 0:
		return nil
	case 1:
		return v.errs[0]
	default:
		return &DefinitionErrors{Errors: v.errs}
	}
}
