package models

import "fmt"

// NotFoundError indicates a catalog or repository lookup for an unknown key.
// It is surfaced to the caller, never silently defaulted.
type NotFoundError struct {
	Resource string
	ID       string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Resource, e.ID)
}

// InvalidParameterError indicates an input outside its documented bound or
// ordering invariant. It is raised before any partial computation.
type InvalidParameterError struct {
	Field   string
	Value   string
	Message string
}

func (e *InvalidParameterError) Error() string {
	return e.Message
}

// IsTransient returns false as parameter errors are permanent.
func (e *InvalidParameterError) IsTransient() bool {
	return false
}
