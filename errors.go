package logging

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidName indicates a rejected level, writer or tag name.
	ErrInvalidName = errors.New("invalid name")

	// ErrNilConfiguration indicates an attempt to install a nil configuration.
	ErrNilConfiguration = errors.New("configuration must not be nil")
)

// InvalidNameError reports why a name was rejected during registration.
//
// It matches ErrInvalidName via errors.Is.
type InvalidNameError struct {
	Kind   string // "level", "writer" or "tag"
	Name   string
	Reason string
}

func (e *InvalidNameError) Error() string {
	return fmt.Sprintf("invalid %s name %q: %s", e.Kind, e.Name, e.Reason)
}

func (e *InvalidNameError) Unwrap() error { return ErrInvalidName }
