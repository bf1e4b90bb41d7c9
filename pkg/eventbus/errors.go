package eventbus

import (
	"errors"
	"fmt"
)

var (
	// ErrNilType is returned when subscribing with a nil type tag.
	ErrNilType = errors.New("eventbus: nil event type")

	// ErrNilHandler is returned when subscribing a nil handler.
	ErrNilHandler = errors.New("eventbus: nil handler")

	// ErrInterfaceType is returned when subscribing to an interface type, which
	// can never match the exact dynamic type of a published event.
	ErrInterfaceType = errors.New("eventbus: cannot subscribe to interface type")

	// ErrTypeNotFound is matched by TypeResolutionError.
	ErrTypeNotFound = errors.New("eventbus: event type not found")

	// ErrDuplicateName is returned when a name is already bound to a different type.
	ErrDuplicateName = errors.New("eventbus: type name already registered")

	// ErrEmptyName is returned when registering or resolving an empty type name.
	ErrEmptyName = errors.New("eventbus: empty type name")

	// ErrHandlerFailed wraps an error returned by a handler during Publish.
	ErrHandlerFailed = errors.New("eventbus: handler failed")
)

// TypeResolutionError reports a type name that could not be resolved.
type TypeResolutionError struct {
	Name string
}

func (e *TypeResolutionError) Error() string {
	return fmt.Sprintf("eventbus: event type %q not found", e.Name)
}

// Is reports whether target is ErrTypeNotFound.
func (e *TypeResolutionError) Is(target error) bool {
	return target == ErrTypeNotFound
}
