package eventbus

import (
	"fmt"
	"reflect"
	"strings"
)

// QualifiedName returns the default registration name for t: the package
// path and type name joined by a dot. Pointer types keep one "*" per level,
// so T and *T get distinct names just as they are distinct tags.
func QualifiedName(t reflect.Type) string {
	depth := 0
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
		depth++
	}
	prefix := strings.Repeat("*", depth)
	if t.PkgPath() == "" || t.Name() == "" {
		return prefix + t.String()
	}
	return prefix + t.PkgPath() + "." + t.Name()
}

// RegisterType binds T to each of the given names. With no names, T is bound
// to its QualifiedName.
func RegisterType[T any](r *Registry, names ...string) error {
	t := TypeOf[T]()
	if len(names) == 0 {
		names = []string{QualifiedName(t)}
	}
	for _, name := range names {
		if err := r.RegisterName(name, t); err != nil {
			return err
		}
	}
	return nil
}

// RegisterName binds name to t. Registering the same pair twice is a no-op.
func (r *Registry) RegisterName(name string, t reflect.Type) error {
	if name == "" {
		return ErrEmptyName
	}
	if t == nil {
		return ErrNilType
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, ok := r.names[name]; ok && existing != t {
		return fmt.Errorf("%w: %q is bound to %s", ErrDuplicateName, name, existing)
	}
	r.names[name] = t
	return nil
}

// Resolve returns the type bound to name.
func (r *Registry) Resolve(name string) (reflect.Type, error) {
	if name == "" {
		return nil, ErrEmptyName
	}

	r.mu.RLock()
	t, ok := r.names[name]
	r.mu.RUnlock()

	if !ok {
		return nil, &TypeResolutionError{Name: name}
	}
	return t, nil
}

// SubscribeName resolves name and subscribes h to the resulting type.
// If name is unknown, no subscription is created and a *TypeResolutionError is returned.
func (r *Registry) SubscribeName(name string, h Handler) error {
	t, err := r.Resolve(name)
	if err != nil {
		return err
	}
	return r.SubscribeType(t, h)
}
