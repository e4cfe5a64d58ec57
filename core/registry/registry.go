package registry

import (
	"fmt"
	"sync"

	"github.com/mitchellh/mapstructure"
)

// Constructor builds an implementation of T from raw configuration. The map
// may be nil when the caller has no settings to pass.
type Constructor[T any] func(conf map[string]any) (T, error)

// Registry stores constructors keyed by name. Register takes the write lock,
// Create and Keys the read lock, so lookups may run concurrently with each
// other but never observe a half-applied registration.
type Registry[T any] struct {
	mu    sync.RWMutex
	ctors map[string]Constructor[T]
	order []string
}

// New returns an empty registry.
func New[T any]() *Registry[T] {
	return &Registry[T]{ctors: make(map[string]Constructor[T])}
}

// Register binds a constructor to the given key. A nil constructor is
// rejected. Registering a key twice silently replaces the previous binding;
// the key keeps its original position in the enumeration order.
func (r *Registry[T]) Register(key string, ctor Constructor[T]) error {
	if ctor == nil {
		return fmt.Errorf("nil constructor for %q", key)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.ctors[key]; !ok {
		r.order = append(r.order, key)
	}
	r.ctors[key] = ctor
	return nil
}

// MustRegister is Register panicking on error, for constructors known at
// compile time.
func (r *Registry[T]) MustRegister(key string, ctor Constructor[T]) {
	if err := r.Register(key, ctor); err != nil {
		panic(err)
	}
}

// Create instantiates the variant registered under key, passing conf to its
// constructor. An unregistered key yields an UnknownKeyError; a constructor
// failure is wrapped in a ConstructionError carrying the original cause.
// Create never mutates the registry.
func (r *Registry[T]) Create(key string, conf map[string]any) (T, error) {
	r.mu.RLock()
	ctor, ok := r.ctors[key]
	r.mu.RUnlock()
	var zero T
	if !ok {
		return zero, &UnknownKeyError{Key: key}
	}
	v, err := ctor(conf)
	if err != nil {
		return zero, &ConstructionError{Key: key, Err: err}
	}
	return v, nil
}

// Keys returns a snapshot of the registered keys in insertion order.
func (r *Registry[T]) Keys() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	keys := make([]string, len(r.order))
	copy(keys, r.order)
	return keys
}

// Decode fills out the provided struct from a raw conf map using json tags.
func Decode(data map[string]any, out any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{TagName: "json", Result: out})
	if err != nil {
		return err
	}
	return dec.Decode(data)
}
