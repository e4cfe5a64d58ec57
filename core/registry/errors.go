package registry

import "fmt"

// UnknownKeyError reports a Create call for a key with no registered
// constructor.
type UnknownKeyError struct {
	Key string
}

func (e *UnknownKeyError) Error() string {
	return fmt.Sprintf("unknown registry key %q", e.Key)
}

// ConstructionError reports that a registered constructor failed. The
// underlying cause is wrapped unmodified.
type ConstructionError struct {
	Key string
	Err error
}

func (e *ConstructionError) Error() string {
	return fmt.Sprintf("construct %q: %v", e.Key, e.Err)
}

func (e *ConstructionError) Unwrap() error { return e.Err }
