package system

import "os"

// Environment is the interface for reading process environment variables.
type Environment interface {
	// Lookup gets the value of the environment variable with the given key
	// and whether it is set.
	Lookup(key string) (string, bool)
	// Get gets the value of the environment variable with the given key, or
	// the empty string when it is unset.
	Get(key string) string
}

// env is the default implementation of the Environment interface.
type env struct{}

// NewEnvironment creates a new Environment backed by the process environment.
func NewEnvironment() Environment {
	return &env{}
}

// Lookup gets the value of the environment variable with the given key and
// whether it is set.
func (e *env) Lookup(key string) (string, bool) {
	return os.LookupEnv(key)
}

// Get gets the value of the environment variable with the given key. Unset
// variables degrade to the empty string.
func (e *env) Get(key string) string {
	value, _ := os.LookupEnv(key)
	return value
}
