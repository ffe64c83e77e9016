// Package environ holds the shell's environment variables.
//
// The store is owned by the interpreter rather than using the ambient
// process environment so exports only become visible to children the
// interpreter launches itself.
package environ

import (
	"fmt"
	"strings"
	"sync"
)

// NewStore creates an empty environment store.
func NewStore() *Store {
	return &Store{}
}

// NewStoreFromEnviron creates a store seeded with variables in the
// form returned by os.Environ.
func NewStoreFromEnviron(environ []string) *Store {
	out := &Store{}

	for _, e := range environ {
		split := strings.SplitN(e, "=", 2)
		key, value := split[0], ""
		if len(split) > 1 {
			value = split[1]
		}
		out.Setenv(key, value)
	}

	return out
}

// Store implements an in-memory environment variable mapping.
type Store struct {
	rw  sync.RWMutex
	env map[string]string
}

// Setenv sets the value of the variable named by key, overwriting any
// previous value.
func (s *Store) Setenv(key, value string) {
	s.rw.Lock()
	defer s.rw.Unlock()

	if s.env == nil {
		s.env = make(map[string]string)
	}
	s.env[key] = value
}

// Unsetenv removes the variable named by key.
func (s *Store) Unsetenv(key string) {
	s.rw.Lock()
	defer s.rw.Unlock()
	if s.env != nil {
		delete(s.env, key)
	}
}

// LookupEnv fetches the value of the variable named by key and reports
// whether it was present.
func (s *Store) LookupEnv(key string) (string, bool) {
	s.rw.RLock()
	defer s.rw.RUnlock()

	val, ok := s.env[key]
	return val, ok
}

// Getenv fetches the value of the variable named by key, or "" if unset.
func (s *Store) Getenv(key string) string {
	val, _ := s.LookupEnv(key)
	return val
}

// Environ returns the variables as a list of "key=value" strings
// suitable for passing to a child process.
func (s *Store) Environ() []string {
	s.rw.RLock()
	defer s.rw.RUnlock()

	var env []string
	for k, v := range s.env {
		env = append(env, fmt.Sprintf("%s=%s", k, v))
	}

	return env
}
