package env

//go:generate mockgen -source=env.go -destination=mocks/mock_store.go -package=mocks Store

import (
	"os"
	"sync"

	"github.com/pkg/errors"
)

// ErrEmptyKey is returned by stores that refuse to write an empty key.
var ErrEmptyKey = errors.New("empty environment variable name")

// Store is a string-keyed table of environment variables.
type Store interface {
	// Lookup returns the value stored under key and whether it is present.
	Lookup(key string) (string, bool)
	// Set stores value under key.
	Set(key, value string) error
	// Unset removes key. Removing an absent key is not an error.
	Unset(key string) error
}

// OSStore is a Store backed by the process environment.
type OSStore struct{}

func (OSStore) Lookup(key string) (string, bool) {
	return os.LookupEnv(key)
}

func (OSStore) Set(key, value string) error {
	if err := os.Setenv(key, value); err != nil {
		return errors.Wrapf(err, "setting %q", key)
	}
	return nil
}

func (OSStore) Unset(key string) error {
	if err := os.Unsetenv(key); err != nil {
		return errors.Wrapf(err, "unsetting %q", key)
	}
	return nil
}

// MapStore is an in-memory Store, safe for concurrent use. The zero value
// is an empty store.
type MapStore struct {
	mu   sync.RWMutex
	vars map[string]string
}

// NewMapStore returns a MapStore holding a copy of initial.
func NewMapStore(initial map[string]string) *MapStore {
	vars := make(map[string]string, len(initial))
	for k, v := range initial {
		vars[k] = v
	}
	return &MapStore{vars: vars}
}

func (s *MapStore) Lookup(key string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.vars[key]
	return v, ok
}

func (s *MapStore) Set(key, value string) error {
	if key == "" {
		return ErrEmptyKey
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.vars == nil {
		s.vars = make(map[string]string)
	}
	s.vars[key] = value
	return nil
}

func (s *MapStore) Unset(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.vars, key)
	return nil
}

// Get returns the value of an environment variable or a default value if it's not set.
func Get(key, defaultValue string) string {
	return GetFrom(OSStore{}, key, defaultValue)
}

// Set sets the value of an environment variable.
func Set(key, value string) error {
	return OSStore{}.Set(key, value)
}

// Unset removes an environment variable.
func Unset(key string) error {
	return OSStore{}.Unset(key)
}

// GetFrom is Get against an arbitrary Store.
func GetFrom(s Store, key, defaultValue string) string {
	value := defaultValue
	if v, ok := s.Lookup(key); ok {
		value = v
	}
	return value
}
