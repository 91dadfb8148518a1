package env

import (
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Var is a named view onto one environment variable with a fallback
// default. It holds no state of its own: every call goes to its Store.
type Var struct {
	key          string
	defaultValue string
	store        Store
	logger       *zerolog.Logger
}

type Option func(*Var)

// WithStore makes the Var read and write s instead of the process environment.
func WithStore(s Store) Option {
	return func(v *Var) {
		v.store = s
	}
}

// WithLogger routes the Var's diagnostics to l.
func WithLogger(l zerolog.Logger) Option {
	return func(v *Var) {
		v.logger = &l
	}
}

// NewVar binds key and defaultValue. Neither is validated.
func NewVar(key, defaultValue string, opts ...Option) *Var {
	v := &Var{
		key:          key,
		defaultValue: defaultValue,
		store:        OSStore{},
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

func (v *Var) Key() string {
	return v.key
}

func (v *Var) Default() string {
	return v.defaultValue
}

// Set stores value under the Var's key. An empty value is rejected with a
// warning and leaves the table untouched.
func (v *Var) Set(value string) {
	l := v.log()
	if value == "" {
		l.Warn().Msgf("Attempted to set an empty value for %s", v.key)
		return
	}
	if err := v.store.Set(v.key, value); err != nil {
		l.Error().Err(err).Msgf("Failed to set %s", v.key)
		return
	}
	l.Debug().Msgf("Set %s: %s", v.key, value)
}

// Get returns the stored value, or the default when the key is absent.
func (v *Var) Get() string {
	value := GetFrom(v.store, v.key, v.defaultValue)
	v.log().Debug().Msgf("%s: %s", v.key, value)
	return value
}

// Lookup returns the raw stored value and whether the key is present.
func (v *Var) Lookup() (string, bool) {
	return v.store.Lookup(v.key)
}

// Clear removes the key. Clearing an unset key is a no-op.
func (v *Var) Clear() {
	l := v.log()
	if _, ok := v.store.Lookup(v.key); !ok {
		l.Debug().Msgf("%s was not set", v.key)
		return
	}
	if err := v.store.Unset(v.key); err != nil {
		l.Error().Err(err).Msgf("Failed to clear %s", v.key)
		return
	}
	l.Debug().Msgf("%s has been cleared", v.key)
}

func (v *Var) log() *zerolog.Logger {
	if v.logger != nil {
		return v.logger
	}
	// resolved per call so logging.Setup applies to Vars built before it ran
	l := log.Logger.With().Str("component", "env").Str("key", v.key).Logger()
	return &l
}
