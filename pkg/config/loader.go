package config

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var (
	mu       sync.Mutex
	cache    = make(map[reflect.Type]any)
	dotenvOK bool
)

// Option configures a Load call.
type Option func(*options)

type options struct {
	files []string
}

// WithEnvFiles loads the given files instead of the default .env.
// Missing files are ignored.
func WithEnvFiles(files ...string) Option {
	return func(o *options) {
		o.files = append(o.files, files...)
	}
}

// Load parses environment variables into v. The first successful load of a
// type is cached and copied into v on subsequent calls.
func Load[T any](v *T, opts ...Option) error {
	if v == nil {
		return ErrNilPointer
	}

	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	mu.Lock()
	defer mu.Unlock()

	loadDotenv(o.files)

	key := reflect.TypeFor[T]()
	if cached, ok := cache[key]; ok {
		*v = cached.(T)
		return nil
	}

	var parsed T
	if err := env.Parse(&parsed); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	cache[key] = parsed
	*v = parsed
	return nil
}

// MustLoad works like Load but panics if loading fails.
func MustLoad[T any](v *T, opts ...Option) {
	if err := Load(v, opts...); err != nil {
		panic(fmt.Sprintf("failed to load required configuration: %v", err))
	}
}

// Reset forgets cached configurations and allows .env files to be loaded
// again.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	clear(cache)
	dotenvOK = false
}

// loadDotenv must be called with mu held.
func loadDotenv(files []string) {
	if dotenvOK {
		return
	}
	dotenvOK = true
	if len(files) == 0 {
		// The default .env is optional.
		_ = godotenv.Load()
		return
	}
	for _, f := range files {
		_ = godotenv.Load(f)
	}
}
