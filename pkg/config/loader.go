package config

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// configCache stores parsed configuration values keyed by type name.
type configCache struct {
	mu     sync.RWMutex
	values map[string]any
	onces  map[string]*sync.Once
}

var (
	globalCache = newConfigCache()

	defaultEnvLoaded sync.Once
)

func newConfigCache() *configCache {
	return &configCache{
		values: make(map[string]any),
		onces:  make(map[string]*sync.Once),
	}
}

// Load parses environment variables into the provided configuration struct.
// Each configuration type is parsed once; later calls for the same type return
// the cached copy.
//
// The default .env file is loaded on first use if present.
//
// Example:
//
//	var cfg eventqueue.Config
//	if err := config.Load(&cfg); err != nil {
//		// Handle error
//	}
func Load[T any](v *T) error {
	defaultEnvLoaded.Do(func() {
		// The .env file is optional
		_ = godotenv.Load()
	})
	if v == nil {
		return ErrNilPointer
	}

	typeName := getTypeName[T]()

	if globalCache.get(typeName, v) {
		return nil
	}

	globalCache.mu.Lock()
	once, exists := globalCache.onces[typeName]
	if !exists {
		once = new(sync.Once)
		globalCache.onces[typeName] = once
	}
	globalCache.mu.Unlock()

	var err error
	once.Do(func() {
		if parseErr := env.Parse(v); parseErr != nil {
			err = errors.Join(ErrParsingConfig, parseErr)
			// Allow a later call to retry once the environment is fixed
			globalCache.mu.Lock()
			delete(globalCache.onces, typeName)
			globalCache.mu.Unlock()
			return
		}

		globalCache.mu.Lock()
		globalCache.values[typeName] = *v
		globalCache.mu.Unlock()
	})

	if err != nil {
		return err
	}

	// Concurrent callers that lost the once race read the stored value
	if globalCache.get(typeName, v) {
		return nil
	}

	return ErrConfigNotLoaded
}

// MustLoad works like Load but panics if configuration loading fails.
func MustLoad[T any](v *T) {
	if err := Load(v); err != nil {
		panic(fmt.Sprintf("Failed to load required configuration: %v", err))
	}
}

// ForceReloadConfig drops the cached value for T and parses the environment again.
func ForceReloadConfig[T any](v *T) error {
	if v == nil {
		return ErrNilPointer
	}

	typeName := getTypeName[T]()

	globalCache.mu.Lock()
	delete(globalCache.values, typeName)
	delete(globalCache.onces, typeName)
	globalCache.mu.Unlock()

	return Load(v)
}

// LoadEnv loads the given .env files into the process environment.
// Files loaded later override values from earlier ones. With no paths, the
// default .env file in the working directory is loaded.
func LoadEnv(paths ...string) error {
	if len(paths) == 0 {
		if err := godotenv.Overload(); err != nil {
			return errors.Join(ErrLoadingEnvFile, err)
		}
		return nil
	}

	for _, p := range paths {
		if err := godotenv.Overload(p); err != nil {
			return errors.Join(ErrLoadingEnvFile, fmt.Errorf("%s: %w", p, err))
		}
	}
	return nil
}

// ResetCache clears every cached configuration.
func ResetCache() {
	globalCache.mu.Lock()
	defer globalCache.mu.Unlock()

	clear(globalCache.values)
	clear(globalCache.onces)
}

func (c *configCache) get(typeName string, dst any) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	cached, ok := c.values[typeName]
	if !ok {
		return false
	}
	reflect.ValueOf(dst).Elem().Set(reflect.ValueOf(cached))
	return true
}

// getTypeName returns a string identifier for the generic type T
func getTypeName[T any]() string {
	t := reflect.TypeFor[T]()
	return t.PkgPath() + ":" + t.String()
}
