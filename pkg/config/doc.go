// Package config loads typed configuration from environment variables and
// optional `.env` files.
//
// It wraps `github.com/joho/godotenv` and `github.com/caarlos0/env/v11`:
//
//   - LoadEnv reads one or more `.env` files into the process environment
//     (the default `.env` in the working directory when no path is given).
//   - Load parses the environment into any struct using `env` field tags and
//     caches the result per type, so repeated calls are cheap and consistent.
//   - MustLoad panics on failure for startup code.
//   - ForceReloadConfig drops the cached copy and parses again, for callers
//     that changed the environment (for example after LoadEnv) since the last load.
//   - ResetCache clears every cached type.
//
// # Usage
//
//	type AppConfig struct {
//	    Queue    eventqueue.Config
//	    Shutdown shutdown.Config
//	}
//
//	var cfg AppConfig
//	if err := config.Load(&cfg); err != nil {
//	    log.Fatalf("parsing env: %v", err)
//	}
//
// # Error Handling
//
// Sentinel errors can be compared with errors.Is:
//
//   - ErrParsingConfig   – failed to parse env vars into struct.
//   - ErrLoadingEnvFile  – a `.env` file could not be read.
//   - ErrConfigNotLoaded – requested config type has not been loaded yet.
//   - ErrNilPointer      – nil pointer passed to Load/MustLoad.
package config
