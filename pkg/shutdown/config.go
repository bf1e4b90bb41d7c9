package shutdown

import "time"

// Config holds environment driven shutdown settings.
type Config struct {
	Timeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"30s"` // Timeout bounds the time all hooks may take together.
}

// NewFromConfig creates a Coordinator from cfg.
// Options given explicitly are applied after the config values.
func NewFromConfig(cfg Config, opts ...Option) *Coordinator {
	configOpts := make([]Option, 0, 1+len(opts))
	if cfg.Timeout > 0 {
		configOpts = append(configOpts, WithTimeout(cfg.Timeout))
	}
	configOpts = append(configOpts, opts...)
	return New(configOpts...)
}
