package eventqueue

import "time"

// Config holds environment driven channel settings.
type Config struct {
	Capacity     int           `env:"EVENTQUEUE_CAPACITY" envDefault:"1024"`
	OfferTimeout time.Duration `env:"EVENTQUEUE_OFFER_TIMEOUT" envDefault:"2m"`
	DrainTimeout time.Duration `env:"EVENTQUEUE_DRAIN_TIMEOUT" envDefault:"30s"`
	Debug        bool          `env:"EVENTQUEUE_DEBUG" envDefault:"false"`
}

// NewFromConfig creates a channel from cfg. Zero durations keep the defaults.
// Options given explicitly are applied after the config values.
func NewFromConfig[T any](cfg Config, opts ...Option) (*Channel[T], error) {
	configOpts := make([]Option, 0, 3+len(opts))

	if cfg.OfferTimeout > 0 {
		configOpts = append(configOpts, WithOfferTimeout(cfg.OfferTimeout))
	}
	if cfg.DrainTimeout > 0 {
		configOpts = append(configOpts, WithDrainTimeout(cfg.DrainTimeout))
	}
	if cfg.Debug {
		configOpts = append(configOpts, WithDebug(true))
	}

	configOpts = append(configOpts, opts...)

	return New[T](cfg.Capacity, configOpts...)
}
