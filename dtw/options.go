package dtw

import "github.com/rs/zerolog"

// Option configures an Engine or FastEngine at construction.
type Option func(*config)

// config holds construction-time settings. Zero values are replaced by
// defaults in gatherOptions.
type config struct {
	dist DistanceFunc
	log  zerolog.Logger
}

// WithDistance sets the pointwise distance (nil keeps DistanceBetween).
func WithDistance(d DistanceFunc) Option {
	return func(c *config) {
		if d != nil {
			c.dist = d
		}
	}
}

// WithLogger routes engine events to l. Engines are silent by default.
func WithLogger(l zerolog.Logger) Option {
	return func(c *config) { c.log = l }
}

// gatherOptions applies opts over the defaults in order.
func gatherOptions(opts ...Option) config {
	c := config{
		dist: DistanceBetween,
		log:  zerolog.Nop(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&c)
		}
	}

	return c
}
