// SPDX-License-Identifier: MIT

package filters

import (
	"github.com/sirupsen/logrus"
)

// config is the resolved configuration shared by New and NewMeyer.
type config struct {
	log         logrus.FieldLogger
	filterCount int
	scales      []float64 // nil means "derive from lmax"
}

func newConfig(opts ...Option) config {
	cfg := config{
		log:         logrus.StandardLogger(),
		filterCount: DefaultFilterCount,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// Option configures New and NewMeyer.
type Option func(*config)

// WithLogger routes warnings and debug traces to l. Nil is ignored.
func WithLogger(l logrus.FieldLogger) Option {
	return func(c *config) {
		if l != nil {
			c.log = l
		}
	}
}

// WithFilterCount sets the number of filters of a Meyer bank (default 6).
// Values below 1 make NewMeyer fail with ErrInvalidFilterCount.
func WithFilterCount(n int) Option {
	return func(c *config) { c.filterCount = n }
}

// WithScales supplies a previously resolved scale sequence (see Meyer.Scales).
// A non-nil sequence is reused as-is, even when its length does not match
// the filter count; the slice is copied.
func WithScales(t []float64) Option {
	return func(c *config) {
		if t == nil {
			c.scales = nil
			return
		}
		c.scales = append(make([]float64, 0, len(t)), t...)
	}
}
