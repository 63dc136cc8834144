package repository

import "time"

// Option applies a configuration option to the GormStore.
type Option func(*GormStore)

// WithMetricsUpdateInterval sets the interval for background metrics updates.
func WithMetricsUpdateInterval(interval time.Duration) Option {
	return func(s *GormStore) {
		if interval > 0 {
			s.metricsUpdateInterval = interval
		}
	}
}
