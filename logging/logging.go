// Package logging builds the zap logger for the configured environment.
package logging

import "go.uber.org/zap"

// New returns the logger matching the APP_ENV value. Production gets the JSON
// sampler, development the console encoder at debug level, and anything else
// the deterministic example logger, which suits local runs and tests.
func New(env string) (*zap.Logger, error) {
	switch env {
	case "production":
		return zap.NewProduction()
	case "development":
		return zap.NewDevelopment()
	default:
		return zap.NewExample(), nil
	}
}
