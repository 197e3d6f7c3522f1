package ports

//go:generate mockgen -source=health.go -destination=mocks/health_mock.go -package=mocks

import "context"

// HealthChecker checks a registry backend or other external dependency.
type HealthChecker interface {
	// Ping returns nil if the dependency is reachable.
	Ping(ctx context.Context) error
	// Name identifies the dependency in /health output (e.g. "redis", "sqlite").
	Name() string
}
