package services

import (
	"context"

	health "github.com/Brendon2203/techsolutions/gen/health"
	"github.com/Brendon2203/techsolutions/internal/logging"
)

// HealthChecker reports whether a dependency is reachable
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

// HealthService implements the health service
type HealthService struct {
	name string
	db   HealthChecker
}

// NewHealthService creates a new health service
func NewHealthService(name string, db HealthChecker) *HealthService {
	return &HealthService{name: name, db: db}
}

// Check implements the health check method
func (s *HealthService) Check(ctx context.Context) (*health.Healthresult, error) {
	status := "healthy"
	database := "ok"
	if err := s.db.HealthCheck(ctx); err != nil {
		logging.Warn("database health check failed", "component", "health", "error", err)
		status = "degraded"
		database = err.Error()
	}
	service := s.name
	return &health.Healthresult{
		Status:   &status,
		Service:  &service,
		Database: &database,
	}, nil
}
