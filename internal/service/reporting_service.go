package service

import (
	"context"
	"strings"

	"biodiversity-credits/internal/core/domain"
	"biodiversity-credits/internal/core/ports"
)

// reportingService implements ports.ReportingService over the registry.
type reportingService struct {
	registry ports.CreditRegistry
}

// NewReportingService creates a new reporting service.
func NewReportingService(registry ports.CreditRegistry) ports.ReportingService {
	return &reportingService{registry: registry}
}

// ListCredits returns the registry listing narrowed by filter, keeping the
// registry's newest-first order.
func (s *reportingService) ListCredits(ctx context.Context, filter ports.CreditFilter) ([]domain.Credit, error) {
	credits, err := s.registry.List(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]domain.Credit, 0, len(credits))
	for _, c := range credits {
		if filter.Status != nil && c.Status != *filter.Status {
			continue
		}
		if filter.Owner != "" && !strings.EqualFold(c.Owner, filter.Owner) {
			continue
		}
		out = append(out, c)
	}
	return out, nil
}

// GetStats counts credits per status and collects distinct locations.
func (s *reportingService) GetStats(ctx context.Context) (*domain.CreditStats, error) {
	credits, err := s.registry.List(ctx)
	if err != nil {
		return nil, err
	}

	stats := &domain.CreditStats{Total: len(credits), Locations: []string{}}
	seen := make(map[string]struct{})
	for _, c := range credits {
		switch c.Status {
		case domain.CreditStatusVerified:
			stats.Verified++
		case domain.CreditStatusPending:
			stats.Pending++
		case domain.CreditStatusRejected:
			stats.Rejected++
		}
		if _, ok := seen[c.Location]; !ok {
			seen[c.Location] = struct{}{}
			stats.Locations = append(stats.Locations, c.Location)
		}
	}
	return stats, nil
}
