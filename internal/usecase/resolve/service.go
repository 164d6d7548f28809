package resolve

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/kailas-cloud/dirsearch/internal/logger"
	"github.com/kailas-cloud/dirsearch/internal/metrics"
)

const stageNotFound = "not_found"

// Service resolves profile URL segments against the stored profile snapshot.
type Service struct {
	profiles ProfileReader
	resolver *Resolver
}

// New creates a resolve service. A nil resolver uses the default chain.
func New(profiles ProfileReader, resolver *Resolver) *Service {
	if resolver == nil {
		resolver = NewResolver()
	}
	return &Service{profiles: profiles, resolver: resolver}
}

// Resolve loads the profiles and resolves segment. Absence is a NotFound outcome;
// the error is reserved for storage failures.
func (s *Service) Resolve(ctx context.Context, segment string) (Outcome, error) {
	profiles, err := s.profiles.Profiles(ctx)
	if err != nil {
		return nil, fmt.Errorf("load profiles: %w", err)
	}

	out := s.resolver.Resolve(segment, profiles)

	stage := stageNotFound
	if f, ok := out.(Found); ok {
		stage = string(f.Stage)
	}
	metrics.ResolveTotal.WithLabelValues(stage).Inc()
	logger.FromContext(ctx).Debug("profile resolved",
		zap.String("segment", segment),
		zap.String("stage", stage),
	)
	return out, nil
}
