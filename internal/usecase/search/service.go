package search

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/kailas-cloud/dirsearch/internal/domain/catalog"
	"github.com/kailas-cloud/dirsearch/internal/domain/profile"
	"github.com/kailas-cloud/dirsearch/internal/domain/search/query"
	"github.com/kailas-cloud/dirsearch/internal/domain/search/request"
	"github.com/kailas-cloud/dirsearch/internal/domain/search/result"
	"github.com/kailas-cloud/dirsearch/internal/domain/text"
	"github.com/kailas-cloud/dirsearch/internal/logger"
	"github.com/kailas-cloud/dirsearch/internal/metrics"
)

// Service runs directory searches over the stored catalog and profile snapshots.
type Service struct {
	snapshots  SnapshotReader
	normalizer *text.Normalizer
}

// New creates a search service. A nil normalizer uses the default table.
func New(snapshots SnapshotReader, normalizer *text.Normalizer) *Service {
	if normalizer == nil {
		normalizer = text.NewNormalizer(nil)
	}
	return &Service{snapshots: snapshots, normalizer: normalizer}
}

// Search loads the current snapshots and evaluates req against them.
func (s *Service) Search(ctx context.Context, req *request.Request) (result.Result, error) {
	q := query.Parse(req.Query())
	if q.IsEmpty() {
		metrics.SearchTotal.WithLabelValues(modeLabel(q)).Inc()
		return result.New(q, result.NewMatch(nil), nil, 0), nil
	}

	entities, err := s.snapshots.Catalog(ctx)
	if err != nil {
		return result.Result{}, fmt.Errorf("load catalog: %w", err)
	}
	profiles, err := s.snapshots.Profiles(ctx)
	if err != nil {
		return result.Result{}, fmt.Errorf("load profiles: %w", err)
	}

	res := s.evaluate(q, entities, profiles, req.Limit())

	metrics.SearchTotal.WithLabelValues(modeLabel(q)).Inc()
	metrics.SearchMatchedOwners.Observe(float64(res.Match().TagMatchCount()))
	metrics.SearchVisibleProfiles.Observe(float64(res.Total()))

	logger.FromContext(ctx).Debug("search evaluated",
		zap.String("mode", string(q.Mode())),
		zap.Int("keywords", q.Len()),
		zap.Int("catalog_size", len(entities)),
		zap.Int("tag_match_count", res.Match().TagMatchCount()),
		zap.Int("visible", res.Total()),
	)
	return res, nil
}

// Evaluate runs the search pipeline over caller-supplied snapshots.
// limit <= 0 returns every visible profile.
func (s *Service) Evaluate(
	raw string, entities []catalog.Entity, profiles []profile.Profile, limit int,
) result.Result {
	return s.evaluate(query.Parse(raw), entities, profiles, limit)
}

func (s *Service) evaluate(
	q query.Query, entities []catalog.Entity, profiles []profile.Profile, limit int,
) result.Result {
	if q.IsEmpty() {
		return result.New(q, result.NewMatch(nil), nil, 0)
	}

	active := profile.Active(profiles)
	match := Match(q, entities)
	fieldHits := FilterProfiles(q.Raw(), active, s.normalizer)
	visible := Merge(q, match, fieldHits, active)

	total := len(visible)
	if limit > 0 && len(visible) > limit {
		visible = visible[:limit]
	}
	return result.New(q, match, visible, total)
}

// Normalize folds decorative Unicode in s with the service's table.
func (s *Service) Normalize(in string) string {
	return s.normalizer.Normalize(in)
}

func modeLabel(q query.Query) string {
	if q.IsEmpty() {
		return "empty"
	}
	return string(q.Mode())
}
