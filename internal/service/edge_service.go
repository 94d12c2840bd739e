package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/cypherlabdev/edge-finder-service/internal/metrics"
	"github.com/cypherlabdev/edge-finder-service/internal/models"
)

// EdgeService orchestrates edge detection with caching and publication
type EdgeService struct {
	finder    Finder
	cache     Cache
	publisher Publisher // optional
	metrics   *metrics.Metrics
	logger    zerolog.Logger
}

// NewEdgeService creates a new edge service. publisher may be nil.
func NewEdgeService(
	finder Finder,
	cache Cache,
	publisher Publisher,
	m *metrics.Metrics,
	logger zerolog.Logger,
) *EdgeService {
	return &EdgeService{
		finder:    finder,
		cache:     cache,
		publisher: publisher,
		metrics:   m,
		logger:    logger.With().Str("component", "edge_service").Logger(),
	}
}

// ProcessSnapshot computes edges for the snapshot, caches and publishes them.
// Sink failures are logged and counted but do not fail the pass.
func (s *EdgeService) ProcessSnapshot(ctx context.Context, snapshot *models.OfferSnapshot) (*models.EdgeReport, error) {
	if snapshot == nil {
		s.metrics.ObserveFailure()
		return nil, fmt.Errorf("offer snapshot is nil")
	}

	batchID := snapshot.BatchID
	if batchID == "" {
		batchID = uuid.NewString()
	}

	start := time.Now()
	report, err := s.findEdges(ctx, snapshot, batchID)
	if err != nil {
		s.metrics.ObserveFailure()
		return nil, fmt.Errorf("edge detection failed: %w", err)
	}
	s.metrics.ObservePass(len(snapshot.Offers), report, time.Since(start))

	for _, r := range report.Rejected {
		s.logger.Warn().
			Str("batch_id", batchID).
			Str("offer_id", r.OfferID).
			Str("reason", string(r.Reason)).
			Str("detail", r.Detail).
			Msg("offer rejected")
	}

	if err := s.cache.SetBatch(ctx, report.Edges); err != nil {
		s.metrics.ObserveSinkError(metrics.SinkCache)
		s.logger.Warn().
			Err(err).
			Str("batch_id", batchID).
			Int("count", len(report.Edges)).
			Msg("failed to cache edges")
	}

	if s.publisher != nil {
		if err := s.publisher.Publish(ctx, batchID, report.Edges); err != nil {
			s.metrics.ObserveSinkError(metrics.SinkPublisher)
			s.logger.Warn().
				Err(err).
				Str("batch_id", batchID).
				Int("count", len(report.Edges)).
				Msg("failed to publish edges")
		}
	}

	s.logger.Info().
		Str("batch_id", batchID).
		Int("offer_count", len(snapshot.Offers)).
		Int("rejected_count", len(report.Rejected)).
		Int("edge_count", len(report.Edges)).
		Dur("elapsed", time.Since(start)).
		Msg("processed offer snapshot")

	return report, nil
}

// findEdges runs one finder pass per sport concurrently and merges the reports.
// Offers never cross matches, so the merge has no conflicting keys.
func (s *EdgeService) findEdges(ctx context.Context, snapshot *models.OfferSnapshot, batchID string) (*models.EdgeReport, error) {
	shards := splitBySport(snapshot, batchID)

	reports := make([]*models.EdgeReport, len(shards))
	g, gctx := errgroup.WithContext(ctx)
	for i, shard := range shards {
		i, shard := i, shard
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			report, err := s.finder.FindEdges(shard.snapshot)
			if err != nil {
				return fmt.Errorf("sport %q: %w", shard.sport, err)
			}
			reports[i] = report
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	merged := &models.EdgeReport{
		BatchID: batchID,
		Edges:   make(models.Edges),
	}
	for _, r := range reports {
		merged.Edges.Merge(r.Edges)
		merged.Rejected = append(merged.Rejected, r.Rejected...)
	}
	return merged, nil
}

type sportShard struct {
	sport    string
	snapshot *models.OfferSnapshot
}

// orphanSport labels the shard holding offers whose match is not in the snapshot
const orphanSport = "unknown"

// splitBySport partitions a snapshot into one snapshot per sport, ordered by
// sport id. Offers whose match is absent stay in a trailing shard so the
// finder can reject them.
func splitBySport(snapshot *models.OfferSnapshot, batchID string) []sportShard {
	sportOf := make(map[string]string, len(snapshot.Matches))
	shards := make(map[string]*models.OfferSnapshot)

	shardFor := func(sport string) *models.OfferSnapshot {
		shard, ok := shards[sport]
		if !ok {
			shard = &models.OfferSnapshot{BatchID: batchID, Timestamp: snapshot.Timestamp}
			shards[sport] = shard
		}
		return shard
	}

	for _, m := range snapshot.Matches {
		if _, seen := sportOf[m.ID]; seen {
			continue
		}
		sportOf[m.ID] = m.SportID
		shard := shardFor(m.SportID)
		shard.Matches = append(shard.Matches, m)
	}

	var orphans []models.Offer
	for _, o := range snapshot.Offers {
		sport, ok := sportOf[o.MatchID]
		if !ok {
			orphans = append(orphans, o)
			continue
		}
		shard := shardFor(sport)
		shard.Offers = append(shard.Offers, o)
	}

	sports := make([]string, 0, len(shards))
	for sport := range shards {
		sports = append(sports, sport)
	}
	sort.Strings(sports)

	out := make([]sportShard, 0, len(shards)+1)
	for _, sport := range sports {
		out = append(out, sportShard{sport: sport, snapshot: shards[sport]})
	}
	if len(orphans) > 0 {
		out = append(out, sportShard{
			sport:    orphanSport,
			snapshot: &models.OfferSnapshot{BatchID: batchID, Timestamp: snapshot.Timestamp, Offers: orphans},
		})
	}
	return out
}

// GetEdge retrieves a cached edge by id
func (s *EdgeService) GetEdge(ctx context.Context, edgeID string) (*models.Edge, error) {
	edge, err := s.cache.Get(ctx, edgeID)
	if err != nil {
		return nil, fmt.Errorf("failed to get edge %s: %w", edgeID, err)
	}
	return edge, nil
}

// GetEdgesByMatch retrieves all cached edges for a match
func (s *EdgeService) GetEdgesByMatch(ctx context.Context, matchID string) ([]models.Edge, error) {
	edges, err := s.cache.GetByMatch(ctx, matchID)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve edges for match: %w", err)
	}

	s.logger.Debug().
		Str("match_id", matchID).
		Int("count", len(edges)).
		Msg("retrieved edges by match")

	return edges, nil
}

// Ping checks the cache backing the service
func (s *EdgeService) Ping(ctx context.Context) error {
	return s.cache.Ping(ctx)
}

var _ SnapshotProcessor = (*EdgeService)(nil)
