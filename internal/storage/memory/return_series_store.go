package memory

import (
	"context"
	"sort"
	"sync"

	"valuation-lab/internal/domain"
	"valuation-lab/internal/storage"
)

// ReturnSeriesStore is an in-memory implementation of storage.ReturnSeriesStore.
type ReturnSeriesStore struct {
	mu   sync.RWMutex
	data map[string][]*domain.ReturnPoint // keyed by asset_id
}

// NewReturnSeriesStore creates a new in-memory return series store.
func NewReturnSeriesStore() *ReturnSeriesStore {
	return &ReturnSeriesStore{
		data: make(map[string][]*domain.ReturnPoint),
	}
}

// InsertBulk adds multiple points. Fails entire batch on duplicate (asset_id, period_start).
func (s *ReturnSeriesStore) InsertBulk(_ context.Context, points []*domain.ReturnPoint) error {
	if len(points) == 0 {
		return nil
	}
	for _, p := range points {
		if p == nil || p.AssetID == "" {
			return storage.ErrInvalidInput
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// Check for duplicates, both intra-batch and against stored points,
	// before mutating anything.
	type key struct {
		assetID     string
		periodStart int64
	}
	seen := make(map[key]struct{}, len(points))
	for _, p := range points {
		k := key{p.AssetID, p.PeriodStart}
		if _, exists := seen[k]; exists {
			return storage.ErrDuplicateKey
		}
		seen[k] = struct{}{}

		for _, existing := range s.data[p.AssetID] {
			if existing.PeriodStart == p.PeriodStart {
				return storage.ErrDuplicateKey
			}
		}
	}

	for _, p := range points {
		pointCopy := *p
		s.data[p.AssetID] = append(s.data[p.AssetID], &pointCopy)
	}
	return nil
}

// GetByAssetID retrieves all points for an asset, ordered by period_start ASC.
func (s *ReturnSeriesStore) GetByAssetID(_ context.Context, assetID string) ([]*domain.ReturnPoint, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stored, exists := s.data[assetID]
	if !exists {
		return nil, storage.ErrNotFound
	}

	result := make([]*domain.ReturnPoint, len(stored))
	for i, p := range stored {
		pointCopy := *p
		result[i] = &pointCopy
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].PeriodStart < result[j].PeriodStart
	})

	return result, nil
}

// GetByTimeRange retrieves points for an asset within [start, end] (inclusive).
func (s *ReturnSeriesStore) GetByTimeRange(_ context.Context, assetID string, start, end int64) ([]*domain.ReturnPoint, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var result []*domain.ReturnPoint
	for _, p := range s.data[assetID] {
		if p.PeriodStart >= start && p.PeriodStart <= end {
			pointCopy := *p
			result = append(result, &pointCopy)
		}
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].PeriodStart < result[j].PeriodStart
	})

	return result, nil
}

// Verify interface compliance at compile time.
var _ storage.ReturnSeriesStore = (*ReturnSeriesStore)(nil)
