// Package memory provides in-memory store implementations. They back unit
// tests and database-free runs of the forecast command.
package memory

import (
	"context"
	"sort"
	"sync"

	"valuation-lab/internal/domain"
	"valuation-lab/internal/storage"
)

// ForecastStore is an in-memory implementation of storage.ForecastStore.
type ForecastStore struct {
	mu   sync.RWMutex
	data map[string]*domain.ForecastRecord // keyed by forecast_id
}

// NewForecastStore creates a new in-memory forecast store.
func NewForecastStore() *ForecastStore {
	return &ForecastStore{
		data: make(map[string]*domain.ForecastRecord),
	}
}

// Insert adds a new forecast record. Returns ErrDuplicateKey if forecast_id exists.
func (s *ForecastStore) Insert(_ context.Context, r *domain.ForecastRecord) error {
	if r == nil || r.ForecastID == "" {
		return storage.ErrInvalidInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.data[r.ForecastID]; exists {
		return storage.ErrDuplicateKey
	}

	// Store a copy to prevent external mutation
	recordCopy := *r
	s.data[r.ForecastID] = &recordCopy
	return nil
}

// GetByID retrieves a forecast by its ID. Returns ErrNotFound if not exists.
func (s *ForecastStore) GetByID(_ context.Context, forecastID string) (*domain.ForecastRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	r, exists := s.data[forecastID]
	if !exists {
		return nil, storage.ErrNotFound
	}

	// Return a copy
	recordCopy := *r
	return &recordCopy, nil
}

// GetByAssetID retrieves all forecasts for an asset.
func (s *ForecastStore) GetByAssetID(_ context.Context, assetID string) ([]*domain.ForecastRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var result []*domain.ForecastRecord
	for _, r := range s.data {
		if r.AssetID == assetID {
			recordCopy := *r
			result = append(result, &recordCopy)
		}
	}

	sortRecords(result)
	return result, nil
}

// GetAll retrieves all forecast records.
func (s *ForecastStore) GetAll(_ context.Context) ([]*domain.ForecastRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*domain.ForecastRecord, 0, len(s.data))
	for _, r := range s.data {
		recordCopy := *r
		result = append(result, &recordCopy)
	}

	sortRecords(result)
	return result, nil
}

// sortRecords orders by generated_at ASC, then horizon_years ASC.
func sortRecords(records []*domain.ForecastRecord) {
	sort.Slice(records, func(i, j int) bool {
		if records[i].GeneratedAt != records[j].GeneratedAt {
			return records[i].GeneratedAt < records[j].GeneratedAt
		}
		return records[i].HorizonYears < records[j].HorizonYears
	})
}

// Verify interface compliance at compile time.
var _ storage.ForecastStore = (*ForecastStore)(nil)
