package memory

import (
	"context"
	"errors"
	"sync"
	"testing"

	"valuation-lab/internal/domain"
	"valuation-lab/internal/storage"
)

func testRecord(forecastID, assetID string, horizonYears int, generatedAt int64) *domain.ForecastRecord {
	return &domain.ForecastRecord{
		ForecastID:     forecastID,
		AssetID:        assetID,
		CurrentValue:   1000,
		HorizonYears:   horizonYears,
		Paths:          5000,
		Seed:           42,
		GeneratedAt:    generatedAt,
		EnsembleMedian: 1050,
		AgreementScore: 80,
	}
}

func TestForecastStore_InsertAndGet(t *testing.T) {
	store := NewForecastStore()
	ctx := context.Background()

	r := testRecord("fc-1", "asset-001", 5, 1704067200000)

	err := store.Insert(ctx, r)
	if err != nil {
		t.Fatalf("Insert failed: %v", err)
	}

	got, err := store.GetByID(ctx, "fc-1")
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}

	if got.AssetID != r.AssetID {
		t.Errorf("AssetID mismatch: got %s, want %s", got.AssetID, r.AssetID)
	}
	if got.EnsembleMedian != r.EnsembleMedian {
		t.Errorf("EnsembleMedian mismatch: got %f, want %f", got.EnsembleMedian, r.EnsembleMedian)
	}
}

func TestForecastStore_DuplicateKey(t *testing.T) {
	store := NewForecastStore()
	ctx := context.Background()

	r := testRecord("fc-1", "asset-001", 5, 1704067200000)

	if err := store.Insert(ctx, r); err != nil {
		t.Fatalf("First insert failed: %v", err)
	}

	err := store.Insert(ctx, r)
	if !errors.Is(err, storage.ErrDuplicateKey) {
		t.Errorf("Expected ErrDuplicateKey, got %v", err)
	}
}

func TestForecastStore_NotFound(t *testing.T) {
	store := NewForecastStore()
	ctx := context.Background()

	_, err := store.GetByID(ctx, "nonexistent")
	if !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}

func TestForecastStore_InvalidInput(t *testing.T) {
	store := NewForecastStore()
	ctx := context.Background()

	if err := store.Insert(ctx, nil); !errors.Is(err, storage.ErrInvalidInput) {
		t.Errorf("Expected ErrInvalidInput for nil record, got %v", err)
	}

	r := testRecord("", "asset-001", 1, 1)
	if err := store.Insert(ctx, r); !errors.Is(err, storage.ErrInvalidInput) {
		t.Errorf("Expected ErrInvalidInput for empty forecast_id, got %v", err)
	}
}

func TestForecastStore_GetByAssetIDOrdering(t *testing.T) {
	store := NewForecastStore()
	ctx := context.Background()

	// Insert out of order
	records := []*domain.ForecastRecord{
		testRecord("fc-3", "asset-001", 2, 2000),
		testRecord("fc-1", "asset-001", 3, 1000),
		testRecord("fc-2", "asset-001", 1, 1000),
		testRecord("fc-other", "asset-002", 1, 500),
	}
	for _, r := range records {
		if err := store.Insert(ctx, r); err != nil {
			t.Fatalf("Insert %s failed: %v", r.ForecastID, err)
		}
	}

	got, err := store.GetByAssetID(ctx, "asset-001")
	if err != nil {
		t.Fatalf("GetByAssetID failed: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("Expected 3 records, got %d", len(got))
	}

	// generated_at ASC, then horizon_years ASC
	wantOrder := []string{"fc-2", "fc-1", "fc-3"}
	for i, want := range wantOrder {
		if got[i].ForecastID != want {
			t.Errorf("Position %d: got %s, want %s", i, got[i].ForecastID, want)
		}
	}
}

func TestForecastStore_GetAll(t *testing.T) {
	store := NewForecastStore()
	ctx := context.Background()

	for i, id := range []string{"fc-a", "fc-b", "fc-c"} {
		if err := store.Insert(ctx, testRecord(id, "asset-001", i+1, int64(i)*1000)); err != nil {
			t.Fatalf("Insert failed: %v", err)
		}
	}

	got, err := store.GetAll(ctx)
	if err != nil {
		t.Fatalf("GetAll failed: %v", err)
	}
	if len(got) != 3 {
		t.Errorf("Expected 3 records, got %d", len(got))
	}
}

func TestForecastStore_CopyOnReadWrite(t *testing.T) {
	store := NewForecastStore()
	ctx := context.Background()

	r := testRecord("fc-1", "asset-001", 5, 1)
	if err := store.Insert(ctx, r); err != nil {
		t.Fatalf("Insert failed: %v", err)
	}

	// Mutating the inserted record must not affect the stored copy
	r.EnsembleMedian = -1

	got, err := store.GetByID(ctx, "fc-1")
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if got.EnsembleMedian != 1050 {
		t.Errorf("Stored record was mutated externally: median = %f", got.EnsembleMedian)
	}

	// Mutating a returned record must not affect the store either
	got.EnsembleMedian = -2
	again, _ := store.GetByID(ctx, "fc-1")
	if again.EnsembleMedian != 1050 {
		t.Errorf("Returned record aliased store state: median = %f", again.EnsembleMedian)
	}
}

func TestForecastStore_ConcurrentInsert(t *testing.T) {
	store := NewForecastStore()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			r := testRecord(string(rune('a'+n%26))+string(rune('0'+n/26)), "asset-001", 1, int64(n))
			_ = store.Insert(ctx, r)
		}(i)
	}
	wg.Wait()

	got, err := store.GetAll(ctx)
	if err != nil {
		t.Fatalf("GetAll failed: %v", err)
	}
	if len(got) == 0 {
		t.Error("Expected records after concurrent inserts")
	}
}
