package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GauravTheBeginner/event-backend/internal/config"
	"github.com/GauravTheBeginner/event-backend/internal/domain"
)

// fakeCreator records every create call and answers from a script keyed
// by event name.
type fakeCreator struct {
	mu       sync.Mutex
	calls    []string
	failures map[string]error
	// failOnce fails the first attempt per name, then succeeds.
	failOnce map[string]error
}

func newFakeCreator() *fakeCreator {
	return &fakeCreator{
		failures: map[string]error{},
		failOnce: map[string]error{},
	}
}

func (f *fakeCreator) Create(_ context.Context, _ string, input domain.CreateEventInput) (*domain.CreatedEvent, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, input.Name)

	if err, ok := f.failOnce[input.Name]; ok {
		delete(f.failOnce, input.Name)
		return nil, err
	}
	if err, ok := f.failures[input.Name]; ok {
		return nil, err
	}
	return &domain.CreatedEvent{
		Event: &domain.Event{ID: "id-" + input.Name, Name: input.Name},
	}, nil
}

func (f *fakeCreator) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

func testIngestConfig() config.IngestConfig {
	return config.IngestConfig{
		BatchSize:     3,
		BatchDelay:    3 * time.Second,
		RetryAttempts: 2,
		RetryDelay:    2 * time.Second,
	}
}

func newIngestFixture(t *testing.T, creator *fakeCreator) (*IngestService, *[]time.Duration) {
	svc := NewIngestService(creator, testIngestConfig(), newTestLogger(t))
	sleeps := &[]time.Duration{}
	var mu sync.Mutex
	svc.sleep = func(d time.Duration) {
		mu.Lock()
		defer mu.Unlock()
		*sleeps = append(*sleeps, d)
	}
	return svc, sleeps
}

func records(n int) []domain.RawEventRecord {
	out := make([]domain.RawEventRecord, n)
	for i := range out {
		out[i] = domain.RawEventRecord{"name": fmt.Sprintf("event-%d", i)}
	}
	return out
}

func TestIngestService_BatchesWithCooldown(t *testing.T) {
	creator := newFakeCreator()
	svc, sleeps := newIngestFixture(t, creator)

	summary := svc.Ingest(context.Background(), "actor", records(7))

	assert.Equal(t, 7, summary.CreatedCount())
	assert.Equal(t, 0, summary.FailedCount())
	assert.Equal(t, 7, creator.callCount())

	// 7 records in batches of 3 make three batches: two cooldowns, none
	// after the last batch.
	require.Len(t, *sleeps, 2)
	assert.Equal(t, 3*time.Second, (*sleeps)[0])
	assert.Equal(t, 3*time.Second, (*sleeps)[1])
}

func TestIngestService_SingleBatchNoCooldown(t *testing.T) {
	creator := newFakeCreator()
	svc, sleeps := newIngestFixture(t, creator)

	summary := svc.Ingest(context.Background(), "actor", records(3))

	assert.Equal(t, 3, summary.CreatedCount())
	assert.Empty(t, *sleeps)
}

func TestIngestService_RowNumbersSkipHeader(t *testing.T) {
	creator := newFakeCreator()
	svc, _ := newIngestFixture(t, creator)

	summary := svc.Ingest(context.Background(), "actor", records(2))

	require.Len(t, summary.Successful, 2)
	assert.Equal(t, 2, summary.Successful[0].Row)
	assert.Equal(t, 3, summary.Successful[1].Row)
}

func TestIngestService_FailureIsolation(t *testing.T) {
	creator := newFakeCreator()
	creator.failures["event-1"] = errors.New("duplicate name")
	svc, _ := newIngestFixture(t, creator)

	summary := svc.Ingest(context.Background(), "actor", records(3))

	assert.Equal(t, 2, summary.CreatedCount())
	require.Len(t, summary.Failed, 1)
	assert.Equal(t, 3, summary.Failed[0].Row)
	assert.Equal(t, "event-1", summary.Failed[0].Name)
	assert.Contains(t, summary.Failed[0].Error, "duplicate name")
}

func TestIngestService_RetriesTransientErrors(t *testing.T) {
	creator := newFakeCreator()
	creator.failOnce["event-0"] = fmt.Errorf("insert: %w", domain.ErrStoreBusy)
	svc, sleeps := newIngestFixture(t, creator)

	summary := svc.Ingest(context.Background(), "actor", records(1))

	assert.Equal(t, 1, summary.CreatedCount())
	assert.Equal(t, 2, creator.callCount())
	require.Len(t, *sleeps, 1)
	assert.Equal(t, 2*time.Second, (*sleeps)[0])
}

func TestIngestService_PermanentErrorNotRetried(t *testing.T) {
	creator := newFakeCreator()
	creator.failures["event-0"] = fmt.Errorf("%w: bad input", domain.ErrValidation)
	svc, sleeps := newIngestFixture(t, creator)

	summary := svc.Ingest(context.Background(), "actor", records(1))

	assert.Equal(t, 1, summary.FailedCount())
	assert.Equal(t, 1, creator.callCount())
	assert.Empty(t, *sleeps)
}

func TestIngestService_RetryBudgetExhausted(t *testing.T) {
	creator := newFakeCreator()
	creator.failures["event-0"] = fmt.Errorf("insert: %w", domain.ErrStoreBusy)
	svc, _ := newIngestFixture(t, creator)

	summary := svc.Ingest(context.Background(), "actor", records(1))

	assert.Equal(t, 1, summary.FailedCount())
	// Initial attempt plus two retries.
	assert.Equal(t, 3, creator.callCount())
}

func TestNormalizeRecord_CleansKeysAndDefaults(t *testing.T) {
	input, name, err := normalizeRecord(domain.RawEventRecord{
		`"name"`:   "  Jazz Night  ",
		"'city'":   "Berlin",
		"category": "music",
	})

	require.NoError(t, err)
	assert.Equal(t, "Jazz Night", name)
	assert.Equal(t, "Jazz Night", input.Name)
	assert.Equal(t, "Berlin", input.City)
	assert.Equal(t, domain.OriginBulkFile, input.Origin)
}

func TestNormalizeRecord_NamelessFallsBackToUnknown(t *testing.T) {
	input, name, err := normalizeRecord(domain.RawEventRecord{"city": "Berlin"})

	require.NoError(t, err)
	assert.Equal(t, "Unknown", name)
	assert.Empty(t, input.Name)
}

func TestNormalizeRecord_KeepsCrawlOrigin(t *testing.T) {
	input, _, err := normalizeRecord(domain.RawEventRecord{
		"name":   "Scraped",
		"origin": string(domain.OriginCrawl),
	})

	require.NoError(t, err)
	assert.Equal(t, domain.OriginCrawl, input.Origin)
}

func TestNormalizeRecord_InteractiveOriginOverridden(t *testing.T) {
	// A file cannot mint interactive events.
	input, _, err := normalizeRecord(domain.RawEventRecord{
		"name":   "Sneaky",
		"origin": string(domain.OriginInteractive),
	})

	require.NoError(t, err)
	assert.Equal(t, domain.OriginBulkFile, input.Origin)
}

func TestNormalizeRecord_DateLayouts(t *testing.T) {
	for _, raw := range []string{"2026-10-10T19:00:00Z", "2026-10-10 19:00", "2026-10-10"} {
		input, _, err := normalizeRecord(domain.RawEventRecord{"name": "n", "date": raw})
		require.NoError(t, err, raw)
		require.NotNil(t, input.Date, raw)
	}
}

func TestNormalizeRecord_BadDateIsValidationError(t *testing.T) {
	_, name, err := normalizeRecord(domain.RawEventRecord{"name": "n", "date": "next tuesday"})

	assert.Equal(t, "n", name)
	assert.ErrorIs(t, err, domain.ErrValidation)
}
