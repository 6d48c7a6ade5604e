package service

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/GauravTheBeginner/event-backend/internal/config"
	"github.com/GauravTheBeginner/event-backend/internal/domain"
	"github.com/wb-go/wbf/logger"
)

// headerRowOffset converts a 0-based record index into the row number of
// the source file: row 1 is the header, data starts at row 2.
const headerRowOffset = 2

var ingestDateLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04",
	"2006-01-02",
}

type eventCreator interface {
	Create(ctx context.Context, creatorID string, input domain.CreateEventInput) (*domain.CreatedEvent, error)
}

// IngestService drives untrusted bulk records through the event store.
// Records run concurrently in fixed-size batches with a cooldown between
// batches: the shared connection pool is finite, and a large import must
// not starve interactive traffic. One record's failure never blocks the
// rest.
type IngestService struct {
	events eventCreator
	cfg    config.IngestConfig
	logger logger.Logger

	// sleep is swapped out in tests.
	sleep func(d time.Duration)
}

func NewIngestService(events eventCreator, cfg config.IngestConfig, logger logger.Logger) *IngestService {
	return &IngestService{
		events: events,
		cfg:    cfg,
		logger: logger,
		sleep:  time.Sleep,
	}
}

// Ingest processes the whole batch under a single actor identity and
// accounts for every record: each one resolves to exactly one entry in
// the summary, in original row order.
func (s *IngestService) Ingest(ctx context.Context, actorID string, records []domain.RawEventRecord) *domain.IngestSummary {
	type outcome struct {
		eventID string
		err     error
		name    string
	}
	outcomes := make([]outcome, len(records))

	for start := 0; start < len(records); start += s.cfg.BatchSize {
		if start > 0 {
			// Cooldown between batches, not after the last one.
			s.sleep(s.cfg.BatchDelay)
		}

		end := start + s.cfg.BatchSize
		if end > len(records) {
			end = len(records)
		}

		var wg sync.WaitGroup
		for i := start; i < end; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				input, name, err := normalizeRecord(records[i])
				outcomes[i].name = name
				if err != nil {
					outcomes[i].err = err
					return
				}
				created, err := s.createWithRetry(ctx, actorID, input)
				if err != nil {
					outcomes[i].err = err
					return
				}
				outcomes[i].eventID = created.Event.ID
			}(i)
		}
		wg.Wait()
	}

	summary := &domain.IngestSummary{
		Successful: []domain.IngestSuccess{},
		Failed:     []domain.IngestFailure{},
	}
	for i, o := range outcomes {
		row := i + headerRowOffset
		if o.err != nil {
			summary.Failed = append(summary.Failed, domain.IngestFailure{
				Row:   row,
				Name:  o.name,
				Error: o.err.Error(),
			})
			continue
		}
		summary.Successful = append(summary.Successful, domain.IngestSuccess{
			Row:     row,
			Name:    o.name,
			EventID: o.eventID,
		})
	}

	s.logger.Info("bulk ingestion completed",
		logger.Int("created", summary.CreatedCount()),
		logger.Int("failed", summary.FailedCount()),
		logger.String("actor_id", actorID),
	)

	return summary
}

// createWithRetry retries transient storage failures within a fixed
// budget; validation and constraint failures are permanent and fail the
// record immediately.
func (s *IngestService) createWithRetry(ctx context.Context, actorID string, input domain.CreateEventInput) (*domain.CreatedEvent, error) {
	var lastErr error
	for attempt := 0; attempt <= s.cfg.RetryAttempts; attempt++ {
		if attempt > 0 {
			s.sleep(s.cfg.RetryDelay)
			s.logger.Warn("retrying bulk record",
				logger.String("name", input.Name),
				logger.Int("attempt", attempt),
			)
		}

		created, err := s.events.Create(ctx, actorID, input)
		if err == nil {
			return created, nil
		}
		lastErr = err
		if !errors.Is(err, domain.ErrStoreBusy) {
			break
		}
	}
	return nil, lastErr
}

// normalizeRecord cleans sloppy export noise from the record's keys
// (stray quotes, whitespace) and maps it onto a create input. Origin is
// forced to a bulk tag unless the source tagged it explicitly.
func normalizeRecord(rec domain.RawEventRecord) (domain.CreateEventInput, string, error) {
	cleaned := make(map[string]string, len(rec))
	for key, value := range rec {
		cleanKey := strings.TrimSpace(strings.NewReplacer(`"`, "", `'`, "").Replace(key))
		cleaned[cleanKey] = strings.TrimSpace(value)
	}

	name := cleaned["name"]
	if name == "" {
		name = "Unknown"
	}

	input := domain.CreateEventInput{
		Name:        cleaned["name"],
		Description: cleaned["description"],
		Category:    cleaned["category"],
		Location:    cleaned["location"],
		City:        cleaned["city"],
		Venue:       cleaned["venue"],
		Address:     cleaned["address"],
		Price:       cleaned["price"],
		Image:       cleaned["image"],
		BookingURL:  cleaned["booking_url"],
		Origin:      domain.OriginBulkFile,
	}

	if origin := domain.Origin(cleaned["origin"]); origin.Bulk() {
		input.Origin = origin
	}

	if raw := cleaned["date"]; raw != "" {
		date, err := parseIngestDate(raw)
		if err != nil {
			return domain.CreateEventInput{}, name, err
		}
		input.Date = &date
	}

	if raw := cleaned["is_public"]; raw != "" {
		if public, err := strconv.ParseBool(raw); err == nil {
			input.IsPublic = &public
		}
	}

	return input, name, nil
}

func parseIngestDate(raw string) (time.Time, error) {
	for _, layout := range ingestDateLayouts {
		if date, err := time.Parse(layout, raw); err == nil {
			return date, nil
		}
	}
	return time.Time{}, &invalidDateError{raw: raw}
}

type invalidDateError struct {
	raw string
}

func (e *invalidDateError) Error() string {
	return "invalid date: " + e.raw
}

func (e *invalidDateError) Is(target error) bool {
	return target == domain.ErrValidation
}
