package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/GauravTheBeginner/event-backend/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type EventRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewEventRepo(db *dbpg.DB) *EventRepository {
	return &EventRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

const eventColumns = `id, name, description, category, event_date, location, city, venue,
		address, price, image, booking_url, origin, is_public, created_by_id, created_at, updated_at`

// CreateWithChat persists the event and, when chat is non-nil, the chat
// room plus the creator's membership in one transaction. Bulk-origin
// events pass chat == nil and get no room.
func (r *EventRepository) CreateWithChat(ctx context.Context, e *domain.Event, chat *domain.Chat) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return classifyStoreErr(fmt.Errorf("begin tx: %w", err))
	}
	defer tx.Rollback()

	query := `INSERT INTO events (` + eventColumns + `)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)`
	_, err = tx.ExecContext(
		ctx, query,
		e.ID, e.Name, e.Description, e.Category, e.Date, e.Location, e.City, e.Venue,
		e.Address, e.Price, e.Image, e.BookingURL, e.Origin, e.IsPublic, e.CreatedByID,
		e.CreatedAt, e.UpdatedAt,
	)
	if err != nil {
		return classifyStoreErr(fmt.Errorf("insert event: %w", err))
	}

	if chat != nil {
		chatQuery := `INSERT INTO chats (id, event_id, event_name, expires_at, created_at)
					  VALUES ($1, $2, $3, $4, $5)`
		if _, err = tx.ExecContext(
			ctx, chatQuery,
			chat.ID, chat.EventID, chat.EventName, chat.ExpiresAt, chat.CreatedAt,
		); err != nil {
			return classifyStoreErr(fmt.Errorf("insert chat: %w", err))
		}

		memberQuery := `INSERT INTO chat_members (chat_id, user_id, joined_at)
						VALUES ($1, $2, $3)`
		if _, err = tx.ExecContext(ctx, memberQuery, chat.ID, e.CreatedByID, chat.CreatedAt); err != nil {
			return classifyStoreErr(fmt.Errorf("insert creator membership: %w", err))
		}
	}

	if err = tx.Commit(); err != nil {
		return classifyStoreErr(fmt.Errorf("commit: %w", err))
	}
	return nil
}

func (r *EventRepository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	query := `SELECT ` + eventColumns + `
			  FROM events
			  WHERE id=$1`
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}

	e, err := scanEvent(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrEventNotFound
		}
		return nil, fmt.Errorf("scan event: %w", err)
	}

	return e, nil
}

func (r *EventRepository) List(ctx context.Context, f domain.EventFilter) ([]*domain.Event, error) {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.Limit < 1 {
		f.Limit = 20
	}

	query := `SELECT ` + eventColumns + `
			  FROM events
			  WHERE is_public = TRUE
			    AND ($1 = '' OR category ILIKE '%' || $1 || '%')
			    AND ($2 = '' OR city ILIKE '%' || $2 || '%')
			    AND ($3 = '' OR name ILIKE '%' || $3 || '%' OR description ILIKE '%' || $3 || '%')
			  ORDER BY event_date ASC NULLS LAST
			  LIMIT $4 OFFSET $5`

	rows, err := r.db.QueryWithRetry(
		ctx, r.strategy, query,
		f.Category, f.City, f.Search, f.Limit, (f.Page-1)*f.Limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	defer rows.Close()

	var res []*domain.Event
	for rows.Next() {
		e, err := scanEvent(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		res = append(res, e)
	}

	return res, rows.Err()
}

// Update persists the already-merged event row. When touchChat is set the
// owning chat's expiry moves to chatExpiry in the same transaction, so a
// concurrent reader never sees a new date with a stale expiry.
func (r *EventRepository) Update(ctx context.Context, e *domain.Event, chatExpiry *time.Time, touchChat bool) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return classifyStoreErr(fmt.Errorf("begin tx: %w", err))
	}
	defer tx.Rollback()

	query := `UPDATE events
			  SET name=$2, description=$3, category=$4, event_date=$5, location=$6, city=$7,
			      venue=$8, address=$9, price=$10, image=$11, booking_url=$12, is_public=$13,
			      updated_at=$14
			  WHERE id=$1`
	res, err := tx.ExecContext(
		ctx, query,
		e.ID, e.Name, e.Description, e.Category, e.Date, e.Location, e.City,
		e.Venue, e.Address, e.Price, e.Image, e.BookingURL, e.IsPublic, e.UpdatedAt,
	)
	if err != nil {
		return classifyStoreErr(fmt.Errorf("update event: %w", err))
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrEventNotFound
	}

	if touchChat {
		chatQuery := `UPDATE chats SET expires_at=$2 WHERE event_id=$1`
		if _, err = tx.ExecContext(ctx, chatQuery, e.ID, chatExpiry); err != nil {
			return classifyStoreErr(fmt.Errorf("update chat expiry: %w", err))
		}
	}

	if err = tx.Commit(); err != nil {
		return classifyStoreErr(fmt.Errorf("commit: %w", err))
	}
	return nil
}

// Delete removes the event; the schema cascades to its chat, bookings and
// wishlist entries, and through the chat to members and messages.
func (r *EventRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM events WHERE id=$1`
	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return classifyStoreErr(fmt.Errorf("delete event: %w", err))
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrEventNotFound
	}

	return nil
}

func scanEvent(scan func(dest ...any) error) (*domain.Event, error) {
	var e domain.Event
	var date sql.NullTime
	if err := scan(
		&e.ID, &e.Name, &e.Description, &e.Category, &date, &e.Location, &e.City, &e.Venue,
		&e.Address, &e.Price, &e.Image, &e.BookingURL, &e.Origin, &e.IsPublic, &e.CreatedByID,
		&e.CreatedAt, &e.UpdatedAt,
	); err != nil {
		return nil, err
	}
	if date.Valid {
		e.Date = &date.Time
	}
	return &e, nil
}
