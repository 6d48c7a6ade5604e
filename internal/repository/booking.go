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

type BookingRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewBookingRepo(db *dbpg.DB) *BookingRepository {
	return &BookingRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

// Book creates the booking and grants chat membership in one transaction.
// Duplicates are detected by the (user_id, event_id) unique constraint
// rather than a pre-check: ON CONFLICT DO NOTHING returning no row means
// someone got there first, and the existing booking is read back instead.
// chatID is empty for bulk-origin events, which have no room to join.
func (r *BookingRepository) Book(ctx context.Context, b *domain.Booking, chatID string) (*domain.BookingResult, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, classifyStoreErr(fmt.Errorf("begin tx: %w", err))
	}
	defer tx.Rollback()

	res := &domain.BookingResult{Booking: b}

	insert := `INSERT INTO bookings (id, event_id, user_id, qty, total_price, created_at)
			   VALUES ($1, $2, $3, $4, $5, $6)
			   ON CONFLICT (user_id, event_id) DO NOTHING
			   RETURNING id`
	var insertedID string
	err = tx.QueryRowContext(
		ctx, insert,
		b.ID, b.EventID, b.UserID, b.Qty, b.TotalPrice, b.CreatedAt,
	).Scan(&insertedID)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		// Duplicate attempt: fetch what the winner committed.
		existing := `SELECT id, event_id, user_id, qty, total_price, created_at
					 FROM bookings
					 WHERE user_id=$1 AND event_id=$2`
		var prev domain.Booking
		if err = tx.QueryRowContext(ctx, existing, b.UserID, b.EventID).Scan(
			&prev.ID, &prev.EventID, &prev.UserID, &prev.Qty, &prev.TotalPrice, &prev.CreatedAt,
		); err != nil {
			return nil, classifyStoreErr(fmt.Errorf("fetch existing booking: %w", err))
		}
		res.Booking = &prev
		res.AlreadyBooked = true
	case err != nil:
		return nil, classifyStoreErr(fmt.Errorf("insert booking: %w", err))
	}

	if chatID != "" {
		// Idempotent on the (chat_id, user_id) key: the creator is already
		// a member, and the duplicate path re-attempts to heal a missing
		// membership.
		member := `INSERT INTO chat_members (chat_id, user_id, joined_at)
				   VALUES ($1, $2, $3)
				   ON CONFLICT (chat_id, user_id) DO NOTHING`
		memberRes, err := tx.ExecContext(ctx, member, chatID, b.UserID, time.Now().UTC())
		if err != nil {
			return nil, classifyStoreErr(fmt.Errorf("insert membership: %w", err))
		}
		added, err := memberRes.RowsAffected()
		if err != nil {
			return nil, fmt.Errorf("membership rows affected: %w", err)
		}
		res.AddedToChat = added > 0
	}

	if err = tx.Commit(); err != nil {
		return nil, classifyStoreErr(fmt.Errorf("commit: %w", err))
	}
	return res, nil
}

// Cancel deletes the user's booking and, unless the user created the
// event, their chat membership with it. A booking owned by someone else
// is reported as not found.
func (r *BookingRepository) Cancel(ctx context.Context, bookingID, userID string) (*domain.Booking, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, classifyStoreErr(fmt.Errorf("begin tx: %w", err))
	}
	defer tx.Rollback()

	query := `SELECT b.id, b.event_id, b.user_id, b.qty, b.total_price, b.created_at,
					 e.created_by_id, COALESCE(c.id::text, '')
			  FROM bookings b
			  JOIN events e ON e.id = b.event_id
			  LEFT JOIN chats c ON c.event_id = e.id
			  WHERE b.id=$1 AND b.user_id=$2`
	var b domain.Booking
	var creatorID, chatID string
	if err = tx.QueryRowContext(ctx, query, bookingID, userID).Scan(
		&b.ID, &b.EventID, &b.UserID, &b.Qty, &b.TotalPrice, &b.CreatedAt,
		&creatorID, &chatID,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, classifyStoreErr(fmt.Errorf("get booking: %w", err))
	}

	if _, err = tx.ExecContext(ctx, `DELETE FROM bookings WHERE id=$1`, bookingID); err != nil {
		return nil, classifyStoreErr(fmt.Errorf("delete booking: %w", err))
	}

	// Creators keep their room: their membership follows the event's
	// existence, not any booking they may hold.
	if creatorID != userID && chatID != "" {
		del := `DELETE FROM chat_members WHERE chat_id=$1 AND user_id=$2`
		if _, err = tx.ExecContext(ctx, del, chatID, userID); err != nil {
			return nil, classifyStoreErr(fmt.Errorf("delete membership: %w", err))
		}
	}

	if err = tx.Commit(); err != nil {
		return nil, classifyStoreErr(fmt.Errorf("commit: %w", err))
	}
	return &b, nil
}

func (r *BookingRepository) ListByUser(ctx context.Context, userID string) ([]*domain.Booking, error) {
	query := `SELECT id, event_id, user_id, qty, total_price, created_at
			  FROM bookings
			  WHERE user_id = $1
			  ORDER BY created_at DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list bookings by user: %w", err)
	}
	defer rows.Close()

	var res []*domain.Booking
	for rows.Next() {
		var b domain.Booking
		if err = rows.Scan(&b.ID, &b.EventID, &b.UserID, &b.Qty, &b.TotalPrice, &b.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan booking: %w", err)
		}
		res = append(res, &b)
	}

	return res, rows.Err()
}
