package readstore

import (
	"context"
	"errors"

	"giggo-server/internal/infra"
	"giggo-server/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type BookingReadStore struct {
	db *pgxpool.Pool
}

func NewBookingReadStore(db *pgxpool.Pool) *BookingReadStore {
	return &BookingReadStore{db: db}
}

func (r *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	var view queries.BookingView
	err := r.db.QueryRow(ctx, `
		SELECT id, user_id, listing_id, title, provider_name, price_rupees,
		       to_char(booking_date, 'YYYY-MM-DD'), booking_time, address,
		       payment_method, status, created_at
		FROM bookings
		WHERE id = $1`,
		id,
	).Scan(
		&view.ID, &view.UserID, &view.ListingID, &view.Title, &view.ProviderName,
		&view.PriceRupees, &view.BookingDate, &view.BookingTime, &view.Address,
		&view.PaymentMethod, &view.Status, &view.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking by ID", err)
	}

	return &view, nil
}

// FindByUserID returns the user's bookings newest first.
func (r *BookingReadStore) FindByUserID(ctx context.Context, userID uuid.UUID) ([]queries.BookingListItem, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, title, to_char(booking_date, 'YYYY-MM-DD'), booking_time,
		       price_rupees, status, created_at
		FROM bookings
		WHERE user_id = $1
		ORDER BY created_at DESC, id DESC`,
		userID,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings", err)
	}
	defer rows.Close()

	items := make([]queries.BookingListItem, 0)
	for rows.Next() {
		var item queries.BookingListItem
		if err := rows.Scan(
			&item.ID, &item.Title, &item.BookingDate, &item.BookingTime,
			&item.PriceRupees, &item.Status, &item.CreatedAt,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking row", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate booking rows", err)
	}

	return items, nil
}

func (r *BookingReadStore) StatsByUserID(ctx context.Context, userID uuid.UUID) (*queries.BookingStats, error) {
	var stats queries.BookingStats
	err := r.db.QueryRow(ctx, `
		SELECT count(*), coalesce(sum(price_rupees), 0)
		FROM bookings
		WHERE user_id = $1`,
		userID,
	).Scan(&stats.TotalBookings, &stats.TotalSpentRupees)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to aggregate booking stats", err)
	}

	return &stats, nil
}
