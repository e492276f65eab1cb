package repository

import (
	"context"
	"errors"

	"giggo-server/internal/domain/booking"
	"giggo-server/internal/infra"
	"giggo-server/internal/usecase/commands"

	"github.com/jackc/pgx/v5/pgconn"
)

type BookingRepository struct{}

func NewBookingRepository() *BookingRepository {
	return &BookingRepository{}
}

func (r *BookingRepository) Create(ctx context.Context, db infra.DBTX, b *booking.Booking) error {
	_, err := db.Exec(ctx, `
		INSERT INTO bookings (
			id, user_id, listing_id, title, provider_name,
			price_rupees, booking_date, booking_time, address,
			payment_method, status, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
		b.ID(), b.UserID(), b.ListingID(), b.Title(), b.ProviderName(),
		b.Price().Rupees(), b.Date(), b.TimeSlot(), b.Address().String(),
		b.Payment().String(), b.Status().String(), b.CreatedAt(),
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgErrCodeUniqueViolation {
			return infra.WrapRepoErr("booking already exists", err, infra.KindConflict)
		}
		return infra.WrapRepoErr("failed to create booking", err)
	}

	return nil
}

var _ commands.BookingRepository = (*BookingRepository)(nil)
