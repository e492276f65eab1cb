package commands

import (
	"context"
	"time"

	"giggo-server/internal/domain/booking"
	"giggo-server/internal/domain/listing"
	"giggo-server/internal/infra"

	"github.com/google/uuid"
)

type UserRepository interface {
	Create(ctx context.Context, email, passwordHash, displayName string) (uuid.UUID, error)
	UpdateLastLogin(ctx context.Context, id uuid.UUID) error
}

type BookingRepository interface {
	Create(ctx context.Context, db infra.DBTX, b *booking.Booking) error
}

type IdempotencyRepository interface {
	// TryInsert claims the key for this request. It reports true when the key
	// was fresh (or expired and reclaimed); false means another request holds
	// or held it, and the caller must read the record to decide replay vs
	// conflict.
	TryInsert(ctx context.Context, key, userID uuid.UUID, endpoint, requestHash string, expiresAt time.Time) (bool, error)
	Get(ctx context.Context, key, userID uuid.UUID) (*IdempotencyRecord, error)
	MarkCompleted(ctx context.Context, db infra.DBTX, key, userID, resultBookingID uuid.UUID) error
}

// Catalog is the write side's view of the listing catalog. Lookups are by the
// catalog's own string IDs, not UUIDs.
type Catalog interface {
	FindByID(id string) (*listing.Listing, bool)
}

type IdempotencyRecord struct {
	Key             uuid.UUID
	UserID          uuid.UUID
	Status          string
	RequestHash     string
	ResultBookingID *uuid.UUID
	ExpiresAt       time.Time
}
