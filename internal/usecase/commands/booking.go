package commands

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"giggo-server/internal/domain/booking"
	reqdto "giggo-server/internal/handler/dto/request"
	"giggo-server/internal/infra"
	"giggo-server/internal/pkg/clock"
	"giggo-server/internal/pkg/errs"
	"giggo-server/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrListingNotFound         = errs.New("listing not found")
	ErrDuplicateBooking        = errs.New("duplicate booking")
	ErrIdempotencyInProgress   = errs.New("idempotency in progress")
	ErrIdempotencyCheckFailed  = errs.New("idempotency check failed")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

type CreateBookingResult struct {
	Booking    *queries.BookingView
	IsReplayed bool
}

type BookingCommands interface {
	CreateBooking(ctx context.Context, req reqdto.CreateBookingRequest, userID uuid.UUID, idempotencyKey uuid.UUID) (*CreateBookingResult, error)
}

type bookingCommandsImpl struct {
	bookingRepo     BookingRepository
	idempotencyRepo IdempotencyRepository
	catalog         Catalog
	bookingFactory  *booking.Factory
	bookingQueries  queries.BookingQueries
	db              *pgxpool.Pool
	clock           clock.Clock
}

func NewBookingCommands(
	bookingRepo BookingRepository,
	idempotencyRepo IdempotencyRepository,
	catalog Catalog,
	bookingFactory *booking.Factory,
	bookingQueries queries.BookingQueries,
	db *pgxpool.Pool,
	clock clock.Clock,
) BookingCommands {
	return &bookingCommandsImpl{
		bookingRepo:     bookingRepo,
		idempotencyRepo: idempotencyRepo,
		catalog:         catalog,
		bookingFactory:  bookingFactory,
		bookingQueries:  bookingQueries,
		db:              db,
		clock:           clock,
	}
}

func (b *bookingCommandsImpl) CreateBooking(
	ctx context.Context,
	req reqdto.CreateBookingRequest,
	userID uuid.UUID,
	idempotencyKey uuid.UUID,
) (*CreateBookingResult, error) {
	requestHash := b.calculateRequestHash(req)
	expiresAt := b.clock.Now().Add(24 * time.Hour)

	existing, err := b.handleIdempotency(ctx, idempotencyKey, userID, requestHash, expiresAt)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return &CreateBookingResult{Booking: existing, IsReplayed: true}, nil
	}

	bookingView, err := b.createNewBooking(ctx, req, userID, idempotencyKey)
	if err != nil {
		return nil, err
	}
	return &CreateBookingResult{Booking: bookingView, IsReplayed: false}, nil
}

func (b *bookingCommandsImpl) handleIdempotency(
	ctx context.Context,
	idempotencyKey, userID uuid.UUID,
	requestHash string,
	expiresAt time.Time,
) (*queries.BookingView, error) {
	inserted, err := b.idempotencyRepo.TryInsert(ctx, idempotencyKey, userID, "POST /bookings", requestHash, expiresAt)
	if err != nil {
		return nil, errs.Mark(err, ErrIdempotencyCheckFailed)
	}
	if inserted {
		// Fresh claim: this request owns the key and proceeds to create
		return nil, nil
	}

	existing, err := b.idempotencyRepo.Get(ctx, idempotencyKey, userID)
	if err != nil {
		return nil, errs.Mark(err, ErrIdempotencyCheckFailed)
	}

	switch existing.Status {
	case "completed":
		if existing.ResultBookingID != nil {
			return b.bookingQueries.GetByIDSystem(ctx, *existing.ResultBookingID)
		}
		return nil, errs.New("completed request missing result booking ID")

	case "processing":
		if existing.RequestHash != requestHash {
			return nil, ErrDuplicateBooking
		}
		return nil, ErrIdempotencyInProgress

	default:
		return nil, errs.New("invalid idempotency key status")
	}
}

func (b *bookingCommandsImpl) createNewBooking(
	ctx context.Context,
	req reqdto.CreateBookingRequest,
	userID, idempotencyKey uuid.UUID,
) (*queries.BookingView, error) {
	listingEntity, ok := b.catalog.FindByID(req.ListingID)
	if !ok {
		return nil, ErrListingNotFound
	}

	draft, err := req.ToDomain()
	if err != nil {
		return nil, err
	}

	bookingEntity, err := b.bookingFactory.CreateBooking(listingEntity, userID, draft)
	if err != nil {
		return nil, err
	}

	return b.executeBookingTransaction(ctx, bookingEntity, idempotencyKey, userID)
}

func (b *bookingCommandsImpl) executeBookingTransaction(
	ctx context.Context,
	bookingEntity *booking.Booking,
	idempotencyKey, userID uuid.UUID,
) (*queries.BookingView, error) {
	tx, err := b.db.Begin(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	defer func() {
		if rollbackErr := tx.Rollback(ctx); rollbackErr != nil && !errors.Is(rollbackErr, pgx.ErrTxClosed) {
			slog.Warn("failed to rollback transaction", "error", rollbackErr)
		}
	}()

	if err := b.bookingRepo.Create(ctx, tx, bookingEntity); err != nil {
		if infra.IsKind(err, infra.KindConflict) {
			return nil, ErrDuplicateBooking
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if err := b.idempotencyRepo.MarkCompleted(ctx, tx, idempotencyKey, userID, bookingEntity.ID()); err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if commitErr := tx.Commit(ctx); commitErr != nil {
		return nil, errs.Mark(commitErr, ErrDatabaseOperationFailed)
	}

	// Read-after-write so the response is built from the same view the
	// replay path serves
	bookingView, err := b.bookingQueries.GetByIDSystem(ctx, bookingEntity.ID())
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return bookingView, nil
}

func (b *bookingCommandsImpl) calculateRequestHash(req reqdto.CreateBookingRequest) string {
	data, _ := json.Marshal(req)
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}
