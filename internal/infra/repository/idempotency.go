package repository

import (
	"context"
	"time"

	"giggo-server/internal/infra"
	"giggo-server/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type IdempotencyRepository struct {
	db *pgxpool.Pool
}

func NewIdempotencyRepository(db *pgxpool.Pool) *IdempotencyRepository {
	return &IdempotencyRepository{db: db}
}

// TryInsert claims the key in "processing" state. A live key is left alone
// and the claim reports false; an expired key is reclaimed for the new
// request as if it were fresh. Zero affected rows means the key pre-exists
// and is still live.
func (r *IdempotencyRepository) TryInsert(ctx context.Context, key, userID uuid.UUID, endpoint, requestHash string, expiresAt time.Time) (bool, error) {
	tag, err := r.db.Exec(ctx, `
		INSERT INTO idempotency_keys (key, user_id, endpoint, request_hash, status, expires_at)
		VALUES ($1, $2, $3, $4, 'processing', $5)
		ON CONFLICT (key, user_id) DO UPDATE
		SET endpoint = EXCLUDED.endpoint,
		    request_hash = EXCLUDED.request_hash,
		    status = 'processing',
		    result_booking_id = NULL,
		    expires_at = EXCLUDED.expires_at,
		    updated_at = now()
		WHERE idempotency_keys.expires_at <= now()`,
		key, userID, endpoint, requestHash, expiresAt,
	)
	if err != nil {
		return false, infra.WrapRepoErr("failed to insert idempotency key", err)
	}
	return tag.RowsAffected() == 1, nil
}

func (r *IdempotencyRepository) Get(ctx context.Context, key, userID uuid.UUID) (*commands.IdempotencyRecord, error) {
	var rec commands.IdempotencyRecord
	err := r.db.QueryRow(ctx, `
		SELECT key, user_id, status, request_hash, result_booking_id, expires_at
		FROM idempotency_keys
		WHERE key = $1 AND user_id = $2`,
		key, userID,
	).Scan(&rec.Key, &rec.UserID, &rec.Status, &rec.RequestHash, &rec.ResultBookingID, &rec.ExpiresAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, infra.WrapRepoErr("idempotency key not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get idempotency key", err)
	}

	return &rec, nil
}

func (r *IdempotencyRepository) MarkCompleted(ctx context.Context, db infra.DBTX, key, userID, resultBookingID uuid.UUID) error {
	tag, err := db.Exec(ctx, `
		UPDATE idempotency_keys
		SET status = 'completed', result_booking_id = $3, updated_at = now()
		WHERE key = $1 AND user_id = $2`,
		key, userID, resultBookingID,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to complete idempotency key", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("idempotency key disappeared", nil, infra.KindNotFound)
	}
	return nil
}

// DeleteExpired purges keys whose retention window has passed. TryInsert
// already reclaims expired keys on collision, so this is storage hygiene
// rather than correctness.
func (r *IdempotencyRepository) DeleteExpired(ctx context.Context) (int64, error) {
	tag, err := r.db.Exec(ctx, `
		DELETE FROM idempotency_keys WHERE expires_at <= now()`)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to delete expired idempotency keys", err)
	}
	return tag.RowsAffected(), nil
}

var _ commands.IdempotencyRepository = (*IdempotencyRepository)(nil)
