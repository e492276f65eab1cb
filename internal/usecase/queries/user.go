package queries

import (
	"context"

	"giggo-server/internal/infra"
	"giggo-server/internal/pkg/errs"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

var ErrUserNotFound = errs.New("user not found")

// ProfileView joins account data with booking activity for the profile
// screen.
type ProfileView struct {
	User  AuthorizedUserView `json:"user"`
	Stats BookingStats       `json:"stats"`
}

type UserQueries interface {
	GetCurrentUser(ctx context.Context, userID uuid.UUID) (*AuthorizedUserView, error)
	GetProfile(ctx context.Context, userID uuid.UUID) (*ProfileView, error)
}

type UserReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*AuthorizedUserView, error)
	FindByEmail(ctx context.Context, email string) (*AuthorizedUserView, string, error)
}

type userQueriesImpl struct {
	userStore    UserReadStore
	bookingStore BookingReadStore
}

func NewUserQueries(userStore UserReadStore, bookingStore BookingReadStore) UserQueries {
	return &userQueriesImpl{
		userStore:    userStore,
		bookingStore: bookingStore,
	}
}

func (q *userQueriesImpl) GetCurrentUser(ctx context.Context, userID uuid.UUID) (*AuthorizedUserView, error) {
	user, err := q.userStore.FindByID(ctx, userID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

// GetProfile fetches account data and booking stats concurrently; the two
// reads are independent.
func (q *userQueriesImpl) GetProfile(ctx context.Context, userID uuid.UUID) (*ProfileView, error) {
	var (
		user  *AuthorizedUserView
		stats *BookingStats
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		user, err = q.userStore.FindByID(gctx, userID)
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrUserNotFound
		}
		return err
	})
	g.Go(func() error {
		var err error
		stats, err = q.bookingStore.StatsByUserID(gctx, userID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &ProfileView{User: *user, Stats: *stats}, nil
}
