package repository

import (
	"context"

	"github.com/dfalcao/linkbio/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}

type ProfileRepository interface {
	// Upsert inserts the profile, or overwrites all fields of the
	// existing row keyed by user id. The stored row is written back
	// into profile.
	Upsert(ctx context.Context, profile *domain.Profile) error
	GetByUserID(ctx context.Context, userID int64) (*domain.Profile, error)
}

type LinkRepository interface {
	Create(ctx context.Context, link *domain.Link) error
	ListByUser(ctx context.Context, userID int64) ([]domain.Link, error)
	// Update and Delete match on both link id and owning user id.
	// A row owned by someone else behaves exactly like a missing row.
	Update(ctx context.Context, link *domain.Link) (bool, error)
	Delete(ctx context.Context, id, userID int64) (bool, error)
}
