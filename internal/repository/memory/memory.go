// Package memory provides in-memory implementations of the repository
// interfaces. They back the test suites; the server itself always runs
// on postgres.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/dfalcao/linkbio/internal/domain"
)

type UserRepo struct {
	mu     sync.Mutex
	nextID int64
	users  map[int64]domain.User
}

func NewUserRepo() *UserRepo {
	return &UserRepo{nextID: 1, users: make(map[int64]domain.User)}
}

func (r *UserRepo) Create(ctx context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	user.ID = r.nextID
	r.nextID++
	user.CreatedAt = time.Now()
	r.users[user.ID] = *user
	return nil
}

func (r *UserRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if u, ok := r.users[id]; ok {
		return &u, nil
	}
	return nil, nil
}

func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if u.Email == email {
			u := u
			return &u, nil
		}
	}
	return nil, nil
}

type ProfileRepo struct {
	mu       sync.Mutex
	profiles map[int64]domain.Profile
}

func NewProfileRepo() *ProfileRepo {
	return &ProfileRepo{profiles: make(map[int64]domain.Profile)}
}

func (r *ProfileRepo) Upsert(ctx context.Context, profile *domain.Profile) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	profile.UpdatedAt = time.Now()
	r.profiles[profile.UserID] = *profile
	return nil
}

func (r *ProfileRepo) GetByUserID(ctx context.Context, userID int64) (*domain.Profile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if p, ok := r.profiles[userID]; ok {
		return &p, nil
	}
	return nil, nil
}

type LinkRepo struct {
	mu     sync.Mutex
	nextID int64
	links  map[int64]domain.Link
}

func NewLinkRepo() *LinkRepo {
	return &LinkRepo{nextID: 1, links: make(map[int64]domain.Link)}
}

func (r *LinkRepo) Create(ctx context.Context, link *domain.Link) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	link.ID = r.nextID
	r.nextID++
	link.CreatedAt = time.Now()
	r.links[link.ID] = *link
	return nil
}

func (r *LinkRepo) ListByUser(ctx context.Context, userID int64) ([]domain.Link, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var links []domain.Link
	for id := int64(1); id < r.nextID; id++ {
		if l, ok := r.links[id]; ok && l.UserID == userID {
			links = append(links, l)
		}
	}
	return links, nil
}

func (r *LinkRepo) Update(ctx context.Context, link *domain.Link) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.links[link.ID]
	if !ok || existing.UserID != link.UserID {
		return false, nil
	}

	link.CreatedAt = existing.CreatedAt
	r.links[link.ID] = *link
	return true, nil
}

func (r *LinkRepo) Delete(ctx context.Context, id, userID int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.links[id]
	if !ok || existing.UserID != userID {
		return false, nil
	}

	delete(r.links, id)
	return true, nil
}
