package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dfalcao/linkbio/internal/domain"
	"github.com/dfalcao/linkbio/internal/repository"
)

var (
	ErrForbidden       = errors.New("caller does not own this resource")
	ErrProfileNotFound = errors.New("profile not found")
)

type ProfileService struct {
	profileRepo repository.ProfileRepository
	linkRepo    repository.LinkRepository
}

func NewProfileService(profileRepo repository.ProfileRepository, linkRepo repository.LinkRepository) *ProfileService {
	return &ProfileService{
		profileRepo: profileRepo,
		linkRepo:    linkRepo,
	}
}

type UpsertProfileInput struct {
	Name      string `json:"name"`
	Bio       string `json:"bio"`
	AvatarURL string `json:"avatar"`
}

// Get returns the caller's profile together with all of their links.
// A missing profile is an error; having no links is not.
func (s *ProfileService) Get(ctx context.Context, callerID, userID int64) (*domain.ProfilePage, error) {
	if callerID != userID {
		return nil, ErrForbidden
	}
	return s.page(ctx, userID)
}

// PublicPage is the unauthenticated read used by the public view.
// It is keyed by the path's user id, not by any session.
func (s *ProfileService) PublicPage(ctx context.Context, userID int64) (*domain.ProfilePage, error) {
	return s.page(ctx, userID)
}

func (s *ProfileService) Upsert(ctx context.Context, callerID, userID int64, input UpsertProfileInput) (*domain.Profile, error) {
	if callerID != userID {
		return nil, ErrForbidden
	}

	profile := &domain.Profile{
		UserID:    userID,
		Name:      strings.TrimSpace(input.Name),
		Bio:       input.Bio,
		AvatarURL: strings.TrimSpace(input.AvatarURL),
	}

	if err := s.profileRepo.Upsert(ctx, profile); err != nil {
		return nil, fmt.Errorf("upserting profile: %w", err)
	}

	return profile, nil
}

func (s *ProfileService) page(ctx context.Context, userID int64) (*domain.ProfilePage, error) {
	profile, err := s.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, ErrProfileNotFound
	}

	links, err := s.linkRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if links == nil {
		links = []domain.Link{}
	}

	return &domain.ProfilePage{Profile: profile, Links: links}, nil
}
