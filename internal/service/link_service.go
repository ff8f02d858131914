package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dfalcao/linkbio/internal/domain"
	"github.com/dfalcao/linkbio/internal/repository"
)

// ErrLinkNotFound covers both a nonexistent link and a link owned by
// another user. Collapsing the two keeps mutations from leaking
// whether somebody else's link id exists.
var ErrLinkNotFound = errors.New("link not found")

type LinkService struct {
	linkRepo repository.LinkRepository
}

func NewLinkService(linkRepo repository.LinkRepository) *LinkService {
	return &LinkService{linkRepo: linkRepo}
}

type LinkInput struct {
	Title    string `json:"title"`
	URL      string `json:"url"`
	Platform string `json:"platform"`
}

func (s *LinkService) Create(ctx context.Context, callerID, userID int64, input LinkInput) (*domain.Link, error) {
	if callerID != userID {
		return nil, ErrForbidden
	}

	link := &domain.Link{
		UserID:   userID,
		Title:    strings.TrimSpace(input.Title),
		URL:      strings.TrimSpace(input.URL),
		Platform: strings.TrimSpace(input.Platform),
	}

	if err := s.linkRepo.Create(ctx, link); err != nil {
		return nil, fmt.Errorf("creating link: %w", err)
	}

	return link, nil
}

func (s *LinkService) List(ctx context.Context, callerID, userID int64) ([]domain.Link, error) {
	if callerID != userID {
		return nil, ErrForbidden
	}

	links, err := s.linkRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if links == nil {
		links = []domain.Link{}
	}
	return links, nil
}

func (s *LinkService) Update(ctx context.Context, callerID, userID, linkID int64, input LinkInput) (*domain.Link, error) {
	if callerID != userID {
		return nil, ErrForbidden
	}

	link := &domain.Link{
		ID:       linkID,
		UserID:   userID,
		Title:    strings.TrimSpace(input.Title),
		URL:      strings.TrimSpace(input.URL),
		Platform: strings.TrimSpace(input.Platform),
	}

	matched, err := s.linkRepo.Update(ctx, link)
	if err != nil {
		return nil, fmt.Errorf("updating link: %w", err)
	}
	if !matched {
		return nil, ErrLinkNotFound
	}

	return link, nil
}

func (s *LinkService) Delete(ctx context.Context, callerID, userID, linkID int64) error {
	if callerID != userID {
		return ErrForbidden
	}

	matched, err := s.linkRepo.Delete(ctx, linkID, userID)
	if err != nil {
		return fmt.Errorf("deleting link: %w", err)
	}
	if !matched {
		return ErrLinkNotFound
	}

	return nil
}
