package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dfalcao/linkbio/internal/repository/memory"
)

func newProfileService() (*ProfileService, *LinkService) {
	linkRepo := memory.NewLinkRepo()
	return NewProfileService(memory.NewProfileRepo(), linkRepo), NewLinkService(linkRepo)
}

func TestProfileUpsert_OwnerMismatchForbidden(t *testing.T) {
	t.Parallel()

	s, _ := newProfileService()

	_, err := s.Upsert(context.Background(), 1, 2, UpsertProfileInput{Name: "Ann"})
	require.ErrorIs(t, err, ErrForbidden)

	_, err = s.Get(context.Background(), 1, 2)
	require.ErrorIs(t, err, ErrForbidden)
}

func TestProfileGet_MissingProfileNotFound(t *testing.T) {
	t.Parallel()

	s, _ := newProfileService()

	_, err := s.Get(context.Background(), 1, 1)
	require.ErrorIs(t, err, ErrProfileNotFound)
}

// Upserting twice leaves exactly one profile reflecting the latest
// values.
func TestProfileUpsert_IdempotentOverwrite(t *testing.T) {
	t.Parallel()

	s, _ := newProfileService()
	ctx := context.Background()

	_, err := s.Upsert(ctx, 1, 1, UpsertProfileInput{Name: "Ann", Bio: "first"})
	require.NoError(t, err)

	_, err = s.Upsert(ctx, 1, 1, UpsertProfileInput{Name: "Ann B", Bio: "second"})
	require.NoError(t, err)

	page, err := s.Get(ctx, 1, 1)
	require.NoError(t, err)
	require.Equal(t, "Ann B", page.Profile.Name)
	require.Equal(t, "second", page.Profile.Bio)
}

// An empty link list is a valid page; a missing profile is not.
func TestProfileGet_EmptyLinksIsValid(t *testing.T) {
	t.Parallel()

	s, links := newProfileService()
	ctx := context.Background()

	_, err := s.Upsert(ctx, 1, 1, UpsertProfileInput{Name: "Ann"})
	require.NoError(t, err)

	page, err := s.Get(ctx, 1, 1)
	require.NoError(t, err)
	require.NotNil(t, page.Links)
	require.Empty(t, page.Links)

	_, err = links.Create(ctx, 1, 1, LinkInput{Title: "GH", URL: "https://github.com/a"})
	require.NoError(t, err)

	page, err = s.Get(ctx, 1, 1)
	require.NoError(t, err)
	require.Len(t, page.Links, 1)
}

func TestPublicPage_NoIdentityCheck(t *testing.T) {
	t.Parallel()

	s, _ := newProfileService()
	ctx := context.Background()

	_, err := s.Upsert(ctx, 7, 7, UpsertProfileInput{Name: "Ann"})
	require.NoError(t, err)

	page, err := s.PublicPage(ctx, 7)
	require.NoError(t, err)
	require.Equal(t, "Ann", page.Profile.Name)

	_, err = s.PublicPage(ctx, 8)
	require.ErrorIs(t, err, ErrProfileNotFound)
}
