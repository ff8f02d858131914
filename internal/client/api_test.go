package client

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dfalcao/linkbio/internal/repository/memory"
	"github.com/dfalcao/linkbio/internal/service"
	"github.com/dfalcao/linkbio/internal/transport/http/handlers"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	userRepo := memory.NewUserRepo()
	profileRepo := memory.NewProfileRepo()
	linkRepo := memory.NewLinkRepo()

	const secret = "client-test-secret"
	mux := handlers.NewRouter(secret,
		handlers.NewAuthHandler(service.NewAuthService(userRepo, secret)),
		handlers.NewProfileHandler(service.NewProfileService(profileRepo, linkRepo)),
		handlers.NewLinkHandler(service.NewLinkService(linkRepo)),
	)

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestAPI_EndToEndFlow(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t)
	api := New(srv.URL)
	ctx := context.Background()

	user, err := api.Register(ctx, "a@x.com", "p4ssw0rd1")
	require.NoError(t, err)
	require.Equal(t, "a@x.com", user.Email)

	login, err := api.Login(ctx, "a@x.com", "p4ssw0rd1")
	require.NoError(t, err)
	require.Equal(t, user.ID, login.UserID)
	api.SetToken(login.Token)

	profile, err := api.PutProfile(ctx, user.ID, service.UpsertProfileInput{Name: "Ann", Bio: "hi"})
	require.NoError(t, err)
	require.Equal(t, "Ann", profile.Name)

	page, err := api.GetProfile(ctx, user.ID)
	require.NoError(t, err)
	require.Equal(t, "Ann", page.Profile.Name)
	require.Empty(t, page.Links)

	link, err := api.CreateLink(ctx, user.ID, service.LinkInput{
		Title: "GH", URL: "https://github.com/a", Platform: "github",
	})
	require.NoError(t, err)

	links, err := api.ListLinks(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, links, 1)

	require.NoError(t, api.DeleteLink(ctx, user.ID, link.ID))

	links, err = api.ListLinks(ctx, user.ID)
	require.NoError(t, err)
	require.Empty(t, links)
}

func TestAPI_PublicPageWithoutSession(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t)
	ctx := context.Background()

	owner := New(srv.URL)
	user, err := owner.Register(ctx, "a@x.com", "p4ssw0rd1")
	require.NoError(t, err)
	login, err := owner.Login(ctx, "a@x.com", "p4ssw0rd1")
	require.NoError(t, err)
	owner.SetToken(login.Token)
	_, err = owner.PutProfile(ctx, user.ID, service.UpsertProfileInput{Name: "Ann"})
	require.NoError(t, err)

	visitor := New(srv.URL)
	page, err := visitor.PublicPage(ctx, user.ID)
	require.NoError(t, err)
	require.Equal(t, "Ann", page.Profile.Name)
}

func TestAPI_ErrorsDecoded(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t)
	api := New(srv.URL)
	ctx := context.Background()

	_, err := api.Login(ctx, "ghost@x.com", "p4ssw0rd1")
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, 401, apiErr.Status)
	require.Equal(t, "INVALID_CREDENTIALS", apiErr.Code)
	require.True(t, IsAuthError(err))
}

func TestAPI_StaleTokenIsAuthError(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t)
	api := New(srv.URL)
	ctx := context.Background()

	user, err := api.Register(ctx, "a@x.com", "p4ssw0rd1")
	require.NoError(t, err)

	api.SetToken("not-a-real-token")
	_, err = api.GetProfile(ctx, user.ID)
	require.True(t, IsAuthError(err), "tampered token should read as an auth error, got %v", err)
}
