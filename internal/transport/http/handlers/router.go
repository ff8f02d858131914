package handlers

import (
	"net/http"

	"github.com/dfalcao/linkbio/internal/transport/http/middleware"
)

// NewRouter wires every route. Registration, login and the public
// page are open; everything under a user id goes through the auth
// middleware.
func NewRouter(jwtSecret string, authHandler *AuthHandler, profileHandler *ProfileHandler, linkHandler *LinkHandler) *http.ServeMux {
	auth := middleware.Auth(jwtSecret)

	mux := http.NewServeMux()

	// Public
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status": "ok"}`))
	})
	mux.HandleFunc("POST /api/v1/auth/register", authHandler.Register)
	mux.HandleFunc("POST /api/v1/auth/login", authHandler.Login)
	mux.HandleFunc("GET /api/v1/users/{id}/page", profileHandler.PublicPage)

	// Protected - Profile
	mux.Handle("GET /api/v1/users/{id}/profile", auth(http.HandlerFunc(profileHandler.Get)))
	mux.Handle("PUT /api/v1/users/{id}/profile", auth(http.HandlerFunc(profileHandler.Put)))

	// Protected - Links
	mux.Handle("POST /api/v1/users/{id}/links", auth(http.HandlerFunc(linkHandler.Create)))
	mux.Handle("GET /api/v1/users/{id}/links", auth(http.HandlerFunc(linkHandler.List)))
	mux.Handle("PUT /api/v1/users/{id}/links/{linkId}", auth(http.HandlerFunc(linkHandler.Update)))
	mux.Handle("DELETE /api/v1/users/{id}/links/{linkId}", auth(http.HandlerFunc(linkHandler.Delete)))

	return mux
}
