package v1

import (
	"net/http"

	"artmarket-backend/internal/delivery/http/middleware"
)

// Handlers groups every v1 handler for route registration.
type Handlers struct {
	Auth    *AuthHandler
	Profile *ProfileHandler
	Artwork *ArtworkHandler
	Event   *EventHandler
	Session *SessionHandler
	Filter  *FilterHandler
	Config  *ConfigHandler
	Sitemap *SitemapHandler
	Health  *HealthHandler
}

// Register mounts the API on mux. session wraps the visitor selection routes.
func (h Handlers) Register(mux *http.ServeMux, session func(http.Handler) http.Handler) {
	auth := func(fn http.HandlerFunc) http.Handler {
		return middleware.AuthMiddleware(fn)
	}
	withSession := func(fn http.HandlerFunc) http.Handler {
		return session(fn)
	}

	// Config (Public)
	mux.HandleFunc("GET /api/v1/config/enums", h.Config.GetEnums)

	// Auth
	mux.HandleFunc("POST /api/v1/auth/register", h.Auth.Register)
	mux.HandleFunc("POST /api/v1/auth/login", h.Auth.Login)
	mux.HandleFunc("POST /api/v1/auth/refresh", h.Auth.Refresh)
	mux.HandleFunc("POST /api/v1/auth/logout", h.Auth.Logout)
	mux.Handle("GET /api/v1/auth/me", auth(h.Auth.Me))

	// Profile
	mux.Handle("GET /api/v1/profile", auth(h.Profile.Get))
	mux.Handle("PUT /api/v1/profile", auth(h.Profile.Update))
	mux.Handle("POST /api/v1/profile/avatar", auth(h.Profile.UploadAvatar))

	// Artworks
	mux.HandleFunc("GET /api/v1/artworks", h.Artwork.List)
	mux.HandleFunc("GET /api/v1/artworks/{id}", h.Artwork.Get)
	mux.Handle("POST /api/v1/artworks", auth(h.Artwork.Create))
	mux.Handle("PUT /api/v1/artworks/{id}", auth(h.Artwork.Update))
	mux.Handle("DELETE /api/v1/artworks/{id}", auth(h.Artwork.Delete))

	// Artists
	mux.HandleFunc("GET /api/v1/artists", h.Artwork.ListArtists)
	mux.HandleFunc("GET /api/v1/artists/{id}", h.Artwork.GetArtist)

	// Events
	mux.HandleFunc("GET /api/v1/events", h.Event.List)
	mux.HandleFunc("GET /api/v1/events/{id}", h.Event.Get)
	mux.HandleFunc("POST /api/v1/events/{id}/tickets", h.Event.RequestTickets)

	// Visitor selection (follows, favourites, cart)
	mux.Handle("GET /api/v1/session", withSession(h.Session.Get))
	mux.Handle("POST /api/v1/session/follows/{artistId}", withSession(h.Session.ToggleFollow))
	mux.Handle("POST /api/v1/session/favourites", withSession(h.Session.ToggleFavourite))
	mux.Handle("POST /api/v1/session/cart", withSession(h.Session.ToggleCart))
	mux.Handle("POST /api/v1/session/checkout", withSession(h.Session.Checkout))

	// Stateless filter
	mux.HandleFunc("POST /api/v1/catalog/filter", h.Filter.Filter)

	mux.Handle("GET /sitemap.xml", h.Sitemap)

	mux.Handle("GET /api/v1/health", h.Health)
	mux.Handle("GET /health", h.Health) // root health check for load balancers
}
