package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"venuedesk/internal/app"
	"venuedesk/internal/domain"
)

type Handlers struct {
	Sessions  *app.Sessions
	Catalog   *app.Catalog
	Bookings  *app.Bookings
	Payments  *app.Payments
	Dashboard *app.Dashboard
	Listings  *app.Listings
	Admin     *app.Admin
	Currency  *app.Currency
}

type problem struct {
	Type   string `json:"type"`
	Title  string `json:"title"`
	Status int    `json:"status"`
	Detail string `json:"detail,omitempty"`
}

func (s *Server) MountHandlers(h *Handlers) {
	s.mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); _, _ = w.Write([]byte("ok")) })

	s.mux.Route("/v1", func(r chi.Router) {
		r.Post("/auth/login", h.login)
		r.Post("/auth/register", h.register)
		r.Post("/auth/logout", h.logout)
		r.Get("/auth/me", h.me)

		r.Get("/home", h.home)
		r.Get("/hotels", h.listHotels)
		r.Get("/hotels/{id}", h.hotelDetail)
		r.Get("/rooms", h.searchRooms)
		r.Get("/rooms/{id}", h.roomDetail)
		r.Post("/rooms/{id}/quote", h.quote)
		r.Post("/rooms/{id}/availability", h.availability)

		r.Get("/ads", h.listAds)
		r.Post("/ads/{id}/view", h.trackAd)

		// Everything below needs a gateway session.
		r.Group(func(r chi.Router) {
			r.Use(h.requireSession)

			r.Post("/rooms/{id}/bookings", h.createBooking)
			r.Get("/bookings", h.listBookings)
			r.Get("/bookings/{id}", h.getBooking)
			r.Post("/bookings/{id}/cancel", h.cancelBooking)
			r.Post("/bookings/{id}/payment", h.initiatePayment)
			r.Get("/payments/{session}", h.paymentStatus)
			r.Get("/payments/{session}/wait", h.awaitPayment)

			r.Get("/dashboard", h.dashboard)
			r.Post("/hotels", h.createHotel)
			r.Put("/hotels/{id}", h.updateHotel)
			r.Post("/hotels/{id}/rooms", h.createRoom)
			r.Post("/hotels/{id}/services", h.createService)

			r.Get("/admin/pending", h.adminPending)
			r.Post("/admin/hotels/{id}/approve", h.approveHotel)
			r.Post("/admin/hotels/{id}/reject", h.rejectHotel)
			r.Post("/admin/rooms/{id}/approve", h.approveRoom)
			r.Post("/admin/rooms/{id}/reject", h.rejectRoom)
		})
	})
}

// ---- session plumbing ----

type ctxKey int

const sessionKey ctxKey = 0

// bearer pulls the gateway session id out of the Authorization header.
func bearer(r *http.Request) string {
	auth := r.Header.Get("Authorization")
	if len(auth) > 7 && strings.EqualFold(auth[:7], "Bearer ") {
		return strings.TrimSpace(auth[7:])
	}
	return ""
}

func (h *Handlers) requireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess, err := h.Sessions.Resolve(r.Context(), bearer(r))
		if err != nil {
			writeError(w, r, err)
			return
		}
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), sessionKey, sess)))
	})
}

func sessionFrom(r *http.Request) domain.Session {
	sess, _ := r.Context().Value(sessionKey).(domain.Session)
	return sess
}

// ---- response plumbing ----

func writeProblem(w http.ResponseWriter, status int, title, detail string) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(problem{Type: "about:blank", Title: title, Status: status, Detail: detail}); err != nil {
		log.Error().Err(err).Msg("write JSON problem response failed")
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("write JSON response failed")
	}
}

// writeError flattens the taxonomy: one problem per failure, the backend's
// detail when it sent one, a generic title otherwise.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	var ve *app.ValidationError
	var re *domain.RemoteError
	switch {
	case errors.Is(err, context.Canceled):
		// Caller went away; nothing left to tell them.
	case errors.As(err, &ve):
		writeProblem(w, http.StatusUnprocessableEntity, "Validation Failed", ve.Message)
	case errors.Is(err, domain.ErrNotFound):
		writeProblem(w, http.StatusNotFound, "Not Found", "")
	case errors.Is(err, domain.ErrUnauthorized):
		writeProblem(w, http.StatusUnauthorized, "Unauthorized", "login required")
	case errors.Is(err, domain.ErrForbidden):
		writeProblem(w, http.StatusForbidden, "Forbidden", "")
	case errors.Is(err, app.ErrConfirmationPending):
		writeProblem(w, http.StatusGatewayTimeout, "Confirmation Pending", "payment confirmation timed out, check your bookings")
	case errors.As(err, &re) && re.Status >= 400 && re.Status < 500:
		writeProblem(w, re.Status, http.StatusText(re.Status), re.Detail)
	default:
		log.Error().Err(err).Str("path", r.URL.Path).Msg("backend call failed")
		writeProblem(w, http.StatusBadGateway, "Backend Unavailable", "")
	}
}

func decode(w http.ResponseWriter, r *http.Request, v any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid Body", "request body must be valid JSON")
		return false
	}
	return true
}
