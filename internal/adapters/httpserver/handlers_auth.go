package httpserver

import (
	"net/http"

	"venuedesk/internal/domain"
)

type loginResponse struct {
	SessionID string      `json:"session_id"`
	User      domain.User `json:"user"`
}

func (h *Handlers) login(w http.ResponseWriter, r *http.Request) {
	var creds domain.Credentials
	if !decode(w, r, &creds) {
		return
	}
	sess, err := h.Sessions.Login(r.Context(), creds)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, loginResponse{SessionID: sess.ID, User: sess.User})
}

func (h *Handlers) register(w http.ResponseWriter, r *http.Request) {
	var reg domain.Registration
	if !decode(w, r, &reg) {
		return
	}
	user, err := h.Sessions.Register(r.Context(), reg)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, user)
}

// logout is best-effort: an unknown or missing session id is still a logout.
func (h *Handlers) logout(w http.ResponseWriter, r *http.Request) {
	if id := bearer(r); id != "" {
		if err := h.Sessions.Logout(r.Context(), id); err != nil {
			writeError(w, r, err)
			return
		}
	}
	w.WriteHeader(http.StatusNoContent)
}

// me re-checks the session against the backend, not just the store.
func (h *Handlers) me(w http.ResponseWriter, r *http.Request) {
	user, err := h.Sessions.Me(r.Context(), bearer(r))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, user)
}
