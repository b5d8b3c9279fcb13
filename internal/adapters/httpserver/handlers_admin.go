package httpserver

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"venuedesk/internal/domain"
)

func (h *Handlers) dashboard(w http.ResponseWriter, r *http.Request) {
	sess := sessionFrom(r)
	if sess.User.Role != domain.RoleManager && sess.User.Role != domain.RoleAdmin {
		writeError(w, r, domain.ErrForbidden)
		return
	}
	view, err := h.Dashboard.View(r.Context(), sess.Token, sess.User)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

func (h *Handlers) createHotel(w http.ResponseWriter, r *http.Request) {
	var draft domain.HotelDraft
	if !decode(w, r, &draft) {
		return
	}
	hotel, err := h.Listings.CreateHotel(r.Context(), sessionFrom(r).Token, draft)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, hotel)
}

func (h *Handlers) updateHotel(w http.ResponseWriter, r *http.Request) {
	var draft domain.HotelDraft
	if !decode(w, r, &draft) {
		return
	}
	hotel, err := h.Listings.UpdateHotel(r.Context(), sessionFrom(r).Token, chi.URLParam(r, "id"), draft)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, hotel)
}

func (h *Handlers) createRoom(w http.ResponseWriter, r *http.Request) {
	var draft domain.RoomDraft
	if !decode(w, r, &draft) {
		return
	}
	room, err := h.Listings.CreateRoom(r.Context(), sessionFrom(r).Token, chi.URLParam(r, "id"), draft)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, room)
}

func (h *Handlers) createService(w http.ResponseWriter, r *http.Request) {
	var draft domain.ServiceDraft
	if !decode(w, r, &draft) {
		return
	}
	svc, err := h.Listings.CreateService(r.Context(), sessionFrom(r).Token, chi.URLParam(r, "id"), draft)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, svc)
}

func (h *Handlers) adminPending(w http.ResponseWriter, r *http.Request) {
	view, err := h.Admin.Pending(r.Context(), sessionFrom(r).Token)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

func (h *Handlers) approveHotel(w http.ResponseWriter, r *http.Request) {
	if err := h.Admin.ApproveHotel(r.Context(), sessionFrom(r).Token, chi.URLParam(r, "id")); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handlers) rejectHotel(w http.ResponseWriter, r *http.Request) {
	reason, ok := rejectReason(w, r)
	if !ok {
		return
	}
	if err := h.Admin.RejectHotel(r.Context(), sessionFrom(r).Token, chi.URLParam(r, "id"), reason); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handlers) approveRoom(w http.ResponseWriter, r *http.Request) {
	if err := h.Admin.ApproveRoom(r.Context(), sessionFrom(r).Token, chi.URLParam(r, "id")); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handlers) rejectRoom(w http.ResponseWriter, r *http.Request) {
	reason, ok := rejectReason(w, r)
	if !ok {
		return
	}
	if err := h.Admin.RejectRoom(r.Context(), sessionFrom(r).Token, chi.URLParam(r, "id"), reason); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func rejectReason(w http.ResponseWriter, r *http.Request) (string, bool) {
	var body struct {
		Reason string `json:"reason"`
	}
	if !decode(w, r, &body) {
		return "", false
	}
	if body.Reason == "" {
		writeProblem(w, http.StatusUnprocessableEntity, "Validation Failed", "a rejection reason is required")
		return "", false
	}
	return body.Reason, true
}
