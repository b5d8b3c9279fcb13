package httpserver

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"venuedesk/internal/domain"
)

func (h *Handlers) home(w http.ResponseWriter, r *http.Request) {
	view, err := h.Catalog.Home(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

func (h *Handlers) listHotels(w http.ResponseWriter, r *http.Request) {
	var q domain.HotelQuery
	if city := r.URL.Query().Get("city"); city != "" {
		q.City = &city
	}
	if s := r.URL.Query().Get("stars"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil {
			writeProblem(w, http.StatusBadRequest, "Invalid Query", "stars must be a number")
			return
		}
		q.Stars = &n
	}
	hotels, err := h.Catalog.Hotels(r.Context(), q)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, hotels)
}

func (h *Handlers) hotelDetail(w http.ResponseWriter, r *http.Request) {
	view, err := h.Catalog.HotelDetail(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

func (h *Handlers) searchRooms(w http.ResponseWriter, r *http.Request) {
	var q domain.RoomQuery
	if city := r.URL.Query().Get("city"); city != "" {
		q.City = &city
	}
	if s := r.URL.Query().Get("min_capacity"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil {
			writeProblem(w, http.StatusBadRequest, "Invalid Query", "min_capacity must be a number")
			return
		}
		q.MinCapacity = &n
	}
	if s := r.URL.Query().Get("max_price"); s != "" {
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			writeProblem(w, http.StatusBadRequest, "Invalid Query", "max_price must be a number")
			return
		}
		q.MaxPrice = &f
	}
	if s := r.URL.Query().Get("features"); s != "" {
		q.Features = strings.Split(s, ",")
	}
	rooms, err := h.Catalog.Rooms(r.Context(), q)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, rooms)
}

func (h *Handlers) roomDetail(w http.ResponseWriter, r *http.Request) {
	view, err := h.Catalog.RoomDetail(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

func (h *Handlers) listAds(w http.ResponseWriter, r *http.Request) {
	var adType *string
	if t := r.URL.Query().Get("type"); t != "" {
		adType = &t
	}
	ads, err := h.Catalog.Ads(r.Context(), adType)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, ads)
}

func (h *Handlers) trackAd(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Clicked bool `json:"clicked"`
	}
	if !decode(w, r, &body) {
		return
	}
	if err := h.Catalog.TrackAd(r.Context(), chi.URLParam(r, "id"), body.Clicked); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
