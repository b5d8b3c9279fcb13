package httpserver

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"venuedesk/internal/app"
	"venuedesk/internal/domain"
)

type quoteResponse struct {
	app.QuoteView
	Display displayPrices `json:"display"`
}

type displayPrices struct {
	RoomPrice     string `json:"room_price"`
	ServicesPrice string `json:"services_price"`
	TotalPrice    string `json:"total_price"`
}

// quote prices the current form state and adds the formatted display strings
// the UI renders verbatim.
func (h *Handlers) quote(w http.ResponseWriter, r *http.Request) {
	var req app.BookingRequest
	if !decode(w, r, &req) {
		return
	}
	view, err := h.Bookings.Quote(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		writeError(w, r, err)
		return
	}
	cur := view.Currency
	writeJSON(w, http.StatusOK, quoteResponse{
		QuoteView: view,
		Display: displayPrices{
			RoomPrice:     h.Currency.FormatPrice(domain.PriceQuote{Amount: view.Pricing.RoomPrice, Currency: cur}),
			ServicesPrice: h.Currency.FormatPrice(domain.PriceQuote{Amount: view.Pricing.ServicesPrice, Currency: cur}),
			TotalPrice:    h.Currency.FormatPrice(domain.PriceQuote{Amount: view.Pricing.TotalPrice, Currency: cur}),
		},
	})
}

func (h *Handlers) availability(w http.ResponseWriter, r *http.Request) {
	var body struct {
		StartDate string `json:"start_date"`
		EndDate   string `json:"end_date"`
	}
	if !decode(w, r, &body) {
		return
	}
	av, err := h.Bookings.Availability(r.Context(), chi.URLParam(r, "id"), body.StartDate, body.EndDate)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, av)
}

func (h *Handlers) createBooking(w http.ResponseWriter, r *http.Request) {
	var req app.BookingRequest
	if !decode(w, r, &req) {
		return
	}
	sess := sessionFrom(r)
	booking, err := h.Bookings.Create(r.Context(), sess.Token, chi.URLParam(r, "id"), req)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, booking)
}

func (h *Handlers) listBookings(w http.ResponseWriter, r *http.Request) {
	bookings, err := h.Bookings.List(r.Context(), sessionFrom(r).Token)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, bookings)
}

func (h *Handlers) getBooking(w http.ResponseWriter, r *http.Request) {
	booking, err := h.Bookings.Get(r.Context(), sessionFrom(r).Token, chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, booking)
}

func (h *Handlers) cancelBooking(w http.ResponseWriter, r *http.Request) {
	booking, err := h.Bookings.Cancel(r.Context(), sessionFrom(r).Token, chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, booking)
}

func (h *Handlers) initiatePayment(w http.ResponseWriter, r *http.Request) {
	var body struct {
		SuccessURL string `json:"success_url"`
		CancelURL  string `json:"cancel_url"`
	}
	if !decode(w, r, &body) {
		return
	}
	pay, err := h.Payments.Initiate(r.Context(), sessionFrom(r).Token, chi.URLParam(r, "id"), body.SuccessURL, body.CancelURL)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, pay)
}

func (h *Handlers) paymentStatus(w http.ResponseWriter, r *http.Request) {
	pay, err := h.Payments.Status(r.Context(), chi.URLParam(r, "session"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, pay)
}

// awaitPayment holds the request open while polling. The poll runs on the
// request context, so a dropped connection stops it.
func (h *Handlers) awaitPayment(w http.ResponseWriter, r *http.Request) {
	pay, err := h.Payments.AwaitConfirmation(r.Context(), chi.URLParam(r, "session"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, pay)
}
