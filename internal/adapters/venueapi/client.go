// internal/adapters/venueapi/client.go
package venueapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"venuedesk/internal/adapters/observability"
	"venuedesk/internal/domain"
)

// Client is the single HTTP wrapper around the marketplace backend. Failures
// are not retried: a failed request surfaces immediately to the caller, and
// the only repetition anywhere is the bounded payment-status poll in app.
type Client struct {
	base string
	hc   *http.Client
}

func New(base string) *Client {
	return &Client{
		base: strings.TrimRight(base, "/") + "/api",
		hc:   &http.Client{Timeout: 20 * time.Second},
	}
}

// do issues one request, attaching the bearer token when present, and decodes
// JSON into out. 404/401/403 map to sentinel errors; other non-2xx statuses
// carry the backend's optional "detail" message.
func (c *Client) do(ctx context.Context, method, path, label, token string, in, out any) error {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return err
		}
		body = bytes.NewReader(b)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.base+path, body)
	if err != nil {
		return err
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "venuedesk/1.0")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	resp, err := c.hc.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		observability.ObserveBackend(label, 0, time.Since(start))
		return err
	}
	defer resp.Body.Close()
	observability.ObserveBackend(label, resp.StatusCode, time.Since(start))

	switch resp.StatusCode {
	case http.StatusOK, http.StatusCreated, http.StatusAccepted:
		if out == nil {
			io.Copy(io.Discard, resp.Body)
			return nil
		}
		return json.NewDecoder(resp.Body).Decode(out)

	case http.StatusNoContent:
		io.Copy(io.Discard, resp.Body)
		return nil

	case http.StatusNotFound:
		return domain.ErrNotFound

	case http.StatusUnauthorized:
		return domain.ErrUnauthorized

	case http.StatusForbidden:
		return domain.ErrForbidden

	default:
		return &domain.RemoteError{Status: resp.StatusCode, Detail: readDetail(resp.Body)}
	}
}

// readDetail pulls the backend's {"detail": "..."} message, if any.
func readDetail(r io.Reader) string {
	b, _ := io.ReadAll(io.LimitReader(r, 4096))
	var e struct {
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(b, &e); err == nil && e.Detail != "" {
		return e.Detail
	}
	return ""
}

/********** auth **********/

func (c *Client) Login(ctx context.Context, creds domain.Credentials) (string, domain.User, error) {
	var out tokenDTO
	if err := c.do(ctx, http.MethodPost, "/auth/login", "auth/login", "", creds, &out); err != nil {
		return "", domain.User{}, err
	}
	return out.AccessToken, out.User.toDomain(), nil
}

func (c *Client) Register(ctx context.Context, reg domain.Registration) (domain.User, error) {
	var out userDTO
	if err := c.do(ctx, http.MethodPost, "/auth/register", "auth/register", "", reg, &out); err != nil {
		return domain.User{}, err
	}
	return out.toDomain(), nil
}

func (c *Client) Me(ctx context.Context, token string) (domain.User, error) {
	var out userDTO
	if err := c.do(ctx, http.MethodGet, "/auth/me", "auth/me", token, nil, &out); err != nil {
		return domain.User{}, err
	}
	return out.toDomain(), nil
}

/********** catalog **********/

func (c *Client) ListHotels(ctx context.Context, q domain.HotelQuery) ([]domain.Hotel, error) {
	v := url.Values{}
	if q.City != nil {
		v.Set("city", *q.City)
	}
	if q.Stars != nil {
		v.Set("star_rating", strconv.Itoa(*q.Stars))
	}
	var out []hotelDTO
	if err := c.do(ctx, http.MethodGet, withQuery("/hotels", v), "hotels", "", nil, &out); err != nil {
		return nil, err
	}
	return mapSlice(out, hotelDTO.toDomain), nil
}

func (c *Client) GetHotel(ctx context.Context, id string) (domain.Hotel, error) {
	var out hotelDTO
	if err := c.do(ctx, http.MethodGet, "/hotels/"+id, "hotels/{id}", "", nil, &out); err != nil {
		return domain.Hotel{}, err
	}
	return out.toDomain(), nil
}

func (c *Client) ListHotelRooms(ctx context.Context, hotelID string) ([]domain.Room, error) {
	var out []roomDTO
	if err := c.do(ctx, http.MethodGet, "/hotels/"+hotelID+"/rooms", "hotels/{id}/rooms", "", nil, &out); err != nil {
		return nil, err
	}
	return mapSlice(out, roomDTO.toDomain), nil
}

func (c *Client) ListHotelServices(ctx context.Context, hotelID string) ([]domain.ExtraService, error) {
	var out []serviceDTO
	if err := c.do(ctx, http.MethodGet, "/hotels/"+hotelID+"/services", "hotels/{id}/services", "", nil, &out); err != nil {
		return nil, err
	}
	return mapSlice(out, serviceDTO.toDomain), nil
}

func (c *Client) SearchRooms(ctx context.Context, q domain.RoomQuery) ([]domain.Room, error) {
	v := url.Values{}
	if q.City != nil {
		v.Set("city", *q.City)
	}
	if q.MinCapacity != nil {
		v.Set("min_capacity", strconv.Itoa(*q.MinCapacity))
	}
	if q.MaxPrice != nil {
		v.Set("max_price", strconv.FormatFloat(*q.MaxPrice, 'f', -1, 64))
	}
	if len(q.Features) > 0 {
		v.Set("features", strings.Join(q.Features, ","))
	}
	var out []roomDTO
	if err := c.do(ctx, http.MethodGet, withQuery("/rooms", v), "rooms", "", nil, &out); err != nil {
		return nil, err
	}
	return mapSlice(out, roomDTO.toDomain), nil
}

func (c *Client) GetRoom(ctx context.Context, id string) (domain.Room, error) {
	var out roomDTO
	if err := c.do(ctx, http.MethodGet, "/rooms/"+id, "rooms/{id}", "", nil, &out); err != nil {
		return domain.Room{}, err
	}
	return out.toDomain(), nil
}

/********** listing management **********/

func (c *Client) CreateHotel(ctx context.Context, token string, d domain.HotelDraft) (domain.Hotel, error) {
	var out hotelDTO
	if err := c.do(ctx, http.MethodPost, "/hotels", "hotels#create", token, d, &out); err != nil {
		return domain.Hotel{}, err
	}
	return out.toDomain(), nil
}

func (c *Client) UpdateHotel(ctx context.Context, token, id string, d domain.HotelDraft) (domain.Hotel, error) {
	var out hotelDTO
	if err := c.do(ctx, http.MethodPut, "/hotels/"+id, "hotels#update", token, d, &out); err != nil {
		return domain.Hotel{}, err
	}
	return out.toDomain(), nil
}

func (c *Client) CreateRoom(ctx context.Context, token, hotelID string, d domain.RoomDraft) (domain.Room, error) {
	var out roomDTO
	if err := c.do(ctx, http.MethodPost, "/hotels/"+hotelID+"/rooms", "rooms#create", token, d, &out); err != nil {
		return domain.Room{}, err
	}
	return out.toDomain(), nil
}

func (c *Client) CreateService(ctx context.Context, token, hotelID string, d domain.ServiceDraft) (domain.ExtraService, error) {
	var out serviceDTO
	if err := c.do(ctx, http.MethodPost, "/hotels/"+hotelID+"/services", "services#create", token, d, &out); err != nil {
		return domain.ExtraService{}, err
	}
	return out.toDomain(), nil
}

/********** bookings **********/

func (c *Client) CheckAvailability(ctx context.Context, roomID, startDate, endDate string) (domain.Availability, error) {
	in := map[string]string{"room_id": roomID, "start_date": startDate, "end_date": endDate}
	var out availabilityDTO
	if err := c.do(ctx, http.MethodPost, "/rooms/"+roomID+"/availability", "rooms/{id}/availability", "", in, &out); err != nil {
		return domain.Availability{}, err
	}
	return domain.Availability{IsAvailable: out.IsAvailable, Conflicts: out.Conflicts}, nil
}

func (c *Client) CreateBooking(ctx context.Context, token string, d domain.BookingDraft) (domain.Booking, error) {
	var out bookingDTO
	if err := c.do(ctx, http.MethodPost, "/bookings", "bookings#create", token, d, &out); err != nil {
		return domain.Booking{}, err
	}
	return out.toDomain(), nil
}

func (c *Client) ListBookings(ctx context.Context, token string) ([]domain.Booking, error) {
	var out []bookingDTO
	if err := c.do(ctx, http.MethodGet, "/bookings", "bookings", token, nil, &out); err != nil {
		return nil, err
	}
	return mapSlice(out, bookingDTO.toDomain), nil
}

func (c *Client) GetBooking(ctx context.Context, token, id string) (domain.Booking, error) {
	var out bookingDTO
	if err := c.do(ctx, http.MethodGet, "/bookings/"+id, "bookings/{id}", token, nil, &out); err != nil {
		return domain.Booking{}, err
	}
	return out.toDomain(), nil
}

func (c *Client) UpdateBookingStatus(ctx context.Context, token, id string, status domain.BookingStatus, notes *string) (domain.Booking, error) {
	in := struct {
		Status domain.BookingStatus `json:"status"`
		Notes  *string              `json:"notes,omitempty"`
	}{status, notes}
	var out bookingDTO
	if err := c.do(ctx, http.MethodPatch, "/bookings/"+id+"/status", "bookings/{id}/status", token, in, &out); err != nil {
		return domain.Booking{}, err
	}
	return out.toDomain(), nil
}

/********** payments **********/

func (c *Client) InitiatePayment(ctx context.Context, token, bookingID, successURL, cancelURL string) (domain.Payment, error) {
	in := struct {
		BookingID  string `json:"booking_id"`
		SuccessURL string `json:"success_url"`
		CancelURL  string `json:"cancel_url"`
	}{bookingID, successURL, cancelURL}
	var out paymentDTO
	if err := c.do(ctx, http.MethodPost, "/bookings/"+bookingID+"/payment", "bookings/{id}/payment", token, in, &out); err != nil {
		return domain.Payment{}, err
	}
	return out.toDomain(), nil
}

func (c *Client) PaymentStatus(ctx context.Context, sessionID string) (domain.Payment, error) {
	var out paymentDTO
	if err := c.do(ctx, http.MethodGet, "/payments/"+sessionID+"/status", "payments/{session}/status", "", nil, &out); err != nil {
		return domain.Payment{}, err
	}
	return out.toDomain(), nil
}

/********** advertisements **********/

func (c *Client) PublicAds(ctx context.Context, adType *string) ([]domain.Advertisement, error) {
	v := url.Values{}
	if adType != nil {
		v.Set("ad_type", *adType)
	}
	var out []adDTO
	if err := c.do(ctx, http.MethodGet, withQuery("/advertisements/public", v), "advertisements/public", "", nil, &out); err != nil {
		return nil, err
	}
	return mapSlice(out, adDTO.toDomain), nil
}

func (c *Client) TrackAd(ctx context.Context, adID string, clicked bool) error {
	in := struct {
		AdID    string `json:"ad_id"`
		Clicked bool   `json:"clicked"`
	}{adID, clicked}
	return c.do(ctx, http.MethodPost, "/advertisements/"+adID+"/view", "advertisements/{id}/view", "", in, nil)
}

/********** admin approvals **********/

func (c *Client) PendingHotels(ctx context.Context, token string) ([]domain.Hotel, error) {
	var out []hotelDTO
	if err := c.do(ctx, http.MethodGet, "/admin/hotels/pending", "admin/hotels/pending", token, nil, &out); err != nil {
		return nil, err
	}
	return mapSlice(out, hotelDTO.toDomain), nil
}

func (c *Client) PendingRooms(ctx context.Context, token string) ([]domain.Room, error) {
	var out []roomDTO
	if err := c.do(ctx, http.MethodGet, "/admin/rooms/pending", "admin/rooms/pending", token, nil, &out); err != nil {
		return nil, err
	}
	return mapSlice(out, roomDTO.toDomain), nil
}

func (c *Client) ApproveHotel(ctx context.Context, token, id string) error {
	return c.do(ctx, http.MethodPut, "/admin/hotels/"+id+"/approve", "admin/hotels/approve", token, nil, nil)
}

func (c *Client) RejectHotel(ctx context.Context, token, id, reason string) error {
	in := map[string]string{"reason": reason}
	return c.do(ctx, http.MethodPut, "/admin/hotels/"+id+"/reject", "admin/hotels/reject", token, in, nil)
}

func (c *Client) ApproveRoom(ctx context.Context, token, id string) error {
	return c.do(ctx, http.MethodPut, "/admin/rooms/"+id+"/approve", "admin/rooms/approve", token, nil, nil)
}

func (c *Client) RejectRoom(ctx context.Context, token, id, reason string) error {
	in := map[string]string{"reason": reason}
	return c.do(ctx, http.MethodPut, "/admin/rooms/"+id+"/reject", "admin/rooms/reject", token, in, nil)
}

/********** currency **********/

func (c *Client) DetectCurrency(ctx context.Context) (string, error) {
	var out struct {
		Currency string `json:"currency"`
	}
	if err := c.do(ctx, http.MethodGet, "/currency/detect", "currency/detect", "", nil, &out); err != nil {
		return "", err
	}
	if out.Currency == "" {
		return "", fmt.Errorf("empty currency in detect response")
	}
	return out.Currency, nil
}

func (c *Client) Rates(ctx context.Context) (domain.RateTable, error) {
	var out struct {
		Rates domain.RateTable `json:"rates"`
	}
	if err := c.do(ctx, http.MethodGet, "/currency/rates", "currency/rates", "", nil, &out); err != nil {
		return nil, err
	}
	return out.Rates, nil
}

/********** helpers **********/

func withQuery(path string, v url.Values) string {
	if len(v) == 0 {
		return path
	}
	return path + "?" + v.Encode()
}

func mapSlice[T, U any](in []T, f func(T) U) []U {
	out := make([]U, len(in))
	for i, t := range in {
		out[i] = f(t)
	}
	return out
}
