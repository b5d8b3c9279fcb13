package venueapi

import (
	"time"

	"venuedesk/internal/domain"
)

// Wire shapes for the marketplace backend. Optional fields stay pointers so
// "absent" survives the trip; pricing_info is folded into PriceQuote here and
// nowhere else.

type userDTO struct {
	ID       string      `json:"id"`
	Email    string      `json:"email"`
	FullName string      `json:"full_name"`
	Phone    *string     `json:"phone"`
	Role     domain.Role `json:"role"`
	IsActive bool        `json:"is_active"`
}

func (u userDTO) toDomain() domain.User {
	out := domain.User{ID: u.ID, Email: u.Email, FullName: u.FullName, Role: u.Role, IsActive: u.IsActive}
	if u.Phone != nil {
		out.Phone = *u.Phone
	}
	return out
}

type tokenDTO struct {
	AccessToken string  `json:"access_token"`
	TokenType   string  `json:"token_type"`
	User        userDTO `json:"user"`
}

type pricingInfoDTO struct {
	BasePrice           float64  `json:"base_price"`
	BaseCurrency        string   `json:"base_currency"`
	DisplayPrice        float64  `json:"display_price"`
	DisplayCurrency     string   `json:"display_currency"`
	ExchangeRate        *float64 `json:"exchange_rate"`
	DisplayPricePerHour *float64 `json:"display_price_per_hour"`
}

func (p *pricingInfoDTO) quote() *domain.PriceQuote {
	if p == nil {
		return nil
	}
	return &domain.PriceQuote{Amount: p.DisplayPrice, Currency: p.DisplayCurrency, Converted: true}
}

func (p *pricingInfoDTO) hourQuote() *domain.PriceQuote {
	if p == nil || p.DisplayPricePerHour == nil {
		return nil
	}
	return &domain.PriceQuote{Amount: *p.DisplayPricePerHour, Currency: p.DisplayCurrency, Converted: true}
}

type hotelDTO struct {
	ID            string                `json:"id"`
	ManagerID     string                `json:"manager_id"`
	Name          string                `json:"name"`
	Description   *string               `json:"description"`
	Address       string                `json:"address"`
	City          string                `json:"city"`
	Phone         string                `json:"phone"`
	Email         string                `json:"email"`
	Website       *string               `json:"website"`
	Stars         *int                  `json:"star_rating"`
	Facilities    []string              `json:"facilities"`
	Images        []string              `json:"images"`
	Lat           *float64              `json:"latitude"`
	Lon           *float64              `json:"longitude"`
	Approval      domain.ApprovalStatus `json:"approval_status"`
	AverageRating float64               `json:"average_rating"`
	TotalReviews  int                   `json:"total_reviews"`
}

func (h hotelDTO) toDomain() domain.Hotel {
	return domain.Hotel{
		ID: h.ID, ManagerID: h.ManagerID, Name: h.Name, Description: h.Description,
		Address: h.Address, City: h.City, Phone: h.Phone, Email: h.Email,
		Website: h.Website, Stars: h.Stars, Facilities: h.Facilities, Images: h.Images,
		Lat: h.Lat, Lon: h.Lon, Approval: h.Approval,
		AverageRating: h.AverageRating, TotalReviews: h.TotalReviews,
	}
}

type roomDTO struct {
	ID            string                `json:"id"`
	HotelID       string                `json:"hotel_id"`
	Name          string                `json:"name"`
	Description   *string               `json:"description"`
	Capacity      int                   `json:"capacity"`
	AreaSqm       *float64              `json:"area_sqm"`
	PricePerDay   float64               `json:"price_per_day"`
	PricePerHour  *float64              `json:"price_per_hour"`
	Currency      string                `json:"currency"`
	RoomType      string                `json:"room_type"`
	Features      []string              `json:"features"`
	LayoutOptions []string              `json:"layout_options"`
	Images        []string              `json:"images"`
	IsAvailable   bool                  `json:"is_available"`
	Approval      domain.ApprovalStatus `json:"approval_status"`
	AverageRating float64               `json:"average_rating"`
	TotalBookings int                   `json:"total_bookings"`
	PricingInfo   *pricingInfoDTO       `json:"pricing_info"`
}

func (r roomDTO) toDomain() domain.Room {
	return domain.Room{
		ID: r.ID, HotelID: r.HotelID, Name: r.Name, Description: r.Description,
		Capacity: r.Capacity, AreaSqm: r.AreaSqm,
		PricePerDay: r.PricePerDay, PricePerHour: r.PricePerHour, Currency: r.Currency,
		RoomType: r.RoomType, Features: r.Features, LayoutOptions: r.LayoutOptions,
		Images: r.Images, IsAvailable: r.IsAvailable, Approval: r.Approval,
		AverageRating: r.AverageRating, TotalBookings: r.TotalBookings,
		DayQuote: r.PricingInfo.quote(), HourQuote: r.PricingInfo.hourQuote(),
	}
}

type serviceDTO struct {
	ID          string          `json:"id"`
	HotelID     string          `json:"hotel_id"`
	Name        string          `json:"name"`
	Description *string         `json:"description"`
	Price       float64         `json:"price"`
	Currency    string          `json:"currency"`
	Unit        string          `json:"unit"`
	Category    string          `json:"category"`
	IsAvailable bool            `json:"is_available"`
	PricingInfo *pricingInfoDTO `json:"pricing_info"`
}

func (s serviceDTO) toDomain() domain.ExtraService {
	return domain.ExtraService{
		ID: s.ID, HotelID: s.HotelID, Name: s.Name, Description: s.Description,
		Price: s.Price, Currency: s.Currency, Unit: s.Unit, Category: s.Category,
		IsAvailable: s.IsAvailable, Quote: s.PricingInfo.quote(),
	}
}

type bookingDTO struct {
	ID              string               `json:"id"`
	RoomID          string               `json:"room_id"`
	CustomerID      string               `json:"customer_id"`
	StartDate       time.Time            `json:"start_date"`
	EndDate         time.Time            `json:"end_date"`
	GuestCount      int                  `json:"guest_count"`
	BookingType     domain.BookingType   `json:"booking_type"`
	TotalDays       int                  `json:"total_days"`
	TotalHours      *int                 `json:"total_hours"`
	RoomPrice       float64              `json:"room_price"`
	ServicesPrice   float64              `json:"services_price"`
	TotalPrice      float64              `json:"total_price"`
	Status          domain.BookingStatus `json:"status"`
	PaymentStatus   domain.PaymentStatus `json:"payment_status"`
	SpecialRequests *string              `json:"special_requests"`
	ExtraServices   []domain.ServiceLine `json:"extra_services"`
	ContactPerson   string               `json:"contact_person"`
	ContactPhone    string               `json:"contact_phone"`
	ContactEmail    string               `json:"contact_email"`
	CompanyName     *string              `json:"company_name"`
	CreatedAt       time.Time            `json:"created_at"`
	UpdatedAt       time.Time            `json:"updated_at"`
}

func (b bookingDTO) toDomain() domain.Booking {
	return domain.Booking{
		ID: b.ID, RoomID: b.RoomID, CustomerID: b.CustomerID,
		StartDate: b.StartDate, EndDate: b.EndDate, GuestCount: b.GuestCount,
		BookingType: b.BookingType, TotalDays: b.TotalDays, TotalHours: b.TotalHours,
		RoomPrice: b.RoomPrice, ServicesPrice: b.ServicesPrice, TotalPrice: b.TotalPrice,
		Status: b.Status, PaymentStatus: b.PaymentStatus,
		SpecialRequests: b.SpecialRequests, ExtraServices: b.ExtraServices,
		ContactPerson: b.ContactPerson, ContactPhone: b.ContactPhone,
		ContactEmail: b.ContactEmail, CompanyName: b.CompanyName,
		CreatedAt: b.CreatedAt, UpdatedAt: b.UpdatedAt,
	}
}

type availabilityDTO struct {
	IsAvailable bool     `json:"is_available"`
	Conflicts   []string `json:"conflicting_bookings"`
}

type paymentDTO struct {
	ID          string               `json:"id"`
	BookingID   string               `json:"booking_id"`
	SessionID   *string              `json:"session_id"`
	Amount      float64              `json:"amount"`
	Currency    string               `json:"currency"`
	Method      string               `json:"payment_method"`
	Status      domain.PaymentStatus `json:"payment_status"`
	CheckoutURL *string              `json:"stripe_checkout_url"`
	CreatedAt   time.Time            `json:"created_at"`
	UpdatedAt   time.Time            `json:"updated_at"`
}

func (p paymentDTO) toDomain() domain.Payment {
	return domain.Payment{
		ID: p.ID, BookingID: p.BookingID, SessionID: p.SessionID,
		Amount: p.Amount, Currency: p.Currency, Method: p.Method, Status: p.Status,
		CheckoutURL: p.CheckoutURL, CreatedAt: p.CreatedAt, UpdatedAt: p.UpdatedAt,
	}
}

type adDTO struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	AdType      string          `json:"ad_type"`
	TargetID    *string         `json:"target_id"`
	TargetURL   *string         `json:"target_url"`
	ImageURL    string          `json:"image_url"`
	Priority    int             `json:"priority"`
	Status      domain.AdStatus `json:"status"`
	StartDate   time.Time       `json:"start_date"`
	EndDate     time.Time       `json:"end_date"`
	TotalViews  int             `json:"total_views"`
	TotalClicks int             `json:"total_clicks"`
}

func (a adDTO) toDomain() domain.Advertisement {
	return domain.Advertisement{
		ID: a.ID, Title: a.Title, Description: a.Description, AdType: a.AdType,
		TargetID: a.TargetID, TargetURL: a.TargetURL, ImageURL: a.ImageURL,
		Priority: a.Priority, Status: a.Status, StartDate: a.StartDate, EndDate: a.EndDate,
		TotalViews: a.TotalViews, TotalClicks: a.TotalClicks,
	}
}
