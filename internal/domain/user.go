package domain

import "time"

type Role string

const (
	RoleCustomer Role = "customer"
	RoleManager  Role = "hotel_manager"
	RoleAdmin    Role = "admin"
)

type User struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	FullName string `json:"full_name"`
	Phone    string `json:"phone,omitempty"`
	Role     Role   `json:"role"`
	IsActive bool   `json:"is_active"`
}

// Session is the gateway's persisted client state: the backend bearer token
// plus a copy of the profile it was issued for.
type Session struct {
	ID        string    `json:"id"`
	Token     string    `json:"token"`
	User      User      `json:"user"`
	CreatedAt time.Time `json:"created_at"`
}

type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type Registration struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"full_name"`
	Phone    string `json:"phone,omitempty"`
	Role     Role   `json:"role,omitempty"`
}
