package models

import "time"

// UserRole identifies which surface of the app a user belongs to.
type UserRole string

const (
	RoleCustomer UserRole = "Customer"
	RoleProvider UserRole = "Provider"
	RoleAdmin    UserRole = "Admin"
)

// User is the platform user record as returned by the backend.
type User struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Email       string     `json:"email"`
	Role        UserRole   `json:"role"`
	PhoneNumber string     `json:"phoneNumber,omitempty"`
	CreatedAt   *time.Time `json:"createdAt,omitempty"`
	UpdatedAt   *time.Time `json:"updatedAt,omitempty"`
}

// AuthResponse is what the backend returns from login and register.
type AuthResponse struct {
	AccessToken string `json:"access_token"`
	User        User   `json:"user"`
}

// Credentials carries a login request.
type Credentials struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Registration carries a signup request.
type Registration struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}
