package api

import "hallmate/internal/db"

// Bookings
type CreateBookingResponse struct {
	ID int `json:"id"`
}
type BookingsResponse struct {
	Bookings []db.Booking `json:"bookings"`
}
type UpdateBookingStatusRequest struct {
	ID     int    `json:"id"`
	Status string `json:"status"`
}
type UpdateBookingStatusResponse struct {
	Booking          db.Booking `json:"booking"`
	NotificationSent bool       `json:"notificationSent"`
}

// Halls
type HallsResponse struct {
	Halls []db.Hall `json:"halls"`
}

// Auth
type SignupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
type UserInfo struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}
type LoginResponse struct {
	Message string   `json:"message"`
	Token   string   `json:"token"`
	User    UserInfo `json:"user"`
}
type ForgotPasswordRequest struct {
	Email string `json:"email"`
}
type VerifyResetTokenRequest struct {
	Token string `json:"token"`
}
type ResetPasswordRequest struct {
	Token       string `json:"token"`
	NewPassword string `json:"newPassword"`
}

// Users
type UsersResponse struct {
	Users []UserInfo `json:"users"`
}

type MessageResponse struct {
	Message string `json:"message"`
}
