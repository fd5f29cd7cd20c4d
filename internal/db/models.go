package db

import "time"

// Booking is one request to use a hall for an event. BookingDate, StartTime
// and EndTime are kept as the strings the client submitted: the date is an
// opaque partition key matched by equality, the times are "HH:MM" 24h.
type Booking struct {
	ID           int       `json:"id"`
	HallName     string    `json:"hallName"`
	BookingDate  string    `json:"bookingDate"`
	BookingTime  string    `json:"bookingTime,omitempty"`
	StartTime    string    `json:"startTime"`
	EndTime      string    `json:"endTime"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PhoneNumber  string    `json:"phoneNumber"`
	Department   string    `json:"department"`
	EventName    string    `json:"eventName"`
	EventPurpose string    `json:"eventPurpose"`
	UserEmail    string    `json:"userEmail"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"createdAt"`
}

type Hall struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Capacity    string    `json:"capacity"`
	Location    string    `json:"location"`
	Image       string    `json:"image"`
	CreatedAt   time.Time `json:"createdAt"`
}

type User struct {
	ID           int       `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"createdAt"`
}

// ResetToken is a single-use password recovery credential.
type ResetToken struct {
	Token     string
	Email     string
	ExpiresAt time.Time
	Used      bool
}
