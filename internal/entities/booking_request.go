package entities

// BookingRequest is the payload a user submits to request a hall.
type BookingRequest struct {
	HallName     string `json:"hallName"`
	BookingDate  string `json:"bookingDate"`
	BookingTime  string `json:"bookingTime"`
	StartTime    string `json:"startTime"`
	EndTime      string `json:"endTime"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	PhoneNumber  string `json:"phoneNumber"`
	Department   string `json:"department"`
	EventName    string `json:"eventName"`
	EventPurpose string `json:"eventPurpose"`
	UserEmail    string `json:"userEmail"`
}
