package entities

type BookingEmailData struct {
	Name        string
	HallName    string
	BookingDate string
	StartTime   string
	EndTime     string
	BookingTime string
	EventName   string
	Status      string
	BookingID   int
	CurrentYear int
}
