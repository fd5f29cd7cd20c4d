package entities

// HallRequest covers hall create (ID empty) and update (ID set) payloads.
type HallRequest struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Capacity    string `json:"capacity"`
	Location    string `json:"location"`
	Image       string `json:"image"`
}
