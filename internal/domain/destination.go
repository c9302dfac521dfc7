package domain

// Destination is immutable reference data: loaded once from the catalog at
// startup, never mutated during a session.
type Destination struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Location    string  `json:"location"`
	StationCode string  `json:"station_code,omitempty"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	Rating      float64 `json:"rating"`
	Description string  `json:"description,omitempty"`
	BestTime    string  `json:"best_time,omitempty"`
	Category    string  `json:"category"`
	Image       string  `json:"image,omitempty"`
}

// CategoryAll is the sentinel category that disables category filtering.
const CategoryAll = "All"

type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}
