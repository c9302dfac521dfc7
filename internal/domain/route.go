package domain

// TransportRoute is one departure option from a station towards a destination.
// Times are "HH:MM" clock strings, Duration is pre-formatted ("1h 15m" / "40m"),
// Price is a whole currency unit.
type TransportRoute struct {
	ID                string        `json:"id"`
	Mode              TransportMode `json:"type"`
	VehicleName       string        `json:"vehicle_name"`
	VehicleNumber     string        `json:"vehicle_number"`
	DepartureLocation string        `json:"departure_location"`
	DepartureTime     string        `json:"departure_time"`
	ArrivalLocation   string        `json:"arrival_location"`
	ArrivalTime       string        `json:"arrival_time"`
	Duration          string        `json:"duration"`
	Price             int           `json:"price"`
	Rating            float64       `json:"rating"`
	Operator          string        `json:"operator"`
	Platform          string        `json:"platform,omitempty"`
	Status            string        `json:"status,omitempty"`
}
