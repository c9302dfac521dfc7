package domain

import "fmt"

// TransportMode tags stations and routes as bus or train.
type TransportMode string

const (
	ModeTrain TransportMode = "train"
	ModeBus   TransportMode = "bus"
)

func ParseTransportMode(s string) (TransportMode, error) {
	switch TransportMode(s) {
	case ModeTrain, ModeBus:
		return TransportMode(s), nil
	default:
		return "", fmt.Errorf("unknown transport mode %q", s)
	}
}

// NearbyStation is a bus stop or train station resolved for a user location.
// Distance is kilometers from the reference point.
type NearbyStation struct {
	ID        string        `json:"id"`
	Name      string        `json:"name"`
	Mode      TransportMode `json:"type"`
	Distance  float64       `json:"distance"`
	Latitude  float64       `json:"latitude"`
	Longitude float64       `json:"longitude"`
	ATCOCode  string        `json:"atcocode,omitempty"`
}
