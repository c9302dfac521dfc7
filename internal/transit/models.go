package transit

// Response shapes for the TransportAPI (transportapi.com) v3 UK endpoints.
// Only the fields the formatter reads are modeled.

type placesResponse struct {
	Members []placeMember `json:"member"`
}

type placeMember struct {
	Type        string  `json:"type"`
	Name        string  `json:"name"`
	ATCOCode    string  `json:"atcocode"`
	StationCode string  `json:"station_code"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	Distance    float64 `json:"distance"` // meters
}

type trainDeparturesResponse struct {
	StationName string `json:"station_name"`
	StationCode string `json:"station_code"`
	Departures  struct {
		All []trainDeparture `json:"all"`
	} `json:"departures"`
}

type trainDeparture struct {
	TrainUID              string `json:"train_uid"`
	OriginName            string `json:"origin_name"`
	DestinationName       string `json:"destination_name"`
	OperatorName          string `json:"operator_name"`
	Platform              string `json:"platform"`
	Status                string `json:"status"`
	AimedDepartureTime    string `json:"aimed_departure_time"`
	ExpectedDepartureTime string `json:"expected_departure_time"`
	AimedArrivalTime      string `json:"aimed_arrival_time"`
}

type busDeparturesResponse struct {
	StopName   string                    `json:"stop_name"`
	Departures map[string][]busDeparture `json:"departures"`
}

type busDeparture struct {
	Line                  string `json:"line"`
	LineName              string `json:"line_name"`
	Direction             string `json:"direction"`
	Operator              string `json:"operator"`
	OperatorName          string `json:"operator_name"`
	AimedDepartureTime    string `json:"aimed_departure_time"`
	ExpectedDepartureTime string `json:"expected_departure_time"`
}
