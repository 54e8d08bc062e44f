package entity

// Suggestion is one candidate place returned by geocoding, kept in service order.
type Suggestion struct {
	DisplayName string  `json:"displayName"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
}

// Coordinates returns the suggestion's position.
func (s Suggestion) Coordinates() Coordinates {
	return Coordinates{Latitude: s.Latitude, Longitude: s.Longitude}
}
