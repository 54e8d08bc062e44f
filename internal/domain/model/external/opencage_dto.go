package external

// GeocodingResponse is the geocoding search payload (OpenCage shape).
type GeocodingResponse struct {
	Results []GeocodingResultDTO `json:"results"`
	Status  *GeocodingStatusDTO  `json:"status,omitempty"`
}

// GeocodingResultDTO is one candidate place.
type GeocodingResultDTO struct {
	Formatted string      `json:"formatted"`
	Geometry  GeometryDTO `json:"geometry"`
}

// GeometryDTO holds the candidate position.
type GeometryDTO struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// GeocodingStatusDTO is sent with both success and error responses.
type GeocodingStatusDTO struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
