package external

// CurrentWeatherResponse is the current weather payload (OpenWeatherMap shape).
type CurrentWeatherResponse struct {
	Name    string                `json:"name"`
	Weather []WeatherConditionDTO `json:"weather"`
	Main    MainDTO               `json:"main"`
}

// WeatherConditionDTO is one condition entry; the first one is displayed.
type WeatherConditionDTO struct {
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

// MainDTO carries the measured values.
type MainDTO struct {
	Temp float64 `json:"temp"`
}

// WeatherAPIErrorResponse is the error body of the weather API.
type WeatherAPIErrorResponse struct {
	Cod     any    `json:"cod"`
	Message string `json:"message"`
}
