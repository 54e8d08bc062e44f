package entity

import (
	"fmt"
	"strconv"
)

const (
	// IconURLTemplate renders an OpenWeatherMap icon id at 2x size.
	IconURLTemplate = "http://openweathermap.org/img/wn/%s@2x.png"
	// NoDescription is shown when the weather service sends no condition entry.
	NoDescription = "No description available"
)

// WeatherResult is the current weather for a location, extracted field by field.
type WeatherResult struct {
	LocationName       string  `json:"locationName"`
	Description        string  `json:"description"`
	TemperatureCelsius float64 `json:"temperatureCelsius"`
	IconID             string  `json:"iconId"`
}

// IconURL returns the icon image URL, or "" when there is no icon id.
func (w WeatherResult) IconURL() string {
	if w.IconID == "" {
		return ""
	}
	return fmt.Sprintf(IconURLTemplate, w.IconID)
}

// DisplayDescription returns the description or the fallback text.
func (w WeatherResult) DisplayDescription() string {
	if w.Description == "" {
		return NoDescription
	}
	return w.Description
}

// DisplayTemperature prints the temperature in its shortest form, e.g. "18.2 °C".
func (w WeatherResult) DisplayTemperature() string {
	return strconv.FormatFloat(w.TemperatureCelsius, 'f', -1, 64) + " °C"
}

// String renders the result the way the screen shows it: "Paris / clear sky / 18.2 °C".
func (w WeatherResult) String() string {
	return w.LocationName + " / " + w.DisplayDescription() + " / " + w.DisplayTemperature()
}
