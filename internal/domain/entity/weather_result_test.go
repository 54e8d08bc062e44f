package entity

import "testing"

func TestWeatherResultDisplay(t *testing.T) {
	tests := []struct {
		name    string
		result  WeatherResult
		display string
		icon    string
	}{
		{
			name:    "paris",
			result:  WeatherResult{LocationName: "Paris", Description: "clear sky", TemperatureCelsius: 18.2, IconID: "01d"},
			display: "Paris / clear sky / 18.2 °C",
			icon:    "http://openweathermap.org/img/wn/01d@2x.png",
		},
		{
			name:    "negative whole degrees",
			result:  WeatherResult{LocationName: "Oslo", Description: "snow", TemperatureCelsius: -3, IconID: "13n"},
			display: "Oslo / snow / -3 °C",
			icon:    "http://openweathermap.org/img/wn/13n@2x.png",
		},
		{
			name:    "no condition entry",
			result:  WeatherResult{LocationName: "Nowhere", TemperatureCelsius: 0.5},
			display: "Nowhere / No description available / 0.5 °C",
			icon:    "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.result.String(); got != tt.display {
				t.Errorf("String() = %q, want %q", got, tt.display)
			}
			if got := tt.result.IconURL(); got != tt.icon {
				t.Errorf("IconURL() = %q, want %q", got, tt.icon)
			}
		})
	}
}

func TestCoordinatesString(t *testing.T) {
	c := Suggestion{DisplayName: "Paris, France", Latitude: 48.85, Longitude: 2.35}.Coordinates()
	if got := c.String(); got != "48.85,2.35" {
		t.Errorf("String() = %q, want 48.85,2.35", got)
	}
}
