package configs

import (
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvConfig carries the environment-provided settings. It is built once by the
// composition root and handed to the components that need it.
type EnvConfig struct {
	ApplicationName   string
	WeatherAPIURL     string
	WeatherAPIToken   string
	GeocodingAPIURL   string
	GeocodingAPIToken string
}

// Load reads an optional .env file and then the process environment.
// Variables already set in the environment win over the file.
func Load(files ...string) *EnvConfig {
	_ = godotenv.Load(files...)

	v := viper.New()
	v.AutomaticEnv()

	return &EnvConfig{
		ApplicationName:   getStringOrDefault(v, "APPLICATION_NAME", "weather-hunt"),
		WeatherAPIURL:     getStringOrDefault(v, "API_URL", "https://api.openweathermap.org/data/2.5/weather"),
		WeatherAPIToken:   v.GetString("API_TOKEN"),
		GeocodingAPIURL:   getStringOrDefault(v, "GEOCODING_API_URL", "https://api.opencagedata.com/geocode/v1/json"),
		GeocodingAPIToken: v.GetString("GEOCODING_API_TOKEN"),
	}
}

// MissingCredentials lists the token variables that are empty.
func (c *EnvConfig) MissingCredentials() []string {
	var missing []string
	if c.WeatherAPIToken == "" {
		missing = append(missing, "API_TOKEN")
	}
	if c.GeocodingAPIToken == "" {
		missing = append(missing, "GEOCODING_API_TOKEN")
	}
	return missing
}

func getStringOrDefault(v *viper.Viper, key, defaultValue string) string {
	value := v.GetString(key)
	if value == "" {
		return defaultValue
	}
	return value
}
