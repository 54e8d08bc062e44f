package resource

import (
	"fmt"
	"log"
	"os"
	"regexp"
	"sync"
	"time"

	"github.com/spf13/viper"
)

var (
	envPattern = regexp.MustCompile(`\$\{([^:}]+)(?::([^}]*))?}`)

	mu    sync.RWMutex
	props = viper.New()
)

// init loads application properties from YAML
func init() {
	if err := Init(FilePath()); err != nil {
		log.Printf("properties not loaded from %s, defaults apply: %v", FilePath(), err)
	}
}

// FilePath returns PROPERTIES_FILE_PATH or configs/application.yml.
func FilePath() string {
	if value, ok := os.LookupEnv("PROPERTIES_FILE_PATH"); ok {
		return value
	}
	return "configs/application.yml"
}

// Init reads filepath and resolves ${ENV:default} placeholders into flat dotted keys.
// Each call replaces the previous properties, so calling it again after loading a .env file
// re-resolves the placeholders against the updated environment.
func Init(filepath string) error {
	v := viper.New()
	v.SetConfigFile(filepath)
	v.SetConfigType("yml")

	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("read properties: %w", err)
	}

	properties := make(map[string]any)
	parsePropertiesMap("", v.AllSettings(), properties)

	for key, value := range properties {
		v.Set(key, value)
	}

	mu.Lock()
	props = v
	mu.Unlock()
	return nil
}

func current() *viper.Viper {
	mu.RLock()
	defer mu.RUnlock()
	return props
}

// parsePropertiesMap reads recursively the YAML file
func parsePropertiesMap(prefix string, data map[string]any, result map[string]any) {
	for key, value := range data {
		fullKey := key
		if prefix != "" {
			fullKey = prefix + "." + key
		}

		switch v := value.(type) {
		case string:
			result[fullKey] = resolveEnvVariable(v)
		case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, float32, float64, bool:
			result[fullKey] = v
		case map[string]interface{}:
			parsePropertiesMap(fullKey, v, result)
		default:
			log.Printf("Ignoring key '%s' with unsupported type.", fullKey)
		}
	}
}

// resolveEnvVariable replaces a ${NAME:default} value with the environment value or the default.
// Plain strings are returned untouched.
func resolveEnvVariable(value string) interface{} {
	matches := envPattern.FindStringSubmatch(value)
	if len(matches) == 0 {
		return value
	}

	envName := matches[1]
	defaultValue := ""
	if len(matches) > 2 {
		defaultValue = matches[2]
	}

	if envValue, exists := os.LookupEnv(envName); exists {
		return envValue
	}
	return defaultValue
}

func GetString(key string) string {
	return current().GetString(key)
}

// GetStringOrDefault returns the property or defaultValue when it is unset or empty.
func GetStringOrDefault(key, defaultValue string) string {
	if value := current().GetString(key); value != "" {
		return value
	}
	return defaultValue
}

func GetBool(key string) bool {
	return current().GetBool(key)
}

// GetDurationOrDefault returns the property or defaultValue when it is unset or not positive.
func GetDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	if value := current().GetDuration(key); value > 0 {
		return value
	}
	return defaultValue
}

// GetIntOrDefault returns the property or defaultValue when it is unset or zero.
func GetIntOrDefault(key string, defaultValue int) int {
	if value := current().GetInt(key); value != 0 {
		return value
	}
	return defaultValue
}
