package resource

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestInitResolvesPlaceholders(t *testing.T) {
	t.Setenv("WEATHER_HUNT_TEST_PORT", "9090")

	path := filepath.Join(t.TempDir(), "application.yml")
	content := `app:
  server:
    port: ${WEATHER_HUNT_TEST_PORT:8080}
    context-path: ${WEATHER_HUNT_TEST_UNSET:/weather-hunt}
  session:
    ttl: 15m
    max: 25
  name: plain
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write properties: %v", err)
	}

	if err := Init(path); err != nil {
		t.Fatalf("Init returned error: %v", err)
	}

	if got := GetString("app.server.port"); got != "9090" {
		t.Errorf("port = %q, want 9090 from environment", got)
	}
	if got := GetString("app.server.context-path"); got != "/weather-hunt" {
		t.Errorf("context path = %q, want default /weather-hunt", got)
	}
	if got := GetString("app.name"); got != "plain" {
		t.Errorf("plain value = %q, want plain", got)
	}
	if got := GetDurationOrDefault("app.session.ttl", time.Minute); got != 15*time.Minute {
		t.Errorf("ttl = %v, want 15m", got)
	}
	if got := GetIntOrDefault("app.session.max", 1); got != 25 {
		t.Errorf("max = %d, want 25", got)
	}
}

func TestInitAgainPicksUpLaterEnvironment(t *testing.T) {
	path := filepath.Join(t.TempDir(), "application.yml")
	content := "app:\n  redis:\n    enabled: ${WEATHER_HUNT_TEST_REDIS:false}\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write properties: %v", err)
	}

	if err := Init(path); err != nil {
		t.Fatalf("Init returned error: %v", err)
	}
	if GetBool("app.redis.enabled") {
		t.Fatal("redis enabled before the variable was set")
	}

	// a .env file loaded after package init sets the variable
	t.Setenv("WEATHER_HUNT_TEST_REDIS", "true")
	if err := Init(path); err != nil {
		t.Fatalf("second Init returned error: %v", err)
	}
	if !GetBool("app.redis.enabled") {
		t.Error("redis still disabled after Init with the variable set")
	}
}

func TestFilePath(t *testing.T) {
	t.Setenv("PROPERTIES_FILE_PATH", "/etc/weather-hunt/application.yml")
	if got := FilePath(); got != "/etc/weather-hunt/application.yml" {
		t.Errorf("FilePath() = %q", got)
	}
}

func TestDefaults(t *testing.T) {
	if got := GetStringOrDefault("app.absent.value", "fallback"); got != "fallback" {
		t.Errorf("GetStringOrDefault = %q, want fallback", got)
	}
	if got := GetDurationOrDefault("app.absent.duration", 3*time.Second); got != 3*time.Second {
		t.Errorf("GetDurationOrDefault = %v, want 3s", got)
	}
	if got := GetIntOrDefault("app.absent.int", 7); got != 7 {
		t.Errorf("GetIntOrDefault = %d, want 7", got)
	}
}

func TestResolveEnvVariable(t *testing.T) {
	t.Setenv("WEATHER_HUNT_TEST_SET", "value")

	tests := []struct {
		in   string
		want interface{}
	}{
		{"${WEATHER_HUNT_TEST_SET:other}", "value"},
		{"${WEATHER_HUNT_TEST_MISSING:other}", "other"},
		{"${WEATHER_HUNT_TEST_MISSING}", ""},
		{"literal", "literal"},
	}
	for _, tt := range tests {
		if got := resolveEnvVariable(tt.in); got != tt.want {
			t.Errorf("resolveEnvVariable(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
