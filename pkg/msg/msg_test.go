package msg

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestGetMessage(t *testing.T) {
	Register("test.plain", "nothing to replace")
	Register("test.args", "{0} / {1} / {2} °C")
	Register("test.error", "lookup failed: {0}")
	Register("test.struct", "payload {0}")

	tests := []struct {
		name string
		key  string
		args []interface{}
		want string
	}{
		{"plain", "test.plain", nil, "nothing to replace"},
		{"primitives", "test.args", []interface{}{"Paris", "clear sky", 18.2}, "Paris / clear sky / 18.2 °C"},
		{"error argument", "test.error", []interface{}{errors.New("boom")}, "lookup failed: boom"},
		{"struct argument", "test.struct", []interface{}{struct {
			Lat float64 `json:"lat"`
		}{Lat: 1.5}}, `payload {"lat":1.5}`},
		{"missing key", "test.missing", nil, "Message not found: test.missing"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetMessage(tt.key, tt.args...); got != tt.want {
				t.Errorf("GetMessage(%q) = %q, want %q", tt.key, got, tt.want)
			}
		})
	}
}

func TestInitReadsNestedKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "messages.yml")
	content := "lookup:\n  search:\n    start: \"searching {0}\"\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write messages: %v", err)
	}

	if err := Init(path); err != nil {
		t.Fatalf("Init returned error: %v", err)
	}

	if got := GetMessage("lookup.search.start", "Paris"); got != "searching Paris" {
		t.Errorf("GetMessage = %q, want %q", got, "searching Paris")
	}
}

func TestInitMissingFile(t *testing.T) {
	if err := Init(filepath.Join(t.TempDir(), "absent.yml")); err == nil {
		t.Fatal("expected error for missing messages file")
	}
}
