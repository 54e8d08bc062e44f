package failure

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestErrorMessages(t *testing.T) {
	cause := errors.New("dial tcp: connection refused")

	tests := []struct {
		name     string
		err      *Error
		kind     Kind
		contains string
	}{
		{"not found", NotFound("00000"), KindNotFound, "not found"},
		{"service status text", Service("fetching coordinates", 500, "Internal Server Error"), KindService, "Internal Server Error"},
		{"service default text", Service("fetching weather data", 503, ""), KindService, "Service Unavailable"},
		{"bad response", BadResponse("fetching weather data", errors.New("unexpected EOF")), KindService, "unexpected EOF"},
		{"network", Network("fetching coordinates", cause), KindNetwork, "connection refused"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Kind != tt.kind {
				t.Errorf("Kind = %s, want %s", tt.err.Kind, tt.kind)
			}
			if !strings.Contains(tt.err.Error(), tt.contains) {
				t.Errorf("Error() = %q, want it to contain %q", tt.err.Error(), tt.contains)
			}
		})
	}
}

func TestKindOfWrapped(t *testing.T) {
	cause := errors.New("timeout")
	wrapped := fmt.Errorf("get weather: %w", Network("fetching weather data", cause))

	if KindOf(wrapped) != KindNetwork || !IsNetwork(wrapped) {
		t.Errorf("KindOf(wrapped) = %q, want NETWORK", KindOf(wrapped))
	}
	if IsNotFound(wrapped) || IsService(wrapped) {
		t.Error("wrapped network error matched another kind")
	}
	if !errors.Is(wrapped, cause) {
		t.Error("cause not reachable through Unwrap")
	}
	if KindOf(errors.New("plain")) != "" {
		t.Error("plain error reported a kind")
	}
}
