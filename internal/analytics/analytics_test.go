package analytics

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestAllowed(t *testing.T) {
	tests := []struct {
		optOut      bool
		interactive bool
		expected    bool
	}{
		{false, true, true},
		{true, true, false},
		{false, false, false},
		{true, false, false},
	}

	for _, tt := range tests {
		result := allowed(tt.optOut, tt.interactive)
		if result != tt.expected {
			t.Errorf("allowed(optOut=%v, interactive=%v) = %v, want %v",
				tt.optOut, tt.interactive, result, tt.expected)
		}
	}
}

func TestSend(t *testing.T) {
	var got launchEvent
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		body, _ := io.ReadAll(r.Body)
		if err := json.Unmarshal(body, &got); err != nil {
			t.Errorf("payload not valid JSON: %v", err)
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	oldEndpoint := endpoint
	endpoint = server.URL
	defer func() { endpoint = oldEndpoint }()

	if err := send("client-123", "1.0.0"); err != nil {
		t.Fatalf("send() error = %v", err)
	}
	if got.ClientID != "client-123" {
		t.Errorf("expected client_id 'client-123', got %q", got.ClientID)
	}
	if got.App != "tubedeck" {
		t.Errorf("expected app 'tubedeck', got %q", got.App)
	}
	if got.Version != "1.0.0" {
		t.Errorf("expected version '1.0.0', got %q", got.Version)
	}
	if got.OS == "" {
		t.Error("expected a non-empty os field")
	}
}

func TestSendServerDown(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // immediately, so the address refuses connections

	oldEndpoint := endpoint
	endpoint = server.URL
	defer func() { endpoint = oldEndpoint }()

	// The error surfaces from send but Bootstrap callers never see it
	if err := send("client-123", "1.0.0"); err == nil {
		t.Error("expected an error for an unreachable collector")
	}
}
