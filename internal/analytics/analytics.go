package analytics

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"os"
	"runtime"
	"time"

	"github.com/mattn/go-isatty"
)

const defaultEndpoint = "https://telemetry.tubedeck.dev/v1/launch"

// endpoint is a var so tests can point it at a local server
var endpoint = defaultEndpoint

var client = &http.Client{Timeout: 3 * time.Second}

// launchEvent is the one payload this package ever sends
type launchEvent struct {
	ClientID string `json:"client_id"`
	App      string `json:"app"`
	Version  string `json:"version"`
	OS       string `json:"os"`
}

// InTerminal reports whether stdout is attached to an interactive terminal.
// Piped or redirected runs skip the bootstrap entirely.
func InTerminal() bool {
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// allowed is the bootstrap gate: opted-in and interactive
func allowed(optOut, interactive bool) bool {
	return !optOut && interactive
}

// Bootstrap fires the one-shot startup ping in the background. Best effort:
// failures and slow responses are swallowed, and nothing downstream ever
// waits on or reads from this.
func Bootstrap(clientID, version string, optOut bool) {
	if !allowed(optOut, InTerminal()) {
		return
	}
	go func() {
		_ = send(clientID, version)
	}()
}

func send(clientID, version string) error {
	payload, err := json.Marshal(launchEvent{
		ClientID: clientID,
		App:      "tubedeck",
		Version:  version,
		OS:       runtime.GOOS,
	})
	if err != nil {
		return err
	}

	resp, err := client.Post(endpoint, "application/json", bytes.NewReader(payload))
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)
	return nil
}
