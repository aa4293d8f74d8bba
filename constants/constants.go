package constants

import (
	"os"
	"time"
)

// GetServeAddr returns the HTTP listen address, overridable with
// SERVE_ADDR.
func GetServeAddr() string {
	addr := os.Getenv("SERVE_ADDR")
	if addr != "" {
		return addr
	}
	return ":8080"
}

// ListenDebounce is how long the listen command waits for held notes
// to settle before recognizing a chord.
const ListenDebounce = 75 * time.Millisecond

// MinChordKeys is the fewest simultaneous keys treated as a chord.
const MinChordKeys = 3
