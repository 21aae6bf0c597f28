package telemetry

import (
	"os"
)

var observeEnabled bool

func init() {
	// Read once at process start. Mid-run environment changes have no effect
	// beyond the explicit test override below.
	observeEnabled = os.Getenv("DBT_OBSERVE_JSON") == "1"
}

// ObserveEnabled reports whether JSONL emission was enabled at startup.
func ObserveEnabled() bool {
	// Preserve the startup-evaluated value, but allow tests to enable
	// mid-run via env override.
	if os.Getenv("DBT_OBSERVE_JSON") == "1" {
		return true
	}
	return observeEnabled
}
