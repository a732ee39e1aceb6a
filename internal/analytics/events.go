package analytics

import "time"

// Event names sent to the telemetry endpoint.
const (
	eventStartup  = "server_startup"
	eventToolUsed = "tool_used"
)

// TrackEvent is a single usage event. Properties never carry record data;
// only tool names and server configuration are reported.
type TrackEvent struct {
	Name       string            `json:"event"`
	Timestamp  time.Time         `json:"timestamp"`
	Properties map[string]string `json:"properties,omitempty"`
}

// StartupEventInfo describes the server configuration at boot.
type StartupEventInfo struct {
	Version      string
	StoreBackend string
	ReadOnly     bool
}
