// Package analytics reports anonymous usage events over HTTP. Emission is
// fire-and-forget: a failed or slow telemetry endpoint must never affect a
// tool call.
package analytics

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"sync/atomic"
	"time"
)

type service struct {
	endpoint string
	client   HTTPClient
	disabled atomic.Bool
}

// NewService builds the analytics service. An empty endpoint disables
// emission entirely. A nil client falls back to http.DefaultClient.
func NewService(endpoint string, client HTTPClient) Service {
	if client == nil {
		client = defaultHTTPClient{}
	}
	s := &service{endpoint: endpoint, client: client}
	if endpoint == "" {
		s.disabled.Store(true)
	}
	return s
}

type defaultHTTPClient struct{}

func (defaultHTTPClient) Post(url, contentType string, body io.Reader) (*http.Response, error) {
	return http.DefaultClient.Post(url, contentType, body)
}

func (s *service) Disable() {
	s.disabled.Store(true)
}

func (s *service) Enable() {
	if s.endpoint == "" {
		return
	}
	s.disabled.Store(false)
}

// EmitEvent posts the event in a background goroutine. Errors are logged at
// debug level and dropped.
func (s *service) EmitEvent(event TrackEvent) {
	if s.disabled.Load() {
		return
	}

	payload, err := json.Marshal(event)
	if err != nil {
		slog.Debug("failed to encode analytics event", "event", event.Name, "error", err)
		return
	}

	go func() {
		resp, err := s.client.Post(s.endpoint, "application/json", bytes.NewReader(payload))
		if err != nil {
			slog.Debug("failed to emit analytics event", "event", event.Name, "error", err)
			return
		}
		defer resp.Body.Close()

		if resp.StatusCode >= http.StatusBadRequest {
			slog.Debug("analytics endpoint rejected event", "event", event.Name, "status", resp.StatusCode)
		}
	}()
}

func (s *service) NewStartupEvent(info StartupEventInfo) TrackEvent {
	return TrackEvent{
		Name:      eventStartup,
		Timestamp: time.Now(),
		Properties: map[string]string{
			"version":  info.Version,
			"store":    info.StoreBackend,
			"readOnly": strconv.FormatBool(info.ReadOnly),
		},
	}
}

func (s *service) NewToolsEvent(toolUsed string) TrackEvent {
	return TrackEvent{
		Name:      eventToolUsed,
		Timestamp: time.Now(),
		Properties: map[string]string{
			"tool": toolUsed,
		},
	}
}
