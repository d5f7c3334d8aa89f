package observability

type EventEnvelope struct {
	EventType string      `json:"event_type"`
	EventName string      `json:"event_name"`
	Payload   interface{} `json:"payload"`
}

// WSEventPayload describes a websocket lifecycle event on one of the
// deals-room feeds (deals, dms, notifications).
type WSEventPayload struct {
	Feed       string `json:"feed"`
	Event      string `json:"event"`
	ConnID     string `json:"conn_id"`
	DurationMS int64  `json:"duration_ms"`
	Reason     string `json:"reason,omitempty"`
}

// IdentityPayload identifies the connection owner.
type IdentityPayload struct {
	UserID   int    `json:"user_id"`
	DeviceID string `json:"device_id,omitempty"`
	IP       string `json:"ip,omitempty"`
}

// WSEvent bundles the two payloads the events consumer expects.
type WSEvent struct {
	WS       WSEventPayload  `json:"ws"`
	Identity IdentityPayload `json:"identity"`
}

func BuildHeaders(requestID, traceID string) map[string]string {
	headers := map[string]string{}
	if requestID != "" {
		headers["x-request-id"] = requestID
	}
	if traceID != "" {
		headers["trace_id"] = traceID
	}
	return headers
}
