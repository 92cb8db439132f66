package event

import (
	"encoding/json"
	"time"
)

const (
	AuditTopic              = "canteen.ui.audit"
	EventOrderSubmitted     = "canteen.order.submitted"
	EventOrderStatusChanged = "canteen.order.status_changed"
)

// AuditEvent is published for every mutation a canteen page attempts.
type AuditEvent struct {
	EventType  string          `json:"event_type"`
	ID         string          `json:"id"`
	OccurredAt time.Time       `json:"occurred_at"`
	Target     string          `json:"target"`
	Payload    json.RawMessage `json:"payload,omitempty"`
	Success    bool            `json:"success"`
	Error      string          `json:"error,omitempty"`
}
