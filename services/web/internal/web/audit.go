package web

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/appetiteclub/canteen/pkg/canteen"
	"github.com/appetiteclub/canteen/pkg/enums/orderstatus"
	"github.com/appetiteclub/canteen/pkg/event"
	"github.com/aquamarinepk/aqm"
	"github.com/aquamarinepk/aqm/events"
	"github.com/google/uuid"
)

// AuditEntry represents a single mutation attempted from a canteen page.
type AuditEntry struct {
	ID        uuid.UUID       `json:"id"`
	Action    string          `json:"action"`
	Target    string          `json:"target"`
	Payload   json.RawMessage `json:"payload"`
	Timestamp time.Time       `json:"timestamp"`
	Success   bool            `json:"success"`
	Error     string          `json:"error,omitempty"`
}

// AuditLogger logs page mutations and, when a publisher is set, forwards
// them on the audit topic.
type AuditLogger struct {
	logger    aqm.Logger
	publisher events.Publisher
}

func NewAuditLogger(logger aqm.Logger, publisher events.Publisher) *AuditLogger {
	if logger == nil {
		logger = aqm.NewNoopLogger()
	}
	return &AuditLogger{logger: logger, publisher: publisher}
}

// Log records an audit entry. Publishing problems are logged only.
func (a *AuditLogger) Log(ctx context.Context, entry AuditEntry) {
	if entry.ID == uuid.Nil {
		entry.ID = uuid.New()
	}
	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now()
	}

	a.logger.Info("audit",
		"id", entry.ID.String(),
		"action", entry.Action,
		"target", entry.Target,
		"success", entry.Success,
		"timestamp", entry.Timestamp.Format(time.RFC3339),
		"error", entry.Error,
	)

	if a.publisher == nil {
		return
	}

	msg, err := json.Marshal(event.AuditEvent{
		EventType:  entry.Action,
		ID:         entry.ID.String(),
		OccurredAt: entry.Timestamp,
		Target:     entry.Target,
		Payload:    entry.Payload,
		Success:    entry.Success,
		Error:      entry.Error,
	})
	if err != nil {
		a.logger.Error("cannot encode audit event", "error", err)
		return
	}

	if err := a.publisher.Publish(ctx, event.AuditTopic, msg); err != nil {
		a.logger.Error("cannot publish audit event", "id", entry.ID.String(), "error", err)
	}
}

// LogOrderSubmission records one POST /order attempt.
func (a *AuditLogger) LogOrderSubmission(ctx context.Context, req canteen.OrderRequest, result *canteen.OrderResult, err error) {
	payload, _ := json.Marshal(req)

	entry := AuditEntry{
		Action:  event.EventOrderSubmitted,
		Target:  "order",
		Payload: payload,
		Success: err == nil,
	}
	if result != nil {
		entry.Target = fmt.Sprintf("order/%d", result.OrderID)
	}
	if err != nil {
		entry.Error = err.Error()
	}

	a.Log(ctx, entry)
}

// LogStatusChange records one kitchen status change attempt.
func (a *AuditLogger) LogStatusChange(ctx context.Context, orderID int64, status orderstatus.Status, err error) {
	payload, _ := json.Marshal(canteen.StatusUpdateRequest{OrderID: orderID, Status: status})

	entry := AuditEntry{
		Action:  event.EventOrderStatusChanged,
		Target:  fmt.Sprintf("order/%d", orderID),
		Payload: payload,
		Success: err == nil,
	}
	if err != nil {
		entry.Error = err.Error()
	}

	a.Log(ctx, entry)
}
