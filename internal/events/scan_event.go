package events

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
)

type EventType string

const (
	EventInfo    EventType = "info"
	EventWarn    EventType = "warn"
	EventSuccess EventType = "success"
	EventError   EventType = "error"
)

const (
	ScanEventStage = "events:scan:stage"
	ScanEventDone  = "events:scan:done"
	ScanEventUsage = "events:scan:usage"
)

// ScanEvent is a simple struct representing a backend event payload
type ScanEvent struct {
	ID        string            `json:"id"`
	Type      EventType         `json:"type"`
	Stage     string            `json:"stage,omitempty"`
	Message   string            `json:"message"`
	Timestamp time.Time         `json:"timestamp"`
	CaseID    string            `json:"caseId,omitempty"`
	Metadata  map[string]string `json:"metadata,omitempty"`
}

type contextKey string

const caseContextKey contextKey = "ridgeai/events/case"

// WithCase returns a derived context annotated with the given case id
// so event emitters can automatically scope payloads.
func WithCase(ctx context.Context, caseID string) context.Context {
	if strings.TrimSpace(caseID) == "" {
		return ctx
	}
	return context.WithValue(ctx, caseContextKey, caseID)
}

// CaseFromContext extracts the case id associated with ctx.
func CaseFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if v, ok := ctx.Value(caseContextKey).(string); ok {
		return v
	}
	return ""
}

func CreateScanEvent(eventType EventType, message string) ScanEvent {
	return ScanEvent{
		ID:        uuid.NewString(),
		Type:      eventType,
		Message:   message,
		Timestamp: time.Now(),
	}
}

// NewInfo creates an info ScanEvent.
func NewInfo(message string) ScanEvent {
	return CreateScanEvent(EventInfo, message)
}

// NewWarn creates a warn ScanEvent.
func NewWarn(message string) ScanEvent {
	return CreateScanEvent(EventWarn, message)
}

// NewError creates an error ScanEvent.
func NewError(message string) ScanEvent {
	return CreateScanEvent(EventError, message)
}

// NewSuccess creates a success ScanEvent.
func NewSuccess(message string) ScanEvent {
	return CreateScanEvent(EventSuccess, message)
}

// NewStage creates an info ScanEvent carrying a pipeline stage name.
func NewStage(stage string) ScanEvent {
	evt := CreateScanEvent(EventInfo, stage)
	evt.Stage = stage
	return evt
}
