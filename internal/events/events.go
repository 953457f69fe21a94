package events

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Type string

const (
	TypeCustomOrderSubmitted Type = "custom_order.submitted"
	TypeCheckoutHandedOff    Type = "checkout.handed_off"
)

type Event struct {
	ID         string          `json:"id"`
	Type       Type            `json:"type"`
	SessionID  string          `json:"session_id"`
	OccurredAt time.Time       `json:"occurred_at"`
	Payload    json.RawMessage `json:"payload"`
}

// New marshals payload and stamps the event with a fresh id.
func New(t Type, sessionID string, payload any, now time.Time) (Event, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return Event{}, err
	}
	return Event{
		ID:         uuid.NewString(),
		Type:       t,
		SessionID:  sessionID,
		OccurredAt: now.UTC(),
		Payload:    raw,
	}, nil
}

type Publisher interface {
	Publish(ctx context.Context, e Event) error
	Close() error
}

// LogPublisher writes events to the log. Used when no broker is configured.
type LogPublisher struct {
	log *zap.Logger
}

func NewLogPublisher(log *zap.Logger) *LogPublisher {
	return &LogPublisher{log: log}
}

func (p *LogPublisher) Publish(_ context.Context, e Event) error {
	p.log.Info("event",
		zap.String("event_id", e.ID),
		zap.String("event_type", string(e.Type)),
		zap.String("session_id", e.SessionID),
		zap.ByteString("payload", e.Payload),
	)
	return nil
}

func (p *LogPublisher) Close() error { return nil }
