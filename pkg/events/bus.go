// Package events carries the orchestration decision trail (intent
// classified, source accepted or rejected, model fallback taken) over an
// in-process pub/sub channel, so behavior is observable without scraping
// stdout. A single subscriber relays every event to the structured logger.
package events

import (
	"context"
	"encoding/json"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"

	"floria-be/internal/pkg/logger"
)

const TopicDecisions = "assistant.decisions"

// Decision kinds published by the orchestration engine.
const (
	KindIntentClassified = "intent_classified"
	KindGreeting         = "greeting_short_circuit"
	KindSourceAccepted   = "source_accepted"
	KindSourceRejected   = "source_rejected"
	KindToolFailed       = "tool_failed"
	KindModelFallback    = "model_fallback"
)

// Decision is one observable step of message handling.
type Decision struct {
	Kind    string                 `json:"kind"`
	Session string                 `json:"session,omitempty"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// Bus wraps a watermill gochannel pub/sub. Publishing never blocks message
// handling: a failed publish is logged and dropped.
type Bus struct {
	pubSub *gochannel.GoChannel
	log    logger.ILogger
}

func NewBus(log logger.ILogger) *Bus {
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermill.NewStdLogger(false, false),
	)
	b := &Bus{pubSub: pubSub, log: log}
	b.startLogRelay()
	return b
}

func (b *Bus) startLogRelay() {
	messages, err := b.pubSub.Subscribe(context.Background(), TopicDecisions)
	if err != nil {
		b.log.Error("events", "Failed to subscribe to decision topic", map[string]interface{}{"error": err.Error()})
		return
	}

	go func() {
		for msg := range messages {
			var d Decision
			if err := json.Unmarshal(msg.Payload, &d); err == nil {
				details := d.Details
				if details == nil {
					details = map[string]interface{}{}
				}
				details["session"] = d.Session
				b.log.Info("events", d.Kind, details)
			}
			msg.Ack()
		}
	}()
}

// Publish emits a decision event.
func (b *Bus) Publish(kind, session string, details map[string]interface{}) {
	payload, err := json.Marshal(Decision{Kind: kind, Session: session, Details: details})
	if err != nil {
		return
	}
	if err := b.pubSub.Publish(TopicDecisions, message.NewMessage(uuid.NewString(), payload)); err != nil {
		b.log.Warn("events", "Failed to publish decision event", map[string]interface{}{"error": err.Error(), "kind": kind})
	}
}

// Close shuts the underlying channel down; pending events are dropped.
func (b *Bus) Close() error {
	return b.pubSub.Close()
}
