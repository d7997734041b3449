package mq

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"roamio/rdx"
)

// Channel carrying schedule-changed broadcasts.
const ScheduleChannel = "schedule-events"

// ScheduleEvent is the fire-and-forget signal emitted after a save that
// changed or deleted at least one item. Observers (badge counters, the
// websocket hub) react to it; nothing waits on them.
type ScheduleEvent struct {
	ItineraryID string `json:"itineraryid"`
	UserID      string `json:"user_id"`
	Updated     int    `json:"updated"`
	Deleted     int    `json:"deleted"`
	At          int64  `json:"at"`
}

// EmitScheduleChanged publishes the event to Redis. Publish failures are
// logged and swallowed: the save already succeeded and must not be
// reported as failed because a listener missed its signal.
func EmitScheduleChanged(ctx context.Context, event ScheduleEvent) {
	if event.At == 0 {
		event.At = time.Now().Unix()
	}

	data, err := json.Marshal(event)
	if err != nil {
		log.Printf("[mq] failed to marshal schedule event: %v", err)
		return
	}

	if err := rdx.Conn.Publish(ctx, ScheduleChannel, data).Err(); err != nil {
		log.Printf("[mq] failed to publish schedule event: %v", err)
	}
}

// Subscribe hands every schedule event to fn until the context ends.
// Run it in its own goroutine.
func Subscribe(ctx context.Context, fn func(ScheduleEvent)) {
	sub := rdx.Conn.Subscribe(ctx, ScheduleChannel)
	defer sub.Close()

	log.Println("[mq] listening for schedule events")
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-sub.Channel():
			if !ok {
				return
			}
			var event ScheduleEvent
			if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
				log.Printf("[mq] failed to parse schedule event: %v", err)
				continue
			}
			fn(event)
		}
	}
}
