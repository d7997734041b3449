package notify

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"sync"

	"roamio/middleware"
	"roamio/mq"

	"github.com/gorilla/websocket"
	"github.com/julienschmidt/httprouter"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		// The mobile clients connect from app webviews; origin is not
		// meaningful there.
		return true
	},
}

var (
	subscribers = make(map[string][]*websocket.Conn)
	mu          sync.Mutex
)

// GET /ws/itineraries/:id?token=...
// Subscribes a client to schedule-changed events for one itinerary, so
// badge counters refresh without polling.
func HandleWS(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	if _, err := middleware.ValidateRawToken(r.URL.Query().Get("token")); err != nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	itineraryID := ps.ByName("id")

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		http.Error(w, "WebSocket upgrade failed", http.StatusBadRequest)
		return
	}

	mu.Lock()
	subscribers[itineraryID] = append(subscribers[itineraryID], conn)
	mu.Unlock()

	// Keep the connection open until the client goes away.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}

	mu.Lock()
	conns := subscribers[itineraryID]
	remaining := make([]*websocket.Conn, 0, len(conns))
	for _, c := range conns {
		if c != conn {
			remaining = append(remaining, c)
		}
	}
	subscribers[itineraryID] = remaining
	mu.Unlock()

	conn.Close()
}

// Broadcast pushes an event to every subscriber of its itinerary. Dead
// connections are dropped on write failure.
func Broadcast(event mq.ScheduleEvent) {
	data, err := json.Marshal(event)
	if err != nil {
		log.Printf("[notify] failed to marshal event: %v", err)
		return
	}

	mu.Lock()
	defer mu.Unlock()

	conns := subscribers[event.ItineraryID]
	alive := make([]*websocket.Conn, 0, len(conns))
	for _, c := range conns {
		if err := c.WriteMessage(websocket.TextMessage, data); err != nil {
			c.Close()
			continue
		}
		alive = append(alive, c)
	}
	subscribers[event.ItineraryID] = alive
}

// Start wires the hub to the schedule-events channel. Run once at boot.
func Start(ctx context.Context) {
	go mq.Subscribe(ctx, Broadcast)
}
