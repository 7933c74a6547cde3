package realtime

import (
	"log/slog"
	"net/http"
	"sync"

	"topgreen/internal/lib/logger/sl"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		// Allow all origins — adjust for production if needed
		return true
	},
}

// ChangeMessage tells subscribers that a collection changed and should be
// refetched wholesale. No ordering or payload-diff guarantees.
type ChangeMessage struct {
	Table string `json:"table"`
}

// Hub fans change notifications out to websocket subscribers, one topic
// per table.
type Hub struct {
	mu          sync.Mutex
	subscribers map[string][]*websocket.Conn
}

func NewHub() *Hub {
	return &Hub{
		subscribers: make(map[string][]*websocket.Conn),
	}
}

// Broadcast notifies every subscriber of the topic. Connections that fail
// to accept the write are dropped.
func (h *Hub) Broadcast(topic string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	conns := h.subscribers[topic]
	alive := conns[:0]
	for _, c := range conns {
		if err := c.WriteJSON(ChangeMessage{Table: topic}); err != nil {
			c.Close()
			continue
		}
		alive = append(alive, c)
	}
	h.subscribers[topic] = alive
}

// SubscriberCount reports how many connections follow a topic.
func (h *Hub) SubscriberCount(topic string) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subscribers[topic])
}

// Handler upgrades the request and keeps the connection registered under
// the {topic} route parameter until the client disconnects.
func (h *Hub) Handler(log *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "realtime.Hub.Handler"

		log := log.With(slog.String("op", op))

		topic := chi.URLParam(r, "topic")
		if topic == "" {
			http.Error(w, "topic is required", http.StatusBadRequest)
			return
		}

		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Error("websocket upgrade failed", sl.Err(err))
			return
		}

		h.mu.Lock()
		h.subscribers[topic] = append(h.subscribers[topic], conn)
		h.mu.Unlock()

		log.Info("subscriber connected", slog.String("topic", topic))

		for {
			// Keeps the connection alive until the client disconnects
			if _, _, err := conn.ReadMessage(); err != nil {
				break
			}
		}

		h.remove(topic, conn)
		conn.Close()

		log.Info("subscriber disconnected", slog.String("topic", topic))
	}
}

func (h *Hub) remove(topic string, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	conns := h.subscribers[topic]
	next := make([]*websocket.Conn, 0, len(conns))
	for _, c := range conns {
		if c != conn {
			next = append(next, c)
		}
	}
	h.subscribers[topic] = next
}
