// Package feed implements the live comment feed: a hub of websocket
// subscribers that receives every newly posted comment and fans it out to
// all connected clients. Delivery is best effort; a subscriber that cannot
// keep up is disconnected rather than allowed to block the feed.
package feed

import (
	"sync"

	"github.com/MoodyMakai/WebDevForum/internal/logger"
	"github.com/MoodyMakai/WebDevForum/models"
)

// Hub tracks live-feed subscribers and broadcasts new comments to them.
// The zero value is not usable; construct with NewHub.
type Hub struct {
	logger *logger.Logger

	mu      sync.Mutex
	nextID  int64
	clients map[int64]*Client
}

// NewHub constructs an empty Hub.
func NewHub(logger *logger.Logger) *Hub {
	logger.Debug().Msg("creating live feed hub")
	return &Hub{
		logger:  logger,
		clients: make(map[int64]*Client),
	}
}

// Register adds a subscriber and starts its writer goroutine. The returned
// client is removed automatically when its connection dies.
func (h *Hub) Register(client *Client) {
	h.mu.Lock()
	h.nextID++
	client.id = h.nextID
	h.clients[client.id] = client
	count := len(h.clients)
	h.mu.Unlock()

	h.logger.Debug().Int("subscribers", count).Msg("live feed client registered")

	go client.writeLoop(h)
	go client.readLoop(h)
}

// Broadcast queues a comment for delivery to every connected subscriber.
// Subscribers with a full send queue are dropped.
func (h *Hub) Broadcast(comment models.Comment) {
	h.mu.Lock()
	stale := make([]*Client, 0)
	for _, client := range h.clients {
		select {
		case client.send <- comment:
		default:
			stale = append(stale, client)
		}
	}
	h.mu.Unlock()

	for _, client := range stale {
		h.logger.Debug().Msg("dropping slow live feed client")
		h.remove(client)
	}
}

// Len returns the current number of subscribers.
func (h *Hub) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// Close disconnects every subscriber. Used during server shutdown.
func (h *Hub) Close() {
	h.mu.Lock()
	clients := make([]*Client, 0, len(h.clients))
	for _, client := range h.clients {
		clients = append(clients, client)
	}
	h.mu.Unlock()

	for _, client := range clients {
		h.remove(client)
	}
}

func (h *Hub) remove(client *Client) {
	h.mu.Lock()
	_, present := h.clients[client.id]
	delete(h.clients, client.id)
	h.mu.Unlock()

	if present {
		client.close()
	}
}
