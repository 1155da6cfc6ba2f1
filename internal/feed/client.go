package feed

import (
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/MoodyMakai/WebDevForum/models"
)

const (
	// sendQueueSize bounds how far a subscriber may fall behind before
	// it is dropped.
	sendQueueSize = 16

	writeWait = 10 * time.Second
)

// Conn is the subset of *websocket.Conn the feed uses. It exists so tests
// can substitute an in-memory connection.
type Conn interface {
	WriteJSON(v any) error
	ReadMessage() (int, []byte, error)
	Close() error
}

// Client is one live-feed subscriber.
type Client struct {
	// AccountID identifies the authenticated subscriber; used for logs only.
	AccountID int64

	id   int64
	conn Conn
	send chan models.Comment

	closeOnce sync.Once
}

// NewClient wraps an upgraded websocket connection into a feed subscriber.
func NewClient(accountID int64, conn Conn) *Client {
	return &Client{
		AccountID: accountID,
		conn:      conn,
		send:      make(chan models.Comment, sendQueueSize),
	}
}

// writeLoop delivers broadcast comments until the send queue is closed.
func (c *Client) writeLoop(h *Hub) {
	for comment := range c.send {
		if deadliner, ok := c.conn.(interface{ SetWriteDeadline(time.Time) error }); ok {
			_ = deadliner.SetWriteDeadline(time.Now().Add(writeWait))
		}

		if err := c.conn.WriteJSON(comment); err != nil {
			h.remove(c)
			return
		}
	}
}

// readLoop discards inbound frames; the feed is one-way. Its real purpose
// is to notice the peer going away and unregister the client.
func (c *Client) readLoop(h *Hub) {
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			h.remove(c)
			return
		}
	}
}

func (c *Client) close() {
	c.closeOnce.Do(func() {
		close(c.send)
		_ = c.conn.Close()
	})
}

// compile-time check that the gorilla connection satisfies Conn.
var _ Conn = (*websocket.Conn)(nil)
