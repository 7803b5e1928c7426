package stream

import (
	"time"

	"github.com/gorilla/websocket"
)

const maxReadBytes = 512

// client is one browser connection. The hub owns send and closes it on
// unregister; writePump owns conn.
type client struct {
	id   string
	conn *websocket.Conn
	send chan []byte
}

// readPump only serves control frames; the feed is one-way.
func (c *client) readPump(pongWait time.Duration) {
	c.conn.SetReadLimit(maxReadBytes)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (c *client) writePump(pingInterval, writeTimeout time.Duration) {
	ticker := time.NewTicker(pingInterval)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
	}()

	for {
		select {
		case msg, ok := <-c.send:
			if !ok {
				_ = c.write(websocket.CloseMessage, []byte{}, writeTimeout)
				return
			}
			if err := c.write(websocket.TextMessage, msg, writeTimeout); err != nil {
				return
			}
		case <-ticker.C:
			if err := c.write(websocket.PingMessage, nil, writeTimeout); err != nil {
				return
			}
		}
	}
}

func (c *client) write(messageType int, data []byte, timeout time.Duration) error {
	_ = c.conn.SetWriteDeadline(time.Now().Add(timeout))
	return c.conn.WriteMessage(messageType, data)
}
