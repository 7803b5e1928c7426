// Package stream pushes live transaction events to browsers over WebSocket.
package stream

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/shandysiswandi/paywatch/internal/dashboard/entity"
	"github.com/shandysiswandi/paywatch/internal/pkg/pkguid"
)

const (
	defaultBuffer       = 16
	defaultPingInterval = 30 * time.Second
	defaultWriteTimeout = 10 * time.Second
)

type Config struct {
	// Buffer is the per-client outgoing queue length.
	Buffer       int
	PingInterval time.Duration
	WriteTimeout time.Duration
	ClientID     pkguid.StringID
}

// Hub tracks the connected stream clients and fans events out to them.
type Hub struct {
	mu      sync.RWMutex
	clients map[string]*client
	closed  bool

	upgrader     websocket.Upgrader
	clientID     pkguid.StringID
	buffer       int
	pingInterval time.Duration
	writeTimeout time.Duration
}

func NewHub(cfg Config) *Hub {
	if cfg.Buffer < 1 {
		cfg.Buffer = defaultBuffer
	}
	if cfg.PingInterval <= 0 {
		cfg.PingInterval = defaultPingInterval
	}
	if cfg.WriteTimeout <= 0 {
		cfg.WriteTimeout = defaultWriteTimeout
	}
	if cfg.ClientID == nil {
		cfg.ClientID = pkguid.NewUUID()
	}

	return &Hub{
		clients: make(map[string]*client),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(*http.Request) bool { return true },
		},
		clientID:     cfg.ClientID,
		buffer:       cfg.Buffer,
		pingInterval: cfg.PingInterval,
		writeTimeout: cfg.WriteTimeout,
	}
}

// Handle encodes event once and queues it for every client. Clients whose
// queue is full miss the event.
func (h *Hub) Handle(ctx context.Context, event entity.TransactionEvent) error {
	payload, err := json.Marshal(newMessage(event))
	if err != nil {
		return err
	}

	h.mu.RLock()
	defer h.mu.RUnlock()

	for id, c := range h.clients {
		select {
		case c.send <- payload:
		default:
			slog.WarnContext(ctx, "dropping stream message, buffer full", "client_id", id, "event_id", event.EventID)
		}
	}

	return nil
}

// ServeHTTP upgrades the request and serves the client until it goes away.
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		slog.WarnContext(r.Context(), "stream upgrade failed", "error", err)
		return
	}

	c := &client{
		id:   h.clientID.Generate(),
		conn: conn,
		send: make(chan []byte, h.buffer),
	}
	if !h.register(c) {
		_ = conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseGoingAway, "server shutting down"),
			time.Now().Add(h.writeTimeout))
		_ = conn.Close()
		return
	}

	slog.InfoContext(r.Context(), "stream client connected", "client_id", c.id)

	go c.writePump(h.pingInterval, h.writeTimeout)
	c.readPump(2 * h.pingInterval)

	h.unregister(c.id)
	slog.InfoContext(r.Context(), "stream client disconnected", "client_id", c.id)
}

// Count returns the number of connected clients.
func (h *Hub) Count() int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return len(h.clients)
}

// Close disconnects every client and rejects new ones.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.closed = true
	for id, c := range h.clients {
		delete(h.clients, id)
		close(c.send)
	}
}

func (h *Hub) register(c *client) bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return false
	}
	h.clients[c.id] = c
	return true
}

func (h *Hub) unregister(id string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if c, ok := h.clients[id]; ok {
		delete(h.clients, id)
		close(c.send)
	}
}
