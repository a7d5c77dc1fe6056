package server

import (
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	svgpreview "github.com/alnah/go-svgpreview"
)

// Message types pushed to preview pages.
const (
	TypeReload  = "reload"
	TypeWarning = "warning"
)

// ReloadAll is the reload path that matches every page.
const ReloadAll = "*"

const (
	writeWait  = 10 * time.Second
	sendBuffer = 16
)

// Message is one websocket push to preview pages.
type Message struct {
	Type    string `json:"type"`
	Path    string `json:"path,omitempty"`
	Message string `json:"message,omitempty"`
}

// Hub holds the connected preview pages and broadcasts to them.
// It is the Notifier for renders served over HTTP, so validator warnings
// show up in the open pages.
type Hub struct {
	upgrader websocket.Upgrader

	mu      sync.Mutex
	clients map[*client]struct{}
	closed  bool
}

type client struct {
	conn *websocket.Conn
	send chan Message
}

// Compile-time interface check.
var _ svgpreview.Notifier = (*Hub)(nil)

// NewHub creates a hub. checkOrigin decides which pages may connect;
// nil accepts only same-host pages.
func NewHub(checkOrigin func(*http.Request) bool) *Hub {
	return &Hub{
		upgrader: websocket.Upgrader{CheckOrigin: checkOrigin},
		clients:  make(map[*client]struct{}),
	}
}

// Warn broadcasts a warning message.
func (h *Hub) Warn(msg string) {
	h.Broadcast(Message{Type: TypeWarning, Message: msg})
}

// Reload tells pages showing path to reload.
func (h *Hub) Reload(path string) {
	h.Broadcast(Message{Type: TypeReload, Path: path})
}

// Broadcast queues msg for every client. Clients with a full queue miss it.
func (h *Hub) Broadcast(msg Message) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for c := range h.clients {
		select {
		case c.send <- msg:
		default:
		}
	}
}

// Clients returns the number of connected pages.
func (h *Hub) Clients() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// ServeHTTP upgrades the request and keeps the connection until the page
// goes away. Incoming messages are ignored.
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade already wrote the HTTP error.
		return
	}

	c := &client{conn: conn, send: make(chan Message, sendBuffer)}
	if !h.register(c) {
		_ = conn.Close()
		return
	}

	go c.writeLoop()

	for {
		if _, _, err := conn.NextReader(); err != nil {
			break
		}
	}
	h.unregister(c)
}

func (h *Hub) register(c *client) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return false
	}
	h.clients[c] = struct{}{}
	return true
}

func (h *Hub) unregister(c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.clients[c]; ok {
		delete(h.clients, c)
		close(c.send)
	}
}

// writeLoop owns all writes to the connection and closes it when the
// send queue is closed.
func (c *client) writeLoop() {
	defer func() { _ = c.conn.Close() }()

	for msg := range c.send {
		_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := c.conn.WriteJSON(msg); err != nil {
			return
		}
	}
	_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
	_ = c.conn.WriteMessage(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseGoingAway, "server shutting down"))
}

// Close disconnects every page and refuses new ones.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.closed = true
	for c := range h.clients {
		delete(h.clients, c)
		close(c.send)
	}
}
