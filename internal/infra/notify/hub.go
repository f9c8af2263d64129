package notify

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// Listener is called synchronously on every catalog change.
type Listener interface {
	CatalogChanged()
}

// Hub fans catalog-change signals out to in-process listeners and to
// connected websocket clients. It replaces the hosted realtime channel the
// storefront previously subscribed to.
type Hub struct {
	mu        sync.Mutex
	listeners []Listener
	conns     map[*websocket.Conn]chan struct{}
}

func NewHub() *Hub {
	return &Hub{conns: make(map[*websocket.Conn]chan struct{})}
}

func (h *Hub) Subscribe(l Listener) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.listeners = append(h.listeners, l)
}

// Notify signals a catalog change. Websocket sends are buffered; a client
// that cannot keep up is dropped rather than blocking the broadcast.
func (h *Hub) Notify() {
	h.mu.Lock()
	listeners := make([]Listener, len(h.listeners))
	copy(listeners, h.listeners)
	for _, ch := range h.conns {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
	h.mu.Unlock()

	for _, l := range listeners {
		l.CatalogChanged()
	}
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

type changeFrame struct {
	Event string `json:"event"`
}

// ServeWS handles GET /ws/catalog: each connected client receives a
// {"event":"catalog_changed"} frame on every catalog mutation.
func (h *Hub) ServeWS(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}

	ch := make(chan struct{}, 8)
	h.mu.Lock()
	h.conns[conn] = ch
	h.mu.Unlock()

	defer func() {
		h.mu.Lock()
		delete(h.conns, conn)
		h.mu.Unlock()
		conn.Close()
	}()

	// Drain client frames so close/ping handling works and disconnects
	// are noticed.
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	for {
		select {
		case <-done:
			return
		case <-ch:
			if err := conn.WriteJSON(changeFrame{Event: "catalog_changed"}); err != nil {
				return
			}
		}
	}
}
