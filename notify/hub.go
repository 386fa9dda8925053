package notify

import (
	"context"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/coder/websocket"
)

const (
	hubSendBuffer       = 8
	defaultWriteTimeout = 5 * time.Second
)

// Hub is the parent-scope recipient: every websocket client connected from
// the embedding environment receives the completion message
// Clients connecting after completion receive it on connect
type Hub struct {
	logger       *slog.Logger
	writeTimeout time.Duration
	acceptOpts   *websocket.AcceptOptions

	mu      sync.Mutex
	clients map[*hubClient]struct{}
	last    []byte
	closed  bool
}

type hubClient struct {
	send chan []byte
}

// NewHub creates a hub accepting connections from the given origin patterns
// An empty pattern list skips origin verification
func NewHub(logger *slog.Logger, originPatterns []string) *Hub {
	if logger == nil {
		logger = slog.Default()
	}
	opts := &websocket.AcceptOptions{OriginPatterns: originPatterns}
	if len(originPatterns) == 0 {
		opts.InsecureSkipVerify = true
	}
	return &Hub{
		logger:       logger,
		writeTimeout: defaultWriteTimeout,
		acceptOpts:   opts,
		clients:      make(map[*hubClient]struct{}),
	}
}

// OnCompletion broadcasts the encoded message to every connected client
// Never blocks: a client with a full send buffer misses the message
func (h *Hub) OnCompletion(c Completion) {
	data, err := c.Encode()
	if err != nil {
		h.logger.Error("encode completion", "err", err)
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	h.last = data
	for client := range h.clients {
		select {
		case client.send <- data:
		default:
			h.logger.Warn("hub client send buffer full, dropping completion")
		}
	}
}

// ClientCount returns the number of connected clients
func (h *Hub) ClientCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// ServeHTTP upgrades the request and streams notifications until either side closes
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := websocket.Accept(w, r, h.acceptOpts)
	if err != nil {
		h.logger.ErrorContext(r.Context(), "failed to accept", "err", err)
		return
	}

	client := &hubClient{send: make(chan []byte, hubSendBuffer)}
	if !h.add(client) {
		conn.Close(websocket.StatusGoingAway, "hub closed")
		return
	}
	defer h.remove(client)
	h.logger.DebugContext(r.Context(), "hub client connected", "remote", r.RemoteAddr)

	// Inbound messages are not part of the protocol, CloseRead discards them
	// and cancels ctx when the peer goes away
	ctx := conn.CloseRead(r.Context())

	for {
		select {
		case <-ctx.Done():
			conn.Close(websocket.StatusNormalClosure, "")
			h.logger.DebugContext(r.Context(), "hub client disconnected", "remote", r.RemoteAddr)
			return

		case msg, ok := <-client.send:
			if !ok {
				conn.Close(websocket.StatusGoingAway, "shutting down")
				return
			}
			wctx, cancel := context.WithTimeout(ctx, h.writeTimeout)
			err := conn.Write(wctx, websocket.MessageText, msg)
			cancel()
			if err != nil {
				h.logger.WarnContext(r.Context(), "hub write failed", "remote", r.RemoteAddr, "err", err)
				return
			}
		}
	}
}

// Close disconnects every client and rejects new ones
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return
	}
	h.closed = true
	for client := range h.clients {
		close(client.send)
		delete(h.clients, client)
	}
}

func (h *Hub) add(client *hubClient) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return false
	}
	h.clients[client] = struct{}{}
	if h.last != nil {
		client.send <- h.last
	}
	return true
}

func (h *Hub) remove(client *hubClient) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.clients, client)
}
