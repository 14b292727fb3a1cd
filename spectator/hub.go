package spectator

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/marble-sandbox/core"
	"github.com/lixenwraith/marble-sandbox/service"
)

const (
	writeWait  = 5 * time.Second
	clientBuf  = 4 // Frames buffered per client before dropping
	upstreamSz = 1
)

// MarbleState is one marble in a spectator frame
type MarbleState struct {
	Name       string     `json:"name"`
	Position   mgl64.Vec3 `json:"position"`
	Controlled bool       `json:"controlled,omitempty"`
}

// Snapshot is the per-tick frame broadcast to spectators
type Snapshot struct {
	Tick     uint64        `json:"tick"`
	Level    string        `json:"level"`
	Score    int           `json:"score"`
	Complete bool          `json:"complete,omitempty"`
	Marbles  []MarbleState `json:"marbles"`
}

type client struct {
	conn *websocket.Conn
	send chan []byte
}

// Hub serves /ws and fans snapshots out to connected spectators
type Hub struct {
	addr string
	log  zerolog.Logger

	upgrader websocket.Upgrader
	frames   chan Snapshot

	mu      sync.Mutex
	clients map[*client]struct{}
	server  *http.Server
	ln      net.Listener
	done    chan struct{}
	wg      sync.WaitGroup
}

var _ service.Service = (*Hub)(nil)

func NewHub() *Hub {
	return &Hub{
		log: zerolog.Nop(),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 4096,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
		clients: make(map[*client]struct{}),
	}
}

func (h *Hub) Name() string {
	return "spectator"
}

func (h *Hub) Dependencies() []string {
	return nil
}

// Init implements service.Service
// args[0]: string listen address, args[1]: zerolog.Logger
func (h *Hub) Init(args ...any) error {
	if len(args) > 0 {
		addr, ok := args[0].(string)
		if !ok {
			return fmt.Errorf("spectator: addr must be a string, got %T", args[0])
		}
		h.addr = addr
	}
	if len(args) > 1 {
		if log, ok := args[1].(zerolog.Logger); ok {
			h.log = log
		}
	}
	if h.addr == "" {
		return errors.New("spectator: empty listen address")
	}
	return nil
}

// Start listens on the configured address and launches the broadcaster
func (h *Hub) Start() error {
	ln, err := net.Listen("tcp", h.addr)
	if err != nil {
		return fmt.Errorf("spectator listen %s: %w", h.addr, err)
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/ws", h.ServeWS)

	h.mu.Lock()
	h.ln = ln
	h.server = &http.Server{Handler: mux, ReadHeaderTimeout: 5 * time.Second}
	h.frames = make(chan Snapshot, upstreamSz)
	h.done = make(chan struct{})
	srv, frames, done := h.server, h.frames, h.done
	h.mu.Unlock()

	h.wg.Add(2)
	core.Go(func() {
		defer h.wg.Done()
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			h.log.Warn().Err(err).Msg("Spectator server stopped")
		}
	})
	core.Go(func() {
		defer h.wg.Done()
		h.broadcast(frames, done)
	})

	h.log.Info().Str("addr", ln.Addr().String()).Msg("Spectator listening")
	return nil
}

// Addr returns the bound listen address, empty before Start
func (h *Hub) Addr() string {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.ln == nil {
		return ""
	}
	return h.ln.Addr().String()
}

// Stop closes the listener and every client connection
func (h *Hub) Stop() error {
	h.mu.Lock()
	srv, done := h.server, h.done
	h.server, h.done, h.ln = nil, nil, nil
	h.mu.Unlock()
	if srv == nil {
		return nil
	}

	close(done)
	ctx, cancel := context.WithTimeout(context.Background(), writeWait)
	defer cancel()
	err := srv.Shutdown(ctx)

	h.mu.Lock()
	for c := range h.clients {
		h.drop(c)
	}
	h.mu.Unlock()

	h.wg.Wait()
	return err
}

// Offer hands a snapshot to the broadcaster without blocking
// A pending undelivered frame is replaced by the newer one
func (h *Hub) Offer(s Snapshot) {
	h.mu.Lock()
	frames, done := h.frames, h.done
	h.mu.Unlock()
	if done == nil {
		return
	}

	for {
		select {
		case frames <- s:
			return
		default:
		}
		select {
		case <-frames:
		default:
		}
	}
}

// Clients returns the number of connected spectators
func (h *Hub) Clients() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

func (h *Hub) broadcast(frames <-chan Snapshot, done <-chan struct{}) {
	for {
		select {
		case <-done:
			return
		case s := <-frames:
			data, err := json.Marshal(s)
			if err != nil {
				h.log.Warn().Err(err).Msg("Snapshot marshal failed")
				continue
			}
			h.mu.Lock()
			for c := range h.clients {
				select {
				case c.send <- data:
				default:
					// Slow client, frame dropped
				}
			}
			h.mu.Unlock()
		}
	}
}

// ServeWS upgrades a request into a spectator session
func (h *Hub) ServeWS(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.Debug().Err(err).Msg("Spectator upgrade failed")
		return
	}

	c := &client{conn: conn, send: make(chan []byte, clientBuf)}
	h.mu.Lock()
	h.clients[c] = struct{}{}
	h.mu.Unlock()
	h.log.Debug().Str("remote", r.RemoteAddr).Msg("Spectator connected")

	core.Go(func() { h.writePump(c) })
	h.readPump(c)
}

// readPump discards inbound messages and detects disconnects
func (h *Hub) readPump(c *client) {
	defer func() {
		h.mu.Lock()
		h.drop(c)
		h.mu.Unlock()
	}()
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (h *Hub) writePump(c *client) {
	defer c.conn.Close()
	for data := range c.send {
		c.conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := c.conn.WriteMessage(websocket.TextMessage, data); err != nil {
			return
		}
	}
	msg := websocket.FormatCloseMessage(websocket.CloseGoingAway, "")
	c.conn.WriteControl(websocket.CloseMessage, msg, time.Now().Add(writeWait))
}

// drop removes a client; caller holds mu
func (h *Hub) drop(c *client) {
	if _, ok := h.clients[c]; !ok {
		return
	}
	delete(h.clients, c)
	close(c.send)
}
