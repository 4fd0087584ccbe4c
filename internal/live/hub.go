package live

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const (
	clientSendBuf = 64
	writeDeadline = 5 * time.Second
	pongWait      = 30 * time.Second
	pingInterval  = 20 * time.Second
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(_ *http.Request) bool { return true },
}

type viewer struct {
	matchID string
	conn    *websocket.Conn
	send    chan []byte
	done    chan struct{}
}

// Hub fans score updates out to the viewers of each match. Delivery is
// best-effort: slow clients drop messages, they never block the scorer.
type Hub struct {
	mu      sync.Mutex
	viewers map[string]map[*viewer]struct{} // match id -> connected viewers
}

// NewHub creates an empty hub.
func NewHub() *Hub {
	return &Hub{viewers: make(map[string]map[*viewer]struct{})}
}

// Broadcast serializes the payload and enqueues it to every viewer of the
// match. Never blocks and never returns an error to the caller.
func (h *Hub) Broadcast(matchID string, payload interface{}) {
	data, err := json.Marshal(payload)
	if err != nil {
		log.Printf("live: marshal error for match %s: %v", matchID, err)
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	for v := range h.viewers[matchID] {
		select {
		case v.send <- data:
		default:
			log.Printf("live: dropping update for slow viewer of match %s", matchID)
		}
	}
}

// ViewerCount reports how many clients are watching a match.
func (h *Hub) ViewerCount(matchID string) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.viewers[matchID])
}

// Join upgrades the request and binds the connection to the match's
// subscriber group. The caller has already validated the match id.
func (h *Hub) Join(matchID string, w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("live: upgrade failed for match %s: %v", matchID, err)
		return
	}

	v := &viewer{
		matchID: matchID,
		conn:    conn,
		send:    make(chan []byte, clientSendBuf),
		done:    make(chan struct{}),
	}

	h.mu.Lock()
	if h.viewers[matchID] == nil {
		h.viewers[matchID] = make(map[*viewer]struct{})
	}
	h.viewers[matchID][v] = struct{}{}
	h.mu.Unlock()

	go h.writePump(v)
	go h.readPump(v)
}

// writePump drains the viewer's send channel onto the connection. It owns
// the viewer lifecycle: on exit it removes the viewer from the registry
// and closes the connection.
func (h *Hub) writePump(v *viewer) {
	ticker := time.NewTicker(pingInterval)
	defer func() {
		ticker.Stop()
		h.remove(v)
		v.conn.Close()
	}()

	for {
		select {
		case msg := <-v.send:
			v.conn.SetWriteDeadline(time.Now().Add(writeDeadline))
			if err := v.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return
			}
		case <-v.done:
			return
		case <-ticker.C:
			v.conn.SetWriteDeadline(time.Now().Add(writeDeadline))
			if err := v.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// readPump keeps the connection alive by reading pongs and close frames.
// Viewers send nothing upstream. On exit it signals writePump via done.
func (h *Hub) readPump(v *viewer) {
	defer close(v.done)

	v.conn.SetReadDeadline(time.Now().Add(pongWait))
	v.conn.SetPongHandler(func(string) error {
		v.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		if _, _, err := v.conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (h *Hub) remove(v *viewer) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.viewers[v.matchID], v)
	if len(h.viewers[v.matchID]) == 0 {
		delete(h.viewers, v.matchID)
	}
}
