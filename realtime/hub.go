// realtime/hub.go
package realtime

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	logger "github.com/idatumhimanshu-alt/syscomply-app-sub001/logging"
)

// EventNewNotification is the message type pushed when a notification
// row is created for a connected user.
const EventNewNotification = "new_notification"

// sendQueueSize bounds the per-connection backlog. A client that falls
// this far behind is dropped rather than blocking publishers.
const sendQueueSize = 16

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

type joinMessage struct {
	UserID string `json:"user_id"`
}

type pushMessage struct {
	Type string      `json:"type"`
	Data interface{} `json:"data"`
}

// client wraps one websocket connection. The connection has exactly
// one writer: the writePump goroutine draining the send channel.
// closed is guarded by the hub mutex.
type client struct {
	userID string
	conn   *websocket.Conn
	send   chan []byte
	closed bool
}

// Hub is the registry of live client connections keyed by user id. It
// is constructed once and injected; connections register on the join
// message and are removed when the socket closes.
type Hub struct {
	mu    sync.RWMutex
	conns map[string]map[*client]struct{}
}

func NewHub() *Hub {
	return &Hub{conns: make(map[string]map[*client]struct{})}
}

// HandleConnection upgrades the request, waits for the join message
// and keeps the connection registered until the peer disconnects.
func (h *Hub) HandleConnection(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		logger.Warn("Failed to upgrade websocket connection", zap.Error(err))
		return
	}
	defer conn.Close()

	var join joinMessage
	if err := conn.ReadJSON(&join); err != nil || join.UserID == "" {
		logger.Warn("Websocket client did not send a valid join message", zap.Error(err))
		return
	}

	cl := &client{
		userID: join.UserID,
		conn:   conn,
		send:   make(chan []byte, sendQueueSize),
	}
	h.register(cl)
	defer h.drop(cl)
	go h.writePump(cl)

	logger.Info("Websocket client joined", zap.String("userID", join.UserID))

	// Drain the connection until the peer goes away.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (h *Hub) register(cl *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.conns[cl.userID] == nil {
		h.conns[cl.userID] = make(map[*client]struct{})
	}
	h.conns[cl.userID][cl] = struct{}{}
}

// drop removes the client and closes its send channel. The close
// happens under the write lock so it cannot race a Publish enqueue,
// which holds the read lock.
func (h *Hub) drop(cl *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.conns[cl.userID], cl)
	if len(h.conns[cl.userID]) == 0 {
		delete(h.conns, cl.userID)
	}
	if !cl.closed {
		cl.closed = true
		close(cl.send)
	}
}

// writePump is the connection's single writer. Every frame goes
// through the send channel, so concurrent Publish calls never touch
// the conn directly. Exits when the channel is closed and drained, or
// on the first write error.
func (h *Hub) writePump(cl *client) {
	for message := range cl.send {
		if err := cl.conn.WriteMessage(websocket.TextMessage, message); err != nil {
			logger.Debug("Dropping dead websocket connection",
				zap.String("userID", cl.userID), zap.Error(err))
			break
		}
	}
	h.drop(cl)
	cl.conn.Close()
}

// Publish delivers an event to every live connection of the user.
// Best-effort, at most once: a user with no connection gets nothing,
// and a connection whose queue is full is dropped. Returns the number
// of connections the event was queued for.
func (h *Hub) Publish(userID, eventType string, payload interface{}) int {
	message, err := json.Marshal(pushMessage{Type: eventType, Data: payload})
	if err != nil {
		logger.Error("Failed to marshal push message", zap.Error(err))
		return 0
	}

	var slow []*client
	delivered := 0
	h.mu.RLock()
	for cl := range h.conns[userID] {
		select {
		case cl.send <- message:
			delivered++
		default:
			slow = append(slow, cl)
		}
	}
	h.mu.RUnlock()

	for _, cl := range slow {
		logger.Debug("Dropping slow websocket connection", zap.String("userID", userID))
		h.drop(cl)
	}
	return delivered
}

// Connected reports whether the user has at least one live connection.
func (h *Hub) Connected(userID string) bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.conns[userID]) > 0
}
