package realtime

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dialHub(t *testing.T, hub *Hub, userID string) (*websocket.Conn, func()) {
	t.Helper()

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/ws", hub.HandleConnection)
	server := httptest.NewServer(r)

	wsURL := "ws" + strings.TrimPrefix(server.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)

	require.NoError(t, conn.WriteJSON(map[string]string{"user_id": userID}))
	waitForConnection(t, hub, userID)

	return conn, func() {
		conn.Close()
		server.Close()
	}
}

func waitForConnection(t *testing.T, hub *Hub, userID string) {
	t.Helper()
	deadline := time.Now().Add(time.Second)
	for time.Now().Before(deadline) {
		if hub.Connected(userID) {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("user %s never registered", userID)
}

func TestPublishDeliversToJoinedUser(t *testing.T) {
	hub := NewHub()
	conn, cleanup := dialHub(t, hub, "user-1")
	defer cleanup()

	delivered := hub.Publish("user-1", EventNewNotification, map[string]string{"message": "task assigned"})
	assert.Equal(t, 1, delivered)

	conn.SetReadDeadline(time.Now().Add(time.Second))
	_, raw, err := conn.ReadMessage()
	require.NoError(t, err)

	var message struct {
		Type string            `json:"type"`
		Data map[string]string `json:"data"`
	}
	require.NoError(t, json.Unmarshal(raw, &message))
	assert.Equal(t, EventNewNotification, message.Type)
	assert.Equal(t, "task assigned", message.Data["message"])
}

func TestPublishToAbsentUserDropsEvent(t *testing.T) {
	hub := NewHub()

	delivered := hub.Publish("nobody", EventNewNotification, map[string]string{"message": "lost"})
	assert.Equal(t, 0, delivered)
}

func TestPublishDoesNotCrossUsers(t *testing.T) {
	hub := NewHub()
	conn, cleanup := dialHub(t, hub, "user-1")
	defer cleanup()

	delivered := hub.Publish("user-2", EventNewNotification, map[string]string{"message": "private"})
	assert.Equal(t, 0, delivered)

	conn.SetReadDeadline(time.Now().Add(100 * time.Millisecond))
	_, _, err := conn.ReadMessage()
	assert.Error(t, err, "user-1 must not receive user-2's event")
}

func TestConcurrentPublishesShareOneWriter(t *testing.T) {
	hub := NewHub()
	conn, cleanup := dialHub(t, hub, "user-1")
	defer cleanup()

	const publishers = 8
	const perPublisher = 25

	var queued int64
	var wg sync.WaitGroup
	for i := 0; i < publishers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < perPublisher; j++ {
				n := hub.Publish("user-1", EventNewNotification, map[string]string{"message": "ping"})
				atomic.AddInt64(&queued, int64(n))
			}
		}()
	}
	wg.Wait()

	total := int(atomic.LoadInt64(&queued))
	require.Positive(t, total)

	// Every queued event must arrive as an intact frame.
	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	for i := 0; i < total; i++ {
		_, raw, err := conn.ReadMessage()
		require.NoError(t, err)

		var message struct {
			Type string `json:"type"`
		}
		require.NoError(t, json.Unmarshal(raw, &message))
		assert.Equal(t, EventNewNotification, message.Type)
	}
}

func TestDisconnectUnregisters(t *testing.T) {
	hub := NewHub()
	conn, cleanup := dialHub(t, hub, "user-1")
	defer cleanup()

	conn.Close()

	deadline := time.Now().Add(time.Second)
	for time.Now().Before(deadline) && hub.Connected("user-1") {
		time.Sleep(5 * time.Millisecond)
	}
	assert.False(t, hub.Connected("user-1"))
}
