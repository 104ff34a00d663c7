package ws

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testUpgrader = websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }}

// dialSession connects a client to a test server that registers the server
// side of the connection in the hub under the given id.
func dialSession(t *testing.T, hub *Hub, id string) *websocket.Conn {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := testUpgrader.Upgrade(w, r, nil)
		if err != nil {
			t.Errorf("upgrade failed: %v", err)
			return
		}
		hub.Register(id, conn)
	}))
	t.Cleanup(srv.Close)

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	client, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func TestBroadcastReachesAllSessions(t *testing.T) {
	hub := NewHub()

	a := dialSession(t, hub, "session-a")
	b := dialSession(t, hub, "session-b")
	require.Eventually(t, func() bool { return hub.Count() == 2 }, time.Second, 10*time.Millisecond)

	delivered := hub.Broadcast([]byte(`{"text":"hello"}`))
	assert.Equal(t, 2, delivered)

	for _, client := range []*websocket.Conn{a, b} {
		_ = client.SetReadDeadline(time.Now().Add(time.Second))
		_, payload, err := client.ReadMessage()
		require.NoError(t, err)
		assert.Equal(t, `{"text":"hello"}`, string(payload))
	}
}

func TestUnregisterStopsDelivery(t *testing.T) {
	hub := NewHub()

	a := dialSession(t, hub, "session-a")
	dialSession(t, hub, "session-b")
	require.Eventually(t, func() bool { return hub.Count() == 2 }, time.Second, 10*time.Millisecond)

	hub.Unregister("session-b")
	assert.Equal(t, 1, hub.Count())

	delivered := hub.Broadcast([]byte("still here"))
	assert.Equal(t, 1, delivered)

	_ = a.SetReadDeadline(time.Now().Add(time.Second))
	_, payload, err := a.ReadMessage()
	require.NoError(t, err)
	assert.Equal(t, "still here", string(payload))
}

func TestRegisterReplacesExistingSession(t *testing.T) {
	hub := NewHub()

	dialSession(t, hub, "session-a")
	require.Eventually(t, func() bool { return hub.Count() == 1 }, time.Second, 10*time.Millisecond)

	// Same id reconnecting replaces the old connection instead of leaking it.
	replacement := dialSession(t, hub, "session-a")
	require.Eventually(t, func() bool { return hub.Broadcast([]byte("ping")) == 1 }, time.Second, 10*time.Millisecond)
	assert.Equal(t, 1, hub.Count())

	_ = replacement.SetReadDeadline(time.Now().Add(time.Second))
	_, payload, err := replacement.ReadMessage()
	require.NoError(t, err)
	assert.Equal(t, "ping", string(payload))
}
