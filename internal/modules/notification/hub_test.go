package notification

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

func dialHub(t *testing.T, hub *Hub, userID string) *websocket.Conn {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		require.NoError(t, err)
		hub.Register(userID, conn)
	}))
	t.Cleanup(srv.Close)

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func TestHubNotify(t *testing.T) {
	hub := NewHub()
	defer hub.Close()

	client := dialHub(t, hub, "author-1")

	// registration is asynchronous from the client's point of view
	require.Eventually(t, func() bool { return hub.IsOnline("author-1") }, time.Second, 10*time.Millisecond)
	assert.Equal(t, 1, hub.GetOnlineCount())

	hub.Notify("author-1", "paper_reviewed", map[string]string{"paper_id": "p1", "status": "approved"})

	var event Event
	require.NoError(t, client.SetReadDeadline(time.Now().Add(time.Second)))
	require.NoError(t, client.ReadJSON(&event))
	assert.Equal(t, "paper_reviewed", event.Event)
	assert.False(t, event.Timestamp.IsZero())
}

func TestHubNotifyOffline(t *testing.T) {
	hub := NewHub()
	defer hub.Close()

	// no connection registered; must be a no-op
	hub.Notify("ghost", "paper_reviewed", nil)
	assert.False(t, hub.IsOnline("ghost"))
}

func TestHubUnregister(t *testing.T) {
	hub := NewHub()
	defer hub.Close()

	dialHub(t, hub, "author-2")
	require.Eventually(t, func() bool { return hub.IsOnline("author-2") }, time.Second, 10*time.Millisecond)

	hub.Unregister("author-2")
	assert.False(t, hub.IsOnline("author-2"))
	assert.Zero(t, hub.GetOnlineCount())
}
