package telemetry

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dial(t *testing.T, hub *Hub) *websocket.Conn {
	t.Helper()
	server := httptest.NewServer(hub)
	t.Cleanup(server.Close)

	wsURL := "ws" + strings.TrimPrefix(server.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	require.Eventually(t, func() bool { return hub.Clients() == 1 }, time.Second, 5*time.Millisecond)
	return conn
}

func TestHub_PublishReachesClient(t *testing.T) {
	hub := NewHub(zerolog.Nop())
	conn := dial(t, hub)

	want := Snapshot{Frame: 7, X: 1.5, Y: -2, Speed: 12, Direction: "forward", Drive: "forward", Turn: "left", WheelAngle: 5, Drift: 0.9}
	hub.Publish(want)

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	var got Snapshot
	require.NoError(t, conn.ReadJSON(&got))
	assert.Equal(t, want, got)
}

func TestHub_ClientDisconnectUnregisters(t *testing.T) {
	hub := NewHub(zerolog.Nop())
	conn := dial(t, hub)

	require.NoError(t, conn.Close())

	assert.Eventually(t, func() bool { return hub.Clients() == 0 }, 2*time.Second, 5*time.Millisecond)
}

func TestHub_PublishWithoutClients(t *testing.T) {
	hub := NewHub(zerolog.Nop())
	assert.NotPanics(t, func() { hub.Publish(Snapshot{Frame: 1}) })
	assert.Equal(t, 0, hub.Clients())
}

func TestHub_CloseDisconnects(t *testing.T) {
	hub := NewHub(zerolog.Nop())
	conn := dial(t, hub)

	hub.Close()
	assert.Equal(t, 0, hub.Clients())

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, _, err := conn.ReadMessage()
	assert.Error(t, err)
}

func TestServe_StopsWithContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- Serve(ctx, "127.0.0.1:0", NewHub(zerolog.Nop())) }()

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("Serve did not return")
	}
}
