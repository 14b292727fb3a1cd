package spectator

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func startHub(t *testing.T) *Hub {
	t.Helper()
	h := NewHub()
	require.NoError(t, h.Init("127.0.0.1:0"))
	require.NoError(t, h.Start())
	t.Cleanup(func() { h.Stop() })
	return h
}

func dial(t *testing.T, h *Hub) *websocket.Conn {
	t.Helper()
	conn, _, err := websocket.DefaultDialer.Dial("ws://"+h.Addr()+"/ws", nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	require.Eventually(t, func() bool { return h.Clients() > 0 }, time.Second, 5*time.Millisecond)
	return conn
}

func TestBroadcastSnapshot(t *testing.T) {
	h := startHub(t)
	conn := dial(t, h)

	want := Snapshot{
		Tick:    42,
		Level:   "Training Grounds",
		Score:   3,
		Marbles: []MarbleState{{Name: "Azure", Position: mgl64.Vec3{1, 2, 3}, Controlled: true}},
	}
	h.Offer(want)

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, data, err := conn.ReadMessage()
	require.NoError(t, err)

	var got Snapshot
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, want, got)
}

func TestOfferNeverBlocks(t *testing.T) {
	h := startHub(t)

	done := make(chan struct{})
	go func() {
		for i := 0; i < 1000; i++ {
			h.Offer(Snapshot{Tick: uint64(i)})
		}
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Offer blocked without readers")
	}
}

func TestOfferBeforeStartIsNoOp(t *testing.T) {
	h := NewHub()
	h.Offer(Snapshot{Tick: 1})
	assert.Equal(t, "", h.Addr())
	assert.NoError(t, h.Stop())
}

func TestClientDisconnectRemoves(t *testing.T) {
	h := startHub(t)
	conn := dial(t, h)
	require.NoError(t, conn.Close())
	assert.Eventually(t, func() bool { return h.Clients() == 0 }, time.Second, 5*time.Millisecond)
}

func TestServeWSRejectsPlainHTTP(t *testing.T) {
	h := NewHub()
	rec := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/ws", nil)
	h.ServeWS(rec, req)
	assert.Equal(t, 400, rec.Code)
	assert.Zero(t, h.Clients())
}

func TestInitValidation(t *testing.T) {
	assert.Error(t, NewHub().Init())
	err := NewHub().Init(8080)
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "addr"))
}
