package api

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dialGenerateSocket(t *testing.T) *websocket.Conn {
	r := newTestRouter()
	server := httptest.NewServer(r)
	t.Cleanup(server.Close)

	wsURL := "ws" + strings.TrimPrefix(server.URL, "http") + "/ws/generate"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	return conn
}

func TestGenerateWebSocket_StreamsChunks(t *testing.T) {
	conn := dialGenerateSocket(t)

	require.NoError(t, conn.WriteJSON(map[string]interface{}{
		"prompt": strings.Repeat("海", 100),
		"config": map[string]interface{}{"provider": "local"},
	}))

	var full strings.Builder
	sawDone := false
	for !sawDone {
		conn.SetReadDeadline(time.Now().Add(5 * time.Second))

		var frame streamFrame
		require.NoError(t, conn.ReadJSON(&frame))

		switch frame.Type {
		case "chunk":
			full.WriteString(frame.Text)
		case "done":
			sawDone = true
		case "error":
			t.Fatalf("收到错误帧: %s", frame.Message)
		}
	}

	assert.Contains(t, full.String(), "本地AI生成内容")
	assert.Contains(t, full.String(), strings.Repeat("海", 100))
}

func TestGenerateWebSocket_UnknownProvider(t *testing.T) {
	conn := dialGenerateSocket(t)

	require.NoError(t, conn.WriteJSON(map[string]interface{}{
		"prompt": "hi",
		"config": map[string]interface{}{"provider": "nope"},
	}))

	conn.SetReadDeadline(time.Now().Add(5 * time.Second))

	var frame streamFrame
	require.NoError(t, conn.ReadJSON(&frame))
	assert.Equal(t, "error", frame.Type)
	assert.Contains(t, frame.Message, "nope")
}

func TestWebSocketStatusEndpoint(t *testing.T) {
	r := newTestRouter()

	w := doJSON(r, "GET", "/api/ws/status", nil)
	require.Equal(t, 200, w.Code)
	assert.Contains(t, w.Body.String(), "active_connections")
}
