package transport

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-hex-defense/internal/command"
)

func dial(t *testing.T, handler *Handler) *websocket.Conn {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(handler.Handle))
	t.Cleanup(server.Close)

	url := "ws" + strings.TrimPrefix(server.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
		conn.Close()
	})
	return conn
}

func roundTrip(t *testing.T, conn *websocket.Conn, line string) string {
	t.Helper()
	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte(line)))
	_, reply, err := conn.ReadMessage()
	require.NoError(t, err)
	return string(reply)
}

func TestHandlerQueuesCommands(t *testing.T) {
	inbound := command.NewInbound(4)
	conn := dial(t, NewHandler(inbound, HandlerConfig{Logger: quietLogger()}))

	assert.Equal(t, "ok", roundTrip(t, conn, "toggle 0,1"))
	assert.Equal(t, "ok", roundTrip(t, conn, "reset"))

	cmds := inbound.Drain()
	require.Len(t, cmds, 2)
	assert.Equal(t, command.ToggleTile, cmds[0].Kind)
	assert.Equal(t, command.Restart, cmds[1].Kind)
}

func TestHandlerRejectsMalformedLines(t *testing.T) {
	inbound := command.NewInbound(4)
	conn := dial(t, NewHandler(inbound, HandlerConfig{Logger: quietLogger()}))

	reply := roundTrip(t, conn, "tower 1,1 x")
	assert.True(t, strings.HasPrefix(reply, "error: "), reply)
	assert.Contains(t, reply, command.ErrTowerType.Error())
	assert.Zero(t, inbound.Len())
}

func TestHandlerReportsFullQueue(t *testing.T) {
	inbound := command.NewInbound(1)
	conn := dial(t, NewHandler(inbound, HandlerConfig{Logger: quietLogger()}))

	assert.Equal(t, "ok", roundTrip(t, conn, "reset"))
	assert.Equal(t, "error: "+command.ErrQueueFull.Error(), roundTrip(t, conn, "reset"))
}

func TestHandlerRateLimitsPerConnection(t *testing.T) {
	inbound := command.NewInbound(8)
	handler := NewHandler(inbound, HandlerConfig{Logger: quietLogger(), Rate: 0.001, Burst: 2})
	conn := dial(t, handler)

	assert.Equal(t, "ok", roundTrip(t, conn, "reset"))
	assert.Equal(t, "ok", roundTrip(t, conn, "reset"))
	assert.Equal(t, replyRateLimited, roundTrip(t, conn, "reset"))

	other := dial(t, handler)
	assert.Equal(t, "ok", roundTrip(t, other, "reset"), "limits are per connection")
	assert.Equal(t, 3, inbound.Len())
}
