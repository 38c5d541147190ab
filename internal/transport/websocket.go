// internal/transport/websocket.go
package transport

import (
	"errors"
	"log"
	nethttp "net/http"

	"github.com/gorilla/websocket"
	"golang.org/x/time/rate"

	"go-hex-defense/internal/command"
)

const (
	replyOK          = "ok"
	replyRateLimited = "error: rate limited"
)

// HandlerConfig describes the dependencies required by the command socket.
type HandlerConfig struct {
	Logger *log.Logger
	// Rate и Burst ограничивают число команд с одного соединения.
	Rate  rate.Limit
	Burst int
}

// Handler accepts command lines over a websocket and queues them for the
// simulation. Every text frame is one line; the reply is a text frame.
type Handler struct {
	inbound  *command.Inbound
	logger   *log.Logger
	rate     rate.Limit
	burst    int
	upgrader websocket.Upgrader
}

func NewHandler(inbound *command.Inbound, cfg HandlerConfig) *Handler {
	logger := cfg.Logger
	if logger == nil {
		logger = log.Default()
	}
	limit := cfg.Rate
	if limit <= 0 {
		limit = rate.Inf
	}
	burst := cfg.Burst
	if burst < 1 {
		burst = 1
	}
	return &Handler{
		inbound: inbound,
		logger:  logger,
		rate:    limit,
		burst:   burst,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *nethttp.Request) bool {
				return true
			},
		},
	}
}

// Handle upgrades the request and serves the connection until it closes.
func (h *Handler) Handle(w nethttp.ResponseWriter, r *nethttp.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Printf("websocket upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	remote := conn.RemoteAddr().String()
	h.logger.Printf("Command client connected: %s", remote)
	limiter := rate.NewLimiter(h.rate, h.burst)

	for {
		messageType, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				h.logger.Printf("Command client %s: %v", remote, err)
			}
			h.logger.Printf("Command client disconnected: %s", remote)
			return
		}
		if messageType != websocket.TextMessage {
			continue
		}

		reply := h.handleLine(string(data), limiter)
		if reply == "" {
			continue
		}
		if err := conn.WriteMessage(websocket.TextMessage, []byte(reply)); err != nil {
			h.logger.Printf("Command client %s: write failed: %v", remote, err)
			return
		}
	}
}

// handleLine returns the reply for one frame, or "" for blank lines.
func (h *Handler) handleLine(line string, limiter *rate.Limiter) string {
	if !limiter.Allow() {
		return replyRateLimited
	}
	err := h.inbound.SubmitLine(line)
	switch {
	case err == nil:
		return replyOK
	case errors.Is(err, command.ErrEmpty):
		return ""
	default:
		return "error: " + err.Error()
	}
}
