package server

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

// maxMessageSize bounds a single player-count frame.
const maxMessageSize = 512

// handleWebSocket answers every text frame, read as a raw player count,
// with the same payload GET /cards would return.
func (s *Server) handleWebSocket(c *gin.Context) {
	conn, err := s.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		s.log.Warn("ws.upgrade_failed", "error", err)
		return
	}
	defer conn.Close()

	clientID := uuid.NewString()
	s.log.Info("ws.connected", "client_id", clientID, "remote", c.Request.RemoteAddr)

	conn.SetReadLimit(maxMessageSize)
	ctx := c.Request.Context()

	for {
		msgType, message, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				s.log.Warn("ws.read_failed", "client_id", clientID, "error", err)
			}
			break
		}
		if msgType != websocket.TextMessage {
			continue
		}

		if err := conn.WriteJSON(s.deal(ctx, string(message))); err != nil {
			s.log.Warn("ws.write_failed", "client_id", clientID, "error", err)
			break
		}
	}

	s.log.Info("ws.disconnected", "client_id", clientID)
}
