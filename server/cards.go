package server

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lazharichir/dealer/cards"
	"github.com/lazharichir/dealer/dealer"
)

// DealResponse is the body of every deal response. Status repeats the
// HTTP status code so WebSocket clients see the same payload.
type DealResponse struct {
	Status  int              `json:"status"`
	Message string           `json:"message,omitempty"`
	Cards   cards.DealResult `json:"cards,omitempty"`
}

// deal runs one request through the dealer and builds its response.
func (s *Server) deal(ctx context.Context, raw string) DealResponse {
	result, err := s.dealer.DealRaw(ctx, raw)
	if err != nil {
		return DealResponse{Status: dealer.StatusCode(err), Message: dealer.Message(err)}
	}
	return DealResponse{Status: http.StatusOK, Cards: result}
}

// handleGetCards deals to the player count given as path segment or
// "players" query parameter
func (s *Server) handleGetCards(c *gin.Context) {
	raw, ok := c.Params.Get("players")
	if !ok {
		raw = c.Query("players")
	}

	resp := s.deal(c.Request.Context(), raw)
	c.JSON(resp.Status, resp)
}
