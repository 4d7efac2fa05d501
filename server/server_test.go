package server

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/lazharichir/dealer/cards"
	"github.com/lazharichir/dealer/config"
	"github.com/lazharichir/dealer/dealer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

// brokenShuffler overwrites the last card with the first.
type brokenShuffler struct{}

func (brokenShuffler) Shuffle(deck []cards.CardID) {
	deck[len(deck)-1] = deck[0]
}

func newTestServer(t *testing.T, opts ...dealer.Option) *Server {
	t.Helper()

	cfg := config.Default()
	cfg.Mode = "test"
	log := slog.New(slog.NewJSONHandler(io.Discard, nil))

	opts = append([]dealer.Option{dealer.WithLogger(log)}, opts...)
	return NewServer(cfg, dealer.NewService(opts...), log)
}

func get(t *testing.T, s *Server, target string) (*httptest.ResponseRecorder, DealResponse) {
	t.Helper()

	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))

	var body DealResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body), "body: %s", rec.Body.String())
	return rec, body
}

func TestGetCards(t *testing.T) {
	s := newTestServer(t)

	tests := []struct {
		name       string
		target     string
		wantStatus int
		wantMsg    string
		wantHands  int
	}{
		{"Four players", "/cards/4", http.StatusOK, "", 4},
		{"Query parameter", "/cards?players=7", http.StatusOK, "", 7},
		{"Maximum", "/cards/99", http.StatusOK, "", 99},
		{"Not a number", "/cards/abc", http.StatusBadRequest, "Invalid number format", 0},
		{"Missing query", "/cards", http.StatusBadRequest, "Invalid number format", 0},
		{"Fraction", "/cards/2.5", http.StatusBadRequest, "Invalid number format", 0},
		{"Zero", "/cards/0", http.StatusBadRequest, "Number out of range", 0},
		{"Hundred", "/cards/100", http.StatusBadRequest, "Number out of range", 0},
		{"Negative", "/cards/-1", http.StatusBadRequest, "Number out of range", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, body := get(t, s, tt.target)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantStatus, body.Status)
			assert.Equal(t, tt.wantMsg, body.Message)
			assert.Len(t, body.Cards, tt.wantHands)
			assert.NotEmpty(t, rec.Header().Get(requestIDHeader))
		})
	}
}

func TestGetCards_FourHandsOfThirteen(t *testing.T) {
	s := newTestServer(t)

	_, body := get(t, s, "/cards/4")
	require.Len(t, body.Cards, 4)
	for _, hand := range body.Cards {
		assert.Len(t, hand, 13)
	}
}

func TestGetCards_OverflowIsNull(t *testing.T) {
	s := newTestServer(t)

	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/cards/54", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var raw struct {
		Status int               `json:"status"`
		Cards  []json.RawMessage `json:"cards"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &raw))
	require.Len(t, raw.Cards, 54)
	assert.Equal(t, "null", string(raw.Cards[52]))
	assert.Equal(t, "null", string(raw.Cards[53]))
	assert.NotEqual(t, "null", string(raw.Cards[51]))
}

func TestGetCards_InternalError(t *testing.T) {
	s := newTestServer(t, dealer.WithShuffler(brokenShuffler{}))

	rec, body := get(t, s, "/cards/4")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, http.StatusInternalServerError, body.Status)
	assert.Contains(t, body.Message, "twice")
	assert.Empty(t, body.Cards)
}

func TestRequestIDPassthrough(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set(requestIDHeader, "abc-123")
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "abc-123", rec.Header().Get(requestIDHeader))
}

func TestCORSPreflight(t *testing.T) {
	s := newTestServer(t)

	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodOptions, "/cards/4", nil))

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestWebSocket(t *testing.T) {
	s := newTestServer(t)
	ts := httptest.NewServer(s.Handler())
	defer ts.Close()

	url := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer conn.Close()

	exchange := func(msg string) DealResponse {
		require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte(msg)))
		var resp DealResponse
		require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))
		require.NoError(t, conn.ReadJSON(&resp))
		return resp
	}

	resp := exchange("4")
	assert.Equal(t, http.StatusOK, resp.Status)
	assert.Len(t, resp.Cards, 4)

	resp = exchange("abc")
	assert.Equal(t, http.StatusBadRequest, resp.Status)
	assert.Equal(t, "Invalid number format", resp.Message)

	resp = exchange("100")
	assert.Equal(t, "Number out of range", resp.Message)
}

func TestWebSocket_RejectsForeignOrigin(t *testing.T) {
	cfg := config.Default()
	cfg.Mode = "test"
	cfg.AllowedOrigin = "https://cards.example"
	log := slog.New(slog.NewJSONHandler(io.Discard, nil))
	s := NewServer(cfg, dealer.NewService(dealer.WithLogger(log)), log)

	ts := httptest.NewServer(s.Handler())
	defer ts.Close()

	url := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws"
	_, resp, err := websocket.DefaultDialer.Dial(url, http.Header{"Origin": {"https://evil.example"}})
	require.Error(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestNewServer_LeavesGinModeAlone(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cfg := config.Default()
	cfg.Mode = gin.DebugMode
	log := slog.New(slog.NewJSONHandler(io.Discard, nil))
	NewServer(cfg, dealer.NewService(dealer.WithLogger(log)), log)

	assert.Equal(t, gin.TestMode, gin.Mode())
}

func TestStart_Shutdown(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := ln.Addr().String()
	require.NoError(t, ln.Close())

	cfg := config.Default()
	cfg.Mode = "test"
	cfg.Addr = addr
	log := slog.New(slog.NewJSONHandler(io.Discard, nil))
	s := NewServer(cfg, dealer.NewService(dealer.WithLogger(log)), log)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Start(ctx) }()

	require.Eventually(t, func() bool {
		resp, err := http.Get("http://" + addr + "/healthz")
		if err != nil {
			return false
		}
		resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 5*time.Second, 20*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(10 * time.Second):
		t.Fatal("server did not shut down")
	}
}
