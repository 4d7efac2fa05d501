package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/lazharichir/dealer/config"
	"github.com/lazharichir/dealer/dealer"
)

const shutdownTimeout = 5 * time.Second

// Server exposes the dealer over HTTP and WebSocket
type Server struct {
	cfg      config.Config
	dealer   *dealer.Service
	log      *slog.Logger
	engine   *gin.Engine
	upgrader websocket.Upgrader
}

// NewServer creates a new dealer server and registers its routes
func NewServer(cfg config.Config, svc *dealer.Service, log *slog.Logger) *Server {
	s := &Server{
		cfg:    cfg,
		dealer: svc,
		log:    log,
		engine: gin.New(),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
	}
	s.upgrader.CheckOrigin = s.checkOrigin

	s.engine.Use(gin.Recovery(), requestID(), accessLog(log), cors(cfg.AllowedOrigin))

	s.engine.GET("/healthz", s.handleHealth)
	s.engine.GET("/cards", s.handleGetCards)
	s.engine.GET("/cards/:players", s.handleGetCards)
	s.engine.GET("/ws", s.handleWebSocket)

	return s
}

// Handler returns the HTTP handler serving all routes
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Start serves on the configured address until ctx is cancelled, then
// shuts down gracefully.
func (s *Server) Start(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("server.listening", "addr", s.cfg.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.log.Info("server.shutting_down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) checkOrigin(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	return s.cfg.AllowedOrigin == "*" || origin == "" || origin == s.cfg.AllowedOrigin
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, DealResponse{Status: http.StatusOK, Message: "ok"})
}
