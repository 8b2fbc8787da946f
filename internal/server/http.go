package server

import (
	"context"
	"errors"
	"net/http"
	"tactics-core/internal/engine"
	"tactics-core/pkg/logger"
	"time"

	"github.com/google/uuid"
)

const shutdownTimeout = 5 * time.Second

// Server - лента событий партии для слоя отображения.
// Состояние только читается: намерения через websocket не принимаются.
type Server struct {
	Runner *engine.Runner
	Addr   string
}

func New(runner *engine.Runner, addr string) *Server {
	return &Server{
		Runner: runner,
		Addr:   addr,
	}
}

// Handler - все роуты сервера (отдельно от Run, чтобы тестировать через httptest)
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/ws", enableCORS(s.handleWS))
	mux.HandleFunc("/health", enableCORS(s.handleHealth))
	mux.HandleFunc("/state", enableCORS(s.handleState))

	debugHandler := NewDebugHandler(s.Runner)
	debugHandler.RegisterRoutes(mux)

	return mux
}

// Run запускает HTTP сервер и гасит его при отмене ctx
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.Addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Log.WithError(err).Warn("Server shutdown failed")
		}
	}()

	logger.Log.Infof("Event feed running on %s", s.Addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	logger.Log.Info("Event feed stopped")
	return nil
}

func enableCORS(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// Разрешаем запросы с фронтенда
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		next(w, r)
	}
}

// handleWS подписывает соединение на события партии
func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.Log.WithError(err).Error("Upgrade error")
		return
	}

	name := "ws-" + uuid.NewString()
	client := NewClient(conn, s.Runner.Game().Hub, name)

	// Запускаем пампы
	go client.writePump()
	go client.readPump()
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}

func (s *Server) handleState(w http.ResponseWriter, r *http.Request) {
	var summary any
	err := s.Runner.Read(r.Context(), func(g *engine.Game) {
		summary = g.Summary()
	})
	if err != nil {
		http.Error(w, "game is not running", http.StatusServiceUnavailable)
		return
	}
	writeJSON(w, summary)
}
