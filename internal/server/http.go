package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"terminus-veil/internal/engine"
	"terminus-veil/internal/infrastructure/storage"
	"terminus-veil/internal/network"
	"terminus-veil/internal/version"
	"terminus-veil/pkg/logger"

	"github.com/sirupsen/logrus"
)

type Server struct {
	Config  engine.Config
	Hub     *network.Hub[*engine.Session]
	Replays *storage.ReplayService

	httpServer *http.Server
}

func New(cfg engine.Config) *Server {
	return &Server{
		Config:  cfg,
		Hub:     network.NewHub[*engine.Session](),
		Replays: storage.NewReplayService(cfg.ReplayDir),
	}
}

// Handler собирает все маршруты сервера.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/ws", enableCORS(s.handleWS))
	mux.HandleFunc("/health", enableCORS(s.handleHealth))
	mux.HandleFunc("/version", enableCORS(s.handleVersion))

	NewDebugHandler(s.Hub).RegisterRoutes(mux)
	return mux
}

// Run запускает HTTP сервер и блокируется до Shutdown.
func (s *Server) Run() error {
	s.httpServer = &http.Server{
		Addr:              ":" + s.Config.Port,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	logger.Log.Infof("Terminus Veil server running on :%s", s.Config.Port)
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown останавливает прием соединений и сохраняет журналы активных сессий.
func (s *Server) Shutdown(ctx context.Context) error {
	s.Hub.Each(func(_ string, session *engine.Session) {
		s.saveJournal(session)
	})
	if s.httpServer == nil {
		return nil
	}
	return s.httpServer.Shutdown(ctx)
}

func (s *Server) saveJournal(session *engine.Session) {
	journal := session.Journal()
	if len(journal.Actions) == 0 {
		return
	}
	if _, err := s.Replays.Save(session.ID, &journal); err != nil {
		logger.Log.WithFields(logrus.Fields{
			"component":  "server",
			"session_id": session.ID,
		}).WithError(err).Error("failed to save replay")
	}
}

func enableCORS(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		next(w, r)
	}
}

// handleWS обрабатывает подключение по WebSocket. Каждое соединение - новая партия.
func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.Log.WithError(err).Error("Upgrade error")
		return
	}

	client := newClient(s, conn)

	go client.writePump()
	go client.readPump()
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(version.Get())
}
