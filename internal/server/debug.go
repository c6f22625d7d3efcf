package server

import (
	"encoding/json"
	"net/http"

	"terminus-veil/internal/engine"
	"terminus-veil/internal/network"
)

// DebugHandler предоставляет доступ к состоянию активных сессий
type DebugHandler struct {
	Hub *network.Hub[*engine.Session]
}

func NewDebugHandler(hub *network.Hub[*engine.Session]) *DebugHandler {
	return &DebugHandler{Hub: hub}
}

// RegisterRoutes регистрирует debug-эндпоинты
func (h *DebugHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/debug/sessions", h.handleListSessions)
	mux.HandleFunc("/debug/session", h.handleSession)
	mux.HandleFunc("/debug/journal", h.handleJournal)
}

// /debug/sessions - сводка по всем партиям
func (h *DebugHandler) handleListSessions(w http.ResponseWriter, r *http.Request) {
	summary := make([]map[string]interface{}, 0, h.Hub.Count())
	h.Hub.Each(func(_ string, s *engine.Session) {
		summary = append(summary, s.Stats())
	})
	writeJSON(w, summary)
}

// /debug/session?id=... - полный снимок партии, как его видит клиент
func (h *DebugHandler) handleSession(w http.ResponseWriter, r *http.Request) {
	s, ok := h.Hub.Get(r.URL.Query().Get("id"))
	if !ok {
		http.Error(w, "Session not found", http.StatusNotFound)
		return
	}
	writeJSON(w, s.Snapshot())
}

// /debug/journal?id=... - журнал принятых команд
func (h *DebugHandler) handleJournal(w http.ResponseWriter, r *http.Request) {
	s, ok := h.Hub.Get(r.URL.Query().Get("id"))
	if !ok {
		http.Error(w, "Session not found", http.StatusNotFound)
		return
	}
	writeJSON(w, s.Journal())
}

func writeJSON(w http.ResponseWriter, data interface{}) {
	// Разрешаем запросы с любого источника (нужно для локального debug-клиента)
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(data); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
