package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"terminus-veil/internal/engine"
	"terminus-veil/internal/infrastructure/storage"
	"terminus-veil/internal/version"
	"terminus-veil/pkg/api"
	"terminus-veil/pkg/logger"

	"github.com/gorilla/websocket"
)

func TestMain(m *testing.M) {
	logger.Init(logger.Options{Level: "error"})
	os.Exit(m.Run())
}

func newTestServer(t *testing.T) (*Server, *httptest.Server) {
	t.Helper()
	cfg := engine.NewConfig()
	cfg.Seed = 5
	cfg.ReplayDir = t.TempDir()

	s := New(cfg)
	ts := httptest.NewServer(s.Handler())
	t.Cleanup(ts.Close)
	return s, ts
}

func dial(t *testing.T, ts *httptest.Server) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	return conn
}

func readResponse(t *testing.T, conn *websocket.Conn) api.ServerResponse {
	t.Helper()
	_ = conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	var resp api.ServerResponse
	if err := conn.ReadJSON(&resp); err != nil {
		t.Fatalf("read: %v", err)
	}
	return resp
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for !cond() {
		if time.Now().After(deadline) {
			t.Fatal("condition not met in time")
		}
		time.Sleep(10 * time.Millisecond)
	}
}

func TestWebSocketSession(t *testing.T) {
	s, ts := newTestServer(t)
	conn := dial(t, ts)

	first := readResponse(t, conn)
	if first.Type != "UPDATE" || first.SessionID == "" || first.Player == nil {
		t.Fatalf("bad initial snapshot: %+v", first)
	}
	if s.Hub.Count() != 1 {
		t.Errorf("hub count = %d", s.Hub.Count())
	}

	if err := conn.WriteJSON(api.ClientCommand{Action: "INTERACT"}); err != nil {
		t.Fatal(err)
	}
	if resp := readResponse(t, conn); resp.Type != "UPDATE" || resp.SessionID != first.SessionID {
		t.Errorf("INTERACT response: %+v", resp)
	}

	if err := conn.WriteJSON(api.ClientCommand{Action: "FLY"}); err != nil {
		t.Fatal(err)
	}
	if resp := readResponse(t, conn); resp.Type != "ERROR" || resp.Error == "" {
		t.Errorf("unknown action should produce ERROR, got %+v", resp)
	}

	_ = conn.Close()
	waitFor(t, func() bool { return s.Hub.Count() == 0 })

	waitFor(t, func() bool {
		entries, _ := os.ReadDir(s.Config.ReplayDir)
		return len(entries) == 1
	})
}

func TestDebugAndHealthRoutes(t *testing.T) {
	_, ts := newTestServer(t)
	conn := dial(t, ts)
	defer conn.Close()
	first := readResponse(t, conn)

	resp, err := http.Get(ts.URL + "/health")
	if err != nil || resp.StatusCode != http.StatusOK {
		t.Fatalf("health: %v %v", resp, err)
	}
	resp.Body.Close()

	resp, err = http.Get(ts.URL + "/debug/sessions")
	if err != nil {
		t.Fatal(err)
	}
	var sessions []map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&sessions); err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if len(sessions) != 1 || sessions[0]["id"] != first.SessionID {
		t.Errorf("sessions = %v", sessions)
	}

	resp, err = http.Get(ts.URL + "/debug/session?id=missing")
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("missing session status = %d", resp.StatusCode)
	}
}

func TestVersionRoute(t *testing.T) {
	_, ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/version")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	var info version.Info
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		t.Fatal(err)
	}
	if info.Protocol != api.ProtocolVersion || info.ReplayFormat != storage.FormatVersion {
		t.Errorf("version = %+v", info)
	}
	if info.Build == "" {
		t.Error("build must default to dev")
	}
}
