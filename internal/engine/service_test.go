package engine

import (
	"encoding/json"
	"errors"
	"testing"

	"terminus-veil/internal/engine/handlers/actions"
	"terminus-veil/pkg/api"
	"terminus-veil/pkg/utils"
)

func command(t *testing.T, action string, payload any) api.ClientCommand {
	t.Helper()
	cmd := api.ClientCommand{Action: action}
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			t.Fatal(err)
		}
		cmd.Payload = raw
	}
	return cmd
}

func TestSession_RejectsBadCommands(t *testing.T) {
	s := NewSession("s1", testConfig())

	tests := []struct {
		name string
		cmd  api.ClientCommand
		want error
	}{
		{"unknown action", command(t, "DANCE", nil), ErrUnknownAction},
		{"advance before victory", command(t, "ADVANCE", nil), actions.ErrExitNotReached},
		{"diagonal move", command(t, "MOVE", api.DirectionPayload{Dx: 1, Dy: 1}), nil},
		{"missing payload", command(t, "MOVE", nil), nil},
		{"unknown item", command(t, "USE_ITEM", api.ItemPayload{Kind: "banana"}), nil},
		{"empty item kind", command(t, "USE_ITEM", api.ItemPayload{}), nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := s.Execute(tt.cmd)
			if err == nil || resp != nil {
				t.Fatalf("expected rejection, got resp=%v", resp)
			}
			if tt.want != nil && !errors.Is(err, tt.want) {
				t.Errorf("error = %v, want %v", err, tt.want)
			}
		})
	}

	if n := len(s.Journal().Actions); n != 0 {
		t.Errorf("rejected commands were journaled: %d", n)
	}
}

func TestSession_ExecuteReturnsSnapshot(t *testing.T) {
	s := NewSession("s2", testConfig())

	resp, err := s.Execute(command(t, "interact", nil))
	if err != nil {
		t.Fatalf("INTERACT: %v", err)
	}
	if resp.SessionID != "s2" || resp.Type != "UPDATE" || resp.Player == nil || resp.Progress == nil {
		t.Errorf("incomplete snapshot: %+v", resp)
	}
	if len(resp.Logs) == 0 {
		t.Error("interaction message missing from the log")
	}

	if _, err := s.Execute(command(t, "USE_ITEM", api.ItemPayload{Kind: "health_potion"})); err != nil {
		t.Errorf("lower-case kind should parse: %v", err)
	}
	if _, err := s.Execute(command(t, "SELECT", api.SelectPayload{Index: 3})); err != nil {
		t.Errorf("out-of-range select is a core no-op, not an error: %v", err)
	}

	j := s.Journal()
	if len(j.Actions) != 3 || j.Seed != testConfig().Seed {
		t.Errorf("journal = %+v", j)
	}
}

func TestReplay_ReproducesRun(t *testing.T) {
	cfg := testConfig()
	cfg.Seed = 77
	s := NewSession("r1", cfg)
	s.AutoAdvance = true

	dirs := []api.DirectionPayload{{Dx: 0, Dy: -1}, {Dx: 1, Dy: 0}, {Dx: 0, Dy: 1}, {Dx: -1, Dy: 0}}
	walk := utils.NewSource(3)

	var last *api.ServerResponse
	for i := 0; i < 120; i++ {
		var cmd api.ClientCommand
		switch walk.Intn(6) {
		case 0:
			cmd = command(t, "INTERACT", nil)
		case 1:
			cmd = command(t, "SELECT", api.SelectPayload{Index: walk.Intn(2)})
		case 2:
			cmd = command(t, "CONFIRM", api.ConfirmPayload{Accept: true})
		default:
			cmd = command(t, "MOVE", dirs[walk.Intn(len(dirs))])
		}
		resp, err := s.Execute(cmd)
		if err != nil {
			t.Fatalf("step %d: %v", i, err)
		}
		last = resp
	}

	g, err := Replay(s.Journal(), testConfig())
	if err != nil {
		t.Fatalf("replay: %v", err)
	}
	got := g.BuildState()

	if got.Turn != last.Turn || got.Player.Pos != last.Player.Pos {
		t.Errorf("replay diverged: turn %d vs %d, pos %v vs %v", got.Turn, last.Turn, got.Player.Pos, last.Player.Pos)
	}
	if got.Player.Stats != last.Player.Stats {
		t.Errorf("stats diverged: %+v vs %+v", got.Player.Stats, last.Player.Stats)
	}
	if *got.Progress != *last.Progress {
		t.Errorf("progress diverged: %+v vs %+v", got.Progress, last.Progress)
	}
	if len(got.Logs) != len(last.Logs) {
		t.Fatalf("log length %d vs %d", len(got.Logs), len(last.Logs))
	}
	for i := range got.Logs {
		if got.Logs[i].Text != last.Logs[i].Text {
			t.Errorf("log %d: %q vs %q", i, got.Logs[i].Text, last.Logs[i].Text)
		}
	}
}
