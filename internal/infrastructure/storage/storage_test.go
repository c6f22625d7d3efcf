package storage

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"terminus-veil/internal/domain"
	"terminus-veil/pkg/logger"
)

func TestMain(m *testing.M) {
	logger.Init(logger.Options{Level: "error"})
	m.Run()
}

func sampleSession() *domain.ReplaySession {
	return &domain.ReplaySession{
		Seed:      42,
		Width:     80,
		Height:    40,
		Timestamp: 1700000000,
		Actions: []domain.ReplayAction{
			{Turn: 0, Action: domain.ActionMove, Payload: json.RawMessage(`{"dx":1,"dy":0}`)},
			{Turn: 1, Action: domain.ActionInteract},
			{Turn: 1, Action: domain.ActionConfirm, Payload: json.RawMessage(`{"accept":true}`)},
		},
	}
}

func TestSaveLoad(t *testing.T) {
	svc := NewReplayService(t.TempDir())
	in := sampleSession()

	path, err := svc.Save("abc", in)
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	out, err := svc.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if out.Seed != in.Seed || out.Width != in.Width || out.Height != in.Height || out.Timestamp != in.Timestamp {
		t.Errorf("header mismatch: %+v", out)
	}
	if len(out.Actions) != len(in.Actions) {
		t.Fatalf("actions = %d, want %d", len(out.Actions), len(in.Actions))
	}
	for i := range in.Actions {
		a, b := in.Actions[i], out.Actions[i]
		if a.Turn != b.Turn || a.Action != b.Action || !bytes.Equal(a.Payload, b.Payload) {
			t.Errorf("action %d: got %+v, want %+v", i, b, a)
		}
	}
}

func TestReadBinary_Errors(t *testing.T) {
	var good bytes.Buffer
	if err := writeBinary(&good, sampleSession()); err != nil {
		t.Fatal(err)
	}

	badMagic := append([]byte("XXXX"), good.Bytes()[4:]...)

	tests := []struct {
		name string
		data []byte
	}{
		{"empty", nil},
		{"bad magic", badMagic},
		{"truncated actions", good.Bytes()[:good.Len()-3]},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := readBinary(bytes.NewReader(tt.data)); err == nil {
				t.Error("expected error")
			}
		})
	}

	if _, err := readBinary(bytes.NewReader(badMagic)); !errors.Is(err, ErrBadMagic) {
		t.Errorf("bad magic error = %v", err)
	}
}

func TestWriteBinary_PayloadTooLong(t *testing.T) {
	s := sampleSession()
	s.Actions[0].Payload = make([]byte, 70000)
	if err := writeBinary(&bytes.Buffer{}, s); err == nil {
		t.Error("oversized payload should be rejected")
	}
}
