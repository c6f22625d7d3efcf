package network

import (
	"sync"
	"testing"

	"terminus-veil/pkg/api"
)

func TestHub_RegisterSendUnregister(t *testing.T) {
	h := NewHub[string]()
	id := NewSessionID()
	out := h.Register(id, "alice")

	if s, ok := h.Get(id); !ok || s != "alice" {
		t.Fatalf("Get = %q, %v", s, ok)
	}
	if !h.SendTo(id, api.ServerResponse{Type: "UPDATE", Turn: 3}) {
		t.Fatal("SendTo should deliver to a registered session")
	}
	if msg := <-out; msg.Turn != 3 {
		t.Errorf("received turn %d", msg.Turn)
	}

	h.Unregister(id)
	if _, open := <-out; open {
		t.Error("channel should be closed after Unregister")
	}
	if h.SendTo(id, api.ServerResponse{}) {
		t.Error("SendTo to an unknown id should fail")
	}
	if h.Count() != 0 {
		t.Errorf("count = %d", h.Count())
	}
}

func TestHub_ReRegisterClosesOldChannel(t *testing.T) {
	h := NewHub[int]()
	old := h.Register("x", 1)
	h.Register("x", 2)

	if _, open := <-old; open {
		t.Error("old channel should be closed")
	}
	if s, _ := h.Get("x"); s != 2 {
		t.Errorf("session = %d, want 2", s)
	}
}

func TestHub_Concurrent(t *testing.T) {
	h := NewHub[int]()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			id := NewSessionID()
			h.Register(id, n)
			h.SendTo(id, api.ServerResponse{})
			h.Each(func(string, int) {})
			h.Unregister(id)
		}(i)
	}
	wg.Wait()

	if h.Count() != 0 {
		t.Errorf("count = %d after all sessions left", h.Count())
	}
}
