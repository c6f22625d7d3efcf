package network

import (
	"sort"
	"sync"

	"terminus-veil/pkg/api"

	"github.com/google/uuid"
)

// Hub - потокобезопасный реестр сессий. Каждая сессия получает uuid и личный
// канал исходящих снимков, который вычитывает writePump соединения.
type Hub[S any] struct {
	mu    sync.RWMutex
	peers map[string]*peer[S]
}

type peer[S any] struct {
	session S
	out     chan api.ServerResponse
}

func NewHub[S any]() *Hub[S] {
	return &Hub[S]{
		peers: make(map[string]*peer[S]),
	}
}

// NewSessionID выдает новый идентификатор сессии.
func NewSessionID() string {
	return uuid.NewString()
}

// Register добавляет сессию и создает для нее канал.
// Если id уже занят, старый канал закрывается.
func (h *Hub[S]) Register(id string, session S) <-chan api.ServerResponse {
	h.mu.Lock()
	defer h.mu.Unlock()

	if old, ok := h.peers[id]; ok {
		close(old.out)
	}

	p := &peer[S]{session: session, out: make(chan api.ServerResponse, 16)}
	h.peers[id] = p
	return p.out
}

// Unregister удаляет сессию и закрывает ее канал
func (h *Hub[S]) Unregister(id string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if p, ok := h.peers[id]; ok {
		close(p.out)
		delete(h.peers, id)
	}
}

func (h *Hub[S]) Get(id string) (S, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	p, ok := h.peers[id]
	if !ok {
		var zero S
		return zero, false
	}
	return p.session, true
}

// SendTo отправляет снимок конкретной сессии. Переполненный канал - сообщение
// теряется, клиент получит следующий полный снимок.
func (h *Hub[S]) SendTo(id string, msg api.ServerResponse) bool {
	h.mu.RLock()
	defer h.mu.RUnlock()

	p, ok := h.peers[id]
	if !ok {
		return false
	}
	select {
	case p.out <- msg:
		return true
	default:
		return false
	}
}

// Each вызывает fn для каждой сессии в порядке id.
func (h *Hub[S]) Each(fn func(id string, session S)) {
	h.mu.RLock()
	ids := make([]string, 0, len(h.peers))
	for id := range h.peers {
		ids = append(ids, id)
	}
	sessions := make(map[string]S, len(h.peers))
	for id, p := range h.peers {
		sessions[id] = p.session
	}
	h.mu.RUnlock()

	sort.Strings(ids)
	for _, id := range ids {
		fn(id, sessions[id])
	}
}

// Count возвращает количество активных сессий.
func (h *Hub[S]) Count() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.peers)
}
