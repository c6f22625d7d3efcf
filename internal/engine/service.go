package engine

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"terminus-veil/internal/domain"
	"terminus-veil/internal/engine/handlers"
	"terminus-veil/internal/engine/handlers/actions"
	"terminus-veil/pkg/api"
	"terminus-veil/pkg/logger"

	"github.com/sirupsen/logrus"
)

var ErrUnknownAction = errors.New("unknown action")

// Session - одна партия за одним клиентом. Разбирает команды, вызывает ровно
// одну операцию ядра на команду и ведет журнал принятых команд для реплея.
type Session struct {
	ID string

	mu       sync.Mutex
	game     *Game
	handlers map[domain.ActionType]handlers.HandlerFunc
	journal  domain.ReplaySession

	// AutoAdvance - сессия сама спускает игрока на следующий уровень после победы.
	AutoAdvance bool
}

func NewSession(id string, cfg Config) *Session {
	return newSession(id, NewGame(cfg))
}

func newSession(id string, game *Game) *Session {
	cfg := game.Config()
	return &Session{
		ID:       id,
		game:     game,
		handlers: handlerTable(),
		journal: domain.ReplaySession{
			Seed:      cfg.Seed,
			Width:     cfg.Width,
			Height:    cfg.Height,
			Timestamp: time.Now().Unix(),
			Actions:   make([]domain.ReplayAction, 0),
		},
	}
}

func handlerTable() map[domain.ActionType]handlers.HandlerFunc {
	return map[domain.ActionType]handlers.HandlerFunc{
		domain.ActionMove:     handlers.WithPayload(actions.HandleMove),
		domain.ActionUseItem:  handlers.WithPayload(actions.HandleUse),
		domain.ActionInteract: handlers.WithEmptyPayload(actions.HandleInteract),
		domain.ActionSelect:   handlers.WithPayload(actions.HandleSelect),
		domain.ActionConfirm:  handlers.WithPayload(actions.HandleConfirm),
		domain.ActionRestart:  handlers.WithEmptyPayload(actions.HandleRestart),
		domain.ActionAdvance:  handlers.WithEmptyPayload(actions.HandleAdvance),
	}
}

// Execute выполняет команду клиента и возвращает новый снимок партии.
// Ошибка означает, что команда отвергнута до ядра и состояние не изменилось.
func (s *Session) Execute(cmd api.ClientCommand) (*api.ServerResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	action := domain.ParseAction(cmd.Action)
	if _, err := s.dispatch(domain.InternalCommand{Action: action, Payload: cmd.Payload}); err != nil {
		logger.Log.WithFields(logrus.Fields{
			"component":  "session",
			"session_id": s.ID,
			"action":     cmd.Action,
		}).WithError(err).Warn("Command rejected")
		return nil, err
	}

	return s.snapshot(), nil
}

// dispatch - ядро Execute без блокировки; используется и реплеем.
func (s *Session) dispatch(cmd domain.InternalCommand) (handlers.Result, error) {
	handler, ok := s.handlers[cmd.Action]
	if !ok {
		return handlers.EmptyResult(), fmt.Errorf("%w: %s", ErrUnknownAction, cmd.Action)
	}

	res, err := handler(handlers.Context{Sim: s.game}, cmd.Payload)
	if err != nil {
		return res, fmt.Errorf("%s: %w", cmd.Action, err)
	}
	s.record(cmd)

	if s.AutoAdvance && res.Outcome.Victory && !res.Outcome.GameOver {
		res.Outcome = s.game.AdvanceLevel()
		s.record(domain.InternalCommand{Action: domain.ActionAdvance})
	}
	return res, nil
}

func (s *Session) record(cmd domain.InternalCommand) {
	s.journal.Actions = append(s.journal.Actions, domain.ReplayAction{
		Turn:    s.game.Scheduler.Turn(),
		Action:  cmd.Action,
		Payload: cmd.Payload,
	})
}

// Snapshot - текущее состояние без выполнения команды (первое сообщение клиенту).
func (s *Session) Snapshot() *api.ServerResponse {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot()
}

func (s *Session) snapshot() *api.ServerResponse {
	resp := s.game.BuildState()
	resp.SessionID = s.ID
	return resp
}

// Journal - копия журнала принятых команд.
func (s *Session) Journal() domain.ReplaySession {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := s.journal
	out.Actions = make([]domain.ReplayAction, len(s.journal.Actions))
	copy(out.Actions, s.journal.Actions)
	return out
}

// Stats - краткая сводка для отладочного эндпоинта.
func (s *Session) Stats() map[string]interface{} {
	s.mu.Lock()
	defer s.mu.Unlock()

	g := s.game
	return map[string]interface{}{
		"id":        s.ID,
		"seed":      g.Config().Seed,
		"turn":      g.Scheduler.Turn(),
		"level":     g.State.Level,
		"score":     g.State.Score,
		"hp":        g.Player.Stats.HP,
		"gameOver":  g.State.GameOver,
		"victory":   g.State.Victory,
		"actions":   len(s.journal.Actions),
		"monsters":  len(g.Monsters.Living()),
		"exitOpen":  g.Sacrifices.CanUseExit(),
		"sacrifice": g.Sacrifices.Total(),
	}
}

// Replay проигрывает журнал на новой партии с тем же зерном и размерами.
// Команды, отвергнутые при записи, в журнал не попадают, поэтому любая ошибка
// здесь означает расхождение.
func Replay(journal domain.ReplaySession, cfg Config) (*Game, error) {
	cfg.Seed = journal.Seed
	if journal.Width > 0 {
		cfg.Width = journal.Width
	}
	if journal.Height > 0 {
		cfg.Height = journal.Height
	}

	s := newSession("replay", NewGame(cfg))
	for i, a := range journal.Actions {
		if _, err := s.dispatch(domain.InternalCommand{Action: a.Action, Payload: a.Payload}); err != nil {
			return s.game, fmt.Errorf("replay action %d (%s): %w", i, a.Action, err)
		}
	}

	logger.Log.WithFields(logrus.Fields{
		"component": "replay",
		"seed":      journal.Seed,
		"actions":   len(journal.Actions),
		"turn":      s.game.Scheduler.Turn(),
	}).Info("Replay finished")

	return s.game, nil
}
