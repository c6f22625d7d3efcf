package agent

import (
	"context"
	"encoding/json"

	"terminus-veil/internal/domain"
	"terminus-veil/pkg/api"
	"terminus-veil/pkg/logger"
	"terminus-veil/pkg/utils"

	"github.com/sirupsen/logrus"
)

// Executor - то, чем бот управляет. engine.Session реализует его напрямую,
// так что бот видит партию ровно так же, как клиент через WebSocket.
type Executor interface {
	Execute(cmd api.ClientCommand) (*api.ServerResponse, error)
	Snapshot() *api.ServerResponse
}

// Bot - headless-игрок. Решения принимаются только по снимку состояния
// (api.ServerResponse), без доступа к внутренностям движка.
//
// Политика простая:
//  1. После смерти - RESTART.
//  2. Открыт алтарь - выбрать первый вариант и согласиться.
//  3. Стоим на неиспользованном алтаре - INTERACT.
//  4. Мало HP и есть зелье - выпить.
//  5. Рядом видимый монстр - атаковать.
//  6. Выход открыт и известен - идти к нему, иначе бродить случайно.
type Bot struct {
	exec Executor
	rng  utils.Source
	last *api.ServerResponse

	OnStep func(cmd api.ClientCommand, resp *api.ServerResponse)
}

// Summary - итог прогона.
type Summary struct {
	Steps    int `json:"steps"`
	Rejected int `json:"rejected"`
	Deaths   int `json:"deaths"`
	MaxLevel int `json:"maxLevel"`
	Turn     int `json:"turn"`
}

func NewBot(exec Executor, rng utils.Source) *Bot {
	return &Bot{exec: exec, rng: rng}
}

var cardinals = []api.DirectionPayload{{Dx: 0, Dy: -1}, {Dx: 0, Dy: 1}, {Dx: -1, Dy: 0}, {Dx: 1, Dy: 0}}

// Run делает до steps ходов или до отмены контекста.
func (b *Bot) Run(ctx context.Context, steps int) Summary {
	var sum Summary
	b.last = b.exec.Snapshot()

	for i := 0; i < steps; i++ {
		if ctx.Err() != nil {
			break
		}

		cmd := b.decide(b.last)
		resp, err := b.exec.Execute(cmd)
		sum.Steps++
		if err != nil {
			sum.Rejected++
			logger.Log.WithFields(logrus.Fields{
				"component": "bot",
				"action":    cmd.Action,
			}).WithError(err).Debug("Command rejected")
			continue
		}

		if resp.GameOver && !b.last.GameOver {
			sum.Deaths++
		}
		if resp.Progress != nil && resp.Progress.Level > sum.MaxLevel {
			sum.MaxLevel = resp.Progress.Level
		}
		sum.Turn = resp.Turn
		b.last = resp

		if b.OnStep != nil {
			b.OnStep(cmd, resp)
		}
	}

	logger.Log.WithFields(logrus.Fields{
		"component": "bot",
		"steps":     sum.Steps,
		"deaths":    sum.Deaths,
		"max_level": sum.MaxLevel,
	}).Info("Autoplay finished")
	return sum
}

func (b *Bot) decide(s *api.ServerResponse) api.ClientCommand {
	if s.GameOver {
		return command(domain.ActionRestart, nil)
	}

	if s.Offer != nil {
		switch {
		case len(s.Offer.Options) == 0:
			return command(domain.ActionInteract, nil)
		case s.Offer.Selected < 0:
			return command(domain.ActionSelect, api.SelectPayload{Index: b.rng.Intn(len(s.Offer.Options))})
		default:
			return command(domain.ActionConfirm, api.ConfirmPayload{Accept: true})
		}
	}

	me := s.Player
	for _, a := range s.Altars {
		if a.Pos == me.Pos && !a.Used {
			return command(domain.ActionInteract, nil)
		}
	}

	if me.Stats.HP*2 < me.Stats.MaxHP && me.Status.CanUsePotions && b.hasItem(me, "HEALTH_POTION") {
		return command(domain.ActionUseItem, api.ItemPayload{Kind: "HEALTH_POTION"})
	}

	for _, m := range s.Monsters {
		if d, ok := step(me.Pos, m.Pos); ok && adjacent(me.Pos, m.Pos) {
			return command(domain.ActionMove, d)
		}
	}

	if s.Progress != nil && s.Progress.ExitOpen && b.rng.Intn(4) != 0 {
		for _, t := range s.Map {
			if t.Kind != "EXIT" {
				continue
			}
			if d, ok := step(me.Pos, api.Point{X: t.X, Y: t.Y}); ok {
				return command(domain.ActionMove, d)
			}
		}
	}

	return command(domain.ActionMove, utils.Pick(b.rng, cardinals))
}

func (b *Bot) hasItem(p *api.PlayerView, kind string) bool {
	for _, st := range p.Inventory.Items {
		if st.Kind == kind && st.Count > 0 {
			return true
		}
	}
	return false
}

func command(action domain.ActionType, payload any) api.ClientCommand {
	cmd := api.ClientCommand{Action: action.String()}
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err == nil {
			cmd.Payload = raw
		}
	}
	return cmd
}

// step - один шаг по горизонтали или вертикали в сторону цели.
func step(from, to api.Point) (api.DirectionPayload, bool) {
	dx, dy := domain.Sign(to.X-from.X), domain.Sign(to.Y-from.Y)
	switch {
	case dx != 0:
		return api.DirectionPayload{Dx: dx}, true
	case dy != 0:
		return api.DirectionPayload{Dy: dy}, true
	}
	return api.DirectionPayload{}, false
}

func adjacent(a, b api.Point) bool {
	dx, dy := a.X-b.X, a.Y-b.Y
	return dx*dx+dy*dy == 1
}
