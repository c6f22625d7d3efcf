package engine

import (
	"terminus-veil/internal/domain"
	"terminus-veil/internal/systems"
	"terminus-veil/pkg/logger"

	"github.com/sirupsen/logrus"
)

// TurnScheduler проводит один полный ход мира после действия игрока:
// проход ИИ, атаки соседних монстров, уборка трупов, запись в журнал.
// Счетчик ходов растет ровно на 1 за вызов.
type TurnScheduler struct {
	turn int
}

func NewTurnScheduler() *TurnScheduler {
	return &TurnScheduler{}
}

func (s *TurnScheduler) Turn() int {
	return s.turn
}

// Reset - новая партия.
func (s *TurnScheduler) Reset() {
	s.turn = 0
}

// Run выполняет ход мира. Действие игрока к этому моменту уже применено.
// Возвращает все сообщения, порожденные ходом.
func (s *TurnScheduler) Run(g *Game) []domain.Message {
	s.turn++

	msgs := g.Monsters.Update(g.rng, g.Grid, g.Player.Pos, g.Vision, g.State.MonsterSpeedBuff)

	attacks := 0
	for _, mon := range g.Monsters.Living() {
		if !g.Player.IsAlive() {
			break
		}
		if mon.Startled || !mon.Pos.IsAdjacent(g.Player.Pos) || !g.Vision.IsVisible(mon.Pos) {
			continue
		}
		res := systems.MonsterAttack(g.rng, mon, g.Player)
		msgs = append(msgs, res.Messages...)
		attacks++
	}

	if !g.Player.IsAlive() {
		g.State.GameOver = true
	}

	purged := g.Monsters.PurgeDead()

	for i := range msgs {
		msgs[i].Turn = s.turn
	}
	g.Log.Append(s.turn, msgs...)

	logger.Log.WithFields(logrus.Fields{
		"component": "turn_scheduler",
		"turn":      s.turn,
		"attacks":   attacks,
		"purged":    purged,
		"player_hp": g.Player.Stats.HP,
		"game_over": g.State.GameOver,
	}).Debug("Turn processed")

	return msgs
}
