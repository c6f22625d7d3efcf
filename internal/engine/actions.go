package engine

import (
	"errors"
	"fmt"

	"terminus-veil/internal/domain"
	"terminus-veil/internal/systems"
	"terminus-veil/pkg/logger"
	"terminus-veil/pkg/utils"

	"github.com/sirupsen/logrus"
)

// Каждая операция игрока - ровно одно действие. Запрещенные действия ничего
// не меняют и максимум пишут информационное сообщение. Пока партия проиграна,
// работает только Restart.

// Move - шаг на соседнюю клетку. Шаг в живого монстра - атака, шаг на
// неиспользованный алтарь ставит игрока к нему без траты хода.
func (g *Game) Move(dx, dy int) domain.Outcome {
	if g.State.GameOver || g.altar != nil {
		return g.finish(nil)
	}
	dir := domain.DirectionOf(dx, dy)
	if dir == domain.DirNone {
		return g.finish(nil)
	}

	dest := g.Player.Pos.Shift(dx, dy)

	if mon := g.Monsters.At(dest); mon != nil {
		res := systems.PlayerAttack(g.rng, g.Player, mon)
		crit := systems.CriticalStrike(g.rng, g.Player, mon)
		msgs := append(res.Messages, crit.Messages...)
		return g.takeTurn(msgs)
	}

	if altar := g.Sacrifices.AltarAt(dest); altar != nil && !altar.Used {
		g.Player.Pos = dest
		g.refreshVision()
		return g.finish([]domain.Message{domain.Info("You stand before an ancient altar. Press 'E' to interact.")})
	}

	if g.Player.Status.DisabledMoves.Has(dir) {
		return g.finish(nil)
	}
	if utils.Chance(g.rng, g.Player.Status.MoveRefusalChance()) {
		logger.Log.WithFields(logrus.Fields{
			"component": "game",
			"penalty":   g.Player.Status.MovementPenalty,
		}).Debug("Move refused by movement penalty")
		return g.finish(nil)
	}
	if !g.Grid.IsWalkable(dest.X, dest.Y) {
		return g.finish(nil)
	}

	g.Player.Pos = dest

	var msgs []domain.Message
	if item := g.Items.Collect(dest); item != nil {
		msgs = append(msgs, domain.Info(systems.TryPickup(g.Player, item)))
	}

	if g.Grid.AtPos(dest) == domain.TileExit {
		if g.Sacrifices.CanUseExit() {
			g.State.Victory = true
			g.refreshVision()
			logger.Log.WithFields(logrus.Fields{
				"component": "game",
				"level":     g.State.Level,
			}).Info("Exit reached")
			return g.finish(msgs)
		}
		msgs = append(msgs, domain.Refusal(fmt.Sprintf("The exit demands %d more sacrifice(s)!", g.Sacrifices.Remaining())))
	}

	return g.takeTurn(msgs)
}

// UseItem расходует одну единицу предмета из инвентаря.
func (g *Game) UseItem(kind domain.ItemKind) domain.Outcome {
	if g.State.GameOver || g.altar != nil {
		return g.finish(nil)
	}

	text, err := systems.TryUse(g.rng, g.Player, kind)
	switch {
	case errors.Is(err, systems.ErrPotionsForbidden):
		return g.finish([]domain.Message{domain.Refusal("You are forbidden from using potions!")})
	case errors.Is(err, systems.ErrNoItem):
		return g.finish([]domain.Message{domain.Info(fmt.Sprintf("No %s available!", kind))})
	case errors.Is(err, systems.ErrNotUsable):
		return g.finish([]domain.Message{domain.Info(fmt.Sprintf("You cannot use %s.", kind))})
	}

	return g.takeTurn([]domain.Message{domain.Info(text)})
}

// InteractAltar открывает меню алтаря под игроком или закрывает открытое.
func (g *Game) InteractAltar() domain.Outcome {
	if g.State.GameOver {
		return g.finish(nil)
	}
	if g.altar != nil {
		g.altar = nil
		return g.finish([]domain.Message{domain.Info("You step away from the altar.")})
	}

	altar := g.Sacrifices.AltarAt(g.Player.Pos)
	if altar == nil || altar.Used {
		return g.finish([]domain.Message{domain.Info("Nothing to interact with here.")})
	}

	g.altar = &altarSession{altar: altar, selected: -1}
	return g.finish([]domain.Message{domain.Info("You approach the ancient altar...")})
}

// SelectSacrificeOption выбирает вариант и ждет подтверждения.
// Без открытого алтаря, во время ожидания подтверждения или с индексом
// вне диапазона ничего не происходит.
func (g *Game) SelectSacrificeOption(index int) domain.Outcome {
	if g.State.GameOver || g.altar == nil || g.altar.selected >= 0 {
		return g.finish(nil)
	}
	if index < 0 || index >= len(g.Sacrifices.Offer(g.altar.altar)) {
		return g.finish(nil)
	}
	g.altar.selected = index
	return g.finish(nil)
}

// Confirm принимает или отвергает выбранную жертву. Принятая жертва
// расходует алтарь и стоит хода.
func (g *Game) Confirm(accept bool) domain.Outcome {
	if g.State.GameOver || g.altar == nil || g.altar.selected < 0 {
		return g.finish(nil)
	}

	if !accept {
		g.altar.selected = -1
		return g.finish([]domain.Message{domain.Info("You refuse the altar's demand.")})
	}

	altar, option := g.altar.altar, g.altar.selected
	g.altar = nil

	text, ok := g.Sacrifices.Accept(g.rng, altar, option, g.sacrificeTarget())
	if !ok {
		return g.finish(nil)
	}

	msgs := []domain.Message{domain.Sacrifice(text)}
	if g.Sacrifices.CanUseExit() {
		msgs = append(msgs, domain.Sacrifice("The exit groans open!"))
	}
	return g.takeTurn(msgs)
}

// Restart - новая партия с тем же источником случайности.
func (g *Game) Restart() domain.Outcome {
	g.reset()
	logger.Log.WithField("component", "game").Info("Game restarted")
	return g.finish([]domain.Message{domain.Info("A new journey begins... All is forgotten!")})
}

// AdvanceLevel - спуск на следующий уровень. Вызывается драйвером после победы.
func (g *Game) AdvanceLevel() domain.Outcome {
	if g.State.GameOver {
		return g.finish(nil)
	}

	g.State.Advance()
	g.buildLevel()

	msgs := []domain.Message{domain.Info(fmt.Sprintf("Descending to level %d...", g.State.Level))}
	if n := g.Sacrifices.Remaining(); n > 0 {
		msgs = append(msgs, domain.Refusal(fmt.Sprintf("The exit demands %d more sacrifice(s)!", n)))
	}
	return g.finish(msgs)
}

// takeTurn завершает принятое действие: эффекты статуса, запись сообщений
// игрока, пересчет обзора и проход мира.
func (g *Game) takeTurn(msgs []domain.Message) domain.Outcome {
	g.Player.TickStatus()

	turn := g.Scheduler.Turn() + 1
	for i := range msgs {
		msgs[i].Turn = turn
	}
	g.Log.Append(turn, msgs...)

	g.refreshVision()
	msgs = append(msgs, g.Scheduler.Run(g)...)

	return domain.Outcome{
		Messages:  msgs,
		TurnTaken: true,
		GameOver:  g.State.GameOver,
		Victory:   g.State.Victory,
	}
}

// finish - действие без хода мира.
func (g *Game) finish(msgs []domain.Message) domain.Outcome {
	turn := g.Scheduler.Turn()
	for i := range msgs {
		msgs[i].Turn = turn
	}
	g.Log.Append(turn, msgs...)

	return domain.Outcome{
		Messages: msgs,
		GameOver: g.State.GameOver,
		Victory:  g.State.Victory,
	}
}
