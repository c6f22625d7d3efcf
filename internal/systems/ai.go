package systems

import (
	"fmt"

	"terminus-veil/internal/domain"
	"terminus-veil/pkg/dungeon"
	"terminus-veil/pkg/logger"
	"terminus-veil/pkg/utils"

	"github.com/sirupsen/logrus"
)

// Visibility - то, что ИИ нужно знать о видимости игрока.
type Visibility interface {
	IsVisible(p domain.Position) bool
}

// MonsterManager владеет монстрами текущего уровня.
type MonsterManager struct {
	monsters []*domain.Monster
	next     uint64
}

func NewMonsterManager() *MonsterManager {
	return &MonsterManager{}
}

// Spawn расставляет count монстров на случайные клетки пола, не занимая exclude.
// Состав зависит от уровня, характеристики растут с уровнем.
func (m *MonsterManager) Spawn(rng utils.Source, g *domain.Grid, count, level int, exclude ...domain.Position) {
	positions := dungeon.FindValidPositions(rng, g, count+len(exclude))

	spawned := 0
	for _, pos := range positions {
		if spawned == count {
			break
		}
		if containsPos(exclude, pos) {
			continue
		}
		m.Add(domain.NewMonster(m.nextID(level), pickMonsterKind(rng, level), pos, level))
		spawned++
	}

	logger.Log.WithFields(logrus.Fields{
		"component": "monster_ai",
		"level":     level,
		"requested": count,
		"spawned":   spawned,
	}).Debug("Monsters spawned")
}

// pickMonsterKind: 1 уровень - 80% гоблинов, 2-3 - 40/40/20, дальше 20/30/50.
func pickMonsterKind(rng utils.Source, level int) domain.MonsterKind {
	r := rng.Float64()
	switch {
	case level <= 1:
		if r < 0.8 {
			return domain.Goblin
		}
		return domain.Orc
	case level <= 3:
		if r < 0.4 {
			return domain.Goblin
		} else if r < 0.8 {
			return domain.Orc
		}
		return domain.Dragon
	default:
		if r < 0.2 {
			return domain.Goblin
		} else if r < 0.5 {
			return domain.Orc
		}
		return domain.Dragon
	}
}

func (m *MonsterManager) nextID(level int) domain.EntityID {
	m.next++
	return domain.PackEntityID(domain.EntityMonster, level, m.next)
}

// Add регистрирует готового монстра. Место должно быть свободно.
func (m *MonsterManager) Add(mon *domain.Monster) {
	m.monsters = append(m.monsters, mon)
}

// At возвращает живого монстра на клетке.
func (m *MonsterManager) At(p domain.Position) *domain.Monster {
	for _, mon := range m.monsters {
		if mon.IsAlive() && mon.Pos == p {
			return mon
		}
	}
	return nil
}

// Living - живые монстры в порядке появления.
func (m *MonsterManager) Living() []*domain.Monster {
	out := make([]*domain.Monster, 0, len(m.monsters))
	for _, mon := range m.monsters {
		if mon.IsAlive() {
			out = append(out, mon)
		}
	}
	return out
}

func (m *MonsterManager) Count() int {
	return len(m.monsters)
}

// Update - один проход ИИ. Монстр действует, только если игрок его видит:
// рядом с игроком он рычит, в радиусе преследования при прямой видимости
// делает шаг к игроку. Неудачный шаг отменяется без повтора.
// Alerted ставится только реальным шагом к игроку (и атакой, см. MonsterAttack).
func (m *MonsterManager) Update(rng utils.Source, g *domain.Grid, player domain.Position, vis Visibility, speedBuff int) []domain.Message {
	var msgs []domain.Message

	for _, mon := range m.monsters {
		wasStartled := mon.Startled
		mon.Startled = false
		if !mon.IsAlive() || !vis.IsVisible(mon.Pos) {
			continue
		}

		if mon.Pos.IsAdjacent(player) {
			msgs = append(msgs, domain.Info(fmt.Sprintf("The %s growls menacingly!", mon.Name)))
			// Игрок подошел сам к еще не действовавшему монстру: этот проход
			// уходит на то, чтобы его заметить.
			mon.Startled = !mon.Alerted && !wasStartled
			continue
		}

		if mon.Pos.DistanceTo(player) > domain.AggroRadius || !HasLineOfSight(g, mon.Pos, player) {
			continue
		}

		dest, ok := stepTowards(rng, g, mon, player, speedBuff)
		if !ok {
			continue
		}
		if other := m.At(dest); other != nil && other != mon {
			logger.Log.WithFields(logrus.Fields{
				"component":  "monster_ai",
				"monster_id": mon.ID,
				"blocked_by": other.ID,
			}).Debug("Move reverted: tile occupied")
			continue
		}

		mon.Pos = dest
		mon.Alerted = true
		msgs = append(msgs, domain.Info(fmt.Sprintf("The %s moves closer!", mon.Name)))
	}

	return msgs
}

// stepTowards - жадный шаг с троттлингом. Счетчик сбрасывается при любой
// попытке шага, даже если клетка оказалась стеной.
func stepTowards(rng utils.Source, g *domain.Grid, mon *domain.Monster, target domain.Position, speedBuff int) (domain.Position, bool) {
	mon.TurnsSinceMove++
	if mon.TurnsSinceMove < max(1, 2-speedBuff) {
		return mon.Pos, false
	}
	mon.TurnsSinceMove = 0

	dx, dy := mon.Pos.DirectionTo(target)

	// Диагональ иногда схлопывается в одну ось
	if dx != 0 && dy != 0 && utils.Chance(rng, domain.DiagonalJitterChance) {
		if utils.Chance(rng, 0.5) {
			dy = 0
		} else {
			dx = 0
		}
	}

	dest := mon.Pos.Shift(dx, dy)
	if g.IsWall(dest.X, dest.Y) {
		return mon.Pos, false
	}
	return dest, true
}

// PurgeDead убирает мертвых из активного набора.
func (m *MonsterManager) PurgeDead() int {
	alive := m.monsters[:0]
	for _, mon := range m.monsters {
		if mon.IsAlive() {
			alive = append(alive, mon)
		}
	}
	removed := len(m.monsters) - len(alive)
	for i := len(alive); i < len(m.monsters); i++ {
		m.monsters[i] = nil
	}
	m.monsters = alive
	return removed
}

// Clear - новый уровень.
func (m *MonsterManager) Clear() {
	m.monsters = nil
}

func containsPos(list []domain.Position, p domain.Position) bool {
	for _, q := range list {
		if q == p {
			return true
		}
	}
	return false
}
