package systems

import (
	"terminus-veil/internal/domain"
	"terminus-veil/pkg/dungeon"
	"terminus-veil/pkg/logger"
	"terminus-veil/pkg/utils"

	"github.com/sirupsen/logrus"
)

// ItemManager владеет предметами, лежащими на полу текущего уровня.
type ItemManager struct {
	items []*domain.Item
	next  uint64
}

func NewItemManager() *ItemManager {
	return &ItemManager{}
}

// Spawn раскладывает count предметов по случайным клеткам пола, не занимая exclude.
// Распределение: золото 40%, зелье 30%, свиток 20%, оружие 10%.
func (m *ItemManager) Spawn(rng utils.Source, g *domain.Grid, count, level int, exclude ...domain.Position) {
	positions := dungeon.FindValidPositions(rng, g, count+len(exclude))

	spawned := 0
	for _, pos := range positions {
		if spawned == count {
			break
		}
		if containsPos(exclude, pos) {
			continue
		}

		kind, value := rollItem(rng)
		m.next++
		m.Add(&domain.Item{
			ID:    domain.PackEntityID(domain.EntityItem, level, m.next),
			Kind:  kind,
			Pos:   pos,
			Value: value,
		})
		spawned++
	}

	logger.Log.WithFields(logrus.Fields{
		"component": "item_system",
		"level":     level,
		"spawned":   spawned,
	}).Debug("Items spawned")
}

func rollItem(rng utils.Source) (domain.ItemKind, int) {
	r := rng.Float64()
	switch {
	case r < 0.4:
		return domain.Gold, utils.RandRange(rng, 5, 20)
	case r < 0.7:
		return domain.HealthPotion, 1
	case r < 0.9:
		return domain.MagicScroll, 1
	default:
		return domain.Weapon, 1
	}
}

func (m *ItemManager) Add(it *domain.Item) {
	m.items = append(m.items, it)
}

// At - несобранный предмет на клетке.
func (m *ItemManager) At(p domain.Position) *domain.Item {
	for _, it := range m.items {
		if !it.Collected && it.Pos == p {
			return it
		}
	}
	return nil
}

// Collect помечает предмет на клетке собранным и возвращает его.
func (m *ItemManager) Collect(p domain.Position) *domain.Item {
	it := m.At(p)
	if it != nil {
		it.Collected = true
	}
	return it
}

// Visible - несобранные предметы, которые сейчас видит игрок.
func (m *ItemManager) Visible(vis Visibility) []*domain.Item {
	var out []*domain.Item
	for _, it := range m.items {
		if !it.Collected && vis.IsVisible(it.Pos) {
			out = append(out, it)
		}
	}
	return out
}

// Remaining - сколько предметов еще лежит на уровне.
func (m *ItemManager) Remaining() int {
	n := 0
	for _, it := range m.items {
		if !it.Collected {
			n++
		}
	}
	return n
}

func (m *ItemManager) Clear() {
	m.items = nil
}
