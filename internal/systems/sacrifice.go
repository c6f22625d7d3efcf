package systems

import (
	"fmt"

	"terminus-veil/internal/domain"
	"terminus-veil/pkg/dungeon"
	"terminus-veil/pkg/logger"
	"terminus-veil/pkg/utils"

	"github.com/sirupsen/logrus"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	bloodMinLoss    = 10
	bloodMaxHPFloor = 30
	bloodAttack     = 5
	sightReduction  = 2
	sightCrit       = 0.25
	memorySpawnGain = 100
	wealthBuff      = 10
	wealthTurns     = 15
	agilityHP       = 10
	soulAttack      = 3
	soulHP          = 10
	sanitySurprise  = 2.0
	hopeRegen       = 2
)

// SacrificeTarget - все, что может затронуть жертва. Собирается заново
// перед каждым применением, движок жертв ссылок не хранит.
type SacrificeTarget struct {
	Player *domain.Player
	State  *domain.GameState
	Vision *VisibilityTracker
	Grid   *domain.Grid
}

// SacrificeEngine - алтари текущего уровня и счетчики жертв за всю игру.
// Оба счетчика только растут.
type SacrificeEngine struct {
	required int
	total    int
	counts   map[domain.SacrificeKind]int
	altars   []*domain.Altar
	next     uint64
}

func NewSacrificeEngine() *SacrificeEngine {
	return &SacrificeEngine{
		required: 1,
		counts:   make(map[domain.SacrificeKind]int),
	}
}

func (e *SacrificeEngine) Required() int { return e.required }
func (e *SacrificeEngine) Total() int    { return e.total }

func (e *SacrificeEngine) Count(kind domain.SacrificeKind) int {
	return e.counts[kind]
}

// CanUseExit - сделано не меньше жертв, чем требуется.
func (e *SacrificeEngine) CanUseExit() bool {
	return e.total >= e.required
}

// Remaining - сколько жертв еще нужно для выхода.
func (e *SacrificeEngine) Remaining() int {
	return max(0, e.required-e.total)
}

func (e *SacrificeEngine) Altars() []*domain.Altar {
	return e.altars
}

// AddAltar ставит готовый алтарь (тесты, отладка).
func (e *SacrificeEngine) AddAltar(a *domain.Altar) {
	e.altars = append(e.altars, a)
}

// SpawnAltars заменяет алтари уровня новыми, в центрах комнат.
// Каждый алтарь получает два разных варианта из каталога.
func (e *SacrificeEngine) SpawnAltars(rng utils.Source, g *domain.Grid, count, level int, exclude ...domain.Position) []*domain.Altar {
	e.altars = nil
	positions := dungeon.FindRoomCenterPositions(rng, g, count+len(exclude))

	for _, pos := range positions {
		if len(e.altars) == count {
			break
		}
		if containsPos(exclude, pos) || e.AltarAt(pos) != nil {
			continue
		}

		picks := utils.Sample(rng, domain.AllSacrifices(), domain.AltarOptionCount)
		e.next++
		altar := &domain.Altar{
			ID:    domain.PackEntityID(domain.EntityAltar, level, e.next),
			Pos:   pos,
			Level: level,
		}
		copy(altar.Options[:], picks)
		e.altars = append(e.altars, altar)
	}

	logger.Log.WithFields(logrus.Fields{
		"component": "sacrifice_system",
		"level":     level,
		"altars":    len(e.altars),
	}).Debug("Altars placed")

	return e.altars
}

// AltarAt возвращает алтарь на клетке, включая использованные.
func (e *SacrificeEngine) AltarAt(p domain.Position) *domain.Altar {
	for _, a := range e.altars {
		if a.Pos == p {
			return a
		}
	}
	return nil
}

// Offer - варианты алтаря. У использованного алтаря их нет.
func (e *SacrificeEngine) Offer(altar *domain.Altar) []domain.SacrificeKind {
	if altar == nil {
		return nil
	}
	return altar.Offer()
}

// Accept применяет выбранный вариант алтаря и расходует алтарь.
// Возвращает false, если алтарь уже использован или индекс вне диапазона.
func (e *SacrificeEngine) Accept(rng utils.Source, altar *domain.Altar, option int, t SacrificeTarget) (string, bool) {
	opts := e.Offer(altar)
	if option < 0 || option >= len(opts) {
		return "", false
	}
	kind := opts[option]
	altar.Consume()
	return e.Apply(rng, kind, t), true
}

// Apply выполняет эффект жертвы. Применение никогда не проваливается.
// Жертва надежды не засчитывается в total: она только поднимает требование,
// поэтому выход закрывается сразу после нее.
func (e *SacrificeEngine) Apply(rng utils.Source, kind domain.SacrificeKind, t SacrificeTarget) string {
	e.counts[kind]++
	if kind != domain.SacrificeHope {
		e.total++
	}

	p := t.Player
	var msg string

	switch kind {
	case domain.SacrificeBlood:
		loss := max(bloodMinLoss, p.Stats.MaxHP/7)
		p.Stats.SetMaxHP(max(bloodMaxHPFloor, p.Stats.MaxHP-loss))
		p.Stats.Attack += bloodAttack
		msg = fmt.Sprintf("You offer your blood! Max HP -%d, Attack +5 permanently!", loss)

	case domain.SacrificeSight:
		p.Status.SightReduction += sightReduction
		p.Status.CritChance += sightCrit
		msg = "You sacrifice your sight! FOV shrinks by 2, Critical chance +25%!"

	case domain.SacrificeMemory:
		if t.Vision != nil {
			t.Vision.ClearExplored()
		}
		t.State.ItemSpawnBonus += memorySpawnGain
		msg = "You sacrifice your memories! Map knowledge lost, items will abound!"

	case domain.SacrificeWealth:
		loss := p.Inventory.Gold / 2
		p.Inventory.Gold -= loss
		p.Status.TempAttackBuff += wealthBuff
		p.Status.TempBuffTurns = wealthTurns
		msg = fmt.Sprintf("You sacrifice your wealth! Lost %d gold, Attack +10 for 15 turns!", loss)

	case domain.SacrificeAgility:
		p.Status.MovementPenalty++
		p.Stats.SetMaxHP(p.Stats.MaxHP + agilityHP)
		p.Stats.Heal(agilityHP)
		msg = "You sacrifice your agility! Movement slowed, but gained +10 Max HP!"

	case domain.SacrificeSoul:
		if kinds := p.Inventory.Kinds(); len(kinds) > 0 {
			p.Inventory.Take(utils.Pick(rng, kinds))
		}
		p.Stats.Attack += soulAttack
		p.Stats.SetMaxHP(p.Stats.MaxHP + soulHP)
		p.Stats.Heal(soulHP)
		msg = "You sacrifice a piece of your soul! Lost an item, but gained +3 Attack and +10 Max HP!"

	case domain.SacrificeSanity:
		t.State.MonsterSpeedBuff++
		p.Status.SurpriseMultiplier = sanitySurprise
		msg = "You sacrifice your sanity! Monsters move faster, but you ambush fiercely!"

	case domain.SacrificeHope:
		e.required++
		p.Status.HPRegeneration += hopeRegen
		msg = "You sacrifice your hope! Deeper descent requires more sacrifice, but you regenerate 2 HP per turn!"

	case domain.SacrificeFuture:
		loss := t.State.Score / 4
		t.State.Score = max(0, t.State.Score-loss)
		if t.Vision != nil && t.Grid != nil {
			t.Vision.ExploreAll(t.Grid)
		}
		msg = fmt.Sprintf("You sacrifice your future! Lost %d score, but the map is revealed!", loss)

	case domain.SacrificeFamily:
		p.Status.CanUsePotions = false
		p.Status.Vampiric = true
		msg = "You sacrifice your family! Potions are forbidden, but you heal when dealing damage!"

	default:
		msg = fmt.Sprintf("The altar accepts your %s sacrifice!", kind)
	}

	logger.Log.WithFields(logrus.Fields{
		"component": "sacrifice_system",
		"kind":      kind.String(),
		"total":     e.total,
		"required":  e.required,
	}).Info("Sacrifice applied")

	return msg
}

// Reset - новая игра.
func (e *SacrificeEngine) Reset() {
	e.altars = nil
	e.counts = make(map[domain.SacrificeKind]int)
	e.required = 1
	e.total = 0
}

// AltarMenu - строки меню выбора для открытого алтаря.
func AltarMenu(altar *domain.Altar) []string {
	lines := []string{"THE ALTAR HUNGERS... CHOOSE YOUR SACRIFICE"}
	for i, kind := range altar.Offer() {
		info := kind.Info()
		lines = append(lines,
			fmt.Sprintf("%d. %s", i+1, info.Name),
			"   Cost: "+info.Cost,
			"   Benefit: "+info.Benefit,
		)
	}
	return lines
}

// AltarPrompt - запрос подтверждения для выбранного варианта.
func AltarPrompt(kind domain.SacrificeKind) []string {
	info := kind.Info()
	return []string{
		"THE ALTAR DEMANDS " + cases.Upper(language.English).String(info.Name),
		"Cost: " + info.Cost,
		"Benefit: " + info.Benefit,
	}
}
