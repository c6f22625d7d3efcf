package engine

import (
	"terminus-veil/internal/domain"
	"terminus-veil/internal/systems"
	"terminus-veil/pkg/dungeon"
	"terminus-veil/pkg/logger"
	"terminus-veil/pkg/utils"

	"github.com/sirupsen/logrus"
)

// Game - контекст симуляции одной партии. Владеет сеткой, актерами, алтарями
// и единственным источником случайности. Подсистемы получают нужное через
// аргументы и не держат ссылок друг на друга.
type Game struct {
	cfg Config
	rng utils.Source

	Grid  *domain.Grid
	Start domain.Position
	Exit  domain.Position

	Player     *domain.Player
	State      *domain.GameState
	Vision     *systems.VisibilityTracker
	Monsters   *systems.MonsterManager
	Items      *systems.ItemManager
	Sacrifices *systems.SacrificeEngine
	Scheduler  *TurnScheduler
	Log        *MessageLog

	// altar - открытое меню алтаря, nil если закрыто
	altar *altarSession
}

type altarSession struct {
	altar    *domain.Altar
	selected int // -1, пока вариант не выбран
}

// NewGame создает партию с production-источником случайности от cfg.Seed.
func NewGame(cfg Config) *Game {
	return NewGameWithSource(cfg, utils.NewSource(cfg.Seed))
}

// NewGameWithSource - то же с внешним источником (тесты, реплеи).
func NewGameWithSource(cfg Config, rng utils.Source) *Game {
	cfg = cfg.normalized()
	g := &Game{
		cfg:        cfg,
		rng:        rng,
		Vision:     systems.NewVisibilityTracker(systems.CircularSight{}),
		Monsters:   systems.NewMonsterManager(),
		Items:      systems.NewItemManager(),
		Sacrifices: systems.NewSacrificeEngine(),
		Scheduler:  NewTurnScheduler(),
		Log:        NewMessageLog(cfg.LogRetention),
	}
	g.reset()
	return g
}

func (g *Game) Config() Config {
	return g.cfg
}

// reset - все с нуля: игрок, прогресс, жертвы, журнал, первый уровень.
func (g *Game) reset() {
	g.Player = domain.NewPlayer(domain.Position{})
	g.State = domain.NewGameState()
	g.Sacrifices.Reset()
	g.Scheduler.Reset()
	g.Log.Clear()
	g.buildLevel()
}

// buildLevel генерирует сетку текущего уровня и заселяет ее.
// Игрок и движок жертв сохраняются, остальное создается заново.
func (g *Game) buildLevel() {
	lvl := dungeon.Generate(g.rng, g.cfg.Width, g.cfg.Height, g.cfg.MinRoomSize)
	g.Grid = lvl.Grid
	g.Start, g.Exit = dungeon.PlaceStartAndExit(g.rng, g.Grid)
	g.Player.Pos = g.Start

	level := g.State.Level

	g.Monsters.Clear()
	g.Monsters.Spawn(g.rng, g.Grid, g.State.MonsterCount(), level, g.Start, g.Exit)

	g.Items.Clear()
	g.Items.Spawn(g.rng, g.Grid, g.State.ItemCount(), level, g.Start, g.Exit)

	g.Sacrifices.SpawnAltars(g.rng, g.Grid, g.State.AltarCount(), level, g.Start, g.Exit)

	g.Vision.Reset()
	g.altar = nil
	g.refreshVision()

	logger.Log.WithFields(logrus.Fields{
		"component": "game",
		"level":     level,
		"rooms":     len(lvl.Rooms),
		"monsters":  g.Monsters.Count(),
		"items":     g.Items.Remaining(),
		"altars":    len(g.Sacrifices.Altars()),
		"start":     g.Start,
		"exit":      g.Exit,
	}).Info("Level built")
}

// SightRadius - текущий радиус обзора с учетом жертвы зрения.
func (g *Game) SightRadius() int {
	return g.Player.Status.SightRadius(g.cfg.BaseSightRadius)
}

func (g *Game) refreshVision() {
	g.Vision.Update(g.Grid, g.Player.Pos, g.SightRadius())
}

func (g *Game) GameOver() bool { return g.State.GameOver }
func (g *Game) Victory() bool  { return g.State.Victory }

// OpenAltar - открытый алтарь и выбранный вариант (-1, если не выбран).
func (g *Game) OpenAltar() (*domain.Altar, int) {
	if g.altar == nil {
		return nil, -1
	}
	return g.altar.altar, g.altar.selected
}

func (g *Game) sacrificeTarget() systems.SacrificeTarget {
	return systems.SacrificeTarget{
		Player: g.Player,
		State:  g.State,
		Vision: g.Vision,
		Grid:   g.Grid,
	}
}
