package dungeon

import (
	"terminus-veil/internal/domain"
	"terminus-veil/pkg/logger"
	"terminus-veil/pkg/utils"

	"github.com/sirupsen/logrus"
)

// Константы генерации по умолчанию
const (
	MapWidth    = 80
	MapHeight   = 40
	MinRoomSize = 6
	// Комната никогда не бывает меньше 3x3
	minRoomSide = 3
)

// Rect - прямоугольник комнаты или региона разбиения
type Rect struct {
	X, Y, W, H int
}

func (r Rect) Center() (int, int) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Level - результат генерации: сетка и список комнат в порядке обхода BSP.
type Level struct {
	Grid  *domain.Grid
	Rooms []Rect
}

// Generate строит уровень: BSP-разбиение, вырезание комнат и коридоров.
// Внешний ряд клеток всегда остается стеной.
func Generate(rng utils.Source, width, height, minRoomSize int) *Level {
	grid := domain.NewGrid(width, height)
	rooms := Partition(rng, Rect{X: 1, Y: 1, W: width - 2, H: height - 2}, minRoomSize)

	for _, room := range rooms {
		createRoom(grid, room)
	}
	Connect(grid, rooms)

	logger.Log.WithFields(logrus.Fields{
		"component": "dungeon_generator",
		"width":     width,
		"height":    height,
		"rooms":     len(rooms),
	}).Debug("Level carved")

	return &Level{Grid: grid, Rooms: rooms}
}

// Partition рекурсивно делит регион. Если регион слишком мал для разреза
// хотя бы по одной оси, в нем вырезается одна комната.
func Partition(rng utils.Source, region Rect, minRoomSize int) []Rect {
	if region.W < 2*minRoomSize || region.H < 2*minRoomSize {
		return []Rect{roomIn(rng, region)}
	}

	var a, b Rect
	if rng.Intn(2) == 0 {
		// Горизонтальный разрез
		split := utils.RandRange(rng, minRoomSize, region.H-minRoomSize)
		a = Rect{X: region.X, Y: region.Y, W: region.W, H: split}
		b = Rect{X: region.X, Y: region.Y + split, W: region.W, H: region.H - split}
	} else {
		split := utils.RandRange(rng, minRoomSize, region.W-minRoomSize)
		a = Rect{X: region.X, Y: region.Y, W: split, H: region.H}
		b = Rect{X: region.X + split, Y: region.Y, W: region.W - split, H: region.H}
	}

	return append(Partition(rng, a, minRoomSize), Partition(rng, b, minRoomSize)...)
}

// roomIn вырезает комнату внутри региона с отступом и случайным смещением.
func roomIn(rng utils.Source, region Rect) Rect {
	w := max(minRoomSide, region.W-2)
	h := max(minRoomSide, region.H-2)
	return Rect{
		X: region.X + utils.RandRange(rng, 0, max(0, region.W-w)),
		Y: region.Y + utils.RandRange(rng, 0, max(0, region.H-h)),
		W: w,
		H: h,
	}
}

// Connect соединяет каждую комнату со следующей коридором из двух отрезков:
// сначала по горизонтали на высоте первого центра, затем по вертикали.
func Connect(grid *domain.Grid, rooms []Rect) {
	for i := 0; i+1 < len(rooms); i++ {
		x1, y1 := rooms[i].Center()
		x2, y2 := rooms[i+1].Center()

		carve(grid, x1, y1, x2, y1)
		carve(grid, x2, y1, x2, y2)
	}
}

// --- Вспомогательные функции ---

func createRoom(grid *domain.Grid, room Rect) {
	for y := room.Y; y < room.Y+room.H; y++ {
		for x := room.X; x < room.X+room.W; x++ {
			grid.Set(x, y, domain.TileFloor)
		}
	}
}

// carve прокладывает прямой отрезок. Клетки вне сетки игнорируются.
func carve(grid *domain.Grid, x1, y1, x2, y2 int) {
	if y1 == y2 {
		for x := min(x1, x2); x <= max(x1, x2); x++ {
			grid.Set(x, y1, domain.TileFloor)
		}
		return
	}
	for y := min(y1, y2); y <= max(y1, y2); y++ {
		grid.Set(x2, y, domain.TileFloor)
	}
}
