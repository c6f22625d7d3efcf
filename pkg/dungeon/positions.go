package dungeon

import (
	"terminus-veil/internal/domain"
	"terminus-veil/pkg/logger"
	"terminus-veil/pkg/utils"

	"github.com/sirupsen/logrus"
	"github.com/zyedidia/generic/mapset"
)

var neighbours4 = [4][2]int{{0, -1}, {0, 1}, {-1, 0}, {1, 0}}

// FindValidPositions выбирает до count различных клеток пола.
// Если пола меньше, чем запрошено, возвращается весь пол.
func FindValidPositions(rng utils.Source, grid *domain.Grid, count int) []domain.Position {
	floor := grid.FloorTiles()
	if len(floor) <= count {
		return floor
	}
	return utils.Sample(rng, floor, count)
}

// FindRoomCenterPositions ищет центры комнат: связные области пола размером
// больше MinRoomComponent клеток, центр = среднее координат (с отбрасыванием дробной части).
// Центры, попавшие в стену (невыпуклые области), отбрасываются. Если центров не хватает,
// используется FindValidPositions.
func FindRoomCenterPositions(rng utils.Source, grid *domain.Grid, count int) []domain.Position {
	centers := roomCentroids(grid)
	if len(centers) < count {
		logger.Log.WithFields(logrus.Fields{
			"component": "dungeon_generator",
			"centers":   len(centers),
			"wanted":    count,
		}).Debug("Not enough room centers, falling back to floor sampling")
		return FindValidPositions(rng, grid, count)
	}
	return utils.Sample(rng, centers, count)
}

// PlaceStartAndExit выбирает старт игрока и выход в центрах двух разных комнат
// и помечает клетку выхода. Если двух различных позиций нет, используются
// соседние клетки в центре карты (они вырезаются в пол).
func PlaceStartAndExit(rng utils.Source, grid *domain.Grid) (start, exit domain.Position) {
	spots := FindRoomCenterPositions(rng, grid, 2)
	if len(spots) >= 2 && spots[0] != spots[1] {
		start, exit = spots[0], spots[1]
	} else {
		start = domain.Position{X: grid.Width / 2, Y: grid.Height / 2}
		exit = start.Shift(1, 0)
		grid.Set(start.X, start.Y, domain.TileFloor)

		logger.Log.WithFields(logrus.Fields{
			"component": "dungeon_generator",
			"start":     start,
		}).Warn("Using fallback start/exit positions")
	}

	grid.Set(exit.X, exit.Y, domain.TileExit)
	return start, exit
}

func roomCentroids(grid *domain.Grid) []domain.Position {
	visited := mapset.New[domain.Position]()
	var centers []domain.Position

	for y := 0; y < grid.Height; y++ {
		for x := 0; x < grid.Width; x++ {
			p := domain.Position{X: x, Y: y}
			if grid.At(x, y) != domain.TileFloor || visited.Has(p) {
				continue
			}

			component := floodFill(grid, p, visited)
			if len(component) <= domain.MinRoomComponent {
				continue
			}

			sx, sy := 0, 0
			for _, c := range component {
				sx += c.X
				sy += c.Y
			}
			center := domain.Position{X: sx / len(component), Y: sy / len(component)}
			if grid.At(center.X, center.Y) == domain.TileFloor {
				centers = append(centers, center)
			}
		}
	}
	return centers
}

// floodFill обходит 4-связную область пола начиная с from (BFS).
func floodFill(grid *domain.Grid, from domain.Position, visited mapset.Set[domain.Position]) []domain.Position {
	queue := []domain.Position{from}
	visited.Put(from)
	var component []domain.Position

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		component = append(component, cur)

		for _, d := range neighbours4 {
			next := cur.Shift(d[0], d[1])
			if grid.At(next.X, next.Y) != domain.TileFloor || visited.Has(next) {
				continue
			}
			visited.Put(next)
			queue = append(queue, next)
		}
	}
	return component
}
