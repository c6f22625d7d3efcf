package systems

import (
	"sort"

	"terminus-veil/internal/domain"
	"terminus-veil/pkg/logger"

	"github.com/sirupsen/logrus"
	"github.com/zyedidia/generic/mapset"
)

// FieldOfView - алгоритм видимости: множество клеток, видимых из origin.
// Сетка передается при каждом вызове, алгоритм не хранит ссылок на уровень.
type FieldOfView interface {
	Compute(g *domain.Grid, origin domain.Position, radius int) mapset.Set[domain.Position]
}

// rayDirections - 8 направлений лучей (4 стороны + 4 диагонали)
var rayDirections = [8][2]int{
	{0, -1}, {1, -1}, {1, 0}, {1, 1},
	{0, 1}, {-1, 1}, {-1, 0}, {-1, -1},
}

// RayCaster пускает 8 лучей. Луч включает первую стену и на ней останавливается.
type RayCaster struct{}

func (RayCaster) Compute(g *domain.Grid, origin domain.Position, radius int) mapset.Set[domain.Position] {
	visible := mapset.New[domain.Position]()
	visible.Put(origin)

	for _, d := range rayDirections {
		for step := 1; step <= radius; step++ {
			p := origin.Shift(d[0]*step, d[1]*step)
			if !g.InBounds(p.X, p.Y) {
				break
			}
			visible.Put(p)
			if g.IsWall(p.X, p.Y) {
				break
			}
		}
	}
	return visible
}

// CircularSight - клетки в евклидовом радиусе, до которых есть прямая видимость.
// Этот режим используется в игре.
type CircularSight struct{}

func (CircularSight) Compute(g *domain.Grid, origin domain.Position, radius int) mapset.Set[domain.Position] {
	visible := mapset.New[domain.Position]()
	rSq := radius * radius

	for y := origin.Y - radius; y <= origin.Y+radius; y++ {
		for x := origin.X - radius; x <= origin.X+radius; x++ {
			if !g.InBounds(x, y) {
				continue
			}
			p := domain.Position{X: x, Y: y}
			if origin.DistanceSquaredTo(p) > rSq {
				continue
			}
			if HasLineOfSight(g, origin, p) {
				visible.Put(p)
			}
		}
	}
	return visible
}

// Мультипликаторы для трансформации координат в 8 октантов
var multipliers = [4][8]int{
	{1, 0, 0, -1, -1, 0, 0, 1},
	{0, 1, -1, 0, 0, -1, 1, 0},
	{0, 1, 1, 0, 0, -1, -1, 0},
	{1, 0, 0, 1, -1, 0, 0, -1},
}

// Shadowcaster - рекурсивный shadowcasting по 8 октантам.
// Симметричнее лучей, дешевле CircularSight на больших радиусах.
type Shadowcaster struct{}

func (Shadowcaster) Compute(g *domain.Grid, origin domain.Position, radius int) mapset.Set[domain.Position] {
	visible := mapset.New[domain.Position]()
	if radius <= 0 {
		return visible
	}
	visible.Put(origin)

	for i := 0; i < 8; i++ {
		castLight(g, origin.X, origin.Y, 1, 1.0, 0.0, radius,
			multipliers[0][i], multipliers[1][i],
			multipliers[2][i], multipliers[3][i], visible)
	}
	return visible
}

func castLight(g *domain.Grid, cx, cy, row int, start, end float64, radius, xx, xy, yx, yy int, visible mapset.Set[domain.Position]) {
	if start < end {
		return
	}

	radiusSq := radius * radius

	for j := row; j <= radius; j++ {
		dx, dy := -j-1, -j
		blocked := false
		newStart := start

		for {
			dx++
			if dx > 0 {
				break
			}

			lSlope := (float64(dx) - 0.5) / (float64(dy) + 0.5)
			rSlope := (float64(dx) + 0.5) / (float64(dy) - 0.5)

			if start < rSlope {
				continue
			}
			if end > lSlope {
				break
			}

			X := cx + dx*xx + dy*xy
			Y := cy + dx*yx + dy*yy

			if g.InBounds(X, Y) && dx*dx+dy*dy <= radiusSq {
				visible.Put(domain.Position{X: X, Y: Y})
			}

			if blocked {
				if g.IsWall(X, Y) {
					newStart = rSlope
					continue
				}
				blocked = false
				start = newStart
			} else if g.IsWall(X, Y) && j < radius {
				blocked = true
				castLight(g, cx, cy, j+1, start, lSlope, radius, xx, xy, yx, yy, visible)
				newStart = rSlope
			}
		}
		if blocked {
			break
		}
	}
}

// VisibilityTracker хранит видимые клетки (перезаписываются при каждом пересчете)
// и исследованные (только растут, пока их явно не сбросят).
type VisibilityTracker struct {
	fov      FieldOfView
	visible  mapset.Set[domain.Position]
	explored mapset.Set[domain.Position]
}

func NewVisibilityTracker(fov FieldOfView) *VisibilityTracker {
	if fov == nil {
		fov = CircularSight{}
	}
	return &VisibilityTracker{
		fov:      fov,
		visible:  mapset.New[domain.Position](),
		explored: mapset.New[domain.Position](),
	}
}

// Update пересчитывает видимость из origin и добавляет ее в исследованное.
func (t *VisibilityTracker) Update(g *domain.Grid, origin domain.Position, radius int) {
	t.visible = t.fov.Compute(g, origin, radius)
	t.visible.Each(func(p domain.Position) {
		t.explored.Put(p)
	})

	logger.Log.WithFields(logrus.Fields{
		"component":      "fov_system",
		"observer_pos":   origin,
		"radius":         radius,
		"visible_tiles":  t.visible.Size(),
		"explored_tiles": t.explored.Size(),
	}).Debug("FOV calculation complete.")
}

func (t *VisibilityTracker) IsVisible(p domain.Position) bool {
	return t.visible.Has(p)
}

func (t *VisibilityTracker) IsExplored(p domain.Position) bool {
	return t.explored.Has(p)
}

// ClearExplored забывает карту. Текущая видимость тоже сбрасывается,
// она восстановится при следующем Update.
func (t *VisibilityTracker) ClearExplored() {
	t.explored = mapset.New[domain.Position]()
	t.visible = mapset.New[domain.Position]()
}

// ExploreAll отмечает каждую клетку карты исследованной.
func (t *VisibilityTracker) ExploreAll(g *domain.Grid) {
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			t.explored.Put(domain.Position{X: x, Y: y})
		}
	}
}

// Reset - новый уровень: все множества пустые.
func (t *VisibilityTracker) Reset() {
	t.ClearExplored()
}

func (t *VisibilityTracker) VisibleCount() int  { return t.visible.Size() }
func (t *VisibilityTracker) ExploredCount() int { return t.explored.Size() }

// Visible - видимые клетки в порядке строк.
func (t *VisibilityTracker) Visible() []domain.Position {
	return sortedPositions(t.visible)
}

// Explored - исследованные клетки в порядке строк.
func (t *VisibilityTracker) Explored() []domain.Position {
	return sortedPositions(t.explored)
}

func sortedPositions(s mapset.Set[domain.Position]) []domain.Position {
	out := make([]domain.Position, 0, s.Size())
	s.Each(func(p domain.Position) {
		out = append(out, p)
	})
	sort.Slice(out, func(i, j int) bool {
		if out[i].Y != out[j].Y {
			return out[i].Y < out[j].Y
		}
		return out[i].X < out[j].X
	})
	return out
}
