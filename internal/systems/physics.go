package systems

import (
	"terminus-veil/internal/domain"
	"terminus-veil/pkg/logger"

	"github.com/sirupsen/logrus"
)

// HasLineOfSight проверяет прямую видимость между двумя точками (Брезенхэм,
// только целочисленная арифметика). Стартовая и конечная клетки не блокируют,
// клетки за пределами карты блокируют.
func HasLineOfSight(g *domain.Grid, p1, p2 domain.Position) bool {
	if p1 == p2 {
		return true
	}

	x0, y0 := p1.X, p1.Y
	x1, y1 := p2.X, p2.Y

	dx := x1 - x0
	if dx < 0 {
		dx = -dx
	}
	dy := y1 - y0
	if dy < 0 {
		dy = -dy
	}

	sx, sy := p1.DirectionTo(p2)

	err := dx - dy

	for {
		isStartPoint := x0 == p1.X && y0 == p1.Y
		isEndPoint := x0 == x1 && y0 == y1

		// At() возвращает стену за пределами карты
		if !isStartPoint && !isEndPoint && g.IsWall(x0, y0) {
			if logger.Log.IsLevelEnabled(logrus.TraceLevel) {
				logger.Log.WithFields(logrus.Fields{
					"component":      "physics_system",
					"start_pos":      p1,
					"end_pos":        p2,
					"blocking_point": domain.Position{X: x0, Y: y0},
				}).Trace("Line of sight blocked")
			}
			return false
		}

		if isEndPoint {
			break
		}

		e2 := err * 2
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}

	return true
}
