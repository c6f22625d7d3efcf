package domain

import "math"

// Position - координата клетки
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// DistanceTo - евклидово расстояние
func (p Position) DistanceTo(other Position) float64 {
	return math.Sqrt(float64(p.DistanceSquaredTo(other)))
}

// DistanceSquaredTo - квадрат расстояния, для сравнений без корня
func (p Position) DistanceSquaredTo(other Position) int {
	dx := p.X - other.X
	dy := p.Y - other.Y
	return dx*dx + dy*dy
}

// IsAdjacent - одна из восьми соседних клеток (по Чебышеву). Сама клетка соседом не считается.
func (p Position) IsAdjacent(other Position) bool {
	dx := abs(p.X - other.X)
	dy := abs(p.Y - other.Y)
	return dx <= 1 && dy <= 1 && (dx != 0 || dy != 0)
}

// Shift - позиция со сдвигом (dx, dy)
func (p Position) Shift(dx, dy int) Position {
	return Position{X: p.X + dx, Y: p.Y + dy}
}

// DirectionTo - единичный шаг (-1, 0 или 1 по каждой оси) в сторону other
func (p Position) DirectionTo(other Position) (int, int) {
	return Sign(other.X - p.X), Sign(other.Y - p.Y)
}

func Sign(v int) int {
	if v > 0 {
		return 1
	}
	if v < 0 {
		return -1
	}
	return 0
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
