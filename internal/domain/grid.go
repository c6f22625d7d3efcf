package domain

// TileKind - тип клетки
type TileKind uint8

const (
	TileWall TileKind = iota
	TileFloor
	TileExit
)

func (k TileKind) String() string {
	switch k {
	case TileFloor:
		return "FLOOR"
	case TileExit:
		return "EXIT"
	default:
		return "WALL"
	}
}

// Grid - карта одного уровня.
// Любой запрос за пределами карты возвращает TileWall.
type Grid struct {
	Width  int
	Height int
	tiles  []TileKind
}

// NewGrid создает карту, целиком залитую стенами
func NewGrid(width, height int) *Grid {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &Grid{
		Width:  width,
		Height: height,
		tiles:  make([]TileKind, width*height), // TileWall == 0
	}
}

// ParseGrid собирает карту из строк с символами '#', '.' и '>'.
// Короткие строки добиваются стенами. Нужен в основном тестам.
func ParseGrid(rows ...string) *Grid {
	if len(rows) == 0 {
		return NewGrid(0, 0)
	}
	g := NewGrid(len(rows[0]), len(rows))
	for y, row := range rows {
		for x := 0; x < len(row) && x < g.Width; x++ {
			switch row[x] {
			case '.':
				g.Set(x, y, TileFloor)
			case '>':
				g.Set(x, y, TileExit)
			}
		}
	}
	return g
}

func (g *Grid) Index(x, y int) int {
	return y*g.Width + x
}

func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < g.Width && y < g.Height
}

// At - тип клетки, за границей TileWall
func (g *Grid) At(x, y int) TileKind {
	if !g.InBounds(x, y) {
		return TileWall
	}
	return g.tiles[g.Index(x, y)]
}

// Set меняет клетку. Запись за границу игнорируется.
func (g *Grid) Set(x, y int, k TileKind) {
	if !g.InBounds(x, y) {
		return
	}
	g.tiles[g.Index(x, y)] = k
}

func (g *Grid) AtPos(p Position) TileKind {
	return g.At(p.X, p.Y)
}

// IsWall - стена или что угодно за картой
func (g *Grid) IsWall(x, y int) bool {
	return g.At(x, y) == TileWall
}

// IsWalkable - можно ли стоять на клетке (пол или выход)
func (g *Grid) IsWalkable(x, y int) bool {
	k := g.At(x, y)
	return k == TileFloor || k == TileExit
}

// FloorTiles - все клетки пола в порядке строк. Выход полом не считается.
func (g *Grid) FloorTiles() []Position {
	var out []Position
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			if g.tiles[g.Index(x, y)] == TileFloor {
				out = append(out, Position{X: x, Y: y})
			}
		}
	}
	return out
}
