package api

// Glyph - символ и цвет для отрисовки на клиенте.
// Игровые данные о символах ничего не знают, таблица живет только здесь.
type Glyph struct {
	Symbol string
	Color  string
}

var (
	PlayerGlyph  = Glyph{"☺", "#22D3EE"}
	AltarGlyph   = Glyph{"Ω", "#C026D3"}
	UsedAltar    = Glyph{"Ω", "#4B5563"}
	CorpseGlyph  = Glyph{"☠", "#6B7280"}
	UnknownGlyph = Glyph{"?", "#FFFFFF"}
)

// Tiles: ключ - TileKind.String() (WALL, FLOOR, EXIT).
var tileGlyphs = map[string]Glyph{
	"WALL":  {"#", "#666666"},
	"FLOOR": {"·", "#333333"},
	"EXIT":  {"▼", "#FACC15"},
}

// Monsters: ключ - имя монстра.
var monsterGlyphs = map[string]Glyph{
	"Goblin": {"♠", "#22C55E"},
	"Orc":    {"♣", "#F97316"},
	"Dragon": {"♦", "#EF4444"},
}

// Items: ключ - токен предмета.
var itemGlyphs = map[string]Glyph{
	"HEALTH_POTION": {"♥", "#F43F5E"},
	"GOLD":          {"¤", "#EAB308"},
	"MAGIC_SCROLL":  {"♪", "#A78BFA"},
	"WEAPON":        {"†", "#94A3B8"},
}

// ExploredFloor - пол вне поля зрения.
var ExploredFloor = Glyph{"░", "#1F2937"}

func TileGlyph(kind string) Glyph {
	if g, ok := tileGlyphs[kind]; ok {
		return g
	}
	return UnknownGlyph
}

func MonsterGlyph(name string) Glyph {
	if g, ok := monsterGlyphs[name]; ok {
		return g
	}
	return UnknownGlyph
}

func ItemGlyph(token string) Glyph {
	if g, ok := itemGlyphs[token]; ok {
		return g
	}
	return UnknownGlyph
}
