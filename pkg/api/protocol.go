package api

import (
	"encoding/json"
)

// ProtocolVersion - версия схемы JSON-сообщений. Растет при любом
// несовместимом изменении ServerResponse или ClientCommand.
const ProtocolVersion = 1

// --- СЕРВЕР -> КЛИЕНТ ---

// ServerResponse это корневой объект, который сервер отправляет клиенту.
// Полный "снимок" партии после обработки одной команды: карта в пределах
// исследованного, видимые монстры и предметы, алтари, состояние игрока и журнал.
type ServerResponse struct {
	// Type тип сообщения: "UPDATE" или "ERROR".
	Type string `json:"type"`

	// SessionID идентификатор сессии, назначенный сервером.
	SessionID string `json:"sessionId,omitempty"`

	// Turn счетчик ходов планировщика. Растет ровно на 1 за проход мира.
	Turn int `json:"turn"`

	// Grid метаданные о размере всей карты.
	Grid *GridMeta `json:"grid,omitempty"`

	// Map срез всех видимых и/или исследованных тайлов.
	Map []TileView `json:"map,omitempty"`

	Player   *PlayerView   `json:"player,omitempty"`
	Monsters []MonsterView `json:"monsters,omitempty"`
	Items    []ItemView    `json:"items,omitempty"`
	Altars   []AltarView   `json:"altars,omitempty"`

	// Progress - уровень, счет и счетчики жертв.
	Progress *ProgressView `json:"progress,omitempty"`

	// Offer заполнен, пока открыто меню алтаря.
	Offer *AltarOfferView `json:"offer,omitempty"`

	// Logs последние сообщения журнала (скользящее окно).
	Logs []LogEntry `json:"logs,omitempty"`

	GameOver bool `json:"gameOver"`
	Victory  bool `json:"victory"`

	// Error текст ошибки для Type == "ERROR".
	Error string `json:"error,omitempty"`
}

// GridMeta содержит общие размеры карты, чтобы клиент знал,
// какую сетку для рендеринга нужно подготовить.
type GridMeta struct {
	Width  int `json:"w"`
	Height int `json:"h"`
}

// Point - координата на карте.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// TileView это DTO для одного тайла карты.
type TileView struct {
	X int `json:"x"`
	Y int `json:"y"`

	// Kind - WALL, FLOOR или EXIT.
	Kind string `json:"kind"`

	// Symbol и Color - визуальное представление тайла (e.g. "#" для стены).
	Symbol string `json:"symbol"`
	Color  string `json:"color"`

	// IsVisible true, если тайл находится в текущем поле зрения. Рендерится ярко.
	IsVisible bool `json:"isVisible"`

	// IsExplored true, если тайл когда-либо был увиден. Используется для "тумана войны".
	IsExplored bool `json:"isExplored"`
}

// PlayerView - полное состояние игрока. Владелец видит всё.
type PlayerView struct {
	Pos       Point         `json:"pos"`
	Symbol    string        `json:"symbol"`
	Color     string        `json:"color"`
	Stats     StatsView     `json:"stats"`
	Status    StatusView    `json:"status"`
	Inventory InventoryView `json:"inventory"`
	Sight     int           `json:"sight"`
}

// StatsView это DTO для характеристик актера.
type StatsView struct {
	HP     int  `json:"hp"`
	MaxHP  int  `json:"maxHp"`
	Attack int  `json:"attack"`
	Buff   int  `json:"buff,omitempty"`
	IsDead bool `json:"isDead"`
}

// StatusView - эффекты жертв, наложенные на игрока.
type StatusView struct {
	CritChance         float64  `json:"critChance"`
	SightReduction     int      `json:"sightReduction"`
	DisabledMoves      []string `json:"disabledMoves,omitempty"`
	TempBuffTurns      int      `json:"tempBuffTurns,omitempty"`
	MovementPenalty    int      `json:"movementPenalty"`
	HPRegeneration     int      `json:"hpRegeneration"`
	SurpriseMultiplier float64  `json:"surpriseMultiplier"`
	Vampiric           bool     `json:"vampiric"`
	CanUsePotions      bool     `json:"canUsePotions"`
}

// MonsterView - видимый монстр.
type MonsterView struct {
	ID     string    `json:"id"`
	Name   string    `json:"name"`
	Pos    Point     `json:"pos"`
	Symbol string    `json:"symbol"`
	Color  string    `json:"color"`
	Stats  StatsView `json:"stats"`
}

// ItemView - предмет на полу.
type ItemView struct {
	ID     string `json:"id"`
	Kind   string `json:"kind"`
	Name   string `json:"name"`
	Pos    Point  `json:"pos"`
	Symbol string `json:"symbol"`
	Color  string `json:"color"`
	Value  int    `json:"value,omitempty"`
}

// InventoryView - стеки предметов и кошелек.
type InventoryView struct {
	Items []StackView `json:"items"`
	Gold  int         `json:"gold"`
}

// StackView - одна стопка в инвентаре.
type StackView struct {
	Kind  string `json:"kind"`
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// AltarView - алтарь в пределах исследованной карты.
type AltarView struct {
	ID     string `json:"id"`
	Pos    Point  `json:"pos"`
	Used   bool   `json:"used"`
	Symbol string `json:"symbol"`
	Color  string `json:"color"`
}

// AltarOfferView - открытое меню алтаря.
type AltarOfferView struct {
	AltarID  string       `json:"altarId"`
	Options  []OptionView `json:"options"`
	Selected int          `json:"selected"` // -1, пока ничего не выбрано
	Lines    []string     `json:"lines"`
}

// OptionView - один вариант жертвы.
type OptionView struct {
	Kind    string `json:"kind"`
	Name    string `json:"name"`
	Cost    string `json:"cost"`
	Benefit string `json:"benefit"`
}

// ProgressView - прогресс партии.
type ProgressView struct {
	Level              int  `json:"level"`
	Score              int  `json:"score"`
	SacrificesRequired int  `json:"sacrificesRequired"`
	SacrificesMade     int  `json:"sacrificesMade"`
	ExitOpen           bool `json:"exitOpen"`
	MonstersLeft       int  `json:"monstersLeft"`
	ItemsLeft          int  `json:"itemsLeft"`
}

// LogEntry представляет одну запись в игровом журнале.
type LogEntry struct {
	ID        string `json:"id"`
	Turn      int    `json:"turn"`
	Text      string `json:"text"`
	Type      string `json:"type"`      // INFO, COMBAT, SACRIFICE, ERROR
	Timestamp int64  `json:"timestamp"` // Unix milliseconds
}

// --- КЛИЕНТ -> СЕРВЕР ---

// ClientCommand это корневой объект для всех сообщений от клиента к серверу.
type ClientCommand struct {
	// Token идентификатор сессии. Для первого сообщения может быть пустым.
	Token string `json:"token,omitempty"`

	// Action название действия: MOVE, USE_ITEM, INTERACT, SELECT, CONFIRM, RESTART, ADVANCE.
	Action string `json:"action"`

	// Payload JSON-объект с данными для действия. Его структура зависит от Action.
	Payload json.RawMessage `json:"payload,omitempty"`
}

// --- Payloads ---

// DirectionPayload используется для MOVE. Допустим только один шаг по оси.
type DirectionPayload struct {
	Dx int `json:"dx"` // Смещение по X (-1, 0, 1)
	Dy int `json:"dy"` // Смещение по Y (-1, 0, 1)
}

// ItemPayload используется для USE_ITEM.
type ItemPayload struct {
	Kind string `json:"kind"` // HEALTH_POTION, MAGIC_SCROLL, WEAPON
}

// SelectPayload используется для SELECT: номер варианта алтаря с нуля.
type SelectPayload struct {
	Index int `json:"index"`
}

// ConfirmPayload используется для CONFIRM.
type ConfirmPayload struct {
	Accept bool `json:"accept"`
}
