package domain

// Игрок по умолчанию
const (
	PlayerStartHP     = 100
	PlayerStartAttack = 10
)

// Обзор
const (
	BaseSightRadius = 8
	MinSightRadius  = 3
	// AggroRadius - дальше этого видимый монстр не преследует
	AggroRadius = 8
)

// Рост монстров по уровням и ИИ
const (
	MonsterHPPerLevel     = 8
	MonsterAttackPerLevel = 3
	DiagonalJitterChance  = 0.3
)

// Лимиты спавна
const (
	MaxMonsters = 15
	MaxItems    = 20
	MaxAltars   = 4
)

const (
	AltarOptionCount    = 2
	LevelScoreFactor    = 100
	MessageLogSize      = 10
	MovementPenaltyStep = 0.1
	// Связные области пола такого размера и меньше считаются коридорами, а не комнатами
	MinRoomComponent = 10
)
