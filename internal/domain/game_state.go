package domain

// GameState - уровень, счет и модификаторы спавна от жертв.
type GameState struct {
	Level            int  `json:"level"`
	Score            int  `json:"score"`
	GameOver         bool `json:"gameOver"`
	Victory          bool `json:"victory"`
	ItemSpawnBonus   int  `json:"itemSpawnBonus"`
	MonsterSpeedBuff int  `json:"monsterSpeedBuff"`
}

func NewGameState() *GameState {
	return &GameState{Level: 1}
}

// Advance - переход на следующий уровень, +100 × новый уровень к счету.
func (s *GameState) Advance() {
	s.Level++
	s.Victory = false
	s.Score += LevelScoreFactor * s.Level
}

// MonsterCount = min(3 + level + min(level×2, 10), 15).
func (s *GameState) MonsterCount() int {
	return min(3+s.Level+min(s.Level*2, 10), MaxMonsters)
}

// ItemCount = min(5 + level + item_spawn_bonus, 20).
func (s *GameState) ItemCount() int {
	return min(5+s.Level+s.ItemSpawnBonus, MaxItems)
}

// AltarCount = min(2 + level÷2, 4).
func (s *GameState) AltarCount() int {
	return min(2+s.Level/2, MaxAltars)
}
