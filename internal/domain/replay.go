package domain

import "encoding/json"

// ReplayAction - одно принятое действие игрока
type ReplayAction struct {
	Turn    int             `json:"turn"`
	Action  ActionType      `json:"action"`
	Payload json.RawMessage `json:"payload"`
}

// ReplaySession - журнал партии: зерно + последовательность команд.
// Повторное применение команд к игре с тем же зерном восстанавливает её состояние.
type ReplaySession struct {
	Seed      int64          `json:"seed"`
	Width     int            `json:"width"`
	Height    int            `json:"height"`
	Timestamp int64          `json:"timestamp"`
	Actions   []ReplayAction `json:"actions"`
}
