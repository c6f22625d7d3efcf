package handlers

import (
	"encoding/json"

	"terminus-veil/internal/domain"
)

// Simulation - операции ядра, доступные командам игрока.
// *engine.Game неявно реализует этот интерфейс.
type Simulation interface {
	Move(dx, dy int) domain.Outcome
	UseItem(kind domain.ItemKind) domain.Outcome
	InteractAltar() domain.Outcome
	SelectSacrificeOption(index int) domain.Outcome
	Confirm(accept bool) domain.Outcome
	Restart() domain.Outcome
	AdvanceLevel() domain.Outcome
	Victory() bool
}

// Context передает хендлеру симуляцию, над которой выполняется команда.
type Context struct {
	Sim Simulation
}

// Result - результат выполнения команды.
// Хендлер НЕ пишет в журнал сам, журнал ведет ядро; хендлер только возвращает итог.
type Result struct {
	Outcome domain.Outcome
}

// HandlerFunc - это контракт для любой команды (MOVE, USE_ITEM, etc).
type HandlerFunc func(ctx Context, payload json.RawMessage) (Result, error)

// EmptyResult - вспомогательная функция для пустого успешного ответа
func EmptyResult() Result {
	return Result{}
}
