package actions

import (
	"errors"

	"terminus-veil/internal/engine/handlers"
)

var ErrExitNotReached = errors.New("exit not reached")

// HandleRestart начинает партию заново.
func HandleRestart(ctx handlers.Context) (handlers.Result, error) {
	return handlers.Result{Outcome: ctx.Sim.Restart()}, nil
}

// HandleAdvance - спуск на следующий уровень. Разрешен только после победы на текущем.
func HandleAdvance(ctx handlers.Context) (handlers.Result, error) {
	if !ctx.Sim.Victory() {
		return handlers.EmptyResult(), ErrExitNotReached
	}
	return handlers.Result{Outcome: ctx.Sim.AdvanceLevel()}, nil
}
