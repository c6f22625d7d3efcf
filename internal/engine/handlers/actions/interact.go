package actions

import (
	"terminus-veil/internal/engine/handlers"
)

// HandleInteract открывает или закрывает меню алтаря под игроком.
func HandleInteract(ctx handlers.Context) (handlers.Result, error) {
	return handlers.Result{Outcome: ctx.Sim.InteractAltar()}, nil
}
