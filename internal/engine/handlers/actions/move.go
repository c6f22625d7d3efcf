package actions

import (
	"terminus-veil/internal/engine/handlers"
	"terminus-veil/pkg/api"
)

// HandleMove - шаг, атака шагом или подход к алтарю. Вектор уже проверен
// валидатором DirectionPayload.
func HandleMove(ctx handlers.Context, p api.DirectionPayload) (handlers.Result, error) {
	return handlers.Result{Outcome: ctx.Sim.Move(p.Dx, p.Dy)}, nil
}
