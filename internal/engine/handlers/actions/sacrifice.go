package actions

import (
	"terminus-veil/internal/engine/handlers"
	"terminus-veil/pkg/api"
)

// HandleSelect выбирает вариант открытого алтаря. Индекс вне диапазона -
// не ошибка, ядро его просто игнорирует.
func HandleSelect(ctx handlers.Context, p api.SelectPayload) (handlers.Result, error) {
	return handlers.Result{Outcome: ctx.Sim.SelectSacrificeOption(p.Index)}, nil
}

// HandleConfirm принимает или отвергает выбранную жертву.
func HandleConfirm(ctx handlers.Context, p api.ConfirmPayload) (handlers.Result, error) {
	return handlers.Result{Outcome: ctx.Sim.Confirm(p.Accept)}, nil
}
