package actions

import (
	"fmt"
	"strings"

	"terminus-veil/internal/domain"
	"terminus-veil/internal/engine/handlers"
	"terminus-veil/pkg/api"
	"terminus-veil/pkg/logger"

	"github.com/sirupsen/logrus"
)

// HandleUse обрабатывает команду USE_ITEM - использование предмета из инвентаря
func HandleUse(ctx handlers.Context, p api.ItemPayload) (handlers.Result, error) {
	kind, ok := domain.ParseItemKind(strings.ToUpper(strings.TrimSpace(p.Kind)))
	if !ok {
		logger.Log.WithFields(logrus.Fields{
			"component": "use_handler",
			"kind":      p.Kind,
		}).Warn("Unknown item kind")
		return handlers.EmptyResult(), fmt.Errorf("unknown item kind %q", p.Kind)
	}

	return handlers.Result{Outcome: ctx.Sim.UseItem(kind)}, nil
}
