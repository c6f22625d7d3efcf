package domain

import "strings"

// ActionType - числовой идентификатор команды игрока
type ActionType uint8

const (
	ActionUnknown ActionType = iota
	ActionMove
	ActionUseItem
	ActionInteract
	ActionSelect
	ActionConfirm
	ActionRestart
	ActionAdvance
)

var actionStringToCmd = map[string]ActionType{
	"MOVE":     ActionMove,
	"USE_ITEM": ActionUseItem,
	"INTERACT": ActionInteract,
	"SELECT":   ActionSelect,
	"CONFIRM":  ActionConfirm,
	"RESTART":  ActionRestart,
	"ADVANCE":  ActionAdvance,
}

var actionCmdToString = map[ActionType]string{
	ActionMove:     "MOVE",
	ActionUseItem:  "USE_ITEM",
	ActionInteract: "INTERACT",
	ActionSelect:   "SELECT",
	ActionConfirm:  "CONFIRM",
	ActionRestart:  "RESTART",
	ActionAdvance:  "ADVANCE",
}

// ParseAction конвертирует строку из JSON в ActionType (без учета регистра)
func ParseAction(s string) ActionType {
	if val, ok := actionStringToCmd[strings.ToUpper(s)]; ok {
		return val
	}
	return ActionUnknown
}

func (a ActionType) String() string {
	if val, ok := actionCmdToString[a]; ok {
		return val
	}
	return "UNKNOWN"
}
