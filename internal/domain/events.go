package domain

// MessageKind - тип строки журнала для клиента
type MessageKind uint8

const (
	MessageInfo MessageKind = iota
	MessageCombat
	MessageSacrifice
	MessageError
)

var messageKindNames = map[MessageKind]string{
	MessageInfo:      "INFO",
	MessageCombat:    "COMBAT",
	MessageSacrifice: "SACRIFICE",
	MessageError:     "ERROR",
}

func (k MessageKind) String() string {
	if val, ok := messageKindNames[k]; ok {
		return val
	}
	return "UNKNOWN"
}
