package domain

import "encoding/json"

// InternalCommand - команда для движка после разбора JSON.
// Payload парсится конкретным хендлером.
type InternalCommand struct {
	Action  ActionType
	Payload json.RawMessage
}
