package domain

// Message - одна строка игрового журнала
type Message struct {
	Turn int         `json:"turn"`
	Kind MessageKind `json:"-"`
	Text string      `json:"text"`
}

func Info(text string) Message      { return Message{Kind: MessageInfo, Text: text} }
func Combat(text string) Message    { return Message{Kind: MessageCombat, Text: text} }
func Sacrifice(text string) Message { return Message{Kind: MessageSacrifice, Text: text} }
func Refusal(text string) Message   { return Message{Kind: MessageError, Text: text} }

// Texts - только тексты
func Texts(msgs []Message) []string {
	out := make([]string, len(msgs))
	for i, m := range msgs {
		out[i] = m.Text
	}
	return out
}
