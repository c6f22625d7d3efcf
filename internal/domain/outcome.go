package domain

// Outcome - результат одной операции игрока: новые сообщения и терминальные флаги.
type Outcome struct {
	Messages []Message
	// TurnTaken - был ли после действия проход мира.
	TurnTaken bool
	GameOver  bool
	Victory   bool
}

// Texts - только тексты сообщений.
func (o Outcome) Texts() []string {
	return Texts(o.Messages)
}
