package domain

// Player - единственный управляемый актер. Статы, инвентарь и эффекты
// переживают смену уровня, меняется только Pos.
type Player struct {
	Pos       Position      `json:"pos"`
	Stats     Stats         `json:"stats"`
	Inventory *Inventory    `json:"inventory"`
	Status    StatusEffects `json:"status"`
}

func NewPlayer(pos Position) *Player {
	return &Player{
		Pos:       pos,
		Stats:     NewStats(PlayerStartHP, PlayerStartAttack),
		Inventory: NewInventory(),
		Status:    DefaultStatusEffects(),
	}
}

// EffectiveAttack - атака плюс активный временный бафф
func (p *Player) EffectiveAttack() int {
	return p.Stats.Attack + p.Status.TempAttackBuff
}

func (p *Player) IsAlive() bool {
	return p.Stats.HP > 0
}

// TickStatus продвигает эффекты на ход: бафф тикает вниз, регенерация лечит.
// Возвращает восстановленные hp.
func (p *Player) TickStatus() int {
	if p.Status.TempAttackBuff > 0 && p.Status.TempBuffTurns > 0 {
		p.Status.TempBuffTurns--
		if p.Status.TempBuffTurns <= 0 {
			p.Status.TempAttackBuff = 0
		}
	}
	if p.Status.HPRegeneration > 0 && p.Stats.HP < p.Stats.MaxHP {
		return p.Stats.Heal(p.Status.HPRegeneration)
	}
	return 0
}
