package domain

// Stats - боевые параметры игрока и монстров.
// HP всегда в [0, MaxHP], Dead становится true один раз и навсегда.
type Stats struct {
	HP     int  `json:"hp"`
	MaxHP  int  `json:"maxHp"`
	Attack int  `json:"attack"`
	Dead   bool `json:"isDead"`
}

func NewStats(hp, attack int) Stats {
	return Stats{HP: hp, MaxHP: hp, Attack: attack}
}

// TakeDamage наносит урон. true, если этот удар убил владельца.
func (s *Stats) TakeDamage(amount int) bool {
	if s.Dead {
		return false
	}
	if amount < 0 {
		amount = 0
	}

	s.HP -= amount
	if s.HP <= 0 {
		s.HP = 0
		s.Dead = true
		return true
	}
	return false
}

// Heal лечит до MaxHP и возвращает реально восстановленное.
// Мертвых не лечит.
func (s *Stats) Heal(amount int) int {
	if s.Dead || amount <= 0 {
		return 0
	}
	before := s.HP
	s.HP += amount
	if s.HP > s.MaxHP {
		s.HP = s.MaxHP
	}
	return s.HP - before
}

// SetMaxHP меняет потолок и обрезает текущее hp под него
func (s *Stats) SetMaxHP(maxHP int) {
	s.MaxHP = maxHP
	if s.HP > s.MaxHP {
		s.HP = s.MaxHP
	}
}

func (s *Stats) IsAlive() bool {
	return !s.Dead
}
