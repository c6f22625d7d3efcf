package domain

// MonsterKind - шаблон монстра
type MonsterKind uint8

const (
	Goblin MonsterKind = iota
	Orc
	Dragon
)

// MonsterProfile - игровые параметры шаблона.
// Символы отрисовки живут в таблице глифов pkg/api.
type MonsterProfile struct {
	Name   string
	HP     int
	Attack int
}

var monsterProfiles = map[MonsterKind]MonsterProfile{
	Goblin: {Name: "Goblin", HP: 20, Attack: 5},
	Orc:    {Name: "Orc", HP: 35, Attack: 8},
	Dragon: {Name: "Dragon", HP: 100, Attack: 15},
}

func (k MonsterKind) Profile() MonsterProfile {
	return monsterProfiles[k]
}

func (k MonsterKind) String() string {
	if p, ok := monsterProfiles[k]; ok {
		return p.Name
	}
	return "Unknown"
}

// Monster - враг. Жизненный цикл ALIVE -> DEAD, только в одну сторону.
type Monster struct {
	ID    EntityID    `json:"id"`
	Kind  MonsterKind `json:"kind"`
	Name  string      `json:"name"`
	Pos   Position    `json:"pos"`
	Stats Stats       `json:"stats"`

	// TurnsSinceMove - счетчик для троттлинга движения
	TurnsSinceMove int `json:"-"`
	// Alerted - монстр уже действовал против игрока (шагнул к нему или ударил).
	// До этого он считается застигнутым врасплох.
	Alerted bool `json:"-"`
	// Startled - игрок только что подошел вплотную сам, и монстр в этом
	// проходе не атакует.
	Startled bool `json:"-"`
}

// NewMonster создает монстра с поправкой на уровень:
// +8 hp и +3 атаки за каждый уровень после первого.
func NewMonster(id EntityID, kind MonsterKind, pos Position, level int) *Monster {
	prof := kind.Profile()
	bonus := level - 1
	if bonus < 0 {
		bonus = 0
	}
	return &Monster{
		ID:    id,
		Kind:  kind,
		Name:  prof.Name,
		Pos:   pos,
		Stats: NewStats(prof.HP+bonus*MonsterHPPerLevel, prof.Attack+bonus*MonsterAttackPerLevel),
	}
}

func (m *Monster) IsAlive() bool {
	return !m.Stats.Dead
}
