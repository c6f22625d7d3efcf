package domain

// SacrificeKind - одна из десяти жертв алтаря
type SacrificeKind uint8

const (
	SacrificeBlood SacrificeKind = iota
	SacrificeSight
	SacrificeMemory
	SacrificeWealth
	SacrificeAgility
	SacrificeSoul
	SacrificeSanity
	SacrificeHope
	SacrificeFuture
	SacrificeFamily
)

// SacrificeInfo - описание жертвы для игрока
type SacrificeInfo struct {
	Name    string `json:"name"`
	Cost    string `json:"cost"`
	Benefit string `json:"benefit"`
}

var sacrificeCatalog = [...]SacrificeInfo{
	SacrificeBlood:   {"Blood", "Permanently lose 15% Max HP", "Gain +5 permanent Attack power"},
	SacrificeSight:   {"Sight", "Shrink FOV radius by 2", "Gain 25% Critical Hit chance"},
	SacrificeMemory:  {"Memory", "Lose all explored map memory", "Double item spawn rates"},
	SacrificeWealth:  {"Wealth", "Lose 50% of your Gold", "Gain temporary +10 Attack for 15 turns"},
	SacrificeAgility: {"Agility", "Permanently lose 1 movement speed", "Gain +10 Max HP and healing"},
	SacrificeSoul:    {"Soul", "Lose a random inventory item", "Permanently gain +3 Attack and +10 Max HP"},
	SacrificeSanity:  {"Sanity", "Monsters become faster", "You deal double damage to surprised enemies"},
	SacrificeHope:    {"Hope", "Exit requires 1 more sacrifice to unlock", "Gain permanent +2 HP regeneration per turn"},
	SacrificeFuture:  {"Future", "Lose 25% of your score", "Reveal entire map for current level"},
	SacrificeFamily:  {"Family", "Cannot use health potions anymore", "Gain permanent vampire touch (heal when attacking)"},
}

// AllSacrifices - весь каталог в порядке объявления
func AllSacrifices() []SacrificeKind {
	out := make([]SacrificeKind, len(sacrificeCatalog))
	for i := range sacrificeCatalog {
		out[i] = SacrificeKind(i)
	}
	return out
}

func (k SacrificeKind) Info() SacrificeInfo {
	if int(k) < len(sacrificeCatalog) {
		return sacrificeCatalog[k]
	}
	return SacrificeInfo{Name: "Unknown"}
}

func (k SacrificeKind) String() string {
	return k.Info().Name
}

// Altar предлагает две разные жертвы и используется ровно один раз.
type Altar struct {
	ID      EntityID                        `json:"id"`
	Pos     Position                        `json:"pos"`
	Level   int                             `json:"level"`
	Used    bool                            `json:"used"`
	Options [AltarOptionCount]SacrificeKind `json:"options"`
}

// Offer - доступные варианты; у использованного алтаря их нет
func (a *Altar) Offer() []SacrificeKind {
	if a.Used {
		return nil
	}
	return a.Options[:]
}

// Consume помечает алтарь использованным. Навсегда.
func (a *Altar) Consume() {
	a.Used = true
}
