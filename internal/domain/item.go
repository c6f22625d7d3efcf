package domain

import "sort"

// ItemKind - вид предмета
type ItemKind uint8

const (
	HealthPotion ItemKind = iota
	Gold
	MagicScroll
	Weapon
)

var itemNames = map[ItemKind]string{
	HealthPotion: "Health Potion",
	Gold:         "Gold",
	MagicScroll:  "Magic Scroll",
	Weapon:       "Sword",
}

var itemTokens = map[string]ItemKind{
	"HEALTH_POTION": HealthPotion,
	"GOLD":          Gold,
	"MAGIC_SCROLL":  MagicScroll,
	"WEAPON":        Weapon,
}

func (k ItemKind) String() string {
	if n, ok := itemNames[k]; ok {
		return n
	}
	return "Unknown"
}

// Token - имя вида в протоколе (HEALTH_POTION, GOLD, ...)
func (k ItemKind) Token() string {
	for tok, kind := range itemTokens {
		if kind == k {
			return tok
		}
	}
	return "UNKNOWN"
}

// ParseItemKind переводит токен протокола в вид предмета
func ParseItemKind(s string) (ItemKind, bool) {
	k, ok := itemTokens[s]
	return k, ok
}

// Item лежит на полу, пока его не подобрали. Collected обратно не сбрасывается.
type Item struct {
	ID        EntityID `json:"id"`
	Kind      ItemKind `json:"kind"`
	Pos       Position `json:"pos"`
	Value     int      `json:"value"`
	Collected bool     `json:"collected"`
}

// Inventory складывает предметы стопками по виду, золото - в отдельный кошелек
type Inventory struct {
	Items map[ItemKind]int `json:"items"`
	Gold  int              `json:"gold"`
}

func NewInventory() *Inventory {
	return &Inventory{Items: make(map[ItemKind]int)}
}

// Add кладет подобранный предмет
func (inv *Inventory) Add(it *Item) {
	if it.Kind == Gold {
		inv.Gold += it.Value
		return
	}
	inv.Items[it.Kind] += it.Value
}

func (inv *Inventory) Count(k ItemKind) int {
	return inv.Items[k]
}

// Take забирает одну единицу вида. false, если их нет.
func (inv *Inventory) Take(k ItemKind) bool {
	if inv.Items[k] <= 0 {
		return false
	}
	inv.Items[k]--
	if inv.Items[k] <= 0 {
		delete(inv.Items, k)
	}
	return true
}

// Kinds - имеющиеся виды в стабильном порядке, чтобы случайный выбор
// повторялся при том же зерне.
func (inv *Inventory) Kinds() []ItemKind {
	kinds := make([]ItemKind, 0, len(inv.Items))
	for k, n := range inv.Items {
		if n > 0 {
			kinds = append(kinds, k)
		}
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })
	return kinds
}
