package domain

import "testing"

func TestGameState_Counts(t *testing.T) {
	tests := []struct {
		level, bonus            int
		monsters, items, altars int
	}{
		{1, 0, 6, 6, 2},
		{3, 0, 12, 8, 3},
		{5, 0, 15, 10, 4},
		{9, 10, 15, 20, 4},
	}

	for _, tt := range tests {
		s := &GameState{Level: tt.level, ItemSpawnBonus: tt.bonus}
		if got := s.MonsterCount(); got != tt.monsters {
			t.Errorf("L%d MonsterCount = %d, want %d", tt.level, got, tt.monsters)
		}
		if got := s.ItemCount(); got != tt.items {
			t.Errorf("L%d ItemCount = %d, want %d", tt.level, got, tt.items)
		}
		if got := s.AltarCount(); got != tt.altars {
			t.Errorf("L%d AltarCount = %d, want %d", tt.level, got, tt.altars)
		}
	}
}

func TestGameState_Advance(t *testing.T) {
	s := NewGameState()
	s.Victory = true
	s.Advance()
	if s.Level != 2 || s.Score != 200 || s.Victory {
		t.Errorf("after advance: %+v", s)
	}
}

func TestStats_DamageAndHeal(t *testing.T) {
	st := NewStats(20, 5)
	if st.TakeDamage(5) {
		t.Fatal("15 hp left, should not die")
	}
	if got := st.Heal(100); got != 5 || st.HP != 20 {
		t.Errorf("Heal restored %d, hp %d", got, st.HP)
	}
	if !st.TakeDamage(50) || st.HP != 0 || !st.Dead {
		t.Errorf("lethal hit: %+v", st)
	}
	if st.TakeDamage(1) {
		t.Error("a corpse cannot die twice")
	}
}

func TestInventory(t *testing.T) {
	inv := NewInventory()
	inv.Add(&Item{Kind: Gold, Value: 12})
	inv.Add(&Item{Kind: MagicScroll, Value: 1})
	inv.Add(&Item{Kind: HealthPotion, Value: 1})
	inv.Add(&Item{Kind: HealthPotion, Value: 1})

	if inv.Gold != 12 || inv.Count(HealthPotion) != 2 {
		t.Fatalf("inventory = %+v", inv)
	}
	kinds := inv.Kinds()
	if len(kinds) != 2 || kinds[0] != HealthPotion || kinds[1] != MagicScroll {
		t.Errorf("Kinds() = %v", kinds)
	}
	if !inv.Take(MagicScroll) || inv.Take(MagicScroll) {
		t.Error("scroll should be taken exactly once")
	}
	if _, held := inv.Items[MagicScroll]; held {
		t.Error("empty stacks should be removed")
	}
}

func TestStatus_SightRadius(t *testing.T) {
	st := DefaultStatusEffects()
	st.SightReduction = 4
	if got := st.SightRadius(BaseSightRadius); got != 4 {
		t.Errorf("SightRadius = %d, want 4", got)
	}
	st.SightReduction = 10
	if got := st.SightRadius(BaseSightRadius); got != MinSightRadius {
		t.Errorf("SightRadius = %d, want floor %d", got, MinSightRadius)
	}
}

func TestPlayer_TickStatus(t *testing.T) {
	p := NewPlayer(Position{})
	p.Status.TempAttackBuff = 10
	p.Status.TempBuffTurns = 1
	p.Status.HPRegeneration = 2
	p.Stats.HP = 95

	if got := p.TickStatus(); got != 2 {
		t.Errorf("regen = %d, want 2", got)
	}
	if p.Status.TempAttackBuff != 0 || p.EffectiveAttack() != PlayerStartAttack {
		t.Errorf("buff should expire: %+v", p.Status)
	}
}
