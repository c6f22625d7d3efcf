package systems

import (
	"strings"
	"testing"

	"terminus-veil/internal/domain"
	"terminus-veil/pkg/utils"
)

func newGoblin(pos domain.Position) *domain.Monster {
	return domain.NewMonster(domain.PackEntityID(domain.EntityMonster, 1, 1), domain.Goblin, pos, 1)
}

func TestPlayerAttack_KillsGoblinInThreeHits(t *testing.T) {
	player := domain.NewPlayer(domain.Position{X: 1, Y: 1})
	goblin := newGoblin(domain.Position{X: 2, Y: 1})
	goblin.Alerted = true

	// Ints - смещения от нижней границы 8: урон 8, 9, 8
	rng := &utils.Scripted{Ints: []int{0, 1, 0}}

	wantHP := []int{12, 3, 0}
	var last AttackResult
	for i, want := range wantHP {
		last = PlayerAttack(rng, player, goblin)
		if goblin.Stats.HP != want {
			t.Fatalf("hit %d: goblin hp = %d, want %d", i+1, goblin.Stats.HP, want)
		}
	}

	if goblin.IsAlive() || !last.Killed {
		t.Fatal("goblin should be dead after the third hit")
	}
	texts := domain.Texts(last.Messages)
	if texts[len(texts)-1] != "The Goblin dies!" {
		t.Errorf("last message = %q", texts[len(texts)-1])
	}
}

func TestDamageRanges(t *testing.T) {
	rng := utils.NewSource(99)
	player := domain.NewPlayer(domain.Position{})

	for i := 0; i < 200; i++ {
		m := domain.NewMonster(0, domain.Dragon, domain.Position{X: 1}, 1)
		m.Alerted = true
		res := PlayerAttack(rng, player, m)
		if res.Damage < 8 || res.Damage > 13 {
			t.Fatalf("player damage %d outside [8,13]", res.Damage)
		}
		if m.Stats.HP != 100-res.Damage {
			t.Fatalf("hp = %d after %d damage", m.Stats.HP, res.Damage)
		}
	}

	for i := 0; i < 200; i++ {
		p := domain.NewPlayer(domain.Position{})
		orc := domain.NewMonster(0, domain.Orc, domain.Position{X: 1}, 1)
		res := MonsterAttack(rng, orc, p)
		if res.Damage < 6 || res.Damage > 10 {
			t.Fatalf("monster damage %d outside [6,10]", res.Damage)
		}
	}

	lo, _ := PlayerDamageRange(1)
	if lo != 1 {
		t.Errorf("minimum damage floor = %d, want 1", lo)
	}
}

func TestPlayerAttack_Modifiers(t *testing.T) {
	t.Run("vampiric heals before damage", func(t *testing.T) {
		player := domain.NewPlayer(domain.Position{})
		player.Status.Vampiric = true
		player.Stats.HP = 50
		goblin := newGoblin(domain.Position{X: 1})
		goblin.Alerted = true

		res := PlayerAttack(&utils.Scripted{Ints: []int{1}}, player, goblin) // 9 урона
		if res.Healed != 3 || player.Stats.HP != 53 {
			t.Errorf("healed %d, hp %d", res.Healed, player.Stats.HP)
		}
		if !strings.HasPrefix(res.Messages[0].Text, "Vampiric touch heals you for 3 HP!") {
			t.Errorf("first message = %q", res.Messages[0].Text)
		}
	})

	t.Run("surprised monster takes multiplied damage", func(t *testing.T) {
		player := domain.NewPlayer(domain.Position{})
		player.Status.SurpriseMultiplier = 2.0
		goblin := newGoblin(domain.Position{X: 1})

		res := PlayerAttack(&utils.Scripted{Ints: []int{0}}, player, goblin)
		if res.Damage != 16 || goblin.Stats.HP != 4 {
			t.Errorf("surprise damage = %d, goblin hp = %d", res.Damage, goblin.Stats.HP)
		}
	})

	t.Run("alerted monster is not surprised", func(t *testing.T) {
		player := domain.NewPlayer(domain.Position{})
		player.Status.SurpriseMultiplier = 2.0
		goblin := newGoblin(domain.Position{X: 1})
		goblin.Alerted = true

		if res := PlayerAttack(&utils.Scripted{Ints: []int{0}}, player, goblin); res.Damage != 8 {
			t.Errorf("damage = %d, want 8", res.Damage)
		}
	})
}

func TestCriticalStrike(t *testing.T) {
	player := domain.NewPlayer(domain.Position{})
	player.Status.CritChance = 0.25
	player.Status.TempAttackBuff = 4
	orc := domain.NewMonster(0, domain.Orc, domain.Position{X: 1}, 1)

	if res := CriticalStrike(&utils.Scripted{Floats: []float64{0.5}}, player, orc); res.Damage != 0 {
		t.Errorf("roll 0.5 should miss a 25%% crit, got %d", res.Damage)
	}

	res := CriticalStrike(&utils.Scripted{Floats: []float64{0.1}}, player, orc)
	if res.Damage != 7 || orc.Stats.HP != 28 {
		t.Errorf("crit damage %d, orc hp %d", res.Damage, orc.Stats.HP)
	}
	if res.Messages[0].Text != "CRITICAL HIT! +7 damage!" {
		t.Errorf("message = %q", res.Messages[0].Text)
	}
}

func TestMonsterAttack_KillsPlayer(t *testing.T) {
	player := domain.NewPlayer(domain.Position{})
	player.Stats.HP = 3
	dragon := domain.NewMonster(0, domain.Dragon, domain.Position{X: 1}, 1)

	res := MonsterAttack(&utils.Scripted{}, dragon, player)
	if !res.Killed || player.IsAlive() || player.Stats.HP != 0 {
		t.Fatalf("player should be dead: %+v", player.Stats)
	}
	if got := res.Messages[len(res.Messages)-1].Text; got != "You have died! Game Over!" {
		t.Errorf("last message = %q", got)
	}
	if !dragon.Alerted {
		t.Error("attacking should alert the monster")
	}
}
