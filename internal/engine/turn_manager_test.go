package engine

import (
	"strings"
	"testing"

	"terminus-veil/pkg/utils"
)

func TestTurnScheduler_Run(t *testing.T) {
	g := newTestGame(t, &utils.Scripted{}, at(2, 1), corridor...)
	addGoblin(g, at(1, 1))
	addGoblin(g, at(3, 2))
	dead := addGoblin(g, at(3, 1))
	dead.Stats.HP = 0
	dead.Stats.Dead = true
	addGoblin(g, at(7, 2))

	msgs := g.Scheduler.Run(g)

	if g.Scheduler.Turn() != 1 {
		t.Fatalf("turn = %d, want 1", g.Scheduler.Turn())
	}

	attacks := 0
	for _, m := range msgs {
		if m.Turn != 1 {
			t.Errorf("message %q stamped with turn %d", m.Text, m.Turn)
		}
		if strings.Contains(m.Text, "attacks you for 3 damage") {
			attacks++
		}
	}
	// Два живых соседа бьют по одному разу (минимальный урон гоблина - 3)
	if attacks != 2 || g.Player.Stats.HP != 94 {
		t.Errorf("attacks = %d, hp = %d; want 2 attacks and 94 hp", attacks, g.Player.Stats.HP)
	}

	if g.Monsters.Count() != 3 {
		t.Errorf("dead goblin not purged: %d monsters", g.Monsters.Count())
	}
	if g.Log.Len() != len(msgs) {
		t.Errorf("log has %d entries, pass produced %d", g.Log.Len(), len(msgs))
	}
}

func TestTurnScheduler_KillSetsGameOver(t *testing.T) {
	g := newTestGame(t, &utils.Scripted{}, at(2, 1), corridor...)
	addGoblin(g, at(1, 1))
	addGoblin(g, at(3, 1))
	g.Player.Stats.HP = 2

	msgs := g.Scheduler.Run(g)

	if !g.State.GameOver || g.Player.IsAlive() {
		t.Fatal("player should be dead")
	}
	// Второй гоблин уже не бьет
	n := 0
	for _, m := range msgs {
		if strings.Contains(m.Text, "attacks you") {
			n++
		}
	}
	if n != 1 {
		t.Errorf("attacks after death: %d", n)
	}
}
