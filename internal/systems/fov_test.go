package systems

import (
	"testing"

	"terminus-veil/internal/domain"
)

func TestRayCaster(t *testing.T) {
	g := domain.ParseGrid(
		"#######",
		"#.....#",
		"#..#..#",
		"#.....#",
		"#######",
	)
	origin := domain.Position{X: 3, Y: 3}
	vis := RayCaster{}.Compute(g, origin, 5)

	if !vis.Has(origin) {
		t.Error("origin must be visible")
	}
	if !vis.Has(domain.Position{X: 3, Y: 2}) {
		t.Error("the first wall on a ray is visible")
	}
	if vis.Has(domain.Position{X: 3, Y: 1}) {
		t.Error("ray must stop at the first wall")
	}
	if !vis.Has(domain.Position{X: 6, Y: 3}) || vis.Has(domain.Position{X: 7, Y: 3}) {
		t.Error("ray must include the border wall and stop at the map edge")
	}
	// (4,1) не лежит ни на одном из 8 лучей
	if vis.Has(domain.Position{X: 4, Y: 1}) {
		t.Error("off-ray tile should not be visible")
	}
}

func TestCircularSight(t *testing.T) {
	g := domain.ParseGrid(
		"#########",
		"#.......#",
		"#...#...#",
		"#.......#",
		"#########",
	)
	origin := domain.Position{X: 2, Y: 2}
	vis := CircularSight{}.Compute(g, origin, 3)

	tests := []struct {
		p    domain.Position
		want bool
	}{
		{origin, true},
		{domain.Position{X: 4, Y: 2}, true},  // сама стена видна
		{domain.Position{X: 5, Y: 2}, false}, // за стеной
		{domain.Position{X: 4, Y: 1}, true},
		{domain.Position{X: 2, Y: 0}, true},  // граница на расстоянии 2
		{domain.Position{X: 5, Y: 3}, false}, // 9+1 > 3*3
	}

	for _, tt := range tests {
		if got := vis.Has(tt.p); got != tt.want {
			t.Errorf("visible(%v) = %v, want %v", tt.p, got, tt.want)
		}
	}
}

func TestShadowcaster_OpenRoom(t *testing.T) {
	g := openGrid(11, 11)
	origin := domain.Position{X: 5, Y: 5}
	vis := Shadowcaster{}.Compute(g, origin, 3)

	if !vis.Has(origin) || !vis.Has(domain.Position{X: 8, Y: 5}) {
		t.Error("tiles within radius should be visible in an open room")
	}
	if vis.Has(domain.Position{X: 9, Y: 5}) {
		t.Error("tile beyond radius should not be visible")
	}
}

func TestVisibilityTracker_ExploredIsMonotonic(t *testing.T) {
	g := openGrid(30, 5)
	tr := NewVisibilityTracker(nil)

	prevExplored := 0
	for x := 1; x < 29; x += 3 {
		tr.Update(g, domain.Position{X: x, Y: 2}, 4)

		for _, p := range tr.Visible() {
			if !tr.IsExplored(p) {
				t.Fatalf("visible %v not explored", p)
			}
		}
		if tr.ExploredCount() < prevExplored {
			t.Fatalf("explored shrank: %d -> %d", prevExplored, tr.ExploredCount())
		}
		prevExplored = tr.ExploredCount()
	}

	if !tr.IsExplored(domain.Position{X: 1, Y: 2}) {
		t.Error("tiles seen earlier must stay explored")
	}

	tr.ClearExplored()
	if tr.ExploredCount() != 0 || tr.VisibleCount() != 0 {
		t.Error("ClearExplored should forget everything")
	}

	tr.ExploreAll(g)
	if tr.ExploredCount() != 30*5 {
		t.Errorf("ExploreAll = %d tiles", tr.ExploredCount())
	}
}
