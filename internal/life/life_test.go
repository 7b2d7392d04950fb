package life

import (
	"slices"
	"testing"

	"lifegrid/internal/core"
)

func gridWith(n int, cells ...[2]int) *core.Grid {
	g := core.NewGrid(n)
	for _, c := range cells {
		g.Set(c[0], c[1], true)
	}
	return g
}

func expectCells(t *testing.T, g *core.Grid, want map[[2]int]bool, stage string) {
	t.Helper()
	n := g.N()
	for row := 0; row < n; row++ {
		for col := 0; col < n; col++ {
			alive := g.At(row, col)
			if want[[2]int{row, col}] != alive {
				t.Fatalf("%s: cell (%d,%d) alive=%v, expected %v", stage, row, col, alive, !alive)
			}
		}
	}
}

func TestBlinkerOscillation(t *testing.T) {
	l := New(7, Clamp)
	l.Grid().Set(3, 2, true)
	l.Grid().Set(3, 3, true)
	l.Grid().Set(3, 4, true)

	l.Step()
	expectCells(t, l.Grid(), map[[2]int]bool{
		{2, 3}: true,
		{3, 3}: true,
		{4, 3}: true,
	}, "after first step")

	l.Step()
	expectCells(t, l.Grid(), map[[2]int]bool{
		{3, 2}: true,
		{3, 3}: true,
		{3, 4}: true,
	}, "after second step")

	if l.Generation() != 2 {
		t.Fatalf("generation = %d, expected 2", l.Generation())
	}
}

func TestBlockIsFixedPoint(t *testing.T) {
	block := gridWith(8, [2]int{3, 3}, [2]int{3, 4}, [2]int{4, 3}, [2]int{4, 4})
	next := Next(block)
	if !next.Equal(block) {
		t.Fatal("block pattern changed after one generation")
	}
	if !Next(next).Equal(block) {
		t.Fatal("block pattern changed after two generations")
	}
}

func TestEmptyGridStaysEmpty(t *testing.T) {
	next := Next(core.NewGrid(25))
	if pop := next.Population(); pop != 0 {
		t.Fatalf("empty grid produced %d living cells", pop)
	}
}

func TestLonelyCellDies(t *testing.T) {
	g := gridWith(9, [2]int{4, 4})
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			if n := Neighbors(g, 4+dr, 4+dc, Clamp); n != 1 {
				t.Fatalf("neighbor (%d,%d) counted %d living neighbors, expected 1", 4+dr, 4+dc, n)
			}
		}
	}
	if pop := Next(g).Population(); pop != 0 {
		t.Fatalf("single interior cell left %d living cells", pop)
	}
}

func TestNextIsPure(t *testing.T) {
	g := core.NewGrid(25)
	core.NewRNG(7).FillDensity(g.Cells(), 0.4)
	before := slices.Clone(g.Cells())

	a := Next(g)
	b := Next(g)
	if !a.Equal(b) {
		t.Fatal("advancing the same grid twice produced different generations")
	}
	if !slices.Equal(before, g.Cells()) {
		t.Fatal("Next mutated its input")
	}
	if !Next(a).Equal(Next(b)) {
		t.Fatal("second generation differs between identical runs")
	}
}

func TestRuleMatchesClampedCounts(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		g := core.NewGrid(12)
		core.NewRNG(seed).FillDensity(g.Cells(), 0.45)
		next := Next(g)
		for row := 0; row < g.N(); row++ {
			for col := 0; col < g.N(); col++ {
				n := Neighbors(g, row, col, Clamp)
				got := next.At(row, col)
				switch {
				case n <= 1 || n >= 4:
					if got {
						t.Fatalf("seed %d: cell (%d,%d) with %d neighbors survived", seed, row, col, n)
					}
				case n == 3:
					if !got {
						t.Fatalf("seed %d: cell (%d,%d) with 3 neighbors is dead", seed, row, col)
					}
				case n == 2:
					if got != g.At(row, col) {
						t.Fatalf("seed %d: cell (%d,%d) with 2 neighbors changed state", seed, row, col)
					}
				}
			}
		}
	}
}

func TestClampedCornerCountsItself(t *testing.T) {
	g := gridWith(5, [2]int{0, 0})
	if n := Neighbors(g, 0, 0, Clamp); n != 3 {
		t.Fatalf("clamped corner counted %d neighbors, expected 3", n)
	}
	if n := Neighbors(g, 0, 1, Clamp); n != 2 {
		t.Fatalf("clamped edge neighbor counted %d, expected 2", n)
	}
	if !Next(g).Equal(g) {
		t.Fatal("lone corner cell should persist under clamped lookups")
	}

	dead := core.NewGrid(5)
	AdvanceWith(dead, g, Dead)
	if dead.Population() != 0 {
		t.Fatal("lone corner cell should die when outside cells are dead")
	}
	wrapped := core.NewGrid(5)
	AdvanceWith(wrapped, g, Wrap)
	if wrapped.Population() != 0 {
		t.Fatal("lone corner cell should die on a torus")
	}
}

func TestLoneEdgeCellDies(t *testing.T) {
	g := gridWith(5, [2]int{0, 2})
	if n := Neighbors(g, 0, 2, Clamp); n != 1 {
		t.Fatalf("clamped edge cell counted %d neighbors, expected 1", n)
	}
	if Next(g).Population() != 0 {
		t.Fatal("lone edge cell should die")
	}
}

func TestAdvanceInPlace(t *testing.T) {
	g := core.NewGrid(10)
	core.NewRNG(99).FillDensity(g.Cells(), 0.5)
	want := Next(g)
	AdvanceWith(g, g, Clamp)
	if !g.Equal(want) {
		t.Fatal("in-place advance observed partially updated cells")
	}
}

func TestAdvanceIgnoresMismatchedGrids(t *testing.T) {
	src := gridWith(4, [2]int{1, 1})
	dst := core.NewGrid(5)
	dst.Set(2, 2, true)
	Advance(dst, src)
	if !dst.At(2, 2) || dst.Population() != 1 {
		t.Fatal("mismatched destination grid was modified")
	}
}

func TestClearKeepsDimensions(t *testing.T) {
	l := New(6, Clamp)
	l.Fill(3, 0.5)
	l.Step()
	grid := l.Grid()
	l.Clear()
	if l.Grid() != grid {
		t.Fatal("Clear reallocated the grid")
	}
	if l.Grid().Population() != 0 || l.Generation() != 0 {
		t.Fatal("Clear left living cells or a stale generation")
	}
	if s := l.Size(); s.W != 6 || s.H != 6 {
		t.Fatalf("size changed to %dx%d", s.W, s.H)
	}
}

func TestParseBoundary(t *testing.T) {
	for _, b := range []Boundary{Clamp, Wrap, Dead} {
		got, ok := ParseBoundary(b.String())
		if !ok || got != b {
			t.Fatalf("ParseBoundary(%q) = %v, %v", b.String(), got, ok)
		}
	}
	if got, ok := ParseBoundary(" WRAP "); !ok || got != Wrap {
		t.Fatalf("ParseBoundary is not case/space tolerant: %v, %v", got, ok)
	}
	if _, ok := ParseBoundary("mirror"); ok {
		t.Fatal("unknown boundary accepted")
	}
}
