package life

import "lifegrid/internal/core"

// Outcome classifies where a pattern ends up after repeated generations.
type Outcome int

const (
	Unsettled Outcome = iota
	Extinct
	StillLife
	Oscillator
)

func (o Outcome) String() string {
	switch o {
	case Extinct:
		return "extinct"
	case StillLife:
		return "still"
	case Oscillator:
		return "oscillator"
	default:
		return "unsettled"
	}
}

// Settlement describes the long-run behavior found by Settle.
type Settlement struct {
	Outcome Outcome
	// Generation is the first generation that belongs to the final cycle.
	Generation int
	// Period is the cycle length; 1 for still lifes, 0 when extinct or unsettled.
	Period     int
	Population int
}

// snapshot is a past generation kept to confirm hash matches.
type snapshot struct {
	gen  int
	grid *core.Grid
}

// Settle steps a copy of start until it dies out, repeats an earlier
// generation, or maxGenerations have run. start is not modified.
func Settle(start *core.Grid, b Boundary, maxGenerations int) Settlement {
	return settle(start, b, maxGenerations, (*core.Grid).Hash)
}

// settle is Settle with the fingerprint function supplied. Equal hashes are
// confirmed cell by cell before a cycle is reported.
func settle(start *core.Grid, b Boundary, maxGenerations int, hash func(*core.Grid) uint64) Settlement {
	l := New(start.N(), b)
	l.cur.CopyFrom(start)

	if l.cur.Population() == 0 {
		return Settlement{Outcome: Extinct}
	}

	seen := map[uint64][]snapshot{hash(l.cur): {{gen: 0, grid: l.cur.Clone()}}}
	for gen := 1; gen <= maxGenerations; gen++ {
		l.Step()
		pop := l.cur.Population()
		if pop == 0 {
			return Settlement{Outcome: Extinct, Generation: gen}
		}
		h := hash(l.cur)
		for _, prev := range seen[h] {
			if !prev.grid.Equal(l.cur) {
				continue
			}
			period := gen - prev.gen
			outcome := Oscillator
			if period == 1 {
				outcome = StillLife
			}
			return Settlement{Outcome: outcome, Generation: prev.gen, Period: period, Population: pop}
		}
		seen[h] = append(seen[h], snapshot{gen: gen, grid: l.cur.Clone()})
	}
	return Settlement{Outcome: Unsettled, Generation: maxGenerations, Population: l.cur.Population()}
}
