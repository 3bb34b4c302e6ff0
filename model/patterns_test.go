package model

import (
	"fmt"
	"sort"
	"strings"
	"testing"
)

func TestBlinkerPreset(t *testing.T) {
	b := Blinker()
	if b.Width() != 5 || b.Height() != 5 {
		t.Fatalf("blinker is %dx%d, want 5x5", b.Width(), b.Height())
	}
	want := "-----\n--x--\n--x--\n--x--\n-----\n"
	if b.String() != want {
		t.Errorf("blinker = %q, want %q", b.String(), want)
	}
}

func TestBlinkerOscillates(t *testing.T) {
	vertical := Blinker()
	horizontal := mustParseText(t, `
	-----
	-----
	-xxx-
	-----
	-----
	`)

	one := vertical.Next()
	if !one.Equal(horizontal) {
		t.Fatalf("after one step got\n%vwant\n%v", one, horizontal)
	}
	if two := one.Next(); !two.Equal(vertical) {
		t.Fatalf("after two steps got\n%vwant the original\n%v", two, vertical)
	}
}

func TestGosperPreset(t *testing.T) {
	g := Gosper()
	if g.Width() != 39 || g.Height() != 11 {
		t.Fatalf("gosper is %dx%d, want 39x11", g.Width(), g.Height())
	}
	if g.Population() != 36 {
		t.Errorf("gosper has %d live cells, want 36", g.Population())
	}
}

// TestGosperEmitsGlider runs the gun inside a large dead board and
// checks that, after tens of generations, at least one detached
// 5-cell group below the gun matches a glider phase. This is a
// regression check on the update algorithm, not an exact oracle.
func TestGosperEmitsGlider(t *testing.T) {
	world := mustNew(t, 80, 50, nil)
	world, err := world.Add(Gosper(), 2, 2)
	if err != nil {
		t.Fatalf("Add: %v", err)
	}

	for n := 0; n < 80; n++ {
		world = world.Next()
	}

	phases := gliderPhases(t)
	for _, comp := range liveComponents(world) {
		if len(comp) != 5 || minY(comp) < 16 {
			continue // not glider-sized, or still part of the gun
		}
		if phases[normalizeCells(comp)] {
			return
		}
	}
	t.Fatal("no glider found below the gun after 80 generations")
}

// gliderPhases steps a seed glider through its four phases and returns
// their normalized shapes, each together with its transpose so both
// chiralities match.
func gliderPhases(t *testing.T) map[string]bool {
	t.Helper()

	world := mustNew(t, 12, 12, nil)
	world, err := world.Add(mustParseText(t, "-x-\n--x\nxxx"), 4, 4)
	if err != nil {
		t.Fatalf("Add: %v", err)
	}

	phases := make(map[string]bool)
	for n := 0; n < 4; n++ {
		cells := liveCells(world)
		phases[normalizeCells(cells)] = true
		phases[normalizeCells(transpose(cells))] = true
		world = world.Next()
	}

	// After four steps the glider must repeat, translated by (1,1).
	if !phases[normalizeCells(liveCells(world))] {
		t.Fatal("seed pattern did not behave like a glider")
	}

	return phases
}

type gridCell struct {
	x, y int
}

func liveCells(b Board) (cells []gridCell) {
	for y := 0; y < b.Height(); y++ {
		for x := 0; x < b.Width(); x++ {
			if b.Alive(x, y) {
				cells = append(cells, gridCell{x, y})
			}
		}
	}
	return
}

// liveComponents groups live cells into 8-connected components.
func liveComponents(b Board) (comps [][]gridCell) {
	seen := make(map[gridCell]bool)

	for y := 0; y < b.Height(); y++ {
		for x := 0; x < b.Width(); x++ {
			start := gridCell{x, y}
			if !b.Alive(x, y) || seen[start] {
				continue
			}

			var comp []gridCell
			queue := []gridCell{start}
			seen[start] = true
			for len(queue) > 0 {
				c := queue[0]
				queue = queue[1:]
				comp = append(comp, c)

				for _, dir := range AllDirections() {
					off := dir.Offset()
					n := gridCell{c.x + off.X, c.y + off.Y}
					if n.x < 0 || n.x >= b.Width() || n.y < 0 || n.y >= b.Height() {
						continue
					}
					if seen[n] || !b.Alive(n.x, n.y) {
						continue
					}
					seen[n] = true
					queue = append(queue, n)
				}
			}
			comps = append(comps, comp)
		}
	}
	return
}

// normalizeCells produces a translation-invariant signature for a set
// of cells.
func normalizeCells(cells []gridCell) string {
	minX, minYv := cells[0].x, cells[0].y
	for _, c := range cells {
		minX = min(minX, c.x)
		minYv = min(minYv, c.y)
	}

	shifted := make([]string, len(cells))
	for i, c := range cells {
		shifted[i] = fmt.Sprintf("%d,%d", c.x-minX, c.y-minYv)
	}
	sort.Strings(shifted)
	return strings.Join(shifted, ";")
}

func transpose(cells []gridCell) []gridCell {
	out := make([]gridCell, len(cells))
	for i, c := range cells {
		out[i] = gridCell{c.y, c.x}
	}
	return out
}

func minY(cells []gridCell) int {
	m := cells[0].y
	for _, c := range cells {
		m = min(m, c.y)
	}
	return m
}
