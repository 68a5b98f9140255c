package polygon

import (
	"sort"
)

// HolePolicy selects which loops of a containment forest count as holes.
type HolePolicy int

const (
	// NormalHoles alternates: every odd-depth loop is a hole, every
	// even-depth loop is solid again.
	NormalHoles HolePolicy = iota
	// OutermostOnly treats only depth-1 loops as holes; loops nested any
	// deeper are ignored entirely.
	OutermostOnly
	// IgnoreHoles fills outermost boundaries only, ignoring all loops
	// nested inside them.
	IgnoreHoles
)

// Nesting is the containment forest over a set of loops. Loops is sorted
// descending by absolute area; Parent and Depth are parallel to it. Every
// loop has exactly one parent or none. A parent always strictly contains
// its child (larger absolute area), so cycles cannot occur.
type Nesting struct {
	Loops  []*Loop
	Parent []int // index of the immediate enclosing loop, -1 for roots
	Depth  []int // parent-chain length, 0 = outermost
}

// Resolve computes the containment forest of a set of loops. Nil loops
// (degenerate boundaries) are skipped. For every loop, all strictly larger
// loops containing its centroid are considered and the smallest of them
// becomes the immediate parent — the tightest enclosing loop.
//
// The scan is O(n²), which is fine for the loop counts of a typical hatch
// boundary (tens, not thousands).
func Resolve(loops []*Loop) *Nesting {
	ls := make([]*Loop, 0, len(loops))
	for _, l := range loops {
		if l != nil && l.N() >= 3 {
			ls = append(ls, l)
		}
	}
	sort.SliceStable(ls, func(i, j int) bool {
		return ls[i].Area() > ls[j].Area()
	})
	n := &Nesting{
		Loops:  ls,
		Parent: make([]int, len(ls)),
		Depth:  make([]int, len(ls)),
	}
	for i, l := range ls {
		n.Parent[i] = -1
		c := l.Centroid()
		// descending area order: walking j upwards from i-1 visits
		// candidates from tightest to widest
		for j := i - 1; j >= 0; j-- {
			if ls[j].Area() <= l.Area() {
				continue
			}
			if ls[j].Contains(c) {
				n.Parent[i] = j
				n.Depth[i] = n.Depth[j] + 1
				break
			}
		}
	}
	return n
}

// Polygons groups the forest's loops into polygons-with-holes according
// to the hole policy. Outer loops become polygon boundaries; hole loops
// are attached to the polygon of their immediate parent.
func (n *Nesting) Polygons(policy HolePolicy) []*Polygon {
	byOuter := make(map[int]*Polygon)
	var order []int
	outer := func(i int) *Polygon {
		pg, ok := byOuter[i]
		if !ok {
			pg = &Polygon{Outer: n.Loops[i]}
			byOuter[i] = pg
			order = append(order, i)
		}
		return pg
	}
	for i := range n.Loops {
		d := n.Depth[i]
		switch policy {
		case NormalHoles:
			if d%2 == 0 {
				outer(i)
			} else {
				pg := outer(n.Parent[i])
				pg.Holes = append(pg.Holes, n.Loops[i])
			}
		case OutermostOnly:
			switch d {
			case 0:
				outer(i)
			case 1:
				pg := outer(n.Parent[i])
				pg.Holes = append(pg.Holes, n.Loops[i])
			default:
				L().Debugf("loop at depth %d ignored by outermost-only policy", d)
			}
		case IgnoreHoles:
			if d == 0 {
				outer(i)
			}
		}
	}
	sort.Ints(order)
	pgs := make([]*Polygon, 0, len(order))
	for _, i := range order {
		pgs = append(pgs, byOuter[i])
	}
	return pgs
}
