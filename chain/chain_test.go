package chain

import (
	"math"
	"testing"

	"github.com/npillmayer/planar"
	"github.com/npillmayer/planar/bulge"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func line(x1, y1, x2, y2 float64) planar.Line {
	return planar.Line{From: planar.P(x1, y1), To: planar.P(x2, y2), Src: planar.NoIdent}
}

func opts() Options {
	return Options{Tolerance: 0.01}
}

func TestAssembleEmpty(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	if _, err := Assemble(nil, opts()); err != ErrNoSegments {
		t.Errorf("expected ErrNoSegments, got %v", err)
	}
}

func TestAssembleMalformed(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	bad := planar.Line{From: planar.P(math.NaN(), 0), To: planar.P(1, 0)}
	if _, err := Assemble([]planar.Segment{bad}, opts()); err != ErrMalformedSegment {
		t.Errorf("expected ErrMalformedSegment, got %v", err)
	}
}

func TestAssembleUnitSquare(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	// scrambled order and directions; must come back as one closed chain
	// of 4 ordered segments
	inputs := [][]planar.Segment{
		{line(0, 0, 1, 0), line(1, 0, 1, 1), line(1, 1, 0, 1), line(0, 1, 0, 0)},
		{line(1, 1, 0, 1), line(0, 0, 1, 0), line(0, 1, 0, 0), line(1, 0, 1, 1)},
		{line(1, 0, 0, 0), line(1, 1, 1, 0), line(0, 1, 1, 1), line(0, 0, 0, 1)},
	}
	for n, segs := range inputs {
		chains, err := Assemble(segs, opts())
		if err != nil {
			t.Fatalf("input %d: %v", n, err)
		}
		if len(chains) != 1 {
			t.Fatalf("input %d: expected 1 chain, got %d", n, len(chains))
		}
		c := chains[0]
		if !c.Closed {
			t.Errorf("input %d: expected a closed chain", n)
		}
		if len(c.Segments) != 4 {
			t.Errorf("input %d: expected 4 segments, got %d", n, len(c.Segments))
		}
		for i, s := range c.Segments {
			next := c.Segments[(i+1)%len(c.Segments)]
			if !s.P2().Near(next.P1(), 0.01) {
				t.Errorf("input %d: segments %d and %d not connected", n, i, i+1)
			}
		}
		if a := c.Area(); math.Abs(a-1) > 1e-9 {
			t.Errorf("input %d: expected area 1, got %g", n, a)
		}
		if p := c.Perimeter(); math.Abs(p-4) > 1e-9 {
			t.Errorf("input %d: expected perimeter 4, got %g", n, p)
		}
	}
}

func TestAssembleWithinTolerance(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	// endpoints jittered by less than the tolerance still connect
	segs := []planar.Segment{
		line(0, 0, 1, 0.004),
		line(1, 0, 1, 1),
		line(1.003, 1, 0, 1),
		line(0, 1.002, 0, 0.003),
	}
	chains, err := Assemble(segs, opts())
	if err != nil {
		t.Fatal(err)
	}
	if len(chains) != 1 || !chains[0].Closed {
		t.Fatalf("expected one closed chain, got %+v", chains)
	}
}

func TestAssembleTwoLoops(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	segs := []planar.Segment{
		line(0, 0, 1, 0), line(10, 0, 11, 0), line(1, 0, 0.5, 1),
		line(11, 0, 10.5, 1), line(0.5, 1, 0, 0), line(10.5, 1, 10, 0),
	}
	chains, err := Assemble(segs, opts())
	if err != nil {
		t.Fatal(err)
	}
	if len(chains) != 2 {
		t.Fatalf("expected 2 chains, got %d", len(chains))
	}
	for i, c := range chains {
		if !c.Closed || len(c.Segments) != 3 {
			t.Errorf("chain %d: expected a closed triangle, got closed=%v with %d segments",
				i, c.Closed, len(c.Segments))
		}
	}
}

func TestAssemblePrefersStraightContinuation(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	seed := line(0, 0, 1, 0)
	straight := line(1, 0, 2, 0)
	sharp := line(1, 0, 1, 1)
	chains, err := Assemble([]planar.Segment{seed, sharp, straight}, opts())
	if err != nil {
		t.Fatal(err)
	}
	c := chains[0]
	if len(c.Segments) < 2 {
		t.Fatalf("expected the chain to extend, got %d segments", len(c.Segments))
	}
	if !c.Segments[1].P2().Near(planar.P(2, 0), 1e-9) {
		t.Errorf("expected straight continuation to win, got %v", c.Segments[1])
	}
}

func TestAssembleLayerAffinity(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	mk := func(layer string, x1, y1, x2, y2 float64) planar.Line {
		return planar.Line{From: planar.P(x1, y1), To: planar.P(x2, y2),
			Src: planar.Ident{Entity: -1, Layer: layer}}
	}
	seed := mk("steel", 0, 0, 1, 0)
	other := mk("aux", 1, 0, 2, 0)
	same := mk("steel", 1, 0, 2, 0)
	chains, err := Assemble([]planar.Segment{seed, other, same}, opts())
	if err != nil {
		t.Fatal(err)
	}
	c := chains[0]
	if len(c.Segments) < 2 {
		t.Fatalf("expected the chain to extend")
	}
	if c.Segments[1].Source().Layer != "steel" {
		t.Errorf("expected the matching layer to win the tie, got %q",
			c.Segments[1].Source().Layer)
	}
}

func TestAssembleOpenChainDropsLeftovers(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	segs := []planar.Segment{
		line(0, 0, 1, 0), line(1, 0, 1, 1), // an open L
		line(50, 50, 51, 50), // far away, never connectable
	}
	chains, err := Assemble(segs, opts())
	if err != nil {
		t.Fatal(err)
	}
	if len(chains) != 1 {
		t.Fatalf("expected a single open chain, got %d chains", len(chains))
	}
	if chains[0].Closed {
		t.Errorf("expected the chain to be reported open")
	}
	if len(chains[0].Segments) != 2 {
		t.Errorf("expected 2 connected segments, got %d", len(chains[0].Segments))
	}
}

func TestAssembleFiltersZeroLength(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	segs := []planar.Segment{
		line(0, 0, 1, 0), line(1, 0, 1, 1),
		line(1, 0, 1, 0), // zero length, must not be scored
		line(1, 1, 0, 0),
	}
	chains, err := Assemble(segs, opts())
	if err != nil {
		t.Fatal(err)
	}
	if len(chains) != 1 || !chains[0].Closed || len(chains[0].Segments) != 3 {
		t.Fatalf("expected one closed triangle, got %+v", chains[0])
	}
}

func TestAssembleSlotWithArcs(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	tol := planar.DefaultTolerances()
	capRight, _ := bulge.Segment(planar.P(4, 0), planar.P(4, 2), 1, planar.NoIdent, tol)
	capLeft, _ := bulge.Segment(planar.P(0, 2), planar.P(0, 0), 1, planar.NoIdent, tol)
	// caps deliberately listed reversed; assembly must flip them and
	// their bulge signs
	segs := []planar.Segment{
		line(0, 0, 4, 0),
		capRight.Reversed(),
		line(4, 2, 0, 2),
		capLeft.Reversed(),
	}
	chains, err := Assemble(segs, opts())
	if err != nil {
		t.Fatal(err)
	}
	if len(chains) != 1 || !chains[0].Closed {
		t.Fatalf("expected one closed chain")
	}
	c := chains[0]
	want := 8 + math.Pi
	if a := c.Area(); math.Abs(a-want) > 1e-9 {
		t.Errorf("expected exact area %g, got %g", want, a)
	}
	if p := c.Perimeter(); math.Abs(p-(8+2*math.Pi)) > 1e-9 {
		t.Errorf("expected perimeter %g, got %g", 8+2*math.Pi, p)
	}
	if l := c.Loop(tol); l == nil || l.N() <= 4 {
		t.Errorf("expected a sampled loop with arc points")
	}
}
