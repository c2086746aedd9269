package rng

import "testing"

func TestDeterminism(t *testing.T) {
	a := New(42)
	b := New(42)
	for i := 0; i < 100; i++ {
		if got, want := a.Roll(20), b.Roll(20); got != want {
			t.Fatalf("draw %d: %d != %d", i, got, want)
		}
	}
}

func TestSeedsDiverge(t *testing.T) {
	a := New(1)
	b := New(2)
	same := true
	for i := 0; i < 20; i++ {
		if a.Roll(100) != b.Roll(100) {
			same = false
		}
	}
	if same {
		t.Fatal("different seeds produced identical sequences")
	}
}

func TestRollBounds(t *testing.T) {
	r := New(7)
	for i := 0; i < 1000; i++ {
		v := r.Roll(6)
		if v < 1 || v > 6 {
			t.Fatalf("Roll(6) = %d, want 1..6", v)
		}
	}
}

func TestRangeBounds(t *testing.T) {
	r := New(7)
	for i := 0; i < 1000; i++ {
		v := r.Range(5, 15)
		if v < 5 || v > 15 {
			t.Fatalf("Range(5, 15) = %d, want 5..15", v)
		}
	}
}

func TestRangeDegenerate(t *testing.T) {
	r := New(7)
	if got := r.Range(10, 10); got != 10 {
		t.Errorf("Range(10, 10) = %d, want 10", got)
	}
	if got := r.Range(10, 3); got != 10 {
		t.Errorf("Range(10, 3) = %d, want min", got)
	}
	// Degenerate ranges consume no draws.
	if got := r.Position(); got != 0 {
		t.Errorf("position = %d, want 0", got)
	}
}

func TestChanceExtremes(t *testing.T) {
	r := New(7)
	for i := 0; i < 100; i++ {
		if r.Chance(1.0) != true {
			t.Fatal("Chance(1.0) returned false")
		}
		if r.Chance(0.0) != false {
			t.Fatal("Chance(0.0) returned true")
		}
	}
}

func TestWeightedSelect(t *testing.T) {
	r := New(7)
	weights := []int{10, 20, 70}
	counts := make([]int, len(weights))
	for i := 0; i < 1000; i++ {
		idx := r.WeightedSelect(weights)
		if idx < 0 || idx >= len(weights) {
			t.Fatalf("index %d out of range", idx)
		}
		counts[idx]++
	}
	// With these weights every bucket should be hit over 1000 draws.
	for i, c := range counts {
		if c == 0 {
			t.Errorf("bucket %d never selected", i)
		}
	}
	if counts[2] <= counts[0] {
		t.Errorf("heaviest bucket selected %d times, lightest %d", counts[2], counts[0])
	}
}

func TestWeightedSelectSingle(t *testing.T) {
	r := New(7)
	if got := r.WeightedSelect([]int{5}); got != 0 {
		t.Errorf("WeightedSelect single = %d, want 0", got)
	}
}

func TestPositionTracking(t *testing.T) {
	r := New(42)
	if r.Position() != 0 {
		t.Fatalf("fresh position = %d", r.Position())
	}
	r.Roll(6)
	r.Intn(10)
	r.Chance(0.5)
	r.Range(1, 5)
	if got := r.Position(); got != 4 {
		t.Errorf("position = %d, want 4", got)
	}
	if r.Seed() != 42 {
		t.Errorf("seed = %d, want 42", r.Seed())
	}
}

func TestRestoreReplays(t *testing.T) {
	a := New(99)
	for i := 0; i < 25; i++ {
		a.Roll(6)
	}

	b := Restore(99, a.Position())
	if b.Position() != a.Position() {
		t.Fatalf("restored position = %d, want %d", b.Position(), a.Position())
	}
	for i := 0; i < 50; i++ {
		if got, want := b.Roll(6), a.Roll(6); got != want {
			t.Fatalf("post-restore draw %d: %d != %d", i, got, want)
		}
	}
}
