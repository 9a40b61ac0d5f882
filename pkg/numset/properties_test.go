package numset

import "testing"

// These mirror SPEC_FULL.md §8's testable properties for the interval
// algebra, exercised on a small fixed sample of finite intervals.
func TestIntervalAlgebraProperties(t *testing.T) {
	samples := []Interval{
		MustInterval(-3, 5),
		MustInterval(2, 2),
		MustInterval(-10, -4),
		MustInterval(0, 1),
	}
	zero := MustInterval(0, 0)
	one := MustInterval(1, 1)

	for _, a := range samples {
		if got := a.Add(zero); got != a {
			t.Errorf("identity: %v + 0 = %v, want %v", a, got, a)
		}
		if got := a.Mul(one); got != a {
			t.Errorf("identity: %v * 1 = %v, want %v", a, got, a)
		}
		if got := a.IntersectInterval(a); !got.Equal(NewDisjointUnion(a)) {
			t.Errorf("identity: %v ∩ %v = %v, want %v", a, a, got, a)
		}
		if got := a.Neg().Neg(); got != a {
			t.Errorf("negation involution: -(-%v) = %v, want %v", a, got, a)
		}

		for _, b := range samples {
			if got, want := a.Add(b), b.Add(a); got != want {
				t.Errorf("commutativity: %v + %v = %v, want %v", a, b, got, want)
			}
			if got, want := a.Mul(b), b.Mul(a); got != want {
				t.Errorf("commutativity: %v * %v = %v, want %v", a, b, got, want)
			}
			if got, want := a.Sub(b), a.Add(b.Neg()); got != want {
				t.Errorf("subtraction law: %v - %v = %v, want %v", a, b, got, want)
			}

			ab := a.IntersectInterval(b)
			if !ab.IsEmpty() {
				idempotent := ab.IntersectInterval(ab.intervals[0])
				if !idempotent.Equal(ab) {
					t.Errorf("intersection idempotence: (%v ∩ %v) ∩ itself = %v, want %v", a, b, idempotent, ab)
				}
			}
		}
	}
}

func TestMembershipProperty(t *testing.T) {
	i := MustInterval(-2, 7)
	for x := -3.0; x <= 8; x++ {
		want := i.lo <= x && x <= i.hi
		if got := i.Contains(x); got != want {
			t.Errorf("Contains(%v) = %v, want %v", x, got, want)
		}
	}
}

func TestDifferenceLaw(t *testing.T) {
	a := NewDisjointUnion(MustInterval(1, 4))
	b := NewDisjointUnion(MustInterval(2, 3))

	diff := a.Difference(b)
	if !diff.Intersect(b).IsEmpty() {
		t.Errorf("(A \\ B) ∩ B should be empty, got %v", diff.Intersect(b))
	}

	recombined := diff.Union(a.Intersect(b))
	if !recombined.Equal(a) {
		t.Errorf("(A \\ B) ∪ (A ∩ B) = %v, want %v", recombined, a)
	}
}
