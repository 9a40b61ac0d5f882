package numset

import "testing"

func TestSetLiteralAsDisjointUnion(t *testing.T) {
	cases := []struct {
		name string
		lit  SetLiteral
		want DisjointUnion
	}{
		{"scalar", ScalarLiteral(5), DiscreteSet(5)},
		{"interval", IntervalLiteral(MustInterval(1, 2)), NewDisjointUnion(MustInterval(1, 2))},
		{"discrete", DiscreteLiteral(DiscreteSet(1, 2)), DiscreteSet(1, 2)},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := c.lit.AsDisjointUnion()
			if !got.Equal(c.want) {
				t.Errorf("%s.AsDisjointUnion() = %v, want %v", c.name, got, c.want)
			}
		})
	}
}

func TestSetLiteralBoolSetHasNoNumericForm(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic converting a BoolSet literal to a disjoint union")
		}
	}()
	BoolSetLiteral(NewBoolSet(true)).AsDisjointUnion()
}
