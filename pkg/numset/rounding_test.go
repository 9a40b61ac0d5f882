package numset

import (
	"math"
	"testing"
)

func TestFloatRound(t *testing.T) {
	cases := []struct {
		name string
		in   float64
		d    int
		want float64
	}{
		{"rounds down fractional digits", 1.23456, 2, 1.23},
		{"passes +inf through", math.Inf(1), 3, math.Inf(1)},
		{"passes -inf through", math.Inf(-1), 3, math.Inf(-1)},
		{"rounds whole numbers to whole numbers", 10.0, 0, 10.0},
		{"rounds half away from zero", 2.5, 0, 3},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := FloatRound(c.in, c.d)
			if got != c.want {
				t.Errorf("FloatRound(%v, %d) = %v, want %v", c.in, c.d, got, c.want)
			}
		})
	}
}

func TestRelRound(t *testing.T) {
	cases := []struct {
		name    string
		in      float64
		d       int
		want    float64
		wantErr bool
	}{
		{"passes zero through", 0, 3, 0, false},
		{"passes infinity through", math.Inf(1), 3, math.Inf(1), false},
		{"rounds sub-unity values absolutely", 0.123456789, 4, 0.1235, false},
		{"subtracts magnitude for values over one", 12345.6789, 7, 12345.68, false},
		{"rejects negative digits", 1.0, -1, 0, true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := RelRound(c.in, c.d)
			if c.wantErr {
				if err == nil {
					t.Fatalf("RelRound(%v, %d) expected error, got none", c.in, c.d)
				}
				return
			}
			if err != nil {
				t.Fatalf("RelRound(%v, %d) unexpected error: %v", c.in, c.d, err)
			}
			if math.Abs(got-c.want) > 1e-9 && got != c.want {
				t.Errorf("RelRound(%v, %d) = %v, want %v", c.in, c.d, got, c.want)
			}
		})
	}
}
