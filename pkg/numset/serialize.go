package numset

import (
	"encoding/json"
	"math"
)

// intervalWire is the wire form of an Interval: {min, max}, where a null
// bound denotes infinity of the appropriate sign.
type intervalWire struct {
	Min *float64 `json:"min"`
	Max *float64 `json:"max"`
}

// MarshalJSON serialises the interval as {"min": ..., "max": ...}, with null
// for an infinite bound.
func (i Interval) MarshalJSON() ([]byte, error) {
	w := intervalWire{}
	if !math.IsInf(i.lo, 0) {
		w.Min = &i.lo
	}
	if !math.IsInf(i.hi, 0) {
		w.Max = &i.hi
	}
	return json.Marshal(w)
}

// UnmarshalJSON deserialises an interval from {"min": ..., "max": ...}; a
// missing/null bound becomes the infinity of the appropriate sign.
func (i *Interval) UnmarshalJSON(data []byte) error {
	var w intervalWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	lo, hi := math.Inf(-1), math.Inf(1)
	if w.Min != nil {
		lo = *w.Min
	}
	if w.Max != nil {
		hi = *w.Max
	}
	built, err := NewInterval(lo, hi)
	if err != nil {
		return err
	}
	*i = built
	return nil
}

// disjointWire is the wire form of a DisjointUnion: {"intervals": [...]}.
// A discrete set serialises identically, as a union of singletons.
type disjointWire struct {
	Intervals []Interval `json:"intervals"`
}

// MarshalJSON serialises the union as {"intervals": [...]}.
func (u DisjointUnion) MarshalJSON() ([]byte, error) {
	ivs := u.intervals
	if ivs == nil {
		ivs = []Interval{}
	}
	return json.Marshal(disjointWire{Intervals: ivs})
}

// UnmarshalJSON deserialises a union from {"intervals": [...]}, renormalising
// on the way in.
func (u *DisjointUnion) UnmarshalJSON(data []byte) error {
	var w disjointWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	*u = NewDisjointUnion(w.Intervals...)
	return nil
}
