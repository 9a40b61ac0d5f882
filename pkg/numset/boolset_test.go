package numset

import "testing"

func TestBoolSetInhabitants(t *testing.T) {
	if !EmptyBoolSet().IsEmpty() {
		t.Error("EmptyBoolSet should be empty")
	}
	if !NewBoolSet(true).IsCertainlyTrue() {
		t.Error("{true} should be certainly true")
	}
	if !NewBoolSet(false).IsCertainlyFalse() {
		t.Error("{false} should be certainly false")
	}
	if !NewBoolSet(true, false).IsAmbiguous() {
		t.Error("{true, false} should be ambiguous")
	}
}

func TestBoolSetUnion(t *testing.T) {
	got := NewBoolSet(true).Union(NewBoolSet(false))
	if !got.IsAmbiguous() {
		t.Errorf("{true} ∪ {false} = %v, want ambiguous", got)
	}
}
