package value

import "testing"

// Invariant 4: literal int/float arithmetic matches IEEE-754/two's-complement.
func TestPerformArithmeticMatchesGoSemantics(t *testing.T) {
	lhs := Int(nil, 7, nil)
	rhs := Int(nil, 3, nil)

	got := Perform(lhs, rhs, "+")
	if len(got.Items) != 1 || got.Items[0].Payload.Num != 10 {
		t.Fatalf("7+3: got %+v", got.Items)
	}

	got = Perform(lhs, rhs, "%")
	if got.Items[0].Payload.Num != 1 {
		t.Fatalf("7%%3: got %v", got.Items[0].Payload.Num)
	}

	got = Perform(lhs, rhs, "<<")
	if got.Items[0].Payload.Num != float64(7<<3) {
		t.Fatalf("7<<3: got %v", got.Items[0].Payload.Num)
	}

	fl := Float(nil, 1.5, nil)
	got = Perform(fl, fl, "*")
	if got.Items[0].Payload.Num != 2.25 {
		t.Fatalf("1.5*1.5: got %v", got.Items[0].Payload.Num)
	}
}

func TestPerformRangeVsRangeJoinsCorners(t *testing.T) {
	lhs := Value{Items: []Item{{Kind: KindInt, Payload: Payload{IsRange: true, Lo: -1, Hi: 2}}}}
	rhs := Value{Items: []Item{{Kind: KindInt, Payload: Payload{IsRange: true, Lo: 2, Hi: 3}}}}

	got := Perform(lhs, rhs, "*")
	it := got.Items[0]
	if !it.Payload.IsRange || it.Payload.Lo != -3 || it.Payload.Hi != 6 {
		t.Fatalf("range*range: got %+v", it.Payload)
	}
}

func TestPerformStringEquality(t *testing.T) {
	a := String(nil, "right", nil)
	b := String(nil, "right", nil)

	got := Perform(a, b, "===")
	if got.Items[0].Kind != KindBool || got.Items[0].Payload.Num != 1 {
		t.Fatalf("===: got %+v", got.Items[0])
	}
	if !got.True() {
		t.Fatal("expected equal strings under === to be truthy")
	}
}

func TestPerformRaisedDominates(t *testing.T) {
	r := RaisedValue(nil, NewRaised("TypeError", "boom"), nil)
	n := Int(nil, 1, nil)

	got := Perform(r, n, "+")
	if got.Items[0].Kind != KindRaised {
		t.Fatalf("expected raised to dominate, got %v", got.Items[0].Kind)
	}
}

// Invariant 6: influence("random", v) maps non-range numeric items to
// random[0.0, 1.0].
func TestInfluenceRandom(t *testing.T) {
	v := Int(nil, 42, nil)
	got := Influence("random", v)
	if got.Items[0].Kind != KindRandom {
		t.Fatalf("expected random kind, got %v", got.Items[0].Kind)
	}
	if got.Items[0].Payload.Lo != 0.0 || got.Items[0].Payload.Hi != 1.0 {
		t.Fatalf("expected [0,1] range, got %+v", got.Items[0].Payload)
	}
}

func TestUnaryNot(t *testing.T) {
	v := Bool(nil, true, nil)
	got := PerformUnary(v, "!")
	if got.Items[0].Kind != KindBool || got.Items[0].Payload.Num != 0 {
		t.Fatalf("!true: got %+v", got.Items[0])
	}
}
