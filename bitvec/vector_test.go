package bitvec

import "testing"

func TestNew_RoundsUpToWordBoundary(t *testing.T) {
	v := New(1, false, false)
	if v.Size() != 32 {
		t.Errorf("expected size 32, got %d", v.Size())
	}

	v = New(33, false, false)
	if v.Size() != 64 {
		t.Errorf("expected size 64, got %d", v.Size())
	}

	v = New(0, false, false)
	if v.Size() != 0 {
		t.Errorf("expected size 0, got %d", v.Size())
	}
}

func TestNew_InitialValue(t *testing.T) {
	v := New(64, true, false)
	for i := 0; i < 64; i++ {
		if !v.IsSet(i) {
			t.Fatalf("expected bit %d to be set", i)
		}
	}

	v = New(64, false, false)
	for i := 0; i < 64; i++ {
		if v.IsSet(i) {
			t.Fatalf("expected bit %d to be clear", i)
		}
	}
}

func TestIsSet_PaddingBeyondStoredRange(t *testing.T) {
	v := New(32, false, true)
	if v.IsSet(5) {
		t.Errorf("expected stored bit 5 to be clear")
	}
	if !v.IsSet(32) {
		t.Errorf("expected bit 32 to read padding true")
	}
	if !v.IsSet(1 << 20) {
		t.Errorf("expected far out-of-range bit to read padding true")
	}
	if !v.IsSet(-1) {
		t.Errorf("expected negative index to read padding true")
	}

	v = New(32, true, false)
	if v.IsSet(32) {
		t.Errorf("expected bit 32 to read padding false")
	}
	if !v.IsClear(32) {
		t.Errorf("expected IsClear to mirror padding")
	}
}

func TestSetClear(t *testing.T) {
	v := New(96, false, false)
	v.Set(0)
	v.Set(42)
	v.Set(95)
	for _, bit := range []int{0, 42, 95} {
		if !v.IsSet(bit) {
			t.Errorf("expected bit %d to be set", bit)
		}
	}
	if v.IsSet(43) {
		t.Errorf("expected bit 43 to be clear")
	}

	v.Clear(42)
	if v.IsSet(42) {
		t.Errorf("expected bit 42 to be clear after Clear")
	}
}

func TestSet_OutOfRangePanics(t *testing.T) {
	v := New(32, false, false)
	for _, bit := range []int{-1, 32, 100} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("expected Set(%d) to panic", bit)
				}
			}()
			v.Set(bit)
		}()
	}
}

func TestSetRange_ClearRange(t *testing.T) {
	v := New(128, false, false)
	v.SetRange(30, 40) // spans three words
	for i := 0; i < 128; i++ {
		want := i >= 30 && i < 70
		if v.IsSet(i) != want {
			t.Fatalf("bit %d: got %v, want %v", i, v.IsSet(i), want)
		}
	}

	v.ClearRange(31, 5)
	for i := 30; i < 70; i++ {
		want := !(i >= 31 && i < 36)
		if v.IsSet(i) != want {
			t.Fatalf("bit %d after ClearRange: got %v, want %v", i, v.IsSet(i), want)
		}
	}

	// Empty range is a no-op.
	v.SetRange(0, 0)
}

func TestSetRange_OutOfRangePanics(t *testing.T) {
	v := New(64, false, false)
	for _, r := range [][2]int{{-1, 4}, {60, 5}, {0, -1}, {64, 1}} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("expected SetRange(%d,%d) to panic", r[0], r[1])
				}
			}()
			v.SetRange(r[0], r[1])
		}()
	}
}

func TestEqual_IgnoresStoredLengthWhenPaddingMatches(t *testing.T) {
	empty := New(0, false, false)
	allClear := New(32, false, false)
	if !empty.Equal(allClear) {
		t.Errorf("expected empty vector to equal all-clear 32-bit vector")
	}
	if !allClear.Equal(empty) {
		t.Errorf("expected equality to be symmetric")
	}

	allSet := New(32, true, true)
	emptyPadTrue := New(0, false, true)
	if !allSet.Equal(emptyPadTrue) {
		t.Errorf("expected all-set padding-true vector to equal empty padding-true vector")
	}

	// Differing paddings make the infinite tails differ.
	if empty.Equal(emptyPadTrue) {
		t.Errorf("expected vectors with different paddings to differ")
	}

	// A set bit beyond the shorter vector's range breaks equality.
	longer := New(64, false, false)
	longer.Set(40)
	if allClear.Equal(longer) {
		t.Errorf("expected vectors to differ on bit 40")
	}
}

func TestNot(t *testing.T) {
	v := New(32, false, false)
	v.Set(3)
	n := v.Not()
	if n.IsSet(3) {
		t.Errorf("expected bit 3 clear after Not")
	}
	if !n.IsSet(4) {
		t.Errorf("expected bit 4 set after Not")
	}
	if !n.Padding() {
		t.Errorf("expected Not to flip padding")
	}
	if !n.IsSet(1000) {
		t.Errorf("expected out-of-range bit to read flipped padding")
	}
	// Receiver unchanged.
	if !v.IsSet(3) || v.Padding() {
		t.Errorf("expected Not to leave the receiver unchanged")
	}
}

func TestBinaryOps_SameLength(t *testing.T) {
	a := New(32, false, false)
	a.SetRange(0, 8)
	b := New(32, false, false)
	b.SetRange(4, 8)

	and := a.And(b)
	or := a.Or(b)
	xor := a.Xor(b)
	for i := 0; i < 32; i++ {
		inA := i < 8
		inB := i >= 4 && i < 12
		if and.IsSet(i) != (inA && inB) {
			t.Fatalf("And bit %d: got %v", i, and.IsSet(i))
		}
		if or.IsSet(i) != (inA || inB) {
			t.Fatalf("Or bit %d: got %v", i, or.IsSet(i))
		}
		if xor.IsSet(i) != (inA != inB) {
			t.Fatalf("Xor bit %d: got %v", i, xor.IsSet(i))
		}
	}
}

func TestBinaryOps_DifferentLengthsUsePadding(t *testing.T) {
	short := New(32, true, true) // all set, padding true
	long := New(96, false, false)
	long.Set(64)

	// Beyond short's range, short contributes padding true.
	and := long.And(short)
	if and.Size() != 96 {
		t.Errorf("expected result sized to longer operand, got %d", and.Size())
	}
	if !and.IsSet(64) {
		t.Errorf("expected bit 64 to survive And against padding-true tail")
	}
	if and.IsSet(65) {
		t.Errorf("expected bit 65 clear")
	}
	if and.Padding() {
		t.Errorf("expected result to carry receiver's padding (false)")
	}

	or := long.Or(short)
	for i := 0; i < 96; i++ {
		if !or.IsSet(i) {
			t.Fatalf("Or bit %d: expected set (short is all-ones with padding true)", i)
		}
	}

	xor := long.Xor(short)
	if xor.IsSet(64) {
		t.Errorf("expected bit 64 clear in Xor (1 xor 1)")
	}
	if !xor.IsSet(65) {
		t.Errorf("expected bit 65 set in Xor (0 xor 1)")
	}
}

func TestBooleanAlgebra_DeMorgan(t *testing.T) {
	a := New(64, false, false)
	a.SetRange(10, 20)
	b := New(32, false, true)
	b.Set(5)

	left := a.And(b).Not()
	right := a.Not().Or(b.Not())
	for i := 0; i < 128; i++ {
		if left.IsSet(i) != right.IsSet(i) {
			t.Fatalf("De Morgan violated at bit %d", i)
		}
	}
	if left.Padding() != right.Padding() {
		t.Errorf("De Morgan violated on padding")
	}
}

func TestClone_Independent(t *testing.T) {
	v := New(32, false, false)
	v.Set(1)
	c := v.Clone()
	c.Set(2)
	if v.IsSet(2) {
		t.Errorf("expected clone mutation not to affect the original")
	}
	if !c.IsSet(1) {
		t.Errorf("expected clone to copy existing bits")
	}
}

func TestZeroValue(t *testing.T) {
	var v Vector
	if v.Size() != 0 {
		t.Errorf("expected zero value size 0, got %d", v.Size())
	}
	if v.IsSet(0) {
		t.Errorf("expected zero value to read all bits clear")
	}
	if !v.Equal(New(64, false, false)) {
		t.Errorf("expected zero value to equal an all-clear vector")
	}
}
