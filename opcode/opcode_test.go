package opcode

import "testing"

func TestLookup_PlainOpcode(t *testing.T) {
	info, ok := Lookup("i32.add")
	if !ok {
		t.Fatal("expected i32.add to be found")
	}
	if info.Kind != KindPlain {
		t.Errorf("Kind = %v, want KindPlain", info.Kind)
	}
	if info.Arity != 2 {
		t.Errorf("Arity = %d, want 2", info.Arity)
	}
}

func TestLookup_SimdLanesDistinct(t *testing.T) {
	// Regression: i8x16.add, i16x8.add, and i32x4.add must each carry
	// their own sub-opcode, not alias one another.
	names := []string{"i8x16.add", "i16x8.add", "i32x4.add"}
	codes := map[uint32]string{}
	for _, n := range names {
		info, ok := Lookup(n)
		if !ok {
			t.Fatalf("expected %s to be found", n)
		}
		if info.Kind != KindSIMD {
			t.Errorf("%s: Kind = %v, want KindSIMD", n, info.Kind)
		}
		if prev, dup := codes[info.Code]; dup {
			t.Errorf("%s shares sub-opcode %d with %s", n, info.Code, prev)
		}
		codes[info.Code] = n
	}
}

func TestLookup_TableGetSet(t *testing.T) {
	for _, n := range []string{"table.get", "table.set"} {
		if _, ok := Lookup(n); !ok {
			t.Errorf("expected %s to be found", n)
		}
	}
}

func TestLookup_Unknown(t *testing.T) {
	if _, ok := Lookup("not.a.real.op"); ok {
		t.Error("expected unknown op to not be found")
	}
}

func TestKind_Prefix(t *testing.T) {
	simdInfo, _ := Lookup("i32x4.add")
	if simdInfo.Kind.Prefix() == 0 {
		t.Error("KindSIMD.Prefix() should be nonzero")
	}
}

func TestKind_Prefix_PanicsForPlain(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected KindPlain.Prefix() to panic")
		}
	}()
	KindPlain.Prefix()
}
