package optimize

import (
	"testing"

	"github.com/wasmforge/forge/ir"
)

func TestFoldConstants(t *testing.T) {
	var bigFactor int32 = 1 << 30
	wrapped := bigFactor * 4 // overflows int32 at runtime, wraps per two's complement

	tests := []struct {
		name string
		n    *ir.Node
		want any
	}{
		{"i32.add", ir.Binop("i32.add", ir.I32Const(2), ir.I32Const(3)), int32(5)},
		{"i32.sub", ir.Binop("i32.sub", ir.I32Const(10), ir.I32Const(3)), int32(7)},
		{"i32.mul wraps", ir.Binop("i32.mul", ir.I32Const(bigFactor), ir.I32Const(4)), wrapped},
		{"i32.shl", ir.Binop("i32.shl", ir.I32Const(1), ir.I32Const(4)), int32(16)},
		{"i32.shr_s", ir.Binop("i32.shr_s", ir.I32Const(-16), ir.I32Const(2)), int32(-4)},
		{"f32.add", ir.Binop("f32.add", ir.F32Const(1.5), ir.F32Const(2.5)), float32(4)},
		{"f32.div", ir.Binop("f32.div", ir.F32Const(9), ir.F32Const(3)), float32(3)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := foldConstants(tt.n)
			if !ir.IsConst(got) {
				t.Fatalf("result not a const: %+v", got)
			}
			if got.Value != tt.want {
				t.Errorf("value = %v, want %v", got.Value, tt.want)
			}
		})
	}
}

func TestFoldConstants_DivByZeroLeftUnfolded(t *testing.T) {
	n := ir.Binop("i32.div_s", ir.I32Const(10), ir.I32Const(0))
	got := foldConstants(n)
	if ir.IsConst(got) {
		t.Errorf("div by zero was folded: %+v", got)
	}
	if got.Type != "i32.div_s" {
		t.Errorf("type changed: %s", got.Type)
	}
}

func TestFoldConstants_NotAppliedToI64OrF64(t *testing.T) {
	n := ir.Binop("i64.add", ir.I64Const(2), ir.I64Const(3))
	got := foldConstants(n)
	if ir.IsConst(got) {
		t.Errorf("i64.add was folded, spec restricts folding to i32/f32: %+v", got)
	}
	f := ir.Binop("f64.add", ir.F64Const(2), ir.F64Const(3))
	if gotF := foldConstants(f); ir.IsConst(gotF) {
		t.Errorf("f64.add was folded, spec restricts folding to i32/f32: %+v", gotF)
	}
}

func TestFoldConstants_NoCrossLocalPropagation(t *testing.T) {
	n := ir.Binop("i32.add", ir.LocalGet("x"), ir.I32Const(3))
	got := foldConstants(n)
	if ir.IsConst(got) {
		t.Errorf("folded a non-const operand: %+v", got)
	}
}
