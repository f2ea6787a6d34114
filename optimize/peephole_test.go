package optimize

import (
	"reflect"
	"testing"

	"github.com/wasmforge/forge/ir"
)

func TestPeephole_Identities(t *testing.T) {
	newX := func() *ir.Node { return ir.LocalGet("x") }

	tests := []struct {
		name string
		n    *ir.Node
		want *ir.Node
	}{
		{"x+0", ir.Binop("i32.add", newX(), ir.I32Const(0)), newX()},
		{"0+x", ir.Binop("i32.add", ir.I32Const(0), newX()), newX()},
		{"x-0", ir.Binop("i32.sub", newX(), ir.I32Const(0)), newX()},
		{"x<<0", ir.Binop("i32.shl", newX(), ir.I32Const(0)), newX()},
		{"x>>0", ir.Binop("i32.shr_s", newX(), ir.I32Const(0)), newX()},
		{"x*1", ir.Binop("i32.mul", newX(), ir.I32Const(1)), newX()},
		{"1*x", ir.Binop("i32.mul", ir.I32Const(1), newX()), newX()},
		{"f32 x+0.0", ir.Binop("f32.add", newX(), ir.F32Const(0)), newX()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := peephole(tt.n)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("got %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestPeephole_I32MulByZeroBecomesConstZero(t *testing.T) {
	n := ir.Binop("i32.mul", ir.LocalGet("x"), ir.I32Const(0))
	got := peephole(n)
	if !ir.IsConst(got) || got.Value.(int32) != 0 {
		t.Errorf("got %+v, want i32.const 0", got)
	}
}

func TestPeephole_FloatMulByZeroNotSimplified(t *testing.T) {
	n := ir.Binop("f32.mul", ir.LocalGet("x"), ir.F32Const(0))
	got := peephole(n)
	if !reflect.DeepEqual(got, n) {
		t.Errorf("float multiply-by-zero was simplified: %+v", got)
	}
}
