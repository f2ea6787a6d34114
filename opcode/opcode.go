// Package opcode maps IR operation names to their binary encoding: a
// one-byte opcode, or a prefix byte plus a LEB128-encoded sub-opcode for
// the misc/SIMD/atomic instruction families.
package opcode

import "github.com/wasmforge/forge/wasm"

// Kind distinguishes a plain single-byte opcode from the three prefixed
// families, each of which is followed by a LEB128 sub-opcode rather than a
// second raw byte.
type Kind byte

const (
	KindPlain Kind = iota
	KindMisc
	KindSIMD
	KindAtomic
)

// Imm describes what immediate, if any, follows the opcode in the binary.
type Imm int

const (
	ImmNone    Imm = iota
	ImmU32         // local/global index, branch depth, call index
	ImmMemarg      // (align, offset) pair
	ImmLane        // single lane index byte (extract/replace lane)
	ImmShuffle     // 16 lane index bytes (i8x16.shuffle)
	ImmMemIdx      // memory.size/grow's memory index (always 0 in MVP)
)

// Info describes one name's encoding and shape.
type Info struct {
	Kind Kind
	Code uint32 // opcode byte (KindPlain) or sub-opcode (prefixed kinds)
	Imm  Imm
	// Align is the natural alignment, in bytes, of a memarg-bearing op's
	// access width. It is the default when an ir.Node doesn't override it.
	Align uint32
	// Arity is the number of stack operands the instruction consumes, or
	// -1 when it is variable (call, br_table, return).
	Arity int
}

// Lookup returns the encoding Info for an IR operation name.
func Lookup(name string) (Info, bool) {
	info, ok := table[name]
	return info, ok
}

// Prefix returns the raw prefix byte for a prefixed Kind; it panics for
// KindPlain, which has no prefix.
func (k Kind) Prefix() byte {
	switch k {
	case KindMisc:
		return wasm.OpPrefixMisc
	case KindSIMD:
		return wasm.OpPrefixSIMD
	case KindAtomic:
		return wasm.OpPrefixAtomic
	default:
		panic("opcode: KindPlain has no prefix byte")
	}
}

var table = map[string]Info{
	// Parametric
	"drop":   {KindPlain, uint32(wasm.OpDrop), ImmNone, 0, 1},
	"select": {KindPlain, uint32(wasm.OpSelect), ImmNone, 0, 3},

	// Variables
	"local.get":  {KindPlain, uint32(wasm.OpLocalGet), ImmU32, 0, 0},
	"local.set":  {KindPlain, uint32(wasm.OpLocalSet), ImmU32, 0, 1},
	"local.tee":  {KindPlain, uint32(wasm.OpLocalTee), ImmU32, 0, 1},
	"global.get": {KindPlain, uint32(wasm.OpGlobalGet), ImmU32, 0, 0},
	"global.set": {KindPlain, uint32(wasm.OpGlobalSet), ImmU32, 0, 1},

	// Table access. The table-index immediate is written by emit's
	// name-based dispatch alongside table.size/grow/fill, not by the
	// generic Imm switch.
	"table.get": {KindPlain, uint32(wasm.OpTableGet), ImmNone, 0, 1},
	"table.set": {KindPlain, uint32(wasm.OpTableSet), ImmNone, 0, 2},

	// i32 comparison
	"i32.eqz":  {KindPlain, uint32(wasm.OpI32Eqz), ImmNone, 0, 1},
	"i32.eq":   {KindPlain, uint32(wasm.OpI32Eq), ImmNone, 0, 2},
	"i32.ne":   {KindPlain, uint32(wasm.OpI32Ne), ImmNone, 0, 2},
	"i32.lt_s": {KindPlain, uint32(wasm.OpI32LtS), ImmNone, 0, 2},
	"i32.lt_u": {KindPlain, uint32(wasm.OpI32LtU), ImmNone, 0, 2},
	"i32.gt_s": {KindPlain, uint32(wasm.OpI32GtS), ImmNone, 0, 2},
	"i32.gt_u": {KindPlain, uint32(wasm.OpI32GtU), ImmNone, 0, 2},
	"i32.le_s": {KindPlain, uint32(wasm.OpI32LeS), ImmNone, 0, 2},
	"i32.le_u": {KindPlain, uint32(wasm.OpI32LeU), ImmNone, 0, 2},
	"i32.ge_s": {KindPlain, uint32(wasm.OpI32GeS), ImmNone, 0, 2},
	"i32.ge_u": {KindPlain, uint32(wasm.OpI32GeU), ImmNone, 0, 2},

	// i64 comparison
	"i64.eqz":  {KindPlain, uint32(wasm.OpI64Eqz), ImmNone, 0, 1},
	"i64.eq":   {KindPlain, uint32(wasm.OpI64Eq), ImmNone, 0, 2},
	"i64.ne":   {KindPlain, uint32(wasm.OpI64Ne), ImmNone, 0, 2},
	"i64.lt_s": {KindPlain, uint32(wasm.OpI64LtS), ImmNone, 0, 2},
	"i64.lt_u": {KindPlain, uint32(wasm.OpI64LtU), ImmNone, 0, 2},
	"i64.gt_s": {KindPlain, uint32(wasm.OpI64GtS), ImmNone, 0, 2},
	"i64.gt_u": {KindPlain, uint32(wasm.OpI64GtU), ImmNone, 0, 2},
	"i64.le_s": {KindPlain, uint32(wasm.OpI64LeS), ImmNone, 0, 2},
	"i64.le_u": {KindPlain, uint32(wasm.OpI64LeU), ImmNone, 0, 2},
	"i64.ge_s": {KindPlain, uint32(wasm.OpI64GeS), ImmNone, 0, 2},
	"i64.ge_u": {KindPlain, uint32(wasm.OpI64GeU), ImmNone, 0, 2},

	// f32 comparison
	"f32.eq": {KindPlain, uint32(wasm.OpF32Eq), ImmNone, 0, 2},
	"f32.ne": {KindPlain, uint32(wasm.OpF32Ne), ImmNone, 0, 2},
	"f32.lt": {KindPlain, uint32(wasm.OpF32Lt), ImmNone, 0, 2},
	"f32.gt": {KindPlain, uint32(wasm.OpF32Gt), ImmNone, 0, 2},
	"f32.le": {KindPlain, uint32(wasm.OpF32Le), ImmNone, 0, 2},
	"f32.ge": {KindPlain, uint32(wasm.OpF32Ge), ImmNone, 0, 2},

	// f64 comparison
	"f64.eq": {KindPlain, uint32(wasm.OpF64Eq), ImmNone, 0, 2},
	"f64.ne": {KindPlain, uint32(wasm.OpF64Ne), ImmNone, 0, 2},
	"f64.lt": {KindPlain, uint32(wasm.OpF64Lt), ImmNone, 0, 2},
	"f64.gt": {KindPlain, uint32(wasm.OpF64Gt), ImmNone, 0, 2},
	"f64.le": {KindPlain, uint32(wasm.OpF64Le), ImmNone, 0, 2},
	"f64.ge": {KindPlain, uint32(wasm.OpF64Ge), ImmNone, 0, 2},

	// i32 arithmetic
	"i32.clz":    {KindPlain, uint32(wasm.OpI32Clz), ImmNone, 0, 1},
	"i32.ctz":    {KindPlain, uint32(wasm.OpI32Ctz), ImmNone, 0, 1},
	"i32.popcnt": {KindPlain, uint32(wasm.OpI32Popcnt), ImmNone, 0, 1},
	"i32.add":    {KindPlain, uint32(wasm.OpI32Add), ImmNone, 0, 2},
	"i32.sub":    {KindPlain, uint32(wasm.OpI32Sub), ImmNone, 0, 2},
	"i32.mul":    {KindPlain, uint32(wasm.OpI32Mul), ImmNone, 0, 2},
	"i32.div_s":  {KindPlain, uint32(wasm.OpI32DivS), ImmNone, 0, 2},
	"i32.div_u":  {KindPlain, uint32(wasm.OpI32DivU), ImmNone, 0, 2},
	"i32.rem_s":  {KindPlain, uint32(wasm.OpI32RemS), ImmNone, 0, 2},
	"i32.rem_u":  {KindPlain, uint32(wasm.OpI32RemU), ImmNone, 0, 2},
	"i32.and":    {KindPlain, uint32(wasm.OpI32And), ImmNone, 0, 2},
	"i32.or":     {KindPlain, uint32(wasm.OpI32Or), ImmNone, 0, 2},
	"i32.xor":    {KindPlain, uint32(wasm.OpI32Xor), ImmNone, 0, 2},
	"i32.shl":    {KindPlain, uint32(wasm.OpI32Shl), ImmNone, 0, 2},
	"i32.shr_s":  {KindPlain, uint32(wasm.OpI32ShrS), ImmNone, 0, 2},
	"i32.shr_u":  {KindPlain, uint32(wasm.OpI32ShrU), ImmNone, 0, 2},
	"i32.rotl":   {KindPlain, uint32(wasm.OpI32Rotl), ImmNone, 0, 2},
	"i32.rotr":   {KindPlain, uint32(wasm.OpI32Rotr), ImmNone, 0, 2},

	// i64 arithmetic
	"i64.clz":    {KindPlain, uint32(wasm.OpI64Clz), ImmNone, 0, 1},
	"i64.ctz":    {KindPlain, uint32(wasm.OpI64Ctz), ImmNone, 0, 1},
	"i64.popcnt": {KindPlain, uint32(wasm.OpI64Popcnt), ImmNone, 0, 1},
	"i64.add":    {KindPlain, uint32(wasm.OpI64Add), ImmNone, 0, 2},
	"i64.sub":    {KindPlain, uint32(wasm.OpI64Sub), ImmNone, 0, 2},
	"i64.mul":    {KindPlain, uint32(wasm.OpI64Mul), ImmNone, 0, 2},
	"i64.div_s":  {KindPlain, uint32(wasm.OpI64DivS), ImmNone, 0, 2},
	"i64.div_u":  {KindPlain, uint32(wasm.OpI64DivU), ImmNone, 0, 2},
	"i64.rem_s":  {KindPlain, uint32(wasm.OpI64RemS), ImmNone, 0, 2},
	"i64.rem_u":  {KindPlain, uint32(wasm.OpI64RemU), ImmNone, 0, 2},
	"i64.and":    {KindPlain, uint32(wasm.OpI64And), ImmNone, 0, 2},
	"i64.or":     {KindPlain, uint32(wasm.OpI64Or), ImmNone, 0, 2},
	"i64.xor":    {KindPlain, uint32(wasm.OpI64Xor), ImmNone, 0, 2},
	"i64.shl":    {KindPlain, uint32(wasm.OpI64Shl), ImmNone, 0, 2},
	"i64.shr_s":  {KindPlain, uint32(wasm.OpI64ShrS), ImmNone, 0, 2},
	"i64.shr_u":  {KindPlain, uint32(wasm.OpI64ShrU), ImmNone, 0, 2},
	"i64.rotl":   {KindPlain, uint32(wasm.OpI64Rotl), ImmNone, 0, 2},
	"i64.rotr":   {KindPlain, uint32(wasm.OpI64Rotr), ImmNone, 0, 2},

	// f32 arithmetic
	"f32.abs":      {KindPlain, uint32(wasm.OpF32Abs), ImmNone, 0, 1},
	"f32.neg":      {KindPlain, uint32(wasm.OpF32Neg), ImmNone, 0, 1},
	"f32.ceil":     {KindPlain, uint32(wasm.OpF32Ceil), ImmNone, 0, 1},
	"f32.floor":    {KindPlain, uint32(wasm.OpF32Floor), ImmNone, 0, 1},
	"f32.trunc":    {KindPlain, uint32(wasm.OpF32Trunc), ImmNone, 0, 1},
	"f32.nearest":  {KindPlain, uint32(wasm.OpF32Nearest), ImmNone, 0, 1},
	"f32.sqrt":     {KindPlain, uint32(wasm.OpF32Sqrt), ImmNone, 0, 1},
	"f32.add":      {KindPlain, uint32(wasm.OpF32Add), ImmNone, 0, 2},
	"f32.sub":      {KindPlain, uint32(wasm.OpF32Sub), ImmNone, 0, 2},
	"f32.mul":      {KindPlain, uint32(wasm.OpF32Mul), ImmNone, 0, 2},
	"f32.div":      {KindPlain, uint32(wasm.OpF32Div), ImmNone, 0, 2},
	"f32.min":      {KindPlain, uint32(wasm.OpF32Min), ImmNone, 0, 2},
	"f32.max":      {KindPlain, uint32(wasm.OpF32Max), ImmNone, 0, 2},
	"f32.copysign": {KindPlain, uint32(wasm.OpF32Copysign), ImmNone, 0, 2},

	// f64 arithmetic
	"f64.abs":      {KindPlain, uint32(wasm.OpF64Abs), ImmNone, 0, 1},
	"f64.neg":      {KindPlain, uint32(wasm.OpF64Neg), ImmNone, 0, 1},
	"f64.ceil":     {KindPlain, uint32(wasm.OpF64Ceil), ImmNone, 0, 1},
	"f64.floor":    {KindPlain, uint32(wasm.OpF64Floor), ImmNone, 0, 1},
	"f64.trunc":    {KindPlain, uint32(wasm.OpF64Trunc), ImmNone, 0, 1},
	"f64.nearest":  {KindPlain, uint32(wasm.OpF64Nearest), ImmNone, 0, 1},
	"f64.sqrt":     {KindPlain, uint32(wasm.OpF64Sqrt), ImmNone, 0, 1},
	"f64.add":      {KindPlain, uint32(wasm.OpF64Add), ImmNone, 0, 2},
	"f64.sub":      {KindPlain, uint32(wasm.OpF64Sub), ImmNone, 0, 2},
	"f64.mul":      {KindPlain, uint32(wasm.OpF64Mul), ImmNone, 0, 2},
	"f64.div":      {KindPlain, uint32(wasm.OpF64Div), ImmNone, 0, 2},
	"f64.min":      {KindPlain, uint32(wasm.OpF64Min), ImmNone, 0, 2},
	"f64.max":      {KindPlain, uint32(wasm.OpF64Max), ImmNone, 0, 2},
	"f64.copysign": {KindPlain, uint32(wasm.OpF64Copysign), ImmNone, 0, 2},

	// Conversions
	"i32.wrap_i64":        {KindPlain, uint32(wasm.OpI32WrapI64), ImmNone, 0, 1},
	"i32.trunc_f32_s":     {KindPlain, uint32(wasm.OpI32TruncF32S), ImmNone, 0, 1},
	"i32.trunc_f32_u":     {KindPlain, uint32(wasm.OpI32TruncF32U), ImmNone, 0, 1},
	"i32.trunc_f64_s":     {KindPlain, uint32(wasm.OpI32TruncF64S), ImmNone, 0, 1},
	"i32.trunc_f64_u":     {KindPlain, uint32(wasm.OpI32TruncF64U), ImmNone, 0, 1},
	"i64.extend_i32_s":    {KindPlain, uint32(wasm.OpI64ExtendI32S), ImmNone, 0, 1},
	"i64.extend_i32_u":    {KindPlain, uint32(wasm.OpI64ExtendI32U), ImmNone, 0, 1},
	"i64.trunc_f32_s":     {KindPlain, uint32(wasm.OpI64TruncF32S), ImmNone, 0, 1},
	"i64.trunc_f32_u":     {KindPlain, uint32(wasm.OpI64TruncF32U), ImmNone, 0, 1},
	"i64.trunc_f64_s":     {KindPlain, uint32(wasm.OpI64TruncF64S), ImmNone, 0, 1},
	"i64.trunc_f64_u":     {KindPlain, uint32(wasm.OpI64TruncF64U), ImmNone, 0, 1},
	"f32.convert_i32_s":   {KindPlain, uint32(wasm.OpF32ConvertI32S), ImmNone, 0, 1},
	"f32.convert_i32_u":   {KindPlain, uint32(wasm.OpF32ConvertI32U), ImmNone, 0, 1},
	"f32.convert_i64_s":   {KindPlain, uint32(wasm.OpF32ConvertI64S), ImmNone, 0, 1},
	"f32.convert_i64_u":   {KindPlain, uint32(wasm.OpF32ConvertI64U), ImmNone, 0, 1},
	"f32.demote_f64":      {KindPlain, uint32(wasm.OpF32DemoteF64), ImmNone, 0, 1},
	"f64.convert_i32_s":   {KindPlain, uint32(wasm.OpF64ConvertI32S), ImmNone, 0, 1},
	"f64.convert_i32_u":   {KindPlain, uint32(wasm.OpF64ConvertI32U), ImmNone, 0, 1},
	"f64.convert_i64_s":   {KindPlain, uint32(wasm.OpF64ConvertI64S), ImmNone, 0, 1},
	"f64.convert_i64_u":   {KindPlain, uint32(wasm.OpF64ConvertI64U), ImmNone, 0, 1},
	"f64.promote_f32":     {KindPlain, uint32(wasm.OpF64PromoteF32), ImmNone, 0, 1},
	"i32.reinterpret_f32": {KindPlain, uint32(wasm.OpI32ReinterpretF32), ImmNone, 0, 1},
	"i64.reinterpret_f64": {KindPlain, uint32(wasm.OpI64ReinterpretF64), ImmNone, 0, 1},
	"f32.reinterpret_i32": {KindPlain, uint32(wasm.OpF32ReinterpretI32), ImmNone, 0, 1},
	"f64.reinterpret_i64": {KindPlain, uint32(wasm.OpF64ReinterpretI64), ImmNone, 0, 1},

	// Sign extension
	"i32.extend8_s":  {KindPlain, uint32(wasm.OpI32Extend8S), ImmNone, 0, 1},
	"i32.extend16_s": {KindPlain, uint32(wasm.OpI32Extend16S), ImmNone, 0, 1},
	"i64.extend8_s":  {KindPlain, uint32(wasm.OpI64Extend8S), ImmNone, 0, 1},
	"i64.extend16_s": {KindPlain, uint32(wasm.OpI64Extend16S), ImmNone, 0, 1},
	"i64.extend32_s": {KindPlain, uint32(wasm.OpI64Extend32S), ImmNone, 0, 1},

	// Memory loads
	"i32.load":     {KindPlain, uint32(wasm.OpI32Load), ImmMemarg, 4, 1},
	"i64.load":     {KindPlain, uint32(wasm.OpI64Load), ImmMemarg, 8, 1},
	"f32.load":     {KindPlain, uint32(wasm.OpF32Load), ImmMemarg, 4, 1},
	"f64.load":     {KindPlain, uint32(wasm.OpF64Load), ImmMemarg, 8, 1},
	"i32.load8_s":  {KindPlain, uint32(wasm.OpI32Load8S), ImmMemarg, 1, 1},
	"i32.load8_u":  {KindPlain, uint32(wasm.OpI32Load8U), ImmMemarg, 1, 1},
	"i32.load16_s": {KindPlain, uint32(wasm.OpI32Load16S), ImmMemarg, 2, 1},
	"i32.load16_u": {KindPlain, uint32(wasm.OpI32Load16U), ImmMemarg, 2, 1},
	"i64.load8_s":  {KindPlain, uint32(wasm.OpI64Load8S), ImmMemarg, 1, 1},
	"i64.load8_u":  {KindPlain, uint32(wasm.OpI64Load8U), ImmMemarg, 1, 1},
	"i64.load16_s": {KindPlain, uint32(wasm.OpI64Load16S), ImmMemarg, 2, 1},
	"i64.load16_u": {KindPlain, uint32(wasm.OpI64Load16U), ImmMemarg, 2, 1},
	"i64.load32_s": {KindPlain, uint32(wasm.OpI64Load32S), ImmMemarg, 4, 1},
	"i64.load32_u": {KindPlain, uint32(wasm.OpI64Load32U), ImmMemarg, 4, 1},

	// Memory stores
	"i32.store":   {KindPlain, uint32(wasm.OpI32Store), ImmMemarg, 4, 2},
	"i64.store":   {KindPlain, uint32(wasm.OpI64Store), ImmMemarg, 8, 2},
	"f32.store":   {KindPlain, uint32(wasm.OpF32Store), ImmMemarg, 4, 2},
	"f64.store":   {KindPlain, uint32(wasm.OpF64Store), ImmMemarg, 8, 2},
	"i32.store8":  {KindPlain, uint32(wasm.OpI32Store8), ImmMemarg, 1, 2},
	"i32.store16": {KindPlain, uint32(wasm.OpI32Store16), ImmMemarg, 2, 2},
	"i64.store8":  {KindPlain, uint32(wasm.OpI64Store8), ImmMemarg, 1, 2},
	"i64.store16": {KindPlain, uint32(wasm.OpI64Store16), ImmMemarg, 2, 2},
	"i64.store32": {KindPlain, uint32(wasm.OpI64Store32), ImmMemarg, 4, 2},

	"memory.size": {KindPlain, uint32(wasm.OpMemorySize), ImmMemIdx, 0, 0},
	"memory.grow": {KindPlain, uint32(wasm.OpMemoryGrow), ImmMemIdx, 0, 1},

	// Bulk memory (0xFC prefix)
	"memory.init": {KindMisc, wasm.MiscMemoryInit, ImmNone, 0, 3},
	"data.drop":   {KindMisc, wasm.MiscDataDrop, ImmNone, 0, 0},
	"memory.copy": {KindMisc, wasm.MiscMemoryCopy, ImmNone, 0, 3},
	"memory.fill": {KindMisc, wasm.MiscMemoryFill, ImmNone, 0, 3},
	"table.init":  {KindMisc, wasm.MiscTableInit, ImmNone, 0, 3},
	"elem.drop":   {KindMisc, wasm.MiscElemDrop, ImmNone, 0, 0},
	"table.copy":  {KindMisc, wasm.MiscTableCopy, ImmNone, 0, 3},
	"table.grow":  {KindMisc, wasm.MiscTableGrow, ImmNone, 0, 2},
	"table.size":  {KindMisc, wasm.MiscTableSize, ImmNone, 0, 0},
	"table.fill":  {KindMisc, wasm.MiscTableFill, ImmNone, 0, 3},

	"i32.trunc_sat_f32_s": {KindMisc, wasm.MiscI32TruncSatF32S, ImmNone, 0, 1},
	"i32.trunc_sat_f32_u": {KindMisc, wasm.MiscI32TruncSatF32U, ImmNone, 0, 1},
	"i32.trunc_sat_f64_s": {KindMisc, wasm.MiscI32TruncSatF64S, ImmNone, 0, 1},
	"i32.trunc_sat_f64_u": {KindMisc, wasm.MiscI32TruncSatF64U, ImmNone, 0, 1},
	"i64.trunc_sat_f32_s": {KindMisc, wasm.MiscI64TruncSatF32S, ImmNone, 0, 1},
	"i64.trunc_sat_f32_u": {KindMisc, wasm.MiscI64TruncSatF32U, ImmNone, 0, 1},
	"i64.trunc_sat_f64_s": {KindMisc, wasm.MiscI64TruncSatF64S, ImmNone, 0, 1},
	"i64.trunc_sat_f64_u": {KindMisc, wasm.MiscI64TruncSatF64U, ImmNone, 0, 1},

	// v128 load/store/splat-load (0xFD prefix)
	"v128.load":         {KindSIMD, wasm.SimdV128Load, ImmMemarg, 16, 1},
	"v128.load8x8_s":    {KindSIMD, wasm.SimdV128Load8x8S, ImmMemarg, 8, 1},
	"v128.load8x8_u":    {KindSIMD, wasm.SimdV128Load8x8U, ImmMemarg, 8, 1},
	"v128.load16x4_s":   {KindSIMD, wasm.SimdV128Load16x4S, ImmMemarg, 8, 1},
	"v128.load16x4_u":   {KindSIMD, wasm.SimdV128Load16x4U, ImmMemarg, 8, 1},
	"v128.load32x2_s":   {KindSIMD, wasm.SimdV128Load32x2S, ImmMemarg, 8, 1},
	"v128.load32x2_u":   {KindSIMD, wasm.SimdV128Load32x2U, ImmMemarg, 8, 1},
	"v128.load8_splat":  {KindSIMD, wasm.SimdV128Load8Splat, ImmMemarg, 1, 1},
	"v128.load16_splat": {KindSIMD, wasm.SimdV128Load16Splat, ImmMemarg, 2, 1},
	"v128.load32_splat": {KindSIMD, wasm.SimdV128Load32Splat, ImmMemarg, 4, 1},
	"v128.load64_splat": {KindSIMD, wasm.SimdV128Load64Splat, ImmMemarg, 8, 1},
	"v128.load32_zero":  {KindSIMD, wasm.SimdV128Load32Zero, ImmMemarg, 4, 1},
	"v128.load64_zero":  {KindSIMD, wasm.SimdV128Load64Zero, ImmMemarg, 8, 1},
	"v128.store":        {KindSIMD, wasm.SimdV128Store, ImmMemarg, 16, 2},

	"v128.not":       {KindSIMD, wasm.SimdV128Not, ImmNone, 0, 1},
	"v128.and":       {KindSIMD, wasm.SimdV128And, ImmNone, 0, 2},
	"v128.andnot":    {KindSIMD, wasm.SimdV128AndNot, ImmNone, 0, 2},
	"v128.or":        {KindSIMD, wasm.SimdV128Or, ImmNone, 0, 2},
	"v128.xor":       {KindSIMD, wasm.SimdV128Xor, ImmNone, 0, 2},
	"v128.bitselect": {KindSIMD, wasm.SimdV128Bitselect, ImmNone, 0, 3},
	"v128.any_true":  {KindSIMD, wasm.SimdV128AnyTrue, ImmNone, 0, 1},

	"i8x16.splat": {KindSIMD, wasm.SimdI8x16Splat, ImmNone, 0, 1},
	"i16x8.splat": {KindSIMD, wasm.SimdI16x8Splat, ImmNone, 0, 1},
	"i32x4.splat": {KindSIMD, wasm.SimdI32x4Splat, ImmNone, 0, 1},
	"i64x2.splat": {KindSIMD, wasm.SimdI64x2Splat, ImmNone, 0, 1},
	"f32x4.splat": {KindSIMD, wasm.SimdF32x4Splat, ImmNone, 0, 1},
	"f64x2.splat": {KindSIMD, wasm.SimdF64x2Splat, ImmNone, 0, 1},

	"i8x16.shuffle": {KindSIMD, wasm.SimdI8x16Shuffle, ImmShuffle, 0, 2},
	"i8x16.swizzle": {KindSIMD, wasm.SimdI8x16Swizzle, ImmNone, 0, 2},

	"i8x16.abs":            {KindSIMD, wasm.SimdI8x16Abs, ImmNone, 0, 1},
	"i8x16.neg":            {KindSIMD, wasm.SimdI8x16Neg, ImmNone, 0, 1},
	"i8x16.all_true":       {KindSIMD, wasm.SimdI8x16AllTrue, ImmNone, 0, 1},
	"i8x16.bitmask":        {KindSIMD, wasm.SimdI8x16Bitmask, ImmNone, 0, 1},
	"i8x16.shl":            {KindSIMD, wasm.SimdI8x16Shl, ImmNone, 0, 2},
	"i8x16.shr_s":          {KindSIMD, wasm.SimdI8x16ShrS, ImmNone, 0, 2},
	"i8x16.shr_u":          {KindSIMD, wasm.SimdI8x16ShrU, ImmNone, 0, 2},
	"i8x16.add":            {KindSIMD, wasm.SimdI8x16Add, ImmNone, 0, 2},
	"i8x16.add_sat_s":      {KindSIMD, wasm.SimdI8x16AddSatS, ImmNone, 0, 2},
	"i8x16.add_sat_u":      {KindSIMD, wasm.SimdI8x16AddSatU, ImmNone, 0, 2},
	"i8x16.sub":            {KindSIMD, wasm.SimdI8x16Sub, ImmNone, 0, 2},
	"i8x16.sub_sat_s":      {KindSIMD, wasm.SimdI8x16SubSatS, ImmNone, 0, 2},
	"i8x16.sub_sat_u":      {KindSIMD, wasm.SimdI8x16SubSatU, ImmNone, 0, 2},
	"i8x16.narrow_i16x8_s": {KindSIMD, wasm.SimdI8x16NarrowI16x8S, ImmNone, 0, 2},
	"i8x16.narrow_i16x8_u": {KindSIMD, wasm.SimdI8x16NarrowI16x8U, ImmNone, 0, 2},

	"i16x8.abs":       {KindSIMD, wasm.SimdI16x8Abs, ImmNone, 0, 1},
	"i16x8.neg":       {KindSIMD, wasm.SimdI16x8Neg, ImmNone, 0, 1},
	"i16x8.all_true":  {KindSIMD, wasm.SimdI16x8AllTrue, ImmNone, 0, 1},
	"i16x8.bitmask":   {KindSIMD, wasm.SimdI16x8Bitmask, ImmNone, 0, 1},
	"i16x8.shl":       {KindSIMD, wasm.SimdI16x8Shl, ImmNone, 0, 2},
	"i16x8.shr_s":     {KindSIMD, wasm.SimdI16x8ShrS, ImmNone, 0, 2},
	"i16x8.shr_u":     {KindSIMD, wasm.SimdI16x8ShrU, ImmNone, 0, 2},
	"i16x8.add":       {KindSIMD, wasm.SimdI16x8Add, ImmNone, 0, 2},
	"i16x8.add_sat_s": {KindSIMD, wasm.SimdI16x8AddSatS, ImmNone, 0, 2},
	"i16x8.add_sat_u": {KindSIMD, wasm.SimdI16x8AddSatU, ImmNone, 0, 2},
	"i16x8.sub":       {KindSIMD, wasm.SimdI16x8Sub, ImmNone, 0, 2},
	"i16x8.sub_sat_s": {KindSIMD, wasm.SimdI16x8SubSatS, ImmNone, 0, 2},
	"i16x8.sub_sat_u": {KindSIMD, wasm.SimdI16x8SubSatU, ImmNone, 0, 2},
	"i16x8.mul":       {KindSIMD, wasm.SimdI16x8Mul, ImmNone, 0, 2},

	"i32x4.abs":      {KindSIMD, wasm.SimdI32x4Abs, ImmNone, 0, 1},
	"i32x4.neg":      {KindSIMD, wasm.SimdI32x4Neg, ImmNone, 0, 1},
	"i32x4.all_true": {KindSIMD, wasm.SimdI32x4AllTrue, ImmNone, 0, 1},
	"i32x4.bitmask":  {KindSIMD, wasm.SimdI32x4Bitmask, ImmNone, 0, 1},
	"i32x4.shl":      {KindSIMD, wasm.SimdI32x4Shl, ImmNone, 0, 2},
	"i32x4.shr_s":    {KindSIMD, wasm.SimdI32x4ShrS, ImmNone, 0, 2},
	"i32x4.shr_u":    {KindSIMD, wasm.SimdI32x4ShrU, ImmNone, 0, 2},
	"i32x4.add":      {KindSIMD, wasm.SimdI32x4Add, ImmNone, 0, 2},
	"i32x4.sub":      {KindSIMD, wasm.SimdI32x4Sub, ImmNone, 0, 2},
	"i32x4.mul":      {KindSIMD, wasm.SimdI32x4Mul, ImmNone, 0, 2},

	"i64x2.abs":      {KindSIMD, wasm.SimdI64x2Abs, ImmNone, 0, 1},
	"i64x2.neg":      {KindSIMD, wasm.SimdI64x2Neg, ImmNone, 0, 1},
	"i64x2.all_true": {KindSIMD, wasm.SimdI64x2AllTrue, ImmNone, 0, 1},
	"i64x2.bitmask":  {KindSIMD, wasm.SimdI64x2Bitmask, ImmNone, 0, 1},
	"i64x2.shl":      {KindSIMD, wasm.SimdI64x2Shl, ImmNone, 0, 2},
	"i64x2.shr_s":    {KindSIMD, wasm.SimdI64x2ShrS, ImmNone, 0, 2},
	"i64x2.shr_u":    {KindSIMD, wasm.SimdI64x2ShrU, ImmNone, 0, 2},
	"i64x2.add":      {KindSIMD, wasm.SimdI64x2Add, ImmNone, 0, 2},
	"i64x2.sub":      {KindSIMD, wasm.SimdI64x2Sub, ImmNone, 0, 2},
	"i64x2.mul":      {KindSIMD, wasm.SimdI64x2Mul, ImmNone, 0, 2},

	"f32x4.abs":     {KindSIMD, wasm.SimdF32x4Abs, ImmNone, 0, 1},
	"f32x4.neg":     {KindSIMD, wasm.SimdF32x4Neg, ImmNone, 0, 1},
	"f32x4.sqrt":    {KindSIMD, wasm.SimdF32x4Sqrt, ImmNone, 0, 1},
	"f32x4.ceil":    {KindSIMD, wasm.SimdF32x4Ceil, ImmNone, 0, 1},
	"f32x4.floor":   {KindSIMD, wasm.SimdF32x4Floor, ImmNone, 0, 1},
	"f32x4.trunc":   {KindSIMD, wasm.SimdF32x4Trunc, ImmNone, 0, 1},
	"f32x4.nearest": {KindSIMD, wasm.SimdF32x4Nearest, ImmNone, 0, 1},
	"f32x4.add":     {KindSIMD, wasm.SimdF32x4Add, ImmNone, 0, 2},
	"f32x4.sub":     {KindSIMD, wasm.SimdF32x4Sub, ImmNone, 0, 2},
	"f32x4.mul":     {KindSIMD, wasm.SimdF32x4Mul, ImmNone, 0, 2},
	"f32x4.div":     {KindSIMD, wasm.SimdF32x4Div, ImmNone, 0, 2},
	"f32x4.min":     {KindSIMD, wasm.SimdF32x4Min, ImmNone, 0, 2},
	"f32x4.max":     {KindSIMD, wasm.SimdF32x4Max, ImmNone, 0, 2},
	"f32x4.pmin":    {KindSIMD, wasm.SimdF32x4Pmin, ImmNone, 0, 2},
	"f32x4.pmax":    {KindSIMD, wasm.SimdF32x4Pmax, ImmNone, 0, 2},

	"f64x2.abs":     {KindSIMD, wasm.SimdF64x2Abs, ImmNone, 0, 1},
	"f64x2.neg":     {KindSIMD, wasm.SimdF64x2Neg, ImmNone, 0, 1},
	"f64x2.sqrt":    {KindSIMD, wasm.SimdF64x2Sqrt, ImmNone, 0, 1},
	"f64x2.ceil":    {KindSIMD, wasm.SimdF64x2Ceil, ImmNone, 0, 1},
	"f64x2.floor":   {KindSIMD, wasm.SimdF64x2Floor, ImmNone, 0, 1},
	"f64x2.trunc":   {KindSIMD, wasm.SimdF64x2Trunc, ImmNone, 0, 1},
	"f64x2.nearest": {KindSIMD, wasm.SimdF64x2Nearest, ImmNone, 0, 1},
	"f64x2.add":     {KindSIMD, wasm.SimdF64x2Add, ImmNone, 0, 2},
	"f64x2.sub":     {KindSIMD, wasm.SimdF64x2Sub, ImmNone, 0, 2},
	"f64x2.mul":     {KindSIMD, wasm.SimdF64x2Mul, ImmNone, 0, 2},
	"f64x2.div":     {KindSIMD, wasm.SimdF64x2Div, ImmNone, 0, 2},
	"f64x2.min":     {KindSIMD, wasm.SimdF64x2Min, ImmNone, 0, 2},
	"f64x2.max":     {KindSIMD, wasm.SimdF64x2Max, ImmNone, 0, 2},
	"f64x2.pmin":    {KindSIMD, wasm.SimdF64x2Pmin, ImmNone, 0, 2},
	"f64x2.pmax":    {KindSIMD, wasm.SimdF64x2Pmax, ImmNone, 0, 2},

	"i8x16.extract_lane_s": {KindSIMD, wasm.SimdI8x16ExtractLaneS, ImmLane, 0, 1},
	"i8x16.extract_lane_u": {KindSIMD, wasm.SimdI8x16ExtractLaneU, ImmLane, 0, 1},
	"i8x16.replace_lane":   {KindSIMD, wasm.SimdI8x16ReplaceLane, ImmLane, 0, 2},
	"i16x8.extract_lane_s": {KindSIMD, wasm.SimdI16x8ExtractLaneS, ImmLane, 0, 1},
	"i16x8.extract_lane_u": {KindSIMD, wasm.SimdI16x8ExtractLaneU, ImmLane, 0, 1},
	"i16x8.replace_lane":   {KindSIMD, wasm.SimdI16x8ReplaceLane, ImmLane, 0, 2},
	"i32x4.extract_lane":   {KindSIMD, wasm.SimdI32x4ExtractLane, ImmLane, 0, 1},
	"i32x4.replace_lane":   {KindSIMD, wasm.SimdI32x4ReplaceLane, ImmLane, 0, 2},
	"i64x2.extract_lane":   {KindSIMD, wasm.SimdI64x2ExtractLane, ImmLane, 0, 1},
	"i64x2.replace_lane":   {KindSIMD, wasm.SimdI64x2ReplaceLane, ImmLane, 0, 2},
	"f32x4.extract_lane":   {KindSIMD, wasm.SimdF32x4ExtractLane, ImmLane, 0, 1},
	"f32x4.replace_lane":   {KindSIMD, wasm.SimdF32x4ReplaceLane, ImmLane, 0, 2},
	"f64x2.extract_lane":   {KindSIMD, wasm.SimdF64x2ExtractLane, ImmLane, 0, 1},
	"f64x2.replace_lane":   {KindSIMD, wasm.SimdF64x2ReplaceLane, ImmLane, 0, 2},

	// Atomics (0xFE prefix)
	"memory.atomic.notify":  {KindAtomic, wasm.AtomicNotify, ImmMemarg, 4, 2},
	"memory.atomic.wait32":  {KindAtomic, wasm.AtomicWait32, ImmMemarg, 4, 3},
	"memory.atomic.wait64":  {KindAtomic, wasm.AtomicWait64, ImmMemarg, 8, 3},
	"atomic.fence":          {KindAtomic, wasm.AtomicFence, ImmNone, 0, 0},
	"i32.atomic.load":       {KindAtomic, wasm.AtomicI32Load, ImmMemarg, 4, 1},
	"i64.atomic.load":       {KindAtomic, wasm.AtomicI64Load, ImmMemarg, 8, 1},
	"i32.atomic.load8_u":    {KindAtomic, wasm.AtomicI32Load8U, ImmMemarg, 1, 1},
	"i32.atomic.load16_u":   {KindAtomic, wasm.AtomicI32Load16U, ImmMemarg, 2, 1},
	"i64.atomic.load8_u":    {KindAtomic, wasm.AtomicI64Load8U, ImmMemarg, 1, 1},
	"i64.atomic.load16_u":   {KindAtomic, wasm.AtomicI64Load16U, ImmMemarg, 2, 1},
	"i64.atomic.load32_u":   {KindAtomic, wasm.AtomicI64Load32U, ImmMemarg, 4, 1},
	"i32.atomic.store":      {KindAtomic, wasm.AtomicI32Store, ImmMemarg, 4, 2},
	"i64.atomic.store":      {KindAtomic, wasm.AtomicI64Store, ImmMemarg, 8, 2},
	"i32.atomic.store8":     {KindAtomic, wasm.AtomicI32Store8, ImmMemarg, 1, 2},
	"i32.atomic.store16":    {KindAtomic, wasm.AtomicI32Store16, ImmMemarg, 2, 2},
	"i64.atomic.store8":     {KindAtomic, wasm.AtomicI64Store8, ImmMemarg, 1, 2},
	"i64.atomic.store16":    {KindAtomic, wasm.AtomicI64Store16, ImmMemarg, 2, 2},
	"i64.atomic.store32":    {KindAtomic, wasm.AtomicI64Store32, ImmMemarg, 4, 2},

	"i32.atomic.rmw.add":          {KindAtomic, wasm.AtomicI32RmwAdd, ImmMemarg, 4, 2},
	"i64.atomic.rmw.add":          {KindAtomic, wasm.AtomicI64RmwAdd, ImmMemarg, 8, 2},
	"i32.atomic.rmw8.add_u":       {KindAtomic, wasm.AtomicI32Rmw8AddU, ImmMemarg, 1, 2},
	"i32.atomic.rmw16.add_u":      {KindAtomic, wasm.AtomicI32Rmw16AddU, ImmMemarg, 2, 2},
	"i64.atomic.rmw8.add_u":       {KindAtomic, wasm.AtomicI64Rmw8AddU, ImmMemarg, 1, 2},
	"i64.atomic.rmw16.add_u":      {KindAtomic, wasm.AtomicI64Rmw16AddU, ImmMemarg, 2, 2},
	"i64.atomic.rmw32.add_u":      {KindAtomic, wasm.AtomicI64Rmw32AddU, ImmMemarg, 4, 2},
	"i32.atomic.rmw.sub":          {KindAtomic, wasm.AtomicI32RmwSub, ImmMemarg, 4, 2},
	"i64.atomic.rmw.sub":          {KindAtomic, wasm.AtomicI64RmwSub, ImmMemarg, 8, 2},
	"i32.atomic.rmw8.sub_u":       {KindAtomic, wasm.AtomicI32Rmw8SubU, ImmMemarg, 1, 2},
	"i32.atomic.rmw16.sub_u":      {KindAtomic, wasm.AtomicI32Rmw16SubU, ImmMemarg, 2, 2},
	"i64.atomic.rmw8.sub_u":       {KindAtomic, wasm.AtomicI64Rmw8SubU, ImmMemarg, 1, 2},
	"i64.atomic.rmw16.sub_u":      {KindAtomic, wasm.AtomicI64Rmw16SubU, ImmMemarg, 2, 2},
	"i64.atomic.rmw32.sub_u":      {KindAtomic, wasm.AtomicI64Rmw32SubU, ImmMemarg, 4, 2},
	"i32.atomic.rmw.and":          {KindAtomic, wasm.AtomicI32RmwAnd, ImmMemarg, 4, 2},
	"i64.atomic.rmw.and":          {KindAtomic, wasm.AtomicI64RmwAnd, ImmMemarg, 8, 2},
	"i32.atomic.rmw8.and_u":       {KindAtomic, wasm.AtomicI32Rmw8AndU, ImmMemarg, 1, 2},
	"i32.atomic.rmw16.and_u":      {KindAtomic, wasm.AtomicI32Rmw16AndU, ImmMemarg, 2, 2},
	"i64.atomic.rmw8.and_u":       {KindAtomic, wasm.AtomicI64Rmw8AndU, ImmMemarg, 1, 2},
	"i64.atomic.rmw16.and_u":      {KindAtomic, wasm.AtomicI64Rmw16AndU, ImmMemarg, 2, 2},
	"i64.atomic.rmw32.and_u":      {KindAtomic, wasm.AtomicI64Rmw32AndU, ImmMemarg, 4, 2},
	"i32.atomic.rmw.or":           {KindAtomic, wasm.AtomicI32RmwOr, ImmMemarg, 4, 2},
	"i64.atomic.rmw.or":           {KindAtomic, wasm.AtomicI64RmwOr, ImmMemarg, 8, 2},
	"i32.atomic.rmw8.or_u":        {KindAtomic, wasm.AtomicI32Rmw8OrU, ImmMemarg, 1, 2},
	"i32.atomic.rmw16.or_u":       {KindAtomic, wasm.AtomicI32Rmw16OrU, ImmMemarg, 2, 2},
	"i64.atomic.rmw8.or_u":        {KindAtomic, wasm.AtomicI64Rmw8OrU, ImmMemarg, 1, 2},
	"i64.atomic.rmw16.or_u":       {KindAtomic, wasm.AtomicI64Rmw16OrU, ImmMemarg, 2, 2},
	"i64.atomic.rmw32.or_u":       {KindAtomic, wasm.AtomicI64Rmw32OrU, ImmMemarg, 4, 2},
	"i32.atomic.rmw.xor":          {KindAtomic, wasm.AtomicI32RmwXor, ImmMemarg, 4, 2},
	"i64.atomic.rmw.xor":          {KindAtomic, wasm.AtomicI64RmwXor, ImmMemarg, 8, 2},
	"i32.atomic.rmw8.xor_u":       {KindAtomic, wasm.AtomicI32Rmw8XorU, ImmMemarg, 1, 2},
	"i32.atomic.rmw16.xor_u":      {KindAtomic, wasm.AtomicI32Rmw16XorU, ImmMemarg, 2, 2},
	"i64.atomic.rmw8.xor_u":       {KindAtomic, wasm.AtomicI64Rmw8XorU, ImmMemarg, 1, 2},
	"i64.atomic.rmw16.xor_u":      {KindAtomic, wasm.AtomicI64Rmw16XorU, ImmMemarg, 2, 2},
	"i64.atomic.rmw32.xor_u":      {KindAtomic, wasm.AtomicI64Rmw32XorU, ImmMemarg, 4, 2},
	"i32.atomic.rmw.xchg":         {KindAtomic, wasm.AtomicI32RmwXchg, ImmMemarg, 4, 2},
	"i64.atomic.rmw.xchg":         {KindAtomic, wasm.AtomicI64RmwXchg, ImmMemarg, 8, 2},
	"i32.atomic.rmw8.xchg_u":      {KindAtomic, wasm.AtomicI32Rmw8XchgU, ImmMemarg, 1, 2},
	"i32.atomic.rmw16.xchg_u":     {KindAtomic, wasm.AtomicI32Rmw16XchgU, ImmMemarg, 2, 2},
	"i64.atomic.rmw8.xchg_u":      {KindAtomic, wasm.AtomicI64Rmw8XchgU, ImmMemarg, 1, 2},
	"i64.atomic.rmw16.xchg_u":     {KindAtomic, wasm.AtomicI64Rmw16XchgU, ImmMemarg, 2, 2},
	"i64.atomic.rmw32.xchg_u":     {KindAtomic, wasm.AtomicI64Rmw32XchgU, ImmMemarg, 4, 2},
	"i32.atomic.rmw.cmpxchg":      {KindAtomic, wasm.AtomicI32RmwCmpxchg, ImmMemarg, 4, 3},
	"i64.atomic.rmw.cmpxchg":      {KindAtomic, wasm.AtomicI64RmwCmpxchg, ImmMemarg, 8, 3},
	"i32.atomic.rmw8.cmpxchg_u":   {KindAtomic, wasm.AtomicI32Rmw8CmpxchgU, ImmMemarg, 1, 3},
	"i32.atomic.rmw16.cmpxchg_u":  {KindAtomic, wasm.AtomicI32Rmw16CmpxchgU, ImmMemarg, 2, 3},
	"i64.atomic.rmw8.cmpxchg_u":   {KindAtomic, wasm.AtomicI64Rmw8CmpxchgU, ImmMemarg, 1, 3},
	"i64.atomic.rmw16.cmpxchg_u":  {KindAtomic, wasm.AtomicI64Rmw16CmpxchgU, ImmMemarg, 2, 3},
	"i64.atomic.rmw32.cmpxchg_u":  {KindAtomic, wasm.AtomicI64Rmw32CmpxchgU, ImmMemarg, 4, 3},
}

// valTypes maps the textual value-type names used in IR nodes (func
// params/results/locals, block types, const nodes) to their binary byte.
var valTypes = map[string]wasm.ValType{
	"i32":      wasm.ValI32,
	"i64":      wasm.ValI64,
	"f32":      wasm.ValF32,
	"f64":      wasm.ValF64,
	"v128":     wasm.ValV128,
	"funcref":  wasm.ValFuncRef,
	"externref": wasm.ValExtern,
}

// ValType looks up the binary value-type byte for a textual type name.
func ValType(name string) (wasm.ValType, bool) {
	vt, ok := valTypes[name]
	return vt, ok
}
