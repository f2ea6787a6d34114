package emit

import (
	"strconv"
	"strings"

	"github.com/wasmforge/forge/wasm"
)

// signature is a function type: params then results, in order.
type signature struct {
	Params  []wasm.ValType
	Results []wasm.ValType
}

// key returns the canonical string a signature is deduplicated by.
func (s signature) key() string {
	var b strings.Builder
	for _, p := range s.Params {
		b.WriteByte(byte(p))
		b.WriteByte(',')
	}
	b.WriteByte(':')
	for _, r := range s.Results {
		b.WriteByte(byte(r))
		b.WriteByte(',')
	}
	return b.String()
}

// typeTable deduplicates signatures and assigns each a stable index in
// first-seen order.
type typeTable struct {
	order []signature
	index map[string]uint32
}

func newTypeTable() *typeTable {
	return &typeTable{index: make(map[string]uint32)}
}

// intern returns sig's type index, assigning a new one if this is the
// first time sig has been seen.
func (t *typeTable) intern(sig signature) uint32 {
	k := sig.key()
	if idx, ok := t.index[k]; ok {
		return idx
	}
	idx := uint32(len(t.order))
	t.order = append(t.order, sig)
	t.index[k] = idx
	return idx
}

// numericLabel reports whether s is a bare non-negative integer, the
// fallback form accepted for unresolved branch labels, local names, and
// function names.
func numericLabel(s string) (uint32, bool) {
	if s == "" {
		return 0, false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, false
		}
	}
	v, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, false
	}
	return uint32(v), true
}
