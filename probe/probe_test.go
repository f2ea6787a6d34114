package probe

import "testing"

func TestIsSimdSupported_Idempotent(t *testing.T) {
	first := IsSimdSupported()
	second := IsSimdSupported()
	if first != second {
		t.Errorf("result changed across calls: %v then %v", first, second)
	}
}

func TestIsThreadsSupported_Idempotent(t *testing.T) {
	first := IsThreadsSupported()
	second := IsThreadsSupported()
	if first != second {
		t.Errorf("result changed across calls: %v then %v", first, second)
	}
}

func TestCompiles_RejectsGarbage(t *testing.T) {
	if compiles([]byte{0x00, 0x01, 0x02}, 0) {
		t.Error("expected garbage bytes to fail compilation")
	}
}
