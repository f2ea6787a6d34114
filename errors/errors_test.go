package errors

import (
	"errors"
	"testing"
)

func TestError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		contains []string
	}{
		{
			name: "full error",
			err: &Error{
				Phase:  PhaseEmit,
				Kind:   KindUnresolvedName,
				Path:   []string{"func", "add3", "body", "2"},
				Detail: "local \"$missing\" not declared",
			},
			contains: []string{"[emit]", "unresolved_name", "func.add3.body.2", "not declared"},
		},
		{
			name: "minimal error",
			err: &Error{
				Phase: PhaseOptimize,
				Kind:  KindMalformedControl,
			},
			contains: []string{"[optimize]", "malformed_control"},
		},
		{
			name: "error with cause",
			err: &Error{
				Phase:  PhaseProbe,
				Kind:   KindUnsupportedConstType,
				Detail: "engine rejected module",
				Cause:  errors.New("underlying error"),
			},
			contains: []string{"[probe]", "unsupported_const_type", "engine rejected module", "caused by", "underlying error"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, s := range tt.contains {
				if !containsSubstring(msg, s) {
					t.Errorf("error message %q does not contain %q", msg, s)
				}
			}
		})
	}
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := &Error{
		Phase: PhaseEmit,
		Kind:  KindEncodingOverflow,
		Cause: cause,
	}

	if !errors.Is(err.Unwrap(), cause) {
		t.Error("Unwrap did not return cause")
	}

	if !errors.Is(errors.Unwrap(err), cause) {
		t.Error("errors.Unwrap did not return cause")
	}
}

func TestError_Is(t *testing.T) {
	err := &Error{
		Phase: PhaseEmit,
		Kind:  KindUnknownOpcode,
		Path:  []string{"foo"},
	}

	if !err.Is(&Error{Phase: PhaseEmit, Kind: KindUnknownOpcode}) {
		t.Error("Is should match same phase and kind")
	}

	if err.Is(&Error{Phase: PhaseOptimize, Kind: KindUnknownOpcode}) {
		t.Error("Is should not match different phase")
	}

	if err.Is(&Error{Phase: PhaseEmit, Kind: KindMalformedControl}) {
		t.Error("Is should not match different kind")
	}

	target := &Error{Phase: PhaseEmit, Kind: KindUnknownOpcode}
	if !errors.Is(err, target) {
		t.Error("errors.Is should match")
	}
}

func TestBuilder(t *testing.T) {
	cause := errors.New("root")
	err := New(PhaseEmit, KindUnresolvedName).
		Path("func", "main", "body", "0").
		Value("$x").
		Cause(cause).
		Detail("expected %s, got %s", "local", "global").
		Build()

	if err.Phase != PhaseEmit {
		t.Errorf("Phase = %v, want %v", err.Phase, PhaseEmit)
	}
	if err.Kind != KindUnresolvedName {
		t.Errorf("Kind = %v, want %v", err.Kind, KindUnresolvedName)
	}
	if len(err.Path) != 4 || err.Path[0] != "func" || err.Path[1] != "main" {
		t.Errorf("Path = %v, want [func main body 0]", err.Path)
	}
	if err.Value != "$x" {
		t.Errorf("Value = %v, want '$x'", err.Value)
	}
	if !errors.Is(err.Cause, cause) {
		t.Errorf("Cause = %v, want %v", err.Cause, cause)
	}
	if err.Detail != "expected local, got global" {
		t.Errorf("Detail = %v, want 'expected local, got global'", err.Detail)
	}
}

func TestConvenienceConstructors(t *testing.T) {
	t.Run("UnknownOpcode", func(t *testing.T) {
		err := UnknownOpcode([]string{"func", "f", "body", "1"}, "i32.frobnicate")
		if err.Kind != KindUnknownOpcode {
			t.Errorf("Kind = %v, want %v", err.Kind, KindUnknownOpcode)
		}
		if !containsSubstring(err.Detail, "i32.frobnicate") {
			t.Errorf("Detail = %v, should name the operation", err.Detail)
		}
	})

	t.Run("UnresolvedName", func(t *testing.T) {
		err := UnresolvedName([]string{"func", "f"}, "local", "$missing")
		if err.Kind != KindUnresolvedName {
			t.Errorf("Kind = %v, want %v", err.Kind, KindUnresolvedName)
		}
		if err.Value != "$missing" {
			t.Errorf("Value = %v, want '$missing'", err.Value)
		}
	})

	t.Run("MalformedControl", func(t *testing.T) {
		err := MalformedControl([]string{"func", "f", "body", "0"}, "else with no enclosing if")
		if err.Kind != KindMalformedControl {
			t.Errorf("Kind = %v, want %v", err.Kind, KindMalformedControl)
		}
	})

	t.Run("EncodingOverflow", func(t *testing.T) {
		err := EncodingOverflow([]string{"func", "f", "body", "3"}, "branch depth exceeds label stack", 12)
		if err.Kind != KindEncodingOverflow {
			t.Errorf("Kind = %v, want %v", err.Kind, KindEncodingOverflow)
		}
		if err.Value != 12 {
			t.Errorf("Value = %v, want 12", err.Value)
		}
	})

	t.Run("UnsupportedConstType", func(t *testing.T) {
		err := UnsupportedConstType([]string{"func", "f", "body", "0"}, "anyref")
		if err.Kind != KindUnsupportedConstType {
			t.Errorf("Kind = %v, want %v", err.Kind, KindUnsupportedConstType)
		}
		if !containsSubstring(err.Detail, "anyref") {
			t.Errorf("Detail = %v, should name the type", err.Detail)
		}
	})
}

func TestWrap(t *testing.T) {
	cause := errors.New("compile failed: invalid module")
	err := Wrap(PhaseProbe, KindUnsupportedConstType, cause, "engine rejected v128 probe module")
	if err.Phase != PhaseProbe {
		t.Errorf("Phase = %v, want %v", err.Phase, PhaseProbe)
	}
	if !errors.Is(err.Cause, cause) {
		t.Errorf("Cause = %v, want %v", err.Cause, cause)
	}
}

func containsSubstring(s, substr string) bool {
	return len(s) >= len(substr) && (s == substr || len(substr) == 0 ||
		(len(s) > 0 && containsSubstringHelper(s, substr)))
}

func containsSubstringHelper(s, substr string) bool {
	for i := 0; i <= len(s)-len(substr); i++ {
		if s[i:i+len(substr)] == substr {
			return true
		}
	}
	return false
}
