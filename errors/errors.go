package errors

import (
	"fmt"
	"strings"
)

// Phase indicates which stage of the pipeline produced the error.
type Phase string

const (
	PhaseEmit      Phase = "emit"      // IR to binary
	PhaseOptimize  Phase = "optimize"  // constant fold / peephole / dce / unroll
	PhaseVectorize Phase = "vectorize" // scalar to SIMD rewrite
	PhaseProbe     Phase = "probe"     // engine feature detection
)

// Kind categorizes the error within its phase.
type Kind string

const (
	KindUnknownOpcode        Kind = "unknown_opcode"
	KindUnresolvedName       Kind = "unresolved_name"
	KindMalformedControl     Kind = "malformed_control"
	KindEncodingOverflow     Kind = "encoding_overflow"
	KindUnsupportedConstType Kind = "unsupported_const_type"
)

// Error is the structured error type returned by emit, optimize, vectorize,
// and probe.
type Error struct {
	Value  any
	Cause  error
	Phase  Phase
	Kind   Kind
	Detail string
	Path   []string // e.g. ["func", "add3", "body", "2"] - node path to the fault
}

// Error implements the error interface.
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if len(e.Path) > 0 {
		b.WriteString(" at ")
		b.WriteString(strings.Join(e.Path, "."))
	}

	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error's phase and kind.
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// Builder provides structured error construction.
type Builder struct {
	err Error
}

// New creates a new error builder for the given phase and kind.
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase: phase,
			Kind:  kind,
		},
	}
}

// Path sets the node path where the fault occurred.
func (b *Builder) Path(path ...string) *Builder {
	b.err.Path = path
	return b
}

// Value sets the offending value.
func (b *Builder) Value(v any) *Builder {
	b.err.Value = v
	return b
}

// Cause sets the underlying error.
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message.
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error.
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for the five error modes emit can produce.

// UnknownOpcode creates an error for an IR node naming an operation the
// opcode table has no entry for.
func UnknownOpcode(path []string, op string) *Error {
	return &Error{
		Phase:  PhaseEmit,
		Kind:   KindUnknownOpcode,
		Path:   path,
		Detail: fmt.Sprintf("unknown operation %q", op),
		Value:  op,
	}
}

// UnresolvedName creates an error for a name reference (local, global,
// function, or label) that does not resolve within its declaring scope.
func UnresolvedName(path []string, kind, name string) *Error {
	return &Error{
		Phase:  PhaseEmit,
		Kind:   KindUnresolvedName,
		Path:   path,
		Detail: fmt.Sprintf("unresolved %s %q", kind, name),
		Value:  name,
	}
}

// MalformedControl creates an error for a control-flow node that violates a
// structural invariant (an else with no if, a branch with no enclosing
// label at the required depth, and so on).
func MalformedControl(path []string, detail string) *Error {
	return &Error{
		Phase:  PhaseEmit,
		Kind:   KindMalformedControl,
		Path:   path,
		Detail: detail,
	}
}

// EncodingOverflow creates an error for a numeric immediate that does not
// fit the target width (a memarg offset above what LEB128 u32 can carry,
// a branch depth beyond the label stack, and so on).
func EncodingOverflow(path []string, detail string, value any) *Error {
	return &Error{
		Phase:  PhaseEmit,
		Kind:   KindEncodingOverflow,
		Path:   path,
		Detail: detail,
		Value:  value,
	}
}

// UnsupportedConstType creates an error for a const node whose ValueType
// isn't one of i32/i64/f32/f64/v128, or whose Value isn't the Go type the
// ValueType requires.
func UnsupportedConstType(path []string, valueType string) *Error {
	return &Error{
		Phase:  PhaseEmit,
		Kind:   KindUnsupportedConstType,
		Path:   path,
		Detail: fmt.Sprintf("unsupported const type %q", valueType),
		Value:  valueType,
	}
}

// Wrap wraps an existing error with a phase, kind, and message, for
// passes that surface a lower-level failure (e.g. probe wrapping a wazero
// compile error).
func Wrap(phase Phase, kind Kind, cause error, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   kind,
		Detail: detail,
		Cause:  cause,
	}
}
