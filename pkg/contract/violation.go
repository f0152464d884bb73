package contract

import (
	"election/pkg/serrors"
	"errors"
	"fmt"
	"path/filepath"
	"runtime"
	"strings"
)

var (
	// ErrAssertion is the kind of a failed internal assertion.
	ErrAssertion = serrors.NewKind("ASSERTION ERROR")
	// ErrPrecondition is the kind of a failed precondition.
	ErrPrecondition = serrors.NewKind("PRECONDITION ERROR")
	// ErrPostcondition is the kind of a failed postcondition.
	ErrPostcondition = serrors.NewKind("POSTCONDITION ERROR")
	// ErrInvariant is the kind of a failed class invariant.
	ErrInvariant = serrors.NewKind("INVARIANT ERROR")
)

// Violation describes a failed contract check: which kind of contract was
// broken, where, and the literal text of the condition.
type Violation struct {
	// Kind is one of ErrAssertion, ErrPrecondition, ErrPostcondition or ErrInvariant.
	Kind serrors.Kind
	// File is the base name of the source file holding the check.
	File string
	// Line is the line of the check inside File.
	Line int
	// Function is the package-qualified name of the function holding the check,
	// e.g. "domain.NewPerson".
	Function string
	// Expression is the condition that evaluated to false.
	Expression string
}

// newViolation builds a Violation located skip frames above its caller.
func newViolation(k serrors.Kind, expr string, skip int) *Violation {
	v := &Violation{Kind: k, Expression: expr}
	pc, file, line, ok := runtime.Caller(skip + 1)
	if !ok {
		return v
	}
	v.File = filepath.Base(file)
	v.Line = line
	if fn := runtime.FuncForPC(pc); fn != nil {
		name := fn.Name()
		if i := strings.LastIndex(name, "/"); i >= 0 {
			name = name[i+1:]
		}
		v.Function = name
	}

	return v
}

// Message returns the fixed category message of the violation kind.
func (v *Violation) Message() string {
	if v.Kind == nil {
		return "CONTRACT ERROR"
	}

	return v.Kind.Error()
}

// Error implements the error interface with a single-line summary.
func (v *Violation) Error() string {
	return fmt.Sprintf("%s: %s (%s:%d)", v.Message(), v.Expression, v.File, v.Line)
}

// Report renders the violation as a stable four-line diagnostic block.
func (v *Violation) Report() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Message    : %s\n", v.Message())
	fmt.Fprintf(&b, "File       : %s\n", v.File)
	fmt.Fprintf(&b, "Line       : %d\n", v.Line)
	fmt.Fprintf(&b, "Expression : %s\n", v.Expression)

	return b.String()
}

// Is reports whether target is the kind of this violation.
func (v *Violation) Is(target error) bool {
	return v.Kind != nil && errors.Is(v.Kind, target)
}

// As lets errors.As extract the violation kind as a serrors.Kind.
func (v *Violation) As(target any) bool {
	return v.Kind != nil && errors.As(v.Kind, target)
}

// Capture converts a *Violation panic into the error pointed to by err. It
// must be deferred directly by the function whose error return it fills.
// Panics that are not violations are re-raised untouched.
func Capture(err *error) {
	r := recover()
	if r == nil {
		return
	}
	v, ok := r.(*Violation)
	if !ok {
		panic(r)
	}
	*err = v
}

// AsViolation returns the *Violation carried by err, if any.
func AsViolation(err error) (*Violation, bool) {
	var v *Violation
	if errors.As(err, &v) {
		return v, true
	}

	return nil, false
}
