package cylinder

import (
	"errors"
	"fmt"
)

// Kind classifies a design rule violation so callers can tell the
// "fix your numbers" classes of failure apart.
type Kind int

const (
	KindUnknown Kind = iota
	// KindInvalidDimension covers geometric impossibilities: non-positive
	// lengths or diameters, rod >= bore, gland guide length rule.
	KindInvalidDimension
	// KindInvalidPressure covers non-positive pressure and pressures the
	// single-wall Lame solve cannot satisfy.
	KindInvalidPressure
	// KindInvalidStroke covers stroke/closed-length/margin rule violations.
	KindInvalidStroke
	// KindMountingValidation covers mounting geometry rules and unknown
	// mounting categories during deserialization.
	KindMountingValidation
	// KindBucklingAnalysis is reserved. No current code path raises it:
	// buckling cannot fail on a validated cylinder and mounting.
	KindBucklingAnalysis
)

func (k Kind) String() string {
	switch k {
	case KindInvalidDimension:
		return "invalid dimension"
	case KindInvalidPressure:
		return "invalid pressure"
	case KindInvalidStroke:
		return "invalid stroke"
	case KindMountingValidation:
		return "mounting validation"
	case KindBucklingAnalysis:
		return "buckling analysis"
	}
	return "unknown"
}

// Error is the single failure type of the design model. Param, when set,
// names the offending input using its data-interchange key.
type Error struct {
	Kind    Kind
	Param   string
	Message string
}

func (e *Error) Error() string {
	if e.Param != "" {
		return fmt.Sprintf("%s: %s: %s", e.Kind, e.Param, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func newError(kind Kind, param, format string, args ...any) *Error {
	return &Error{Kind: kind, Param: param, Message: fmt.Sprintf(format, args...)}
}

// NewDimensionError reports a geometric impossibility on the named parameter.
func NewDimensionError(param, format string, args ...any) *Error {
	return newError(KindInvalidDimension, param, format, args...)
}

// NewPressureError reports an unusable pressure value.
func NewPressureError(param, format string, args ...any) *Error {
	return newError(KindInvalidPressure, param, format, args...)
}

// NewStrokeError reports a stroke or length-budget rule violation.
func NewStrokeError(param, format string, args ...any) *Error {
	return newError(KindInvalidStroke, param, format, args...)
}

// NewMountingError reports a mounting geometry or category violation.
func NewMountingError(param, format string, args ...any) *Error {
	return newError(KindMountingValidation, param, format, args...)
}

// IsKind reports whether err is (or wraps) a design *Error of the given kind.
func IsKind(err error, kind Kind) bool {
	var de *Error
	return errors.As(err, &de) && de.Kind == kind
}
