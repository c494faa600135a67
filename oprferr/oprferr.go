// Package oprferr defines the error kinds surfaced across the OPRF engine.
//
// Every fallible function in field, hash2curve, oprf, and transport returns
// an *Error wrapping one of the Kind values below, so callers can branch on
// failure class with errors.Is without parsing message strings.
package oprferr

import "fmt"

// Kind classifies why an operation failed.
type Kind int

const (
	// InvalidHex marks malformed hex in a wire request or response.
	InvalidHex Kind = iota
	// OffCurvePoint marks a decoded point that fails the curve equation or is the identity.
	OffCurvePoint
	// InvalidLength marks expand_message_xmd arguments outside their legal range.
	InvalidLength
	// InvalidDst marks a DST that would exceed 255 bytes after the oversize-DST hashing path.
	InvalidDst
	// DeriveKeyPairExhausted marks DeriveKeyPair's counter overflowing 255 without a non-zero scalar.
	DeriveKeyPairExhausted
	// MissingHash marks SHA-256 being unavailable from the runtime.
	MissingHash
	// WeakScalar marks a zero scalar (skS or r) surviving generation.
	WeakScalar
)

func (k Kind) String() string {
	switch k {
	case InvalidHex:
		return "invalid hex"
	case OffCurvePoint:
		return "point not on curve"
	case InvalidLength:
		return "invalid length"
	case InvalidDst:
		return "invalid dst"
	case DeriveKeyPairExhausted:
		return "derive key pair exhausted"
	case MissingHash:
		return "missing hash implementation"
	case WeakScalar:
		return "weak scalar"
	default:
		return "unknown oprf error"
	}
}

// Error is the concrete error type returned by this module.
type Error struct {
	Kind Kind
	Op   string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Op, e.Kind, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Op, e.Kind)
}

func (e *Error) Unwrap() error { return e.Err }

// Is allows errors.Is(err, SomeKind) by comparing against a bare Kind value
// wrapped in an *Error with no cause, mirroring the stdlib sentinel pattern.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}

// New constructs an *Error for op/kind with no wrapped cause.
func New(op string, kind Kind) *Error {
	return &Error{Op: op, Kind: kind}
}

// Wrap constructs an *Error for op/kind wrapping cause.
func Wrap(op string, kind Kind, cause error) *Error {
	return &Error{Op: op, Kind: kind, Err: cause}
}

// Sentinel returns a bare *Error usable as an errors.Is target for kind.
func Sentinel(kind Kind) *Error {
	return &Error{Kind: kind}
}
