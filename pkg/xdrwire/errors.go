package xdrwire

import "fmt"

// DecodeErrorKind classifies a decode-time failure (§6, §7). Unlike
// compile-time diagnostics these travel inside generated code, not
// pkg/diag, since they describe a runtime value rather than a source
// position.
type DecodeErrorKind int

const (
	TruncatedInput DecodeErrorKind = iota
	UnexpectedTag
	OversizedArray
	InvalidBool
	UnknownEnum
	TrailingPadNonZero
)

func (k DecodeErrorKind) String() string {
	switch k {
	case TruncatedInput:
		return "TruncatedInput"
	case UnexpectedTag:
		return "UnexpectedTag"
	case OversizedArray:
		return "OversizedArray"
	case InvalidBool:
		return "InvalidBool"
	case UnknownEnum:
		return "UnknownEnum"
	case TrailingPadNonZero:
		return "TrailingPadNonZero"
	default:
		return "Unknown"
	}
}

// DecodeError is the concrete error every generated DecodeXDR method
// returns. Only the fields relevant to Kind are populated.
type DecodeError struct {
	Kind            DecodeErrorKind
	Limit, Observed int64
	Value           int64
}

func (e *DecodeError) Error() string {
	switch e.Kind {
	case OversizedArray:
		return fmt.Sprintf("xdrwire: oversized array: limit %d, observed %d", e.Limit, e.Observed)
	case UnexpectedTag, InvalidBool, UnknownEnum:
		return fmt.Sprintf("xdrwire: %s: %d", e.Kind, e.Value)
	default:
		return fmt.Sprintf("xdrwire: %s", e.Kind)
	}
}

func errTruncated() error { return &DecodeError{Kind: TruncatedInput} }

func errOversized(limit, observed int64) error {
	return &DecodeError{Kind: OversizedArray, Limit: limit, Observed: observed}
}

func errUnexpectedTag(v int64) error { return &DecodeError{Kind: UnexpectedTag, Value: v} }
func errInvalidBool(v int64) error   { return &DecodeError{Kind: InvalidBool, Value: v} }
func errUnknownEnum(v int64) error   { return &DecodeError{Kind: UnknownEnum, Value: v} }
func errTrailingPad() error          { return &DecodeError{Kind: TrailingPadNonZero} }
