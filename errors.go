package readable

import (
	"errors"
	"fmt"
)

// Kind classifies an Error.
type Kind int

const (
	// KindInvalidType means the parser received a value that is neither a
	// number, a string nor a sequence of strings.
	KindInvalidType Kind = iota + 1
	// KindInvalidPattern means a token is not "<number><identifier>".
	KindInvalidPattern
	// KindNotANumber means the formatter received a value that cannot be
	// converted to a number.
	KindNotANumber
	// KindNegative means the formatter received a negative count.
	KindNegative
	// KindInvalidIdentifiers means a caller supplied identifier table is unusable.
	KindInvalidIdentifiers
)

// Sentinel errors for use with errors.Is.
var (
	ErrInvalidType        = errors.New("invalid type")
	ErrInvalidPattern     = errors.New("invalid pattern")
	ErrNotANumber         = errors.New("not a number")
	ErrNegative           = errors.New("negative duration")
	ErrInvalidIdentifiers = errors.New("invalid identifiers")
)

// expectedShape describes what the parser accepts in InvalidType messages.
const expectedShape = "string, []string or number"

// Error is returned by every parse and format operation.
type Error struct {
	Kind Kind
	// Value is the offending token, the rendered input value, or a detail
	// message for KindInvalidIdentifiers.
	Value string
	// Type is the Go type name of the received value (KindInvalidType only).
	Type string
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindInvalidType:
		return fmt.Sprintf("unexpected value type: [%s] is not supported, expected [%s]", e.Type, expectedShape)
	case KindInvalidPattern:
		return fmt.Sprintf("unexpected value pattern: %q", e.Value)
	case KindNotANumber:
		return fmt.Sprintf("unexpected value: %s is not convertible to number", e.Value)
	case KindNegative:
		return fmt.Sprintf("unexpected value: %s is negative", e.Value)
	case KindInvalidIdentifiers:
		return "invalid identifiers: " + e.Value
	default:
		return "readable: unknown error"
	}
}

// Is matches the sentinel error for the kind.
func (e *Error) Is(target error) bool {
	switch e.Kind {
	case KindInvalidType:
		return target == ErrInvalidType
	case KindInvalidPattern:
		return target == ErrInvalidPattern
	case KindNotANumber:
		return target == ErrNotANumber
	case KindNegative:
		return target == ErrNegative
	case KindInvalidIdentifiers:
		return target == ErrInvalidIdentifiers
	}
	return false
}

func invalidType(v any) *Error {
	name := "nil"
	if v != nil {
		name = fmt.Sprintf("%T", v)
	}
	return &Error{Kind: KindInvalidType, Type: name}
}

func invalidPattern(token string) *Error {
	return &Error{Kind: KindInvalidPattern, Value: token}
}

func notANumber(v any) *Error {
	return &Error{Kind: KindNotANumber, Value: fmt.Sprintf("%v", v)}
}

func invalidIdentifiers(format string, args ...any) *Error {
	return &Error{Kind: KindInvalidIdentifiers, Value: fmt.Sprintf(format, args...)}
}
