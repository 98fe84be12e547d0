package cursor

import (
	"errors"
	"fmt"
)

// ErrKind classifies cursor failures so callers can branch on intent rather
// than text.
type ErrKind int

const (
	ErrKindReadLengthOverflow  ErrKind = iota + 1 // read past the end of the buffer
	ErrKindReadNullOverflow                       // no NUL terminator before the end
	ErrKindWriteLengthOverflow                    // write past the end of the buffer
	ErrKindReadUnknown                            // accessor-level read failure
	ErrKindWriteUnknown                           // accessor-level write failure
)

func (k ErrKind) String() string {
	switch k {
	case ErrKindReadLengthOverflow:
		return "read length overflow"
	case ErrKindReadNullOverflow:
		return "read null overflow"
	case ErrKindWriteLengthOverflow:
		return "write length overflow"
	case ErrKindReadUnknown:
		return "read failed"
	case ErrKindWriteUnknown:
		return "write failed"
	default:
		return fmt.Sprintf("ErrKind(%d)", int(k))
	}
}

// Error describes a failed cursor operation. Offset and Length are the
// cursor's position and buffer length when the operation was attempted;
// Requested is the number of bytes the operation needed, or -1 when it does
// not apply.
type Error struct {
	Kind      ErrKind
	Op        string
	Offset    int
	Length    int
	Requested int
	Err       error // optional underlying cause
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	var msg string
	switch e.Kind {
	case ErrKindReadLengthOverflow:
		msg = fmt.Sprintf("cursor: %s: overflow while reading %d bytes at offset %d/%d",
			e.Op, e.Requested, e.Offset, e.Length)
	case ErrKindWriteLengthOverflow:
		msg = fmt.Sprintf("cursor: %s: overflow while writing %d bytes at offset %d/%d",
			e.Op, e.Requested, e.Offset, e.Length)
	case ErrKindReadNullOverflow:
		msg = fmt.Sprintf("cursor: %s: no null byte after offset %d/%d", e.Op, e.Offset, e.Length)
	default:
		msg = fmt.Sprintf("cursor: %s: %s at offset %d/%d", e.Op, e.Kind, e.Offset, e.Length)
	}
	if e.Err != nil {
		return msg + ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error { return e.Err }

// Is reports whether target is an *Error of the same kind. The kind sentinels
// below carry no context, so errors.Is(err, ErrReadLengthOverflow) matches any
// read length overflow.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok || e == nil || t == nil {
		return false
	}
	return e.Kind == t.Kind
}

// Kind sentinels for errors.Is.
var (
	ErrReadLengthOverflow  = &Error{Kind: ErrKindReadLengthOverflow, Op: "read", Requested: -1}
	ErrReadNullOverflow    = &Error{Kind: ErrKindReadNullOverflow, Op: "read", Requested: -1}
	ErrWriteLengthOverflow = &Error{Kind: ErrKindWriteLengthOverflow, Op: "write", Requested: -1}
	ErrReadUnknown         = &Error{Kind: ErrKindReadUnknown, Op: "read", Requested: -1}
	ErrWriteUnknown        = &Error{Kind: ErrKindWriteUnknown, Op: "write", Requested: -1}
)

// Causes wrapped by ReadUnknown and WriteUnknown errors.
var (
	// ErrValueOverflow indicates an integer does not fit the encoded width.
	ErrValueOverflow = errors.New("value out of range for width")
	// ErrIncompleteEncode indicates the text encoder could not consume its whole input.
	ErrIncompleteEncode = errors.New("text encoder did not consume entire input")
	// ErrInvalidChunkSize indicates a non-positive chunk size was passed to Split.
	ErrInvalidChunkSize = errors.New("chunk size must be positive")
	// ErrInvalidOffset indicates a seek outside [0, Len()].
	ErrInvalidOffset = errors.New("offset out of range")
)

// IsKind reports whether any *Error in err's chain has the given kind.
func IsKind(err error, kind ErrKind) bool {
	for err != nil {
		var ce *Error
		if !errors.As(err, &ce) {
			return false
		}
		if ce.Kind == kind {
			return true
		}
		err = ce.Err
	}
	return false
}

func (c *Cursor) fail(kind ErrKind, op string, requested int, cause error) *Error {
	return &Error{
		Kind:      kind,
		Op:        op,
		Offset:    c.offset,
		Length:    len(c.view.Bytes()),
		Requested: requested,
		Err:       cause,
	}
}
