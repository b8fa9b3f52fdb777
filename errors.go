package tlv8

import "errors"

var (
	// ErrEndOfStream is returned by Next when the source is cleanly
	// exhausted. It is stable: repeated calls keep returning it.
	ErrEndOfStream = errors.New("tlv8: end of stream")

	// ErrUnderrun is returned when the source is too short to frame an
	// element or complete a declared fragment. It is sticky: once a reader
	// reports an underrun, every subsequent Next returns it.
	ErrUnderrun = errors.New("tlv8: underrun")

	// ErrIncorrectState is returned by accessors when no element is framed,
	// or after the current element was consumed by OpenContainer.
	ErrIncorrectState = errors.New("tlv8: incorrect state")

	// ErrUnexpectedElement is returned by NextTag when the framed element
	// carries a different tag than expected.
	ErrUnexpectedElement = errors.New("tlv8: unexpected element")

	// ErrWrongType is returned by typed accessors when the element length
	// does not fit the requested type.
	ErrWrongType = errors.New("tlv8: wrong type")

	// ErrBufferTooSmall is returned when a caller-supplied destination
	// cannot hold the element content.
	ErrBufferTooSmall = errors.New("tlv8: buffer too small")

	// ErrNoMemory is returned when the configured Allocator fails.
	ErrNoMemory = errors.New("tlv8: out of memory")
)
