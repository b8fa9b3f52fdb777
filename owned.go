package tlv8

import "bytes"

// OwnedSpan holds a fixed-size byte sequence and owns the backing memory,
// which comes from the configured Allocator. The zero value is an empty
// span with no allocation. Equality and sub-span operations work on the
// logical length; the allocation may be larger (see GetOwnedString).
type OwnedSpan struct {
	buf []byte // len is the logical length, cap the allocated capacity
}

// Bytes returns the logical contents as a non-owning view.
func (s *OwnedSpan) Bytes() []byte { return s.buf }

// Len returns the logical length.
func (s *OwnedSpan) Len() int { return len(s.buf) }

// IsEmpty reports whether the span has no visible bytes.
func (s *OwnedSpan) IsEmpty() bool { return len(s.buf) == 0 }

// Adopt takes ownership of data, releasing any previous allocation. The
// span's length and capacity both become len(data).
func (s *OwnedSpan) Adopt(data []byte) {
	s.release()
	s.buf = data[:len(data):len(data)]
}

// Assign copies data into the span. The existing allocation is reused when
// the new length fits and is more than half the capacity; otherwise a new
// block is allocated (trimming oversized allocations as a side effect).
// Assigning zero bytes releases the allocation.
func (s *OwnedSpan) Assign(data []byte) error {
	n := len(data)
	if n == 0 {
		s.release()
		s.buf = nil
		return nil
	}
	if s.buf == nil || n > cap(s.buf) || n <= cap(s.buf)/2 {
		nb := alloc(n)
		if nb == nil {
			return ErrNoMemory
		}
		s.release()
		s.buf = nb[:n:n]
	} else {
		s.buf = s.buf[:n]
	}
	copy(s.buf, data)
	return nil
}

// ReduceSize shrinks the logical length to n without reallocating. Growing
// is a programmer error and panics.
func (s *OwnedSpan) ReduceSize(n int) {
	if n < 0 || n > len(s.buf) {
		panic("tlv8: ReduceSize beyond current length")
	}
	s.buf = s.buf[:n]
}

// SubSpan returns a non-owning view of [offset, offset+length). Ranges
// outside the logical length are programmer errors and panic.
func (s *OwnedSpan) SubSpan(offset, length int) []byte {
	if offset < 0 || offset > len(s.buf) {
		panic("tlv8: SubSpan offset out of range")
	}
	if length < 0 || offset+length > len(s.buf) {
		panic("tlv8: SubSpan length out of range")
	}
	return s.buf[offset : offset+length : offset+length]
}

// SubSpanFrom returns a non-owning view from offset to the end.
func (s *OwnedSpan) SubSpanFrom(offset int) []byte {
	if offset < 0 || offset > len(s.buf) {
		panic("tlv8: SubSpan offset out of range")
	}
	return s.SubSpan(offset, len(s.buf)-offset)
}

// DataEqual compares logical contents, ignoring capacity.
func (s *OwnedSpan) DataEqual(other []byte) bool {
	return bytes.Equal(s.buf, other)
}

// Free releases the backing allocation and empties the span. The span
// remains usable afterwards.
func (s *OwnedSpan) Free() {
	s.release()
	s.buf = nil
}

func (s *OwnedSpan) release() {
	if s.buf != nil {
		allocator.Free(s.buf[:cap(s.buf)])
	}
}
