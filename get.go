package tlv8

import (
	"encoding/binary"
	"math"
)

// GetBytes copies the current element's content into dst, which must hold
// at least Length() bytes. The cursor rewinds afterwards so the element can
// be read again.
func (r *Reader) GetBytes(dst []byte) error {
	return r.getBytes(dst, false)
}

// GetString copies the current element's content into dst and appends a NUL
// terminator; dst must hold at least Length()+1 bytes. The content is not
// validated as UTF-8.
func (r *Reader) GetString(dst []byte) error {
	return r.getBytes(dst, true)
}

func (r *Reader) getBytes(dst []byte, terminate bool) error {
	if !r.accessible() {
		return ErrIncorrectState
	}
	need := r.tagLength
	if terminate {
		need++
	}
	if len(dst) < need {
		return ErrBufferTooSmall
	}
	r.mustReadTagData(dst[:r.tagLength], r.tagLength)
	if terminate {
		dst[r.tagLength] = 0
	}
	r.rewind()
	return nil
}

// DupBytes copies the current element's content into a freshly allocated
// buffer owned by the caller.
func (r *Reader) DupBytes() ([]byte, error) {
	return r.dupBytes(false)
}

// DupString is DupBytes plus a trailing NUL byte; the returned slice has
// length Length()+1.
func (r *Reader) DupString() ([]byte, error) {
	return r.dupBytes(true)
}

func (r *Reader) dupBytes(terminate bool) ([]byte, error) {
	if !r.accessible() {
		return nil, ErrIncorrectState
	}
	size := r.tagLength
	if terminate {
		size++
	}
	buf := alloc(size)
	if buf == nil {
		return nil, ErrNoMemory
	}
	r.mustReadTagData(buf[:r.tagLength], r.tagLength)
	if terminate {
		buf[r.tagLength] = 0
	}
	r.rewind()
	return buf, nil
}

// GetOwnedBytes duplicates the current element's content and adopts it into
// span, releasing span's previous allocation.
func (r *Reader) GetOwnedBytes(span *OwnedSpan) error {
	buf, err := r.DupBytes()
	if err != nil {
		return err
	}
	span.Adopt(buf)
	return nil
}

// GetOwnedString duplicates the content with a NUL terminator and adopts it
// into span. The span reports the content length; the terminator sits one
// past the end of the visible bytes, inside the allocation, so the result
// doubles as a C string without another copy.
func (r *Reader) GetOwnedString(span *OwnedSpan) error {
	buf, err := r.DupString()
	if err != nil {
		return err
	}
	span.Adopt(buf)
	span.ReduceSize(len(buf) - 1)
	return nil
}

// getUint decodes the element content as a little-endian unsigned integer
// of its wire width. The length must be one of 1, 2, 4 or 8 and no wider
// than maxWidth bytes.
func (r *Reader) getUint(maxWidth int) (v uint64, width int, err error) {
	if !r.accessible() {
		return 0, 0, ErrIncorrectState
	}
	n := r.tagLength
	switch n {
	case 1, 2, 4, 8:
	default:
		return 0, 0, ErrWrongType
	}
	if n > maxWidth {
		return 0, 0, ErrWrongType
	}
	var b [8]byte
	r.mustReadTagData(b[:n], n)
	r.rewind()
	switch n {
	case 1:
		v = uint64(b[0])
	case 2:
		v = uint64(binary.LittleEndian.Uint16(b[:2]))
	case 4:
		v = uint64(binary.LittleEndian.Uint32(b[:4]))
	case 8:
		v = binary.LittleEndian.Uint64(b[:8])
	}
	return v, n, nil
}

// signExtend reinterprets v as a two's-complement integer of width bytes.
func signExtend(v uint64, width int) int64 {
	shift := uint(64 - 8*width)
	return int64(v<<shift) >> shift
}

// GetBool reads a one-byte element; any non-zero value is true.
func (r *Reader) GetBool() (bool, error) {
	v, _, err := r.getUint(1)
	if err != nil {
		return false, err
	}
	return v != 0, nil
}

// GetUint8 reads the element as an unsigned integer of at most one byte.
func (r *Reader) GetUint8() (uint8, error) {
	v, _, err := r.getUint(1)
	return uint8(v), err
}

// GetUint16 reads the element as an unsigned integer of at most two bytes.
func (r *Reader) GetUint16() (uint16, error) {
	v, _, err := r.getUint(2)
	return uint16(v), err
}

// GetUint32 reads the element as an unsigned integer of at most four bytes.
func (r *Reader) GetUint32() (uint32, error) {
	v, _, err := r.getUint(4)
	return uint32(v), err
}

// GetUint64 reads the element as an unsigned integer of at most eight bytes.
func (r *Reader) GetUint64() (uint64, error) {
	v, _, err := r.getUint(8)
	return v, err
}

// GetInt8 reads the element as a signed one-byte integer.
func (r *Reader) GetInt8() (int8, error) {
	v, w, err := r.getUint(1)
	if err != nil {
		return 0, err
	}
	return int8(signExtend(v, w)), nil
}

// GetInt16 reads the element as a signed integer of at most two bytes. The
// value is interpreted as two's complement at its wire width and then
// widened, so a one-byte 0xAB yields -85.
func (r *Reader) GetInt16() (int16, error) {
	v, w, err := r.getUint(2)
	if err != nil {
		return 0, err
	}
	return int16(signExtend(v, w)), nil
}

// GetInt32 reads the element as a signed integer of at most four bytes,
// sign-extended from its wire width.
func (r *Reader) GetInt32() (int32, error) {
	v, w, err := r.getUint(4)
	if err != nil {
		return 0, err
	}
	return int32(signExtend(v, w)), nil
}

// GetInt64 reads the element as a signed integer of at most eight bytes,
// sign-extended from its wire width.
func (r *Reader) GetInt64() (int64, error) {
	v, w, err := r.getUint(8)
	if err != nil {
		return 0, err
	}
	return signExtend(v, w), nil
}

// GetFloat32 reads a four-byte little-endian IEEE 754 value.
func (r *Reader) GetFloat32() (float32, error) {
	if !r.accessible() {
		return 0, ErrIncorrectState
	}
	if r.tagLength != 4 {
		return 0, ErrWrongType
	}
	var b [4]byte
	r.mustReadTagData(b[:], 4)
	r.rewind()
	return math.Float32frombits(binary.LittleEndian.Uint32(b[:])), nil
}

// GetFloat64 reads an eight-byte little-endian IEEE 754 value.
func (r *Reader) GetFloat64() (float64, error) {
	if !r.accessible() {
		return 0, ErrIncorrectState
	}
	if r.tagLength != 8 {
		return 0, ErrWrongType
	}
	var b [8]byte
	r.mustReadTagData(b[:], 8)
	r.rewind()
	return math.Float64frombits(binary.LittleEndian.Uint64(b[:])), nil
}
