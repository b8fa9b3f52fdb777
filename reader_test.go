package tlv8_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/suveshpratapa/tlv8"
)

func TestReadEmpty(t *testing.T) {
	r := tlv8.NewReader(nil)
	if err := r.Next(); !errors.Is(err, tlv8.ErrEndOfStream) {
		t.Fatalf("Next on empty input: %v", err)
	}
	if err := r.Next(); !errors.Is(err, tlv8.ErrEndOfStream) {
		t.Fatalf("Next should stay at end of stream: %v", err)
	}
}

func TestReadBlobs(t *testing.T) {
	r := tlv8.NewReader([]byte{1, 0, 2, 5, 'h', 'e', 'l', 'l', 'o', 3, 8, 3, 2, 1, 0, 1, 2, 3, 4})

	if err := r.Next(); err != nil {
		t.Fatalf("Next: %v", err)
	}
	if r.Tag() != 1 || r.Length() != 0 {
		t.Fatalf("got tag %d length %d, want tag 1 length 0", r.Tag(), r.Length())
	}
	buf := bytes.Repeat([]byte{0x55}, 10)
	if err := r.GetBytes(buf[:0]); err != nil {
		t.Errorf("GetBytes with empty dst on empty element: %v", err)
	}
	if err := r.GetBytes(buf); err != nil {
		t.Errorf("GetBytes: %v", err)
	}
	if buf[0] != 0x55 {
		t.Error("GetBytes modified dst for zero-length element")
	}
	if err := r.GetString(buf[:0]); !errors.Is(err, tlv8.ErrBufferTooSmall) {
		t.Errorf("GetString without room for NUL: %v", err)
	}
	if err := r.GetString(buf[:1]); err != nil {
		t.Errorf("GetString: %v", err)
	}
	if buf[0] != 0 || buf[1] != 0x55 {
		t.Errorf("GetString wrote %v, want NUL then untouched", buf[:2])
	}

	if err := r.Next(); err != nil {
		t.Fatalf("Next: %v", err)
	}
	if r.Tag() != 2 || r.Length() != 5 {
		t.Fatalf("got tag %d length %d, want tag 2 length 5", r.Tag(), r.Length())
	}
	buf = bytes.Repeat([]byte{'$'}, 10)
	if err := r.GetBytes(buf[:4]); !errors.Is(err, tlv8.ErrBufferTooSmall) {
		t.Errorf("GetBytes with short dst: %v", err)
	}
	if buf[0] != '$' {
		t.Error("failed GetBytes modified dst")
	}
	if err := r.GetBytes(buf); err != nil {
		t.Fatalf("GetBytes: %v", err)
	}
	if !bytes.Equal(buf[:6], []byte("hello$")) {
		t.Errorf("GetBytes wrote %q", buf[:6])
	}
	if err := r.GetString(buf[:5]); !errors.Is(err, tlv8.ErrBufferTooSmall) {
		t.Errorf("GetString with no room for NUL: %v", err)
	}
	if err := r.GetString(buf); err != nil {
		t.Fatalf("GetString: %v", err)
	}
	if !bytes.Equal(buf[:6], []byte("hello\x00")) {
		t.Errorf("GetString wrote %q", buf[:6])
	}

	if err := r.Next(); err != nil {
		t.Fatalf("Next: %v", err)
	}
	if r.Tag() != 3 || r.Length() != 8 {
		t.Fatalf("got tag %d length %d, want tag 3 length 8", r.Tag(), r.Length())
	}
	// The same element stays readable across repeated, differently typed reads.
	want := []byte{3, 2, 1, 0, 1, 2, 3, 4}
	for i := 0; i < 2; i++ {
		if err := r.GetBytes(buf); err != nil {
			t.Fatalf("GetBytes #%d: %v", i, err)
		}
		if !bytes.Equal(buf[:8], want) {
			t.Errorf("GetBytes #%d wrote % x", i, buf[:8])
		}
	}
	dup, err := r.DupBytes()
	if err != nil {
		t.Fatalf("DupBytes: %v", err)
	}
	if !bytes.Equal(dup, want) {
		t.Errorf("DupBytes = % x", dup)
	}
	str, err := r.DupString()
	if err != nil {
		t.Fatalf("DupString: %v", err)
	}
	if len(str) != 9 || !bytes.Equal(str, append(want[:8:8], 0)) {
		t.Errorf("DupString = % x", str)
	}

	if err := r.Next(); !errors.Is(err, tlv8.ErrEndOfStream) {
		t.Fatalf("Next past last element: %v", err)
	}
}

func TestReadContinuations(t *testing.T) {
	r := tlv8.NewReader([]byte{1, 4, 90, 91, 92, 93, 1, 2, 95, 96, 1, 0, 2, 1, 0x44, 2, 2, 0x33, 0x22, 2, 1, 0x11})

	if err := r.Next(); err != nil {
		t.Fatalf("Next: %v", err)
	}
	if r.Tag() != 1 || r.Length() != 6 {
		t.Fatalf("got tag %d length %d, want tag 1 length 6", r.Tag(), r.Length())
	}
	buf := make([]byte, 6)
	if err := r.GetBytes(buf); err != nil {
		t.Fatalf("GetBytes: %v", err)
	}
	if !bytes.Equal(buf, []byte{90, 91, 92, 93, 95, 96}) {
		t.Errorf("coalesced content = %v", buf)
	}

	if err := r.Next(); err != nil {
		t.Fatalf("Next: %v", err)
	}
	if r.Tag() != 1 || r.Length() != 0 {
		t.Fatalf("zero-length element should not coalesce: tag %d length %d", r.Tag(), r.Length())
	}

	if err := r.Next(); err != nil {
		t.Fatalf("Next: %v", err)
	}
	if r.Tag() != 2 || r.Length() != 4 {
		t.Fatalf("got tag %d length %d, want tag 2 length 4", r.Tag(), r.Length())
	}
	u32, err := r.GetUint32()
	if err != nil {
		t.Fatalf("GetUint32: %v", err)
	}
	if u32 != 0x11223344 {
		t.Errorf("GetUint32 = %#x, want 0x11223344", u32)
	}

	if err := r.Next(); !errors.Is(err, tlv8.ErrEndOfStream) {
		t.Fatalf("Next: %v", err)
	}
}

func TestNextTag(t *testing.T) {
	r := tlv8.NewReader([]byte{7, 1, 0xaa, 9, 1, 0xbb})
	if err := r.NextTag(7); err != nil {
		t.Fatalf("NextTag(7): %v", err)
	}
	if err := r.NextTag(7); !errors.Is(err, tlv8.ErrUnexpectedElement) {
		t.Fatalf("NextTag with wrong tag: %v", err)
	}
	// The cursor advanced normally; the element is still readable.
	if r.Tag() != 9 {
		t.Errorf("Tag = %d, want 9", r.Tag())
	}
	v, err := r.GetUint8()
	if err != nil || v != 0xbb {
		t.Errorf("GetUint8 = %#x, %v", v, err)
	}
	if err := r.NextTag(1); !errors.Is(err, tlv8.ErrEndOfStream) {
		t.Fatalf("NextTag at end: %v", err)
	}
}

func TestReadNested(t *testing.T) {
	// Outer element tag 10 spans three fragments (4+5+9 == 18 content
	// bytes). Its content holds a middle element tag 11 in five fragments,
	// which in turn holds elements tag 12 and tag 13. Tag 12's content
	// crosses fragment boundaries at both levels; tag 13's content crosses
	// a middle-level boundary inside the outer third fragment.
	r := tlv8.NewReader([]byte{
		10, 4, 11, 1, 12, 11,
		10, 5, 2, 2, 0x37, 11, 2,
		10, 9, 0x13, 13, 11, 2, 2, 0x0d, 11, 1, 0xd0,
		14, 0,
	})

	if _, err := r.OpenContainer(); !errors.Is(err, tlv8.ErrIncorrectState) {
		t.Fatalf("OpenContainer before Next: %v", err)
	}

	if err := r.Next(); err != nil {
		t.Fatalf("Next: %v", err)
	}
	if r.Tag() != 10 || r.Length() != 18 {
		t.Fatalf("got tag %d length %d, want tag 10 length 18", r.Tag(), r.Length())
	}

	var data tlv8.OwnedSpan
	if err := r.GetOwnedBytes(&data); err != nil {
		t.Fatalf("GetOwnedBytes before OpenContainer: %v", err)
	}
	if data.Len() != 18 {
		t.Errorf("owned copy length %d, want 18", data.Len())
	}

	middle, err := r.OpenContainer()
	if err != nil {
		t.Fatalf("OpenContainer: %v", err)
	}
	// While the container is open the parent rejects reads and re-opens.
	if err := r.GetOwnedBytes(&data); !errors.Is(err, tlv8.ErrIncorrectState) {
		t.Errorf("parent accessor while container open: %v", err)
	}
	if _, err := r.OpenContainer(); !errors.Is(err, tlv8.ErrIncorrectState) {
		t.Errorf("second OpenContainer: %v", err)
	}

	if err := middle.Next(); err != nil {
		t.Fatalf("middle Next: %v", err)
	}
	if middle.Tag() != 11 || middle.Length() != 8 {
		t.Fatalf("middle tag %d length %d, want tag 11 length 8", middle.Tag(), middle.Length())
	}

	inner, err := middle.OpenContainer()
	if err != nil {
		t.Fatalf("middle OpenContainer: %v", err)
	}
	if err := inner.Next(); err != nil {
		t.Fatalf("inner Next: %v", err)
	}
	if inner.Tag() != 12 {
		t.Fatalf("inner tag %d, want 12", inner.Tag())
	}
	u16, err := inner.GetUint16()
	if err != nil || u16 != 0x1337 {
		t.Fatalf("inner GetUint16 = %#x, %v", u16, err)
	}
	if err := inner.Next(); err != nil {
		t.Fatalf("inner Next: %v", err)
	}
	if inner.Tag() != 13 {
		t.Fatalf("inner tag %d, want 13", inner.Tag())
	}
	u16, err = inner.GetUint16()
	if err != nil || u16 != 0xd00d {
		t.Fatalf("inner GetUint16 = %#x, %v", u16, err)
	}
	if err := inner.Next(); !errors.Is(err, tlv8.ErrEndOfStream) {
		t.Fatalf("inner Next: %v", err)
	}

	if err := middle.CloseContainer(inner); err != nil {
		t.Fatalf("CloseContainer(inner): %v", err)
	}
	if err := middle.Next(); !errors.Is(err, tlv8.ErrEndOfStream) {
		t.Fatalf("middle Next after close: %v", err)
	}
	if err := r.CloseContainer(middle); err != nil {
		t.Fatalf("CloseContainer(middle): %v", err)
	}

	// The open/close sequence consumed the element.
	if err := r.GetOwnedBytes(&data); !errors.Is(err, tlv8.ErrIncorrectState) {
		t.Errorf("accessor after CloseContainer: %v", err)
	}
	if _, err := r.OpenContainer(); !errors.Is(err, tlv8.ErrIncorrectState) {
		t.Errorf("OpenContainer after CloseContainer: %v", err)
	}

	if err := r.Next(); err != nil {
		t.Fatalf("Next: %v", err)
	}
	if r.Tag() != 14 || r.Length() != 0 {
		t.Fatalf("got tag %d length %d, want tag 14 length 0", r.Tag(), r.Length())
	}
	empty, err := r.OpenContainer()
	if err != nil {
		t.Fatalf("OpenContainer on empty element: %v", err)
	}
	if err := r.CloseContainer(empty); err != nil {
		t.Fatalf("CloseContainer on empty element: %v", err)
	}

	if err := r.Next(); !errors.Is(err, tlv8.ErrEndOfStream) {
		t.Fatalf("Next: %v", err)
	}
}

func TestUnderrunInData(t *testing.T) {
	r := tlv8.NewReader([]byte{10, 1, 0xdd, 11, 5, 1, 2, 3, 4})
	if err := r.Next(); err != nil {
		t.Fatalf("Next: %v", err)
	}
	if err := r.Next(); !errors.Is(err, tlv8.ErrUnderrun) {
		t.Fatalf("Next into truncated element: %v", err)
	}
	if err := r.Next(); !errors.Is(err, tlv8.ErrUnderrun) {
		t.Fatalf("underrun should be sticky: %v", err)
	}
}

func TestUnderrunInTag(t *testing.T) {
	r := tlv8.NewReader([]byte{10, 1, 0xdd, 11})
	if err := r.Next(); err != nil {
		t.Fatalf("Next: %v", err)
	}
	if err := r.Next(); !errors.Is(err, tlv8.ErrUnderrun) {
		t.Fatalf("Next onto dangling tag byte: %v", err)
	}
	if err := r.Next(); !errors.Is(err, tlv8.ErrUnderrun) {
		t.Fatalf("underrun should be sticky: %v", err)
	}
}

func TestUnderrunInContinuation(t *testing.T) {
	// A same-tag continuation byte with no length byte after it.
	r := tlv8.NewReader([]byte{5, 1, 0xaa, 5})
	if err := r.Next(); !errors.Is(err, tlv8.ErrUnderrun) {
		t.Fatalf("Next: %v", err)
	}
	if err := r.Next(); !errors.Is(err, tlv8.ErrUnderrun) {
		t.Fatalf("underrun should be sticky: %v", err)
	}
}

func TestUnderrunDuringClose(t *testing.T) {
	// The outer element declares 3 content bytes: a complete nested
	// zero-length element and a stray byte the nested reader cannot frame.
	r := tlv8.NewReader([]byte{1, 3, 2, 0, 0xff, 3, 0})
	if err := r.Next(); err != nil {
		t.Fatalf("Next: %v", err)
	}
	if r.Tag() != 1 {
		t.Fatalf("Tag = %d, want 1", r.Tag())
	}

	inner, err := r.OpenContainer()
	if err != nil {
		t.Fatalf("OpenContainer: %v", err)
	}
	if err := inner.Next(); err != nil {
		t.Fatalf("inner Next: %v", err)
	}
	if inner.Tag() != 2 {
		t.Fatalf("inner Tag = %d, want 2", inner.Tag())
	}
	if err := r.CloseContainer(inner); !errors.Is(err, tlv8.ErrUnderrun) {
		t.Fatalf("CloseContainer over damaged content: %v", err)
	}

	// The outer reader skips the rest of the element and continues.
	if err := r.Next(); err != nil {
		t.Fatalf("outer Next after failed close: %v", err)
	}
	if r.Tag() != 3 {
		t.Fatalf("Tag = %d, want 3", r.Tag())
	}
	if err := r.Next(); !errors.Is(err, tlv8.ErrEndOfStream) {
		t.Fatalf("Next: %v", err)
	}
}

func TestCloseContainerWrongParent(t *testing.T) {
	a := tlv8.NewReader([]byte{1, 1, 0xaa})
	b := tlv8.NewReader([]byte{1, 1, 0xbb})
	if err := a.Next(); err != nil {
		t.Fatalf("Next: %v", err)
	}
	if err := b.Next(); err != nil {
		t.Fatalf("Next: %v", err)
	}
	child, err := a.OpenContainer()
	if err != nil {
		t.Fatalf("OpenContainer: %v", err)
	}
	defer func() {
		if recover() == nil {
			t.Error("CloseContainer with foreign child should panic")
		}
	}()
	_ = b.CloseContainer(child)
}

func TestInitReuse(t *testing.T) {
	r := tlv8.NewReader([]byte{9})
	if err := r.Next(); !errors.Is(err, tlv8.ErrUnderrun) {
		t.Fatalf("Next: %v", err)
	}
	// Init clears the sticky underrun and rebinds the source.
	r.Init([]byte{4, 1, 0x2a})
	if err := r.Next(); err != nil {
		t.Fatalf("Next after Init: %v", err)
	}
	v, err := r.GetUint8()
	if err != nil || v != 0x2a {
		t.Fatalf("GetUint8 = %d, %v", v, err)
	}
}
