// Package tlv8 provides a memory-efficient streaming parser for the TLV8
// binary encoding: an 8-bit tag, 8-bit length, value framing used by Apple
// accessory provisioning flows.
//
// # Wire Format
//
// An on-wire element is tag(1) || length(1) || content(length). Tags are
// contextual and carry no type information; consumers infer the type of an
// element from its tag. Elements longer than 255 bytes appear on the wire as
// consecutive elements with the same tag; the reader coalesces any run of
// same-tag elements into a single logical element automatically. A
// zero-length element always stands alone. All multi-byte numeric payloads
// are little endian.
//
// # Reading
//
// A Reader is a forward cursor over a byte slice:
//
//	r := tlv8.NewReader(data)
//	for {
//	    err := r.Next()
//	    if errors.Is(err, tlv8.ErrEndOfStream) {
//	        break
//	    }
//	    if err != nil {
//	        return err
//	    }
//	    switch r.Tag() {
//	    case tagState:
//	        state, err = r.GetUint8()
//	    case tagIdentifier:
//	        id, err = r.DupString()
//	    }
//	}
//
// Typed accessors rewind the cursor after reading, so the same element can
// be read again through a different accessor. Integers are decoded at their
// wire width and then widened: a one-byte 0xAB read into an int16 yields
// -85, not 171.
//
// # Nested Containers
//
// TLV8 nests by embedding a complete TLV8 stream as an element's content.
// OpenContainer returns a child Reader over the current element's content;
// the child shares the underlying cursor with its parent, so the parent
// must not be used until CloseContainer is called:
//
//	child, err := r.OpenContainer()
//	if err != nil {
//	    return err
//	}
//	// ... iterate child ...
//	if err := r.CloseContainer(child); err != nil {
//	    return err
//	}
//
// An OpenContainer/CloseContainer sequence consumes the current element;
// the same content is not available to subsequent accessor calls.
//
// A Reader value must not be copied: a copy of a nested reader would share
// and invalidate the cursor state of its parent. Obtain Readers from
// NewReader and OpenContainer and pass them around as pointers.
package tlv8
