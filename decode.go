package tlv8

// Decodable is implemented by types that read their fields from a TLV8
// stream. DecodeTLV reads fields directly from the provided reader without
// any implied nesting; use DecodeContainer to apply it to a nested element.
type Decodable interface {
	DecodeTLV(r *Reader) error
}

// DecodeContainer decodes the current element's content into v through a
// nested reader, closing the container afterwards.
func (r *Reader) DecodeContainer(v Decodable) error {
	child, err := r.OpenContainer()
	if err != nil {
		return err
	}
	if err := v.DecodeTLV(child); err != nil {
		return err
	}
	return r.CloseContainer(child)
}

// Decode decodes a top-level TLV8 stream from data into v.
func Decode(data []byte, v Decodable) error {
	return v.DecodeTLV(NewReader(data))
}
