package genesis

import (
	"github.com/ugorji/go/codec"
)

// Binc with canonical map ordering, so that encoding the same value always
// yields the same bytes.
func newHandle() *codec.BincHandle {
	h := new(codec.BincHandle)
	h.Canonical = true
	return h
}

func marshal(v interface{}) ([]byte, error) {
	var b []byte
	enc := codec.NewEncoderBytes(&b, newHandle())
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return b, nil
}

func unmarshal(data []byte, v interface{}) error {
	dec := codec.NewDecoderBytes(data, newHandle())
	return dec.Decode(v)
}
