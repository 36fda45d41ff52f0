package sha256

import "hash"

// hasher adapts Digest to hash.Hash. Sum works on a copy, so the caller may
// keep writing after reading an intermediate digest.
type hasher struct {
	d Digest
}

// NewHash returns a hash.Hash computing SHA-256.
// The returned value also implements encoding.BinaryMarshaler and
// encoding.BinaryUnmarshaler for the in-progress state.
//
// Usage:
//
//	h := sha256.NewHash()
//	h.Write(data1)
//	h.Write(data2)
//	digest := h.Sum(nil)
func NewHash() hash.Hash {
	h := new(hasher)
	h.d.Reset()
	return h
}

func (h *hasher) Write(p []byte) (int, error) {
	h.d.write(p)
	return len(p), nil
}

func (h *hasher) Sum(b []byte) []byte {
	d := h.d
	sum := d.checkSum()
	return append(b, sum[:]...)
}

func (h *hasher) Reset()         { h.d.Reset() }
func (h *hasher) Size() int      { return Size }
func (h *hasher) BlockSize() int { return BlockSize }

func (h *hasher) MarshalBinary() ([]byte, error)    { return h.d.MarshalBinary() }
func (h *hasher) UnmarshalBinary(data []byte) error { return h.d.UnmarshalBinary(data) }
