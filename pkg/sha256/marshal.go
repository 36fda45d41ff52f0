package sha256

import (
	"fmt"

	"golang.org/x/crypto/cryptobyte"
)

// Marshaled state layout, shared with the standard library's crypto/sha256:
//
//	magic (4) || h[0..7] (8 x 4, BE) || block buffer (64, zero padded) || length (8, BE)
const (
	stateMagic    = "sha\x03"
	marshaledSize = len(stateMagic) + 8*4 + BlockSize + 8
)

// MarshalBinary encodes the in-progress state so the computation can be
// resumed later with UnmarshalBinary, here or in any implementation that reads
// the crypto/sha256 state format.
//
// Returns ErrFinalized if the digest has already been finalized.
func (d *Digest) MarshalBinary() ([]byte, error) {
	if d.finalized {
		return nil, ErrFinalized
	}
	d.lazyInit()
	return d.appendState(make([]byte, 0, marshaledSize))
}

// AppendBinary appends the encoded state to b.
func (d *Digest) AppendBinary(b []byte) ([]byte, error) {
	if d.finalized {
		return nil, ErrFinalized
	}
	d.lazyInit()
	return d.appendState(b)
}

func (d *Digest) appendState(b []byte) ([]byte, error) {
	var zero [BlockSize]byte

	builder := cryptobyte.NewBuilder(b)
	builder.AddBytes([]byte(stateMagic))
	for _, v := range d.h {
		builder.AddUint32(v)
	}
	builder.AddBytes(d.buf[:d.nbuf])
	builder.AddBytes(zero[d.nbuf:])
	builder.AddUint64(d.Len())
	return builder.Bytes()
}

// UnmarshalBinary restores a state produced by MarshalBinary. The digest is
// left untouched if data is invalid.
//
// Returns ErrInvalidState for a wrong identifier or size.
func (d *Digest) UnmarshalBinary(data []byte) error {
	if len(data) != marshaledSize {
		return fmt.Errorf("%w: size %d, want %d", ErrInvalidState, len(data), marshaledSize)
	}

	s := cryptobyte.String(data)

	var magic []byte
	if !s.ReadBytes(&magic, len(stateMagic)) || string(magic) != stateMagic {
		return fmt.Errorf("%w: unknown identifier", ErrInvalidState)
	}

	var h [8]uint32
	for i := range h {
		if !s.ReadUint32(&h[i]) {
			return fmt.Errorf("%w: truncated chaining value", ErrInvalidState)
		}
	}

	var buf []byte
	if !s.ReadBytes(&buf, BlockSize) {
		return fmt.Errorf("%w: truncated block buffer", ErrInvalidState)
	}

	var length uint64
	if !s.ReadUint64(&length) || !s.Empty() {
		return fmt.Errorf("%w: malformed length", ErrInvalidState)
	}

	d.h = h
	d.nbuf = int(length % BlockSize)
	copy(d.buf[:], buf[:d.nbuf])
	d.compressed = length - uint64(d.nbuf)
	d.ready = true
	d.finalized = false
	return nil
}
