package sha256

import "encoding/binary"

// Digest is an incremental SHA-256 computation.
//
// Input is staged in buf until a full block is available. Full blocks go
// straight to the compression engine. The zero value is ready for use: it is
// initialized on the first Update, Finalize or MarshalBinary.
type Digest struct {
	h          [8]uint32
	buf        [BlockSize]byte
	nbuf       int    // valid bytes in buf, always < BlockSize
	compressed uint64 // bytes already compressed, a multiple of BlockSize
	ready      bool   // h holds a chaining value
	finalized  bool
}

// New returns a Digest initialized with the SHA-256 initial hash value.
func New() *Digest {
	d := new(Digest)
	d.Reset()
	return d
}

// Reset returns the digest to its initial state, discarding any input.
// It is the only way to reuse a finalized Digest.
func (d *Digest) Reset() {
	d.h = iv
	d.nbuf = 0
	d.compressed = 0
	d.ready = true
	d.finalized = false
}

// lazyInit resets a zero-value Digest before its first use.
func (d *Digest) lazyInit() {
	if !d.ready {
		d.Reset()
	}
}

// Update appends data to the message. Data may be split across any number of
// calls; only the concatenation matters.
//
// Returns ErrFinalized if the digest has already been finalized.
func (d *Digest) Update(data []byte) error {
	if d.finalized {
		return ErrFinalized
	}
	d.lazyInit()
	d.write(data)
	return nil
}

// Write implements io.Writer on top of Update.
func (d *Digest) Write(p []byte) (int, error) {
	if err := d.Update(p); err != nil {
		return 0, err
	}
	return len(p), nil
}

// Finalize pads the message, compresses the final block(s) and returns the
// 32-byte digest. The Digest cannot be updated or finalized again until Reset.
//
// Returns ErrFinalized on a second call.
func (d *Digest) Finalize() ([Size]byte, error) {
	if d.finalized {
		return [Size]byte{}, ErrFinalized
	}
	d.lazyInit()
	sum := d.checkSum()
	d.finalized = true
	return sum, nil
}

// Len returns the number of message bytes absorbed so far.
func (d *Digest) Len() uint64 {
	return d.compressed + uint64(d.nbuf)
}

// Finalized reports whether Finalize has been called since the last Reset.
func (d *Digest) Finalized() bool {
	return d.finalized
}

// Clone returns an independent copy of the digest.
// Finalizing the copy leaves the original untouched.
func (d *Digest) Clone() *Digest {
	c := *d
	return &c
}

// Sum256 returns the SHA-256 digest of data.
func Sum256(data []byte) [Size]byte {
	var d Digest
	d.lazyInit()
	d.write(data)
	return d.checkSum()
}

func (d *Digest) write(data []byte) {
	// Fill the staging buffer first.
	n := copy(d.buf[d.nbuf:], data)
	if d.nbuf+len(data) < BlockSize {
		d.nbuf += n
		return
	}

	block(&d.h, d.buf[:])
	d.compressed += BlockSize

	// Whole blocks are compressed in place, without staging.
	rest := data[n:]
	if full := len(rest) &^ (BlockSize - 1); full > 0 {
		block(&d.h, rest[:full])
		d.compressed += uint64(full)
		rest = rest[full:]
	}

	d.nbuf = copy(d.buf[:], rest)
}

// checkSum applies the padding of FIPS 180-4 Section 5.1.1 and packs the
// final state. The chaining value is consumed; the byte counters are left as is.
func (d *Digest) checkSum() [Size]byte {
	bitLen := d.Len() << 3

	// 0x80 marker, zero fill, then the 64-bit big-endian bit length as the last
	// 8 bytes. Staged tails longer than maxSinglePadStaged spill into a second block.
	var pad [2 * BlockSize]byte
	n := copy(pad[:], d.buf[:d.nbuf])
	pad[n] = 0x80

	end := BlockSize
	if d.nbuf > maxSinglePadStaged {
		end = 2 * BlockSize
	}
	binary.BigEndian.PutUint64(pad[end-lengthFieldSize:end], bitLen)

	block(&d.h, pad[:end])

	var sum [Size]byte
	for i, v := range d.h {
		binary.BigEndian.PutUint32(sum[i*4:], v)
	}
	return sum
}
