// Package sha256 implements the SHA-256 hash function defined in FIPS 180-4.
//
// The package has two layers:
//   - the compression engine, which folds whole 64-byte blocks into the
//     eight-word chaining value (FIPS 180-4 Section 6.2.2)
//   - the incremental hasher (Digest), which stages partial blocks, counts the
//     bytes compressed so far and applies the padding of Section 5.1.1 on
//     Finalize
//
// All multi-byte encodings (message schedule words, the length field and the
// digest) are big-endian.
//
// Usage:
//
//	d := sha256.New()
//	d.Update(part1)
//	d.Update(part2)
//	sum, err := d.Finalize()
//
// A Digest is single-use: after Finalize, Update and Finalize return
// ErrFinalized until Reset is called. Callers that need the Go hash.Hash
// contract (Sum without consuming the state) use NewHash.
//
// A Digest is not safe for concurrent use. Independent Digest values share no
// mutable state.
//
// Spec References:
//   - FIPS 180-4 Section 4.1.2: SHA-256 functions
//   - FIPS 180-4 Section 5.1.1: Padding the message
//   - FIPS 180-4 Section 6.2: SHA-256 hash computation
package sha256
