// Package selftest runs known-answer tests against the SHA-256 implementation.
//
// Each vector is checked through every entry point of package sha256: the
// one-shot Sum256, a Digest fed one byte at a time, the hash.Hash adapter and a
// Digest resumed from a marshaled mid-message state. The built-in vectors come
// from FIPS 180-4 Appendix B and NIST CAVP, plus messages sized to hit both
// padding paths (one and two final blocks).
package selftest

import (
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/backkem/sha2/pkg/sha256"
	"github.com/pion/logging"
)

// ErrSelfTestFailed indicates at least one known-answer check failed.
var ErrSelfTestFailed = errors.New("selftest: known-answer test failed")

// Vector is a message and its expected SHA-256 digest.
type Vector struct {
	Name    string
	Message []byte
	Digest  [sha256.Size]byte
}

// Config configures a self-test run.
type Config struct {
	// Vectors are the known-answer vectors to check.
	// If nil, DefaultVectors() is used.
	Vectors []Vector

	// LoggerFactory is the factory for creating loggers.
	// If nil, logging is disabled.
	LoggerFactory logging.LoggerFactory
}

// Report lists the checks that passed and failed, named "<vector>/<check>".
type Report struct {
	Passed []string
	Failed []string
}

// OK reports whether every check passed.
func (r *Report) OK() bool {
	return len(r.Failed) == 0
}

type check struct {
	name string
	run  func(msg []byte) ([sha256.Size]byte, error)
}

var checks = []check{
	{"sum256", oneShot},
	{"bytewise", bytewise},
	{"hash", viaHash},
	{"resume", resumed},
}

// Run checks every vector through every entry point.
//
// Returns the report and an error wrapping ErrSelfTestFailed that names the
// first failing check, or nil if all passed.
func Run(config Config) (*Report, error) {
	var log logging.LeveledLogger
	if config.LoggerFactory != nil {
		log = config.LoggerFactory.NewLogger("sha256-selftest")
	}

	vectors := config.Vectors
	if vectors == nil {
		vectors = DefaultVectors()
	}

	report := &Report{}
	for _, v := range vectors {
		for _, c := range checks {
			name := v.Name + "/" + c.name

			got, err := c.run(v.Message)
			if err == nil && got != v.Digest {
				err = fmt.Errorf("digest %x, want %x", got, v.Digest)
			}
			if err != nil {
				report.Failed = append(report.Failed, name)
				if log != nil {
					log.Errorf("%s: %v", name, err)
				}
				continue
			}

			report.Passed = append(report.Passed, name)
			if log != nil {
				log.Debugf("%s: ok (%d bytes)", name, len(v.Message))
			}
		}
	}

	if err := checkMisuseGuard(); err != nil {
		report.Failed = append(report.Failed, "finalize-guard")
		if log != nil {
			log.Errorf("finalize-guard: %v", err)
		}
	} else {
		report.Passed = append(report.Passed, "finalize-guard")
	}

	if log != nil {
		log.Infof("%d checks passed, %d failed", len(report.Passed), len(report.Failed))
	}

	if !report.OK() {
		return report, fmt.Errorf("%w: %s", ErrSelfTestFailed, report.Failed[0])
	}
	return report, nil
}

func oneShot(msg []byte) ([sha256.Size]byte, error) {
	return sha256.Sum256(msg), nil
}

func bytewise(msg []byte) ([sha256.Size]byte, error) {
	d := sha256.New()
	for i := range msg {
		if err := d.Update(msg[i : i+1]); err != nil {
			return [sha256.Size]byte{}, err
		}
	}
	return d.Finalize()
}

func viaHash(msg []byte) ([sha256.Size]byte, error) {
	var sum [sha256.Size]byte

	h := sha256.NewHash()
	if _, err := h.Write(msg); err != nil {
		return sum, err
	}
	if n := copy(sum[:], h.Sum(nil)); n != sha256.Size {
		return sum, fmt.Errorf("short digest: %d bytes", n)
	}
	return sum, nil
}

func resumed(msg []byte) ([sha256.Size]byte, error) {
	half := len(msg) / 2

	d := sha256.New()
	if err := d.Update(msg[:half]); err != nil {
		return [sha256.Size]byte{}, err
	}
	state, err := d.MarshalBinary()
	if err != nil {
		return [sha256.Size]byte{}, err
	}

	var r sha256.Digest
	if err := r.UnmarshalBinary(state); err != nil {
		return [sha256.Size]byte{}, err
	}
	if err := r.Update(msg[half:]); err != nil {
		return [sha256.Size]byte{}, err
	}
	return r.Finalize()
}

func checkMisuseGuard() error {
	d := sha256.New()
	if _, err := d.Finalize(); err != nil {
		return err
	}
	if _, err := d.Finalize(); !errors.Is(err, sha256.ErrFinalized) {
		return fmt.Errorf("second Finalize returned %v", err)
	}
	if err := d.Update([]byte{0}); !errors.Is(err, sha256.ErrFinalized) {
		return fmt.Errorf("Update after Finalize returned %v", err)
	}
	return nil
}

func mustDigest(s string) [sha256.Size]byte {
	var d [sha256.Size]byte
	b, err := hex.DecodeString(s)
	if err != nil || len(b) != sha256.Size {
		panic("selftest: bad digest constant " + s)
	}
	copy(d[:], b)
	return d
}

func repeat(b byte, n int) []byte {
	out := make([]byte, n)
	for i := range out {
		out[i] = b
	}
	return out
}

// DefaultVectors returns the built-in known-answer vectors. The slice is
// freshly allocated on each call.
func DefaultVectors() []Vector {
	return []Vector{
		{
			Name:    "empty",
			Message: []byte{},
			Digest:  mustDigest("e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855"),
		},
		// FIPS 180-4 Example B.1
		{
			Name:    "abc",
			Message: []byte("abc"),
			Digest:  mustDigest("ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad"),
		},
		// FIPS 180-4 Example B.2
		{
			Name:    "448bit",
			Message: []byte("abcdbcdecdefdefgefghfghighijhijkijkljklmklmnlmnomnopnopq"),
			Digest:  mustDigest("248d6a61d20638b8e5c026930c3e6039a33ce45964ff2167f6ecedd419db06c1"),
		},
		{
			Name:    "896bit",
			Message: []byte("abcdefghbcdefghicdefghijdefghijkefghijklfghijklmghijklmnhijklmnoijklmnopjklmnopqklmnopqrlmnopqrsmnopqrstnopqrstu"),
			Digest:  mustDigest("cf5b16a778af8380036ce59e7b0492370b249b11e8f07a51afac45037afee9d1"),
		},
		{
			Name:    "cavp-8bit",
			Message: []byte{0xd3},
			Digest:  mustDigest("28969cdfa74a12c82f3bad960b0b000aca2ac329deea5c2328ebc6f2ba9802c1"),
		},
		{
			Name:    "pad-55",
			Message: repeat('a', 55),
			Digest:  mustDigest("9f4390f8d30c2dd92ec9f095b65e2b9ae9b0a925a5258e241c9f1e910f734318"),
		},
		{
			Name:    "pad-56",
			Message: repeat('a', 56),
			Digest:  mustDigest("b35439a4ac6f0948b6d6f9e3c6af0f5f590ce20f1bde7090ef7970686ec6738a"),
		},
		{
			Name:    "block-64",
			Message: repeat('a', 64),
			Digest:  mustDigest("ffe054fe7ae0cb6dc65c3af9b61d5209f439851db43d0ba5997337df154668eb"),
		},
	}
}
