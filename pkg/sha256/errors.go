package sha256

import "errors"

// SHA-256 errors
var (
	// ErrFinalized indicates the digest was already finalized and must be Reset
	// before it accepts more input.
	ErrFinalized = errors.New("sha256: digest already finalized")

	// ErrInvalidState indicates a marshaled hash state could not be decoded.
	ErrInvalidState = errors.New("sha256: invalid hash state")
)
