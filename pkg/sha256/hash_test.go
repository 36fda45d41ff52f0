package sha256

import (
	"bytes"
	"encoding"
	"testing"
)

func TestNewHash_Vectors(t *testing.T) {
	for _, tc := range sha256TestVectors {
		t.Run(tc.name, func(t *testing.T) {
			message, expected := decodeVector(t, tc.message, tc.expected)

			h := NewHash()
			h.Write(message)
			result := h.Sum(nil)

			if !bytes.Equal(result, expected) {
				t.Errorf("hash mismatch\ngot:  %x\nwant: %x", result, expected)
			}
		})
	}
}

func TestNewHash_Incremental(t *testing.T) {
	// Test that incremental hashing produces the same result as one-shot
	message := []byte("abcdbcdecdefdefgefghfghighijhijkijkljklmklmnlmnomnopnopq")
	expected := Sum256(message)

	h := NewHash()
	h.Write(message[:10])
	h.Write(message[10:30])
	h.Write(message[30:])
	result := h.Sum(nil)

	if !bytes.Equal(result, expected[:]) {
		t.Errorf("incremental hash mismatch\ngot:  %x\nwant: %x", result, expected[:])
	}
}

func TestNewHash_SumDoesNotConsume(t *testing.T) {
	h := NewHash()
	h.Write([]byte("ab"))
	prefix := h.Sum([]byte("prefix:"))

	if !bytes.HasPrefix(prefix, []byte("prefix:")) {
		t.Fatalf("Sum did not append to its argument: %q", prefix)
	}
	ab := Sum256([]byte("ab"))
	if !bytes.Equal(prefix[len("prefix:"):], ab[:]) {
		t.Errorf("intermediate Sum = %x, want %x", prefix[len("prefix:"):], ab)
	}

	h.Write([]byte("c"))
	abc := Sum256([]byte("abc"))
	if got := h.Sum(nil); !bytes.Equal(got, abc[:]) {
		t.Errorf("Sum after further Write = %x, want %x", got, abc)
	}
	if got := h.Sum(nil); !bytes.Equal(got, abc[:]) {
		t.Errorf("repeated Sum = %x, want %x", got, abc)
	}
}

func TestNewHash_Reset(t *testing.T) {
	h := NewHash()
	h.Write([]byte("first message"))
	h.Reset()
	h.Write([]byte("abc"))
	result := h.Sum(nil)

	expected := Sum256([]byte("abc"))
	if !bytes.Equal(result, expected[:]) {
		t.Errorf("hash after reset mismatch\ngot:  %x\nwant: %x", result, expected[:])
	}
}

func TestNewHash_Sizes(t *testing.T) {
	h := NewHash()
	if h.Size() != Size {
		t.Errorf("Size() = %d, want %d", h.Size(), Size)
	}
	if h.BlockSize() != BlockSize {
		t.Errorf("BlockSize() = %d, want %d", h.BlockSize(), BlockSize)
	}
	if len(h.Sum(nil)) != Size {
		t.Errorf("len(Sum) = %d, want %d", len(h.Sum(nil)), Size)
	}
}

func TestNewHash_BinaryMarshaler(t *testing.T) {
	h := NewHash()
	h.Write([]byte("abcdbcdecdefdefgefghfghighijhijk"))

	state, err := h.(encoding.BinaryMarshaler).MarshalBinary()
	if err != nil {
		t.Fatalf("MarshalBinary() error = %v", err)
	}

	resumed := NewHash()
	if err := resumed.(encoding.BinaryUnmarshaler).UnmarshalBinary(state); err != nil {
		t.Fatalf("UnmarshalBinary() error = %v", err)
	}
	resumed.Write([]byte("ijkljklmklmnlmnomnopnopq"))
	h.Write([]byte("ijkljklmklmnlmnomnopnopq"))

	if !bytes.Equal(resumed.Sum(nil), h.Sum(nil)) {
		t.Errorf("resumed %x != original %x", resumed.Sum(nil), h.Sum(nil))
	}
}

func TestSHA256Constants(t *testing.T) {
	if SizeBits != 256 {
		t.Errorf("SizeBits = %d, want 256", SizeBits)
	}
	if Size != 32 {
		t.Errorf("Size = %d, want 32", Size)
	}
	if SizeBits/8 != Size {
		t.Errorf("SizeBits/8 (%d) != Size (%d)", SizeBits/8, Size)
	}
	if maxSinglePadStaged != 55 {
		t.Errorf("maxSinglePadStaged = %d, want 55", maxSinglePadStaged)
	}
}
