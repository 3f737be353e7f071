package lz77

import (
	"bytes"
	"math/rand/v2"
	"testing"
)

func TestRoundTrip_TableDriven(t *testing.T) {
	cases := []struct {
		name string
		data []byte
	}{
		{"nil", nil},
		{"empty", []byte{}},
		{"single-byte", []byte{0xAB}},
		{"short-text", []byte("hello world, lz77 test")},
		{"repeated-pattern", bytes.Repeat([]byte("abc123"), 2000)},
		{"long-run", bytes.Repeat([]byte{0xFF}, 12000)},
		{"byte-cycle", bytes.Repeat([]byte{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, 1200)},
		{"all-zero", make([]byte, 4096)},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			compressed := Encode(c.data)
			assertByteBudget(t, compressed)

			out, err := Decode(compressed, nil)
			if err != nil {
				t.Fatalf("Decode failed: %v", err)
			}
			if !bytes.Equal(out, c.data) {
				t.Fatalf("round-trip mismatch: got=%d bytes want=%d bytes", len(out), len(c.data))
			}
		})
	}
}

func TestRoundTrip_LargeRandomInput(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping large round-trip in -short mode")
	}

	rng := rand.New(rand.NewPCG(1, 2))
	data := make([]byte, 1_000_000)
	for i := range data {
		data[i] = byte(rng.IntN(256))
	}

	compressed := Encode(data)
	// Per-block overhead on incompressible data inflates the stream a
	// little; it must stay in the same order of magnitude as the input.
	if len(compressed) > len(data)*130/100 {
		t.Fatalf("compressed size %d inflated too much vs input %d", len(compressed), len(data))
	}

	out, err := Decode(compressed, nil)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if !bytes.Equal(out, data) {
		t.Fatal("round-trip mismatch for large random input")
	}
}

func TestRoundTrip_LargeRepeatedInput(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping large round-trip in -short mode")
	}

	data := bytes.Repeat([]byte{'A'}, 1_000_000)
	compressed := Encode(data)

	// Two literal seed bytes plus one 3-byte match block per up-to-127
	// repeated bytes, with a little slack for the final partial block.
	maxExpected := 2 + (len(data)/127+1)*3
	if len(compressed) > maxExpected {
		t.Fatalf("compressed size %d exceeds expected bound %d", len(compressed), maxExpected)
	}

	out, err := Decode(compressed, nil)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if !bytes.Equal(out, data) {
		t.Fatal("round-trip mismatch for large repeated input")
	}
}

func FuzzRoundTrip(f *testing.F) {
	f.Add([]byte(""))
	f.Add([]byte("hello world"))
	f.Add(bytes.Repeat([]byte{0x00}, 1024))
	f.Add(bytes.Repeat([]byte("abc"), 500))
	f.Add([]byte("ABCABCABCABC"))

	f.Fuzz(func(t *testing.T, data []byte) {
		if len(data) > 1<<16 {
			data = data[:1<<16]
		}

		compressed := Encode(data)
		assertByteBudget(t, compressed)

		out, err := Decode(compressed, nil)
		if err != nil {
			t.Fatalf("Decode failed: %v", err)
		}
		if !bytes.Equal(out, data) {
			t.Fatalf("round-trip mismatch: got=%d want=%d", len(out), len(data))
		}
	})
}
