package entropy

import (
	"bytes"
	"strings"
	"testing"
)

func TestInvolute_IsItsOwnInverse(t *testing.T) {
	inputs := [][]byte{
		nil,
		{0x00},
		{0xFF},
		[]byte("the quick brown fox"),
		{0x00, 0x7F, 0x80, 0xFF},
	}

	for _, input := range inputs {
		twice := Involute(Involute(input))
		if !bytes.Equal(twice, input) {
			t.Errorf("Involute(Involute(%v)) = %v, want original", input, twice)
		}
	}
}

func TestInvolute_FlipsEveryByte(t *testing.T) {
	got := Involute([]byte{0x00, 0xFF, 0x0F})
	want := []byte{0xFF, 0x00, 0xF0}
	if !bytes.Equal(got, want) {
		t.Errorf("Involute = %v, want %v", got, want)
	}
}

func TestSealOpen_RoundTripWithIdentityCoder(t *testing.T) {
	data := []byte("tagged record stream payload")

	sealed, err := Seal(Identity{}, data)
	if err != nil {
		t.Fatalf("Seal returned unexpected error: %v", err)
	}

	// With an identity coder the sealed form is exactly the involution, so
	// the conditioning step is observable and applied exactly once.
	if !bytes.Equal(sealed, Involute(data)) {
		t.Error("Seal with identity coder must equal the involution of the input")
	}

	opened, err := Open(Identity{}, sealed)
	if err != nil {
		t.Fatalf("Open returned unexpected error: %v", err)
	}
	if !bytes.Equal(opened, data) {
		t.Errorf("Open(Seal(data)) = %v, want %v", opened, data)
	}
}

func TestIdentity_CopiesInput(t *testing.T) {
	data := []byte{1, 2, 3}

	out, err := Identity{}.Compress(data)
	if err != nil {
		t.Fatalf("Compress returned unexpected error: %v", err)
	}

	out[0] = 9
	if data[0] != 1 {
		t.Error("Compress must not alias its input")
	}
}

func TestKanzi_RoundTrip(t *testing.T) {
	payload := []byte(strings.Repeat("the quick brown fox jumps over the lazy dog. ", 200))

	tests := []struct {
		name string
		opts KanziOptions
	}{
		{"defaults", KanziOptions{}},
		{"huffman no transform", KanziOptions{Entropy: "HUFFMAN", Transform: "NONE"}},
		{"with checksum", KanziOptions{Entropy: "ANS0", Checksum: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			coder := NewKanzi(tt.opts)

			compressed, err := coder.Compress(payload)
			if err != nil {
				t.Fatalf("Compress returned unexpected error: %v", err)
			}

			restored, err := coder.Decompress(compressed)
			if err != nil {
				t.Fatalf("Decompress returned unexpected error: %v", err)
			}
			if !bytes.Equal(restored, payload) {
				t.Errorf("round trip mismatch: got %d bytes, want %d", len(restored), len(payload))
			}
		})
	}
}

func TestKanzi_SealOpenRoundTrip(t *testing.T) {
	coder := NewKanzi(KanziOptions{Entropy: "HUFFMAN"})
	data := []byte(strings.Repeat("payload ", 500))

	sealed, err := Seal(coder, data)
	if err != nil {
		t.Fatalf("Seal returned unexpected error: %v", err)
	}
	opened, err := Open(coder, sealed)
	if err != nil {
		t.Fatalf("Open returned unexpected error: %v", err)
	}
	if !bytes.Equal(opened, data) {
		t.Error("Seal/Open round trip mismatch")
	}
}

func TestKanzi_DecompressGarbageFails(t *testing.T) {
	coder := NewKanzi(KanziOptions{})
	if _, err := coder.Decompress([]byte("not a compressed stream")); err == nil {
		t.Error("expected error decompressing garbage input")
	}
}
