package config

import (
	"fmt"
	"strings"
)

// Entropy codec names understood by the block compressor.
const (
	EntropyNone    = "NONE"
	EntropyHuffman = "HUFFMAN"
	EntropyANS0    = "ANS0"
	EntropyANS1    = "ANS1"
	EntropyRange   = "RANGE"
	EntropyFPAQ    = "FPAQ"
	EntropyCM      = "CM"
	EntropyTPAQ    = "TPAQ"
	EntropyTPAQX   = "TPAQX"
)

func NormalizeEntropy(raw string) (string, error) {
	entropy := strings.ToUpper(strings.TrimSpace(raw))
	if entropy == "" {
		entropy = EntropyTPAQ
	}
	switch entropy {
	case EntropyNone, EntropyHuffman, EntropyANS0, EntropyANS1,
		EntropyRange, EntropyFPAQ, EntropyCM, EntropyTPAQ, EntropyTPAQX:
		return entropy, nil
	default:
		return "", fmt.Errorf(
			"invalid entropy codec %q (expected NONE|HUFFMAN|ANS0|ANS1|RANGE|FPAQ|CM|TPAQ|TPAQX)",
			raw,
		)
	}
}
