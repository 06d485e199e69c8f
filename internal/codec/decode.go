package codec

import (
	"strings"

	"github.com/example/go-blackhole/internal/dict"
)

// DecodeResult is the outcome of scanning a tagged record stream.
//
// Truncated reports that the scan stopped before the end of the buffer,
// either because a record was cut off mid-frame or because an unknown tag
// byte was seen. Consumed is the offset of the first byte that was not
// decoded; for a clean stream it equals the buffer length.
type DecodeResult struct {
	Text      string
	Consumed  int
	Truncated bool
}

// Decode reconstructs text from a tagged record stream. Records decoded
// before a truncation point are always preserved, so cutting the stream at a
// record boundary yields a prefix of the full decode. A dictionary reference
// whose id is absent from idx contributes an empty string; decoding continues.
func Decode(data []byte, idx *dict.Index) DecodeResult {
	var sb strings.Builder
	i := 0

	for i < len(data) {
		switch data[i] {
		case tagDictRef:
			if i+4 > len(data) {
				return DecodeResult{Text: sb.String(), Consumed: i, Truncated: true}
			}
			id := uint32(data[i+1])<<16 | uint32(data[i+2])<<8 | uint32(data[i+3])
			if word, ok := idx.WordOf(id); ok {
				sb.WriteString(word)
			}
			i += 4

		case tagLiteralWord, tagLiteralSpace:
			if i+2 > len(data) {
				return DecodeResult{Text: sb.String(), Consumed: i, Truncated: true}
			}
			n := int(data[i+1])
			if i+2+n > len(data) {
				return DecodeResult{Text: sb.String(), Consumed: i, Truncated: true}
			}
			sb.Write(data[i+2 : i+2+n])
			i += 2 + n

		default:
			// Unknown tag: framing is lost from here on.
			return DecodeResult{Text: sb.String(), Consumed: i, Truncated: true}
		}
	}

	return DecodeResult{Text: sb.String(), Consumed: i}
}
