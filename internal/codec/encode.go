package codec

import (
	"bytes"

	"github.com/example/go-blackhole/internal/dict"
)

// Wire tags. Each record starts with one tag byte; tag 1 is followed by a
// 3-byte big-endian dictionary id, tags 0 and 2 by a length byte and that
// many raw UTF-8 bytes.
const (
	tagLiteralWord  byte = 0
	tagDictRef      byte = 1
	tagLiteralSpace byte = 2
)

// maxLiteralLen is the payload cap imposed by the single length byte.
// Longer runs are silently truncated; the loss is not recoverable on decode.
const maxLiteralLen = 255

// Encode frames tokens as tagged records. Word tokens found in idx with an
// id below 1<<24 become dictionary references; everything else is emitted
// literally. The output is deterministic for a given input and index.
func Encode(tokens []Token, idx *dict.Index) []byte {
	var buf bytes.Buffer
	for _, tok := range tokens {
		if tok.Kind == Space {
			writeLiteral(&buf, tagLiteralSpace, tok.Text)
			continue
		}
		if id, ok := idx.IDOf(tok.Text); ok && id < dict.MaxEntries {
			buf.WriteByte(tagDictRef)
			buf.WriteByte(byte(id >> 16))
			buf.WriteByte(byte(id >> 8))
			buf.WriteByte(byte(id))
			continue
		}
		writeLiteral(&buf, tagLiteralWord, tok.Text)
	}
	return buf.Bytes()
}

func writeLiteral(buf *bytes.Buffer, tag byte, text string) {
	n := len(text)
	if n > maxLiteralLen {
		n = maxLiteralLen
	}
	buf.WriteByte(tag)
	buf.WriteByte(byte(n))
	buf.WriteString(text[:n])
}
