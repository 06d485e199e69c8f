// Package entropy wraps the byte-level general-purpose compressor applied
// after dictionary encoding, together with the bitwise-complement
// conditioning transform applied around it.
package entropy

// Coder is the external compressor boundary. The codec does not depend on
// the coder's internal format; implementations must satisfy
// Decompress(Compress(b)) == b.
type Coder interface {
	Compress(data []byte) ([]byte, error)
	Decompress(data []byte) ([]byte, error)
}

// Involute returns data with every byte complemented. It is its own inverse.
func Involute(data []byte) []byte {
	out := make([]byte, len(data))
	for i, b := range data {
		out[i] = ^b
	}
	return out
}

// Seal conditions data with the involution and compresses it.
func Seal(c Coder, data []byte) ([]byte, error) {
	return c.Compress(Involute(data))
}

// Open decompresses data and undoes the conditioning involution. It is the
// inverse of Seal; each side applies the involution exactly once.
func Open(c Coder, data []byte) ([]byte, error) {
	plain, err := c.Decompress(data)
	if err != nil {
		return nil, err
	}
	return Involute(plain), nil
}

// Identity is a pass-through Coder used to test the codec in isolation.
type Identity struct{}

func (Identity) Compress(data []byte) ([]byte, error) {
	return append([]byte(nil), data...), nil
}

func (Identity) Decompress(data []byte) ([]byte, error) {
	return append([]byte(nil), data...), nil
}
