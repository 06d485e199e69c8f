// Package integrity computes the content digest reported alongside
// compression and decompression results. The digest is informational only;
// it is never embedded in the compressed stream.
package integrity

import (
	"crypto/sha256"
	"encoding/hex"
)

// SHA256Hex returns the lowercase hex SHA-256 digest of data.
func SHA256Hex(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
