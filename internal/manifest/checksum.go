package manifest

import (
	"crypto/sha256"
	"encoding/hex"
)

// Checksum returns the SHA-256 digest of data as a 64-character lowercase
// hex string. Deterministic and side-effect free; the empty input hashes to
// the well-known empty-string digest.
func Checksum(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// ComputeChecksum hashes text content. The string is encoded as UTF-8 (Go's
// native string representation) before hashing, so it agrees with Checksum
// over the same bytes.
func ComputeChecksum(content string) string {
	return Checksum([]byte(content))
}
