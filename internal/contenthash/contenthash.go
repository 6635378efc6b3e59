// Package contenthash computes and validates content fingerprints.
//
// A content hash is the lowercase hex SHA-256 digest of the raw content
// bytes, prefixed with "0x" so it can be passed to contracts as bytes32.
// The same bytes always produce the same hash regardless of file name,
// MIME type, or upload time.
package contenthash

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"

	"github.com/proofcapsule/pc-anchor/internal/domain"
)

// HashBytes computes the content hash of an in-memory payload.
func HashBytes(data []byte) domain.ContentHash {
	sum := sha256.Sum256(data)
	return domain.ContentHash("0x" + hex.EncodeToString(sum[:]))
}

// HashReader computes the content hash of a stream without buffering it.
// The reader is consumed to EOF.
func HashReader(r io.Reader) (domain.ContentHash, error) {
	h := sha256.New()
	if _, err := io.Copy(h, r); err != nil {
		return "", fmt.Errorf("failed to hash content stream: %w", err)
	}
	return domain.ContentHash("0x" + hex.EncodeToString(h.Sum(nil))), nil
}

// Valid reports whether s is a well-formed content hash.
func Valid(s string) bool {
	return domain.ContentHash(s).Valid()
}
