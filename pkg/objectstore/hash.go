package objectstore

import (
	"crypto/sha1"
	"encoding/hex"
)

// HashBytes computes the SHA-1 of data and returns it as a lowercase
// hex-encoded Hash. A blob's identity is exactly HashBytes(blob-content); a
// commit's identity is HashBytes of its canonical serialized form (see
// MarshalCommit). The hash function itself carries no notion of object
// type, unlike git's type-prefixed object envelope.
func HashBytes(data []byte) Hash {
	sum := sha1.Sum(data)
	return Hash(hex.EncodeToString(sum[:]))
}
