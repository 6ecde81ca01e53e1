package chunkstore

import "github.com/iscc-sum/isccsum-go/internal/legacyhash"

// hashWith computes the digest of data using the named algorithm.
func hashWith(hashAlgo string, data []byte) ([]byte, error) {
	h, err := legacyhash.Registry{Name: hashAlgo}.New()
	if err != nil {
		return nil, err
	}
	h.Write(data)
	return h.Sum(nil), nil
}

// HashSHA256 computes a chunk content hash the way callers outside
// this package (cmd/isum's --emit-chunks path) need to when building
// Chunk values by hand.
func HashSHA256(data []byte) ([]byte, error) {
	return hashWith("sha256", data)
}
