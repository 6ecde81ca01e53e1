// Package legacyhash is a small pluggable hash.Hash registry selecting
// an algorithm by name, used by the chunk-store debug/export path in
// internal/chunkstore, which is independent of the BLAKE3-only
// Instance-Code.
package legacyhash

import (
	"crypto/sha1"
	"crypto/sha256"
	"fmt"
	"hash"

	"github.com/zeebo/blake3"
	"golang.org/x/crypto/blake2b"
)

// Registry is a factory for hash.Hash instances keyed by algorithm
// name. Name is one of "sha256" (default when empty), "sha1",
// "blake3", or "blake2b".
type Registry struct {
	Name string
}

// New creates a fresh hash.Hash for the configured algorithm.
func (r Registry) New() (hash.Hash, error) {
	switch r.Name {
	case "", "sha256":
		return sha256.New(), nil
	case "sha1":
		return sha1.New(), nil
	case "blake3":
		return blake3.New(), nil
	case "blake2b":
		return blake2b.New256(nil)
	default:
		return nil, fmt.Errorf("legacyhash: unsupported algorithm %q", r.Name)
	}
}
