// Package chunkstore is an optional, off-the-hot-path debug/export
// facility: cmd/isum's --emit-chunks flag persists content-defined
// chunks to disk alongside a manifest, and --verify-chunks loads that
// manifest back to check the chunks and reassemble or restore the
// original file. It is never read from by the core Processor.
package chunkstore

import (
	"bytes"
	"encoding/hex"
	"fmt"
)

// Chunk records one content-defined chunk's position, size, gear
// feature, and content hash.
type Chunk struct {
	Offset  int64
	Size    int
	Feature uint32
	Hash    []byte
}

// HexHash returns the chunk's hash in hex string form.
func (c Chunk) HexHash() string {
	return hex.EncodeToString(c.Hash)
}

// String implements fmt.Stringer for convenient printing.
func (c Chunk) String() string {
	return fmt.Sprintf("Chunk{offset=%d, size=%d, feature=%08x, hash=%s}",
		c.Offset, c.Size, c.Feature, c.HexHash())
}

// VerifyChunk checks that data matches the chunk's recorded hash and
// size using the named legacyhash algorithm.
func (c Chunk) VerifyChunk(data []byte, hashAlgo string) error {
	newHash, err := hashWith(hashAlgo, data)
	if err != nil {
		return err
	}
	if !bytes.Equal(c.Hash, newHash) {
		return fmt.Errorf("chunkstore: hash mismatch: expected %x, got %x", c.Hash, newHash)
	}
	if c.Size != len(data) {
		return fmt.Errorf("chunkstore: size mismatch: expected %d, got %d", c.Size, len(data))
	}
	return nil
}
