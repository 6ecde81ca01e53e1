// Package instance implements the streaming cryptographic Instance-Code
// digest: a BLAKE3 hash of the exact byte stream plus its multihash
// encoding.
package instance

import (
	"encoding/hex"

	"github.com/zeebo/blake3"
)

// multihash BLAKE3 code and digest length.
const (
	multihashCodeBLAKE3 = 0x1e
	digestLength        = 0x20
)

// Hasher tracks a streaming BLAKE3 digest of the bytes pushed to it
// plus the total byte count. It satisfies io.Writer.
type Hasher struct {
	h        *blake3.Hasher
	fileSize uint64
}

// New returns an empty Hasher.
func New() *Hasher {
	return &Hasher{h: blake3.New()}
}

// Write feeds bytes into the running BLAKE3 state. It never returns an
// error since BLAKE3 is a total function over any byte sequence.
func (h *Hasher) Write(p []byte) (int, error) {
	n, err := h.h.Write(p)
	h.fileSize += uint64(n)
	return n, err
}

// FileSize reports the total number of bytes written so far.
func (h *Hasher) FileSize() uint64 {
	return h.fileSize
}

// Sum reads the 256-bit BLAKE3 digest of everything written so far.
// Per the hash.Hash contract, it does not disturb the running state,
// so further Write calls continue to accumulate correctly.
func (h *Hasher) Sum() [32]byte {
	var out [32]byte
	copy(out[:], h.h.Sum(nil))
	return out
}

// Multihash renders sum as a BLAKE3 multihash string: a one-byte
// algorithm code (0x1e), a one-byte digest length (0x20), and the raw
// digest, all as lowercase hex.
func Multihash(sum [32]byte) string {
	buf := make([]byte, 0, 2+len(sum))
	buf = append(buf, multihashCodeBLAKE3, digestLength)
	buf = append(buf, sum[:]...)
	return hex.EncodeToString(buf)
}
