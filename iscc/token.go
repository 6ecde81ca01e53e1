package iscc

import (
	"encoding/base32"
	"errors"
	"strings"
)

// Prefix is the literal text every ISCC token begins with.
const Prefix = "ISCC:"

var b32 = base32.StdEncoding.WithPadding(base32.NoPadding)

// EncodeToken assembles a header and body into an "ISCC:"-prefixed,
// uppercase, unpadded RFC 4648 base32 text token.
func EncodeToken(header [2]byte, body []byte) string {
	raw := make([]byte, 0, len(header)+len(body))
	raw = append(raw, header[:]...)
	raw = append(raw, body...)
	return Prefix + b32.EncodeToString(raw)
}

// CompositeToken assembles the composite ISCC-SUM token from truncated
// Data-Code and Instance-Code bodies. Each body must be 8
// bytes (compact) or 16 bytes (wide).
func CompositeToken(dataBody, instanceBody []byte, wide bool) string {
	header := CompositeHeader(wide).Encode()
	body := make([]byte, 0, len(dataBody)+len(instanceBody))
	body = append(body, dataBody...)
	body = append(body, instanceBody...)
	return EncodeToken(header, body)
}

// UnitToken assembles a standalone full-length (256-bit) Data-Code or
// Instance-Code token.
func UnitToken(kind UnitKind, digest [32]byte) string {
	header := UnitHeader(kind).Encode()
	return EncodeToken(header, digest[:])
}

// ErrInvalidToken is returned by Decode when the token does not have
// the "ISCC:" prefix or is not valid base32.
var ErrInvalidToken = errors.New("iscc: invalid token")

// Decode reverses EncodeToken: it strips the "ISCC:" prefix, base32
// decodes the remainder, and splits the result into its 2-byte header
// and body.
func Decode(token string) (header [2]byte, body []byte, err error) {
	if !strings.HasPrefix(token, Prefix) {
		return header, nil, ErrInvalidToken
	}
	raw, err := b32.DecodeString(token[len(Prefix):])
	if err != nil {
		return header, nil, ErrInvalidToken
	}
	if len(raw) < 2 {
		return header, nil, ErrInvalidToken
	}
	header[0], header[1] = raw[0], raw[1]
	return header, raw[2:], nil
}
