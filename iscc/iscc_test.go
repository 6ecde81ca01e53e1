package iscc

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHeader_EncodeDecodeRoundTrip(t *testing.T) {
	h := CompositeHeader(false)
	enc := h.Encode()
	got := DecodeHeader(enc)
	assert.Equal(t, h, got)
}

func TestCompositeHeader_Fields(t *testing.T) {
	compact := CompositeHeader(false).Encode()
	assert.Equal(t, byte(0x55), compact[0]) // 0101 0101
	assert.Equal(t, byte(0x00), compact[1])

	wide := CompositeHeader(true).Encode()
	assert.Equal(t, byte(0x57), wide[0]) // 0101 0111
	assert.Equal(t, byte(0x00), wide[1])
}

func TestUnitHeader_Fields(t *testing.T) {
	data := UnitHeader(UnitData).Encode()
	assert.Equal(t, byte(0x30), data[0]) // 0011 0000
	assert.Equal(t, byte(0x07), data[1]) // 0000 0111

	inst := UnitHeader(UnitInstance).Encode()
	assert.Equal(t, byte(0x40), inst[0]) // 0100 0000
	assert.Equal(t, byte(0x07), inst[1])
}

func TestCompositeToken_Shape(t *testing.T) {
	dataBody := make([]byte, 8)
	instBody := make([]byte, 8)
	for i := range dataBody {
		dataBody[i] = byte(i)
		instBody[i] = byte(i + 100)
	}

	token := CompositeToken(dataBody, instBody, false)
	require.True(t, strings.HasPrefix(token, "ISCC:"))
	require.Equal(t, strings.ToUpper(token), token)
	require.NotContains(t, token, "=")

	header, body, err := Decode(token)
	require.NoError(t, err)
	require.Len(t, body, 16)
	got := DecodeHeader(header)
	assert.Equal(t, MainTypeISCC, got.MainType)
	assert.Equal(t, SubTypeSum, got.SubType)
}

func TestCompositeToken_WideIsTwiceAsLong(t *testing.T) {
	dataBody := make([]byte, 16)
	instBody := make([]byte, 16)
	token := CompositeToken(dataBody, instBody, true)

	_, body, err := Decode(token)
	require.NoError(t, err)
	require.Len(t, body, 32)
}

func TestUnitToken_Is256Bit(t *testing.T) {
	var digest [32]byte
	for i := range digest {
		digest[i] = byte(i)
	}
	token := UnitToken(UnitData, digest)
	_, body, err := Decode(token)
	require.NoError(t, err)
	require.Len(t, body, 32)
}

func TestDecode_RejectsMissingPrefix(t *testing.T) {
	_, _, err := Decode("NOTANISCC")
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestDecode_RejectsBadBase32(t *testing.T) {
	_, _, err := Decode("ISCC:not-valid-base32!!!")
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestCompactIsPrefixOfWide(t *testing.T) {
	// Invariant 6: compact body bytes are a byte-prefix of the wide
	// body's corresponding halves, for the same underlying digests.
	dataDigest := make([]byte, 32)
	instDigest := make([]byte, 32)
	for i := range dataDigest {
		dataDigest[i] = byte(i)
		instDigest[i] = byte(255 - i)
	}

	compact := CompositeToken(dataDigest[:8], instDigest[:8], false)
	wide := CompositeToken(dataDigest[:16], instDigest[:16], true)

	_, compactBody, err := Decode(compact)
	require.NoError(t, err)
	_, wideBody, err := Decode(wide)
	require.NoError(t, err)

	assert.Equal(t, compactBody[:8], wideBody[:8])
	assert.Equal(t, compactBody[8:16], wideBody[16:24])
}
