// Package iscc implements the ISCC header/body framing and base32 text
// encoding: a 2-byte typed header, a raw body,
// and an "ISCC:" + RFC 4648 base32 (no padding) text token.
package iscc

// MainType values (high nibble of header byte 0).
const (
	MainTypeData     byte = 0b0011
	MainTypeInstance byte = 0b0100
	MainTypeISCC     byte = 0b0101 // composite ISCC-SUM
)

// SubType values (low nibble of header byte 0) for the composite form.
const (
	SubTypeSum     byte = 0b0101 // 64+64-bit compact
	SubTypeSumWide byte = 0b0111 // 128+128-bit wide
)

// SubType for standalone 256-bit units.
const SubTypeNone byte = 0b0000

// LengthCode values (low nibble of header byte 1).
const (
	LengthCodeNone   byte = 0b0000 // no optional units embedded in header
	LengthCode256Bit byte = 0b0111 // full 256-bit standalone unit
)

// Version is always V0 for this format.
const Version byte = 0b0000

// Header is the 2-byte ISCC type header.
type Header struct {
	MainType   byte
	SubType    byte
	Version    byte
	LengthCode byte
}

// Encode packs the header into its 2-byte wire form:
//
//	byte 0: (MainType << 4) | SubType
//	byte 1: (Version  << 4) | LengthCode
func (h Header) Encode() [2]byte {
	return [2]byte{
		(h.MainType << 4) | h.SubType,
		(h.Version << 4) | h.LengthCode,
	}
}

// DecodeHeader unpacks a 2-byte header.
func DecodeHeader(b [2]byte) Header {
	return Header{
		MainType:   b[0] >> 4,
		SubType:    b[0] & 0x0f,
		Version:    b[1] >> 4,
		LengthCode: b[1] & 0x0f,
	}
}

// CompositeHeader builds the header for an ISCC-SUM composite token.
func CompositeHeader(wide bool) Header {
	sub := SubTypeSum
	if wide {
		sub = SubTypeSumWide
	}
	return Header{MainType: MainTypeISCC, SubType: sub, Version: Version, LengthCode: LengthCodeNone}
}

// UnitKind selects which standalone full-length unit to frame.
type UnitKind int

const (
	UnitData UnitKind = iota
	UnitInstance
)

// UnitHeader builds the header for a standalone full-length (256-bit)
// Data-Code or Instance-Code unit.
func UnitHeader(kind UnitKind) Header {
	mt := MainTypeData
	if kind == UnitInstance {
		mt = MainTypeInstance
	}
	return Header{MainType: mt, SubType: SubTypeNone, Version: Version, LengthCode: LengthCode256Bit}
}
