// Package minhash implements a streaming, fixed-size MinHash-derived
// similarity digest over a sequence of 32-bit chunk features.
package minhash

// laneConstant holds the multiplier/offset pair for one MinHash lane's
// keyed permutation p(f) = f*A + B (mod 2^32).
type laneConstant struct {
	A, B uint32
}

// laneConstants is the frozen set of 64 per-lane permutation constants.
// Every A is odd, making f -> f*A+B a bijection on uint32 so each lane
// behaves as an independent permutation of the feature space. This
// table is a wire constant: embedded verbatim, never regenerated.
var laneConstants = [Lanes]laneConstant{
	{0xa1b965f5, 0x6e789e6a}, {0x8009454f, 0x06c45d18}, {0x724c81ed, 0xf88bb8a8},
	{0x51a8749b, 0x1b39896a}, {0x747ea2eb, 0x53cb9f0c}, {0x1f4532e1, 0x2c829abe},
	{0xc916ab3d, 0xc584133a}, {0x41c98ac3, 0x3ee57890}, {0x368cb0a7, 0xf3b8488c},
	{0x3cb13d09, 0x657eecdd}, {0x055bdef7, 0xc2d326e0}, {0xe0bbdb7b, 0x8621a03f},
	{0x983aa92f, 0x8e1f7555}, {0x00cc4d19, 0xb54e0f16}, {0x971d80ab, 0x84bb3f97},
	{0x75521255, 0x7d29825c}, {0x2b7f7f87, 0xc3cf1710}, {0x83914f65, 0x3466e9a0},
	{0x5a4485ad, 0xd81a8d2b}, {0x100b9ed7, 0xdb01602b}, {0x1825f10d, 0xa9038a92},
	{0x0dca2f6b, 0xedf5f1d9}, {0x7bd2634d, 0x54496ad6}, {0xf5407269, 0xdd7c01d4},
	{0xdb4c4f7b, 0x935e82f1}, {0x92233301, 0x69b82ebc}, {0x7de1d511, 0x40d29eb5},
	{0xb45c6317, 0xa2f09dab}, {0x0f4d3873, 0xee521d7a}, {0x72f3454f, 0xf16952ee},
	{0xa8e40225, 0x377d35de}, {0x4963bab1, 0x0c7de806}, {0x111ac529, 0x05582d37},
	{0x599dc6f7, 0xd254741f}, {0x93d108c3, 0x69630f75}, {0x81daa383, 0x417ef961},
	{0xb43343a1, 0x3c3c41a3}, {0xcbe531df, 0x6e19905d}, {0x24851729, 0x4fa9fa73},
	{0xa792922b, 0x84eb4454}, {0x918175cf, 0x134f7096}, {0x302278a9, 0x07dc930b},
	{0x7019e937, 0x12c015a9}, {0x52ebf439, 0xcc06c316}, {0x0a691e37, 0xecee6563},
	{0x763e79ad, 0x3e84ecb1}, {0x743aae49, 0x690ed476}, {0xb1a1f2e1, 0x774615d7},
	{0x4f4f52db, 0x22b353f0}, {0xa71a5eb1, 0xe3ddd86b}, {0xb6513357, 0xdf268ade},
	{0xd4367d77, 0x2098eb73}, {0x23ce3c71, 0x03d68453}, {0x0043c715, 0xc952c562},
	{0x844f1705, 0x9b196bca}, {0xdd9e0ec1, 0x30260345}, {0x82bb9699, 0xcf448a58},
	{0xcbc87657, 0xf4a578dc}, {0xa17b3c8f, 0xbfdeaed9}, {0x1d5c5d7b, 0xed79402d},
	{0x1cbbf171, 0x55f070ab}, {0x29a88f1d, 0x3e00a349}, {0xb8bb18fb, 0xe255b237},
	{0x6c6ad50f, 0x2a7b67af},
}

// Lanes is the number of independent MinHash accumulators.
const Lanes = 64

// sentinel is the initial "infinitely large" value for each lane.
const sentinel uint32 = 0xFFFFFFFF

// Digest is the streaming MinHash similarity accumulator. The zero
// value is not usable; construct with New.
type Digest struct {
	lanes [Lanes]uint32
	n     int
}

// New returns a Digest with every lane at its sentinel minimum, ready
// to Add chunk features.
func New() *Digest {
	d := &Digest{}
	for i := range d.lanes {
		d.lanes[i] = sentinel
	}
	return d
}

// Add folds one chunk feature into the running digest.
func (d *Digest) Add(feature uint32) {
	for i, lc := range laneConstants {
		p := feature*lc.A + lc.B
		if p < d.lanes[i] {
			d.lanes[i] = p
		}
	}
	d.n++
}

// Count returns the number of features folded into the digest so far.
func (d *Digest) Count() int {
	return d.n
}

// Sum derives the 256-bit similarity digest from the current lane
// minima. For each lane i, its low 4 bits are packed into the output
// as bit (i*4+j) (j in 0..4), MSB-first within each output byte. This
// packing is the wire format; it must not be changed independently of
// conformance vectors.
func (d *Digest) Sum() [32]byte {
	var out [32]byte
	for i, lane := range d.lanes {
		for j := 0; j < 4; j++ {
			bitIndex := i*4 + j
			byteIdx := bitIndex / 8
			bitInByte := 7 - (bitIndex % 8)
			bit := (lane >> uint(j)) & 1
			out[byteIdx] |= byte(bit) << uint(bitInByte)
		}
	}
	return out
}
