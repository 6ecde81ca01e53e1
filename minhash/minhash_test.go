package minhash

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_EmptyDigestIsStable(t *testing.T) {
	d1 := New()
	d2 := New()
	assert.Equal(t, d1.Sum(), d2.Sum())
	assert.Equal(t, 0, d1.Count())
}

func TestAdd_Deterministic(t *testing.T) {
	features := []uint32{1, 2, 3, 42, 0xDEADBEEF, 0, 0xFFFFFFFF}

	d1 := New()
	d2 := New()
	for _, f := range features {
		d1.Add(f)
		d2.Add(f)
	}

	require.Equal(t, d1.Sum(), d2.Sum())
	require.Equal(t, len(features), d1.Count())
}

func TestAdd_OrderIndependent(t *testing.T) {
	// MinHash folds a multiset of features via independent per-lane
	// minima, so digest order of insertion must not matter: min() is
	// commutative.
	a := New()
	for _, f := range []uint32{10, 20, 30, 40} {
		a.Add(f)
	}

	b := New()
	for _, f := range []uint32{40, 30, 20, 10} {
		b.Add(f)
	}

	assert.Equal(t, a.Sum(), b.Sum())
}

func TestAdd_DifferentFeaturesLikelyDiffer(t *testing.T) {
	a := New()
	for i := uint32(0); i < 50; i++ {
		a.Add(i)
	}

	b := New()
	for i := uint32(1000); i < 1050; i++ {
		b.Add(i)
	}

	assert.NotEqual(t, a.Sum(), b.Sum())
}

func TestSum_Is32Bytes(t *testing.T) {
	d := New()
	d.Add(7)
	sum := d.Sum()
	assert.Len(t, sum, 32)
}

func hamming(a, b [32]byte) int {
	n := 0
	for i := range a {
		x := a[i] ^ b[i]
		for x != 0 {
			n += int(x & 1)
			x >>= 1
		}
	}
	return n
}

func TestSum_SimilarFeatureSetsAreHammingClose(t *testing.T) {
	base := New()
	for i := uint32(0); i < 200; i++ {
		base.Add(i * 7)
	}

	almostSame := New()
	for i := uint32(0); i < 200; i++ {
		almostSame.Add(i * 7)
	}
	almostSame.Add(999999) // one extra chunk

	dist := hamming(base.Sum(), almostSame.Sum())
	assert.Less(t, dist, 64, "adding one chunk should not flip most bits")
}
