// Package benchmark contains end-to-end throughput benchmarks and a
// smoke test for the ISCC-SUM pipeline. Benchmarks exercise the full
// path: content-defined chunking, MinHash similarity digesting, and
// BLAKE3 instance hashing, all driven through sum.Processor exactly as
// cmd/isum drives it.
//
// Example usage:
//
//	go test -bench=. ./benchmark
package benchmark

import (
	"math/rand"
	"testing"

	"github.com/iscc-sum/isccsum-go/sum"
)

func TestPipeline_Full(t *testing.T) {
	data := []byte("The quick brown fox jumps over the lazy dog")

	p := sum.New(sum.WithProfile(16))
	if err := p.Push(data); err != nil {
		t.Fatalf("push error: %v", err)
	}

	result, err := p.Finalize(true, true)
	if err != nil {
		t.Fatalf("finalize error: %v", err)
	}

	if result.FileSize != uint64(len(data)) {
		t.Fatalf("filesize mismatch: got %d, want %d", result.FileSize, len(data))
	}
	if result.Units[0] == "" || result.Units[1] == "" {
		t.Fatalf("expected units to be populated")
	}
}

func randomData(n int, seed int64) []byte {
	r := rand.New(rand.NewSource(seed))
	buf := make([]byte, n)
	r.Read(buf)
	return buf
}

func BenchmarkPipeline_Push(b *testing.B) {
	sizes := map[string]int{
		"64KiB":  64 * 1024,
		"1MiB":   1 << 20,
		"16MiB":  16 << 20,
	}

	for name, size := range sizes {
		data := randomData(size, 42)

		b.Run(name, func(b *testing.B) {
			b.SetBytes(int64(size))
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				p := sum.New()
				if err := p.Push(data); err != nil {
					b.Fatalf("push error: %v", err)
				}
				result, err := p.Finalize(true, false)
				if err != nil {
					b.Fatalf("finalize error: %v", err)
				}
				_ = result
			}
		})
	}
}

func BenchmarkPipeline_ChunkCountByProfile(b *testing.B) {
	data := randomData(4<<20, 7)
	profiles := map[string]int{
		"avg-256":  256,
		"avg-1024": 1024,
		"avg-4096": 4096,
	}

	for name, avg := range profiles {
		b.Run(name, func(b *testing.B) {
			b.SetBytes(int64(len(data)))
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				p := sum.New(sum.WithProfile(avg))
				if err := p.Push(data); err != nil {
					b.Fatalf("push error: %v", err)
				}
				if _, err := p.Finalize(true, false); err != nil {
					b.Fatalf("finalize error: %v", err)
				}
			}
		})
	}
}
