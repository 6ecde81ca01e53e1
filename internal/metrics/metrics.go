// Package metrics exposes Prometheus counters/histograms for chunk and
// byte throughput, satisfying sum.Recorder. It is opt-in: a
// sum.Processor built without sum.WithRecorder never touches this
// package, keeping the hot path allocation-free when unused.
package metrics

import "github.com/prometheus/client_golang/prometheus"

// Recorder implements sum.Recorder backed by Prometheus collectors.
type Recorder struct {
	chunksTotal         prometheus.Counter
	chunkSizeBytes      prometheus.Histogram
	bytesProcessedTotal prometheus.Counter
}

// New registers (or reuses, if already registered) the ISCC-SUM
// collectors against reg and returns a Recorder backed by them.
func New(reg prometheus.Registerer) *Recorder {
	r := &Recorder{
		chunksTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "isccsum",
			Name:      "chunks_total",
			Help:      "Number of content-defined chunk boundaries found.",
		}),
		chunkSizeBytes: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "isccsum",
			Name:      "chunk_size_bytes",
			Help:      "Distribution of content-defined chunk sizes in bytes.",
			Buckets:   prometheus.ExponentialBuckets(64, 2, 12),
		}),
		bytesProcessedTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "isccsum",
			Name:      "bytes_processed_total",
			Help:      "Total bytes pushed into any Processor.",
		}),
	}

	register := func(c prometheus.Collector) prometheus.Collector {
		if err := reg.Register(c); err != nil {
			if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
				return are.ExistingCollector
			}
		}
		return c
	}
	r.chunksTotal = register(r.chunksTotal).(prometheus.Counter)
	r.chunkSizeBytes = register(r.chunkSizeBytes).(prometheus.Histogram)
	r.bytesProcessedTotal = register(r.bytesProcessedTotal).(prometheus.Counter)

	return r
}

// ObserveChunk records one chunk boundary of the given size.
func (r *Recorder) ObserveChunk(size int) {
	r.chunksTotal.Inc()
	r.chunkSizeBytes.Observe(float64(size))
}

// ObserveBytes records bytes pushed into a Processor.
func (r *Recorder) ObserveBytes(n int) {
	r.bytesProcessedTotal.Add(float64(n))
}
