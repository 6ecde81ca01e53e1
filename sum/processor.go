// Package sum implements the Processor façade: a single-pass streaming
// pipeline that folds pushed bytes into both a Data-Code (similarity
// digest) and an Instance-Code (integrity digest), and assembles the
// pair into an ISCC-SUM token at Finalize.
package sum

import (
	"errors"

	"github.com/iscc-sum/isccsum-go/cdc"
	"github.com/iscc-sum/isccsum-go/instance"
	"github.com/iscc-sum/isccsum-go/iscc"
	"github.com/iscc-sum/isccsum-go/minhash"
)

// ErrAlreadyFinalized is returned by Push or Finalize once Finalize has
// already been called on a Processor.
var ErrAlreadyFinalized = errors.New("sum: processor already finalized")

// Recorder receives chunk- and byte-level observations as a Processor
// runs. It is optional instrumentation; a nil Recorder is always safe
// to use and costs nothing beyond a nil check.
type Recorder interface {
	ObserveChunk(size int)
	ObserveBytes(n int)
}

// Logger receives low-volume diagnostic events. A nil Logger is safe.
type Logger interface {
	Debugf(format string, args ...any)
}

// Option configures a Processor at construction time.
type Option func(*Processor)

// WithRecorder attaches a Recorder for chunk/byte metrics.
func WithRecorder(r Recorder) Option {
	return func(p *Processor) { p.recorder = r }
}

// WithLogger attaches a Logger for verbose tracing.
func WithLogger(l Logger) Option {
	return func(p *Processor) { p.logger = l }
}

// WithProfile overrides the default chunking profile (average chunk
// size in bytes). The default is cdc.DefaultAvgSize.
func WithProfile(avgSize int) Option {
	return func(p *Processor) { p.chunker = cdc.NewChunker(cdc.NewParams(avgSize)) }
}

// Processor is the streaming ISCC-SUM engine.
// It is not safe for concurrent use by more than one goroutine; a
// finalized Processor's Result fields may be read concurrently.
type Processor struct {
	chunker   *cdc.Chunker
	sim       *minhash.Digest
	inst      *instance.Hasher
	recorder  Recorder
	logger    Logger
	finalized bool
}

// New returns an empty Processor using the default chunking profile.
func New(opts ...Option) *Processor {
	p := &Processor{
		chunker: cdc.NewChunker(cdc.NewParams(cdc.DefaultAvgSize)),
		sim:     minhash.New(),
		inst:    instance.New(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Push ingests data, deterministically regardless of how callers slice
// the overall stream across multiple Push calls. It is an error to
// Push after Finalize.
func (p *Processor) Push(data []byte) error {
	if p.finalized {
		return ErrAlreadyFinalized
	}

	p.inst.Write(data)
	if p.recorder != nil {
		p.recorder.ObserveBytes(len(data))
	}

	buf := data
	for len(buf) > 0 {
		priorPos := p.chunker.Pos()
		cut, feature, found := p.chunker.Next(buf)
		if found {
			size := priorPos + cut
			p.sim.Add(feature)
			if p.recorder != nil {
				p.recorder.ObserveChunk(size)
			}
			if p.logger != nil {
				p.logger.Debugf("chunk boundary: size=%d bytes, feature=%08x", size, feature)
			}
		}
		buf = buf[cut:]
	}

	return nil
}

// Result is the output of Finalize.
type Result struct {
	ISCC     string
	DataHash string
	FileSize uint64
	// Units holds the full-length Data-Code and Instance-Code tokens,
	// in that order, when requested. It is the zero value otherwise.
	Units [2]string
}

// Finalize closes any open chunk, folds its feature into the
// similarity digest (the final residue always contributes),
// and assembles the ISCC-SUM Result. After Finalize returns
// successfully, the Processor is terminal: further Push or Finalize
// calls return ErrAlreadyFinalized.
func (p *Processor) Finalize(wide, includeUnits bool) (Result, error) {
	if p.finalized {
		return Result{}, ErrAlreadyFinalized
	}
	p.finalized = true

	if p.chunker.Pos() > 0 {
		p.sim.Add(p.chunker.CurrentFeature())
		if p.recorder != nil {
			p.recorder.ObserveChunk(p.chunker.Pos())
		}
	}

	dataDigest := p.sim.Sum()
	instDigest := p.inst.Sum()

	bodyLen := 8
	if wide {
		bodyLen = 16
	}

	result := Result{
		ISCC:     iscc.CompositeToken(dataDigest[:bodyLen], instDigest[:bodyLen], wide),
		DataHash: instance.Multihash(instDigest),
		FileSize: p.inst.FileSize(),
	}

	if includeUnits {
		result.Units = [2]string{
			iscc.UnitToken(iscc.UnitData, dataDigest),
			iscc.UnitToken(iscc.UnitInstance, instDigest),
		}
	}

	if p.logger != nil {
		p.logger.Debugf("finalized: %d chunks, %d bytes", p.sim.Count(), result.FileSize)
	}

	return result, nil
}
