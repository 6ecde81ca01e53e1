// Command isum prints ISCC-SUM checksums for one or more files, or for
// standard input when no files are given. It is the thin CLI wrapper
// spec'd around the sum package: file I/O and flag parsing live here;
// the core streaming computation does not. Only regular files are
// accepted; directories are not traversed.
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/iscc-sum/isccsum-go/cdc"
	"github.com/iscc-sum/isccsum-go/internal/chunkstore"
	"github.com/iscc-sum/isccsum-go/internal/config"
	"github.com/iscc-sum/isccsum-go/internal/metrics"
	"github.com/iscc-sum/isccsum-go/internal/tracehash"
	"github.com/iscc-sum/isccsum-go/sum"
)

const readBufSize = 1 << 20

type flags struct {
	narrow       bool
	units        bool
	verbose      bool
	emitChunks   string
	profilePath  string
	verifyChunks string
	restoreTo    string
}

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "isum: %s\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	var f flags

	root := &cobra.Command{
		Use:           "isum [files...]",
		Short:         "Generate ISCC Data-Code and Instance-Code checksums",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, paths []string) error {
			return runSum(cmd, paths, f, stdout, stderr)
		},
	}
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	root.Flags().BoolVarP(&f.narrow, "narrow", "n", false, "generate narrower 64+64-bit checksums (default: 128+128-bit)")
	root.Flags().BoolVarP(&f.units, "units", "u", false, "also print the full-length Data-Code and Instance-Code units")
	root.Flags().BoolVarP(&f.verbose, "verbose", "v", false, "print per-chunk debug tracing to stderr")
	root.Flags().StringVar(&f.emitChunks, "emit-chunks", "", "write a debug chunk manifest and chunk store under DIR")
	root.Flags().StringVar(&f.profilePath, "profile", "", "path to a chunk-size profile config file")
	root.Flags().StringVar(&f.verifyChunks, "verify-chunks", "", "verify a manifest written by --emit-chunks instead of summing")
	root.Flags().StringVar(&f.restoreTo, "restore-to", "", "with --verify-chunks, also reassemble the original file into DIR")

	return root.Execute()
}

func runSum(cmd *cobra.Command, paths []string, f flags, stdout, stderr io.Writer) error {
	if f.verifyChunks != "" {
		return runVerifyChunks(f.verifyChunks, f.restoreTo, stdout)
	}

	profile, err := config.Load(f.profilePath)
	if err != nil {
		return err
	}

	var logger sum.Logger
	if f.verbose {
		logger = tracehash.New(stderr, zerolog.DebugLevel)
	}

	reg := prometheus.NewRegistry()
	recorder := metrics.New(reg)

	if len(paths) == 0 {
		return processOne(cmd, "-", os.Stdin, f, profile, logger, recorder, stdout)
	}

	var firstErr error
	for _, p := range paths {
		if err := processPath(cmd, p, f, profile, logger, recorder, stdout); err != nil {
			if firstErr == nil {
				firstErr = err
			}
			fmt.Fprintf(stderr, "isum: %s\n", err)
		}
	}
	return firstErr
}

func processPath(cmd *cobra.Command, path string, f flags, profile config.Profile, logger sum.Logger, recorder sum.Recorder, stdout io.Writer) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	if !info.Mode().IsRegular() {
		return fmt.Errorf("%s: not a regular file", path)
	}

	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	defer file.Close()

	return processOne(cmd, path, file, f, profile, logger, recorder, stdout)
}

func processOne(cmd *cobra.Command, name string, r io.Reader, f flags, profile config.Profile, logger sum.Logger, recorder sum.Recorder, stdout io.Writer) error {
	opts := []sum.Option{sum.WithProfile(profile.AvgSize), sum.WithRecorder(recorder)}
	if logger != nil {
		opts = append(opts, sum.WithLogger(logger))
	}
	p := sum.New(opts...)

	if f.emitChunks == "" {
		buf := make([]byte, readBufSize)
		for {
			n, err := r.Read(buf)
			if n > 0 {
				if err := p.Push(buf[:n]); err != nil {
					return fmt.Errorf("%s: %w", name, err)
				}
			}
			if err == io.EOF {
				break
			}
			if err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}
		}
		return finish(p, name, f, stdout)
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	if err := p.Push(data); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	if err := emitChunks(data, name, f.emitChunks, profile.AvgSize); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	return finish(p, name, f, stdout)
}

func finish(p *sum.Processor, name string, f flags, stdout io.Writer) error {
	result, err := p.Finalize(!f.narrow, f.units)
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}

	fmt.Fprintf(stdout, "%s *%s\n", result.ISCC, name)
	if f.units {
		fmt.Fprintf(stdout, "  data:     %s\n", result.Units[0])
		fmt.Fprintf(stdout, "  instance: %s\n", result.Units[1])
	}
	return nil
}

// emitChunks re-runs the content-defined chunker over data (independent
// of the sum.Processor pass above) so each chunk's bytes can be saved
// and recorded in a manifest under dir, for later verification or
// reassembly via the chunkstore package.
func emitChunks(data []byte, name, dir string, avgSize int) error {
	store, err := chunkstore.NewFSStorage(dir)
	if err != nil {
		return err
	}
	manifest := chunkstore.NewManifest(filepath.Base(name), int64(len(data)), "sha256")

	chunker := cdc.NewChunker(cdc.NewParams(avgSize))
	var offset int64
	buf := data
	for len(buf) > 0 {
		cut, feature, found := chunker.Next(buf)
		if found {
			piece := buf[:cut]
			hash, err := chunkstore.HashSHA256(piece)
			if err != nil {
				return err
			}
			ch := chunkstore.Chunk{Offset: offset, Size: len(piece), Feature: feature, Hash: hash}
			if err := store.Save(ch, piece); err != nil {
				return err
			}
			manifest.Append(ch)
			offset += int64(len(piece))
		}
		buf = buf[cut:]
	}
	if chunker.Pos() > 0 {
		piece := data[offset:]
		hash, err := chunkstore.HashSHA256(piece)
		if err != nil {
			return err
		}
		ch := chunkstore.Chunk{Offset: offset, Size: len(piece), Feature: chunker.CurrentFeature(), Hash: hash}
		if err := store.Save(ch, piece); err != nil {
			return err
		}
		manifest.Append(ch)
	}

	return manifest.Save(filepath.Join(dir, filepath.Base(name)+".manifest.json"))
}

// runVerifyChunks loads a manifest written by --emit-chunks, verifies
// every chunk it names against the chunk store sitting alongside it,
// and optionally reassembles the original file into restoreTo.
func runVerifyChunks(manifestPath, restoreTo string, stdout io.Writer) error {
	manifest, err := chunkstore.LoadManifest(manifestPath)
	if err != nil {
		return fmt.Errorf("%s: %w", manifestPath, err)
	}

	store, err := chunkstore.NewFSStorage(filepath.Dir(manifestPath))
	if err != nil {
		return err
	}

	if err := manifest.VerifyFile(store); err != nil {
		return fmt.Errorf("%s: %w", manifestPath, err)
	}

	if restoreTo == "" {
		fmt.Fprintf(stdout, "OK %s (%d chunks verified)\n", manifest.FileName, len(manifest.Chunks))
		return nil
	}

	if err := manifest.RestoreFile(store, restoreTo); err != nil {
		return fmt.Errorf("%s: %w", manifestPath, err)
	}
	fmt.Fprintf(stdout, "OK %s (restored to %s)\n", manifest.FileName, filepath.Join(restoreTo, manifest.FileName))
	return nil
}
