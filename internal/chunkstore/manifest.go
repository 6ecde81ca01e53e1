package chunkstore

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
)

// Manifest records the ordered chunk composition of one --emit-chunks
// run, so it can later be verified or reassembled.
type Manifest struct {
	FileName      string  `json:"file_name"`
	FileSize      int64   `json:"file_size"`
	HashAlgorithm string  `json:"hash_algorithm"`
	Chunks        []Chunk `json:"chunks"`

	mu sync.Mutex
}

// NewManifest creates a manifest for a given file.
func NewManifest(filename string, fileSize int64, hashAlgo string) *Manifest {
	return &Manifest{
		FileName:      filename,
		FileSize:      fileSize,
		HashAlgorithm: hashAlgo,
		Chunks:        make([]Chunk, 0),
	}
}

// Append records a chunk under lock, so concurrent storage writers can
// share one manifest.
func (m *Manifest) Append(ch Chunk) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Chunks = append(m.Chunks, ch)
}

// Save serializes the manifest as indented JSON at path.
func (m *Manifest) Save(path string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	data, err := json.MarshalIndent(m, "", " ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// LoadManifest loads a manifest previously written by Save.
func LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, err
	}
	return &m, nil
}

// VerifyFile validates every chunk listed in the manifest against its
// stored content in s.
func (m *Manifest) VerifyFile(s Storage) error {
	for _, ch := range m.Chunks {
		data, err := s.Load(ch.HexHash())
		if err != nil {
			return fmt.Errorf("chunkstore: load chunk %s: %w", ch.HexHash(), err)
		}
		if err := ch.VerifyChunk(data, m.HashAlgorithm); err != nil {
			return err
		}
	}
	return nil
}

// Reassemble writes the original file contents back out, verifying
// each chunk's hash as it goes.
func (m *Manifest) Reassemble(s Storage, w io.Writer) error {
	for _, ch := range m.Chunks {
		data, err := s.Load(ch.HexHash())
		if err != nil {
			return fmt.Errorf("chunkstore: load chunk %s: %w", ch.HexHash(), err)
		}
		if err := ch.VerifyChunk(data, m.HashAlgorithm); err != nil {
			return err
		}
		if _, err := w.Write(data); err != nil {
			return fmt.Errorf("chunkstore: write chunk %s: %w", ch.HexHash(), err)
		}
	}
	return nil
}

// RestoreFile reassembles the manifest's file into dir/FileName.
func (m *Manifest) RestoreFile(s Storage, dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("chunkstore: create restore dir: %w", err)
	}

	dstPath := filepath.Join(dir, m.FileName)
	f, err := os.Create(dstPath)
	if err != nil {
		return fmt.Errorf("chunkstore: create file %s: %w", dstPath, err)
	}
	defer f.Close()

	return m.Reassemble(s, f)
}
