// Package snapshot persists matrices as versioned msgpack payloads.
// Writes go through a temp file and an atomic rename so a crashed write
// never leaves a torn snapshot behind.
package snapshot

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/vmihailenco/msgpack/v5"
)

// Current schema version - increment when Payload format changes.
const schemaVersion uint16 = 1

// Matrix kinds stored in a payload.
const (
	KindFloat uint8 = iota
	KindInt
)

// Payload is the on-disk matrix representation.
type Payload struct {
	Schema uint16

	Kind uint8
	Rows int
	Cols int

	F64 []float64 // KindFloat
	I64 []int64   // KindInt
}

// Save serializes a payload to path atomically.
func Save(path string, payload *Payload) error {
	payload.Schema = schemaVersion
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(filepath.Dir(path), "tmp-*")
	if err != nil {
		return err
	}
	tmp := f.Name()
	defer os.Remove(tmp)

	enc := msgpack.NewEncoder(f)
	if err := enc.Encode(payload); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

// Load reads and validates a payload from path.
func Load(path string) (*Payload, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var payload Payload
	dec := msgpack.NewDecoder(f)
	if err := dec.Decode(&payload); err != nil {
		return nil, fmt.Errorf("snapshot: decode %q: %w", path, err)
	}
	if payload.Schema != schemaVersion {
		return nil, fmt.Errorf("snapshot: %q has schema %d, want %d", path, payload.Schema, schemaVersion)
	}
	if payload.Rows < 0 || payload.Cols < 0 {
		return nil, fmt.Errorf("snapshot: %q has invalid shape %dx%d", path, payload.Rows, payload.Cols)
	}
	total := payload.Rows * payload.Cols
	switch payload.Kind {
	case KindFloat:
		if len(payload.F64) != total {
			return nil, fmt.Errorf("snapshot: %q float buffer length %d != %dx%d", path, len(payload.F64), payload.Rows, payload.Cols)
		}
	case KindInt:
		if len(payload.I64) != total {
			return nil, fmt.Errorf("snapshot: %q int buffer length %d != %dx%d", path, len(payload.I64), payload.Rows, payload.Cols)
		}
	default:
		return nil, fmt.Errorf("snapshot: %q has unknown kind %d", path, payload.Kind)
	}
	return &payload, nil
}
