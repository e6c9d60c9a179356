package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"taskboard/pkg/metrics"
)

// File persists one JSON collection as a single document on disk. There is
// no partial update: Read returns the whole collection and Write replaces
// the whole document, pretty-printed. An absent, empty, or unparseable file
// reads as the empty collection.
type File struct {
	path string
}

func NewFile(path string) *File {
	return &File{path: path}
}

func (f *File) Path() string { return f.path }

// Read unmarshals the collection into out. out is left untouched when the
// file is absent, empty, or not valid JSON.
func (f *File) Read(out any) error {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return err
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		// A corrupt document reads as empty, same as an absent file.
		return nil
	}
	return nil
}

// Write replaces the whole document with v.
func (f *File) Write(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	if dir := filepath.Dir(f.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	if err := os.WriteFile(f.path, data, 0o644); err != nil {
		return err
	}
	metrics.IncStoreWrite(filepath.Base(f.path))
	return nil
}
