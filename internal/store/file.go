package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// FileGateway stores the state in a local file. Paths ending in .cbor are
// encoded as CBOR, anything else as JSON.
type FileGateway struct {
	path string
}

// NewFileGateway creates a gateway for path.
func NewFileGateway(path string) *FileGateway {
	return &FileGateway{path: path}
}

// Path returns the file the gateway writes to.
func (g *FileGateway) Path() string {
	return g.path
}

func (g *FileGateway) isCBOR() bool {
	return strings.EqualFold(filepath.Ext(g.path), ".cbor")
}

// Load reads the state file. A missing or empty file means nothing was saved.
func (g *FileGateway) Load(_ context.Context) (State, error) {
	data, err := os.ReadFile(g.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return EmptyState(), nil
		}
		return State{}, fmt.Errorf("read state file: %w", err)
	}
	if len(data) == 0 {
		return EmptyState(), nil
	}
	if g.isCBOR() {
		return UnmarshalCBOR(data)
	}
	return UnmarshalJSON(data)
}

// Save writes the state to a temporary file next to the target and renames it
// into place.
func (g *FileGateway) Save(_ context.Context, s State) error {
	var (
		data []byte
		err  error
	)
	if g.isCBOR() {
		data, err = MarshalCBOR(s)
	} else {
		data, err = MarshalJSON(s)
	}
	if err != nil {
		return fmt.Errorf("encode state: %w", err)
	}

	dir := filepath.Dir(g.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create state dir: %w", err)
	}
	tmp, err := os.CreateTemp(dir, filepath.Base(g.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer func() { _ = os.Remove(tmpName) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmpName, g.path); err != nil {
		return fmt.Errorf("rename state file: %w", err)
	}
	return nil
}

var _ Gateway = (*FileGateway)(nil)
