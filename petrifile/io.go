package petrifile

import (
	"context"
	"fmt"
	"io"
	"os"
)

// Service decodes net definitions of one file format version.
type Service interface {
	Load(ctx context.Context, r io.Reader) (*Petrifile, error)
	Version() Version
}

type Version string

const (
	Unknown Version = ""
	V1      Version = "v1"
)

// LoadFile opens path and decodes it with srv.
func LoadFile(ctx context.Context, srv Service, path string) (*Petrifile, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = f.Close()
	}()
	p, err := srv.Load(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return p, nil
}
