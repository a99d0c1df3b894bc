package loader

import (
	"context"
	"errors"
	"io/fs"
	"strings"
)

func loadFromFS(ctx context.Context, filesystem fs.FS, name string) ([]byte, error) {
	if filesystem == nil {
		return nil, errors.New("filesystem is not configured")
	}
	name = strings.TrimPrefix(name, "/")
	if name == "" {
		return nil, errors.New("fs path is required")
	}
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	return fs.ReadFile(filesystem, name)
}
