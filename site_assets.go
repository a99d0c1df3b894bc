package portfolio

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

//go:embed site/index.html site/data/*.json
var embeddedSite embed.FS

// SiteFS exposes the starter site: index.html plus data/<name>.json.
//
// Typical mount for local development:
//
//	mux.Handle("/", http.FileServerFS(portfolio.SiteFS()))
func SiteFS() fs.FS {
	sub, err := fs.Sub(embeddedSite, "site")
	if err != nil {
		return embeddedSite
	}
	return sub
}

// WriteSite copies the starter site into dir. Existing files are left alone
// unless overwrite is set; the paths that were written are returned.
func WriteSite(dir string, overwrite bool) ([]string, error) {
	if dir == "" {
		return nil, errors.New("portfolio: target directory is required")
	}

	site := SiteFS()
	var written []string
	err := fs.WalkDir(site, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		target := filepath.Join(dir, filepath.FromSlash(path))
		if d.IsDir() {
			return os.MkdirAll(target, 0o755)
		}
		if !overwrite {
			if _, statErr := os.Stat(target); statErr == nil {
				return nil
			}
		}
		data, err := fs.ReadFile(site, path)
		if err != nil {
			return err
		}
		if err := os.WriteFile(target, data, 0o644); err != nil {
			return err
		}
		written = append(written, target)
		return nil
	})
	if err != nil {
		return written, fmt.Errorf("portfolio: write site: %w", err)
	}
	return written, nil
}
