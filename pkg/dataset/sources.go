package dataset

import (
	"fmt"
	"net/url"
	"path"
	"path/filepath"
	"strings"

	pkgportfolio "github.com/goliatone/go-portfolio/pkg/portfolio"
)

// Sources maps each resource to where it is loaded from.
type Sources map[pkgportfolio.ResourceName]pkgportfolio.Source

// FileSources resolves the conventional data/<name>.json files under root.
func FileSources(root string) Sources {
	out := make(Sources, 4)
	for _, name := range pkgportfolio.ResourceNames() {
		out[name] = pkgportfolio.SourceFromFile(filepath.Join(root, filepath.FromSlash(name.DefaultPath())))
	}
	return out
}

// FSSources resolves data/<name>.json under root inside an fs.FS.
func FSSources(root string) Sources {
	out := make(Sources, 4)
	for _, name := range pkgportfolio.ResourceNames() {
		out[name] = pkgportfolio.SourceFromFS(path.Join(strings.Trim(root, "/"), name.DefaultPath()))
	}
	return out
}

// URLSources resolves data/<name>.json against base, the URL of the hosting
// origin (or of the page itself; the page name is replaced).
func URLSources(base string) (Sources, error) {
	baseURL, err := url.Parse(strings.TrimSpace(base))
	if err != nil {
		return nil, fmt.Errorf("dataset: parse base url: %w", err)
	}
	if !baseURL.IsAbs() {
		return nil, fmt.Errorf("dataset: base url %q must be absolute", base)
	}

	out := make(Sources, 4)
	for _, name := range pkgportfolio.ResourceNames() {
		ref := &url.URL{Path: name.DefaultPath()}
		src, err := pkgportfolio.ParseURLSource(baseURL.ResolveReference(ref).String())
		if err != nil {
			return nil, fmt.Errorf("dataset: %s: %w", name, err)
		}
		out[name] = src
	}
	return out, nil
}

// ResolveSource interprets raw as a URL when it carries an http(s) scheme and
// as a file path otherwise.
func ResolveSource(raw string) (pkgportfolio.Source, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil, fmt.Errorf("dataset: empty source")
	}
	if strings.HasPrefix(trimmed, "http://") || strings.HasPrefix(trimmed, "https://") {
		return pkgportfolio.ParseURLSource(trimmed)
	}
	return pkgportfolio.SourceFromFile(trimmed), nil
}

// With returns a copy of s with name pointing at src.
func (s Sources) With(name pkgportfolio.ResourceName, src pkgportfolio.Source) Sources {
	out := make(Sources, len(s)+1)
	for key, value := range s {
		out[key] = value
	}
	out[name] = src
	return out
}
