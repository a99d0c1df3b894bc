package portfolio

import (
	"fmt"
	"net/url"
	"path"
	"path/filepath"
)

// Source identifies where a portfolio resource lives so loaders can operate
// on files, fs.FS entries, or URLs without leaking implementation details.
type Source interface {
	Kind() SourceKind
	Location() string
}

// SourceKind enumerates the loader modalities.
type SourceKind string

const (
	SourceKindFile SourceKind = "file"
	SourceKindFS   SourceKind = "fs"
	SourceKindURL  SourceKind = "url"
)

// fileSource identifies on-disk resources.
type fileSource struct {
	path string
}

func (s fileSource) Location() string {
	return s.path
}

func (s fileSource) Kind() SourceKind {
	return SourceKindFile
}

// SourceFromFile returns a Source pointing to a file path.
func SourceFromFile(filename string) Source {
	return fileSource{path: filepath.Clean(filename)}
}

// fsSource references a path within an fs.FS.
type fsSource struct {
	name string
}

func (s fsSource) Location() string {
	return s.name
}

func (s fsSource) Kind() SourceKind {
	return SourceKindFS
}

// SourceFromFS returns a Source identifying a resource inside an fs.FS.
func SourceFromFS(name string) Source {
	return fsSource{name: name}
}

// urlSource references an HTTP/HTTPS endpoint.
type urlSource struct {
	raw string
}

func (s urlSource) Location() string {
	return s.raw
}

func (s urlSource) Kind() SourceKind {
	return SourceKindURL
}

// SourceFromURL parses the supplied URL string and returns a Source. It panics
// if the URL is invalid to surface configuration mistakes early.
func SourceFromURL(raw string) Source {
	src, err := ParseURLSource(raw)
	if err != nil {
		panic(err)
	}
	return src
}

// ParseURLSource is the non-panicking variant of SourceFromURL. Only
// absolute http and https URLs are accepted.
func ParseURLSource(raw string) (Source, error) {
	if raw == "" {
		return nil, fmt.Errorf("portfolio: empty URL source")
	}
	parsed, err := url.ParseRequestURI(raw)
	if err != nil {
		return nil, fmt.Errorf("portfolio: invalid URL %q: %w", raw, err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return nil, fmt.Errorf("portfolio: URL %q must use http or https", raw)
	}
	if parsed.Host == "" {
		return nil, fmt.Errorf("portfolio: URL %q has no host", raw)
	}
	return urlSource{raw: raw}, nil
}

// ResourceFor reports which resource src points at, judged by the file name
// at the end of its location ("data/skills.json" is skills). Query strings
// are ignored for URL sources.
func ResourceFor(src Source) (ResourceName, bool) {
	if src == nil {
		return "", false
	}
	location := src.Location()
	if src.Kind() == SourceKindURL {
		if parsed, err := url.Parse(location); err == nil {
			location = parsed.Path
		}
	}
	base := path.Base(filepath.ToSlash(location))
	for _, name := range ResourceNames() {
		if base == name.FileName() {
			return name, true
		}
	}
	return "", false
}
