package loader

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"time"

	pkgportfolio "github.com/goliatone/go-portfolio/pkg/portfolio"
)

// Loader implements pkgportfolio.Loader by delegating to file, fs.FS, or HTTP
// strategies. Construction helpers live in the top-level portfolio package.
type Loader struct {
	fs        fs.FS
	http      *http.Client
	allowHTTP bool
	timeout   time.Duration
}

// Ensure the implementation satisfies the public interface.
var _ pkgportfolio.Loader = (*Loader)(nil)

// New constructs a Loader from pre-resolved options.
func New(options pkgportfolio.LoaderOptions) *Loader {
	timeout := options.RequestTimeout

	var httpClient *http.Client
	switch {
	case options.HTTPClient != nil:
		clone := *options.HTTPClient
		if timeout > 0 && clone.Timeout == 0 {
			clone.Timeout = timeout
		}
		httpClient = &clone
	case options.AllowHTTPFallback:
		httpClient = &http.Client{Timeout: timeout}
	}

	return &Loader{
		fs:        options.FileSystem,
		http:      httpClient,
		allowHTTP: httpClient != nil,
		timeout:   timeout,
	}
}

// Load fetches a document from the provided source and wraps it in a Document.
// Errors name the resource the source points at when it can be told from the
// location.
func (l *Loader) Load(ctx context.Context, src pkgportfolio.Source) (pkgportfolio.Document, error) {
	if src == nil {
		return pkgportfolio.Document{}, errors.New("portfolio loader: source is nil")
	}
	if ctx == nil {
		ctx = context.Background()
	}

	var (
		data []byte
		err  error
	)

	switch src.Kind() {
	case pkgportfolio.SourceKindFile:
		data, err = loadFile(ctx, src.Location())
	case pkgportfolio.SourceKindFS:
		data, err = loadFromFS(ctx, l.fs, src.Location())
	case pkgportfolio.SourceKindURL:
		if !l.allowHTTP {
			err = errHTTPDisabled
			break
		}
		data, err = loadHTTP(ctx, l.http, src.Location(), l.timeout)
	default:
		err = fmt.Errorf("unsupported source kind %q", src.Kind())
	}
	if err == nil {
		var doc pkgportfolio.Document
		doc, err = pkgportfolio.NewDocument(src, data)
		if err == nil {
			return doc, nil
		}
	}
	return pkgportfolio.Document{}, describe(src, err)
}

var errHTTPDisabled = errors.New("http support disabled")

// describe prefixes err with the resource and location it came from. The
// original error stays reachable through errors.Is.
func describe(src pkgportfolio.Source, err error) error {
	if name, ok := pkgportfolio.ResourceFor(src); ok {
		return fmt.Errorf("portfolio loader: %s resource (%s %s): %w", name, src.Kind(), src.Location(), err)
	}
	return fmt.Errorf("portfolio loader: %s %s: %w", src.Kind(), src.Location(), err)
}
