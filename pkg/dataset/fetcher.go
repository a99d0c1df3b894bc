package dataset

import (
	"context"
	"errors"

	pkgportfolio "github.com/goliatone/go-portfolio/pkg/portfolio"
)

// Fetcher retrieves one resource through a Loader and decodes it.
type Fetcher struct {
	loader pkgportfolio.Loader
	logger pkgportfolio.Logger
}

// FetcherOption customises a Fetcher.
type FetcherOption func(*Fetcher)

// WithFetcherLogger redirects fetch diagnostics.
func WithFetcherLogger(logger pkgportfolio.Logger) FetcherOption {
	return func(f *Fetcher) {
		if logger != nil {
			f.logger = logger
		}
	}
}

// NewFetcher constructs a Fetcher around loader.
func NewFetcher(loader pkgportfolio.Loader, options ...FetcherOption) *Fetcher {
	f := &Fetcher{
		loader: loader,
		logger: pkgportfolio.DefaultLogger(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(f)
	}
	return f
}

// Fetch loads src and decodes it into T. Any failure (missing source,
// transport error, non-2xx status, empty, null or malformed body) is logged and
// reported as an absent value; Fetch never returns an error.
func Fetch[T any](ctx context.Context, f *Fetcher, name pkgportfolio.ResourceName, src pkgportfolio.Source) pkgportfolio.Option[T] {
	value, err := fetch[T](ctx, f, src)
	if err != nil {
		f.logf("dataset: failed to load %s (%s): %v", name, location(src), err)
		return pkgportfolio.None[T]()
	}
	return pkgportfolio.Some(value)
}

func fetch[T any](ctx context.Context, f *Fetcher, src pkgportfolio.Source) (T, error) {
	var zero T
	if f == nil || f.loader == nil {
		return zero, errors.New("loader is not configured")
	}
	if src == nil {
		return zero, errors.New("source is not configured")
	}

	doc, err := f.loader.Load(ctx, src)
	if err != nil {
		return zero, err
	}

	var out T
	if err := doc.Decode(&out); err != nil {
		return zero, err
	}
	return out, nil
}

func (f *Fetcher) logf(format string, args ...any) {
	if f == nil || f.logger == nil {
		return
	}
	f.logger.Printf(format, args...)
}

func location(src pkgportfolio.Source) string {
	if src == nil {
		return "<nil>"
	}
	return src.Location()
}
