package dataset

import (
	"context"
	"fmt"
	"sync"

	pkgportfolio "github.com/goliatone/go-portfolio/pkg/portfolio"
)

// Loader fetches every resource concurrently and assembles a Dataset.
type Loader struct {
	fetcher *Fetcher
	sources Sources
	logger  pkgportfolio.Logger
}

// LoaderOption customises a Loader.
type LoaderOption func(*Loader)

// WithLogger redirects loader diagnostics.
func WithLogger(logger pkgportfolio.Logger) LoaderOption {
	return func(l *Loader) {
		if logger != nil {
			l.logger = logger
		}
	}
}

// NewLoader constructs a Loader reading sources through fetcher.
func NewLoader(fetcher *Fetcher, sources Sources, options ...LoaderOption) *Loader {
	l := &Loader{
		fetcher: fetcher,
		sources: sources,
		logger:  pkgportfolio.DefaultLogger(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(l)
	}
	return l
}

// Load issues the four fetches without sequential dependency and waits for
// all of them to settle, so latency tracks the slowest fetch rather than the
// sum. A resource that fails to load leaves its slot absent. If a fetch
// panics the join is considered broken: the panic is logged and the empty
// Dataset is returned.
func (l *Loader) Load(ctx context.Context) pkgportfolio.Dataset {
	if ctx == nil {
		ctx = context.Background()
	}

	var (
		wg         sync.WaitGroup
		profile    pkgportfolio.Option[pkgportfolio.Profile]
		experience pkgportfolio.Option[pkgportfolio.Experience]
		projects   pkgportfolio.Option[pkgportfolio.Projects]
		skills     pkgportfolio.Option[pkgportfolio.Skills]
		failures   = make([]error, len(pkgportfolio.ResourceNames()))
	)

	run := func(slot int, name pkgportfolio.ResourceName, fn func(pkgportfolio.Source)) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			defer func() {
				if r := recover(); r != nil {
					failures[slot] = fmt.Errorf("%s: panic: %v", name, r)
				}
			}()
			fn(l.sources[name])
		}()
	}

	run(0, pkgportfolio.ResourceProfile, func(src pkgportfolio.Source) {
		profile = Fetch[pkgportfolio.Profile](ctx, l.fetcher, pkgportfolio.ResourceProfile, src)
	})
	run(1, pkgportfolio.ResourceExperience, func(src pkgportfolio.Source) {
		experience = Fetch[pkgportfolio.Experience](ctx, l.fetcher, pkgportfolio.ResourceExperience, src)
	})
	run(2, pkgportfolio.ResourceProjects, func(src pkgportfolio.Source) {
		projects = Fetch[pkgportfolio.Projects](ctx, l.fetcher, pkgportfolio.ResourceProjects, src)
	})
	run(3, pkgportfolio.ResourceSkills, func(src pkgportfolio.Source) {
		skills = Fetch[pkgportfolio.Skills](ctx, l.fetcher, pkgportfolio.ResourceSkills, src)
	})

	wg.Wait()

	for _, err := range failures {
		if err != nil {
			l.logger.Printf("dataset: failed to load data: %v", err)
			return pkgportfolio.Dataset{}
		}
	}

	return pkgportfolio.NewDataset(profile, experience, projects, skills)
}
