package dataset

import (
	"context"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	pkgportfolio "github.com/goliatone/go-portfolio/pkg/portfolio"
	"github.com/goliatone/go-portfolio/pkg/testsupport"
)

func newTestLoader(responses map[string]testsupport.StubResponse, logs *testsupport.CaptureLogger) (*Loader, *testsupport.StubLoader) {
	stub := testsupport.NewStubLoader(responses)
	fetcher := NewFetcher(stub, WithFetcherLogger(logs))
	return NewLoader(fetcher, FSSources(""), WithLogger(logs)), stub
}

func TestLoader_AllResourcesPresent(t *testing.T) {
	loader, stub := newTestLoader(testsupport.SiteResponses(), &testsupport.CaptureLogger{})

	ds := loader.Load(context.Background())

	if diff := cmp.Diff(pkgportfolio.ResourceNames(), ds.Names()); diff != "" {
		t.Fatalf("present resources mismatch (-want +got):\n%s", diff)
	}
	if len(stub.Calls()) != 4 {
		t.Fatalf("expected 4 fetches, got %d", len(stub.Calls()))
	}
	profile, _ := ds.Profile().Get()
	if profile.Name != "Ada Lovelace" || len(profile.Social) != 2 {
		t.Fatalf("unexpected profile: %+v", profile)
	}
	skills, _ := ds.Skills().Get()
	if len(skills.Categories) != 2 || skills.Categories[0].Name != "Languages" {
		t.Fatalf("unexpected skills: %+v", skills)
	}
}

func TestLoader_PartialFailureIsolation(t *testing.T) {
	for _, failing := range pkgportfolio.ResourceNames() {
		t.Run(string(failing), func(t *testing.T) {
			responses := testsupport.SiteResponses()
			responses[failing.DefaultPath()] = testsupport.StubResponse{Err: errBoom}
			logs := &testsupport.CaptureLogger{}
			loader, _ := newTestLoader(responses, logs)

			ds := loader.Load(context.Background())

			if ds.Present(failing) {
				t.Fatalf("expected %s to be absent", failing)
			}
			for _, name := range pkgportfolio.ResourceNames() {
				if name == failing {
					continue
				}
				if !ds.Present(name) {
					t.Fatalf("expected %s to be present", name)
				}
			}
			if !logs.Contains("failed to load " + string(failing)) {
				t.Fatalf("expected diagnostic for %s, got %v", failing, logs.Lines())
			}
		})
	}
}

func TestLoader_AllFailuresYieldEmptyDataset(t *testing.T) {
	loader, _ := newTestLoader(nil, &testsupport.CaptureLogger{})

	ds := loader.Load(context.Background())
	if !ds.Empty() {
		t.Fatalf("expected empty dataset, got %v", ds.Names())
	}
}

func TestLoader_PanicReturnsEmptyDataset(t *testing.T) {
	responses := testsupport.SiteResponses()
	responses["data/skills.json"] = testsupport.StubResponse{Panic: true}
	logs := &testsupport.CaptureLogger{}
	loader, _ := newTestLoader(responses, logs)

	ds := loader.Load(context.Background())

	if !ds.Empty() {
		t.Fatalf("expected empty dataset after panic, got %v", ds.Names())
	}
	if !logs.Contains("dataset: failed to load data") {
		t.Fatalf("expected join failure diagnostic, got %v", logs.Lines())
	}
}

func TestLoader_MissingSourceDegrades(t *testing.T) {
	stub := testsupport.NewStubLoader(testsupport.SiteResponses())
	logs := &testsupport.CaptureLogger{}
	sources := FSSources("")
	delete(sources, pkgportfolio.ResourceSkills)
	loader := NewLoader(NewFetcher(stub, WithFetcherLogger(logs)), sources, WithLogger(logs))

	ds := loader.Load(context.Background())
	if ds.Present(pkgportfolio.ResourceSkills) {
		t.Fatalf("expected skills absent without a source")
	}
	if len(ds.Names()) != 3 {
		t.Fatalf("expected 3 present resources, got %v", ds.Names())
	}
}

func TestLoader_FetchesRunConcurrently(t *testing.T) {
	responses := testsupport.SiteResponses()
	delays := map[string]time.Duration{
		"data/profile.json":    50 * time.Millisecond,
		"data/experience.json": 100 * time.Millisecond,
		"data/projects.json":   150 * time.Millisecond,
		"data/skills.json":     200 * time.Millisecond,
	}
	for key, delay := range delays {
		resp := responses[key]
		resp.Delay = delay
		responses[key] = resp
	}
	loader, _ := newTestLoader(responses, &testsupport.CaptureLogger{})

	start := time.Now()
	ds := loader.Load(context.Background())
	elapsed := time.Since(start)

	if len(ds.Names()) != 4 {
		t.Fatalf("expected all resources, got %v", ds.Names())
	}
	if elapsed < 200*time.Millisecond {
		t.Fatalf("load finished before the slowest fetch: %s", elapsed)
	}
	if elapsed >= 450*time.Millisecond {
		t.Fatalf("load took %s, fetches appear sequential (sum is 500ms)", elapsed)
	}
}

func TestLoader_NilContext(t *testing.T) {
	loader, _ := newTestLoader(testsupport.SiteResponses(), &testsupport.CaptureLogger{})
	//nolint:staticcheck // a nil context falls back to context.Background
	ds := loader.Load(nil)
	if len(ds.Names()) != 4 {
		t.Fatalf("expected all resources, got %v", ds.Names())
	}
}
