package dataset

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	pkgportfolio "github.com/goliatone/go-portfolio/pkg/portfolio"
	"github.com/goliatone/go-portfolio/pkg/testsupport"
)

var errBoom = errors.New("boom")

func TestFetch_DecodesPresentValue(t *testing.T) {
	loader := testsupport.NewStubLoader(testsupport.SiteResponses())
	fetcher := NewFetcher(loader, WithFetcherLogger(pkgportfolio.NopLogger{}))

	got := Fetch[pkgportfolio.Experience](context.Background(), fetcher, pkgportfolio.ResourceExperience, pkgportfolio.SourceFromFS("data/experience.json"))

	value, ok := got.Get()
	if !ok {
		t.Fatalf("expected experience to be present")
	}
	want := []string{"Analytical Engines", "Difference Works"}
	var companies []string
	for _, item := range value.Items {
		companies = append(companies, item.Company)
	}
	if diff := cmp.Diff(want, companies); diff != "" {
		t.Fatalf("experience order mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"Go", "PostgreSQL"}, value.Items[0].TechStack); diff != "" {
		t.Fatalf("tech stack mismatch (-want +got):\n%s", diff)
	}
}

func TestFetch_DegradesOnFailure(t *testing.T) {
	tests := []struct {
		name     string
		response testsupport.StubResponse
		src      pkgportfolio.Source
	}{
		{name: "transport error", response: testsupport.StubResponse{Err: errBoom}, src: pkgportfolio.SourceFromFS("data/projects.json")},
		{name: "malformed body", response: testsupport.StubResponse{Payload: `{"items": [`}, src: pkgportfolio.SourceFromFS("data/projects.json")},
		{name: "null body", response: testsupport.StubResponse{Payload: "null"}, src: pkgportfolio.SourceFromFS("data/projects.json")},
		{name: "wrong shape", response: testsupport.StubResponse{Payload: `{"items": "nope"}`}, src: pkgportfolio.SourceFromFS("data/projects.json")},
		{name: "nil source", src: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loader := testsupport.NewStubLoader(map[string]testsupport.StubResponse{"data/projects.json": tt.response})
			logs := &testsupport.CaptureLogger{}
			fetcher := NewFetcher(loader, WithFetcherLogger(logs))

			got := Fetch[pkgportfolio.Projects](context.Background(), fetcher, pkgportfolio.ResourceProjects, tt.src)
			if got.Present() {
				t.Fatalf("expected absent value")
			}
			if !logs.Contains("dataset: failed to load projects") {
				t.Fatalf("expected diagnostic, got %v", logs.Lines())
			}
		})
	}
}

func TestFetch_NilFetcher(t *testing.T) {
	got := Fetch[pkgportfolio.Skills](context.Background(), nil, pkgportfolio.ResourceSkills, pkgportfolio.SourceFromFS("data/skills.json"))
	if got.Present() {
		t.Fatalf("expected absent value from nil fetcher")
	}
}
