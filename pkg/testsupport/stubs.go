package testsupport

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	pkgportfolio "github.com/goliatone/go-portfolio/pkg/portfolio"
)

// StubResponse scripts one resource fetch.
type StubResponse struct {
	Payload string
	Err     error
	Delay   time.Duration
	Panic   bool
}

// StubLoader is a pkgportfolio.Loader keyed by source location.
type StubLoader struct {
	mu        sync.Mutex
	responses map[string]StubResponse
	calls     []string
}

var _ pkgportfolio.Loader = (*StubLoader)(nil)

// NewStubLoader returns a loader answering the given locations.
func NewStubLoader(responses map[string]StubResponse) *StubLoader {
	if responses == nil {
		responses = map[string]StubResponse{}
	}
	return &StubLoader{responses: responses}
}

// SiteResponses answers data/<name>.json with the canonical payloads.
func SiteResponses() map[string]StubResponse {
	out := make(map[string]StubResponse, 4)
	for name, payload := range Payloads() {
		out[name.DefaultPath()] = StubResponse{Payload: payload}
	}
	return out
}

// Load implements pkgportfolio.Loader.
func (s *StubLoader) Load(ctx context.Context, src pkgportfolio.Source) (pkgportfolio.Document, error) {
	s.mu.Lock()
	s.calls = append(s.calls, src.Location())
	resp, ok := s.responses[src.Location()]
	s.mu.Unlock()

	if !ok {
		return pkgportfolio.Document{}, fmt.Errorf("stub: %s not found", src.Location())
	}
	if resp.Delay > 0 {
		select {
		case <-time.After(resp.Delay):
		case <-ctx.Done():
			return pkgportfolio.Document{}, ctx.Err()
		}
	}
	if resp.Panic {
		panic("stub loader exploded")
	}
	if resp.Err != nil {
		return pkgportfolio.Document{}, resp.Err
	}
	return pkgportfolio.NewDocument(src, []byte(resp.Payload))
}

// Calls returns the locations requested so far.
func (s *StubLoader) Calls() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.calls...)
}

// CaptureLogger records diagnostics for assertions.
type CaptureLogger struct {
	mu    sync.Mutex
	lines []string
}

// Printf implements pkgportfolio.Logger.
func (c *CaptureLogger) Printf(format string, args ...any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lines = append(c.lines, fmt.Sprintf(format, args...))
}

// Lines returns the recorded diagnostics.
func (c *CaptureLogger) Lines() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.lines...)
}

// Contains reports whether any diagnostic contains fragment.
func (c *CaptureLogger) Contains(fragment string) bool {
	for _, line := range c.Lines() {
		if strings.Contains(line, fragment) {
			return true
		}
	}
	return false
}
