package loader

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"

	pkgportfolio "github.com/goliatone/go-portfolio/pkg/portfolio"
)

const profilePayload = `{"name":"Ada","social":[]}`

func TestLoader_LoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "profile.json")
	if err := os.WriteFile(path, []byte(profilePayload), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	l := New(pkgportfolio.NewLoaderOptions())
	doc, err := l.Load(context.Background(), pkgportfolio.SourceFromFile(path))
	if err != nil {
		t.Fatalf("load file: %v", err)
	}
	if string(doc.Raw()) != profilePayload {
		t.Fatalf("unexpected payload: %q", doc.Raw())
	}
	if doc.Source().Kind() != pkgportfolio.SourceKindFile {
		t.Fatalf("unexpected source kind: %s", doc.Source().Kind())
	}
}

func TestLoader_LoadFS(t *testing.T) {
	fsys := fstest.MapFS{
		"data/profile.json": &fstest.MapFile{Data: []byte(profilePayload)},
	}
	l := New(pkgportfolio.NewLoaderOptions(pkgportfolio.WithFileSystem(fsys)))

	doc, err := l.Load(context.Background(), pkgportfolio.SourceFromFS("/data/profile.json"))
	if err != nil {
		t.Fatalf("load fs: %v", err)
	}
	if doc.Location() != "/data/profile.json" {
		t.Fatalf("unexpected location: %s", doc.Location())
	}
}

func TestLoader_LoadFSWithoutFileSystem(t *testing.T) {
	l := New(pkgportfolio.NewLoaderOptions())
	if _, err := l.Load(context.Background(), pkgportfolio.SourceFromFS("data/profile.json")); err == nil {
		t.Fatalf("expected error when no filesystem configured")
	}
}

func TestLoader_LoadHTTP(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Accept") != "application/json" {
			t.Errorf("unexpected accept header: %q", r.Header.Get("Accept"))
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(profilePayload))
	}))
	defer server.Close()

	l := New(pkgportfolio.NewLoaderOptions(pkgportfolio.WithHTTPClient(server.Client())))
	doc, err := l.Load(context.Background(), pkgportfolio.SourceFromURL(server.URL+"/data/profile.json"))
	if err != nil {
		t.Fatalf("load http: %v", err)
	}
	if string(doc.Raw()) != profilePayload {
		t.Fatalf("unexpected payload: %q", doc.Raw())
	}
}

func TestLoader_LoadHTTPRejectsNon2xx(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer server.Close()

	l := New(pkgportfolio.NewLoaderOptions(pkgportfolio.WithHTTPFallback(0)))
	_, err := l.Load(context.Background(), pkgportfolio.SourceFromURL(server.URL+"/missing.json"))
	if err == nil {
		t.Fatalf("expected error for 404 response")
	}
	if !strings.Contains(err.Error(), "404") {
		t.Fatalf("expected status in error, got %v", err)
	}
}

func TestLoader_HTTPDisabledByDefault(t *testing.T) {
	l := New(pkgportfolio.NewLoaderOptions())
	if _, err := l.Load(context.Background(), pkgportfolio.SourceFromURL("http://example.com/data/profile.json")); err == nil {
		t.Fatalf("expected http disabled error")
	}
}

func TestLoader_RejectsEmptyBody(t *testing.T) {
	fsys := fstest.MapFS{
		"empty.json": &fstest.MapFile{Data: []byte("  \n")},
	}
	l := New(pkgportfolio.NewLoaderOptions(pkgportfolio.WithFileSystem(fsys)))
	if _, err := l.Load(context.Background(), pkgportfolio.SourceFromFS("empty.json")); err == nil {
		t.Fatalf("expected empty document error")
	}
}

func TestLoader_NilSource(t *testing.T) {
	l := New(pkgportfolio.NewLoaderOptions())
	if _, err := l.Load(context.Background(), nil); err == nil {
		t.Fatalf("expected nil source error")
	}
}

func TestLoader_RejectsNullDocument(t *testing.T) {
	fsys := fstest.MapFS{
		"data/experience.json": &fstest.MapFile{Data: []byte(" null\n")},
	}
	l := New(pkgportfolio.NewLoaderOptions(pkgportfolio.WithFileSystem(fsys)))

	_, err := l.Load(context.Background(), pkgportfolio.SourceFromFS("data/experience.json"))
	if !errors.Is(err, pkgportfolio.ErrNullDocument) {
		t.Fatalf("expected null document error, got %v", err)
	}
	if !strings.Contains(err.Error(), "experience resource (fs data/experience.json)") {
		t.Fatalf("expected resource in error, got %v", err)
	}
}

func TestLoader_RejectsHTMLFallbackPage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte("<!doctype html><title>Ada</title>"))
	}))
	defer server.Close()

	l := New(pkgportfolio.NewLoaderOptions(pkgportfolio.WithHTTPFallback(0)))
	_, err := l.Load(context.Background(), pkgportfolio.SourceFromURL(server.URL+"/data/skills.json?v=2"))
	if err == nil {
		t.Fatalf("expected error for html response")
	}
	for _, fragment := range []string{"skills resource", "HTML page instead of JSON"} {
		if !strings.Contains(err.Error(), fragment) {
			t.Fatalf("expected %q in error, got %v", fragment, err)
		}
	}
}

func TestLoader_UnknownResourceErrorNamesLocation(t *testing.T) {
	l := New(pkgportfolio.NewLoaderOptions())
	_, err := l.Load(context.Background(), pkgportfolio.SourceFromFS("notes.json"))
	if err == nil {
		t.Fatalf("expected error without filesystem")
	}
	if got := err.Error(); got != "portfolio loader: fs notes.json: filesystem is not configured" {
		t.Fatalf("unexpected error %q", got)
	}
}
