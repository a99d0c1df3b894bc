package commands

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	portfolio "github.com/goliatone/go-portfolio"
)

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	root := NewRootCommand()
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)
	err := root.Execute()
	return stdout.String(), err
}

func writeStarterSite(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	if _, err := portfolio.WriteSite(dir, false); err != nil {
		t.Fatalf("write site: %v", err)
	}
	return dir
}

func TestRenderCommand_WritesBoundPage(t *testing.T) {
	dir := writeStarterSite(t)
	out := filepath.Join(dir, "dist", "index.html")

	if _, err := runCommand(t, "render", "-q",
		"--page", filepath.Join(dir, "index.html"),
		"--data", dir,
		"--out", out,
	); err != nil {
		t.Fatalf("render: %v", err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if got := strings.Count(string(data), `class="timeline-item"`); got != 2 {
		t.Fatalf("expected 2 timeline items, got %d", got)
	}
	if strings.Contains(string(data), "Loading projects") {
		t.Fatalf("expected projects placeholder replaced")
	}
}

func TestRenderCommand_StdoutAndMissingData(t *testing.T) {
	dir := writeStarterSite(t)
	if err := os.Remove(filepath.Join(dir, "data", "projects.json")); err != nil {
		t.Fatalf("remove projects: %v", err)
	}

	stdout, err := runCommand(t, "render", "-q", "--page", filepath.Join(dir, "index.html"), "--data", dir)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(stdout, "Loading projects") {
		t.Fatalf("expected projects container left untouched")
	}
	if !strings.Contains(stdout, "Analytical Engines Ltd") {
		t.Fatalf("expected experience bound")
	}
}

func TestRenderCommand_ConfigThemeAndStrict(t *testing.T) {
	dir := writeStarterSite(t)
	configPath := filepath.Join(dir, "site.yaml")
	config := `page: index.html
site_dir: .
theme:
  name: plain
  templates:
    portfolio.skills: "{% for c in categories %}<span class=\"plain-skill\">{{ c.name }}</span>{% endfor %}"
    portfolio.projects: "{% for %}"
`
	if err := os.WriteFile(configPath, []byte(config), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	stdout, err := runCommand(t, "render", "-q", "--config", configPath)
	if err != nil {
		t.Fatalf("render without --strict: %v", err)
	}
	if got := strings.Count(stdout, `class="plain-skill"`); got != 3 {
		t.Fatalf("expected themed skills, got %d", got)
	}

	if _, err := runCommand(t, "render", "-q", "--config", configPath, "--strict"); err == nil {
		t.Fatalf("expected --strict to fail on the broken projects template")
	}
}

func TestRenderCommand_MissingPage(t *testing.T) {
	if _, err := runCommand(t, "render", "-q", "--page", filepath.Join(t.TempDir(), "missing.html")); err == nil {
		t.Fatalf("expected missing page error")
	}
}

func TestInitCommand(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "site")
	stdout, err := runCommand(t, "init", "-q", dir)
	if err != nil {
		t.Fatalf("init: %v", err)
	}
	if !strings.Contains(stdout, "5 files written") {
		t.Fatalf("unexpected output %q", stdout)
	}
	if _, err := os.Stat(filepath.Join(dir, "data", "skills.json")); err != nil {
		t.Fatalf("expected skills.json: %v", err)
	}
	if _, err := runCommand(t, "init", "-q"); err == nil {
		t.Fatalf("expected argument error")
	}
}

func TestSiteRouter(t *testing.T) {
	dir := writeStarterSite(t)
	server := httptest.NewServer(newSiteRouter(dir))
	defer server.Close()

	resp, err := http.Get(server.URL + "/data/profile.json")
	if err != nil {
		t.Fatalf("get profile: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("unexpected status %d", resp.StatusCode)
	}
	if cc := resp.Header.Get("Cache-Control"); !strings.Contains(cc, "no-cache") {
		t.Fatalf("expected data served uncached, got %q", cc)
	}

	missing, err := http.Get(server.URL + "/data/blog.json")
	if err != nil {
		t.Fatalf("get missing: %v", err)
	}
	missing.Body.Close()
	if missing.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404 for missing data, got %d", missing.StatusCode)
	}

	health, err := http.Get(server.URL + "/healthz")
	if err != nil {
		t.Fatalf("get healthz: %v", err)
	}
	health.Body.Close()
	if health.StatusCode != http.StatusOK {
		t.Fatalf("unexpected health status %d", health.StatusCode)
	}
}
