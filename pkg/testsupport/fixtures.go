package testsupport

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	pkgportfolio "github.com/goliatone/go-portfolio/pkg/portfolio"
)

// Canonical payloads for the four resources. They mirror the starter site and
// keep tests independent of files on disk.
const (
	ProfileJSON    = `{"name":"Ada Lovelace","title":"Engineer","bio":"Writes programs.","email":"ada@example.com","location":"London","social":[{"platform":"github","url":"https://github.com/ada","icon":"fab fa-github"},{"platform":"linkedin","url":"https://linkedin.com/in/ada","icon":"fab fa-linkedin"}]}`
	ExperienceJSON = `{"items":[{"position":"Senior Engineer","company":"Analytical Engines","period":"2021 - Present","location":"London","description":"Leads the compiler team.","techStack":["Go","PostgreSQL"]},{"position":"Engineer","company":"Difference Works","period":"2018 - 2021","description":"Built data pipelines.","techStack":["Python"]}]}`
	ProjectsJSON   = `{"items":[{"icon":"fas fa-code","links":{"demo":"https://demo.example.com","github":"https://github.com/ada/site"},"title":"Portfolio","description":"This site.","tags":["go","html"]}]}`
	SkillsJSON     = `{"categories":[{"name":"Languages","icon":"fas fa-code","skills":["Go","TypeScript"]},{"name":"Tools","skills":["Docker"]}]}`
)

// Payloads maps each resource to its canonical payload.
func Payloads() map[pkgportfolio.ResourceName]string {
	return map[pkgportfolio.ResourceName]string{
		pkgportfolio.ResourceProfile:    ProfileJSON,
		pkgportfolio.ResourceExperience: ExperienceJSON,
		pkgportfolio.ResourceProjects:   ProjectsJSON,
		pkgportfolio.ResourceSkills:     SkillsJSON,
	}
}

// MustReadGolden reads a golden file and returns its raw bytes.
func MustReadGolden(t *testing.T, path string) []byte {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read golden: %v", err)
	}
	return data
}

// MustReadGoldenString reads a golden file and returns its string content.
func MustReadGoldenString(t *testing.T, path string) string {
	t.Helper()
	return string(MustReadGolden(t, path))
}

// WriteMaybeGolden updates a golden file when UPDATE_GOLDENS is set. Returns
// true if the golden was written (test should exit early).
func WriteMaybeGolden(t *testing.T, path string, data []byte) bool {
	t.Helper()
	if os.Getenv("UPDATE_GOLDENS") == "" {
		return false
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir golden dir: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write golden: %v", err)
	}
	return true
}

// CaptureTemplateOutput executes a render function that writes to an
// io.Writer, returning both the string result and the writer contents.
func CaptureTemplateOutput(t *testing.T, render func(io.Writer) (string, error)) (string, string) {
	t.Helper()

	var buf bytes.Buffer
	out, err := render(&buf)
	if err != nil {
		t.Fatalf("render template: %v", err)
	}

	return out, buf.String()
}

// CollapseSpace folds runs of whitespace so markup comparisons ignore
// template indentation.
func CollapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
