package testsupport

import (
	"encoding/json"
	"testing"

	pkgportfolio "github.com/goliatone/go-portfolio/pkg/portfolio"
)

// SitePage is a host page carrying every marker container.
const SitePage = `<!DOCTYPE html>
<html>
<head><title>Portfolio</title></head>
<body>
<header>
<h1 data-profile="name">Your Name</h1>
<p data-profile="title">Your Title</p>
</header>
<section id="experience"><div class="timeline" data-experience="items"><p class="placeholder">Loading experience</p></div></section>
<section id="projects"><div class="projects-grid" data-projects="items"><p class="placeholder">Loading projects</p></div></section>
<section id="skills"><div class="skills-grid" data-skills="items"></div></section>
<section id="contact"><div class="social-links social-links-large" data-profile="social"></div></section>
<footer><div class="social-links" data-profile="social"></div></footer>
</body>
</html>
`

// FullDataset decodes the canonical payloads into a dataset with every field
// present.
func FullDataset(t *testing.T) pkgportfolio.Dataset {
	t.Helper()

	return pkgportfolio.NewDataset(
		pkgportfolio.Some(mustDecode[pkgportfolio.Profile](t, ProfileJSON)),
		pkgportfolio.Some(mustDecode[pkgportfolio.Experience](t, ExperienceJSON)),
		pkgportfolio.Some(mustDecode[pkgportfolio.Projects](t, ProjectsJSON)),
		pkgportfolio.Some(mustDecode[pkgportfolio.Skills](t, SkillsJSON)),
	)
}

func mustDecode[T any](t *testing.T, payload string) T {
	t.Helper()

	var out T
	if err := json.Unmarshal([]byte(payload), &out); err != nil {
		t.Fatalf("decode fixture: %v", err)
	}
	return out
}
