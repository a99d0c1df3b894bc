package binder

import (
	"fmt"

	pkgportfolio "github.com/goliatone/go-portfolio/pkg/portfolio"
	"github.com/goliatone/go-portfolio/pkg/surface"
)

// ContainerKind identifies what a marker container displays.
type ContainerKind string

const (
	KindExperience    ContainerKind = "experience"
	KindProjects      ContainerKind = "projects"
	KindSocialLarge   ContainerKind = "social-large"
	KindSocialRegular ContainerKind = "social-regular"
	KindSkills        ContainerKind = "skills"
	KindProfileText   ContainerKind = "profile-text"
)

// Kinds returns every container kind in binding order.
func Kinds() []ContainerKind {
	return []ContainerKind{
		KindExperience,
		KindProjects,
		KindSocialLarge,
		KindSocialRegular,
		KindSkills,
		KindProfileText,
	}
}

// ThemeKey is the manifest template key that overrides the kind's template.
func (k ContainerKind) ThemeKey() string {
	return "portfolio." + string(k)
}

// Container is a discovered marker element tagged with its kind. Field names
// the profile attribute for KindProfileText containers and is empty
// otherwise.
type Container struct {
	Kind    ContainerKind
	Field   string
	Element *surface.Element
}

// Markers holds the selectors used during discovery.
type Markers struct {
	Experience       string `json:"experience" yaml:"experience"`
	Projects         string `json:"projects" yaml:"projects"`
	Social           string `json:"social" yaml:"social"`
	SocialLargeClass string `json:"social_large_class" yaml:"social_large_class"`
	Skills           string `json:"skills" yaml:"skills"`
	ProfileAttr      string `json:"profile_attr" yaml:"profile_attr"`
}

// DefaultMarkers returns the markers used by the starter site.
func DefaultMarkers() Markers {
	return Markers{
		Experience:       `[data-experience="items"]`,
		Projects:         `[data-projects="items"]`,
		Social:           `[data-profile="social"]`,
		SocialLargeClass: "social-links-large",
		Skills:           `[data-skills="items"]`,
		ProfileAttr:      "data-profile",
	}
}

// withDefaults fills blank markers from DefaultMarkers.
func (m Markers) withDefaults() Markers {
	defaults := DefaultMarkers()
	if m.Experience == "" {
		m.Experience = defaults.Experience
	}
	if m.Projects == "" {
		m.Projects = defaults.Projects
	}
	if m.Social == "" {
		m.Social = defaults.Social
	}
	if m.SocialLargeClass == "" {
		m.SocialLargeClass = defaults.SocialLargeClass
	}
	if m.Skills == "" {
		m.Skills = defaults.Skills
	}
	if m.ProfileAttr == "" {
		m.ProfileAttr = defaults.ProfileAttr
	}
	return m
}

type compiledMarkers struct {
	experience       surface.Selector
	projects         surface.Selector
	social           surface.Selector
	socialLargeClass string
	skills           surface.Selector
	profile          surface.Selector
	profileAttr      string
}

func compileMarkers(m Markers) (compiledMarkers, error) {
	m = m.withDefaults()

	var (
		out compiledMarkers
		err error
	)
	if out.experience, err = surface.ParseSelector(m.Experience); err != nil {
		return out, fmt.Errorf("binder: experience marker: %w", err)
	}
	if out.projects, err = surface.ParseSelector(m.Projects); err != nil {
		return out, fmt.Errorf("binder: projects marker: %w", err)
	}
	if out.social, err = surface.ParseSelector(m.Social); err != nil {
		return out, fmt.Errorf("binder: social marker: %w", err)
	}
	if out.skills, err = surface.ParseSelector(m.Skills); err != nil {
		return out, fmt.Errorf("binder: skills marker: %w", err)
	}
	if out.profile, err = surface.ParseSelector("[" + m.ProfileAttr + "]"); err != nil {
		return out, fmt.Errorf("binder: profile marker: %w", err)
	}
	out.socialLargeClass = m.SocialLargeClass
	out.profileAttr = m.ProfileAttr
	return out, nil
}

// profileFields lists the profile attributes bound as plain text.
var profileFields = map[string]func(pkgportfolio.Profile) string{
	"name":     func(p pkgportfolio.Profile) string { return p.Name },
	"title":    func(p pkgportfolio.Profile) string { return p.Title },
	"bio":      func(p pkgportfolio.Profile) string { return p.Bio },
	"email":    func(p pkgportfolio.Profile) string { return p.Email },
	"location": func(p pkgportfolio.Profile) string { return p.Location },
}

// discover walks the surface once and groups marker containers by kind in
// document order. An element claimed by one kind is not claimed again.
func discover(surf *surface.Surface, markers compiledMarkers) map[ContainerKind][]Container {
	found := make(map[ContainerKind][]Container)
	var claimed []*surface.Element

	claim := func(el *surface.Element) bool {
		for _, existing := range claimed {
			if existing.Same(el) {
				return false
			}
		}
		claimed = append(claimed, el)
		return true
	}
	add := func(kind ContainerKind, field string, el *surface.Element) {
		if claim(el) {
			found[kind] = append(found[kind], Container{Kind: kind, Field: field, Element: el})
		}
	}

	for _, el := range surf.QueryAll(markers.experience) {
		add(KindExperience, "", el)
	}
	for _, el := range surf.QueryAll(markers.projects) {
		add(KindProjects, "", el)
	}
	for _, el := range surf.QueryAll(markers.social) {
		if el.HasClass(markers.socialLargeClass) {
			add(KindSocialLarge, "", el)
			continue
		}
		add(KindSocialRegular, "", el)
	}
	for _, el := range surf.QueryAll(markers.skills) {
		add(KindSkills, "", el)
	}
	for _, el := range surf.QueryAll(markers.profile) {
		field := el.Attr(markers.profileAttr)
		if _, ok := profileFields[field]; !ok {
			continue
		}
		add(KindProfileText, field, el)
	}
	return found
}
