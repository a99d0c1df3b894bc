package portfolio

import (
	"fmt"
	"strings"
)

// ResourceName identifies one of the JSON documents that make up a portfolio.
type ResourceName string

const (
	ResourceProfile    ResourceName = "profile"
	ResourceExperience ResourceName = "experience"
	ResourceProjects   ResourceName = "projects"
	ResourceSkills     ResourceName = "skills"
)

// ResourceNames returns every resource in load order.
func ResourceNames() []ResourceName {
	return []ResourceName{
		ResourceProfile,
		ResourceExperience,
		ResourceProjects,
		ResourceSkills,
	}
}

// ParseResourceName normalises raw and reports whether it names a resource.
func ParseResourceName(raw string) (ResourceName, error) {
	name := ResourceName(strings.ToLower(strings.TrimSpace(raw)))
	if !name.Valid() {
		return "", fmt.Errorf("portfolio: unknown resource %q", raw)
	}
	return name, nil
}

// Valid reports whether n is one of the four known resources.
func (n ResourceName) Valid() bool {
	switch n {
	case ResourceProfile, ResourceExperience, ResourceProjects, ResourceSkills:
		return true
	default:
		return false
	}
}

// FileName returns the conventional file name, e.g. "profile.json".
func (n ResourceName) FileName() string {
	return string(n) + ".json"
}

// DefaultPath returns the conventional location relative to the site root,
// e.g. "data/profile.json".
func (n ResourceName) DefaultPath() string {
	return "data/" + n.FileName()
}

func (n ResourceName) String() string {
	return string(n)
}
