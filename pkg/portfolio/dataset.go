package portfolio

// Dataset is the in-memory result of one load cycle. Each resource occupies
// its own slot; slots are set once by NewDataset and only read afterwards. A
// reload produces a new Dataset rather than mutating an existing one.
type Dataset struct {
	profile    Option[Profile]
	experience Option[Experience]
	projects   Option[Projects]
	skills     Option[Skills]
}

// NewDataset assembles a Dataset from the four per-resource results.
func NewDataset(profile Option[Profile], experience Option[Experience], projects Option[Projects], skills Option[Skills]) Dataset {
	return Dataset{
		profile:    profile,
		experience: experience,
		projects:   projects,
		skills:     skills,
	}
}

// Profile returns the profile slot.
func (d Dataset) Profile() Option[Profile] { return d.profile }

// Experience returns the experience slot.
func (d Dataset) Experience() Option[Experience] { return d.experience }

// Projects returns the projects slot.
func (d Dataset) Projects() Option[Projects] { return d.projects }

// Skills returns the skills slot.
func (d Dataset) Skills() Option[Skills] { return d.skills }

// Present reports whether the named resource loaded.
func (d Dataset) Present(name ResourceName) bool {
	switch name {
	case ResourceProfile:
		return d.profile.Present()
	case ResourceExperience:
		return d.experience.Present()
	case ResourceProjects:
		return d.projects.Present()
	case ResourceSkills:
		return d.skills.Present()
	default:
		return false
	}
}

// Names lists the resources that loaded, in ResourceNames order.
func (d Dataset) Names() []ResourceName {
	var names []ResourceName
	for _, name := range ResourceNames() {
		if d.Present(name) {
			names = append(names, name)
		}
	}
	return names
}

// Empty reports whether no resource loaded.
func (d Dataset) Empty() bool {
	return len(d.Names()) == 0
}
