package portfolio

// Profile is the profile.json document.
type Profile struct {
	Name     string       `json:"name"`
	Title    string       `json:"title"`
	Bio      string       `json:"bio"`
	Email    string       `json:"email" validate:"omitempty,email"`
	Location string       `json:"location"`
	Avatar   string       `json:"avatar,omitempty"`
	Social   []SocialLink `json:"social"`
}

// SocialLink points at one external profile.
type SocialLink struct {
	Platform string `json:"platform" validate:"required"`
	URL      string `json:"url" validate:"required,url"`
	Icon     string `json:"icon" validate:"required"`
}

// Experience is the experience.json document.
type Experience struct {
	Items []ExperienceItem `json:"items"`
}

// ExperienceItem is one entry on the experience timeline. Items render in
// document order. An item without techStack is malformed; an empty list is
// fine.
type ExperienceItem struct {
	Position    string   `json:"position" validate:"required"`
	Company     string   `json:"company" validate:"required"`
	Period      string   `json:"period" validate:"required"`
	Location    string   `json:"location,omitempty"`
	Description string   `json:"description"`
	TechStack   []string `json:"techStack" validate:"required,dive,required"`
}

// Projects is the projects.json document.
type Projects struct {
	Items []ProjectItem `json:"items"`
}

// ProjectItem is one card in the project gallery.
type ProjectItem struct {
	Icon        string       `json:"icon" validate:"required"`
	Links       ProjectLinks `json:"links"`
	Title       string       `json:"title" validate:"required"`
	Description string       `json:"description"`
	Tags        []string     `json:"tags" validate:"required,dive,required"`
}

// ProjectLinks holds the demo and source URLs of a project. Either may be
// empty; the card omits the matching link.
type ProjectLinks struct {
	Demo   string `json:"demo" validate:"omitempty,url"`
	GitHub string `json:"github" validate:"omitempty,url"`
}

// Skills is the skills.json document.
type Skills struct {
	Categories []SkillCategory `json:"categories"`
}

// SkillCategory groups related skills under a heading.
type SkillCategory struct {
	Name   string   `json:"name" validate:"required"`
	Icon   string   `json:"icon,omitempty"`
	Skills []string `json:"skills" validate:"min=1,dive,required"`
}
