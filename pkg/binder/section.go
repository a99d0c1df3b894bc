package binder

import (
	"context"
	"errors"
	"fmt"

	"github.com/microcosm-cc/bluemonday"

	pkgportfolio "github.com/goliatone/go-portfolio/pkg/portfolio"
	"github.com/goliatone/go-portfolio/pkg/render/template"
	"github.com/goliatone/go-portfolio/pkg/validation"
)

// Section binds every container of one kind.
type Section interface {
	Kind() ContainerKind
	// Resource names the dataset field the section reads. The binder skips
	// the section when that field is absent.
	Resource() pkgportfolio.ResourceName
	Bind(ctx context.Context, env *Env, data pkgportfolio.Dataset, targets []Container) (SectionStats, error)
}

// ErrNoRecords is returned by a Section whose resource loaded but lacks the
// field it renders, such as experience.json without "items". The binder
// reports the section as SkipNoData and leaves its containers untouched.
var ErrNoRecords = errors.New("records field missing")

// Env gives sections access to the binder's template engine, sanitiser and
// validator.
type Env struct {
	renderer  template.TemplateRenderer
	overrides map[ContainerKind]string
	policy    *bluemonday.Policy
	validator *validation.Validator
	logger    pkgportfolio.Logger
}

// Validator returns the record validator.
func (e *Env) Validator() *validation.Validator {
	return e.validator
}

// Logger returns the binder logger.
func (e *Env) Logger() pkgportfolio.Logger {
	return e.logger
}

// TemplateFor returns the template name, or inline template content, used
// for kind.
func (e *Env) TemplateFor(kind ContainerKind) string {
	if override, ok := e.overrides[kind]; ok {
		return override
	}
	return string(kind)
}

// Render renders the template of kind with data and sanitises the result.
func (e *Env) Render(kind ContainerKind, data map[string]any) (string, error) {
	markup, err := e.renderer.Render(e.TemplateFor(kind), data)
	if err != nil {
		return "", fmt.Errorf("binder: render %s: %w", kind, err)
	}
	return sanitizeFragment(e.policy, markup), nil
}

// listSection renders a slice of records with one template per kind. A nil
// slice means the field was absent from the resource; an empty one renders
// empty markup.
type listSection[T any] struct {
	kind     ContainerKind
	resource pkgportfolio.ResourceName
	field    string
	key      string
	records  func(pkgportfolio.Dataset) []T
}

func (s listSection[T]) Kind() ContainerKind { return s.kind }

func (s listSection[T]) Resource() pkgportfolio.ResourceName { return s.resource }

func (s listSection[T]) Bind(_ context.Context, env *Env, data pkgportfolio.Dataset, targets []Container) (SectionStats, error) {
	records := s.records(data)
	if records == nil {
		return SectionStats{}, fmt.Errorf("%w: %s has no %q", ErrNoRecords, s.resource, s.field)
	}
	valid, issues := validation.Filter(env.Validator(), records)
	stats := SectionStats{
		Records:  len(records),
		Rendered: len(valid),
		Issues:   issues,
	}

	markup, err := env.Render(s.kind, map[string]any{s.key: valid})
	if err != nil {
		return stats, err
	}
	for _, target := range targets {
		if err := target.Element.SetInnerHTML(markup); err != nil {
			return stats, err
		}
	}
	return stats, nil
}

// profileTextSection writes single profile fields as text. Fields that fail
// validation are left as authored.
type profileTextSection struct{}

func (profileTextSection) Kind() ContainerKind { return KindProfileText }

func (profileTextSection) Resource() pkgportfolio.ResourceName { return pkgportfolio.ResourceProfile }

func (profileTextSection) Bind(_ context.Context, env *Env, data pkgportfolio.Dataset, targets []Container) (SectionStats, error) {
	profile := data.Profile().OrZero()
	profile.Social = nil

	issues := env.Validator().Record(0, profile)
	rejected := make(map[string]bool, len(issues))
	for _, issue := range issues {
		rejected[issue.Field] = true
	}

	stats := SectionStats{Records: len(targets), Issues: issues}
	for _, target := range targets {
		if rejected[target.Field] {
			continue
		}
		value := profileFields[target.Field](profile)
		if value == "" {
			continue
		}
		target.Element.SetText(value)
		stats.Rendered++
	}
	return stats, nil
}

func defaultSections() []Section {
	socialLinks := func(data pkgportfolio.Dataset) []pkgportfolio.SocialLink {
		return data.Profile().OrZero().Social
	}

	return []Section{
		listSection[pkgportfolio.ExperienceItem]{
			kind:     KindExperience,
			resource: pkgportfolio.ResourceExperience,
			field:    "items",
			key:      "items",
			records: func(data pkgportfolio.Dataset) []pkgportfolio.ExperienceItem {
				return data.Experience().OrZero().Items
			},
		},
		listSection[pkgportfolio.ProjectItem]{
			kind:     KindProjects,
			resource: pkgportfolio.ResourceProjects,
			field:    "items",
			key:      "items",
			records: func(data pkgportfolio.Dataset) []pkgportfolio.ProjectItem {
				return data.Projects().OrZero().Items
			},
		},
		listSection[pkgportfolio.SocialLink]{
			kind:     KindSocialLarge,
			resource: pkgportfolio.ResourceProfile,
			field:    "social",
			key:      "links",
			records:  socialLinks,
		},
		listSection[pkgportfolio.SocialLink]{
			kind:     KindSocialRegular,
			resource: pkgportfolio.ResourceProfile,
			field:    "social",
			key:      "links",
			records:  socialLinks,
		},
		listSection[pkgportfolio.SkillCategory]{
			kind:     KindSkills,
			resource: pkgportfolio.ResourceSkills,
			field:    "categories",
			key:      "categories",
			records: func(data pkgportfolio.Dataset) []pkgportfolio.SkillCategory {
				return data.Skills().OrZero().Categories
			},
		},
		profileTextSection{},
	}
}
