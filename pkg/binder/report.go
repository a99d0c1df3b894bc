package binder

import "github.com/goliatone/go-portfolio/pkg/validation"

// Outcome records what happened to one section during Bind.
type Outcome string

const (
	Bound           Outcome = "bound"
	SkipNoContainer Outcome = "no-container"
	SkipNoData      Outcome = "no-data"
	Failed          Outcome = "failed"
)

// SectionStats is what a Section reports back after binding.
type SectionStats struct {
	// Records is the number of records the section read from the dataset.
	Records int
	// Rendered is the number of records written into each container.
	Rendered int
	// Issues lists validation problems of the records that were skipped.
	Issues []validation.RecordIssue
}

// Skipped returns the number of distinct records rejected by validation.
func (s SectionStats) Skipped() int {
	seen := make(map[int]struct{}, len(s.Issues))
	for _, issue := range s.Issues {
		seen[issue.Index] = struct{}{}
	}
	return len(seen)
}

// SectionReport is the outcome of one container kind.
type SectionReport struct {
	Kind       ContainerKind
	Outcome    Outcome
	Containers int
	SectionStats
	Err error
}

// Report collects the section outcomes of one Bind call in binding order.
type Report struct {
	Sections []SectionReport
}

// Section returns the report for kind.
func (r Report) Section(kind ContainerKind) (SectionReport, bool) {
	for _, section := range r.Sections {
		if section.Kind == kind {
			return section, true
		}
	}
	return SectionReport{}, false
}

// Bound lists the kinds that were written to the surface.
func (r Report) Bound() []ContainerKind {
	return r.kinds(Bound)
}

// Failed lists the kinds whose rendering failed.
func (r Report) Failed() []ContainerKind {
	return r.kinds(Failed)
}

func (r Report) kinds(outcome Outcome) []ContainerKind {
	var out []ContainerKind
	for _, section := range r.Sections {
		if section.Outcome == outcome {
			out = append(out, section.Kind)
		}
	}
	return out
}
