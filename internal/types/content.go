package types

// ContentType tags a refinable span of authored text with its category.
// The category selects which guidance rubric the refinement agents apply.
type ContentType string

// Content type constants cover the refinable resume sections.
const (
	ContentSummary    ContentType = "summary"
	ContentSkills     ContentType = "skills"
	ContentExperience ContentType = "experience"
	ContentProjects   ContentType = "projects"
)

// IsValid reports whether t is one of the known content types.
func (t ContentType) IsValid() bool {
	switch t {
	case ContentSummary, ContentSkills, ContentExperience, ContentProjects:
		return true
	}
	return false
}

// ContentUnit is one named span of user-authored text. Units are immutable:
// refinement produces a new unit rather than mutating in place.
type ContentUnit struct {
	Name string      `json:"name,omitempty"`
	Type ContentType `json:"type"`
	Text string      `json:"text"`
}

// WithText returns a copy of the unit carrying new text.
func (u ContentUnit) WithText(text string) ContentUnit {
	u.Text = text
	return u
}

// RefinementRound records one rewrite/evaluate cycle of the convergence loop.
type RefinementRound struct {
	Round     int    `json:"round"`
	Candidate string `json:"candidate"`
	Satisfied bool   `json:"satisfied"`
	Feedback  string `json:"feedback"`
}

// QualityVerdict is the structured outcome of the post-assembly quality gate.
type QualityVerdict struct {
	Approved         bool     `json:"approved"`
	EstimatedPages   float64  `json:"estimated_pages"`
	Feedback         string   `json:"feedback"`
	SuggestedChanges []string `json:"suggested_changes"`
}

// RenderedDocument is the final markup text plus the quality verdict
// associated with it. Verdict is nil when the quality gate was skipped.
type RenderedDocument struct {
	LaTeX   string          `json:"latex"`
	Verdict *QualityVerdict `json:"verdict,omitempty"`
}
