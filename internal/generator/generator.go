// Package generator assembles structured resume data, optionally refined by
// the convergence loop, into a complete LaTeX document and runs the quality
// gate over the result.
package generator

import (
	"context"
	"log"
	"strings"

	"github.com/google/uuid"
	"github.com/jonathan/resume-writer/internal/llm"
	"github.com/jonathan/resume-writer/internal/quality"
	"github.com/jonathan/resume-writer/internal/refining"
	"github.com/jonathan/resume-writer/internal/rendering"
	"github.com/jonathan/resume-writer/internal/types"
)

// Session carries the explicit per-request context the assembler needs:
// a request ID for artifact naming and the user-facing document name.
// Modeled as a value passed in rather than ambient state.
type Session struct {
	RequestID    uuid.UUID
	DocumentName string
}

// NewSession creates a session for one generation request.
func NewSession(documentName string) Session {
	return Session{
		RequestID:    uuid.New(),
		DocumentName: documentName,
	}
}

// Options configures one generator instance.
type Options struct {
	TemplatePath string
	// Refine enables per-section refinement through the convergence loop.
	Refine bool
	// Feedback enables the post-assembly quality gate.
	Feedback bool
	Verbose  bool
}

// Generator composes formatted sections plus refined content into a
// complete document. One generator serves one request at a time; the
// fragment state it accumulates is never shared across requests.
type Generator struct {
	loop    *refining.Loop
	checker *quality.Checker
	opts    Options
}

// New creates a generator. loop and checker may be nil when the
// corresponding option is disabled.
func New(loop *refining.Loop, checker *quality.Checker, opts Options) *Generator {
	return &Generator{
		loop:    loop,
		checker: checker,
		opts:    opts,
	}
}

// Generate produces the final document for one request. Target biases
// refinement toward a specific audience; empty target means generic
// refinement. When the text-generation service is unavailable the document
// is still produced from unrefined content.
func (g *Generator) Generate(ctx context.Context, session Session, data *types.ResumeData, target string) (*types.RenderedDocument, error) {
	summary := g.refineSection(ctx, session, types.ContentUnit{
		Name: "summary",
		Type: types.ContentSummary,
		Text: data.Summary,
	}, target)

	skillsText := g.refineSection(ctx, session, types.ContentUnit{
		Name: "skills",
		Type: types.ContentSkills,
		Text: data.Skills,
	}, target)

	projects := make([]types.Project, len(data.Projects))
	copy(projects, data.Projects)
	for i := range projects {
		if !projects[i].HasIdentity() {
			continue
		}
		projects[i].Description = g.refineSection(ctx, session, types.ContentUnit{
			Name: projects[i].Name,
			Type: types.ContentProjects,
			Text: projects[i].Description,
		}, target)
	}

	templateData := &rendering.TemplateData{
		Name:            rendering.EscapeLaTeX(data.Name),
		Email:           rendering.EscapeLaTeX(data.Email),
		Phone:           rendering.EscapeLaTeX(data.Phone),
		Location:        rendering.EscapeLaTeX(data.Location),
		LinkedIn:        normalizeProfileURL(data.LinkedIn),
		AdditionalLinks: rendering.FormatContactLinks(data.GitHub, data.Portfolio, ""),
		Summary:         rendering.EscapeLaTeX(summary),
		Skills:          rendering.FormatSkills(skillsText),
		Experience:      rendering.FormatExperienceList(data.Experience),
		Projects:        rendering.FormatProjects(projects),
		Education:       rendering.FormatEducationList(data.Education),
		Certifications:  rendering.FormatCertifications(data.Certifications),
		Publications:    rendering.FormatPublications(data.Publications),
	}

	latex, err := rendering.RenderDocument(g.opts.TemplatePath, templateData)
	if err != nil {
		return nil, err
	}

	doc := &types.RenderedDocument{LaTeX: latex}

	if g.opts.Feedback && g.checker != nil {
		verdict, err := g.checker.Check(ctx, latex)
		if err != nil {
			if !llm.IsUnavailable(err) {
				return nil, err
			}
			// Quality gate is advisory: the document source was produced,
			// so an unreachable service only costs us the verdict.
			log.Printf("request %s: quality gate skipped: %v", session.RequestID, err)
		} else {
			doc.Verdict = verdict
		}
	}

	return doc, nil
}

// refineSection runs one content unit through the convergence loop, falling
// back to the original text when refinement is disabled, the unit is empty,
// or the generation service is unavailable.
func (g *Generator) refineSection(ctx context.Context, session Session, unit types.ContentUnit, target string) string {
	if !g.opts.Refine || g.loop == nil || strings.TrimSpace(unit.Text) == "" {
		return unit.Text
	}

	outcome, err := g.loop.Refine(ctx, unit, target)
	if err != nil {
		if llm.IsUnavailable(err) {
			log.Printf("request %s: refinement of %s unavailable, keeping original: %v",
				session.RequestID, unit.Name, err)
			return unit.Text
		}
		log.Printf("request %s: refinement of %s failed, keeping original: %v",
			session.RequestID, unit.Name, err)
		return unit.Text
	}

	if g.opts.Verbose {
		log.Printf("request %s: refined %s in %d round(s), state=%s",
			session.RequestID, unit.Name, outcome.RoundsUsed, outcome.State)
	}

	return outcome.Unit.Text
}

// normalizeProfileURL ensures a bare profile URL carries a scheme so the
// rendered \href link works.
func normalizeProfileURL(url string) string {
	if url == "" {
		return ""
	}
	if strings.HasPrefix(url, "http://") || strings.HasPrefix(url, "https://") {
		return url
	}
	return "https://" + strings.TrimLeft(url, "/ ")
}
