package generator

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-writer/internal/llm"
	"github.com/jonathan/resume-writer/internal/quality"
	"github.com/jonathan/resume-writer/internal/refining"
	"github.com/jonathan/resume-writer/internal/types"
)

// fakeClient serves all three agent roles. Rewrites run on the advanced
// tier; everything else gets the scripted standard-tier response.
type fakeClient struct {
	rewriteText  string
	standardText string
	err          error
}

func (f *fakeClient) Generate(_ context.Context, req llm.Request) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	if req.Tier == llm.TierAdvanced {
		return f.rewriteText, nil
	}
	return f.standardText, nil
}

func (f *fakeClient) GetModel(llm.ModelTier) string { return "fake-model" }
func (f *fakeClient) Close() error                  { return nil }

const testTemplate = `Name: {{.Name}}
Email: {{.Email}}
LinkedIn: {{.LinkedIn}}
Links: {{.AdditionalLinks}}
Summary: {{.Summary}}
Skills: {{.Skills}}
Experience: {{.Experience}}
Projects: {{.Projects}}
Education: {{.Education}}
`

func writeTestTemplate(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "resume.tex")
	require.NoError(t, os.WriteFile(path, []byte(testTemplate), 0644))
	return path
}

func sampleData() *types.ResumeData {
	return &types.ResumeData{
		Name:     "Jane Doe",
		Email:    "jane@example.com",
		LinkedIn: "linkedin.com/in/jdoe",
		GitHub:   "https://github.com/jdoe",
		Summary:  "Backend engineer focused on R&D platforms.",
		Skills:   "Languages: Go, Python",
		Experience: []types.Experience{
			{Company: "Acme Corp", Role: "Staff Engineer", Dates: "2020 - 2024"},
		},
		Education: []types.Education{
			{School: "State University", Degree: "BS Computer Science"},
		},
	}
}

func TestGenerate_WithoutRefinement(t *testing.T) {
	gen := New(nil, nil, Options{TemplatePath: writeTestTemplate(t)})

	doc, err := gen.Generate(context.Background(), NewSession("resume"), sampleData(), "")
	require.NoError(t, err)

	assert.Contains(t, doc.LaTeX, "Name: Jane Doe")
	assert.Contains(t, doc.LaTeX, `R\&D platforms`)
	assert.Contains(t, doc.LaTeX, `\textbf{Languages:} Go, Python`)
	assert.Contains(t, doc.LaTeX, `\textbf{\large Acme Corp}`)
	assert.Contains(t, doc.LaTeX, `\textbf{State University}`)
	assert.Nil(t, doc.Verdict)
}

func TestGenerate_RefinedTextFlowsIntoDocument(t *testing.T) {
	client := &fakeClient{rewriteText: "Seasoned platform engineer.", standardText: "SATISFIED"}
	loop := refining.NewDefaultLoop(client, 3)
	gen := New(loop, nil, Options{TemplatePath: writeTestTemplate(t), Refine: true})

	doc, err := gen.Generate(context.Background(), NewSession("resume"), sampleData(), "")
	require.NoError(t, err)

	assert.Contains(t, doc.LaTeX, "Summary: Seasoned platform engineer.")
	assert.NotContains(t, doc.LaTeX, "focused on R\\&D platforms")
}

func TestGenerate_UnavailableServiceFallsBackToOriginal(t *testing.T) {
	client := &fakeClient{err: &llm.UnavailableError{Message: "service down"}}
	loop := refining.NewDefaultLoop(client, 3)
	gen := New(loop, nil, Options{TemplatePath: writeTestTemplate(t), Refine: true})

	doc, err := gen.Generate(context.Background(), NewSession("resume"), sampleData(), "")
	require.NoError(t, err)

	assert.Contains(t, doc.LaTeX, `R\&D platforms`)
}

func TestGenerate_QualityGateVerdictAttached(t *testing.T) {
	client := &fakeClient{standardText: "ESTIMATED_PAGES: 1\nAPPROVED: YES\nFEEDBACK: Good."}
	checker := quality.NewChecker(client, llm.DefaultCheckerConfig())
	gen := New(nil, checker, Options{TemplatePath: writeTestTemplate(t), Feedback: true})

	doc, err := gen.Generate(context.Background(), NewSession("resume"), sampleData(), "")
	require.NoError(t, err)

	require.NotNil(t, doc.Verdict)
	assert.True(t, doc.Verdict.Approved)
}

func TestGenerate_QualityGateUnavailableIsNonFatal(t *testing.T) {
	client := &fakeClient{err: &llm.UnavailableError{Message: "service down"}}
	checker := quality.NewChecker(client, llm.DefaultCheckerConfig())
	gen := New(nil, checker, Options{TemplatePath: writeTestTemplate(t), Feedback: true})

	doc, err := gen.Generate(context.Background(), NewSession("resume"), sampleData(), "")
	require.NoError(t, err)
	assert.Nil(t, doc.Verdict)
	assert.NotEmpty(t, doc.LaTeX)
}

func TestGenerate_EmptySectionsSkipRefinement(t *testing.T) {
	// No scripted responses: any generate call would error the loop, and a
	// loop error falls back silently, so assert on the client never firing.
	data := sampleData()
	data.Summary = ""
	data.Skills = "   "

	client := &fakeClient{err: &llm.UnavailableError{Message: "should not be called"}}
	loop := refining.NewDefaultLoop(client, 3)
	gen := New(loop, nil, Options{TemplatePath: writeTestTemplate(t), Refine: true})

	doc, err := gen.Generate(context.Background(), NewSession("resume"), data, "")
	require.NoError(t, err)
	assert.Contains(t, doc.LaTeX, "Summary: \n")
}

func TestGenerate_MissingTemplate(t *testing.T) {
	gen := New(nil, nil, Options{TemplatePath: filepath.Join(t.TempDir(), "missing.tex")})

	_, err := gen.Generate(context.Background(), NewSession("resume"), sampleData(), "")
	require.Error(t, err)
}

func TestNewSession_UniqueRequestIDs(t *testing.T) {
	a := NewSession("resume")
	b := NewSession("resume")

	assert.NotEqual(t, a.RequestID, b.RequestID)
	assert.Equal(t, "resume", a.DocumentName)
}

func TestNormalizeProfileURL(t *testing.T) {
	assert.Equal(t, "", normalizeProfileURL(""))
	assert.Equal(t, "https://linkedin.com/in/jdoe", normalizeProfileURL("linkedin.com/in/jdoe"))
	assert.Equal(t, "https://linkedin.com/in/jdoe", normalizeProfileURL("https://linkedin.com/in/jdoe"))
	assert.Equal(t, "http://example.com", normalizeProfileURL("http://example.com"))
	assert.Equal(t, "https://linkedin.com/in/jdoe", normalizeProfileURL("//linkedin.com/in/jdoe"))
}
