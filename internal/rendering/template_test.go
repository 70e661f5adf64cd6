package rendering

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTemplate(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "resume.tex")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestRenderDocument_SubstitutesSlots(t *testing.T) {
	path := writeTemplate(t, "Name: {{.Name}}\nSummary: {{.Summary}}\n")

	out, err := RenderDocument(path, &TemplateData{
		Name:    "Jane Doe",
		Summary: "Engineer with a decade of backend experience.",
	})
	require.NoError(t, err)
	assert.Equal(t, "Name: Jane Doe\nSummary: Engineer with a decade of backend experience.\n", out)
}

func TestRenderDocument_EmptySlotsLeaveNoResidue(t *testing.T) {
	path := writeTemplate(t, "[{{.Projects}}][{{.Publications}}]")

	out, err := RenderDocument(path, &TemplateData{})
	require.NoError(t, err)
	assert.Equal(t, "[][]", out)
}

func TestRenderDocument_MissingTemplate(t *testing.T) {
	_, err := RenderDocument(filepath.Join(t.TempDir(), "missing.tex"), &TemplateData{})
	require.Error(t, err)

	var tmplErr *TemplateError
	require.ErrorAs(t, err, &tmplErr)
	assert.Contains(t, tmplErr.Message, "not found")
}

func TestRenderDocument_MalformedTemplate(t *testing.T) {
	path := writeTemplate(t, "{{.Name")

	_, err := RenderDocument(path, &TemplateData{Name: "Jane"})
	require.Error(t, err)

	var tmplErr *TemplateError
	require.ErrorAs(t, err, &tmplErr)
}
