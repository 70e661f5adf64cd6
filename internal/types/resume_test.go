package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExperience_HasIdentity(t *testing.T) {
	assert.True(t, Experience{Company: "Acme", Role: "Engineer"}.HasIdentity())
	assert.False(t, Experience{Company: "Acme"}.HasIdentity())
	assert.False(t, Experience{Role: "Engineer"}.HasIdentity())
	assert.False(t, Experience{Company: "  ", Role: "Engineer"}.HasIdentity())
}

func TestProject_HasIdentity(t *testing.T) {
	assert.True(t, Project{Name: "CLI Tool"}.HasIdentity())
	assert.False(t, Project{Description: "bullet without a name"}.HasIdentity())
	assert.False(t, Project{Name: "   "}.HasIdentity())
}

func TestEducation_HasIdentity(t *testing.T) {
	assert.True(t, Education{School: "State University", Degree: "BS"}.HasIdentity())
	assert.False(t, Education{School: "State University"}.HasIdentity())
	assert.False(t, Education{Degree: "BS"}.HasIdentity())
}

func TestCertification_HasIdentity(t *testing.T) {
	assert.True(t, Certification{Name: "Cloud Architect"}.HasIdentity())
	assert.False(t, Certification{Issued: "2022"}.HasIdentity())
}

func TestResumeData_ValidateRequiresNameAndEmail(t *testing.T) {
	data := &ResumeData{Name: "Jane Doe", Email: "jane@example.com"}
	require.NoError(t, data.Validate())

	assert.Error(t, (&ResumeData{Email: "jane@example.com"}).Validate())
	assert.Error(t, (&ResumeData{Name: "Jane Doe"}).Validate())
	assert.Error(t, (&ResumeData{Name: "Jane Doe", Email: "not-an-email"}).Validate())
}

func TestContentType_IsValid(t *testing.T) {
	assert.True(t, ContentSummary.IsValid())
	assert.True(t, ContentSkills.IsValid())
	assert.True(t, ContentExperience.IsValid())
	assert.True(t, ContentProjects.IsValid())
	assert.False(t, ContentType("poetry").IsValid())
	assert.False(t, ContentType("").IsValid())
}

func TestContentUnit_WithTextIsCopy(t *testing.T) {
	unit := ContentUnit{Name: "summary", Type: ContentSummary, Text: "before"}
	updated := unit.WithText("after")

	assert.Equal(t, "before", unit.Text)
	assert.Equal(t, "after", updated.Text)
	assert.Equal(t, unit.Name, updated.Name)
	assert.Equal(t, unit.Type, updated.Type)
}
