package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadResumeData_Valid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "resume.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"name": "Jane Doe",
		"email": "jane@example.com",
		"summary": "Backend engineer."
	}`), 0644))

	data, err := loadResumeData(path)
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", data.Name)
	assert.Equal(t, "Backend engineer.", data.Summary)
}

func TestLoadResumeData_SchemaViolation(t *testing.T) {
	path := filepath.Join(t.TempDir(), "resume.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"name": "Jane Doe"}`), 0644))

	_, err := loadResumeData(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "schema")
}

func TestLoadResumeData_MissingFile(t *testing.T) {
	_, err := loadResumeData(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
}

func TestResolveTarget_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "target.txt")
	require.NoError(t, os.WriteFile(path, []byte("  Go developer wanted.\n"), 0644))

	target, err := resolveTarget(context.Background(), path, "")
	require.NoError(t, err)
	assert.Equal(t, "Go developer wanted.", target)
}

func TestResolveTarget_NeitherMeansGeneric(t *testing.T) {
	target, err := resolveTarget(context.Background(), "", "")
	require.NoError(t, err)
	assert.Equal(t, "", target)
}
