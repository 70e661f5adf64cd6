package rendering

import (
	"fmt"
	"os"
	"strings"
	"text/template"
)

// TemplateData holds the named substitution slots the document template
// exposes. Every field is a pre-rendered fragment; the template itself
// performs plain slot substitution with no control flow.
type TemplateData struct {
	Name            string
	Email           string
	Phone           string
	Location        string
	LinkedIn        string
	AdditionalLinks string
	Summary         string
	Skills          string
	Experience      string
	Projects        string
	Education       string
	Certifications  string
	Publications    string
}

// RenderDocument substitutes the template's named slots with the fragments
// in data and returns the complete LaTeX source.
func RenderDocument(templatePath string, data *TemplateData) (string, error) {
	tmpl, err := parseTemplate(templatePath)
	if err != nil {
		return "", err
	}

	var result strings.Builder
	if err := tmpl.Execute(&result, data); err != nil {
		return "", &TemplateError{
			Message: "failed to execute template",
			Cause:   err,
		}
	}

	return result.String(), nil
}

// parseTemplate reads and parses a LaTeX template file
func parseTemplate(templatePath string) (*template.Template, error) {
	content, err := os.ReadFile(templatePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &TemplateError{
				Message: fmt.Sprintf("template file not found: %s", templatePath),
				Cause:   err,
			}
		}
		return nil, &TemplateError{
			Message: fmt.Sprintf("failed to read template file: %s", templatePath),
			Cause:   err,
		}
	}

	tmpl, err := template.New("resume").Parse(string(content))
	if err != nil {
		return nil, &TemplateError{
			Message: "failed to parse template",
			Cause:   err,
		}
	}

	return tmpl, nil
}
