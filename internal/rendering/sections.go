package rendering

import (
	"fmt"
	"strings"

	"github.com/jonathan/resume-writer/internal/types"
)

// FormatSkills formats newline-delimited skills text as a bulleted list.
// A line containing a colon splits into a bold category label and its value
// list; lines without a colon are emitted verbatim.
func FormatSkills(skillsText string) string {
	if strings.TrimSpace(skillsText) == "" {
		return ""
	}

	var items []string
	for _, line := range strings.Split(strings.TrimSpace(skillsText), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if category, values, found := strings.Cut(line, ":"); found {
			items = append(items, fmt.Sprintf(`\item[•] \textbf{%s:} %s`,
				EscapeLaTeX(strings.TrimSpace(category)),
				EscapeLaTeX(strings.TrimSpace(values))))
		} else {
			items = append(items, fmt.Sprintf(`\item[•] %s`, EscapeLaTeX(line)))
		}
	}

	if len(items) == 0 {
		return ""
	}

	return "\\begin{itemize}[leftmargin=*, topsep=0pt, itemsep=0pt, parsep=0pt]\n" +
		strings.Join(items, "\n") +
		"\n\\end{itemize}"
}

// FormatExperience formats one experience entry as a heading pairing company
// against location and role against dates, right-aligned via \hfill, with
// nested projects rendered as an indented secondary list. An entry missing
// its identity (company or role) produces no fragment.
func FormatExperience(exp types.Experience) string {
	if !exp.HasIdentity() {
		return ""
	}

	var sb strings.Builder
	sb.WriteString("\\item\n")
	sb.WriteString(fmt.Sprintf("\\textbf{\\large %s} \\hfill %s \\\\ \\vspace{-2pt}\n",
		EscapeLaTeX(exp.Company), EscapeLaTeX(exp.Location)))
	sb.WriteString(fmt.Sprintf("\\textit{%s} \\hfill %s \\\\\n",
		EscapeLaTeX(exp.Role), EscapeLaTeX(exp.Dates)))

	for _, project := range exp.Projects {
		if !project.HasIdentity() {
			continue
		}
		sb.WriteString(formatNestedProject(project))
	}

	return sb.String()
}

// formatNestedProject renders a project under an experience entry as a bold
// title followed by an indented bullet list.
func formatNestedProject(project types.Project) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("\\vspace{-2pt}\n\\hspace{15pt}\\textbf{%s}\n",
		EscapeLaTeX(project.Name)))

	bullets := nonBlankLines(project.Description)
	if len(bullets) > 0 {
		sb.WriteString("\\begin{itemize}[leftmargin=15pt, label={\\textbullet}, topsep=0pt, itemsep=0pt]\n")
		for _, bullet := range bullets {
			sb.WriteString(fmt.Sprintf("\\resumeItem{%s}\n", EscapeLaTeX(bullet)))
		}
		sb.WriteString("\\end{itemize}\n")
	}

	return sb.String()
}

// FormatExperienceList formats a list of experience entries, preserving
// input order. Entries without identity contribute nothing.
func FormatExperienceList(entries []types.Experience) string {
	fragments := make([]string, 0, len(entries))
	for _, exp := range entries {
		if fragment := FormatExperience(exp); fragment != "" {
			fragments = append(fragments, fragment)
		}
	}
	return strings.Join(fragments, "\n")
}

// FormatProject formats a standalone project as a four-field subheading
// followed by one bullet per non-blank description line.
func FormatProject(project types.Project) string {
	if !project.HasIdentity() {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("\\resumeSubheading\n{%s}\n{%s}\n{%s}\n{}\n",
		EscapeLaTeX(project.Name),
		EscapeLaTeX(project.Dates),
		EscapeLaTeX(project.Technologies)))
	sb.WriteString("\\resumeItemListStart\n")
	for _, bullet := range nonBlankLines(project.Description) {
		sb.WriteString(fmt.Sprintf("\\resumeItem{%s}\n", EscapeLaTeX(bullet)))
	}
	sb.WriteString("\\resumeItemListEnd\n")

	return sb.String()
}

// FormatProjects formats standalone projects as a complete section.
// No valid projects means no section at all, header included.
func FormatProjects(projects []types.Project) string {
	fragments := make([]string, 0, len(projects))
	for _, project := range projects {
		if fragment := FormatProject(project); fragment != "" {
			fragments = append(fragments, fragment)
		}
	}
	if len(fragments) == 0 {
		return ""
	}

	return "\\section{Projects}\n\\resumeSubHeadingListStart\n" +
		strings.Join(fragments, "\n") +
		"\n\\resumeSubHeadingListEnd"
}

// FormatEducation formats one education entry as a single line joining
// degree, bolded school, optional location, optional GPA and dates with a
// separator glyph. Omitted optional fields leave no dangling separator.
func FormatEducation(edu types.Education) string {
	if !edu.HasIdentity() {
		return ""
	}

	parts := []string{
		EscapeLaTeX(edu.Degree),
		fmt.Sprintf("\\textbf{%s}", EscapeLaTeX(edu.School)),
	}
	if strings.TrimSpace(edu.Location) != "" {
		parts = append(parts, EscapeLaTeX(edu.Location))
	}
	if strings.TrimSpace(edu.GPA) != "" {
		parts = append(parts, "GPA "+EscapeLaTeX(edu.GPA))
	}
	if strings.TrimSpace(edu.Dates) != "" {
		parts = append(parts, EscapeLaTeX(edu.Dates))
	}

	return fmt.Sprintf("\\vspace{0pt}\\item\n%s\\vspace{-6pt}\n",
		strings.Join(parts, " $|$ "))
}

// FormatEducationList formats a list of education entries, preserving order.
func FormatEducationList(entries []types.Education) string {
	fragments := make([]string, 0, len(entries))
	for _, edu := range entries {
		if fragment := FormatEducation(edu); fragment != "" {
			fragments = append(fragments, fragment)
		}
	}
	return strings.Join(fragments, "\n")
}

// FormatPublications formats publications as a numbered list under a labeled
// heading. An empty list produces an empty fragment with no section header.
func FormatPublications(publications []string) string {
	items := make([]string, 0, len(publications))
	for _, pub := range publications {
		if strings.TrimSpace(pub) == "" {
			continue
		}
		items = append(items, fmt.Sprintf("\\item %s", EscapeLaTeX(pub)))
	}
	if len(items) == 0 {
		return ""
	}

	return "\n\\section{Publications}\n\\begin{enumerate}\n" +
		strings.Join(items, "\n") +
		"\n\\end{enumerate}"
}

// FormatCertifications formats certifications as one line per entry pairing
// name against an issued/expires date range. An empty list produces an empty
// fragment with no section header.
func FormatCertifications(certs []types.Certification) string {
	lines := make([]string, 0, len(certs))
	for _, cert := range certs {
		if !cert.HasIdentity() {
			continue
		}

		dateRange := EscapeLaTeX(cert.Issued)
		if strings.TrimSpace(cert.Expires) != "" {
			dateRange = fmt.Sprintf("%s - %s", EscapeLaTeX(cert.Issued), EscapeLaTeX(cert.Expires))
		}

		line := EscapeLaTeX(cert.Name)
		if dateRange != "" {
			line = fmt.Sprintf("%s \\hfill %s", line, dateRange)
		}
		lines = append(lines, "\\item\n"+line)
	}
	if len(lines) == 0 {
		return ""
	}

	return "\\section{Certifications}\n\\resumeSubHeadingListStart\n" +
		strings.Join(lines, "\n") +
		"\n\\resumeSubHeadingListEnd"
}

// FormatContactLinks joins the optional contact links in a fixed order:
// code-repository profile, portfolio site, professional-network profile.
// Absent links contribute nothing.
func FormatContactLinks(github, portfolio, linkedin string) string {
	var sb strings.Builder
	if github != "" {
		sb.WriteString(fmt.Sprintf("$|$ \\faIcon{github} \\href{%s}{GitHub}", github))
	}
	if portfolio != "" {
		sb.WriteString(fmt.Sprintf("$|$ \\faIcon{globe} \\href{%s}{%s}", portfolio, EscapeLaTeX(portfolio)))
	}
	if linkedin != "" {
		sb.WriteString(fmt.Sprintf("$|$ \\faIcon{linkedin} \\href{%s}{LinkedIn}", linkedin))
	}
	return sb.String()
}

// nonBlankLines splits text into trimmed lines, dropping blank ones.
func nonBlankLines(text string) []string {
	var lines []string
	for _, line := range strings.Split(strings.TrimSpace(text), "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
