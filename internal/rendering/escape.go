// Package rendering turns structured resume records into LaTeX fragments
// and assembles them into a complete document.
package rendering

import "strings"

// latexEscapes maps each reserved LaTeX character to its literal-producing
// sequence.
var latexEscapes = map[rune]string{
	'&':  `\&`,
	'%':  `\%`,
	'$':  `\$`,
	'#':  `\#`,
	'_':  `\_`,
	'{':  `\{`,
	'}':  `\}`,
	'~':  `\textasciitilde{}`,
	'^':  `\textasciicircum{}`,
	'\\': `\textbackslash{}`,
}

// EscapeLaTeX escapes the reserved LaTeX characters in text so it can be
// embedded verbatim without corrupting document structure. The input is
// processed in a single left-to-right pass, so a backslash produced by one
// escape is never re-escaped by another.
func EscapeLaTeX(text string) string {
	if text == "" {
		return ""
	}

	var result strings.Builder
	result.Grow(len(text) + len(text)/4)

	for _, r := range text {
		if esc, ok := latexEscapes[r]; ok {
			result.WriteString(esc)
			continue
		}
		result.WriteRune(r)
	}

	return result.String()
}
