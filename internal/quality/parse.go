// Package quality implements the post-assembly document quality gate.
package quality

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/jonathan/resume-writer/internal/types"
)

// DefaultEstimatedPages is the conservative length assumed when the
// response carries no recognizable numeric estimate.
const DefaultEstimatedPages = 1.0

// Response field labels of the fixed verdict format.
const (
	labelPages    = "ESTIMATED_PAGES:"
	labelApproved = "APPROVED:"
	labelFeedback = "FEEDBACK:"
	labelChanges  = "SUGGESTED_CHANGES:"
)

var numberPattern = regexp.MustCompile(`\d+(\.\d+)?`)

// ParseVerdict parses the fixed-format quality review response. Free-text
// verdict parsing is fragile, so every fallback lives here: a missing or
// non-numeric page estimate defaults to DefaultEstimatedPages, a missing
// approval line means not approved, and missing sections yield empty
// fields. ParseVerdict never fails.
func ParseVerdict(response string) *types.QualityVerdict {
	verdict := &types.QualityVerdict{
		EstimatedPages:   DefaultEstimatedPages,
		SuggestedChanges: []string{},
	}

	for _, line := range strings.Split(response, "\n") {
		line = strings.TrimSpace(line)
		switch {
		case strings.HasPrefix(line, labelPages):
			verdict.EstimatedPages = parsePages(strings.TrimPrefix(line, labelPages))
		case strings.HasPrefix(line, labelApproved):
			verdict.Approved = parseApproved(strings.TrimPrefix(line, labelApproved))
		}
	}

	verdict.Feedback = parseFeedback(response)
	verdict.SuggestedChanges = parseChanges(response)

	return verdict
}

// parsePages extracts the first numeric token from the page estimate,
// tolerating surrounding text like "1.5 pages".
func parsePages(value string) float64 {
	match := numberPattern.FindString(value)
	if match == "" {
		return DefaultEstimatedPages
	}
	pages, err := strconv.ParseFloat(match, 64)
	if err != nil || pages < 0 {
		return DefaultEstimatedPages
	}
	return pages
}

// parseApproved accepts only the exact affirmative token, not substrings of
// other tokens.
func parseApproved(value string) bool {
	fields := strings.Fields(strings.ToUpper(strings.TrimSpace(value)))
	return len(fields) > 0 && fields[0] == "YES"
}

// parseFeedback extracts the free-text feedback body between the FEEDBACK
// and SUGGESTED_CHANGES labels.
func parseFeedback(response string) string {
	start := strings.Index(response, labelFeedback)
	if start < 0 {
		return ""
	}
	body := response[start+len(labelFeedback):]
	if end := strings.Index(body, labelChanges); end >= 0 {
		body = body[:end]
	}
	return strings.TrimSpace(body)
}

// parseChanges collects the hyphen-bulleted suggestions after the
// SUGGESTED_CHANGES label, in order.
func parseChanges(response string) []string {
	changes := []string{}
	start := strings.Index(response, labelChanges)
	if start < 0 {
		return changes
	}

	for _, line := range strings.Split(response[start+len(labelChanges):], "\n") {
		line = strings.TrimSpace(line)
		if !strings.HasPrefix(line, "-") {
			continue
		}
		change := strings.TrimSpace(strings.TrimPrefix(line, "-"))
		if change != "" {
			changes = append(changes, change)
		}
	}
	return changes
}
