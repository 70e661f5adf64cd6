package ingestion

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanText_NormalizesLineEndings(t *testing.T) {
	out := CleanText("line one\r\nline two\rline three")
	assert.Equal(t, "line one\nline two\nline three", out)
}

func TestCleanText_CollapsesSpacesAndTabs(t *testing.T) {
	out := CleanText("Senior   Engineer\t\tremote role")
	assert.Equal(t, "Senior Engineer remote role", out)
}

func TestCleanText_CapsBlankLinesAtOne(t *testing.T) {
	out := CleanText("first\n\n\n\nsecond")
	assert.Equal(t, "first\n\nsecond", out)
}

func TestCleanText_TrimsLeadingAndTrailingBlank(t *testing.T) {
	out := CleanText("\n\n  content  \n\n")
	assert.Equal(t, "content", out)
}

func TestExtractText_StripsNoiseElements(t *testing.T) {
	html := `
		<html>
			<head><style>body { color: red; }</style></head>
			<body>
				<nav>Home | About</nav>
				<script>console.log("tracking");</script>
				<main>Backend Engineer role in Berlin.</main>
				<footer>Copyright 2026</footer>
			</body>
		</html>`

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	require.NoError(t, err)

	out := ExtractText(doc)
	assert.Contains(t, out, "Backend Engineer role in Berlin.")
	assert.NotContains(t, out, "tracking")
	assert.NotContains(t, out, "Home | About")
	assert.NotContains(t, out, "Copyright")
	assert.NotContains(t, out, "color: red")
}

func TestTargetFromURL_FetchesAndExtracts(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Contains(t, r.Header.Get("User-Agent"), "ResumeWriter")
		_, _ = w.Write([]byte(`<html><body><nav>menu</nav><p>Go developer wanted.</p></body></html>`))
	}))
	defer server.Close()

	out, err := TargetFromURL(context.Background(), server.URL)
	require.NoError(t, err)
	assert.Contains(t, out, "Go developer wanted.")
	assert.NotContains(t, out, "menu")
}

func TestTargetFromURL_NonOKStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	_, err := TargetFromURL(context.Background(), server.URL)
	require.Error(t, err)

	var fetchErr *FetchError
	require.ErrorAs(t, err, &fetchErr)
	assert.Contains(t, fetchErr.Message, "404")
}

func TestTargetFromURL_InvalidURL(t *testing.T) {
	_, err := TargetFromURL(context.Background(), "not-a-url")
	require.Error(t, err)

	var fetchErr *FetchError
	require.ErrorAs(t, err, &fetchErr)
	assert.Contains(t, fetchErr.Message, "invalid URL")
}
