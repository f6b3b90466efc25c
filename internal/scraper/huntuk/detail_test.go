package huntuk

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const detailURL = "https://huntukvisasponsors.com/jobs/5"

func parseDoc(t *testing.T, html string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	require.NoError(t, err)
	return doc
}

func TestDetailExtractor_DescriptionSelector(t *testing.T) {
	long := strings.Repeat("We are hiring a graduate engineer to build services. ", 4)
	doc := parseDoc(t, `<html><body>
		<header>Site header</header>
		<div class="job-description">`+long+`</div>
		<footer>Footer</footer>
	</body></html>`)

	desc := NewDetailExtractor(100).Description(doc)

	assert.Equal(t, strings.TrimSpace(long), desc)
}

func TestDetailExtractor_DescriptionFallsBackToBody(t *testing.T) {
	doc := parseDoc(t, `<html><body>
		<header>Site header</header>
		<nav>Jobs | Sponsors</nav>
		<div class="description">Short blurb.</div>
		<p>Visa sponsorship available.</p>
		<script>var tracking = 1;</script>
		<footer>Footer text</footer>
	</body></html>`)
	e := NewDetailExtractor(100)

	desc := e.Description(doc)

	assert.Contains(t, desc, "Short blurb.")
	assert.Contains(t, desc, "Visa sponsorship available.")
	assert.NotContains(t, desc, "Site header")
	assert.NotContains(t, desc, "Jobs | Sponsors")
	assert.NotContains(t, desc, "tracking")
	assert.NotContains(t, desc, "Footer text")

	//the fallback must not strip the live document
	assert.Equal(t, 1, doc.Find("footer").Length())
}

func TestDetailExtractor_EmptyDocument(t *testing.T) {
	doc := parseDoc(t, `<html><body></body></html>`)
	assert.Empty(t, NewDetailExtractor(100).Description(doc))
}

func TestDetailExtractor_ApplicationURL(t *testing.T) {
	tests := []struct {
		name     string
		html     string
		expected string
	}{
		{
			name: "primary apply button",
			html: `<html><body><div class="css-py5jdu"><div class="css-33z2be"><div>
				<div class="chakra-stack css-1igwmid"><div><button><a href="https://careers.acme.com/apply/1">Apply now</a></button></div></div>
			</div></div></div></body></html>`,
			expected: "https://careers.acme.com/apply/1",
		},
		{
			name:     "relative apply link",
			html:     `<html><body><a href="/apply?job=5">Apply</a></body></html>`,
			expected: "https://huntukvisasponsors.com/apply?job=5",
		},
		{
			name:     "apply class wrapper",
			html:     `<html><body><div class="job-apply-box"><a href="https://ats.example/p/77">Go</a></div></body></html>`,
			expected: "https://ats.example/p/77",
		},
		{
			name:     "no link falls back to detail page",
			html:     `<html><body><p>Email us</p></body></html>`,
			expected: detailURL,
		},
	}

	e := NewDetailExtractor(100)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, e.ApplicationURL(parseDoc(t, tt.html), detailURL))
		})
	}
}
