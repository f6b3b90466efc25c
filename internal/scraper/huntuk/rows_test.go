package huntuk

import (
	"strings"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const listingFixture = `<html><body>
<div class="css-py5jdu"><div class="css-33z2be">
<div class="chakra-table__container css-zipzvv"><table><tbody>
  <tr id="primary">
    <td class="css-1c5obzm"><div><a href="/jobs/123"><div>  Graduate
        Software Engineer </div></a></div></td>
    <td>Acme Ltd</td>
    <td>London, UK</td>
    <td class="css-xumdn4">3 days ago</td>
  </tr>
  <tr id="fallback">
    <td><a href="https://other.example/j/9">Backend Developer</a></td>
    <td>2 weeks ago</td>
    <td>Leeds, England</td>
  </tr>
  <tr id="placey-company">
    <td class="css-1c5obzm"><div><a href="/jobs/7"><div>Junior Dev</div></a></div></td>
    <td>Dukes Digital</td>
    <td>Widgets Inc</td>
    <td>Cardiff, Wales</td>
  </tr>
  <tr id="no-link"><td>Just text</td><td>Acme</td></tr>
  <tr id="empty-title"><td><a href="/jobs/8">   </a></td></tr>
</tbody></table></div>
</div></div>
</body></html>`

var fixedNow = time.Date(2024, 3, 20, 9, 0, 0, 0, time.UTC)

func fixtureRow(t *testing.T, id string) *goquery.Selection {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(listingFixture))
	require.NoError(t, err)
	row := doc.Find("tr#" + id)
	require.Equal(t, 1, row.Length())
	return row
}

func newTestExtractor(t *testing.T, columns ColumnHeuristic) *RowExtractor {
	t.Helper()
	e, err := NewRowExtractor("https://huntukvisasponsors.com", columns)
	require.NoError(t, err)
	e.Now = func() time.Time { return fixedNow }
	return e
}

func TestRowExtractor_PrimarySelectors(t *testing.T) {
	e := newTestExtractor(t, nil)

	p, ok := e.Extract(fixtureRow(t, "primary"))

	require.True(t, ok)
	assert.Equal(t, "Graduate Software Engineer", p.Title)
	assert.Equal(t, "https://huntukvisasponsors.com/jobs/123", p.DetailURL)
	assert.Equal(t, "Acme Ltd", p.Company)
	assert.Equal(t, "London, UK", p.Location)
	assert.Equal(t, "3 days ago", p.RawDateText)
	assert.Equal(t, "2024-03-17", p.DatePosted)
}

func TestRowExtractor_FallbackLink(t *testing.T) {
	e := newTestExtractor(t, nil)

	p, ok := e.Extract(fixtureRow(t, "fallback"))

	require.True(t, ok)
	assert.Equal(t, "Backend Developer", p.Title)
	assert.Equal(t, "https://other.example/j/9", p.DetailURL)
	//column 2 is a date and column 3 a place, neither is a company
	assert.Empty(t, p.Company)
	assert.Equal(t, "Leeds, England", p.Location)
	assert.Equal(t, "2 weeks ago", p.RawDateText)
	assert.Equal(t, "2024-03-06", p.DatePosted)
}

func TestRowExtractor_CompanyThatLooksLikePlace(t *testing.T) {
	e := newTestExtractor(t, nil)

	p, ok := e.Extract(fixtureRow(t, "placey-company"))

	require.True(t, ok)
	//"Dukes" contains "uk" so the heuristic moves on to the next column
	assert.Equal(t, "Widgets Inc", p.Company)
	assert.Equal(t, "Cardiff, Wales", p.Location)
}

func TestRowExtractor_Rejects(t *testing.T) {
	e := newTestExtractor(t, nil)

	for _, id := range []string{"no-link", "empty-title"} {
		t.Run(id, func(t *testing.T) {
			_, ok := e.Extract(fixtureRow(t, id))
			assert.False(t, ok)
		})
	}
}

type fixedColumns struct{}

func (fixedColumns) Company(*goquery.Selection) string  { return "Injected Co" }
func (fixedColumns) Location(*goquery.Selection) string { return "Remote" }

func TestRowExtractor_CustomHeuristic(t *testing.T) {
	e := newTestExtractor(t, fixedColumns{})

	p, ok := e.Extract(fixtureRow(t, "primary"))

	require.True(t, ok)
	assert.Equal(t, "Injected Co", p.Company)
	assert.Equal(t, "Remote", p.Location)
}

func TestNewRowExtractor_BadBaseURL(t *testing.T) {
	_, err := NewRowExtractor("://broken", nil)
	assert.Error(t, err)
}
