package huntuk

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-jobhunt-automation/internal/scraper"
)

func TestListingRows_PrimarySelector(t *testing.T) {
	rows, err := listingRows(parseDoc(t, listingFixture))

	require.NoError(t, err)
	assert.Len(t, rows, 5)
}

func TestListingRows_FallsBackToPlainTable(t *testing.T) {
	doc := parseDoc(t, `<html><body><div class="renamed"><table><tbody>
  <tr><td><a href="/jobs/1">One</a></td></tr>
  <tr><td><a href="/jobs/2">Two</a></td></tr>
</tbody></table></div></body></html>`)

	rows, err := listingRows(doc)

	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Two", rows[1].Find("a").Text())
}

func TestListingRows_NoTable(t *testing.T) {
	_, err := listingRows(parseDoc(t, `<html><body><p>Nothing here</p></body></html>`))

	assert.ErrorIs(t, err, scraper.ErrNoRows)
}

func TestScreenshotNote(t *testing.T) {
	assert.Equal(t, "", screenshotNote(""))
	assert.Equal(t, " (screenshot: logs/screenshots/x.png)", screenshotNote("logs/screenshots/x.png"))
}
