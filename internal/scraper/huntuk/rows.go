// Row level extraction for the huntukvisasponsors.com job table
// The markup uses generated class names, so every selector here is fragile

package huntuk

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"go-jobhunt-automation/internal/filter"
	"go-jobhunt-automation/internal/models"
	"go-jobhunt-automation/internal/scraper"
)

const (
	titleSelector = "td.css-1c5obzm > div > a > div"
	linkSelector  = "td.css-1c5obzm > div > a"
	dateSelector  = "td.css-xumdn4"
)

// ColumnHeuristic guesses which cells of a row hold the company and location.
type ColumnHeuristic interface {
	Company(row *goquery.Selection) string
	Location(row *goquery.Selection) string
}

// PositionalColumns probes fixed 1-based column positions in order.
// A company cell must not look like a place or a relative date,
// a location cell must mention a known place.
type PositionalColumns struct {
	CompanyColumns  []int
	LocationColumns []int
	NotCompany      []string
	PlaceNames      []string
}

func DefaultColumns() PositionalColumns {
	return PositionalColumns{
		CompanyColumns:  []int{2, 3, 4},
		LocationColumns: []int{3, 4, 5},
		NotCompany:      []string{"london", "uk", "england", "kingdom", "ago", "day", "week", "month"},
		PlaceNames:      []string{"london", "uk", "england", "kingdom", "manchester", "birmingham", "scotland", "wales"},
	}
}

func (c PositionalColumns) Company(row *goquery.Selection) string {
	for _, col := range c.CompanyColumns {
		text := cellText(row, col)
		if text != "" && !containsAny(text, c.NotCompany) {
			return text
		}
	}
	return ""
}

func (c PositionalColumns) Location(row *goquery.Selection) string {
	for _, col := range c.LocationColumns {
		text := cellText(row, col)
		if text != "" && containsAny(text, c.PlaceNames) {
			return text
		}
	}
	return ""
}

func cellText(row *goquery.Selection, col int) string {
	return scraper.CleanText(row.Find(fmt.Sprintf("td:nth-child(%d)", col)).First().Text())
}

func containsAny(text string, needles []string) bool {
	lower := strings.ToLower(text)
	for _, n := range needles {
		if strings.Contains(lower, n) {
			return true
		}
	}
	return false
}

// RowExtractor implements scraper.RowExtractor for the listing table.
type RowExtractor struct {
	base    *url.URL
	columns ColumnHeuristic
	Now     func() time.Time
}

func NewRowExtractor(baseURL string, columns ColumnHeuristic) (*RowExtractor, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse base url %q: %w", baseURL, err)
	}
	if columns == nil {
		columns = DefaultColumns()
	}
	return &RowExtractor{
		base:    base,
		columns: columns,
		Now:     time.Now,
	}, nil
}

func (e *RowExtractor) Extract(row *goquery.Selection) (models.Posting, bool) {
	var title string
	titleDiv := row.Find(titleSelector).First()
	link := row.Find(linkSelector).First()

	if titleDiv.Length() == 0 || link.Length() == 0 {
		//layout changed, take whatever link the row has
		link = row.Find("a").First()
		if link.Length() == 0 {
			return models.Posting{}, false
		}
		title = scraper.CleanText(link.Text())
	} else {
		title = scraper.CleanText(titleDiv.Text())
	}

	href, _ := link.Attr("href")
	href = strings.TrimSpace(href)
	if title == "" || href == "" {
		return models.Posting{}, false
	}
	detailURL, err := e.base.Parse(href)
	if err != nil {
		return models.Posting{}, false
	}

	raw := dateText(row)

	return models.Posting{
		Title:       title,
		DetailURL:   detailURL.String(),
		Company:     e.columns.Company(row),
		Location:    e.columns.Location(row),
		RawDateText: raw,
		DatePosted:  filter.ParseDate(raw, e.Now()),
	}, true
}

// dateText reads the date cell, or the first cell with a relative date
func dateText(row *goquery.Selection) string {
	if cell := row.Find(dateSelector).First(); cell.Length() > 0 {
		return scraper.CleanText(cell.Text())
	}
	var raw string
	row.Find("td").EachWithBreak(func(_ int, td *goquery.Selection) bool {
		text := scraper.CleanText(td.Text())
		if strings.Contains(strings.ToLower(text), "ago") {
			raw = text
			return false
		}
		return true
	})
	return raw
}
