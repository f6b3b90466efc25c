package huntuk

import (
	"net/url"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"

	"go-jobhunt-automation/internal/scraper"
)

const applyButtonSelector = "body > div.css-py5jdu > div.css-33z2be > div > div.chakra-stack.css-1igwmid > div:nth-child(1) > button > a"

// Ordered from most to least specific
var descriptionSelectors = []string{
	".job-description",
	".description",
	".job-content",
	".content",
	".job-details",
	".details",
	"main",
	".main-content",
	`[class*="description"]`,
	`[class*="content"]`,
}

var applySelectors = []string{
	"a[href*='apply']",
	"button a[href]",
	".apply-btn a",
	"[class*='apply'] a",
}

// DetailExtractor implements scraper.DetailExtractor for job detail pages.
type DetailExtractor struct {
	minLength int
}

func NewDetailExtractor(minLength int) *DetailExtractor {
	return &DetailExtractor{minLength: minLength}
}

// Description returns the first selector hit longer than minLength,
// falling back to the page text minus navigation chrome.
func (d *DetailExtractor) Description(doc *goquery.Document) string {
	for _, sel := range descriptionSelectors {
		el := doc.Find(sel).First()
		if el.Length() == 0 {
			continue
		}
		text := scraper.CleanText(el.Text())
		if utf8.RuneCountInString(text) > d.minLength {
			return text
		}
	}

	root := doc.Find("main").First()
	if root.Length() == 0 {
		root = doc.Find("body").First()
	}
	if root.Length() == 0 {
		return ""
	}

	//work on a copy, the apply link lookup still needs the full page
	root = root.Clone()
	root.Find("header, footer, nav, script, style").Remove()
	return scraper.CleanText(root.Text())
}

// ApplicationURL resolves the external apply link, or returns detailURL.
func (d *DetailExtractor) ApplicationURL(doc *goquery.Document, detailURL string) string {
	if href := hrefOf(doc.Find(applyButtonSelector).First()); href != "" {
		return resolve(detailURL, href)
	}
	for _, sel := range applySelectors {
		if href := hrefOf(doc.Find(sel).First()); href != "" {
			return resolve(detailURL, href)
		}
	}
	return detailURL
}

func hrefOf(s *goquery.Selection) string {
	href, _ := s.Attr("href")
	return strings.TrimSpace(href)
}

func resolve(base, href string) string {
	b, err := url.Parse(base)
	if err != nil {
		return href
	}
	u, err := b.Parse(href)
	if err != nil {
		return href
	}
	return u.String()
}
