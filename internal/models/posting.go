package models

// Posting is one row scraped from the listing table.
// Company, Location and RawDateText may be empty.
type Posting struct {
	Title       string `json:"title"`
	DetailURL   string `json:"detail_url"`
	Company     string `json:"company,omitempty"`
	Location    string `json:"location,omitempty"`
	RawDateText string `json:"raw_date_text,omitempty"`
	DatePosted  string `json:"date_posted,omitempty"` // YYYY-MM-DD, or the raw text when unparseable
}

// Classification is the verdict of the suitability classifier.
type Classification struct {
	Accepted  bool   `json:"accepted"`
	Rationale string `json:"rationale"`
	RawOutput string `json:"raw_output,omitempty"`
}

// ResultRecord is what gets appended to the output CSV.
type ResultRecord struct {
	JobTitle   string
	Location   string
	JobURL     string // apply URL, falls back to the detail page
	Company    string
	Applied    string // left blank for manual tracking
	Rationale  string
	DatePosted string
}

// NewResultRecord projects an accepted posting into its persisted form.
func NewResultRecord(p Posting, c Classification, applyURL string) ResultRecord {
	if applyURL == "" {
		applyURL = p.DetailURL
	}
	return ResultRecord{
		JobTitle:   p.Title,
		Location:   p.Location,
		JobURL:     applyURL,
		Company:    p.Company,
		Rationale:  c.Rationale,
		DatePosted: p.DatePosted,
	}
}
