package filter

import (
	"time"

	"go-jobhunt-automation/internal/models"
)

// Rejection reasons reported by Filter.Check
const (
	ReasonExcludedKeyword = "excluded_keyword"
	ReasonOutsideRange    = "outside_date_range"
)

// Filter applies the cheap heuristics before any network work is done.
type Filter struct {
	ExcludedKeywords []string
	MinAgeDays       int
	MaxAgeDays       int
	Now              func() time.Time
}

func NewFilter(keywords []string, minAgeDays, maxAgeDays int) *Filter {
	return &Filter{
		ExcludedKeywords: keywords,
		MinAgeDays:       minAgeDays,
		MaxAgeDays:       maxAgeDays,
		Now:              time.Now,
	}
}

// Check returns true when the posting survives, otherwise the reason it was dropped.
func (f *Filter) Check(p models.Posting) (bool, string) {
	//title keyword first, it needs no date math
	if IsExcludedTitle(p.Title, f.ExcludedKeywords) {
		return false, ReasonExcludedKeyword
	}

	if !InDateRange(p.DatePosted, f.now(), f.MinAgeDays, f.MaxAgeDays) {
		return false, ReasonOutsideRange
	}
	return true, ""
}

func (f *Filter) now() time.Time {
	if f.Now == nil {
		return time.Now()
	}
	return f.Now()
}
