package filter

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

const isoLayout = "2006-01-02"

var (
	relativeRegex = regexp.MustCompile(`(\d+)\s*(hour|day|week|month)`)
	isoDateRegex  = regexp.MustCompile(`(\d{4})-(\d{1,2})-(\d{1,2})`)
	slashRegex    = regexp.MustCompile(`(\d{1,2})/(\d{1,2})/(\d{4})`)
	dashRegex     = regexp.MustCompile(`(\d{1,2})-(\d{1,2})-(\d{4})`)
)

// ParseDate turns listing date text into YYYY-MM-DD relative to now.
// Unrecognised text comes back lowercased and trimmed, empty stays empty.
func ParseDate(text string, now time.Time) string {
	text = strings.ToLower(strings.TrimSpace(text))
	if text == "" {
		return ""
	}

	//case 1: "3 days ago", "2 weeks ago", "5 hours ago"
	if strings.Contains(text, "ago") {
		if m := relativeRegex.FindStringSubmatch(text); m != nil {
			n, _ := strconv.Atoi(m[1])
			var days int
			switch m[2] {
			case "hour":
				days = 0
			case "day":
				days = n
			case "week":
				days = n * 7
			case "month":
				days = n * 30
			}
			return now.AddDate(0, 0, -days).Format(isoLayout)
		}
	}

	//case 2: 2024-01-15
	if m := isoDateRegex.FindStringSubmatch(text); m != nil {
		if d, ok := buildDate(m[1], m[2], m[3]); ok {
			return d
		}
	}

	//case 3: A/B/YYYY or A-B-YYYY, day first only when A > 12
	for _, re := range []*regexp.Regexp{slashRegex, dashRegex} {
		m := re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		first, _ := strconv.Atoi(m[1])
		month, day := m[1], m[2]
		if first > 12 {
			month, day = m[2], m[1]
		}
		if d, ok := buildDate(m[3], month, day); ok {
			return d
		}
	}

	return text
}

func buildDate(year, month, day string) (string, bool) {
	y, _ := strconv.Atoi(year)
	m, _ := strconv.Atoi(month)
	d, _ := strconv.Atoi(day)
	if m < 1 || m > 12 || d < 1 || d > 31 {
		return "", false
	}
	return fmt.Sprintf("%04d-%02d-%02d", y, m, d), true
}

// InDateRange accepts dates within [now-maxAge, now-minAge] days, inclusive.
// Empty or non-ISO dates are accepted since the age is unknown.
func InDateRange(date string, now time.Time, minAgeDays, maxAgeDays int) bool {
	if date == "" {
		return true
	}
	posted, err := time.ParseInLocation(isoLayout, date, now.Location())
	if err != nil {
		return true
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	oldest := today.AddDate(0, 0, -maxAgeDays)
	newest := today.AddDate(0, 0, -minAgeDays)
	return !posted.Before(oldest) && !posted.After(newest)
}
