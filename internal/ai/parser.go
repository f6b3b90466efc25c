package ai

import (
	"regexp"
	"strings"
)

const defaultRationale = "Analysis completed - see full response for details"

var (
	decisionRegex  = regexp.MustCompile(`(?i)suitable\**\s*:\s*\**\s*(yes|no)\b`)
	reasoningRegex = regexp.MustCompile(`(?i)reasoning\**\s*:`)
	sectionRegex   = regexp.MustCompile(`(?im)^\s*(?:\d+\.\s*)?\**(key[_ ]factors|confidence|suitable)\**\s*:`)
	listNumRegex   = regexp.MustCompile(`\s+\d+\.$`)
)

// MarkerParser reads the SUITABLE/REASONING lines the prompt asks for.
// Without a decision line it falls back to counting signal phrases.
type MarkerParser struct {
	Positive []string
	Negative []string
}

func NewMarkerParser() *MarkerParser {
	return &MarkerParser{
		Positive: []string{"entry-level", "junior", "graduate", "0-2 years", "beginner", "trainee", "apprentice", "suitable for junior"},
		Negative: []string{"senior", "experienced", "5+ years", "lead", "expert", "not suitable", "too advanced", "requires experience"},
	}
}

func (p *MarkerParser) Parse(reply string) (bool, string) {
	return p.decision(reply), rationale(reply)
}

func (p *MarkerParser) decision(reply string) bool {
	if m := decisionRegex.FindStringSubmatch(reply); m != nil {
		return strings.EqualFold(m[1], "yes")
	}

	lower := strings.ToLower(reply)
	//each phrase counts once however often it appears
	pos, neg := 0, 0
	for _, s := range p.Positive {
		if strings.Contains(lower, s) {
			pos++
		}
	}
	for _, s := range p.Negative {
		if strings.Contains(lower, s) {
			neg++
		}
	}
	return pos > neg
}

func rationale(reply string) string {
	loc := reasoningRegex.FindStringIndex(reply)
	if loc == nil {
		return defaultRationale
	}
	rest := reply[loc[1]:]
	if end := sectionRegex.FindStringIndex(rest); end != nil {
		rest = rest[:end[0]]
	}
	rest = strings.TrimSpace(listNumRegex.ReplaceAllString(strings.TrimSpace(rest), ""))
	rest = strings.TrimSpace(strings.Trim(rest, "*"))
	if rest == "" {
		return defaultRationale
	}
	return rest
}
