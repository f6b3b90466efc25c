package ai

import (
	"context"
	"fmt"
)

// descriptionLimit caps how many runes of a description reach the prompt
const descriptionLimit = 3000

type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatClient is the interface for LLM backends
type ChatClient interface {
	// Chat sends the conversation and returns the assistant reply text.
	Chat(ctx context.Context, messages []Message) (string, error)
}

// ReplyParser turns a free text model reply into a decision.
type ReplyParser interface {
	Parse(reply string) (accepted bool, rationale string)
}

// buildSystemPrompt creates the system instruction for the model
func buildSystemPrompt() string {
	return "You are an expert career advisor specializing in software engineering roles. " +
		"Analyze job postings to determine if they are suitable for junior software engineers (0-2 years experience)."
}

// buildUserPrompt embeds the posting into the fixed analysis template
func buildUserPrompt(title, description, company string) string {
	return fmt.Sprintf(`Please analyze the following software engineering job posting to determine if it's suitable for a JUNIOR software engineer (0-2 years of experience).

JOB TITLE: %s
COMPANY: %s

JOB DESCRIPTION:
%s

ANALYSIS CRITERIA:
Please evaluate based on these factors:
1. Required years of experience (should be 0-2 years or entry-level)
2. Technical requirements complexity (should not require advanced/expert knowledge)
3. Leadership or mentoring requirements (juniors typically don't lead)
4. Seniority indicators in responsibilities
5. Educational requirements (should accept recent graduates)

RESPONSE FORMAT:
Please respond with:
1. SUITABLE: YES or NO
2. CONFIDENCE: High/Medium/Low
3. REASONING: Brief explanation of your decision
4. KEY_FACTORS: List main factors that influenced your decision

Example response:
SUITABLE: YES
CONFIDENCE: High
REASONING: This position explicitly states "entry-level" and "0-2 years experience required". The technical requirements are fundamental programming skills appropriate for juniors.
KEY_FACTORS: Entry-level position, mentorship provided, fundamental tech stack, no leadership requirements

Be thorough but concise in your analysis.`, title, company, truncateRunes(description, descriptionLimit))
}

func truncateRunes(s string, limit int) string {
	if limit <= 0 {
		return s
	}
	n := 0
	for i := range s {
		if n == limit {
			return s[:i]
		}
		n++
	}
	return s
}
