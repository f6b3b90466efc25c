package ai

import (
	"context"
	"fmt"
	"log"

	"go-jobhunt-automation/internal/models"
)

// Classifier decides whether a posting suits a junior engineer.
type Classifier struct {
	client ChatClient
	parser ReplyParser
}

func NewClassifier(client ChatClient, parser ReplyParser) *Classifier {
	if parser == nil {
		parser = NewMarkerParser()
	}
	return &Classifier{
		client: client,
		parser: parser,
	}
}

// Classify never fails: a backend error yields a rejected posting whose
// rationale carries the error.
func (c *Classifier) Classify(ctx context.Context, title, description, company string) models.Classification {
	log.Printf("🤖 Analyzing job: %s", title)

	reply, err := c.client.Chat(ctx, []Message{
		{Role: "system", Content: buildSystemPrompt()},
		{Role: "user", Content: buildUserPrompt(title, description, company)},
	})
	if err != nil {
		log.Printf("❌ Error analyzing job with LLM: %v", err)
		return models.Classification{
			Accepted:  false,
			Rationale: fmt.Sprintf("Analysis failed: %v", err),
		}
	}

	accepted, rationale := c.parser.Parse(reply)
	log.Printf("🧠 LLM analysis completed for: %s (suitable=%v)", title, accepted)
	return models.Classification{
		Accepted:  accepted,
		Rationale: rationale,
		RawOutput: reply,
	}
}
