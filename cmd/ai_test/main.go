package main

import (
	"context"
	"fmt"
	"log"

	"go-jobhunt-automation/internal/ai"
	"go-jobhunt-automation/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	client := ai.NewOllamaClient(cfg.OllamaBaseURL, cfg.OllamaModel, cfg.LLMTimeout)
	ctx := context.Background()

	if err := client.CheckModel(ctx); err != nil {
		log.Fatalf("Ollama check failed: %v", err)
	}
	fmt.Printf("✅ Ollama is running and %s is available\n", cfg.OllamaModel)

	jobDesc := `We are looking for a Graduate Software Engineer to join our platform team in London.
Requirements:
- A degree in Computer Science or a related field, or equivalent experience
- Some exposure to Go, Python or Java through projects or internships
- Willingness to learn, you will be paired with a mentor for your first six months
Visa sponsorship is available for this role.`

	fmt.Println("Sending sample posting to the model...")

	classifier := ai.NewClassifier(client, ai.NewMarkerParser())
	result := classifier.Classify(ctx, "Graduate Software Engineer", jobDesc, "Acme Ltd")

	fmt.Printf("\nSuitable: %v\n", result.Accepted)
	fmt.Printf("Reasoning: %s\n", result.Rationale)
	fmt.Printf("\nRaw reply:\n%s\n", result.RawOutput)
}
