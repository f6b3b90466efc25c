package pipeline

import (
	"context"
	"fmt"
	"log"
	"time"

	"golang.org/x/time/rate"

	"go-jobhunt-automation/internal/filter"
	"go-jobhunt-automation/internal/models"
	"go-jobhunt-automation/internal/scraper"
)

type PostingFilter interface {
	Check(p models.Posting) (bool, string)
}

type DetailSource interface {
	Read(ctx context.Context, url string) (scraper.Detail, error)
}

type Classifier interface {
	Classify(ctx context.Context, title, description, company string) models.Classification
}

type ResultWriter interface {
	Write(rec models.ResultRecord) (bool, error)
}

type Notifier interface {
	SendJob(rec models.ResultRecord) error
}

// Deps wires the pipeline stages. Notifier and Limiter are optional.
type Deps struct {
	Filter     PostingFilter
	Details    DetailSource
	Classifier Classifier
	Writer     ResultWriter
	Notifier   Notifier
	Limiter    *rate.Limiter
}

// NewLimiter spaces detail fetches at least delay apart. Zero disables it.
func NewLimiter(delay time.Duration) *rate.Limiter {
	if delay <= 0 {
		return rate.NewLimiter(rate.Inf, 1)
	}
	return rate.NewLimiter(rate.Every(delay), 1)
}

type Summary struct {
	Total         int
	Processed     int //reached the classifier stage
	Excluded      int
	OutOfRange    int
	NoDescription int
	NotSuitable   int
	Duplicates    int
	Failed        int
	Suitable      []models.ResultRecord
}

// Runner processes postings strictly one after another.
type Runner struct {
	filter     PostingFilter
	details    DetailSource
	classifier Classifier
	writer     ResultWriter
	notifier   Notifier
	limiter    *rate.Limiter
}

func NewRunner(deps Deps) *Runner {
	return &Runner{
		filter:     deps.Filter,
		details:    deps.Details,
		classifier: deps.Classifier,
		writer:     deps.Writer,
		notifier:   deps.Notifier,
		limiter:    deps.Limiter,
	}
}

// Run returns ctx.Err() when interrupted, along with what was done so far.
// Failures of a single posting are logged and never stop the loop.
func (r *Runner) Run(ctx context.Context, postings []models.Posting) (Summary, error) {
	s := Summary{Total: len(postings)}

	for i, p := range postings {
		if err := ctx.Err(); err != nil {
			log.Printf("🛑 Interrupted before posting %d/%d", i+1, len(postings))
			return s, err
		}

		log.Printf("📄 [%d/%d] %s @ %s", i+1, len(postings), p.Title, p.Company)
		if err := r.process(ctx, p, &s); err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				log.Printf("🛑 Interrupted while processing %s", p.DetailURL)
				return s, ctxErr
			}
			s.Failed++
			log.Printf("❌ Error processing %q (%s): %v", p.Title, p.DetailURL, err)
		}
	}
	return s, nil
}

func (r *Runner) process(ctx context.Context, p models.Posting, s *Summary) (err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("panic: %v", rec)
		}
	}()

	if ok, reason := r.filter.Check(p); !ok {
		switch reason {
		case filter.ReasonExcludedKeyword:
			s.Excluded++
			log.Printf("⏭️ Skipping (excluded keyword): %s", p.Title)
		case filter.ReasonOutsideRange:
			s.OutOfRange++
			log.Printf("⏭️ Skipping (posted %s, outside date range): %s", p.DatePosted, p.Title)
		default:
			log.Printf("⏭️ Skipping (%s): %s", reason, p.Title)
		}
		return nil
	}

	if r.limiter != nil {
		if err := r.limiter.Wait(ctx); err != nil {
			return err
		}
	}

	detail, err := r.details.Read(ctx, p.DetailURL)
	if err != nil {
		return fmt.Errorf("read detail page: %w", err)
	}
	if detail.Description == "" {
		s.NoDescription++
		log.Printf("⚠️ No description found, skipping: %s", p.DetailURL)
		return nil
	}
	log.Printf("📝 Description: %d characters", len(detail.Description))

	s.Processed++
	verdict := r.classifier.Classify(ctx, p.Title, detail.Description, p.Company)
	if !verdict.Accepted {
		s.NotSuitable++
		log.Printf("👎 Not suitable: %s (%s)", p.Title, verdict.Rationale)
		return nil
	}

	rec := models.NewResultRecord(p, verdict, detail.ApplicationURL)
	written, err := r.writer.Write(rec)
	if err != nil {
		return fmt.Errorf("write result: %w", err)
	}
	if !written {
		s.Duplicates++
		return nil
	}
	s.Suitable = append(s.Suitable, rec)
	log.Printf("✅ Suitable: %s @ %s", rec.JobTitle, rec.Company)

	if r.notifier != nil {
		if err := r.notifier.SendJob(rec); err != nil {
			log.Printf("⚠️ Failed to send job to Telegram: %v", err)
		}
	}
	return nil
}
