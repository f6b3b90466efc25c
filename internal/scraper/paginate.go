package scraper

import (
	"context"
	"errors"
	"log"

	"go-jobhunt-automation/internal/models"
)

// Collect reads rows page by page until target postings are gathered.
//
// A failing page load, a missing next control or a page with no new
// postings ends the walk and the postings gathered so far are returned
// without error. Only context
// cancellation is reported, together with the partial result.
func Collect(ctx context.Context, pager Pager, extractor RowExtractor, target int) ([]models.Posting, error) {
	var postings []models.Posting
	seen := make(map[string]bool)

	for page := 1; len(postings) < target; page++ {
		if err := ctx.Err(); err != nil {
			return postings, err
		}

		rows, err := pager.Rows(ctx)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return postings, ctxErr
			}
			if errors.Is(err, ErrNoRows) {
				log.Printf("📭 No rows on page %d, stopping", page)
			} else {
				log.Printf("⚠️ Page %d failed to load: %v", page, err)
			}
			break
		}
		if len(rows) == 0 {
			log.Printf("📭 No rows on page %d, stopping", page)
			break
		}
		log.Printf("📦 Page %d: %d rows", page, len(rows))

		added := 0
		for _, row := range rows {
			if len(postings) >= target {
				break
			}
			p, ok := extractor.Extract(row)
			if !ok {
				continue
			}
			//a stale page after a no-op click repeats its rows
			if seen[p.DetailURL] {
				continue
			}
			seen[p.DetailURL] = true
			postings = append(postings, p)
			added++
		}

		if len(postings) >= target {
			break
		}
		//a no-op next click leaves the old rows in place
		if added == 0 {
			log.Printf("🏁 Page %d added no new postings, stopping", page)
			break
		}

		more, err := pager.Next(ctx)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return postings, ctxErr
			}
			log.Printf("⚠️ Could not advance past page %d: %v", page, err)
			break
		}
		if !more {
			log.Printf("🏁 No more pages after page %d", page)
			break
		}
	}

	log.Printf("✅ Collected %d postings", len(postings))
	return postings, nil
}
