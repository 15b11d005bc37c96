// Package assistant implements the chat-style recommendation assistant.
package assistant

import (
	"context"
	"fmt"
	"log"
	"strings"

	"job-recommender/internal/catalog"
	"job-recommender/internal/recommend"
)

// Assistant answers chat messages with job recommendations. Chat messages
// rank against the full catalog, not the faceted subset the panel uses.
type Assistant struct {
	catalog *catalog.Catalog
	ranker  *recommend.Ranker
	llm     *LLMService // optional; nil means template replies
	topK    int
}

func New(cat *catalog.Catalog, ranker *recommend.Ranker, llm *LLMService, topK int) *Assistant {
	if topK <= 0 {
		topK = recommend.DefaultTopK
	}
	return &Assistant{catalog: cat, ranker: ranker, llm: llm, topK: topK}
}

// Respond ranks the message against the whole catalog and formats a reply.
// When an LLM is configured it phrases the reply; any LLM failure falls
// back to the plain template so chat never breaks on a flaky provider.
func (a *Assistant) Respond(ctx context.Context, message string) (string, []recommend.Recommendation, error) {
	recs, err := a.ranker.Rank(ctx, message, a.catalog.Jobs, a.topK)
	if err != nil {
		return "", nil, err
	}

	reply := templateReply(recs)
	if a.llm != nil {
		phrased, err := a.llm.Generate(ctx, phrasingPrompt(message, recs))
		if err != nil {
			log.Printf("[Assistant] LLM phrasing failed, using template reply: %v", err)
		} else if strings.TrimSpace(phrased) != "" {
			reply = phrased
		}
	}
	return reply, recs, nil
}

func templateReply(recs []recommend.Recommendation) string {
	var b strings.Builder
	b.WriteString("Here are some jobs you might like:\n\n")
	for _, rec := range recs {
		fmt.Fprintf(&b, "- %s (%s)\n  Required skills: %s\n", rec.Job.Title, rec.Job.Industry, rec.Job.Skills)
	}
	return b.String()
}

func phrasingPrompt(message string, recs []recommend.Recommendation) string {
	var b strings.Builder
	b.WriteString("You are a friendly job recommendation assistant. The user said:\n\n")
	b.WriteString(message)
	b.WriteString("\n\nThese jobs matched their skills best:\n")
	for _, rec := range recs {
		fmt.Fprintf(&b, "- %s | industry: %s | location: %s | skills: %s | match score: %.2f\n",
			rec.Job.Title, rec.Job.Industry, rec.Job.Location, rec.Job.Skills, rec.Score)
	}
	b.WriteString("\nWrite a short reply (3-5 sentences) presenting these jobs. Mention each job title. Do not invent jobs.")
	return b.String()
}
