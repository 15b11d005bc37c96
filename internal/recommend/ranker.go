// Package recommend ranks filtered jobs by semantic similarity between the
// user's text and each job's skill list.
package recommend

import (
	"context"
	"fmt"
	"log"
	"math"
	"sort"
	"time"

	"job-recommender/internal/catalog"
	"job-recommender/internal/embedding"
)

// DefaultTopK matches the original recommendation panel and chatbot size.
const DefaultTopK = 3

// Recommendation pairs a job with its similarity score against the user
// text. Recomputed on every query, never cached.
type Recommendation struct {
	Job           catalog.Job `json:"job"`
	Score         float64     `json:"score"`
	Rank          int         `json:"rank"`
	MatchedSkills []string    `json:"matched_skills"`
}

// Ranker scores jobs with an injected embedding provider.
type Ranker struct {
	provider embedding.Provider
}

func NewRanker(provider embedding.Provider) *Ranker {
	return &Ranker{provider: provider}
}

// Rank encodes the user text once and all job skill lists in one batch,
// scores each job by cosine similarity, and returns the top K in descending
// score order. Ties keep catalog order (stable sort), so identical inputs
// always produce identical output. Returns min(topK, len(jobs)) entries.
func (r *Ranker) Rank(ctx context.Context, userText string, jobs []catalog.Job, topK int) ([]Recommendation, error) {
	if userText == "" {
		return nil, embedding.ErrEmptyInput
	}
	if len(jobs) == 0 {
		return nil, catalog.ErrNoMatch
	}
	if topK <= 0 {
		topK = DefaultTopK
	}

	start := time.Now()

	userVector, err := r.provider.EmbedQuery(ctx, userText)
	if err != nil {
		return nil, fmt.Errorf("embed user text: %w", err)
	}

	skillTexts := make([]string, len(jobs))
	for i, j := range jobs {
		skillTexts[i] = j.Skills
	}
	jobVectors, err := r.provider.EmbedDocuments(ctx, skillTexts)
	if err != nil {
		return nil, fmt.Errorf("embed job skills: %w", err)
	}
	if len(jobVectors) != len(jobs) {
		return nil, fmt.Errorf("embed job skills: got %d vectors for %d jobs", len(jobVectors), len(jobs))
	}

	recs := make([]Recommendation, len(jobs))
	for i, j := range jobs {
		recs[i] = Recommendation{
			Job:           j,
			Score:         CosineSimilarity(userVector, jobVectors[i]),
			MatchedSkills: MatchedSkills(j.Skills, userText),
		}
	}

	sort.SliceStable(recs, func(a, b int) bool {
		return recs[a].Score > recs[b].Score
	})

	if topK > len(recs) {
		topK = len(recs)
	}
	recs = recs[:topK]
	for i := range recs {
		recs[i].Rank = i + 1
	}

	log.Printf("[Ranker] Scored %d jobs in %v", len(jobs), time.Since(start))
	return recs, nil
}

// CosineSimilarity returns the cosine of the angle between two vectors, in
// [-1, 1]. A zero-norm vector scores 0 rather than dividing by zero.
func CosineSimilarity(a, b []float32) float64 {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	var dot, normA, normB float64
	for i := 0; i < n; i++ {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
