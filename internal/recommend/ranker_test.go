package recommend

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"job-recommender/internal/catalog"
	"job-recommender/internal/embedding"
)

// fakeProvider embeds text as lowercase letter frequencies. Deterministic,
// identical texts encode identically, and no external model is needed.
type fakeProvider struct {
	queryCalls int
	batchCalls int
}

func (f *fakeProvider) EmbedQuery(_ context.Context, text string) ([]float32, error) {
	if text == "" {
		return nil, embedding.ErrEmptyInput
	}
	f.queryCalls++
	return letterVector(text), nil
}

func (f *fakeProvider) EmbedDocuments(_ context.Context, texts []string) ([][]float32, error) {
	if len(texts) == 0 {
		return nil, embedding.ErrEmptyInput
	}
	f.batchCalls++
	vectors := make([][]float32, len(texts))
	for i, t := range texts {
		vectors[i] = letterVector(t)
	}
	return vectors, nil
}

func (f *fakeProvider) Dimension() int { return 26 }
func (f *fakeProvider) Close() error   { return nil }

func letterVector(text string) []float32 {
	v := make([]float32, 26)
	for _, r := range strings.ToLower(text) {
		if r >= 'a' && r <= 'z' {
			v[r-'a']++
		}
	}
	return v
}

func rankerJobs() []catalog.Job {
	return []catalog.Job{
		{Title: "Data Analyst", Industry: "Finance", Skills: "Python, SQL, Excel"},
		{Title: "Backend Engineer", Industry: "Tech", Skills: "Go, PostgreSQL, Docker"},
		{Title: "ML Engineer", Industry: "Tech", Skills: "Python, TensorFlow, ML"},
		{Title: "Designer", Industry: "Media", Skills: "Figma, Illustrator"},
	}
}

func TestRankReturnsTopK(t *testing.T) {
	ranker := NewRanker(&fakeProvider{})
	recs, err := ranker.Rank(context.Background(), "Python, SQL, Excel", rankerJobs(), 3)
	require.NoError(t, err)
	require.Len(t, recs, 3)

	for i, rec := range recs {
		assert.Equal(t, i+1, rec.Rank)
		assert.GreaterOrEqual(t, rec.Score, -1.0)
		assert.LessOrEqual(t, rec.Score, 1.0)
	}
	// Descending order
	for i := 1; i < len(recs); i++ {
		assert.GreaterOrEqual(t, recs[i-1].Score, recs[i].Score)
	}
}

func TestRankSelfSimilarityWinsAndMaxes(t *testing.T) {
	ranker := NewRanker(&fakeProvider{})
	recs, err := ranker.Rank(context.Background(), "Python, SQL, Excel", rankerJobs(), 4)
	require.NoError(t, err)

	assert.Equal(t, "Data Analyst", recs[0].Job.Title)
	assert.InDelta(t, 1.0, recs[0].Score, 1e-6)
}

func TestRankIsDeterministic(t *testing.T) {
	ranker := NewRanker(&fakeProvider{})
	first, err := ranker.Rank(context.Background(), "go and docker", rankerJobs(), 4)
	require.NoError(t, err)
	second, err := ranker.Rank(context.Background(), "go and docker", rankerJobs(), 4)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestRankTieKeepsCatalogOrder(t *testing.T) {
	jobs := []catalog.Job{
		{Title: "First Twin", Skills: "Python, SQL"},
		{Title: "Second Twin", Skills: "Python, SQL"},
	}
	ranker := NewRanker(&fakeProvider{})
	recs, err := ranker.Rank(context.Background(), "python and sql", jobs, 2)
	require.NoError(t, err)
	require.Len(t, recs, 2)

	assert.Equal(t, recs[0].Score, recs[1].Score)
	assert.Equal(t, "First Twin", recs[0].Job.Title)
	assert.Equal(t, "Second Twin", recs[1].Job.Title)
}

func TestRankTopKClampedToSubsetSize(t *testing.T) {
	ranker := NewRanker(&fakeProvider{})
	recs, err := ranker.Rank(context.Background(), "python", rankerJobs()[:2], 10)
	require.NoError(t, err)
	assert.Len(t, recs, 2)
}

func TestRankBatchesJobEmbeddings(t *testing.T) {
	provider := &fakeProvider{}
	ranker := NewRanker(provider)
	_, err := ranker.Rank(context.Background(), "python", rankerJobs(), 3)
	require.NoError(t, err)

	assert.Equal(t, 1, provider.queryCalls)
	assert.Equal(t, 1, provider.batchCalls)
}

func TestRankEmptyUserText(t *testing.T) {
	ranker := NewRanker(&fakeProvider{})
	_, err := ranker.Rank(context.Background(), "", rankerJobs(), 3)
	assert.ErrorIs(t, err, embedding.ErrEmptyInput)
}

func TestRankEmptySubset(t *testing.T) {
	ranker := NewRanker(&fakeProvider{})
	_, err := ranker.Rank(context.Background(), "python", nil, 3)
	assert.ErrorIs(t, err, catalog.ErrNoMatch)
}

func TestCosineSimilarity(t *testing.T) {
	assert.InDelta(t, 1.0, CosineSimilarity([]float32{1, 2, 3}, []float32{2, 4, 6}), 1e-9)
	assert.InDelta(t, -1.0, CosineSimilarity([]float32{1, 0}, []float32{-1, 0}), 1e-9)
	assert.InDelta(t, 0.0, CosineSimilarity([]float32{1, 0}, []float32{0, 1}), 1e-9)
}

func TestCosineSimilarityZeroNormGuard(t *testing.T) {
	assert.Equal(t, 0.0, CosineSimilarity([]float32{0, 0, 0}, []float32{1, 2, 3}))
	assert.Equal(t, 0.0, CosineSimilarity([]float32{1, 2, 3}, []float32{0, 0, 0}))
	assert.Equal(t, 0.0, CosineSimilarity(nil, nil))
}
