package embedding

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticProvider struct {
	vector []float32
}

func (s *staticProvider) EmbedQuery(_ context.Context, text string) ([]float32, error) {
	if text == "" {
		return nil, ErrEmptyInput
	}
	return s.vector, nil
}

func (s *staticProvider) EmbedDocuments(_ context.Context, texts []string) ([][]float32, error) {
	if len(texts) == 0 {
		return nil, ErrEmptyInput
	}
	out := make([][]float32, len(texts))
	for i := range texts {
		out[i] = s.vector
	}
	return out, nil
}

func (s *staticProvider) Dimension() int { return len(s.vector) }
func (s *staticProvider) Close() error   { return nil }

func TestLazyInitializesOnceUnderConcurrency(t *testing.T) {
	var constructions int32
	lazy := NewLazy(func() (Provider, error) {
		atomic.AddInt32(&constructions, 1)
		return &staticProvider{vector: []float32{1, 2, 3}}, nil
	})

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := lazy.EmbedQuery(context.Background(), "hello")
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), atomic.LoadInt32(&constructions))
	assert.Equal(t, 3, lazy.Dimension())
}

func TestLazyConstructionFailureIsSticky(t *testing.T) {
	boom := errors.New("model download failed")
	var constructions int32
	lazy := NewLazy(func() (Provider, error) {
		atomic.AddInt32(&constructions, 1)
		return nil, boom
	})

	_, err := lazy.EmbedQuery(context.Background(), "hello")
	assert.ErrorIs(t, err, boom)
	_, err = lazy.EmbedDocuments(context.Background(), []string{"hello"})
	assert.ErrorIs(t, err, boom)

	// The constructor is not retried.
	assert.Equal(t, int32(1), atomic.LoadInt32(&constructions))
}

func TestLazyDimensionBeforeInit(t *testing.T) {
	lazy := NewLazy(func() (Provider, error) {
		return &staticProvider{vector: []float32{1}}, nil
	})
	assert.Equal(t, 0, lazy.Dimension())
	assert.NoError(t, lazy.Close())
}

func TestNewProviderUnknown(t *testing.T) {
	_, err := NewProvider(Config{Provider: "word2vec"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestNewProviderOpenAIRequiresKey(t *testing.T) {
	_, err := NewProvider(Config{Provider: "openai"})
	assert.ErrorIs(t, err, ErrInvalidConfig)
}
