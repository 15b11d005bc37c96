package embedding

import (
	"context"
	"log"
	"sync"
	"time"
)

// LazyProvider defers expensive provider construction (model download, ONNX
// session) to the first embed call. sync.Once guarantees concurrent first
// requests initialize the underlying provider exactly once; later calls
// reuse it for the life of the process.
type LazyProvider struct {
	construct func() (Provider, error)
	once      sync.Once
	provider  Provider
	err       error
}

// NewLazy wraps a provider constructor.
func NewLazy(construct func() (Provider, error)) *LazyProvider {
	return &LazyProvider{construct: construct}
}

func (l *LazyProvider) init() (Provider, error) {
	l.once.Do(func() {
		start := time.Now()
		l.provider, l.err = l.construct()
		if l.err != nil {
			log.Printf("[Embedding] Provider initialization failed: %v", l.err)
			return
		}
		log.Printf("[Embedding] Provider ready in %v (dimension %d)", time.Since(start), l.provider.Dimension())
	})
	return l.provider, l.err
}

func (l *LazyProvider) EmbedQuery(ctx context.Context, text string) ([]float32, error) {
	p, err := l.init()
	if err != nil {
		return nil, err
	}
	return p.EmbedQuery(ctx, text)
}

func (l *LazyProvider) EmbedDocuments(ctx context.Context, texts []string) ([][]float32, error) {
	p, err := l.init()
	if err != nil {
		return nil, err
	}
	return p.EmbedDocuments(ctx, texts)
}

// Dimension returns 0 until the provider has been initialized.
func (l *LazyProvider) Dimension() int {
	if l.provider == nil {
		return 0
	}
	return l.provider.Dimension()
}

func (l *LazyProvider) Close() error {
	if l.provider == nil {
		return nil
	}
	return l.provider.Close()
}
