package session

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSessionStartsEmpty(t *testing.T) {
	store := NewStore()
	id := store.NewSession()

	assert.NotEmpty(t, id)
	assert.Empty(t, store.ChatHistory(id))
	assert.Empty(t, store.Bookmarks(id))
}

func TestChatTranscriptOrder(t *testing.T) {
	store := NewStore()
	id := store.NewSession()

	store.AppendChatTurn(id, SenderUser, "I know python")
	store.AppendChatTurn(id, SenderAssistant, "Here are some jobs")
	store.AppendChatTurn(id, SenderUser, "thanks")

	history := store.ChatHistory(id)
	require.Len(t, history, 3)
	assert.Equal(t, SenderUser, history[0].Sender)
	assert.Equal(t, "I know python", history[0].Message)
	assert.Equal(t, SenderAssistant, history[1].Sender)
	assert.Equal(t, "thanks", history[2].Message)
}

func TestBookmarkTwiceKeepsBoth(t *testing.T) {
	store := NewStore()
	id := store.NewSession()

	b := Bookmark{JobTitle: "Data Analyst", Industry: "Finance", Location: "Karachi", Rating: 4}
	require.NoError(t, store.AppendBookmark(id, b))
	require.NoError(t, store.AppendBookmark(id, b))

	assert.Len(t, store.Bookmarks(id), 2)
}

func TestBookmarkRatingValidation(t *testing.T) {
	store := NewStore()
	id := store.NewSession()

	assert.ErrorIs(t, store.AppendBookmark(id, Bookmark{JobTitle: "X", Rating: 0}), ErrInvalidRating)
	assert.ErrorIs(t, store.AppendBookmark(id, Bookmark{JobTitle: "X", Rating: 6}), ErrInvalidRating)
	assert.NoError(t, store.AppendBookmark(id, Bookmark{JobTitle: "X", Rating: 1}))
	assert.NoError(t, store.AppendBookmark(id, Bookmark{JobTitle: "X", Rating: 5}))
}

func TestSessionsAreIsolated(t *testing.T) {
	store := NewStore()
	a := store.NewSession()
	b := store.NewSession()

	store.AppendChatTurn(a, SenderUser, "only in a")
	require.NoError(t, store.AppendBookmark(b, Bookmark{JobTitle: "Only In B", Rating: 3}))

	assert.Len(t, store.ChatHistory(a), 1)
	assert.Empty(t, store.ChatHistory(b))
	assert.Empty(t, store.Bookmarks(a))
	assert.Len(t, store.Bookmarks(b), 1)
}

func TestUnknownSessionReadsEmpty(t *testing.T) {
	store := NewStore()
	assert.Empty(t, store.ChatHistory("never-seen"))
	assert.Empty(t, store.Bookmarks("never-seen"))
}

func TestReturnedSlicesAreCopies(t *testing.T) {
	store := NewStore()
	id := store.NewSession()
	store.AppendChatTurn(id, SenderUser, "original")

	history := store.ChatHistory(id)
	history[0].Message = "mutated"

	assert.Equal(t, "original", store.ChatHistory(id)[0].Message)
}

func TestConcurrentAppends(t *testing.T) {
	store := NewStore()
	id := store.NewSession()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			store.AppendChatTurn(id, SenderUser, fmt.Sprintf("msg %d", n))
		}(i)
	}
	wg.Wait()

	assert.Len(t, store.ChatHistory(id), 50)
}
