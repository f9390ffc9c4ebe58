package llm

import (
	"fmt"
	"sync"

	"github.com/pkoukk/tiktoken-go"
	tiktoken_loader "github.com/pkoukk/tiktoken-go-loader"
)

func init() {
	// Offline BPE files; no network fetch on first use.
	tiktoken.SetBpeLoader(tiktoken_loader.NewOfflineLoader())
}

// TokenCounter counts and truncates text by model tokens. It is used to keep
// prompt context inside the generation model's window before Invoke calls.
type TokenCounter struct {
	encoding *tiktoken.Tiktoken
	mu       sync.RWMutex
}

// NewTokenCounter creates a counter for the cl100k_base encoding.
func NewTokenCounter() (*TokenCounter, error) {
	enc, err := tiktoken.GetEncoding("cl100k_base")
	if err != nil {
		return nil, fmt.Errorf("failed to load token encoding: %w", err)
	}
	return &TokenCounter{encoding: enc}, nil
}

// Count returns the number of tokens in text.
func (t *TokenCounter) Count(text string) int {
	if text == "" {
		return 0
	}
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.encoding.Encode(text, nil, nil))
}

// Truncate cuts text to at most max tokens. Text at or under the budget is
// returned unchanged.
func (t *TokenCounter) Truncate(text string, max int) string {
	if text == "" || max <= 0 {
		return ""
	}
	t.mu.RLock()
	defer t.mu.RUnlock()

	tokens := t.encoding.Encode(text, nil, nil)
	if len(tokens) <= max {
		return text
	}
	return t.encoding.Decode(tokens[:max])
}
