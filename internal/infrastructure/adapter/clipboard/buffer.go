package clipboard

import "sync"

// Buffer is an in-process clipboard sink. The HTTP surface uses it so the
// copied prompt text travels back in the response body instead of touching
// the server's clipboard.
type Buffer struct {
	mu   sync.Mutex
	last string
	set  bool
}

// NewBuffer creates an empty buffer sink
func NewBuffer() *Buffer {
	return &Buffer{}
}

// Write stores the text as the buffer's current content
func (b *Buffer) Write(text string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.last = text
	b.set = true
	return nil
}

// Take returns the current content and clears the buffer
func (b *Buffer) Take() (string, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	text, ok := b.last, b.set
	b.last, b.set = "", false
	return text, ok
}
