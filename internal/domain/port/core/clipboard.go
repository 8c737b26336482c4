package core

// Clipboard receives the protected side effect of a confirmed spend: the
// unlocked prompt text. The system adapter writes the OS clipboard with a
// fallback copier chain; the API surface binds a per-request buffer instead.
type Clipboard interface {
	// Write places text on the clipboard. An error means the primary write
	// and every fallback failed.
	Write(text string) error
}
