package clipboard

import (
	"fmt"
	"os/exec"
	"runtime"
	"strings"

	"github.com/atotto/clipboard"

	errs "github.com/prompter-labs/prompter/internal/domain/error"
	coreport "github.com/prompter-labs/prompter/internal/domain/port/core"
)

// System writes to the OS clipboard. Headless environments without a
// clipboard backend surface ErrClipboardUnavailable so callers can tell
// the user to copy manually.
type System struct {
	logger coreport.Logger
}

// NewSystem creates a new system clipboard adapter
func NewSystem(logger coreport.Logger) *System {
	return &System{logger: logger}
}

// Write places text on the system clipboard
func (s *System) Write(text string) error {
	if err := clipboard.WriteAll(text); err == nil {
		return nil
	}
	if err := s.writeViaCommand(text); err != nil {
		s.logger.Warn("Clipboard write failed", map[string]any{
			"error": err.Error(),
		})
		return fmt.Errorf("%w: %s", errs.ErrClipboardUnavailable, err.Error())
	}
	return nil
}

// writeViaCommand shells out to the platform clipboard utility when the
// library backend is unavailable
func (s *System) writeViaCommand(text string) error {
	var candidates [][]string
	switch runtime.GOOS {
	case "darwin":
		candidates = [][]string{{"pbcopy"}}
	case "linux":
		candidates = [][]string{
			{"wl-copy"},
			{"xclip", "-selection", "clipboard"},
			{"xsel", "--clipboard", "--input"},
		}
	default:
		return fmt.Errorf("no clipboard utility for %s", runtime.GOOS)
	}

	var lastErr error
	for _, candidate := range candidates {
		if _, err := exec.LookPath(candidate[0]); err != nil {
			lastErr = err
			continue
		}
		cmd := exec.Command(candidate[0], candidate[1:]...)
		cmd.Stdin = strings.NewReader(text)
		if err := cmd.Run(); err != nil {
			lastErr = err
			continue
		}
		return nil
	}
	if lastErr == nil {
		lastErr = fmt.Errorf("no clipboard utility found")
	}
	return lastErr
}
