package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const sessionFileName = "session"

// sessionFilePath returns the token file location under the user's config dir
func sessionFilePath() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolving config dir: %w", err)
	}
	return filepath.Join(base, "prompter", sessionFileName), nil
}

// saveToken persists the access token so the next run can restore the session
func saveToken(token string) error {
	path, err := sessionFilePath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}
	return os.WriteFile(path, []byte(token), 0o600)
}

// loadToken reads a previously saved access token, if any
func loadToken() string {
	path, err := sessionFilePath()
	if err != nil {
		return ""
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}

// clearToken removes the saved token on sign-out
func clearToken() {
	if path, err := sessionFilePath(); err == nil {
		_ = os.Remove(path)
	}
}
