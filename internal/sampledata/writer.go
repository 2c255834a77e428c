package sampledata

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// Write stores events as {dir}/{matchID}.json and returns the path.
func Write(dir string, matchID int, events []RawEvent) (string, error) {
	if len(events) == 0 {
		return "", ErrNoEvents
	}
	if err := os.MkdirAll(dir, directoryPermission); err != nil {
		return "", fmt.Errorf("failed to create directory: %w", err)
	}
	data, err := json.MarshalIndent(events, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal events: %w", err)
	}
	path := filepath.Join(dir, strconv.Itoa(matchID)+".json")
	if err := os.WriteFile(path, data, filePermission); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", path, err)
	}
	return path, nil
}
