package provider

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"github.com/okian/matchlens/internal/domain/model"
)

// FileProvider reads match documents named {matchID}.json from a directory,
// e.g. a checkout of statsbomb/open-data/data/events.
type FileProvider struct {
	dir string
}

// NewFileProvider creates a provider rooted at dir.
func NewFileProvider(dir string) *FileProvider {
	return &FileProvider{dir: dir}
}

// Path returns the document path for matchID.
func (p *FileProvider) Path(matchID int) string {
	return filepath.Join(p.dir, strconv.Itoa(matchID)+".json")
}

// FetchEvents implements Provider.
func (p *FileProvider) FetchEvents(ctx context.Context, matchID int) ([]model.Event, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(p.Path(matchID))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("match %d: %w", matchID, ErrMatchNotFound)
		}
		return nil, fmt.Errorf("%w: read match %d: %w", ErrUnavailable, matchID, err)
	}
	events, err := DecodeEvents(data)
	if err != nil {
		return nil, fmt.Errorf("match %d: %w", matchID, err)
	}
	return events, nil
}
