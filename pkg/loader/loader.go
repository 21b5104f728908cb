// Package loader reads document files into types.Document values. Plain
// text and markdown are read directly, PDF pages through the pdf reader,
// and DOCX through its WordprocessingML part. Unsupported extensions are
// reported so the ingest worker can leave them alone.
package loader

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Sanathkumarkunjithaya/CogniGraph/pkg/types"
)

// ErrUnsupportedFormat is returned for file extensions no loader handles.
var ErrUnsupportedFormat = errors.New("unsupported document format")

// ErrEmptyDocument is returned when a file yields no extractable text.
var ErrEmptyDocument = errors.New("document contains no extractable text")

// Supported reports whether a loader exists for the file's extension.
func Supported(path string) bool {
	switch normalizedExt(path) {
	case ".txt", ".md", ".pdf", ".docx":
		return true
	}
	return false
}

// Load reads one document file. The returned document carries the file's
// base name as its source identifier; content is never post-processed
// beyond text extraction.
func Load(path string) (*types.Document, error) {
	ext := normalizedExt(path)

	var (
		content string
		err     error
	)
	switch ext {
	case ".txt", ".md":
		content, err = loadText(path)
	case ".pdf":
		content, err = loadPDF(path)
	case ".docx":
		content, err = loadDOCX(path)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, ext)
	}
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", filepath.Base(path), err)
	}

	if strings.TrimSpace(content) == "" {
		return nil, fmt.Errorf("%s: %w", filepath.Base(path), ErrEmptyDocument)
	}

	return &types.Document{
		ID:      uuid.NewString(),
		Content: content,
		Source:  filepath.Base(path),
		Metadata: map[string]string{
			"path":   path,
			"format": strings.TrimPrefix(ext, "."),
		},
		LoadedAt: time.Now().UTC(),
	}, nil
}

func loadText(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func normalizedExt(path string) string {
	return strings.ToLower(filepath.Ext(path))
}
