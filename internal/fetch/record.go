package fetch

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jonathan/cv-online/internal/types"
)

// ParseError represents a content record body that is not valid JSON
type ParseError struct {
	Source string
	Cause  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse content record from %s: %v", e.Source, e.Cause)
}

func (e *ParseError) Unwrap() error {
	return e.Cause
}

// Source provides the content record for a language
type Source interface {
	Fetch(ctx context.Context, lang types.Language) (*types.LocalizedContentRecord, error)
}

// ParseRecord decodes a content record. Only JSON syntax is checked; unknown fields are ignored.
func ParseRecord(source string, data []byte) (*types.LocalizedContentRecord, error) {
	var record types.LocalizedContentRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, &ParseError{Source: source, Cause: err}
	}
	return &record, nil
}

// HTTPSource fetches records from <BaseURL>/data_<lang>.json
type HTTPSource struct {
	BaseURL string
	Options *Options
}

// NewHTTPSource creates an HTTPSource rooted at baseURL.
func NewHTTPSource(baseURL string, opts *Options) *HTTPSource {
	return &HTTPSource{
		BaseURL: strings.TrimRight(baseURL, "/"),
		Options: opts,
	}
}

// Fetch retrieves and decodes the record for lang.
func (s *HTTPSource) Fetch(ctx context.Context, lang types.Language) (*types.LocalizedContentRecord, error) {
	recordURL := s.BaseURL + lang.DataPath()
	result, err := URL(ctx, recordURL, s.Options)
	if err != nil {
		return nil, err
	}
	return ParseRecord(recordURL, result.Body)
}

// DirSource reads records from data_<lang>.json files in Dir
type DirSource struct {
	Dir string
}

// NewDirSource creates a DirSource for dir.
func NewDirSource(dir string) *DirSource {
	return &DirSource{Dir: dir}
}

// Path returns the file holding the record for lang.
func (s *DirSource) Path(lang types.Language) string {
	return filepath.Join(s.Dir, strings.TrimPrefix(lang.DataPath(), "/"))
}

// Fetch reads and decodes the record for lang.
func (s *DirSource) Fetch(ctx context.Context, lang types.Language) (*types.LocalizedContentRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	path := s.Path(lang)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &Error{
			URL:     path,
			Message: "failed to read content record",
			Cause:   err,
		}
	}
	return ParseRecord(path, data)
}

// FileSource always reads one record file, whatever the language
type FileSource struct {
	Path string
}

// Fetch reads and decodes the record file.
func (s *FileSource) Fetch(ctx context.Context, _ types.Language) (*types.LocalizedContentRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, &Error{
			URL:     s.Path,
			Message: "failed to read content record",
			Cause:   err,
		}
	}
	return ParseRecord(s.Path, data)
}

// NewSource picks an HTTPSource when location is a URL and a DirSource otherwise.
func NewSource(location string, opts *Options) Source {
	if isURL(location) {
		return NewHTTPSource(location, opts)
	}
	return NewDirSource(location)
}
