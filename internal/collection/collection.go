// Package collection persists the last request to a collection file.
//
// The file holds a version and a list of requests; only the first request is
// used. JSON is the default format. Files ending in .jsonc may carry comments
// and trailing commas, and .yaml/.yml files are read and written as YAML.
package collection

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/studiowebux/porter/internal/config"
	"github.com/studiowebux/porter/internal/types"
	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"
)

// FormatVersion is written to every collection file
const FormatVersion = "1.0"

// ErrCorrupt is returned when a collection file exists but cannot be decoded
var ErrCorrupt = errors.New("corrupt collection file")

// Format is the on-disk encoding of a collection file
type Format int

const (
	FormatJSON Format = iota
	FormatJSONC
	FormatYAML
)

// FormatFor picks the encoding from the file extension
func FormatFor(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".jsonc":
		return FormatJSONC
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

type collectionFile struct {
	Version  string          `json:"version" yaml:"version"`
	Requests []storedRequest `json:"requests" yaml:"requests"`
}

type storedRequest struct {
	Name    string        `json:"name" yaml:"name"`
	Method  string        `json:"method" yaml:"method"`
	URL     string        `json:"url" yaml:"url"`
	Headers types.Headers `json:"headers" yaml:"headers"`
	Body    string        `json:"body" yaml:"body"`
}

// Store reads and writes one collection file
type Store struct {
	path   string
	format Format
}

// NewStore creates a store bound to path
func NewStore(path string) *Store {
	return &Store{
		path:   path,
		format: FormatFor(path),
	}
}

// Path returns the collection file location
func (s *Store) Path() string {
	return s.path
}

// LoadLastRequest returns the saved request, or nil when the file does not
// exist or holds no requests. A file that cannot be decoded yields ErrCorrupt.
func (s *Store) LoadLastRequest() (*types.RequestSpec, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read collection: %w", err)
	}

	file, err := s.decode(data)
	if err != nil {
		return nil, fmt.Errorf("%w %s: %v", ErrCorrupt, s.path, err)
	}
	if len(file.Requests) == 0 {
		return nil, nil
	}

	stored := file.Requests[0]
	method := stored.Method
	if strings.TrimSpace(method) == "" {
		method = string(types.MethodGet)
	}
	spec, err := types.NewRequestSpec(stored.Name, method, stored.URL, stored.Headers, stored.Body)
	if err != nil {
		return nil, fmt.Errorf("%w %s: %v", ErrCorrupt, s.path, err)
	}
	return &spec, nil
}

// SaveRequest replaces the collection contents with spec
func (s *Store) SaveRequest(spec types.RequestSpec) error {
	if err := os.MkdirAll(filepath.Dir(s.path), config.DirPermissions); err != nil {
		return fmt.Errorf("failed to create collection directory: %w", err)
	}

	name := spec.Name
	if strings.TrimSpace(name) == "" {
		name = types.DefaultRequestName
	}
	file := collectionFile{
		Version: FormatVersion,
		Requests: []storedRequest{{
			Name:    name,
			Method:  string(spec.Method),
			URL:     spec.URL,
			Headers: spec.Headers,
			Body:    spec.Body,
		}},
	}

	data, err := s.encode(file)
	if err != nil {
		return fmt.Errorf("failed to encode collection: %w", err)
	}

	// Write beside the target and rename into place
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, config.FilePermissions); err != nil {
		return fmt.Errorf("failed to write collection: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("failed to write collection: %w", err)
	}
	return nil
}

func (s *Store) decode(data []byte) (collectionFile, error) {
	var file collectionFile
	switch s.format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &file); err != nil {
			return file, err
		}
	case FormatJSONC:
		if err := json.Unmarshal(jsonc.ToJSON(data), &file); err != nil {
			return file, err
		}
	default:
		if err := json.Unmarshal(data, &file); err != nil {
			return file, err
		}
	}
	return file, nil
}

func (s *Store) encode(file collectionFile) ([]byte, error) {
	if s.format == FormatYAML {
		return yaml.Marshal(file)
	}
	data, err := json.MarshalIndent(file, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}
