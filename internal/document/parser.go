package document

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	json5 "github.com/yosuke-furukawa/json5/encoding/json5"
	"gopkg.in/yaml.v3"
)

// ErrNotFound is returned when the configuration file does not exist.
var ErrNotFound = errors.New("configuration file not found")

// ErrParse matches any *ParseError via errors.Is.
var ErrParse = errors.New("failed to parse configuration")

// ParseError reports a document that could not be decoded.
type ParseError struct {
	Format Format
	Err    error
}

func (e *ParseError) Error() string {
	if e.Format == "" {
		return fmt.Sprintf("%s: %v", ErrParse, e.Err)
	}
	return fmt.Sprintf("%s as %s: %v", ErrParse, e.Format, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

func (e *ParseError) Is(target error) bool { return target == ErrParse }

// FormatFromPath picks the decoder from the file extension. Anything that is
// not YAML is read as JSON5, which also accepts plain JSON.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// Parse decodes content into a Document. The root must be a mapping; an empty
// or null document parses to an empty Document.
func Parse(content []byte, format Format) (Document, error) {
	var raw map[string]any
	switch format {
	case FormatYAML:
		decoder := yaml.NewDecoder(bytes.NewReader(content))
		if err := decoder.Decode(&raw); err != nil && err != io.EOF {
			return nil, &ParseError{Format: format, Err: err}
		}
		if err := decoder.Decode(&struct{}{}); err != io.EOF {
			return nil, &ParseError{Format: format, Err: errors.New("expected a single YAML document")}
		}
	default:
		if len(bytes.TrimSpace(content)) == 0 {
			return Document{}, nil
		}
		if err := json5.Unmarshal(content, &raw); err != nil {
			return nil, &ParseError{Format: FormatJSON, Err: err}
		}
	}
	if raw == nil {
		return Document{}, nil
	}
	return Document(normalize(raw).(map[string]any)), nil
}

// Load reads and parses the document at path.
func Load(path string) (Document, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(ErrNotFound, path)
		}
		return nil, errors.Wrapf(err, "failed to read %s", path)
	}
	return Parse(content, FormatFromPath(path))
}

// normalize rewrites YAML mappings with non-string keys into
// map[string]any so lookups see one mapping type.
func normalize(v any) any {
	switch typed := v.(type) {
	case map[string]any:
		for k, child := range typed {
			typed[k] = normalize(child)
		}
		return typed
	case map[any]any:
		out := make(map[string]any, len(typed))
		for k, child := range typed {
			out[fmt.Sprint(k)] = normalize(child)
		}
		return out
	case []any:
		for i, child := range typed {
			typed[i] = normalize(child)
		}
		return typed
	default:
		return v
	}
}
