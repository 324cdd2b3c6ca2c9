package manifest

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"
)

// Format is the encoding of a manifest file
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// StdinPath selects standard input as the manifest source
const StdinPath = "-"

// ErrUnsupportedFormat is returned for manifest files with an unknown extension
var ErrUnsupportedFormat = errors.New("unsupported manifest format")

//go:embed demo.manifest.json
var demoManifest []byte

// Demo returns the built-in demo manifest
func Demo() *Manifest {
	m, err := Parse(demoManifest, FormatJSON)
	if err != nil {
		// The embedded file is part of the build; a parse failure is a bug.
		panic(fmt.Sprintf("demo manifest: %v", err))
	}
	return m
}

// DemoSource returns the raw bytes of the built-in demo manifest
func DemoSource() []byte {
	out := make([]byte, len(demoManifest))
	copy(out, demoManifest)
	return out
}

// FormatFromPath picks the format from the file extension. JSON files may
// carry comments and trailing commas.
func FormatFromPath(path string) (Format, error) {
	if path == StdinPath {
		return FormatJSON, nil
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".jsonc":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// Load reads and parses a manifest from path, or from stdin when path is "-"
func Load(path string) (*Manifest, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	var data []byte
	if path == StdinPath {
		data, err = io.ReadAll(os.Stdin)
	} else {
		// #nosec G304 - manifest path is chosen by the user on the command line
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest %s: %w", path, err)
	}

	m, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

// Parse decodes manifest bytes. Only syntax errors are reported; fragments
// with the wrong shape decode to empty defaults.
func Parse(data []byte, format Format) (*Manifest, error) {
	switch format {
	case FormatJSON:
		return parseJSON(jsonc.ToJSON(data))
	case FormatYAML:
		var doc any
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("failed to parse YAML: %w", err)
		}
		converted, err := json.Marshal(normalizeYAML(doc))
		if err != nil {
			return nil, fmt.Errorf("failed to convert YAML: %w", err)
		}
		return parseJSON(converted)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}
}

func parseJSON(data []byte) (*Manifest, error) {
	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse JSON: %w", err)
	}
	return &m, nil
}

// normalizeYAML turns mappings with non-string keys into string-keyed maps
// so the document can be re-encoded as JSON.
func normalizeYAML(v any) any {
	switch val := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, item := range val {
			out[k] = normalizeYAML(item)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(val))
		for k, item := range val {
			out[fmt.Sprint(k)] = normalizeYAML(item)
		}
		return out
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = normalizeYAML(item)
		}
		return out
	default:
		return val
	}
}
