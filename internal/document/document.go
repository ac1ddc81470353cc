// Package document reads and writes whole config documents as generic
// mappings, in the encoding each target declares.
//
// A document is everything in a target file, not just the server mapping:
// loading and saving the full mapping is what preserves unrelated top-level
// keys and, for nested targets, unrelated sibling keys.
package document

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/opensync/opensync/internal/errors"
	"github.com/opensync/opensync/internal/target"
	"github.com/opensync/opensync/pkg/fileutil"
)

// Load reads the document at path in the given format.
//
// A missing or empty file loads as an empty document. Malformed content
// returns an error wrapping errors.ErrParse; discovery swallows that per
// target, writes surface it as a failed result.
func Load(path string, format target.Format) (map[string]any, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]any{}, nil
		}
		return nil, errors.Wrapf(err, "stat %s", path)
	}
	if info.Size() == 0 {
		return map[string]any{}, nil
	}

	data, err := fileutil.ReadFileWithLimit(path)
	if err != nil {
		return nil, err
	}

	doc := map[string]any{}
	switch format {
	case target.FormatYAML:
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, errors.Wrapf(errors.ErrParse, "parsing %s as YAML: %v", path, err)
		}
	case target.FormatTOML:
		if err := toml.Unmarshal(data, &doc); err != nil {
			return nil, errors.Wrapf(errors.ErrParse, "parsing %s as TOML: %v", path, err)
		}
	default:
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, errors.Wrapf(errors.ErrParse, "parsing %s as JSON: %v", path, err)
		}
	}

	if doc == nil {
		doc = map[string]any{}
	}
	return doc, nil
}

// Save writes the document to path in the given format, creating parent
// directories as needed. Writes are atomic (temp file + rename).
func Save(path string, format target.Format, doc map[string]any) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.Wrapf(err, "creating directory for %s", path)
	}

	switch format {
	case target.FormatYAML:
		return fileutil.AtomicWriteYAML(path, doc)
	case target.FormatTOML:
		return fileutil.AtomicWriteTOML(path, doc)
	default:
		return fileutil.AtomicWriteJSON(path, doc)
	}
}

// ServerMapping extracts the server mapping under rootKey from a document.
// A missing or wrong-typed root key yields an empty mapping.
func ServerMapping(doc map[string]any, rootKey string) map[string]any {
	if m, ok := doc[rootKey].(map[string]any); ok {
		return m
	}
	return map[string]any{}
}
