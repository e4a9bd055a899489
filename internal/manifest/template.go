package manifest

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// defaultTemplate is the starter manifest. It is only ever handed out
// through DefaultTemplate, which deep-copies it.
var defaultTemplate = Document{
	FieldName:        "Sample YouTube Plugin",
	FieldDescription: "Describe what your plugin does for YouTube creators or viewers.",
	FieldVersion:     "0.1.0",
	FieldAuthor:      "Your Company",
	FieldEntryPoint:  "plugin:handler",
	FieldPermissions: []any{
		"youtube.readonly",
		"youtube.upload",
	},
	FieldQualityProfile: map[string]any{
		fieldAudio: string(AudioLossless),
		fieldVideo: string(Video8K),
	},
}

// DefaultTemplate returns a fresh copy of the starter manifest document.
// Callers may modify the result freely.
func DefaultTemplate() Document {
	return deepCopy(defaultTemplate).(Document)
}

// WriteTemplate writes the starter manifest to path as indented JSON with
// sorted keys and a trailing newline, creating parent directories and
// replacing any existing file. It returns the path written.
func WriteTemplate(path string) (string, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", fmt.Errorf("creating directory for %s: %w", path, err)
	}

	data, err := marshalDocument(DefaultTemplate())
	if err != nil {
		return "", err
	}

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	if _, err := f.Write(data); err != nil {
		return "", fmt.Errorf("writing %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("closing %s: %w", path, err)
	}
	return path, nil
}

// marshalDocument renders doc as two-space indented JSON followed by a
// newline. encoding/json sorts map keys, which keeps the output stable.
func marshalDocument(doc Document) ([]byte, error) {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling manifest: %w", err)
	}
	return append(data, '\n'), nil
}

func deepCopy(v any) any {
	switch val := v.(type) {
	case map[string]any:
		m := make(map[string]any, len(val))
		for k, elem := range val {
			m[k] = deepCopy(elem)
		}
		return m
	case []any:
		a := make([]any, len(val))
		for i, elem := range val {
			a[i] = deepCopy(elem)
		}
		return a
	default:
		return val
	}
}
