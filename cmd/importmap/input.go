package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// readDocument loads an import-map document from path ("-" means
// stdin) and decodes it into the untyped form the validator operates
// on. The raw bytes are returned alongside so JSON issues can carry
// source positions.
func readDocument(path string) (any, []byte, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, nil, fmt.Errorf("read import map: %w", err)
	}

	raw, err := decodeDocument(data, detectFormat(path))
	if err != nil {
		return nil, nil, err
	}
	return raw, data, nil
}

// detectFormat picks the input format from --format, falling back to
// the file extension and finally to JSON.
func detectFormat(path string) string {
	if flagFormat != "" && flagFormat != "auto" {
		return flagFormat
	}
	switch {
	case strings.HasSuffix(path, ".yaml"), strings.HasSuffix(path, ".yml"):
		return "yaml"
	default:
		return "json"
	}
}

// decodeDocument unmarshals data as JSON or YAML into an untyped value.
func decodeDocument(data []byte, format string) (any, error) {
	switch format {
	case "json":
		var raw any
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("decode JSON: %w", err)
		}
		return raw, nil
	case "yaml":
		var raw any
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("decode YAML: %w", err)
		}
		return normalizeYAML(raw), nil
	default:
		return nil, fmt.Errorf("unknown input format %q", format)
	}
}

// normalizeYAML rewrites YAML decoding artifacts into the JSON-shaped
// form the validator expects: map[any]any becomes map[string]any, and
// nested values are normalized recursively. Non-string keys are
// stringified rather than dropped so they still fail validation
// visibly.
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
		return v
	}
}
