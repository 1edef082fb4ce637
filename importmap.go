package importmap

import (
	"encoding/json"
	"io"
)

// ImportMap is a declarative mapping table from module specifiers to
// addresses, with optional scoped overrides and integrity metadata.
// An ImportMap is treated as immutable once handed to a Resolver.
type ImportMap struct {
	// Imports maps specifiers to addresses.
	Imports map[string]string `json:"imports,omitempty"`

	// Scopes maps scope prefixes to per-scope specifier->address overrides.
	Scopes map[string]map[string]string `json:"scopes,omitempty"`

	// Integrity maps URLs to subresource-integrity metadata.
	Integrity map[string]string `json:"integrity,omitempty"`
}

// Parse decodes JSON bytes into an ImportMap and validates it in one
// step. The Result always describes the input; the returned map is nil
// unless validation passed. Issues carry line and column positions from
// the supplied source.
func Parse(data []byte, opts ...Option) (*ImportMap, *Result) {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		r := newResult(0)
		r.addError(CodeStructure, "", "Import map must be valid JSON: "+err.Error())
		return nil, r
	}

	opts = append(opts, WithSource(data))
	result := Validate(raw, opts...)
	if !result.Valid() {
		return nil, result
	}
	return fromRaw(raw), result
}

// ParseReader reads all of r and calls Parse.
func ParseReader(r io.Reader, opts ...Option) (*ImportMap, *Result) {
	data, err := io.ReadAll(r)
	if err != nil {
		res := newResult(0)
		res.addError(CodeStructure, "", "Import map could not be read: "+err.Error())
		return nil, res
	}
	return Parse(data, opts...)
}

// fromRaw builds a typed ImportMap from an untyped JSON value that has
// already passed validation. Entries with unexpected types are skipped;
// validation guarantees there are none.
func fromRaw(v any) *ImportMap {
	obj, ok := v.(map[string]any)
	if !ok {
		return nil
	}

	m := &ImportMap{}
	if imports, ok := obj["imports"].(map[string]any); ok {
		m.Imports = stringMap(imports)
	}
	if integrity, ok := obj["integrity"].(map[string]any); ok {
		m.Integrity = stringMap(integrity)
	}
	if scopes, ok := obj["scopes"].(map[string]any); ok {
		m.Scopes = make(map[string]map[string]string, len(scopes))
		for prefix, body := range scopes {
			if nested, ok := body.(map[string]any); ok {
				m.Scopes[prefix] = stringMap(nested)
			}
		}
	}
	return m
}

// toRaw converts a typed ImportMap back to the untyped form the
// validator operates on, so typed and untyped inputs share one
// validation path.
func (m *ImportMap) toRaw() map[string]any {
	raw := make(map[string]any, 3)
	if m.Imports != nil {
		raw["imports"] = anyMap(m.Imports)
	}
	if m.Scopes != nil {
		scopes := make(map[string]any, len(m.Scopes))
		for prefix, body := range m.Scopes {
			scopes[prefix] = anyMap(body)
		}
		raw["scopes"] = scopes
	}
	if m.Integrity != nil {
		raw["integrity"] = anyMap(m.Integrity)
	}
	return raw
}

func stringMap(in map[string]any) map[string]string {
	out := make(map[string]string, len(in))
	for k, v := range in {
		if s, ok := v.(string); ok {
			out[k] = s
		}
	}
	return out
}

func anyMap(in map[string]string) map[string]any {
	out := make(map[string]any, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}
