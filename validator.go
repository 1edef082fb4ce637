package importmap

import (
	"fmt"
	"sort"
	"strings"

	"github.com/esmtools/importmap/pkg/location"
	"github.com/esmtools/importmap/pkg/sri"
	"github.com/esmtools/importmap/pkg/unisec"
	"github.com/esmtools/importmap/pkg/urlx"
)

// knownFields are the recognized top-level import-map keys.
var knownFields = map[string]bool{
	"imports":   true,
	"scopes":    true,
	"integrity": true,
}

// Validate checks an import-map-shaped value for structural and
// security well-formedness. It accepts the untyped result of JSON
// decoding (map[string]any) as well as a typed *ImportMap, never
// panics, and runs to completion collecting every violation; only the
// top-level shape check ends the pass early.
//
// An entirely empty map is valid: all three fields are optional.
func Validate(v any, opts ...Option) *Result {
	options := DefaultOptions()
	for _, opt := range opts {
		opt(options)
	}

	result := newResult(options.MaxErrors)

	raw, ok := rawObject(v)
	if !ok {
		result.addError(CodeStructure, "", "Import map must be an object.")
		return result
	}

	if v, present := raw["imports"]; present {
		if obj, ok := v.(map[string]any); ok {
			validateEntries(result, "imports", obj)
		} else {
			result.addError(CodeStructure, "imports", `"imports" must be an object.`)
		}
	}

	if v, present := raw["scopes"]; present {
		if obj, ok := v.(map[string]any); ok {
			validateScopes(result, obj)
		} else {
			result.addError(CodeStructure, "scopes", `"scopes" must be an object.`)
		}
	}

	if v, present := raw["integrity"]; present {
		if obj, ok := v.(map[string]any); ok {
			validateIntegrity(result, obj)
		} else {
			result.addError(CodeStructure, "integrity", `"integrity" must be an object.`)
		}
	}

	for _, key := range sortedKeys(raw) {
		if !knownFields[key] {
			result.addError(CodeUnknownKey, key, fmt.Sprintf("Unknown top-level key %q.", key))
		}
	}

	if options.Source != nil {
		enrichLocations(result, options.Source)
	}
	return result
}

// rawObject coerces the supported input forms to the untyped object the
// checks operate on. Typed maps share the same path; their wrong-type
// checks simply can never fire.
func rawObject(v any) (map[string]any, bool) {
	switch val := v.(type) {
	case map[string]any:
		if val == nil {
			return nil, false
		}
		return val, true
	case *ImportMap:
		if val == nil {
			return nil, false
		}
		return val.toRaw(), true
	case ImportMap:
		return val.toRaw(), true
	default:
		return nil, false
	}
}

// validateEntries checks one specifier->address mapping. It is applied
// identically to the top-level imports and to each scope body;
// pathPrefix distinguishes them in issue paths.
func validateEntries(result *Result, pathPrefix string, entries map[string]any) {
	for _, specifier := range sortedKeys(entries) {
		path := pathPrefix + "." + specifier

		address, ok := entries[specifier].(string)
		if !ok {
			result.addError(CodeStructure, path,
				fmt.Sprintf("Address for specifier %q must be a string.", specifier))
			continue
		}

		bothSet := true
		if specifier == "" {
			result.addError(CodeValue, pathPrefix, "Import specifier must be a non-empty string.")
			bothSet = false
		}
		if address == "" {
			result.addError(CodeValue, path,
				fmt.Sprintf("Address for specifier %q must be a non-empty string.", specifier))
			bothSet = false
		}

		if bothSet && !parseableAddress(address) {
			result.addError(CodeURL, path,
				fmt.Sprintf("Address %q for specifier %q is not a valid URL.", address, specifier))
		}

		for _, f := range unisec.Scan(address) {
			result.addError(CodeUnicode, path,
				fmt.Sprintf("Address %q for specifier %q %s.", address, specifier, f.Message))
		}

		if strings.HasSuffix(specifier, "/") && !strings.HasSuffix(address, "/") {
			result.addError(CodeValue, path,
				fmt.Sprintf("Specifier %q ends in a trailing slash but address %q does not.", specifier, address))
		}
	}
}

// validateScopes checks each scope prefix and its nested mapping. A bad
// prefix does not stop the nested imports from being validated.
func validateScopes(result *Result, scopes map[string]any) {
	for _, prefix := range sortedKeys(scopes) {
		if prefix == "" {
			result.addError(CodeValue, "scopes", "Scope prefix must be a non-empty string.")
		} else if strings.Contains(prefix, "://") && !urlx.IsFull(prefix) {
			result.addError(CodeURL, "scopes."+prefix,
				fmt.Sprintf("Scope prefix %q is not a valid URL.", prefix))
		}

		if body, ok := scopes[prefix].(map[string]any); ok {
			validateEntries(result, "scopes."+prefix, body)
		} else {
			result.addError(CodeStructure, "scopes."+prefix,
				fmt.Sprintf("Scope %q must map to an object.", prefix))
		}
	}
}

// validateIntegrity checks each url->metadata pair against the
// subresource-integrity grammar. Only the format is verified; nothing
// is fetched or hashed.
func validateIntegrity(result *Result, integrity map[string]any) {
	for _, url := range sortedKeys(integrity) {
		path := "integrity." + url

		value, ok := integrity[url].(string)
		if !ok {
			result.addError(CodeStructure, path,
				fmt.Sprintf("Integrity metadata for %q must be a string.", url))
			continue
		}

		if url == "" {
			result.addError(CodeValue, "integrity", "Integrity URL must be a non-empty string.")
		}
		if value == "" {
			result.addError(CodeValue, path,
				fmt.Sprintf("Integrity metadata for %q must be a non-empty string.", url))
		}

		if url != "" && !parseableAddress(url) {
			result.addError(CodeURL, path,
				fmt.Sprintf("Integrity URL %q is not a valid URL.", url))
		}

		for _, f := range unisec.Scan(url) {
			result.addError(CodeUnicode, path,
				fmt.Sprintf("Integrity URL %q %s.", url, f.Message))
		}

		if value != "" {
			if _, err := sri.Parse(value); err != nil {
				result.addError(CodeIntegrity, path,
					fmt.Sprintf("Integrity metadata for %q is invalid: %v.", url, err))
			}
		}
	}
}

// parseableAddress reports whether an address parses as a full URL or,
// failing that, resolves against a neutral base. A value containing
// "://" must be a full URL outright.
func parseableAddress(address string) bool {
	if strings.Contains(address, "://") {
		return urlx.IsFull(address)
	}
	return urlx.IsFull(address) || urlx.ResolvesAgainstBase(address)
}

// enrichLocations attaches line and column positions from the original
// JSON source to every issue whose path appears in it.
func enrichLocations(result *Result, source []byte) {
	ix := location.NewIndex(source)
	for i := range result.issues {
		issue := &result.issues[i]
		if issue.Path == "" || issue.Location != nil {
			continue
		}
		if loc := ix.Find(issue.Path); loc != nil {
			issue.Location = &Location{Line: loc.Line, Column: loc.Column}
		}
	}
}

// sortedKeys returns the map's keys in lexical order so issue order is
// deterministic across runs.
func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
