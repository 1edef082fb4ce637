package importmap

import (
	"errors"
	"sort"
	"strings"

	"github.com/esmtools/importmap/pkg/urlx"
)

// ErrInvalidMap is returned by Resolve when the Resolver was built from
// a map that failed validation. Resolution against an ill-formed map
// has no defined output, so this is a contract violation, not a data
// condition.
var ErrInvalidMap = errors.New("importmap: resolve called on invalid import map")

// ErrUnresolved marks a bare specifier with no mapping anywhere in the
// map. It is distinct from a specifier resolving to itself.
var ErrUnresolved = errors.New("importmap: no mapping for bare specifier")

// mapping is one precomputed (specifier, address) pair.
type mapping struct {
	key     string
	address string
}

// scopeMappings is one scope prefix with its precomputed import list.
type scopeMappings struct {
	prefix  string
	imports []mapping
}

// Resolver answers resolve queries against a single validated import
// map. It validates the map at construction and precomputes
// length-descending lookup structures; after that it is immutable and
// safe for concurrent use. An invalid map yields a Resolver that
// refuses to resolve.
type Resolver struct {
	m      *ImportMap
	result *Result

	// built once at construction, only when the map is valid
	sortedImports []mapping
	sortedScopes  []scopeMappings

	metrics Metrics
}

// NewResolver builds a Resolver from an import-map-shaped value. It
// never fails: invalid input is recorded in the validation result and
// surfaces as ErrInvalidMap from Resolve.
func NewResolver(v any, opts ...Option) *Resolver {
	r := &Resolver{result: Validate(v, opts...)}
	if !r.result.Valid() {
		return r
	}

	switch val := v.(type) {
	case *ImportMap:
		r.m = val
	case ImportMap:
		r.m = &val
	default:
		r.m = fromRaw(v)
	}
	if r.m == nil {
		r.m = &ImportMap{}
	}

	r.sortedImports = sortMappings(r.m.Imports)
	r.sortedScopes = make([]scopeMappings, 0, len(r.m.Scopes))
	for prefix, body := range r.m.Scopes {
		r.sortedScopes = append(r.sortedScopes, scopeMappings{
			prefix:  prefix,
			imports: sortMappings(body),
		})
	}
	sort.Slice(r.sortedScopes, func(i, j int) bool {
		a, b := r.sortedScopes[i], r.sortedScopes[j]
		if len(a.prefix) != len(b.prefix) {
			return len(a.prefix) > len(b.prefix)
		}
		return a.prefix < b.prefix
	})

	return r
}

// Valid reports whether the underlying map passed validation.
func (r *Resolver) Valid() bool {
	return r.result.Valid()
}

// Validation returns the validation result for the underlying map.
func (r *Resolver) Validation() *Result {
	return r.result
}

// Map returns the underlying import map, or nil when it failed
// validation. The map must not be mutated while the Resolver is in use.
func (r *Resolver) Map() *ImportMap {
	return r.m
}

// Metrics returns a snapshot of the resolution counters.
func (r *Resolver) Metrics() MetricsSnapshot {
	return r.metrics.Snapshot()
}

// Resolve maps a specifier to its address. The importer, when
// non-empty, selects applicable scopes and serves as the base for
// relative specifiers; pass "" when the importing module is unknown.
//
// Scoped entries win over global ones, longer scope prefixes over
// shorter, and longer specifier keys over shorter. A matching scope
// with no applicable entry falls through to the next matching scope
// rather than ending the search. A specifier with no mapping anywhere
// is returned unchanged, except for bare specifiers, which yield
// ErrUnresolved.
func (r *Resolver) Resolve(specifier, importer string) (string, error) {
	if !r.Valid() {
		return "", ErrInvalidMap
	}
	r.metrics.resolves.Add(1)

	if importer != "" {
		for _, sc := range r.sortedScopes {
			if !scopeMatches(sc.prefix, importer) {
				continue
			}
			if address, ok := matchSorted(sc.imports, specifier); ok {
				r.metrics.scopedHits.Add(1)
				return address, nil
			}
		}
	}

	if address, ok := matchSorted(r.sortedImports, specifier); ok {
		r.metrics.globalHits.Add(1)
		return address, nil
	}

	if urlx.IsBare(specifier) {
		r.metrics.unresolved.Add(1)
		return "", ErrUnresolved
	}

	r.metrics.passThroughs.Add(1)
	if isRelative(specifier) && importer != "" {
		return urlx.ResolveRelative(specifier, importer), nil
	}
	return specifier, nil
}

// isRelative reports a "./" or "../" specifier.
func isRelative(specifier string) bool {
	return strings.HasPrefix(specifier, "./") || strings.HasPrefix(specifier, "../")
}

// scopeMatches reports whether a scope prefix applies to the importer:
// either exactly, or as a directory prefix when it ends in "/".
func scopeMatches(prefix, importer string) bool {
	if prefix == importer {
		return true
	}
	return strings.HasSuffix(prefix, "/") && strings.HasPrefix(importer, prefix)
}

// matchSorted applies the matching rule to a length-descending pair
// list: an exact key match wins, otherwise a "/"-terminated key that
// prefixes the specifier remaps the remainder. The first hit in sorted
// order is the most specific one.
func matchSorted(list []mapping, specifier string) (string, bool) {
	for _, m := range list {
		if m.key == specifier {
			return m.address, true
		}
		if strings.HasSuffix(m.key, "/") && strings.HasPrefix(specifier, m.key) {
			return m.address + specifier[len(m.key):], true
		}
	}
	return "", false
}

// sortMappings freezes a specifier->address map into a slice ordered by
// key length descending, longest (most specific) first. Equal lengths
// tie-break lexically so resolution order is deterministic.
func sortMappings(m map[string]string) []mapping {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	sort.SliceStable(keys, func(i, j int) bool {
		return len(keys[i]) > len(keys[j])
	})

	out := make([]mapping, 0, len(keys))
	for _, k := range keys {
		out = append(out, mapping{key: k, address: m[k]})
	}
	return out
}
