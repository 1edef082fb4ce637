// Package location maps dotted import-map paths (for example
// "imports.react" or "scopes./app/.lib") to line and column positions
// in the original JSON source, so validation issues can point at the
// offending member.
package location

import (
	"github.com/buger/jsonparser"
)

// Location represents a position in the source JSON.
type Location struct {
	Line   int
	Column int
}

// Index holds precomputed positions for the members of one import-map
// document. Positions point at member values, which is where the
// problems validation reports actually live.
type Index struct {
	locs map[string]Location
}

// NewIndex scans data and records a position for every top-level field
// and every entry under imports, scopes, and integrity. Malformed or
// absent members are simply missing from the index; NewIndex never
// fails.
func NewIndex(data []byte) *Index {
	ix := &Index{locs: make(map[string]Location)}

	for _, field := range []string{"imports", "integrity"} {
		ix.indexObject(data, field, field)
	}

	if value, dataType, offset, err := jsonparser.Get(data, "scopes"); err == nil {
		ix.record("scopes", data, offset-len(value))
		if dataType == jsonparser.Object {
			_ = jsonparser.ObjectEach(data, func(key, value []byte, dt jsonparser.ValueType, offset int) error {
				prefix := string(key)
				ix.record("scopes."+prefix, data, offset-len(value))
				if dt == jsonparser.Object {
					ix.indexObject(data, "scopes."+prefix, "scopes", prefix)
				}
				return nil
			}, "scopes")
		}
	}

	return ix
}

// indexObject records the position of the object at keys and of each of
// its members, under pathPrefix.
func (ix *Index) indexObject(data []byte, pathPrefix string, keys ...string) {
	value, dataType, offset, err := jsonparser.Get(data, keys...)
	if err != nil {
		return
	}
	ix.record(pathPrefix, data, offset-len(value))
	if dataType != jsonparser.Object {
		return
	}
	_ = jsonparser.ObjectEach(data, func(key, value []byte, _ jsonparser.ValueType, offset int) error {
		ix.record(pathPrefix+"."+string(key), data, offset-len(value))
		return nil
	}, keys...)
}

// record stores the line and column of the given byte offset.
func (ix *Index) record(path string, data []byte, offset int) {
	if offset < 0 || offset > len(data) {
		return
	}
	line, col := offsetToLineCol(data, offset)
	ix.locs[path] = Location{Line: line, Column: col}
}

// Find returns the position recorded for path, or nil if the path was
// not present in the source.
func (ix *Index) Find(path string) *Location {
	if ix == nil {
		return nil
	}
	if loc, ok := ix.locs[path]; ok {
		return &loc
	}
	return nil
}

// offsetToLineCol converts a byte offset to 1-based line and column
// numbers.
func offsetToLineCol(data []byte, offset int) (int, int) {
	line, col := 1, 1
	for i := 0; i < offset && i < len(data); i++ {
		if data[i] == '\n' {
			line++
			col = 1
		} else {
			col++
		}
	}
	return line, col
}
