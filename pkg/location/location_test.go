package location

import "testing"

var sample = []byte(`{
  "imports": {
    "react": "https://esm.sh/react@18",
    "react/": "https://esm.sh/react@18/"
  },
  "scopes": {
    "/admin/": {
      "react": "https://esm.sh/react@17"
    }
  },
  "integrity": {
    "https://esm.sh/react@18": "sha256-aGVsbG8="
  }
}`)

func TestIndex_Find(t *testing.T) {
	ix := NewIndex(sample)

	tests := []struct {
		path     string
		wantLine int
	}{
		{"imports", 2},
		{"imports.react", 3},
		{"imports.react/", 4},
		{"scopes", 6},
		{"scopes./admin/", 7},
		{"scopes./admin/.react", 8},
		{"integrity", 11},
		{"integrity.https://esm.sh/react@18", 12},
	}

	for _, tc := range tests {
		loc := ix.Find(tc.path)
		if loc == nil {
			t.Errorf("Find(%q) = nil, want a location", tc.path)
			continue
		}
		if loc.Line != tc.wantLine {
			t.Errorf("Find(%q).Line = %d, want %d", tc.path, loc.Line, tc.wantLine)
		}
	}
}

func TestIndex_MissingPaths(t *testing.T) {
	ix := NewIndex(sample)

	for _, path := range []string{"imports.vue", "scopes./app/", "nope"} {
		if loc := ix.Find(path); loc != nil {
			t.Errorf("Find(%q) = %v, want nil", path, loc)
		}
	}
}

func TestIndex_MalformedInput(t *testing.T) {
	for _, data := range []string{``, `{`, `[1,2]`, `{"imports": "not-an-object"}`} {
		ix := NewIndex([]byte(data))
		if ix == nil {
			t.Fatalf("NewIndex(%q) = nil", data)
		}
		// Entry paths must simply be absent.
		if loc := ix.Find("imports.react"); loc != nil {
			t.Errorf("Find on %q = %v, want nil", data, loc)
		}
	}
}

func TestIndex_NilReceiver(t *testing.T) {
	var ix *Index
	if loc := ix.Find("imports"); loc != nil {
		t.Errorf("nil Index Find() = %v, want nil", loc)
	}
}

func TestOffsetToLineCol(t *testing.T) {
	data := []byte("ab\ncd\ne")

	tests := []struct {
		offset   int
		wantLine int
		wantCol  int
	}{
		{0, 1, 1},
		{1, 1, 2},
		{3, 2, 1},
		{6, 3, 1},
	}

	for _, tc := range tests {
		line, col := offsetToLineCol(data, tc.offset)
		if line != tc.wantLine || col != tc.wantCol {
			t.Errorf("offsetToLineCol(%d) = %d:%d, want %d:%d",
				tc.offset, line, col, tc.wantLine, tc.wantCol)
		}
	}
}
