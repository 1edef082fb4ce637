package importmap

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParse_Valid(t *testing.T) {
	data := []byte(`{
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
    "https://esm.sh/react@18": "sha384-oqVuAfXRKap7fdgcCY5uykM6+R9GqQ8K/uxy9rx7HNQlGYl1kPzQho1wx4JwY8wC"
  }
}`)

	m, result := Parse(data)

	if !result.Valid() {
		t.Fatalf("Valid() = false; errors: %v", result.Errors())
	}
	want := &ImportMap{
		Imports: map[string]string{
			"react":  "https://esm.sh/react@18",
			"react/": "https://esm.sh/react@18/",
		},
		Scopes: map[string]map[string]string{
			"/admin/": {"react": "https://esm.sh/react@17"},
		},
		Integrity: map[string]string{
			"https://esm.sh/react@18": "sha384-oqVuAfXRKap7fdgcCY5uykM6+R9GqQ8K/uxy9rx7HNQlGYl1kPzQho1wx4JwY8wC",
		},
	}
	if diff := cmp.Diff(want, m); diff != "" {
		t.Errorf("Parse() mismatch (-want +got):\n%s", diff)
	}
}

func TestParse_InvalidJSON(t *testing.T) {
	m, result := Parse([]byte(`{"imports":`))

	if m != nil {
		t.Error("Parse() returned a map for malformed JSON")
	}
	if result.Valid() {
		t.Fatal("Valid() = true, want false")
	}
	if errs := result.Errors(); len(errs) != 1 || !strings.Contains(errs[0], "must be valid JSON") {
		t.Errorf("Errors() = %v", errs)
	}
}

func TestParse_IssueLocations(t *testing.T) {
	data := []byte(`{
  "imports": {
    "react": "https://esm.sh/react@18",
    "utils/": "./lib"
  }
}`)

	m, result := Parse(data)

	if m != nil {
		t.Error("Parse() returned a map for an invalid document")
	}
	if result.Valid() {
		t.Fatal("Valid() = true, want false")
	}

	var found bool
	for _, issue := range result.Issues() {
		if issue.Path != "imports.utils/" {
			continue
		}
		found = true
		if issue.Location == nil {
			t.Fatal("issue has no Location")
		}
		if issue.Location.Line != 4 {
			t.Errorf("Location.Line = %d, want 4", issue.Location.Line)
		}
	}
	if !found {
		t.Errorf("no issue at imports.utils/; issues: %v", result.Issues())
	}
}

func TestParse_NonObjectDocument(t *testing.T) {
	for _, data := range []string{`null`, `[]`, `"imports"`, `42`} {
		m, result := Parse([]byte(data))
		if m != nil || result.Valid() {
			t.Errorf("Parse(%s) accepted a non-object document", data)
		}
	}
}

func TestImportMap_RawRoundTrip(t *testing.T) {
	m := &ImportMap{
		Imports: map[string]string{"lib": "/lib.js"},
		Scopes: map[string]map[string]string{
			"/app/": {"lib": "/app/lib.js"},
		},
		Integrity: map[string]string{
			"https://example.com/lib.js": "sha256-aGVsbG8=",
		},
	}

	if diff := cmp.Diff(m, fromRaw(m.toRaw())); diff != "" {
		t.Errorf("raw round trip mismatch (-want +got):\n%s", diff)
	}
}
