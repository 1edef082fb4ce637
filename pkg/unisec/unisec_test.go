package unisec

import (
	"strings"
	"testing"
)

const (
	zwsp      = string(rune(0x200B)) // zero width space
	rlo       = string(rune(0x202E)) // right-to-left override
	wordJoin  = string(rune(0x2060)) // word joiner
	bom       = string(rune(0xFEFF)) // byte-order mark
	lineSep   = string(rune(0x2028)) // line separator
	rliIsol   = string(rune(0x2067)) // right-to-left isolate
)

func TestScan_Clean(t *testing.T) {
	for _, v := range []string{
		"",
		"https://example.com/react@18",
		"./lib/utils.js",
		"/assets/app/",
	} {
		if findings := Scan(v); len(findings) != 0 {
			t.Errorf("Scan(%q) = %v, want none", v, findings)
		}
	}
}

func TestScan_Invisible(t *testing.T) {
	tests := []struct {
		name  string
		value string
		r     rune
	}{
		{"zero width space", "a" + zwsp + "b", 0x200B},
		{"word joiner", "x" + wordJoin, 0x2060},
		{"byte-order mark", bom + "x", 0xFEFF},
		{"line separator", "x" + lineSep + "y", 0x2028},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			findings := Scan(tc.value)
			if len(findings) != 1 {
				t.Fatalf("Scan() = %v, want one finding", findings)
			}
			f := findings[0]
			if f.Kind != KindInvisible || f.Rune != tc.r {
				t.Errorf("finding = %+v, want invisible U+%04X", f, tc.r)
			}
		})
	}
}

func TestScan_BidiControl(t *testing.T) {
	for _, v := range []string{"a" + rlo + "b", rliIsol + "x"} {
		findings := Scan(v)
		if len(findings) != 1 || findings[0].Kind != KindBidiControl {
			t.Errorf("Scan(%q) = %v, want one bidi-control finding", v, findings)
		}
	}
}

func TestScan_Confusables(t *testing.T) {
	// Cyrillic "о" among Latin: confusable plus mixed-script.
	findings := Scan("lоdash")

	if len(findings) != 2 {
		t.Fatalf("Scan() = %v, want 2 findings", findings)
	}
	if findings[0].Kind != KindConfusable {
		t.Errorf("findings[0].Kind = %v, want confusable", findings[0].Kind)
	}
	if !strings.Contains(findings[0].Message, "CYRILLIC SMALL LETTER O") {
		t.Errorf("message %q does not name the codepoint", findings[0].Message)
	}
	if findings[0].Offset != 1 {
		t.Errorf("Offset = %d, want 1", findings[0].Offset)
	}
	if findings[1].Kind != KindMixedScript {
		t.Errorf("findings[1].Kind = %v, want mixed-script", findings[1].Kind)
	}
}

func TestScan_MixedScriptOnly(t *testing.T) {
	// Cyrillic л resembles nothing in the look-alike table, so only the
	// mixed-script finding fires.
	findings := Scan("payлoad")

	if len(findings) != 1 {
		t.Fatalf("Scan() = %v, want 1 finding", findings)
	}
	f := findings[0]
	if f.Kind != KindMixedScript || f.Offset != -1 {
		t.Errorf("finding = %+v, want whole-value mixed-script", f)
	}
	if !strings.Contains(f.Message, "Latin") || !strings.Contains(f.Message, "Cyrillic") {
		t.Errorf("message %q does not list both scripts", f.Message)
	}
}

func TestScan_SingleForeignScriptIsClean(t *testing.T) {
	// All-Hebrew and all-Arabic values mix nothing.
	for _, v := range []string{"שלום", "مرحبا"} {
		if findings := Scan(v); len(findings) != 0 {
			t.Errorf("Scan(%q) = %v, want none", v, findings)
		}
	}
}

func TestScan_SupplementaryPlane(t *testing.T) {
	// A non-BMP character adjacent to ASCII must report once, at its
	// rune offset, not as two surrogate halves.
	findings := Scan("ab😀c")

	if len(findings) != 1 {
		t.Fatalf("Scan() = %v, want exactly one finding", findings)
	}
	f := findings[0]
	if f.Kind != KindSupplementary {
		t.Errorf("Kind = %v, want supplementary", f.Kind)
	}
	if f.Rune != 0x1F600 {
		t.Errorf("Rune = U+%X, want U+1F600", f.Rune)
	}
	if f.Offset != 2 {
		t.Errorf("Offset = %d, want 2", f.Offset)
	}
}

func TestScan_MultipleIndependentFindings(t *testing.T) {
	// Cyrillic р (confusable), a zero width space, and an emoji in one
	// value: confusable + invisible + supplementary + mixed-script.
	findings := Scan("р" + zwsp + "a😀")

	kinds := make(map[Kind]int)
	for _, f := range findings {
		kinds[f.Kind]++
	}
	want := map[Kind]int{
		KindConfusable:    1,
		KindInvisible:     1,
		KindSupplementary: 1,
		KindMixedScript:   1,
	}
	for k, n := range want {
		if kinds[k] != n {
			t.Errorf("kinds[%v] = %d, want %d; findings: %v", k, kinds[k], n, findings)
		}
	}
}
