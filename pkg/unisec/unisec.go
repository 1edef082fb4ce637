// Package unisec scans strings for Unicode constructs that enable URL
// spoofing: invisible characters, bidirectional control characters,
// mixed-script text, known Latin look-alikes, and supplementary-plane
// characters unusual in a URL context.
//
// Scanning iterates by codepoint, not by code unit, so a character
// outside the Basic Multilingual Plane is reported once at its rune
// offset rather than as two surrogate halves.
package unisec

import (
	"fmt"
	"unicode"
)

// Kind classifies a finding.
type Kind string

// Finding kinds.
const (
	KindInvisible     Kind = "invisible"
	KindBidiControl   Kind = "bidi-control"
	KindMixedScript   Kind = "mixed-script"
	KindConfusable    Kind = "confusable"
	KindSupplementary Kind = "supplementary"
)

// Finding describes one Unicode-security concern in a scanned value.
// Offset is the rune index of the offending character; it is -1 for
// whole-value findings such as mixed scripts.
type Finding struct {
	Kind    Kind
	Rune    rune
	Offset  int
	Message string
}

// confusable describes a non-Latin character that visually resembles a
// Latin letter.
type confusable struct {
	name  string
	latin rune
}

// confusables is a fixed table of Cyrillic and Greek codepoints commonly
// substituted for Latin letters in homograph attacks.
var confusables = map[rune]confusable{
	'а': {"CYRILLIC SMALL LETTER A", 'a'},
	'е': {"CYRILLIC SMALL LETTER IE", 'e'},
	'о': {"CYRILLIC SMALL LETTER O", 'o'},
	'р': {"CYRILLIC SMALL LETTER ER", 'p'},
	'с': {"CYRILLIC SMALL LETTER ES", 'c'},
	'у': {"CYRILLIC SMALL LETTER U", 'y'},
	'х': {"CYRILLIC SMALL LETTER HA", 'x'},
	'і': {"CYRILLIC SMALL LETTER BYELORUSSIAN-UKRAINIAN I", 'i'},
	'ј': {"CYRILLIC SMALL LETTER JE", 'j'},
	'ο': {"GREEK SMALL LETTER OMICRON", 'o'},
	'Α': {"GREEK CAPITAL LETTER ALPHA", 'A'},
	'Ε': {"GREEK CAPITAL LETTER EPSILON", 'E'},
	'Ρ': {"GREEK CAPITAL LETTER RHO", 'P'},
}

// isInvisible reports zero-width and formatting characters that render
// as nothing: the zero-width space/joiner range (including the LRM/RLM
// bidi marks), line and paragraph separators, the word-joiner range,
// and the byte-order mark.
func isInvisible(r rune) bool {
	switch {
	case r >= '\u200B' && r <= '\u200F':
		return true
	case r == '\u2028' || r == '\u2029':
		return true
	case r >= '\u2060' && r <= '\u2064':
		return true
	case r == '\uFEFF':
		return true
	}
	return false
}

// isBidiControl reports bidirectional override and isolate controls,
// which can visually reorder the characters around them.
func isBidiControl(r rune) bool {
	return (r >= '\u202A' && r <= '\u202E') || (r >= '\u2066' && r <= '\u2069')
}

// scripts distinguished by the mixed-script check. Order fixes how
// script names appear in messages.
var scripts = []struct {
	name  string
	table *unicode.RangeTable
}{
	{"Latin", unicode.Latin},
	{"Cyrillic", unicode.Cyrillic},
	{"Greek", unicode.Greek},
	{"Arabic", unicode.Arabic},
	{"Hebrew", unicode.Hebrew},
}

// Scan inspects value and returns every independent finding. A single
// value can produce multiple findings of different kinds; an empty
// result means the value raised no concerns.
func Scan(value string) []Finding {
	var findings []Finding
	seen := make(map[string]bool)

	offset := 0
	for _, r := range value {
		switch {
		case isInvisible(r):
			findings = append(findings, Finding{
				Kind:    KindInvisible,
				Rune:    r,
				Offset:  offset,
				Message: fmt.Sprintf("contains invisible character U+%04X at offset %d", r, offset),
			})
		case isBidiControl(r):
			findings = append(findings, Finding{
				Kind:    KindBidiControl,
				Rune:    r,
				Offset:  offset,
				Message: fmt.Sprintf("contains bidirectional control character U+%04X at offset %d", r, offset),
			})
		}

		if c, ok := confusables[r]; ok {
			findings = append(findings, Finding{
				Kind:   KindConfusable,
				Rune:   r,
				Offset: offset,
				Message: fmt.Sprintf("contains %s (U+%04X), which looks like Latin %q",
					c.name, r, string(c.latin)),
			})
		}

		if r > 0xFFFF {
			findings = append(findings, Finding{
				Kind:    KindSupplementary,
				Rune:    r,
				Offset:  offset,
				Message: fmt.Sprintf("contains supplementary-plane character U+%X at offset %d, unusual in a URL", r, offset),
			})
		}

		for _, s := range scripts {
			if unicode.Is(s.table, r) {
				seen[s.name] = true
				break
			}
		}
		offset++
	}

	if len(seen) > 1 {
		msg := "mixes characters from multiple scripts ("
		first := true
		for _, s := range scripts {
			if !seen[s.name] {
				continue
			}
			if !first {
				msg += ", "
			}
			msg += s.name
			first = false
		}
		msg += "), possible homograph spoofing"
		findings = append(findings, Finding{
			Kind:    KindMixedScript,
			Offset:  -1,
			Message: msg,
		})
	}

	return findings
}
