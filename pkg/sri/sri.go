// Package sri parses subresource-integrity metadata strings.
//
// Integrity metadata is one or more space-separated tokens of the form
// "<algorithm>-<base64 digest>", e.g.
//
//	sha384-oqVuAfXRKap7fdgcCY5uykM6+R9GqQ8K/uxy9rx7HNQlGYl1kPzQho1wx4JwY8wC
//
// Only the format is checked; digests are never computed or compared
// against fetched content.
package sri

import (
	"fmt"
	"strings"
)

// Algorithm is a hash algorithm usable in integrity metadata.
type Algorithm string

// Supported algorithms.
const (
	SHA256 Algorithm = "sha256"
	SHA384 Algorithm = "sha384"
	SHA512 Algorithm = "sha512"
)

// Hash is a single parsed integrity token.
type Hash struct {
	Algorithm Algorithm
	Digest    string
}

// String renders the token back to its metadata form.
func (h Hash) String() string {
	return string(h.Algorithm) + "-" + h.Digest
}

// Parse parses integrity metadata into its hash tokens. It returns an
// error describing the first malformed token, or an error if the value
// contains no tokens at all.
func Parse(value string) ([]Hash, error) {
	var hashes []Hash
	for _, token := range strings.Fields(value) {
		h, err := parseToken(token)
		if err != nil {
			return nil, err
		}
		hashes = append(hashes, h)
	}
	if len(hashes) == 0 {
		return nil, fmt.Errorf("no integrity tokens found")
	}
	return hashes, nil
}

// Valid reports whether value is well-formed integrity metadata.
func Valid(value string) bool {
	_, err := Parse(value)
	return err == nil
}

// parseToken parses one "<algorithm>-<base64>" token.
func parseToken(token string) (Hash, error) {
	algo, digest, found := strings.Cut(token, "-")
	if !found {
		return Hash{}, fmt.Errorf("token %q has no algorithm prefix", token)
	}

	switch Algorithm(algo) {
	case SHA256, SHA384, SHA512:
	default:
		return Hash{}, fmt.Errorf("unsupported algorithm %q in token %q", algo, token)
	}

	if digest == "" {
		return Hash{}, fmt.Errorf("token %q has an empty digest", token)
	}
	if !validBase64(digest) {
		return Hash{}, fmt.Errorf("token %q has a non-base64 digest", token)
	}
	return Hash{Algorithm: Algorithm(algo), Digest: digest}, nil
}

// validBase64 checks that s is base64 alphabet characters followed by
// optional "=" padding. Digest length is deliberately not checked
// against the algorithm; browsers accept and ignore oddly sized
// digests, failing the fetch later.
func validBase64(s string) bool {
	body := strings.TrimRight(s, "=")
	if len(s)-len(body) > 2 {
		return false
	}
	if body == "" {
		return false
	}
	for _, c := range body {
		switch {
		case c >= 'A' && c <= 'Z':
		case c >= 'a' && c <= 'z':
		case c >= '0' && c <= '9':
		case c == '+' || c == '/':
		default:
			return false
		}
	}
	return true
}
