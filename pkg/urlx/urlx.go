// Package urlx classifies and recombines the URL-ish strings found in
// import maps: full URLs, absolute and relative paths, and bare module
// specifiers.
package urlx

import (
	"net/url"
	"strings"
)

// neutralBase is the base URL used to probe whether a string could be
// resolved as a relative reference. The host is never contacted.
const neutralBase = "https://importmap.invalid/"

// IsFull reports whether s parses as a complete URL with a recognizable
// scheme. Strings containing "://" must additionally carry a host, so
// "http://" and "://x" are rejected.
func IsFull(s string) bool {
	u, err := url.Parse(s)
	if err != nil || u.Scheme == "" {
		return false
	}
	if strings.Contains(s, "://") && u.Host == "" {
		return false
	}
	return true
}

// ResolvesAgainstBase reports whether s can be resolved as a reference
// against a neutral base URL.
func ResolvesAgainstBase(s string) bool {
	if _, err := url.Parse(s); err != nil {
		return false
	}
	base, err := url.Parse(neutralBase)
	if err != nil {
		return false
	}
	_, err = base.Parse(s)
	return err == nil
}

// HasOrigin reports whether s parses as a URL with a full origin
// (scheme and host).
func HasOrigin(s string) bool {
	u, err := url.Parse(s)
	return err == nil && u.Scheme != "" && u.Host != ""
}

// IsBare reports whether s is a bare module specifier: not an absolute
// path, not a relative path, and not a URL with a recognizable origin.
func IsBare(s string) bool {
	if strings.HasPrefix(s, "/") ||
		strings.HasPrefix(s, "./") ||
		strings.HasPrefix(s, "../") {
		return false
	}
	return !HasOrigin(s)
}

// ResolveRelative resolves a "./" or "../" specifier against the module
// that imports it. Importers may be full URLs or plain filesystem-style
// paths; an importer with no "/" at all is not a usable base and the
// specifier is returned unchanged. The resolution never fails: anything
// that cannot be recombined falls back to the original specifier.
func ResolveRelative(specifier, importer string) string {
	if !strings.Contains(importer, "/") {
		return specifier
	}

	if u, err := url.Parse(importer); err == nil && u.Scheme != "" && u.Host != "" {
		return resolveAgainstURL(specifier, u)
	}
	return resolveAgainstPath(specifier, importer)
}

// resolveAgainstURL recombines the specifier with the importer's origin
// and directory. A path without a trailing "/" names a file, so its
// final segment is dropped.
func resolveAgainstURL(specifier string, u *url.URL) string {
	dir := u.Path
	if !strings.HasSuffix(dir, "/") {
		if i := strings.LastIndex(dir, "/"); i >= 0 {
			dir = dir[:i+1]
		} else {
			dir = "/"
		}
	}

	segments := applySegments(splitSegments(dir), specifier)

	origin := u.Scheme + "://"
	if u.User != nil {
		origin += u.User.String() + "@"
	}
	origin += u.Host

	resolved := origin + "/" + strings.Join(segments, "/")
	if _, err := url.Parse(resolved); err != nil {
		return specifier
	}
	return resolved
}

// resolveAgainstPath recombines the specifier with a plain path
// importer, preserving absolute-path rooting.
func resolveAgainstPath(specifier, importer string) string {
	dir := importer[:strings.LastIndex(importer, "/")+1]

	segments := applySegments(splitSegments(dir), specifier)

	joined := strings.Join(segments, "/")
	if strings.HasPrefix(importer, "/") {
		return "/" + joined
	}
	return joined
}

// splitSegments splits a directory path into its non-empty segments.
func splitSegments(dir string) []string {
	var segments []string
	for _, seg := range strings.Split(dir, "/") {
		if seg != "" {
			segments = append(segments, seg)
		}
	}
	return segments
}

// applySegments walks the specifier's segments over the accumulated
// base segments: "." and empty segments are skipped, ".." pops (a no-op
// when already empty), anything else appends.
func applySegments(base []string, specifier string) []string {
	segments := base
	for _, seg := range strings.Split(specifier, "/") {
		switch seg {
		case "", ".":
		case "..":
			if len(segments) > 0 {
				segments = segments[:len(segments)-1]
			}
		default:
			segments = append(segments, seg)
		}
	}
	return segments
}
