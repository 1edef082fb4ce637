// Package importmap validates import maps and resolves module
// specifiers against them.
//
// An import map is the declarative mapping table used by JavaScript
// module loaders: top-level imports, scoped overrides keyed by the
// importing module's location, and subresource-integrity metadata.
// This package owns the two non-trivial pieces of that machinery: a
// validation pass (structural checks, SRI format checks,
// Unicode-spoofing checks) and the resolution algorithm
// (longest-prefix scope and specifier matching plus relative-URL
// recombination). Obtaining the map and loading the resolved modules
// are the embedder's problem; nothing here touches the filesystem or
// the network.
//
// # Quick Start
//
//	m, result := importmap.Parse(data)
//	if !result.Valid() {
//	    for _, msg := range result.Errors() {
//	        fmt.Println(msg)
//	    }
//	    return
//	}
//
//	r := importmap.NewResolver(m)
//	address, err := r.Resolve("react", "/app/main.js")
//	switch {
//	case errors.Is(err, importmap.ErrUnresolved):
//	    // bare specifier with no mapping
//	case err != nil:
//	    // resolver misuse
//	default:
//	    fmt.Println(address)
//	}
//
// Validation never panics and collects every violation in one pass; the
// Resolver precomputes its lookup structures once at construction and
// is safe for concurrent use afterwards.
package importmap
