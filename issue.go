package importmap

import "fmt"

// Severity represents the severity of a validation issue.
type Severity string

// Severity constants.
const (
	SeverityError       Severity = "error"
	SeverityWarning     Severity = "warning"
	SeverityInformation Severity = "information"
)

// Code represents the category of a validation issue.
type Code string

// Code constants.
const (
	// CodeStructure indicates the map or one of its fields has the wrong shape.
	CodeStructure Code = "structure"
	// CodeValue indicates an empty specifier, address, or integrity entry.
	CodeValue Code = "value"
	// CodeURL indicates an address or URL that could not be parsed.
	CodeURL Code = "url"
	// CodeUnicode indicates a Unicode-security finding in an address or URL.
	CodeUnicode Code = "unicode"
	// CodeIntegrity indicates invalid subresource-integrity metadata.
	CodeIntegrity Code = "integrity"
	// CodeUnknownKey indicates an unrecognized top-level key.
	CodeUnknownKey Code = "unknown-key"
)

// Issue represents a single validation issue.
type Issue struct {
	// Severity indicates the severity level
	Severity Severity

	// Code indicates the category of issue
	Code Code

	// Message is the human-readable description of the issue
	Message string

	// Path is the dotted location inside the import map,
	// e.g. "imports.react" or "scopes./app/.lib"
	Path string

	// Location contains line and column information when the
	// original JSON source was supplied via WithSource
	Location *Location
}

// Location represents a position in the source JSON.
type Location struct {
	Line   int
	Column int
}

// IsError returns true for error-level issues.
func (i Issue) IsError() bool {
	return i.Severity == SeverityError
}

// String renders the issue as "path: message [line:col]".
func (i Issue) String() string {
	s := i.Message
	if i.Path != "" {
		s = i.Path + ": " + s
	}
	if i.Location != nil {
		s = fmt.Sprintf("%s [%d:%d]", s, i.Location.Line, i.Location.Column)
	}
	return s
}
