package importmap

// Result contains the outcome of validating an import map.
// A Result is append-only while validation runs and immutable once
// returned; accessors hand out defensive copies so callers cannot
// mutate internal state through the returned slices.
type Result struct {
	issues    []Issue
	errors    int
	truncated bool
	maxErrors int
}

// newResult creates an empty Result.
// maxErrors limits how many issues are retained (0 = unlimited); the
// validity flag always reflects every violation found, retained or not.
func newResult(maxErrors int) *Result {
	return &Result{
		issues:    make([]Issue, 0, 8),
		maxErrors: maxErrors,
	}
}

// add records an issue. Issues beyond the retention limit still count
// toward validity but are dropped from the list.
func (r *Result) add(issue Issue) {
	if issue.IsError() {
		r.errors++
	}
	if r.maxErrors > 0 && len(r.issues) >= r.maxErrors {
		r.truncated = true
		return
	}
	r.issues = append(r.issues, issue)
}

// addError records an error-level issue.
func (r *Result) addError(code Code, path, message string) {
	r.add(Issue{
		Severity: SeverityError,
		Code:     code,
		Message:  message,
		Path:     path,
	})
}

// Valid reports whether validation found no errors.
func (r *Result) Valid() bool {
	return r.errors == 0
}

// Issues returns a copy of all recorded issues, in the order they
// were found.
func (r *Result) Issues() []Issue {
	out := make([]Issue, len(r.issues))
	copy(out, r.issues)
	return out
}

// Errors returns a copy of the messages of all error-level issues,
// in the order they were found.
func (r *Result) Errors() []string {
	out := make([]string, 0, len(r.issues))
	for _, issue := range r.issues {
		if issue.IsError() {
			out = append(out, issue.Message)
		}
	}
	return out
}

// ErrorCount returns the number of errors found, including any dropped
// past the retention limit.
func (r *Result) ErrorCount() int {
	return r.errors
}

// Truncated reports whether issues were dropped due to WithMaxErrors.
func (r *Result) Truncated() bool {
	return r.truncated
}
