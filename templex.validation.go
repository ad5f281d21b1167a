package templex

import (
	"github.com/itsatony/go-templex/internal"
)

// ValidationSeverity indicates the severity of a validation issue.
type ValidationSeverity int

const (
	// SeverityError marks markers that will not render as intended
	SeverityError ValidationSeverity = iota
	// SeverityWarning marks suspicious markers that render literally
	SeverityWarning
)

// Severity names
const (
	SeverityNameError   = "error"
	SeverityNameWarning = "warning"
)

// String returns the string representation of the severity
func (s ValidationSeverity) String() string {
	if s == SeverityWarning {
		return SeverityNameWarning
	}
	return SeverityNameError
}

// MarshalText renders the severity by name.
func (s ValidationSeverity) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Position represents a location in template text.
type Position struct {
	Offset int `json:"offset"` // Byte offset from start
	Line   int `json:"line"`   // 1-indexed line number
	Column int `json:"column"` // 1-indexed column number
}

// ValidationIssue represents a single validation finding.
type ValidationIssue struct {
	Severity ValidationSeverity `json:"severity"`
	Message  string             `json:"message"`
	Marker   string             `json:"marker"`
	Position Position           `json:"position"`
}

// ValidationResult contains the results of template validation.
type ValidationResult struct {
	issues []ValidationIssue
}

// Issues returns all validation issues found.
func (r *ValidationResult) Issues() []ValidationIssue {
	return r.issues
}

// Errors returns only issues with error severity.
func (r *ValidationResult) Errors() []ValidationIssue {
	return r.filter(SeverityError)
}

// Warnings returns only issues with warning severity.
func (r *ValidationResult) Warnings() []ValidationIssue {
	return r.filter(SeverityWarning)
}

// HasErrors returns true if there are any error-severity issues.
func (r *ValidationResult) HasErrors() bool {
	return len(r.Errors()) > 0
}

// HasWarnings returns true if there are any warning-severity issues.
func (r *ValidationResult) HasWarnings() bool {
	return len(r.Warnings()) > 0
}

// IsValid returns true if there are no error-severity issues.
func (r *ValidationResult) IsValid() bool {
	return !r.HasErrors()
}

func (r *ValidationResult) filter(sev ValidationSeverity) []ValidationIssue {
	var out []ValidationIssue
	for _, issue := range r.issues {
		if issue.Severity == sev {
			out = append(out, issue)
		}
	}
	return out
}

// Validate checks the directive structure of text without rendering it:
// unbalanced IF and EACH blocks, misplaced ELSE, malformed EACH headers,
// directives without arguments, unknown block directives and empty markers.
func Validate(text string) *ValidationResult {
	lint := internal.Lint(text)
	result := &ValidationResult{issues: make([]ValidationIssue, 0, len(lint))}

	for _, li := range lint {
		sev := SeverityError
		if li.Severity == internal.LintWarning {
			sev = SeverityWarning
		}
		result.issues = append(result.issues, ValidationIssue{
			Severity: sev,
			Message:  li.Message,
			Marker:   li.Marker,
			Position: Position{
				Offset: li.Position.Offset,
				Line:   li.Position.Line,
				Column: li.Position.Column,
			},
		})
	}
	return result
}

// Validate checks the structure of the template text.
func (t *Template) Validate() *ValidationResult {
	return Validate(t.text)
}
