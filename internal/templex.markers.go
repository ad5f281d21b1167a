package internal

import (
	"regexp"
	"strings"
)

var (
	VariablePattern = regexp.MustCompile(patternVariable)
	FunctionPattern = regexp.MustCompile(patternFunction)
	IncludePattern  = regexp.MustCompile(patternInclude)
	RenderPattern   = regexp.MustCompile(patternRender)

	ifHeadPattern   = regexp.MustCompile(patternIfHead)
	eachHeadPattern = regexp.MustCompile(patternEachHead)
	fallbackPattern = regexp.MustCompile(patternFallback)
	markerPattern   = regexp.MustCompile(patternMarker)
	onlyPathPattern = regexp.MustCompile(patternOnlyPath)
	eachLintPattern = regexp.MustCompile(patternEachLint)
)

// Replacer computes the substitution for a single marker match.
// groups holds the trimmed capture groups; raw is the full marker text.
// Returning an error stops the replacement.
type Replacer func(raw string, groups []string) (string, error)

// ReplaceAll rewrites every non-overlapping match of re in text using fn.
// Unlike regexp.ReplaceAllStringFunc it threads errors back to the caller.
func ReplaceAll(re *regexp.Regexp, text string, fn Replacer) (string, error) {
	matches := re.FindAllStringSubmatchIndex(text, -1)
	if len(matches) == 0 {
		return text, nil
	}

	var sb strings.Builder
	sb.Grow(len(text))
	last := 0

	for _, m := range matches {
		groups := make([]string, 0, len(m)/2-1)
		for g := 2; g+1 < len(m); g += 2 {
			if m[g] < 0 {
				groups = append(groups, "")
				continue
			}
			groups = append(groups, strings.TrimSpace(text[m[g]:m[g+1]]))
		}

		out, err := fn(text[m[0]:m[1]], groups)
		if err != nil {
			return "", err
		}

		sb.WriteString(text[last:m[0]])
		sb.WriteString(out)
		last = m[1]
	}

	sb.WriteString(text[last:])
	return sb.String(), nil
}

// SplitPath splits a dot-notation path into its segments.
func SplitPath(path string) []string {
	return strings.Split(path, PathSeparator)
}

// IsPath reports whether s has the shape of a dot-notation path.
func IsPath(s string) bool {
	return onlyPathPattern.MatchString(s)
}

// protectedOpen stands in for StrOpenDelim inside verbatim text so that later
// stages cannot match markers there. U+E000 is a private use code point.
const protectedOpen = ""

// Protect hides every marker opener in text from the remaining stages.
func Protect(text string) string {
	return strings.ReplaceAll(text, StrOpenDelim, protectedOpen)
}

// Unprotect restores text hidden by Protect.
func Unprotect(text string) string {
	return strings.ReplaceAll(text, protectedOpen, StrOpenDelim)
}
