package internal

import (
	"strings"
)

// Position represents a location in the source template
type Position struct {
	Offset int // Byte offset from start
	Line   int // 1-indexed line number
	Column int // 1-indexed column number
}

// LintSeverity classifies a lint finding.
type LintSeverity int

const (
	LintError LintSeverity = iota
	LintWarning
)

// LintIssue is a single structural finding.
type LintIssue struct {
	Severity LintSeverity
	Message  string
	Marker   string
	Position Position
}

// openBlock tracks an unclosed block during linting.
type openBlock struct {
	keyword string
	marker  string
	offset  int
	hasElse bool
}

// Lint checks marker structure without resolving anything: block balance,
// ELSE placement, directive arguments and marker shapes.
func Lint(text string) []LintIssue {
	var issues []LintIssue
	var stack []*openBlock

	add := func(sev LintSeverity, msg, marker string, offset int) {
		issues = append(issues, LintIssue{
			Severity: sev,
			Message:  msg,
			Marker:   marker,
			Position: PositionAt(text, offset),
		})
	}

	for _, m := range markerPattern.FindAllStringSubmatchIndex(text, -1) {
		raw := text[m[0]:m[1]]
		body := strings.TrimSpace(text[m[2]:m[3]])
		offset := m[0]

		if body == "" {
			add(LintWarning, LintMsgEmptyMarker, raw, offset)
			continue
		}

		switch body[0] {
		case CharBlockOpen:
			keyword, arg := splitDirective(body[1:])
			switch keyword {
			case KeywordIf:
				if arg == "" {
					add(LintError, LintMsgMissingCondition, raw, offset)
				}
				stack = append(stack, &openBlock{keyword: KeywordIf, marker: raw, offset: offset})
			case KeywordElse:
				top := topOf(stack)
				if top == nil || top.keyword != KeywordIf {
					add(LintError, LintMsgElseOutsideIf, raw, offset)
					continue
				}
				if top.hasElse {
					add(LintWarning, LintMsgDuplicateElse, raw, offset)
				}
				top.hasElse = true
			case KeywordEach:
				if !eachLintPattern.MatchString(body) {
					add(LintError, LintMsgMalformedEach, raw, offset)
				}
				stack = append(stack, &openBlock{keyword: KeywordEach, marker: raw, offset: offset})
			case KeywordInclude, KeywordRender:
				if arg == "" {
					add(LintError, LintMsgMissingArgument, raw, offset)
				}
			default:
				add(LintWarning, LintMsgUnknownDirective, raw, offset)
			}

		case CharBlockClose:
			keyword := strings.TrimSpace(body[1:])
			if keyword != KeywordIf && keyword != KeywordEach {
				add(LintWarning, LintMsgUnknownDirective, raw, offset)
				continue
			}
			top := topOf(stack)
			if top == nil {
				add(LintError, unopenedMessage(keyword), raw, offset)
				continue
			}
			if top.keyword != keyword {
				add(LintError, LintMsgMismatchedClose, raw, offset)
				continue
			}
			stack = stack[:len(stack)-1]

		default:
			path := strings.TrimSuffix(body, CallSuffix)
			if !IsPath(strings.TrimSpace(path)) {
				add(LintWarning, LintMsgUnrecognizedShape, raw, offset)
			}
		}
	}

	for _, open := range stack {
		msg := LintMsgUnclosedIf
		if open.keyword == KeywordEach {
			msg = LintMsgUnclosedEach
		}
		add(LintError, msg, open.marker, open.offset)
	}

	return issues
}

// splitDirective separates a block keyword from its argument text.
func splitDirective(s string) (keyword, arg string) {
	s = strings.TrimSpace(s)
	idx := strings.IndexAny(s, " \t\r\n")
	if idx < 0 {
		return s, ""
	}
	return s[:idx], strings.TrimSpace(s[idx:])
}

func topOf(stack []*openBlock) *openBlock {
	if len(stack) == 0 {
		return nil
	}
	return stack[len(stack)-1]
}

func unopenedMessage(keyword string) string {
	if keyword == KeywordEach {
		return LintMsgUnopenedEach
	}
	return LintMsgUnopenedIf
}

// PositionAt converts a byte offset into a line/column position.
func PositionAt(text string, offset int) Position {
	if offset > len(text) {
		offset = len(text)
	}
	pos := Position{Offset: offset, Line: 1, Column: 1}

	for i := 0; i < offset; i++ {
		if text[i] == CharNewline {
			pos.Line++
			pos.Column = 1
		} else {
			pos.Column++
		}
	}

	return pos
}
