package internal

import (
	"strings"
)

// ConditionalBlock is one resolved {{#IF}}...{{/IF}} span.
// Start and End delimit the whole span in the scanned text, End exclusive.
type ConditionalBlock struct {
	Start     int
	End       int
	Condition string
	Then      string
	Else      string
	HasElse   bool
}

// EachBlock is one {{#EACH path AS alias}}...{{/EACH}} span.
type EachBlock struct {
	Start int
	End   int
	Path  string
	Alias string
	Body  string
	Raw   string
}

// OpenerOffsets returns the byte offset of every occurrence of prefix in text,
// in ascending order.
func OpenerOffsets(text, prefix string) []int {
	var offsets []int
	pos := 0
	for {
		idx := strings.Index(text[pos:], prefix)
		if idx < 0 {
			return offsets
		}
		offsets = append(offsets, pos+idx)
		pos += idx + len(prefix)
	}
}

// FindInnermostConditional locates the last conditional block in text whose
// branches contain no further IF openers.
//
// Candidates are tried from the end of the text backward. For each one the
// scan walks forward from the end of its opener marker, counting nested
// openers and closers; the closer that brings the depth back to zero is the
// match. The first ELSE seen at depth one splits the branches. Candidates
// without a closer or with an opener inside a branch are skipped.
func FindInnermostConditional(text string) (ConditionalBlock, bool) {
	starts := OpenerOffsets(text, StrIfOpen)

	for i := len(starts) - 1; i >= 0; i-- {
		start := starts[i]

		head := ifHeadPattern.FindStringSubmatchIndex(text[start:])
		if head == nil {
			continue
		}
		condition := strings.TrimSpace(text[start+head[2] : start+head[3]])
		contentStart := start + head[1]

		closePos, elsePos := scanConditional(text, contentStart)
		if closePos < 0 {
			continue
		}

		block := ConditionalBlock{
			Start:     start,
			End:       closePos + len(StrIfClose),
			Condition: condition,
		}
		if elsePos >= 0 {
			block.Then = text[contentStart:elsePos]
			block.Else = text[elsePos+len(StrElse) : closePos]
			block.HasElse = true
		} else {
			block.Then = text[contentStart:closePos]
		}

		if strings.Contains(block.Then, StrIfOpen) {
			continue
		}
		if block.HasElse && strings.Contains(block.Else, StrIfOpen) {
			continue
		}

		return block, true
	}

	return ConditionalBlock{}, false
}

// scanConditional walks forward from pos at depth one and returns the offset
// of the matching closer and of the first ELSE at depth one (-1 when absent).
func scanConditional(text string, pos int) (closePos, elsePos int) {
	depth := 1
	elsePos = -1

	for pos < len(text) {
		rest := text[pos:]
		switch {
		case strings.HasPrefix(rest, StrIfOpen):
			depth++
			pos += len(StrIfOpen)
		case strings.HasPrefix(rest, StrIfClose):
			depth--
			if depth == 0 {
				return pos, elsePos
			}
			pos += len(StrIfClose)
		case depth == 1 && elsePos < 0 && strings.HasPrefix(rest, StrElse):
			elsePos = pos
			pos += len(StrElse)
		default:
			pos++
		}
	}

	return -1, elsePos
}

// FindFallbackConditional pairs the first IF opener with the first closer
// after it, ignoring nesting, and splits on the first ELSE in between.
// It is a best-effort recovery for input the depth scan cannot resolve.
func FindFallbackConditional(text string) (ConditionalBlock, bool) {
	m := fallbackPattern.FindStringSubmatchIndex(text)
	if m == nil {
		return ConditionalBlock{}, false
	}

	block := ConditionalBlock{
		Start:     m[0],
		End:       m[1],
		Condition: strings.TrimSpace(text[m[2]:m[3]]),
	}

	content := text[m[4]:m[5]]
	if then, els, found := strings.Cut(content, StrElse); found {
		block.Then = then
		block.Else = els
		block.HasElse = true
	} else {
		block.Then = content
	}

	return block, true
}

// FindEachBlock returns the first well-formed EACH block starting at or after
// from. The opener is paired with its closer by depth, so a body may itself
// contain EACH blocks. Openers whose header does not parse, or that are never
// closed, are skipped.
func FindEachBlock(text string, from int) (EachBlock, bool) {
	pos := from

	for pos < len(text) {
		idx := strings.Index(text[pos:], StrEachOpen)
		if idx < 0 {
			return EachBlock{}, false
		}
		start := pos + idx

		head := eachHeadPattern.FindStringSubmatchIndex(text[start:])
		if head == nil {
			pos = start + len(StrEachOpen)
			continue
		}
		bodyStart := start + head[1]

		closePos := scanEach(text, bodyStart)
		if closePos < 0 {
			pos = start + len(StrEachOpen)
			continue
		}
		end := closePos + len(StrEachClose)

		return EachBlock{
			Start: start,
			End:   end,
			Path:  strings.TrimSpace(text[start+head[2] : start+head[3]]),
			Alias: strings.TrimSpace(text[start+head[4] : start+head[5]]),
			Body:  text[bodyStart:closePos],
			Raw:   text[start:end],
		}, true
	}

	return EachBlock{}, false
}

// scanEach returns the offset of the EACH closer matching an opener whose
// body starts at pos, or -1.
func scanEach(text string, pos int) int {
	depth := 1

	for pos < len(text) {
		rest := text[pos:]
		switch {
		case strings.HasPrefix(rest, StrEachOpen):
			depth++
			pos += len(StrEachOpen)
		case strings.HasPrefix(rest, StrEachClose):
			depth--
			if depth == 0 {
				return pos
			}
			pos += len(StrEachClose)
		default:
			pos++
		}
	}

	return -1
}
