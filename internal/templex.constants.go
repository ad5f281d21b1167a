package internal

// Marker delimiters
const (
	StrOpenDelim  = "{{"
	StrCloseDelim = "}}"
)

// Block directive markers. Openers are prefixes because they carry arguments.
const (
	StrIfOpen      = "{{#IF"
	StrIfClose     = "{{/IF}}"
	StrElse        = "{{#ELSE}}"
	StrEachOpen    = "{{#EACH"
	StrEachClose   = "{{/EACH}}"
	StrIncludeOpen = "{{#INCLUDE"
	StrRenderOpen  = "{{#RENDER"
)

// Directive keywords as they appear after the block sigil
const (
	KeywordIf      = "IF"
	KeywordElse    = "ELSE"
	KeywordEach    = "EACH"
	KeywordInclude = "INCLUDE"
	KeywordRender  = "RENDER"
	KeywordAs      = "AS"
)

// Marker sigils
const (
	CharBlockOpen  = '#'
	CharBlockClose = '/'
	CharNewline    = '\n'
)

// Path constants
const (
	PathSeparator = "."
	CallSuffix    = "()"
)

// Regular expression sources. Paths are dot-joined segments of word
// characters and hyphens.
const (
	patternPath     = `[\w-]+(?:\.[\w-]+)*`
	patternVariable = `\{\{\s*(` + patternPath + `)\s*\}\}`
	patternFunction = `\{\{\s*(` + patternPath + `)\(\)\s*\}\}`
	patternIfHead   = `^\{\{#IF\s+([^}]+?)\s*\}\}`
	patternEachHead = `^\{\{#EACH\s+([^}\s]+)\s+AS\s+([^}\s]+)\s*\}\}`
	patternInclude  = `\{\{#INCLUDE\s+([^}]*?)\s*\}\}`
	patternRender   = `\{\{#RENDER\s+([^}]*?)\s*\}\}`
	patternFallback = `(?s)\{\{#IF\s+([^}]+?)\s*\}\}(.*?)\{\{/IF\}\}`
	patternMarker   = `(?s)\{\{(.*?)\}\}`
	patternOnlyPath = `^` + patternPath + `$`
	patternEachLint = `^#EACH\s+[^}\s]+\s+AS\s+[^}\s]+$`
)

// Lint message constants
const (
	LintMsgUnclosedIf        = "IF block is never closed"
	LintMsgUnclosedEach      = "EACH block is never closed"
	LintMsgUnopenedIf        = "closing IF without a matching opener"
	LintMsgUnopenedEach      = "closing EACH without a matching opener"
	LintMsgMismatchedClose   = "closing marker does not match the innermost open block"
	LintMsgElseOutsideIf     = "ELSE outside of an IF block"
	LintMsgDuplicateElse     = "IF block has more than one ELSE; later ELSE markers render literally"
	LintMsgMissingCondition  = "IF requires a condition path"
	LintMsgMalformedEach     = "EACH requires the form {{#EACH path AS alias}}"
	LintMsgMissingArgument   = "directive requires an argument"
	LintMsgUnknownDirective  = "unknown block directive; only a custom stage can expand it"
	LintMsgEmptyMarker       = "empty marker"
	LintMsgUnrecognizedShape = "marker is neither a path nor a function call and will render literally"
)
