package main

// Command names
const (
	CmdNameRender   = "render"
	CmdNameValidate = "validate"
	CmdNameVersion  = "version"
	CmdNameHelp     = "help"
)

// Flag names - long form
const (
	FlagTemplate   = "template"
	FlagLocation   = "location"
	FlagData       = "data"
	FlagDataFile   = "data-file"
	FlagOutput     = "output"
	FlagFormat     = "format"
	FlagStrictMode = "strict"
	FlagDriver     = "driver"
	FlagRoot       = "root"
	FlagMaxDepth   = "max-depth"
	FlagVerbose    = "verbose"
)

// Flag names - short form
const (
	FlagTemplateShort = "t"
	FlagLocationShort = "l"
	FlagDataShort     = "d"
	FlagDataFileShort = "f"
	FlagOutputShort   = "o"
	FlagFormatShort   = "F"
	FlagVerboseShort  = "v"
)

// Flag default values
const (
	FlagDefaultOutput = "-" // stdout
	FlagDefaultFormat = "text"
	FlagDefaultDriver = "filesystem"
)

// Output formats
const (
	OutputFormatText = "text"
	OutputFormatJSON = "json"
)

// Exit codes
const (
	ExitCodeSuccess         = 0
	ExitCodeError           = 1
	ExitCodeUsageError      = 2
	ExitCodeValidationError = 3
	ExitCodeInputError      = 4
)

// Input source indicators
const (
	InputSourceStdin = "-"
)

// Error messages - ALL must be constants
const (
	ErrMsgUnknownCommand    = "unknown command"
	ErrMsgInvalidFlags      = "invalid arguments"
	ErrMsgMissingTemplate   = "template source required: use --template or --location"
	ErrMsgBothTemplates     = "use only one of --template and --location"
	ErrMsgBothDataInputs    = "use only one of --data and --data-file"
	ErrMsgInvalidData       = "invalid context data"
	ErrMsgReadFileFailed    = "failed to read file"
	ErrMsgOpenSourceFailed  = "failed to open text source"
	ErrMsgLoadFailed        = "failed to load template"
	ErrMsgWriteOutputFailed = "failed to write output"
	ErrMsgEngineFailed      = "invalid engine configuration"
	ErrMsgRenderFailed      = "template rendering failed"
	ErrMsgInvalidFormat     = "invalid output format"
)

// Help text templates
const (
	HelpMainUsage = `templex - logic-lite template renderer

Usage:
    templex <command> [options]

Commands:
    render      Render a template with context data
    validate    Check the directive structure of a template
    version     Show version information
    help        Show help for a command

Use "templex help <command>" for more information about a command.`

	HelpRenderUsage = `Render a template with context data

Usage:
    templex render [options]

Options:
    -t, --template <file>    Template file (use "-" for stdin)
    -l, --location <loc>     Template location in the text source
    -d, --data <json>        JSON data string (comments allowed)
    -f, --data-file <file>   Data file (.json, .jsonc, .yaml, .yml)
    -o, --output <file>      Output file (default: stdout)
        --driver <name>      Text source driver for INCLUDE/RENDER (default: filesystem)
        --root <conn>        Source root directory or connection string
        --max-depth <n>      Nested render limit, 0 for unlimited (default: 64)
        --strict             Fail on the first unresolved directive
    -v, --verbose            Debug logging to stderr

Examples:
    templex render -t page.txt -d '{"name": "Alice"}'
    templex render -t page.txt -f data.yaml --root ./partials
    cat page.txt | templex render -t - -d '{"name": "Bob"}' --strict
    templex render -l page.txt --driver postgres --root "$DSN"`

	HelpValidateUsage = `Check the directive structure of a template

Usage:
    templex validate [options]

Options:
    -t, --template <file>   Template file (use "-" for stdin)
    -F, --format <format>   Output format: text, json (default: text)
        --strict            Treat warnings as errors

Examples:
    templex validate -t page.txt
    templex validate -t page.txt --strict -F json`

	HelpVersionUsage = `Show version information

Usage:
    templex version [options]

Options:
    -F, --format <format>   Output format: text, json (default: text)`

	HelpHelpUsage = `Show help for a command

Usage:
    templex help [command]

Commands:
    render      Show help for render command
    validate    Show help for validate command
    version     Show help for version command`
)

// Version output format templates
const (
	VersionTextTemplate = "templex version %s\nCommit: %s\nBranch: %s\nBuilt: %s\nGo: %s"
	VersionUnknown      = "unknown"
	VersionsFileName    = "versions.yaml"
)

// Validation output format templates
const (
	ValidationTextSuccess      = "Template is valid"
	ValidationTextIssueHeader  = "Validation issues:"
	ValidationTextIssueFormat  = "  [%s] %s at line %d, column %d: %s"
	ValidationTextErrorSummary = "%d error(s), %d warning(s)"
)

// Severity names for output
const (
	SeverityNameError   = "ERROR"
	SeverityNameWarning = "WARNING"
)

// CLI metadata
const (
	CLIName = "templex"
)

// File permission constant
const (
	FilePermissions = 0644
)

// Format string constants
const (
	FmtErrorWithDetail = "%s: %s\n"
	FmtErrorWithCause  = "%s: %v\n"
	FmtNewline         = "\n"
	JSONIndent         = "  "
)
