package templex

import "time"

// Stage names for the built-in directive stages
const (
	StageNameInclude  = "include"
	StageNameRender   = "render"
	StageNameEach     = "each"
	StageNameIf       = "if"
	StageNameFunction = "function"
	StageNameVariable = "variable"
)

// Directive marker forms, used to rebuild placeholders
const (
	MarkerOpen         = "{{"
	MarkerClose        = "}}"
	MarkerIncludeOpen  = "{{#INCLUDE "
	MarkerRenderOpen   = "{{#RENDER "
	MarkerCallSuffix   = "()"
	PathSeparator      = "."
	SequenceOpen       = "["
	SequenceClose      = "]"
	MappingOpen        = "{"
	MappingClose       = "}"
	ElementSeparator   = ", "
	KeyValueSeparator  = ": "
	BoolTextTrue       = "true"
	BoolTextFalse      = "false"
	NumberFormatFlag   = 'f'
	NumberPrecisionAll = -1
	NumberBitSize      = 64
)

// Default configuration values
const (
	// DefaultMaxDepth bounds nested sub-renders (EACH bodies and RENDER
	// targets) so self-including templates fail instead of exhausting the stack.
	DefaultMaxDepth = 64
)

// Text source driver names
const (
	SourceDriverNameFilesystem = "filesystem"
	SourceDriverNameMemory     = "memory"
	SourceDriverNamePostgres   = "postgres"
)

// Filesystem source constants
const (
	FilesystemParentRef = ".."
)

// PostgreSQL source defaults
const (
	PostgresTablePrefix            = "templex_"
	PostgresTableSources           = "sources"
	PostgresTableMigrations        = "schema_migrations"
	PostgresDefaultMaxOpenConns    = 10
	PostgresDefaultMaxIdleConns    = 2
	PostgresDefaultConnMaxLifetime = 5 * time.Minute
	PostgresDefaultConnMaxIdleTime = 5 * time.Minute
	PostgresDefaultQueryTimeout    = 10 * time.Second
	PostgresDriverName             = "postgres"
)

// Data file formats and extensions
const (
	DataFormatJSON = "json"
	DataFormatYAML = "yaml"

	FileExtJSON  = ".json"
	FileExtJSONC = ".jsonc"
	FileExtYAML  = ".yaml"
	FileExtYML   = ".yml"
)

// Metadata keys for cuserr.WithMetadata
const (
	MetaKeyKind     = "kind"
	MetaKeyPath     = "path"
	MetaKeySegment  = "segment"
	MetaKeyReason   = "reason"
	MetaKeyStage    = "stage"
	MetaKeyIndex    = "index"
	MetaKeyLength   = "length"
	MetaKeyLocation = "location"
	MetaKeyDriver   = "driver"
	MetaKeyDepth    = "depth"
	MetaKeyMaxDepth = "max_depth"
	MetaKeyFormat   = "format"
	MetaKeyValue    = "value"
)

// Error kinds surfaced to callers
const (
	KindRender          = "render"
	KindIndexOutOfRange = "index_out_of_range"
)

// Failure reasons carried in MetaKeyReason
const (
	ReasonMissing      = "missing"
	ReasonNotIndexable = "not_indexable"
	ReasonNotIterable  = "not_iterable"
	ReasonNotInvocable = "not_invocable"
	ReasonCallFailed   = "call_failed"
	ReasonNotLocation  = "not_a_location"
	ReasonLoadFailed   = "load_failed"
	ReasonMaxDepth     = "max_depth"
)

// Log message constants
const (
	LogMsgEngineCreated     = "engine created"
	LogMsgRenderStart       = "starting render"
	LogMsgRenderEnd         = "render complete"
	LogMsgStageApplied      = "stage applied"
	LogMsgSubRender         = "sub-render"
	LogMsgStageInserted     = "stage inserted"
	LogMsgStageRemoved      = "stage removed"
	LogMsgFailureSuppressed = "directive failure suppressed"
	LogMsgConditionReduced  = "conditional block reduced"
	LogMsgConditionFallback = "conditional fallback match used"
	LogMsgConditionStalled  = "conditional reduction stalled"
	LogMsgEachExpanded      = "each block expanded"
	LogMsgSourceLoaded      = "source loaded"
)

// Log field names
const (
	LogFieldStage     = "stage"
	LogFieldDepth     = "depth"
	LogFieldLength    = "length"
	LogFieldPath      = "path"
	LogFieldCondition = "condition"
	LogFieldResult    = "result"
	LogFieldItems     = "items"
	LogFieldAlias     = "alias"
	LogFieldLocation  = "location"
	LogFieldIndex     = "index"
	LogFieldStages    = "stages"
)
