package templex

import (
	"errors"
	"strconv"

	"github.com/itsatony/go-cuserr"
)

// Error message constants - ALL error messages must be constants (NO MAGIC STRINGS)
const (
	// Render errors
	ErrMsgMissingPath     = "path not found in context"
	ErrMsgVariableMissing = "variable could not be resolved"
	ErrMsgFunctionMissing = "function could not be resolved"
	ErrMsgNotInvocable    = "value is not invocable"
	ErrMsgCallFailed      = "function call failed"
	ErrMsgNotIterable     = "value is not iterable"
	ErrMsgConditionFailed = "condition could not be resolved"
	ErrMsgIncludeFailed   = "include target could not be loaded"
	ErrMsgRenderFailed    = "render target could not be loaded"
	ErrMsgMaxDepth        = "maximum render depth exceeded"

	// Stage list errors
	ErrMsgIndexOutOfRange = "stage index out of range"
	ErrMsgNilStage        = "stage cannot be nil"

	// Template construction errors
	ErrMsgNoTemplateInput   = "either template text or a source location must be provided"
	ErrMsgBothTemplateInput = "only one of template text or source location may be provided"
	ErrMsgNoSource          = "no text source configured"
	ErrMsgNegativeMaxDepth  = "max depth cannot be negative"
	ErrMsgUnknownStage      = "unknown stage name"

	// Source errors
	ErrMsgSourceNotFound       = "source location not found"
	ErrMsgSourceReadFailed     = "source could not be read"
	ErrMsgSourceInvalidLoc     = "invalid source location"
	ErrMsgSourceTraversal      = "source location escapes the root directory"
	ErrMsgSourceClosed         = "source is closed"
	ErrMsgSourceDriverNotFound = "source driver not found"
	ErrMsgSourceDriverExists   = "source driver already registered"
	ErrMsgSourceDriverNil      = "source driver is nil"

	// PostgreSQL source errors
	ErrMsgPostgresEmptyConnString  = "PostgreSQL connection string is empty"
	ErrMsgPostgresConnectionFailed = "failed to connect to PostgreSQL"
	ErrMsgPostgresQueryFailed      = "PostgreSQL query failed"
	ErrMsgPostgresMigrationFailed  = "PostgreSQL migration failed"

	// Data errors
	ErrMsgDataParseFailed   = "context data could not be parsed"
	ErrMsgDataReadFailed    = "context data file could not be read"
	ErrMsgDataNotMapping    = "context data must be a mapping at the top level"
	ErrMsgDataUnknownFormat = "unknown context data format"
)

// Error code constants for categorization
const (
	ErrCodeRender     = "TEMPLEX_RENDER"
	ErrCodeIndex      = "TEMPLEX_INDEX"
	ErrCodeValidation = "TEMPLEX_VALIDATION"
	ErrCodeSource     = "TEMPLEX_SOURCE"
	ErrCodeData       = "TEMPLEX_DATA"
)

// NewMissingPathError creates the resolution failure for a path whose segment
// is absent or cannot be indexed.
func NewMissingPathError(path, segment, reason string) error {
	return cuserr.NewNotFoundError(MetaKeyPath, ErrMsgMissingPath).
		WithMetadata(MetaKeyKind, KindRender).
		WithMetadata(MetaKeyPath, path).
		WithMetadata(MetaKeySegment, segment).
		WithMetadata(MetaKeyReason, reason)
}

// NewRenderError creates a render failure raised by a stage.
// Metadata of a wrapped templex error (path, segment, reason) is carried over.
func NewRenderError(msg, stage, path string, cause error) error {
	var err *cuserr.CustomError
	if cause != nil {
		err = cuserr.WrapStdError(cause, ErrCodeRender, msg)
	} else {
		err = cuserr.NewValidationError(ErrCodeRender, msg)
	}

	err = err.
		WithMetadata(MetaKeyKind, KindRender).
		WithMetadata(MetaKeyStage, stage).
		WithMetadata(MetaKeyPath, path)

	for _, key := range []string{MetaKeySegment, MetaKeyReason} {
		if v, ok := ErrorMetadata(cause, key); ok {
			err = err.WithMetadata(key, v)
		}
	}
	return err
}

// NewReasonError creates a render failure with an explicit reason and no cause.
func NewReasonError(msg, stage, path, reason string) error {
	return cuserr.NewValidationError(ErrCodeRender, msg).
		WithMetadata(MetaKeyKind, KindRender).
		WithMetadata(MetaKeyStage, stage).
		WithMetadata(MetaKeyPath, path).
		WithMetadata(MetaKeyReason, reason)
}

// NewCallFailedError creates the failure for an invocable that returned an error.
func NewCallFailedError(stage, path string, cause error) error {
	return cuserr.WrapStdError(cause, ErrCodeRender, ErrMsgCallFailed).
		WithMetadata(MetaKeyKind, KindRender).
		WithMetadata(MetaKeyStage, stage).
		WithMetadata(MetaKeyPath, path).
		WithMetadata(MetaKeyReason, ReasonCallFailed)
}

// NewLoadFailedError creates the failure for an include or render target that
// could not be read from the text source.
func NewLoadFailedError(msg, stage, path, location string, cause error) error {
	return cuserr.WrapStdError(cause, ErrCodeRender, msg).
		WithMetadata(MetaKeyKind, KindRender).
		WithMetadata(MetaKeyStage, stage).
		WithMetadata(MetaKeyPath, path).
		WithMetadata(MetaKeyLocation, location).
		WithMetadata(MetaKeyReason, ReasonLoadFailed)
}

// NewMaxDepthError creates the failure for sub-renders nested beyond the limit.
func NewMaxDepthError(depth, maxDepth int) error {
	return cuserr.NewValidationError(ErrCodeRender, ErrMsgMaxDepth).
		WithMetadata(MetaKeyKind, KindRender).
		WithMetadata(MetaKeyReason, ReasonMaxDepth).
		WithMetadata(MetaKeyDepth, strconv.Itoa(depth)).
		WithMetadata(MetaKeyMaxDepth, strconv.Itoa(maxDepth))
}

// NewIndexOutOfRangeError creates the failure for stage list mutation with an
// invalid index.
func NewIndexOutOfRangeError(index, length int) error {
	return cuserr.NewValidationError(ErrCodeIndex, ErrMsgIndexOutOfRange).
		WithMetadata(MetaKeyKind, KindIndexOutOfRange).
		WithMetadata(MetaKeyIndex, strconv.Itoa(index)).
		WithMetadata(MetaKeyLength, strconv.Itoa(length))
}

// NewValidationError creates a template construction error.
func NewValidationError(msg string) error {
	return cuserr.NewValidationError(ErrCodeValidation, msg)
}

// NewConfigError creates an engine configuration error naming the offending
// setting.
func NewConfigError(msg, key, value string) error {
	return cuserr.NewValidationError(ErrCodeValidation, msg).
		WithMetadata(key, value)
}

// NewSourceNotFoundError creates an error for a location the source does not hold.
func NewSourceNotFoundError(location string, cause error) error {
	var err *cuserr.CustomError
	if cause != nil {
		err = cuserr.WrapStdError(cause, ErrCodeSource, ErrMsgSourceNotFound)
	} else {
		err = cuserr.NewNotFoundError(MetaKeyLocation, ErrMsgSourceNotFound)
	}
	return err.
		WithMetadata(MetaKeyLocation, location).
		WithMetadata(MetaKeyReason, ReasonMissing)
}

// NewSourceError creates a generic source failure.
func NewSourceError(msg, location string, cause error) error {
	var err *cuserr.CustomError
	if cause != nil {
		err = cuserr.WrapStdError(cause, ErrCodeSource, msg)
	} else {
		err = cuserr.NewValidationError(ErrCodeSource, msg)
	}
	return err.WithMetadata(MetaKeyLocation, location)
}

// NewSourceDriverError creates a driver registry failure.
func NewSourceDriverError(msg, driver string) error {
	return cuserr.NewValidationError(ErrCodeSource, msg).
		WithMetadata(MetaKeyDriver, driver)
}

// NewDataError creates a context data loading failure.
func NewDataError(msg, format string, cause error) error {
	var err *cuserr.CustomError
	if cause != nil {
		err = cuserr.WrapStdError(cause, ErrCodeData, msg)
	} else {
		err = cuserr.NewValidationError(ErrCodeData, msg)
	}
	return err.WithMetadata(MetaKeyFormat, format)
}

// ErrorMetadata returns the metadata value stored under key on a templex error.
func ErrorMetadata(err error, key string) (string, bool) {
	if err == nil {
		return "", false
	}
	var customErr *cuserr.CustomError
	if !errors.As(err, &customErr) {
		return "", false
	}
	return customErr.GetMetadata(key)
}

// IsRenderError reports whether err is a render failure.
func IsRenderError(err error) bool {
	kind, ok := ErrorMetadata(err, MetaKeyKind)
	return ok && kind == KindRender
}

// IsIndexOutOfRange reports whether err is a stage index failure.
func IsIndexOutOfRange(err error) bool {
	kind, ok := ErrorMetadata(err, MetaKeyKind)
	return ok && kind == KindIndexOutOfRange
}

// IsSourceNotFound reports whether err is a missing source location.
func IsSourceNotFound(err error) bool {
	_, hasLoc := ErrorMetadata(err, MetaKeyLocation)
	reason, ok := ErrorMetadata(err, MetaKeyReason)
	return hasLoc && ok && reason == ReasonMissing
}
