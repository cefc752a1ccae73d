// Package errors provides error code constants for cccards.
// Error codes are organized by category for consistent handling and lookup.
package errors

// -----------------------------------------------------------------------------
// Input Error Codes
// -----------------------------------------------------------------------------
// Use these codes for errors opening or reading input CSV files.

const (
	// ErrInputNotFound indicates an input CSV file does not exist.
	ErrInputNotFound = "INPUT_NOT_FOUND"

	// ErrInputReadFailed indicates an input CSV file exists but could not
	// be read (permissions, IO failure mid-read).
	ErrInputReadFailed = "INPUT_READ_FAILED"
)

// -----------------------------------------------------------------------------
// Validation Error Codes
// -----------------------------------------------------------------------------
// Use these codes for malformed CSV content and invalid flag values.
// A row either yields a valid (label, weight) record or the run terminates;
// there is no partial acceptance.

const (
	// ErrMalformedRow indicates a CSV row could not be parsed at all.
	// Usually a quoting error or a delimiter mismatch.
	ErrMalformedRow = "MALFORMED_ROW"

	// ErrMissingLabel indicates a row has no label column or an empty label.
	ErrMissingLabel = "MISSING_LABEL"

	// ErrBadWeight indicates a row's weight is non-numeric or non-positive.
	ErrBadWeight = "BAD_WEIGHT"

	// ErrInvalidArgument indicates a flag or config value is out of range,
	// e.g. a negative wildcard count or a multi-character delimiter.
	ErrInvalidArgument = "INVALID_ARGUMENT"
)

// -----------------------------------------------------------------------------
// Configuration Error Codes
// -----------------------------------------------------------------------------
// Use these codes for errors related to the optional YAML config file.

const (
	// ErrConfigNotFound indicates an explicitly requested config file
	// does not exist.
	ErrConfigNotFound = "CONFIG_NOT_FOUND"

	// ErrConfigReadFailed indicates the config file exists but is not
	// readable (permissions, etc).
	ErrConfigReadFailed = "CONFIG_READ_FAILED"

	// ErrConfigParseFailed indicates the config file could not be parsed.
	// Usually a YAML syntax error or invalid structure.
	ErrConfigParseFailed = "CONFIG_PARSE_FAILED"

	// ErrConfigInvalid indicates configuration values are invalid.
	// Field values don't meet validation requirements.
	ErrConfigInvalid = "CONFIG_INVALID"

	// ErrConfigWriteFailed indicates the config file could not be written.
	ErrConfigWriteFailed = "CONFIG_WRITE_FAILED"
)

// -----------------------------------------------------------------------------
// Render and Output Error Codes
// -----------------------------------------------------------------------------

const (
	// ErrRenderFailed indicates the PDF document could not be built.
	ErrRenderFailed = "RENDER_FAILED"

	// ErrOutputWriteFailed indicates the finished PDF could not be written
	// to the output path.
	ErrOutputWriteFailed = "OUTPUT_WRITE_FAILED"
)
