package errors

// ErrorCode represents a machine-readable error code.
type ErrorCode string

// Input errors
const (
	// ErrCodeInvalidInput indicates the input is invalid.
	ErrCodeInvalidInput ErrorCode = "INVALID_INPUT"
	// ErrCodeMissingField indicates a required field is missing.
	ErrCodeMissingField ErrorCode = "MISSING_FIELD"
	// ErrCodeInvalidFormat indicates a value or format string could not be interpreted.
	ErrCodeInvalidFormat ErrorCode = "INVALID_FORMAT"
	// ErrCodeInvalidRange indicates numeric bounds that cannot describe a range.
	ErrCodeInvalidRange ErrorCode = "INVALID_RANGE"
)

// Internal errors
const (
	// ErrCodeInternal indicates an unexpected failure.
	ErrCodeInternal ErrorCode = "INTERNAL_ERROR"
)

var inputCodes = map[ErrorCode]bool{
	ErrCodeInvalidInput:  true,
	ErrCodeMissingField:  true,
	ErrCodeInvalidFormat: true,
	ErrCodeInvalidRange:  true,
}

// IsInputCode reports whether code blames the caller's arguments rather than
// the library.
func IsInputCode(code ErrorCode) bool {
	return inputCodes[code]
}
