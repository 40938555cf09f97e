package logger

import (
	"time"
)

// Standard field keys for structured logging.
const (
	FieldComponent = "component"
	FieldCommand   = "command"
	FieldOperation = "operation"
	FieldArgs      = "args"
	FieldOutput    = "output"
	FieldConfig    = "config"
	FieldError     = "error"
	FieldDuration  = "duration_ms"
)

// Fields builds a map from alternating key-value pairs. Non-string keys and a
// trailing key without a value are dropped.
//
//	log.Debug("parsed", logger.Fields("layout", layout, "ok", ok))
func Fields(kvs ...any) map[string]any {
	m := make(map[string]any, len(kvs)/2)
	for i := 0; i < len(kvs)-1; i += 2 {
		if key, ok := kvs[i].(string); ok {
			m[key] = kvs[i+1]
		}
	}
	return m
}

// ErrorFields creates fields for an operation that failed.
func ErrorFields(op string, err error) map[string]any {
	return map[string]any{
		FieldOperation: op,
		FieldError:     err.Error(),
	}
}

// DurationFields creates fields for a timed operation.
func DurationFields(op string, d time.Duration) map[string]any {
	return map[string]any{
		FieldOperation: op,
		FieldDuration:  d.Milliseconds(),
	}
}

// MergeWithError adds an error field to fields, allocating when nil.
func MergeWithError(fields map[string]any, err error) map[string]any {
	if fields == nil {
		fields = make(map[string]any)
	}
	fields[FieldError] = err.Error()
	return fields
}
