package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
	"testing"
)

func TestAppError_New_Success(t *testing.T) {
	err := New(ErrCodeInvalidInput, "bad value")
	if err.Code != ErrCodeInvalidInput {
		t.Errorf("expected code %s, got %s", ErrCodeInvalidInput, err.Code)
	}
	if err.Message != "bad value" {
		t.Errorf("expected message 'bad value', got %q", err.Message)
	}
}

func TestAppError_InvalidInput_Success(t *testing.T) {
	err := InvalidInput("data", "not base64")
	if err.Code != ErrCodeInvalidInput {
		t.Errorf("expected INVALID_INPUT, got %s", err.Code)
	}
	if err.Details["field"] != "data" {
		t.Errorf("expected field=data, got %v", err.Details["field"])
	}
	if !strings.Contains(err.Message, "not base64") {
		t.Errorf("expected reason in message, got %q", err.Message)
	}
}

func TestAppError_InvalidInput_EmptyField(t *testing.T) {
	err := InvalidInput("", "whatever")
	if _, ok := err.Details["field"]; ok {
		t.Error("expected no 'field' key in details when field is empty")
	}
}

func TestAppError_InvalidRange_Details(t *testing.T) {
	err := InvalidRange("min cannot be greater than max", 10, 1)
	if err.Code != ErrCodeInvalidRange {
		t.Errorf("expected INVALID_RANGE, got %s", err.Code)
	}
	if err.Details["min"] != 10 || err.Details["max"] != 1 {
		t.Errorf("expected min=10 max=1 in details, got %v", err.Details)
	}
}

func TestAppError_WithCause_Chain(t *testing.T) {
	cause := fmt.Errorf("root cause")
	err := InvalidFormat("format", "strftime").WithCause(cause)
	if err.Cause != cause {
		t.Error("expected cause to be set via WithCause")
	}
	if !strings.Contains(err.Error(), "root cause") {
		t.Errorf("Error() should contain cause, got %q", err.Error())
	}
	if !stderrors.Is(err, cause) {
		t.Error("expected errors.Is to find the cause")
	}
}

func TestAppError_WithDetails_Merge(t *testing.T) {
	err := MissingField("name").WithDetails(map[string]any{"extra": "info"})
	if err.Details["extra"] != "info" {
		t.Errorf("expected extra=info in details")
	}
	if err.Details["field"] != "name" {
		t.Error("expected original details to be preserved")
	}
}

func TestAppError_WithDetails_Nil(t *testing.T) {
	err := Internal(nil).WithDetails(nil)
	if err.Details == nil {
		t.Fatal("expected Details map to be initialized even with nil input")
	}
}

func TestAppError_WithDetail_NilMap(t *testing.T) {
	err := &AppError{}
	err.WithDetail("key", "value")
	if err.Details["key"] != "value" {
		t.Errorf("expected key=value, got %v", err.Details["key"])
	}
	err.WithDetail("key", "other")
	if err.Details["key"] != "other" {
		t.Errorf("expected overwrite, got %v", err.Details["key"])
	}
}

func TestAppError_Unwrap_Success(t *testing.T) {
	cause := fmt.Errorf("underlying")
	if Internal(cause).Unwrap() != cause {
		t.Error("Unwrap should return the cause")
	}
	if Validation("x").Unwrap() != nil {
		t.Error("Unwrap should return nil when no cause")
	}
}

func TestAppError_Constructors_Table(t *testing.T) {
	tests := []struct {
		name string
		err  *AppError
		code ErrorCode
	}{
		{"Validation", Validation("bad input"), ErrCodeInvalidInput},
		{"MissingField", MissingField("name"), ErrCodeMissingField},
		{"InvalidFormat", InvalidFormat("date", "RFC3339"), ErrCodeInvalidFormat},
		{"InvalidRange", InvalidRange("empty", 1.0, 1.0), ErrCodeInvalidRange},
		{"Internal", Internal(nil), ErrCodeInternal},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if tc.err.Code != tc.code {
				t.Errorf("expected code %s, got %s", tc.code, tc.err.Code)
			}
			if tc.err.Error() == "" {
				t.Error("Error() should not be empty")
			}
		})
	}
}

func TestErrorCode_IsInputCode_Table(t *testing.T) {
	for _, code := range []ErrorCode{ErrCodeInvalidInput, ErrCodeMissingField, ErrCodeInvalidFormat, ErrCodeInvalidRange} {
		if !IsInputCode(code) {
			t.Errorf("expected %s to be an input code", code)
		}
	}
	if IsInputCode(ErrCodeInternal) {
		t.Errorf("expected %s to NOT be an input code", ErrCodeInternal)
	}
}

func TestAppError_AsAppError_Success(t *testing.T) {
	wrapped := fmt.Errorf("wrap: %w", Internal(nil))
	got, ok := AsAppError(wrapped)
	if !ok {
		t.Fatal("expected AsAppError to succeed for wrapped AppError")
	}
	if got.Code != ErrCodeInternal {
		t.Errorf("expected INTERNAL_ERROR, got %s", got.Code)
	}
	if _, ok := AsAppError(fmt.Errorf("plain")); ok {
		t.Error("expected AsAppError to return false for non-AppError")
	}
	if !IsAppError(wrapped) {
		t.Error("expected IsAppError to return true for wrapped AppError")
	}
}

func TestWrap_NilReturnsNil(t *testing.T) {
	if Wrap(nil) != nil {
		t.Error("Wrap(nil) should return nil")
	}
}

func TestWrap_AppErrorPassthrough(t *testing.T) {
	orig := MissingField("id")
	if got := Wrap(fmt.Errorf("outer: %w", orig)); got != orig {
		t.Error("Wrap should return the wrapped AppError unchanged")
	}
}

func TestWrap_PlainError(t *testing.T) {
	plain := fmt.Errorf("something broke")
	got := Wrap(plain)
	if got.Code != ErrCodeInternal {
		t.Errorf("expected INTERNAL_ERROR, got %s", got.Code)
	}
	if got.Cause != plain {
		t.Error("expected cause to be the original error")
	}
}
