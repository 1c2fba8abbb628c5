package errors

import (
	"fmt"
	"net/http"
	"time"
)

// AppError is the custom error type for the application
type AppError struct {
	Raw       error
	HTTPCode  int
	Code      ErrorCode
	Message   string
	Details   map[string]string
	Timestamp time.Time
}

// Error implements error interface
func (e AppError) Error() string {
	if e.Raw != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code.String(), e.Message, e.Raw)
	}
	return fmt.Sprintf("[%s] %s", e.Code.String(), e.Message)
}

// WithDetail adds a detail to the error
func (e AppError) WithDetail(key, value string) AppError {
	if e.Details == nil {
		e.Details = make(map[string]string)
	}
	e.Details[key] = value
	return e
}

// General Errors

func ErrInternal(err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusInternalServerError,
		Code:     CodeInternal,
		Message:  "Internal server error",
	}
}

func ErrInvalidArgument(message string) AppError {
	return AppError{
		HTTPCode: http.StatusBadRequest,
		Code:     CodeInvalidArgument,
		Message:  message,
	}
}

func ErrNotFound(resource string) AppError {
	return AppError{
		HTTPCode: http.StatusNotFound,
		Code:     CodeNotFound,
		Message:  fmt.Sprintf("%s not found", resource),
	}
}

func ErrAlreadyExists(resource string) AppError {
	return AppError{
		HTTPCode: http.StatusConflict,
		Code:     CodeAlreadyExists,
		Message:  fmt.Sprintf("%s already exists", resource),
	}
}

func ErrForbidden(message string) AppError {
	return AppError{
		HTTPCode: http.StatusForbidden,
		Code:     CodeForbidden,
		Message:  message,
	}
}

func ErrUnauthenticated() AppError {
	return AppError{
		HTTPCode: http.StatusUnauthorized,
		Code:     CodeUnauthenticated,
		Message:  "Authentication required",
	}
}

func ErrInvalidPayload() AppError {
	return AppError{
		HTTPCode: http.StatusBadRequest,
		Code:     CodeInvalidPayload,
		Message:  "Invalid payload",
	}
}

// Authentication Errors

func ErrInvalidToken() AppError {
	return AppError{
		HTTPCode: http.StatusUnauthorized,
		Code:     CodeAuthInvalidToken,
		Message:  "Invalid authentication token",
	}
}

func ErrTokenExpired() AppError {
	return AppError{
		HTTPCode: http.StatusUnauthorized,
		Code:     CodeAuthTokenExpired,
		Message:  "Authentication token has expired",
	}
}

// Lesson Errors

func ErrLessonNotFound(lessonID string) AppError {
	return AppError{
		HTTPCode: http.StatusNotFound,
		Code:     CodeLessonNotFound,
		Message:  "Lesson not found",
	}.WithDetail("lesson_id", lessonID)
}

func ErrLessonJobNotFound(jobID string) AppError {
	return AppError{
		HTTPCode: http.StatusNotFound,
		Code:     CodeLessonJobNotFound,
		Message:  "Lesson job not found",
	}.WithDetail("job_id", jobID)
}

func ErrSegmentLocked(segment string) AppError {
	return AppError{
		HTTPCode: http.StatusBadRequest,
		Code:     CodeSegmentLocked,
		Message:  fmt.Sprintf("Segment %q has a fixed position and cannot be moved", segment),
	}
}

func ErrSegmentAlreadyPresent(segment string) AppError {
	return AppError{
		HTTPCode: http.StatusConflict,
		Code:     CodeSegmentAlreadyPresent,
		Message:  fmt.Sprintf("Segment %q can only appear once per lesson", segment),
	}
}

func ErrUnknownLanguage(code string) AppError {
	return AppError{
		HTTPCode: http.StatusBadRequest,
		Code:     CodeUnknownLanguage,
		Message:  "Unknown language code",
	}.WithDetail("language", code)
}

func ErrUnknownLocation(location string) AppError {
	return AppError{
		HTTPCode: http.StatusBadRequest,
		Code:     CodeUnknownLocation,
		Message:  "Unknown location",
	}.WithDetail("location", location)
}

// Generation Errors

func ErrGenerationFailed(err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusInternalServerError,
		Code:     CodeGenerationFailed,
		Message:  "Lesson generation failed",
	}
}

func ErrDialogueEmpty() AppError {
	return AppError{
		HTTPCode: http.StatusBadGateway,
		Code:     CodeDialogueEmpty,
		Message:  "Dialogue model returned no usable lines",
	}
}

func ErrSynthesisFailed(provider string, err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusBadGateway,
		Code:     CodeSynthesisFailed,
		Message:  "Speech synthesis failed",
	}.WithDetail("provider", provider)
}

// Audio Errors

func ErrAudioNotCached(key string) AppError {
	return AppError{
		HTTPCode: http.StatusNotFound,
		Code:     CodeAudioNotCached,
		Message:  "Section audio not cached",
	}.WithDetail("cache_key", key)
}

// Integration Errors

func ErrStorageFailed(operation string, err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusInternalServerError,
		Code:     CodeStorageFailed,
		Message:  fmt.Sprintf("Storage operation failed: %s", operation),
	}
}

func ErrCacheFailed(operation string, err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusInternalServerError,
		Code:     CodeCacheFailed,
		Message:  fmt.Sprintf("Cache operation failed: %s", operation),
	}
}

func ErrExternalAPIFailed(service string, err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusInternalServerError,
		Code:     CodeExternalAPIFailed,
		Message:  fmt.Sprintf("External API call failed: %s", service),
	}
}

// Database Errors

func ErrDBQueryFailed(query string, err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusInternalServerError,
		Code:     CodeDBQueryFailed,
		Message:  "Database query failed",
	}.WithDetail("query", query)
}
