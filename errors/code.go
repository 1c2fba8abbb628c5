package errors

// ErrorCode is a stable numeric code returned to API clients alongside the
// HTTP status. Codes are grouped by concern: 0-99 general, 100+ auth,
// 200+ lessons, 300+ generation, 400+ audio, 500+ integrations, 600+ database.
type ErrorCode int32

const (
	CodeOK              ErrorCode = 0
	CodeInternal        ErrorCode = 1
	CodeInvalidArgument ErrorCode = 2
	CodeNotFound        ErrorCode = 3
	CodeAlreadyExists   ErrorCode = 4
	CodeForbidden       ErrorCode = 5
	CodeUnauthenticated ErrorCode = 6
	CodeInvalidPayload  ErrorCode = 7

	CodeAuthInvalidToken ErrorCode = 100
	CodeAuthTokenExpired ErrorCode = 101

	CodeLessonNotFound        ErrorCode = 200
	CodeLessonJobNotFound     ErrorCode = 201
	CodeSegmentLocked         ErrorCode = 202
	CodeSegmentAlreadyPresent ErrorCode = 203
	CodeUnknownLanguage       ErrorCode = 204
	CodeUnknownLocation       ErrorCode = 205

	CodeGenerationFailed ErrorCode = 300
	CodeDialogueEmpty    ErrorCode = 301
	CodeSynthesisFailed  ErrorCode = 302

	CodeAudioNotCached ErrorCode = 400

	CodeStorageFailed     ErrorCode = 500
	CodeCacheFailed       ErrorCode = 501
	CodeExternalAPIFailed ErrorCode = 502

	CodeDBQueryFailed ErrorCode = 600
)

var codeNames = map[ErrorCode]string{
	CodeOK:                    "OK",
	CodeInternal:              "INTERNAL",
	CodeInvalidArgument:       "INVALID_ARGUMENT",
	CodeNotFound:              "NOT_FOUND",
	CodeAlreadyExists:         "ALREADY_EXISTS",
	CodeForbidden:             "FORBIDDEN",
	CodeUnauthenticated:       "UNAUTHENTICATED",
	CodeInvalidPayload:        "INVALID_PAYLOAD",
	CodeAuthInvalidToken:      "AUTH_INVALID_TOKEN",
	CodeAuthTokenExpired:      "AUTH_TOKEN_EXPIRED",
	CodeLessonNotFound:        "LESSON_NOT_FOUND",
	CodeLessonJobNotFound:     "LESSON_JOB_NOT_FOUND",
	CodeSegmentLocked:         "SEGMENT_LOCKED",
	CodeSegmentAlreadyPresent: "SEGMENT_ALREADY_PRESENT",
	CodeUnknownLanguage:       "UNKNOWN_LANGUAGE",
	CodeUnknownLocation:       "UNKNOWN_LOCATION",
	CodeGenerationFailed:      "GENERATION_FAILED",
	CodeDialogueEmpty:         "DIALOGUE_EMPTY",
	CodeSynthesisFailed:       "SYNTHESIS_FAILED",
	CodeAudioNotCached:        "AUDIO_NOT_CACHED",
	CodeStorageFailed:         "STORAGE_FAILED",
	CodeCacheFailed:           "CACHE_FAILED",
	CodeExternalAPIFailed:     "EXTERNAL_API_FAILED",
	CodeDBQueryFailed:         "DB_QUERY_FAILED",
}

// String returns the symbolic name for the code.
func (c ErrorCode) String() string {
	if name, ok := codeNames[c]; ok {
		return name
	}
	return "UNKNOWN"
}
