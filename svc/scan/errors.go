package scan

import "errors"

var (
	ErrInvalidCode       = errors.New("invalid or unsupported code")
	ErrDuplicateScan     = errors.New("code was already scanned")
	ErrOCRDisabled       = errors.New("image recognition is not configured")
	ErrRecognitionFailed = errors.New("image recognition failed")
	ErrRecordCreation    = errors.New("failed to create record")
	ErrDedupeUnavailable = errors.New("recent scan store unavailable")
	ErrUnexpectedStatus  = errors.New("unexpected response status")
	ErrMissingBaseURL    = errors.New("base URL is required")
)
