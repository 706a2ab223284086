package contact

import "errors"

var (
	// ErrNoData is returned for empty or whitespace-only payloads.
	ErrNoData = errors.New("no data")
	// ErrUnrecognizedFormat is returned when a payload matches no encoding and
	// is too long to be taken as a bare name.
	ErrUnrecognizedFormat = errors.New("unrecognized format")
	// ErrMissingName is returned when a MECARD or vCard payload yields no name.
	ErrMissingName = errors.New("structured payload has no name")
	// ErrNoContactData is returned when free-form text contains no name,
	// e-mail, phone or website.
	ErrNoContactData = errors.New("no contact data found")
)
