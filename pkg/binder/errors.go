package binder

import "errors"

var (
	ErrUnsupportedMediaType = errors.New("unsupported media type")
	ErrMissingContentType   = errors.New("missing content type")
	ErrFailedToParseJSON    = errors.New("failed to parse JSON request body")
	ErrFailedToParseQuery   = errors.New("failed to parse query parameters")
	ErrFailedToReadBody     = errors.New("failed to read request body")
	ErrBodyTooLarge         = errors.New("request body too large")
	ErrInvalidTarget        = errors.New("binding target must be a non-nil pointer to a struct")
	// ErrBinderNotApplicable lets a binder step aside for the next one.
	ErrBinderNotApplicable = errors.New("binder not applicable")
)
