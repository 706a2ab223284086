// Package handler provides type-safe HTTP handlers for the cardscan API.
//
// A HandlerFunc receives a Context and an already bound request value and
// returns a Response. Wrap adapts it to http.HandlerFunc, running binders from
// pkg/binder, decorators and the configured ErrorHandler.
//
// Responses:
//
//   - JSON / JSONError render the {data, meta, error} envelope.
//   - Blob writes raw bytes such as PNG previews.
//
// Errors are mapped to status codes by type: validator.ValidationErrors
// become 422 with per-field details, HTTPError values use their own code, and
// binder errors map to 400, 413 or 415. Anything else is a 500 with a generic
// message.
package handler
