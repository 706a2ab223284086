// Package binder decodes HTTP requests into typed request structs for
// handler.Wrap.
//
//   - JSON / JSONWithLimit: strict application/json decoding with a size cap.
//   - Query: `query:"name"` tagged string and int fields.
//   - Body: raw bodies (images) for types implementing BodySetter.
//
// Binders return sentinel errors (ErrUnsupportedMediaType, ErrBodyTooLarge,
// ...) wrapped with details; handler maps them to HTTP status codes.
package binder
