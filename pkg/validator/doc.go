// Package validator provides declarative request validation.
//
// A Rule couples a Check func with translation-friendly error metadata.
// Apply evaluates rules and aggregates failures into ValidationErrors, which
// implements error and can be rendered per field with Map:
//
//	err := validator.Apply(
//	    validator.RequiredString("payload", req.Payload),
//	    validator.MaxLenString("payload", req.Payload, 4096),
//	)
//	if ve := validator.ExtractValidationErrors(err); ve != nil {
//	    details := ve.Map()
//	}
package validator
