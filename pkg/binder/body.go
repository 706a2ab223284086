package binder

import (
	"errors"
	"fmt"
	"io"
	"net/http"
)

// BodySetter is implemented by request types that take the raw request body,
// such as uploaded images.
type BodySetter interface {
	SetBody(contentType string, data []byte)
}

// Body reads the raw request body, up to limit bytes, into a BodySetter.
// Targets that do not implement BodySetter get ErrBinderNotApplicable.
func Body(limit int64) func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		setter, ok := v.(BodySetter)
		if !ok {
			return ErrBinderNotApplicable
		}
		data, err := io.ReadAll(io.LimitReader(r.Body, limit+1))
		if err != nil {
			return errors.Join(ErrFailedToReadBody, err)
		}
		if int64(len(data)) > limit {
			return fmt.Errorf("%w: max %d bytes", ErrBodyTooLarge, limit)
		}
		setter.SetBody(r.Header.Get("Content-Type"), data)
		return nil
	}
}
