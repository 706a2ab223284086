package binder

import (
	"fmt"
	"net/http"
	"reflect"
	"strconv"
	"strings"
)

// Query binds URL query parameters into struct fields tagged `query:"name"`.
// Only string and int fields are supported; a missing parameter leaves the
// field unchanged.
func Query() func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		rv := reflect.ValueOf(v)
		if rv.Kind() != reflect.Pointer || rv.IsNil() || rv.Elem().Kind() != reflect.Struct {
			return ErrInvalidTarget
		}
		rv = rv.Elem()
		rt := rv.Type()
		values := r.URL.Query()

		for i := range rt.NumField() {
			field := rt.Field(i)
			name, _, _ := strings.Cut(field.Tag.Get("query"), ",")
			if name == "" || name == "-" || !field.IsExported() {
				continue
			}
			if !values.Has(name) {
				continue
			}
			raw := values.Get(name)

			fv := rv.Field(i)
			switch fv.Kind() {
			case reflect.String:
				fv.SetString(raw)
			case reflect.Int, reflect.Int64, reflect.Int32:
				n, err := strconv.ParseInt(raw, 10, 64)
				if err != nil {
					return fmt.Errorf("%w: %s must be an integer", ErrFailedToParseQuery, name)
				}
				fv.SetInt(n)
			default:
				return fmt.Errorf("%w: unsupported field type %s for %s", ErrFailedToParseQuery, fv.Kind(), name)
			}
		}
		return nil
	}
}
