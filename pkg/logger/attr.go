package logger

import (
	"log/slog"
	"time"
)

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// RequestID records the request identifier under the key "request_id".
// An empty id yields an empty Attr.
func RequestID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("request_id", id)
}

// ScanID records the scan identifier under the key "scan_id".
func ScanID(id any) slog.Attr {
	if id == nil {
		return slog.Attr{}
	}
	return slog.Any("scan_id", id)
}

// RecordID records the identifier assigned by the record store.
func RecordID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("record_id", id)
}

// PayloadFormat records the detected payload encoding under "payload_format".
func PayloadFormat(format string) slog.Attr {
	return slog.String("payload_format", format)
}

// PayloadSize records the payload length in bytes.
func PayloadSize(n int) slog.Attr {
	return slog.Int("payload_size", n)
}

// Duration records a duration under the key "duration".
func Duration(d time.Duration) slog.Attr {
	return slog.Duration("duration", d)
}
