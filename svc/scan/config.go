package scan

import "time"

// Config holds the scan service settings loaded from the environment.
type Config struct {
	RecordsAPIURL     string        `env:"RECORDS_API_URL,required"`
	RecordsAPIToken   string        `env:"RECORDS_API_TOKEN"`
	RecordsAPITimeout time.Duration `env:"RECORDS_API_TIMEOUT" envDefault:"10s"`
	OCRAPIURL         string        `env:"OCR_API_URL"`
	DedupeSize        int           `env:"SCAN_DEDUPE_SIZE" envDefault:"256"`
	DedupeTTL         time.Duration `env:"SCAN_DEDUPE_TTL" envDefault:"30s"`
	QRPreviewSize     int           `env:"QR_PREVIEW_SIZE" envDefault:"256"`
	MaxPayloadBytes   int           `env:"MAX_PAYLOAD_BYTES" envDefault:"4096"`
	MaxImageBytes     int64         `env:"MAX_IMAGE_BYTES" envDefault:"5242880"`
}

// OCREnabled reports whether image scans are available.
func (c Config) OCREnabled() bool {
	return c.OCRAPIURL != ""
}
