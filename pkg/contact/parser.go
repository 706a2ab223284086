package contact

import (
	"context"
	"log/slog"
	"strings"

	"github.com/dmitrymomot/cardscan/pkg/logger"
)

// Parser decodes contact payloads and reports diagnostics to an optional
// logger. The zero value is not usable; create one with New.
type Parser struct {
	log *slog.Logger
}

// Option configures a Parser.
type Option func(*Parser)

// WithLogger sets the diagnostics logger. Nil loggers are ignored.
func WithLogger(l *slog.Logger) Option {
	return func(p *Parser) {
		if l != nil {
			p.log = l
		}
	}
}

// New returns a Parser. Without WithLogger diagnostics are discarded.
func New(opts ...Option) *Parser {
	p := &Parser{log: logger.Discard()}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

var defaultParser = New()

// Parse decodes raw with a silent parser. It returns nil when no record can
// be derived.
func Parse(raw string) *Record {
	return defaultParser.Parse(raw)
}

// Parse decodes raw and returns nil on any failure.
func (p *Parser) Parse(raw string) *Record {
	rec, _ := p.Decode(raw)
	return rec
}

// Decode detects the payload format and dispatches to exactly one decoder.
// On failure the record is nil and err is one of ErrNoData,
// ErrUnrecognizedFormat, ErrMissingName or ErrNoContactData.
func (p *Parser) Decode(raw string) (*Record, error) {
	format := Detect(raw)
	s := strings.TrimSpace(raw)

	var (
		rec *Record
		err error
	)
	switch format {
	case FormatEmpty:
		err = ErrNoData
	case FormatMeCard:
		if rec = DecodeMeCard(s); rec == nil {
			err = ErrMissingName
		}
	case FormatVCard:
		if rec = DecodeVCard(s); rec == nil {
			err = ErrMissingName
		}
	case FormatHeuristic:
		if rec = DecodeHeuristic(s); rec == nil {
			err = ErrNoContactData
		}
	case FormatBareName:
		rec = &Record{Name: s}
	default:
		err = ErrUnrecognizedFormat
	}

	p.log.LogAttrs(context.Background(), slog.LevelDebug, "contact payload decoded",
		logger.Component("contact"),
		logger.PayloadFormat(format.String()),
		logger.PayloadSize(len(s)),
		logger.Error(err),
	)
	return rec, err
}
