package scan

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/cardscan/pkg/contact"
	"github.com/dmitrymomot/cardscan/pkg/logger"
)

// RecordCreator persists a parsed contact record.
type RecordCreator interface {
	CreateRecord(ctx context.Context, rec contact.Record) (Created, error)
}

// ImageRecognizer extracts a candidate record from a photo of a card.
type ImageRecognizer interface {
	RecognizeImage(ctx context.Context, image []byte, contentType string) (*contact.Record, error)
}

// RecentScans remembers recently scanned payloads.
// Seen marks key and reports whether it was already marked; Forget unmarks it.
type RecentScans interface {
	Seen(ctx context.Context, key string) (bool, error)
	Forget(ctx context.Context, key string) error
}

// Created is the backend's answer to a record creation.
type Created struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
}

// Result describes a completed scan.
type Result struct {
	ScanID    uuid.UUID      `json:"scan_id"`
	RecordID  string         `json:"record_id"`
	CreatedAt time.Time      `json:"created_at"`
	Format    contact.Format `json:"format"`
	Record    contact.Record `json:"record"`
}

// Preview is a parsed record that was not persisted.
type Preview struct {
	Format contact.Format `json:"format"`
	Record contact.Record `json:"record"`
}

// FormatImage marks records produced by image recognition.
const FormatImage contact.Format = "image"

// Service coordinates parsing, deduplication and record creation.
type Service struct {
	creator    RecordCreator
	recognizer ImageRecognizer
	recent     RecentScans
	parser     *contact.Parser
	log        *slog.Logger
	newID      func() uuid.UUID
}

// Option configures a Service.
type Option func(*Service)

// WithLogger sets the service logger. The same logger receives parser
// diagnostics unless WithParser is used.
func WithLogger(l *slog.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.log = l
		}
	}
}

// WithParser overrides the contact parser.
func WithParser(p *contact.Parser) Option {
	return func(s *Service) {
		if p != nil {
			s.parser = p
		}
	}
}

// WithRecognizer enables image scans.
func WithRecognizer(r ImageRecognizer) Option {
	return func(s *Service) {
		s.recognizer = r
	}
}

// WithRecentScans enables duplicate detection.
func WithRecentScans(r RecentScans) Option {
	return func(s *Service) {
		s.recent = r
	}
}

// WithIDGenerator overrides the scan ID source.
func WithIDGenerator(fn func() uuid.UUID) Option {
	return func(s *Service) {
		if fn != nil {
			s.newID = fn
		}
	}
}

// NewService returns a Service that stores records through creator.
func NewService(creator RecordCreator, opts ...Option) *Service {
	s := &Service{
		creator: creator,
		log:     logger.Discard(),
		newID:   uuid.New,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.parser == nil {
		s.parser = contact.New(contact.WithLogger(s.log))
	}
	s.log = s.log.With(logger.Component("scan"))
	return s
}

// OCREnabled reports whether ScanImage can be used.
func (s *Service) OCREnabled() bool {
	return s.recognizer != nil
}

// Preview parses raw without persisting anything.
func (s *Service) Preview(raw string) (Preview, error) {
	rec, err := s.parser.Decode(raw)
	if err != nil {
		return Preview{}, errors.Join(ErrInvalidCode, err)
	}
	return Preview{Format: contact.Detect(raw), Record: *rec}, nil
}

// ScanCode parses a decoded QR payload and creates a record from it.
// It returns ErrInvalidCode when no record can be derived and
// ErrDuplicateScan when the same payload was scanned within the dedupe window.
func (s *Service) ScanCode(ctx context.Context, raw string) (Result, error) {
	scanID := s.newID()
	log := s.log.With(logger.ScanID(scanID))

	rec, err := s.parser.Decode(raw)
	if err != nil {
		log.InfoContext(ctx, "code rejected", logger.Error(err), logger.PayloadSize(len(raw)))
		return Result{}, errors.Join(ErrInvalidCode, err)
	}
	format := contact.Detect(raw)

	return s.create(ctx, log, scanID, payloadKey(raw), format, *rec)
}

// ScanImage sends a photo to the recognizer and creates a record from the
// result. The recognized record must carry a name.
func (s *Service) ScanImage(ctx context.Context, image []byte, contentType string) (Result, error) {
	if s.recognizer == nil {
		return Result{}, ErrOCRDisabled
	}
	scanID := s.newID()
	log := s.log.With(logger.ScanID(scanID))

	rec, err := s.recognizer.RecognizeImage(ctx, image, contentType)
	if err != nil {
		log.WarnContext(ctx, "image recognition failed", logger.Error(err))
		return Result{}, errors.Join(ErrRecognitionFailed, err)
	}
	if rec == nil || strings.TrimSpace(rec.Name) == "" {
		log.InfoContext(ctx, "image produced no named record")
		return Result{}, errors.Join(ErrInvalidCode, contact.ErrMissingName)
	}

	return s.create(ctx, log, scanID, digest(image), FormatImage, *rec.Clone())
}

func (s *Service) create(
	ctx context.Context,
	log *slog.Logger,
	scanID uuid.UUID,
	key string,
	format contact.Format,
	rec contact.Record,
) (Result, error) {
	if s.recent != nil {
		seen, err := s.recent.Seen(ctx, key)
		switch {
		case err != nil:
			// Lookup errors are logged and the scan proceeds.
			log.WarnContext(ctx, "recent scan lookup failed", logger.Error(err))
		case seen:
			log.InfoContext(ctx, "duplicate scan ignored", logger.PayloadFormat(format.String()))
			return Result{}, ErrDuplicateScan
		}
	}

	start := time.Now()
	created, err := s.creator.CreateRecord(ctx, rec)
	if err != nil {
		if s.recent != nil {
			if ferr := s.recent.Forget(ctx, key); ferr != nil {
				log.WarnContext(ctx, "failed to release recent scan", logger.Error(ferr))
			}
		}
		log.ErrorContext(ctx, "record creation failed", logger.Error(err), logger.Duration(time.Since(start)))
		return Result{}, errors.Join(ErrRecordCreation, err)
	}

	log.InfoContext(ctx, "record created",
		logger.RecordID(created.ID),
		logger.PayloadFormat(format.String()),
		logger.Duration(time.Since(start)),
	)
	return Result{
		ScanID:    scanID,
		RecordID:  created.ID,
		CreatedAt: created.CreatedAt,
		Format:    format,
		Record:    rec,
	}, nil
}

// payloadKey identifies a payload for deduplication. Surrounding whitespace
// does not make two scans distinct.
func payloadKey(raw string) string {
	return digest([]byte(strings.TrimSpace(raw)))
}

func digest(b []byte) string {
	sum := sha256.Sum256(b)
	return hex.EncodeToString(sum[:])
}
