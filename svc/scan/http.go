package scan

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/cardscan/handler"
	"github.com/dmitrymomot/cardscan/pkg/binder"
	"github.com/dmitrymomot/cardscan/pkg/logger"
	"github.com/dmitrymomot/cardscan/pkg/qrcode"
	"github.com/dmitrymomot/cardscan/pkg/validator"
)

var imageContentTypes = []string{"image/png", "image/jpeg", "image/webp"}

// CodeRequest carries a decoded QR payload.
type CodeRequest struct {
	Payload string `json:"payload"`
}

func (r CodeRequest) validate(maxBytes int) error {
	return validator.Apply(
		validator.RequiredString("payload", r.Payload),
		validator.MaxLenString("payload", r.Payload, maxBytes),
	)
}

// ImageRequest carries an uploaded card photo.
type ImageRequest struct {
	ContentType string
	Data        []byte
}

// SetBody implements binder.BodySetter.
func (r *ImageRequest) SetBody(contentType string, data []byte) {
	mediaType, _, _ := strings.Cut(contentType, ";")
	r.ContentType = strings.ToLower(strings.TrimSpace(mediaType))
	r.Data = data
}

func (r ImageRequest) validate() error {
	return validator.Apply(
		validator.RequiredBytes("image", r.Data),
		validator.InList("content_type", r.ContentType, imageContentTypes),
	)
}

// QRPreviewRequest selects the payload to render as a QR image.
type QRPreviewRequest struct {
	Payload string `query:"payload"`
	Size    int    `query:"size"`
}

// HTTPHandler exposes a Service over HTTP.
type HTTPHandler struct {
	svc          *Service
	cfg          Config
	log          *slog.Logger
	errorHandler handler.ErrorHandler[handler.Context]
}

// NewHTTPHandler returns the HTTP adapter for svc. Zero limits in cfg fall
// back to the environment defaults.
func NewHTTPHandler(svc *Service, cfg Config, log *slog.Logger) *HTTPHandler {
	if log == nil {
		log = logger.Discard()
	}
	if cfg.MaxPayloadBytes <= 0 {
		cfg.MaxPayloadBytes = 4096
	}
	if cfg.MaxImageBytes <= 0 {
		cfg.MaxImageBytes = 5 << 20
	}
	if cfg.QRPreviewSize <= 0 {
		cfg.QRPreviewSize = qrcode.DefaultSize
	}
	return &HTTPHandler{
		svc:          svc,
		cfg:          cfg,
		log:          log,
		errorHandler: handler.JSONErrorHandler[handler.Context](log),
	}
}

// Handle returns a router with the scan endpoints, meant to be mounted
// under /v1.
func (h *HTTPHandler) Handle() http.Handler {
	r := chi.NewRouter()

	// JSON bodies carry the payload plus envelope overhead.
	jsonLimit := int64(h.cfg.MaxPayloadBytes) + 1024

	r.Post("/scans/code", handler.Wrap(h.scanCode,
		handler.WithBinders[handler.Context, CodeRequest](binder.JSONWithLimit(jsonLimit)),
		handler.WithErrorHandler[handler.Context, CodeRequest](h.errorHandler),
	))
	r.Post("/scans/preview", handler.Wrap(h.preview,
		handler.WithBinders[handler.Context, CodeRequest](binder.JSONWithLimit(jsonLimit)),
		handler.WithErrorHandler[handler.Context, CodeRequest](h.errorHandler),
	))
	r.Post("/scans/image", handler.Wrap(h.scanImage,
		handler.WithBinders[handler.Context, *ImageRequest](imageBinder(h.cfg.MaxImageBytes)),
		handler.WithErrorHandler[handler.Context, *ImageRequest](h.errorHandler),
	))
	r.Get("/codes/preview.png", handler.Wrap(h.qrPreview,
		handler.WithBinders[handler.Context, QRPreviewRequest](binder.Query()),
		handler.WithErrorHandler[handler.Context, QRPreviewRequest](h.errorHandler),
	))

	return r
}

// imageBinder allocates the request and fills it from the raw body.
func imageBinder(limit int64) handler.Bind {
	body := binder.Body(limit)
	return func(r *http.Request, v any) error {
		target, ok := v.(**ImageRequest)
		if !ok {
			return binder.ErrInvalidTarget
		}
		*target = &ImageRequest{}
		return body(r, *target)
	}
}

func (h *HTTPHandler) scanCode(ctx handler.Context, req CodeRequest) handler.Response {
	if err := req.validate(h.cfg.MaxPayloadBytes); err != nil {
		return handler.JSONError(err)
	}
	res, err := h.svc.ScanCode(ctx, req.Payload)
	if err != nil {
		return handler.JSONError(httpError(err))
	}
	return handler.JSON(res, handler.WithJSONStatus(http.StatusCreated))
}

func (h *HTTPHandler) preview(ctx handler.Context, req CodeRequest) handler.Response {
	if err := req.validate(h.cfg.MaxPayloadBytes); err != nil {
		return handler.JSONError(err)
	}
	p, err := h.svc.Preview(req.Payload)
	if err != nil {
		return handler.JSONError(httpError(err))
	}
	return handler.JSON(p)
}

func (h *HTTPHandler) scanImage(ctx handler.Context, req *ImageRequest) handler.Response {
	if !h.svc.OCREnabled() {
		return handler.JSONError(httpError(ErrOCRDisabled))
	}
	if err := req.validate(); err != nil {
		return handler.JSONError(err)
	}
	res, err := h.svc.ScanImage(ctx, req.Data, req.ContentType)
	if err != nil {
		return handler.JSONError(httpError(err))
	}
	return handler.JSON(res, handler.WithJSONStatus(http.StatusCreated))
}

func (h *HTTPHandler) qrPreview(ctx handler.Context, req QRPreviewRequest) handler.Response {
	size := req.Size
	if size <= 0 {
		size = h.cfg.QRPreviewSize
	}
	png, err := qrcode.Generate(req.Payload, size)
	switch {
	case errors.Is(err, qrcode.ErrEmptyContent):
		return handler.JSONError(validator.Apply(validator.RequiredString("payload", req.Payload)))
	case errors.Is(err, qrcode.ErrContentTooLong):
		return handler.JSONError(validator.Apply(
			validator.MaxLenString("payload", req.Payload, qrcode.MaxContentLength),
		))
	case err != nil:
		h.log.ErrorContext(ctx, "qr preview failed", logger.Error(err))
		return handler.JSONError(err)
	}
	return handler.Blob("image/png", png, 300)
}

// httpError maps service errors to HTTP errors with client-facing messages.
func httpError(err error) error {
	switch {
	case errors.Is(err, ErrInvalidCode):
		return handler.ErrUnprocessableEntity.WithMessage(ErrInvalidCode.Error())
	case errors.Is(err, ErrDuplicateScan):
		return handler.ErrConflict.WithMessage(ErrDuplicateScan.Error())
	case errors.Is(err, ErrOCRDisabled):
		return handler.ErrServiceUnavailable.WithMessage(ErrOCRDisabled.Error())
	case errors.Is(err, ErrRecordCreation), errors.Is(err, ErrRecognitionFailed):
		return errors.Join(err, handler.ErrBadGateway)
	}
	return err
}
