// Package contact turns raw text payloads scanned from business-card QR codes
// into a canonical contact Record.
//
// Three encodings are understood:
//
//   - MECARD: a single line of "KEY:value;" fields after a "MECARD:" marker.
//   - vCard: line-oriented "KEY;PARAMS:value" entries inside a BEGIN:VCARD
//     envelope.
//   - Unstructured text: best-effort extraction of an e-mail address, phone
//     number, website and name from free-form lines.
//
// A payload that matches none of them but is short enough is treated as a bare
// name.
//
// # Usage
//
//	import "github.com/dmitrymomot/cardscan/pkg/contact"
//
//	rec := contact.Parse("MECARD:N:Jane Doe;TEL:555-1234;;")
//	if rec == nil {
//		// show "invalid or unsupported code"
//	}
//
// A Parser carries an optional logger for diagnostics and exposes Decode, which
// reports why a payload was rejected:
//
//	p := contact.New(contact.WithLogger(log))
//	rec, err := p.Decode(payload)
//	switch {
//	case errors.Is(err, contact.ErrNoData):
//	case errors.Is(err, contact.ErrMissingName):
//	}
//
// # Error Handling
//
// Parsing never panics. Parse reports failure by returning nil; Decode returns
// one of the sentinel errors ErrNoData, ErrUnrecognizedFormat, ErrMissingName
// or ErrNoContactData.
//
// # Concurrency
//
// All functions are pure. A Parser is immutable after New and safe for
// concurrent use.
package contact
