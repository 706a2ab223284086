// Package qrcode renders scanned payloads back into QR code images so the
// client can show the code it just read next to the decoded contact.
//
// It is a thin wrapper around github.com/skip2/go-qrcode that validates input
// and clamps the image size.
//
//	png, err := qrcode.Generate(payload, 256)
//	uri, err := qrcode.GenerateDataURI(payload, 256)
//
// Errors are the sentinels ErrEmptyContent, ErrContentTooLong and
// ErrFailedToGenerateQRCode.
package qrcode
