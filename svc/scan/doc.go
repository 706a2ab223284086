// Package scan turns scanned business-card codes and photos into contact
// records.
//
// A Service parses the decoded QR payload with pkg/contact, drops repeated
// scans of the same payload inside a short window, and forwards the record to
// a RecordCreator. Photos go to an ImageRecognizer instead of the parser.
//
//	records, err := scan.NewRecordsClient(cfg.RecordsAPIURL, cfg.RecordsAPIToken)
//	if err != nil {
//		return err
//	}
//	svc := scan.NewService(records,
//		scan.WithRecentScans(scan.NewMemoryRecentScans(cfg.DedupeSize, cfg.DedupeTTL)),
//		scan.WithLogger(log),
//	)
//	res, err := svc.ScanCode(ctx, payload)
//	if errors.Is(err, scan.ErrInvalidCode) {
//		// show "invalid or unsupported code"
//	}
//
// NewHTTPHandler exposes the service over HTTP with typed handlers from the
// handler package.
package scan
