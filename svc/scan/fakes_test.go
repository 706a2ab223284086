package scan_test

import (
	"context"
	"errors"
	"strconv"
	"sync"
	"time"

	"github.com/dmitrymomot/cardscan/pkg/contact"
	"github.com/dmitrymomot/cardscan/svc/scan"
)

var createdAt = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

type fakeCreator struct {
	mu      sync.Mutex
	records []contact.Record
	err     error
}

func (f *fakeCreator) CreateRecord(_ context.Context, rec contact.Record) (scan.Created, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return scan.Created{}, f.err
	}
	f.records = append(f.records, rec)
	return scan.Created{ID: "rec-" + strconv.Itoa(len(f.records)), CreatedAt: createdAt}, nil
}

func (f *fakeCreator) created() []contact.Record {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]contact.Record(nil), f.records...)
}

type fakeRecognizer struct {
	rec *contact.Record
	err error
}

func (f fakeRecognizer) RecognizeImage(context.Context, []byte, string) (*contact.Record, error) {
	return f.rec, f.err
}

type failingRecent struct{}

func (failingRecent) Seen(context.Context, string) (bool, error) {
	return false, errors.New("store down")
}

func (failingRecent) Forget(context.Context, string) error {
	return errors.New("store down")
}

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func str(s string) *string { return &s }
