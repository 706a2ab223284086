package scan_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/cardscan/pkg/contact"
	"github.com/dmitrymomot/cardscan/svc/scan"
)

func TestRecordsClient(t *testing.T) {
	t.Parallel()

	t.Run("posts record with bearer token", func(t *testing.T) {
		t.Parallel()
		var got contact.Record
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/api/records", r.URL.Path)
			assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))

			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusCreated)
			_, _ = io.WriteString(w, `{"id":"r-42","created_at":"2026-03-01T12:00:00Z"}`)
		}))
		t.Cleanup(srv.Close)

		client, err := scan.NewRecordsClient(srv.URL+"/api/", "secret", scan.WithTimeout(time.Second))
		require.NoError(t, err)

		rec := contact.Record{Name: "Jane Doe", Email: str("jane@x.com")}
		created, err := client.CreateRecord(context.Background(), rec)
		require.NoError(t, err)
		assert.Equal(t, "r-42", created.ID)
		assert.Equal(t, createdAt, created.CreatedAt)
		assert.Equal(t, rec, got)
	})

	t.Run("error status", func(t *testing.T) {
		t.Parallel()
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Empty(t, r.Header.Get("Authorization"))
			http.Error(w, "nope", http.StatusUnauthorized)
		}))
		t.Cleanup(srv.Close)

		client, err := scan.NewRecordsClient(srv.URL, "", scan.WithHTTPClient(srv.Client()))
		require.NoError(t, err)
		_, err = client.CreateRecord(context.Background(), contact.Record{Name: "x"})
		assert.ErrorIs(t, err, scan.ErrUnexpectedStatus)
		assert.Contains(t, err.Error(), "401 nope")
	})

	t.Run("missing id", func(t *testing.T) {
		t.Parallel()
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = io.WriteString(w, `{}`)
		}))
		t.Cleanup(srv.Close)

		client, err := scan.NewRecordsClient(srv.URL, "")
		require.NoError(t, err)
		_, err = client.CreateRecord(context.Background(), contact.Record{Name: "x"})
		assert.ErrorIs(t, err, scan.ErrUnexpectedStatus)
	})

	t.Run("empty base url", func(t *testing.T) {
		t.Parallel()
		_, err := scan.NewRecordsClient("  ", "")
		assert.ErrorIs(t, err, scan.ErrMissingBaseURL)
	})
}

func TestOCRClient(t *testing.T) {
	t.Parallel()

	newServer := func(t *testing.T, status int, body string) *httptest.Server {
		t.Helper()
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "image/png", r.Header.Get("Content-Type"))
			data, _ := io.ReadAll(r.Body)
			assert.Equal(t, []byte("png-bytes"), data)
			w.WriteHeader(status)
			_, _ = io.WriteString(w, body)
		}))
		t.Cleanup(srv.Close)
		return srv
	}

	t.Run("recognized", func(t *testing.T) {
		t.Parallel()
		srv := newServer(t, http.StatusOK, `{"name":"Ann Lee","company":"Acme"}`)
		client, err := scan.NewOCRClient(srv.URL)
		require.NoError(t, err)

		rec, err := client.RecognizeImage(context.Background(), []byte("png-bytes"), "image/png")
		require.NoError(t, err)
		assert.Equal(t, &contact.Record{Name: "Ann Lee", Company: str("Acme")}, rec)
	})

	t.Run("nothing found", func(t *testing.T) {
		t.Parallel()
		srv := newServer(t, http.StatusNoContent, "")
		client, err := scan.NewOCRClient(srv.URL)
		require.NoError(t, err)

		rec, err := client.RecognizeImage(context.Background(), []byte("png-bytes"), "image/png")
		require.NoError(t, err)
		assert.Nil(t, rec)
	})

	t.Run("server error", func(t *testing.T) {
		t.Parallel()
		srv := newServer(t, http.StatusInternalServerError, "boom")
		client, err := scan.NewOCRClient(srv.URL)
		require.NoError(t, err)

		_, err = client.RecognizeImage(context.Background(), []byte("png-bytes"), "image/png")
		assert.ErrorIs(t, err, scan.ErrUnexpectedStatus)
	})
}
