package handler

import (
	"net/http"
	"strconv"
)

type blobResponse struct {
	contentType string
	data        []byte
	maxAge      int
}

func (b blobResponse) Render(w http.ResponseWriter, r *http.Request) error {
	w.Header().Set("Content-Type", b.contentType)
	w.Header().Set("Content-Length", strconv.Itoa(len(b.data)))
	if b.maxAge > 0 {
		w.Header().Set("Cache-Control", "private, max-age="+strconv.Itoa(b.maxAge))
	}
	w.WriteHeader(http.StatusOK)
	_, err := w.Write(b.data)
	return err
}

// Blob writes data with the given content type, for example a PNG image.
// A positive maxAge, in seconds, adds a private Cache-Control header.
func Blob(contentType string, data []byte, maxAge int) Response {
	return blobResponse{contentType: contentType, data: data, maxAge: maxAge}
}
