package preview

import (
	"bytes"
	"encoding/json"
	"net/http"
	"strconv"
	"time"
)

// Index serves the embedded bytes with the configured content type and encoding.
func Index(asset Asset) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", asset.ContentType)
		if asset.ContentEncoding != "" {
			w.Header().Set("Content-Encoding", asset.ContentEncoding)
		}
		w.Header().Set("Content-Length", strconv.Itoa(len(asset.Data)))
		w.WriteHeader(http.StatusOK)
		if r.Method == http.MethodHead {
			return
		}
		_, _ = w.Write(asset.Data)
	}
}

// Source serves the header text.
func Source(src []byte) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/x-c; charset=utf-8")
		http.ServeContent(w, r, "header.h", time.Time{}, bytes.NewReader(src))
	})
}

// Health returns a health handler that responds with {"ok": true}.
func Health() http.HandlerFunc {
	var success = map[string]bool{"ok": true}

	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(success)
	}
}
