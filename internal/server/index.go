package server

import (
	_ "embed"
	"net/http"
)

//go:embed index.html
var indexPage []byte

// IndexHandler serves the embedded demo page at the root path. The page
// opens a WebSocket connection and renders broadcast events as they arrive.
type IndexHandler struct{}

// Routes returns the HTTP routes this handler serves.
func (IndexHandler) Routes() []string {
	return []string{"GET /{$}"}
}

func (IndexHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(indexPage)
}
