package httpserver

import (
	"net/http"
	"time"
)

// New builds an HTTP server around handler. Every operation here is
// CPU-bound (hashing, in-memory lookups), so tight read/write deadlines are
// safe and keep slow clients from pinning connections.
func New(addr string, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
}
