package notify

import (
	"net/http"
	"time"
)

// NewServer returns an HTTP server exposing the hub at path
func NewServer(addr, path string, hub *Hub) *http.Server {
	mux := http.NewServeMux()
	mux.Handle(path, hub)
	return &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}
}
