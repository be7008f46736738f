package interfaces

import "net/http"

// HTTPHandler is implemented by the transport layer handed to the HTTP server.
type HTTPHandler interface {
	ServeHTTP(w http.ResponseWriter, r *http.Request)
}
