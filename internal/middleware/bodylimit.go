package middleware

import "net/http"

// MaxBodyBytes caps request bodies at 250 MB, enough for a long episode.
const MaxBodyBytes = 250 << 20

// BodyLimit rejects request bodies larger than MaxBodyBytes. Reads past the
// cap fail, which surfaces as a bad-request from the multipart parser.
func BodyLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, MaxBodyBytes)
		next.ServeHTTP(w, r)
	})
}
