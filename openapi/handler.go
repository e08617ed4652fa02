package openapi

import (
	"context"
	"net/http"

	"github.com/getkin/kin-openapi/openapi3"
)

// Handler returns an http.Handler that serves s as JSON at the prefix root and
// at docs.json below it. The document is validated once, up front.
//
//	http.Handle("/docs/", openapi.HandlerMust("/docs/", doc))
func Handler(prefix string, s *openapi3.T) (http.Handler, error) {
	if err := s.Validate(context.Background()); err != nil {
		return nil, err
	}

	specJSON, err := s.MarshalJSON()
	if err != nil {
		return nil, err
	}

	return http.StripPrefix(prefix, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "", "/", "docs.json", "/docs.json":
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write(specJSON)
		default:
			http.NotFound(w, r)
		}
	})), nil
}

// HandlerMust is like Handler but panics on error.
func HandlerMust(prefix string, s *openapi3.T) http.Handler {
	h, err := Handler(prefix, s)
	if err != nil {
		panic(err)
	}
	return h
}
