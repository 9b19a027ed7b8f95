package api

import (
	"net/http"
	"regexp"
	"strings"
)

// Based on https://github.com/gorilla/handlers/blob/master/cors.go
// Copyright (c) 2013 The Gorilla Handlers Authors, BSD license

// OriginValidator takes an origin string and returns whether or not that origin is allowed.
type OriginValidator func(string) bool

type cors struct {
	h                      http.Handler
	allowedOriginValidator OriginValidator
}

var (
	allowedHeaders = []string{"Accept", "Accept-Language", "Content-Language", "Origin", "Content-Type"}
	allowedMethods = []string{"POST", "OPTIONS"}
)

const (
	corsOptionMethod         string = "OPTIONS"
	corsAllowOriginHeader    string = "Access-Control-Allow-Origin"
	corsRequestMethodHeader  string = "Access-Control-Request-Method"
	corsRequestHeadersHeader string = "Access-Control-Request-Headers"
	corsOriginHeader         string = "Origin"
)

func (ch *cors) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	origin := r.Header.Get(corsOriginHeader)

	if !ch.allowedOriginValidator(origin) {
		w.WriteHeader(http.StatusForbidden)
		return
	}

	if r.Method == corsOptionMethod {
		if _, ok := r.Header[corsRequestMethodHeader]; !ok {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		method := r.Header.Get(corsRequestMethodHeader)
		if !isMatch(method, allowedMethods) {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}

		requested := r.Header.Get(corsRequestHeadersHeader)
		if requested != "" {
			for _, v := range strings.Split(requested, ",") {
				if !isMatch(http.CanonicalHeaderKey(strings.TrimSpace(v)), allowedHeaders) {
					w.WriteHeader(http.StatusForbidden)
					return
				}
			}
		}
	}

	if origin != "" {
		w.Header().Set(corsAllowOriginHeader, origin)
	}

	if r.Method == corsOptionMethod {
		return
	}
	ch.h.ServeHTTP(w, r)
}

func CORS(validator OriginValidator) func(http.Handler) http.Handler {
	return func(h http.Handler) http.Handler {
		return &cors{
			h:                      h,
			allowedOriginValidator: validator,
		}
	}
}

func isMatch(needle string, haystack []string) bool {
	for _, v := range haystack {
		if v == needle {
			return true
		}
	}
	return false
}

// corsValidator allows pages served from this machine and from trezor.io.
// Requests without an Origin come from programs, not browsers, and are
// allowed as well.
func corsValidator() OriginValidator {
	tregex := regexp.MustCompile(`^https://([[:alnum:]\-_]+\.)*trezor\.io$`)
	lregex := regexp.MustCompile(`^https?://(localhost|127\.0\.0\.1)(:[[:digit:]]{1,5})?$`)
	return func(origin string) bool {
		if origin == "" {
			return true
		}
		return lregex.MatchString(origin) || tregex.MatchString(origin)
	}
}
