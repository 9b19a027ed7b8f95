// Package server is the local HTTP gateway started by "trezorctl serve".
package server

import (
	"fmt"
	"io"
	"net/http"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"

	"github.com/trezor/trezorlib-go/internal/logs"
	"github.com/trezor/trezorlib-go/internal/server/api"
	"github.com/trezor/trezorlib-go/internal/server/status"
)

const DefaultAddr = "127.0.0.1:21327"

type serverPrivate struct {
	*http.Server
}

type Server struct {
	serverPrivate

	writer io.Writer
}

type Config struct {
	Addr    string
	Version string
	// CSRFKey protects the log download; 32 bytes.
	CSRFKey []byte
}

func New(
	d api.Devices,
	stderrWriter io.Writer,
	shortWriter *logs.MemoryWriter,
	longWriter *logs.MemoryWriter,
	c Config,
) *Server {
	if c.Addr == "" {
		c.Addr = DefaultAddr
	}
	if c.CSRFKey == nil {
		c.CSRFKey = []byte(status.DefaultCSRFKey)
	}

	allWriter := io.MultiWriter(stderrWriter, shortWriter, longWriter)
	logger := logs.New(longWriter)
	logger.Log("starting")

	hs := &http.Server{
		Addr: c.Addr,
	}
	s := &Server{
		serverPrivate: serverPrivate{
			Server: hs,
		},
		writer: allWriter,
	}

	r := mux.NewRouter()
	statusRouter := r.PathPrefix("/status").Subrouter()
	postRouter := r.Methods("POST").Subrouter()
	redirectRouter := r.Methods("GET").Path("/").Subrouter()

	status.ServeStatus(statusRouter, d, c.Version, shortWriter, longWriter, "http://"+c.Addr, c.CSRFKey)
	api.ServeAPI(postRouter, d, c.Version, logger)
	status.ServeStatusRedirect(redirectRouter)

	var h http.Handler = r

	// Log after the request is done, in the Apache format.
	h = handlers.LoggingHandler(allWriter, h)
	// Log when the request is received.
	h = s.logRequest(h)
	// A panicking handler must not take the gateway down with it.
	h = handlers.RecoveryHandler(handlers.RecoveryLogger(logger), handlers.PrintRecoveryStack(true))(h)

	hs.Handler = h

	logger.Log("server created")
	return s
}

func (s *Server) logRequest(handler http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		text := fmt.Sprintf("%s %s\n", r.Method, r.URL)
		_, err := s.writer.Write([]byte(text))
		if err != nil {
			// give up, just print on stdout
			fmt.Println(err)
		}
		handler.ServeHTTP(w, r)
	})
}

func (s *Server) Run() error {
	return s.ListenAndServe()
}
