package status

import (
	"context"
	"net/http"

	"github.com/gorilla/csrf"
	"github.com/gorilla/mux"

	"github.com/trezor/trezorlib-go/internal/logs"
	"github.com/trezor/trezorlib-go/trezorapi/trezortypes"
)

// This package serves the status page on /status/ and the
// log file at /status/log.gz with the detailed log

// Enumerator lists connected devices.
type Enumerator interface {
	Enumerate(ctx context.Context) ([]trezortypes.EnumerateEntry, error)
}

type status struct {
	devices                             Enumerator
	version                             string
	shortMemoryWriter, longMemoryWriter *logs.MemoryWriter
	logger                              *logs.Logger
}

// DefaultCSRFKey is used when the caller has no key of its own. The
// status page only guards a log download.
const DefaultCSRFKey = "u8c1f0v2cyzq6k3h9w5e7n4r0tb2jd6m"

func ServeStatusRedirect(r *mux.Router) {
	r.HandleFunc("/", redirect)
	r.Use(OriginCheck(map[string]string{
		"/": "",
	}))
}

func redirect(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/status/", http.StatusMovedPermanently)
}

// ServeStatus mounts the status page on r. origin is the gateway's own
// origin, the only one allowed to ask for the log.
func ServeStatus(
	r *mux.Router,
	d Enumerator,
	v string,
	mw, dmw *logs.MemoryWriter,
	origin string,
	csrfKey []byte,
) {
	status := &status{
		devices:           d,
		version:           v,
		shortMemoryWriter: mw,
		longMemoryWriter:  dmw,
		logger:            logs.New(dmw),
	}
	r.Methods("GET").Path("/").HandlerFunc(status.statusPage)
	r.Methods("POST").Path("/log.gz").HandlerFunc(status.statusGzip)

	r.Use(csrf.Protect(csrfKey, csrf.Secure(false)))
	r.Use(OriginCheck(map[string]string{
		"/status/":       "",
		"/status/log.gz": origin,
	}))
}

func (s *status) statusGzip(w http.ResponseWriter, r *http.Request) {
	s.logger.Log("building gzip")

	gzip, err := s.longMemoryWriter.Gzip(s.version + "\nCurrent log:\n")
	if err != nil {
		respondError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/gzip")
	w.Header().Set("Content-Disposition", `attachment; filename="log.gz"`)

	_, err = w.Write(gzip)
	if err != nil {
		s.logger.Logf("writing gzip: %s", err)
	}
}

func (s *status) statusPage(w http.ResponseWriter, r *http.Request) {
	s.logger.Log("building status page")

	var templateErr error
	tdevs, err := s.statusEnumerate(r.Context())
	if err != nil {
		templateErr = err
	}

	log, err := s.shortMemoryWriter.String(s.version + "\n")
	if err != nil {
		respondError(w, err)
		return
	}

	data := &statusTemplateData{
		Version:     s.version,
		Devices:     tdevs,
		DeviceCount: len(tdevs),
		Log:         log,
		IsError:     templateErr != nil,
		CSRFField:   csrf.TemplateField(r),
	}
	if templateErr != nil {
		data.Error = templateErr.Error()
	}

	err = statusTemplate.Execute(w, data)
	if err != nil {
		s.logger.Logf("executing template: %s", err)
	}
}

func respondError(w http.ResponseWriter, err error) {
	http.Error(w, err.Error(), http.StatusBadRequest)
}

func (s *status) statusEnumerate(ctx context.Context) ([]statusTemplateDevice, error) {
	e, err := s.devices.Enumerate(ctx)
	if err != nil {
		s.logger.Logf("enumerate err %s", err)
		return nil, err
	}

	tdevs := make([]statusTemplateDevice, 0, len(e))
	for _, dev := range e {
		tdevs = append(tdevs, makeStatusTemplateDevice(dev))
	}
	return tdevs, nil
}

func makeStatusTemplateDevice(dev trezortypes.EnumerateEntry) statusTemplateDevice {
	var session string
	if dev.Session != nil {
		session = *dev.Session
	}
	return statusTemplateDevice{
		Path:    dev.Path,
		Type:    dev.Type,
		Used:    dev.Session != nil,
		Session: session,
	}
}
