package bridge

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trezor/trezorlib-go/internal/core"
	"github.com/trezor/trezorlib-go/internal/logs"
	"github.com/trezor/trezorlib-go/internal/message"
	"github.com/trezor/trezorlib-go/trezorapi/trezorpb"
	"github.com/trezor/trezorlib-go/trezorapi/trezorpb/marshal"
)

// fakeBridge is a trezord with one device that answers Ping with
// Success carrying the same text.
type fakeBridge struct {
	mutex    sync.Mutex
	version  string
	session  string
	released []string
	queue    chan []byte
}

func (f *fakeBridge) router(t *testing.T) http.Handler {
	r := mux.NewRouter()
	reply := func(w http.ResponseWriter, v interface{}) {
		assert.NoError(t, json.NewEncoder(w).Encode(v))
	}
	r.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		reply(w, map[string]string{"version": f.version})
	})
	r.HandleFunc("/enumerate", func(w http.ResponseWriter, r *http.Request) {
		f.mutex.Lock()
		defer f.mutex.Unlock()
		var session *string
		if f.session != "" {
			s := f.session
			session = &s
		}
		reply(w, []map[string]interface{}{{
			"path": "1", "vendor": 0x534c, "product": 1, "debug": false, "session": session,
		}})
	})
	r.HandleFunc("/acquire/{path}/{prev}", func(w http.ResponseWriter, r *http.Request) {
		f.mutex.Lock()
		defer f.mutex.Unlock()
		if mux.Vars(r)["path"] != "1" {
			w.WriteHeader(http.StatusBadRequest)
			reply(w, map[string]string{"error": "device not found"})
			return
		}
		f.session = "7"
		reply(w, map[string]string{"session": f.session})
	})
	r.HandleFunc("/release/{session}", func(w http.ResponseWriter, r *http.Request) {
		f.mutex.Lock()
		defer f.mutex.Unlock()
		f.released = append(f.released, mux.Vars(r)["session"])
		f.session = ""
		reply(w, map[string]string{})
	})
	r.HandleFunc("/post/{session}", func(w http.ResponseWriter, r *http.Request) {
		answer, err := f.answer(r.Body)
		if !assert.NoError(t, err) {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		f.queue <- answer
	})
	r.HandleFunc("/read/{session}", func(w http.ResponseWriter, r *http.Request) {
		select {
		case out := <-f.queue:
			_, err := w.Write(out)
			assert.NoError(t, err)
		case <-r.Context().Done():
		}
	})
	return r
}

// answer echoes a posted Ping as Success.
func (f *fakeBridge) answer(body io.Reader) ([]byte, error) {
	hex, err := io.ReadAll(body)
	if err != nil {
		return nil, err
	}
	msg, err := message.FromBridge(hex, nil)
	if err != nil {
		return nil, err
	}
	pbmsg, err := marshal.Unmarshal(msg)
	if err != nil {
		return nil, err
	}
	ping, ok := pbmsg.(*trezorpb.Ping)
	if !ok {
		return nil, fmt.Errorf("unexpected %s", pbmsg.MessageType())
	}
	back, err := marshal.Marshal(&trezorpb.Success{Message: ping.Message})
	if err != nil {
		return nil, err
	}
	return message.ToBridge(back, nil)
}

func startFake(t *testing.T, version string) (*fakeBridge, *httptest.Server) {
	f := &fakeBridge{version: version, queue: make(chan []byte, 4)}
	srv := httptest.NewServer(f.router(t))
	t.Cleanup(srv.Close)
	return f, srv
}

func TestOldBridgeIsRefused(t *testing.T) {
	_, srv := startFake(t, "1.2.0")
	_, err := New(context.Background(), srv.URL, logs.New(io.Discard))
	assert.Error(t, err)
}

func TestSessionOverBridge(t *testing.T) {
	f, srv := startFake(t, "2.0.27")
	b, err := New(context.Background(), srv.URL+"/", logs.New(io.Discard))
	require.NoError(t, err)
	assert.Equal(t, "2.0.27", b.Version)

	entries, err := b.Enumerate(context.Background())
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Nil(t, entries[0].Session)

	_, err = b.Acquire(context.Background(), "2", "", false)
	var serr *StatusError
	require.ErrorAs(t, err, &serr)
	assert.Equal(t, "device not found", serr.Message)

	id, err := b.Acquire(context.Background(), "1", "", false)
	require.NoError(t, err)
	assert.Equal(t, "7", id)

	s := core.NewSession(b.Channel(id, false))
	res, err := s.Call(context.Background(), &trezorpb.Ping{Message: trezorpb.String("over bridge")}, nil)
	require.NoError(t, err)
	assert.Equal(t, "over bridge", res.(*trezorpb.Success).GetMessage())

	require.NoError(t, s.Close())
	f.mutex.Lock()
	assert.Equal(t, []string{"7"}, f.released)
	f.mutex.Unlock()
}
