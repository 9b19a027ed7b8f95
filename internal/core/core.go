// Package core holds the device manager and the session engine: the part
// that turns one host request into the whole conversation with a device,
// answering prompts and streaming data until the device is done.
//
// Buses are abstract interfaces here; internal/usb implements them.
package core

import (
	"context"
	"fmt"
	"reflect"
	"sort"
	"strconv"
	"sync"
	"time"

	"github.com/trezor/trezorlib-go/internal/logs"
	"github.com/trezor/trezorlib-go/trezorapi/trezortypes"
)

type Bus interface {
	Enumerate() ([]Info, error)
	Connect(path string, debug bool) (Device, error)
	Has(path string) bool
	Close()
}

type Info struct {
	Path      string
	VendorID  uint16
	ProductID uint16
	Type      trezortypes.DeviceType
	Debug     bool // has debug enabled?
}

type EnumerateEntries []trezortypes.EnumerateEntry

func (entries EnumerateEntries) Len() int {
	return len(entries)
}
func (entries EnumerateEntries) Less(i, j int) bool {
	return entries[i].Path < entries[j].Path
}
func (entries EnumerateEntries) Swap(i, j int) {
	entries[i], entries[j] = entries[j], entries[i]
}

// Core keeps track of connected devices and the sessions open on them.
type Core struct {
	bus Bus

	normalSessions map[string]*Session
	debugSessions  map[string]*Session
	sessionsMutex  sync.Mutex

	callsInProgress int        // bus is not enumerated while a call runs
	callMutex       sync.Mutex // guards callsInProgress and lastInfos
	lastInfos       []Info

	latestSessionID int

	timeout time.Duration
	log     *logs.Logger
}

func New(bus Bus, log *logs.Logger, timeout time.Duration) *Core {
	return &Core{
		bus:            bus,
		normalSessions: make(map[string]*Session),
		debugSessions:  make(map[string]*Session),
		timeout:        timeout,
		log:            log,
	}
}

func (c *Core) Close() {
	c.sessionsMutex.Lock()
	var all []*Session
	for _, debug := range []bool{false, true} {
		for _, s := range c.sessions(debug) {
			all = append(all, s)
		}
	}
	c.sessionsMutex.Unlock()

	for _, s := range all {
		if err := s.Close(); err != nil {
			c.log.Logf("closing session %s: %s", s.id, err)
		}
	}
	c.bus.Close()
}

func (c *Core) Enumerate() ([]trezortypes.EnumerateEntry, error) {
	c.sessionsMutex.Lock()
	defer c.sessionsMutex.Unlock()

	// use saved info if a call is in progress, otherwise enumerate
	c.callMutex.Lock()
	infos := c.lastInfos
	if c.callsInProgress == 0 {
		busInfos, err := c.bus.Enumerate()
		if err != nil {
			c.callMutex.Unlock()
			return nil, err
		}
		infos = busInfos
		c.lastInfos = infos
	}
	c.callMutex.Unlock()

	entries := c.createEnumerateEntries(infos)
	c.releaseDisconnected(infos, false)
	c.releaseDisconnected(infos, true)
	return entries, nil
}

func (c *Core) createEnumerateEntries(infos []Info) EnumerateEntries {
	entries := make(EnumerateEntries, 0, len(infos))
	for _, info := range infos {
		e := trezortypes.EnumerateEntry{
			Path:    info.Path,
			Vendor:  info.VendorID,
			Product: info.ProductID,
			Type:    info.Type,
			Debug:   info.Debug,
		}
		if ss := c.findSession(info.Path, false); ss != nil {
			id := ss.id
			e.Session = &id
		}
		entries = append(entries, e)
	}
	sort.Sort(entries)
	return entries
}

func (c *Core) sessions(debug bool) map[string]*Session {
	if debug {
		return c.debugSessions
	}
	return c.normalSessions
}

// findSession needs sessionsMutex held.
func (c *Core) findSession(path string, debug bool) *Session {
	for _, ss := range c.sessions(debug) {
		if ss.path == path {
			return ss
		}
	}
	return nil
}

func (c *Core) releaseDisconnected(infos []Info, debug bool) {
	for ssid, ss := range c.sessions(debug) {
		connected := false
		for _, info := range infos {
			if ss.path == info.Path {
				connected = true
			}
		}
		if !connected {
			c.log.Logf("releasing disconnected device %s", ssid)
			delete(c.sessions(debug), ssid)
			ss.detach()
			// just log, they are disconnected anyway
			if err := ss.Close(); err != nil {
				c.log.Logf("error on releasing disconnected device: %s", err)
			}
		}
	}
}

// Listen waits until the enumeration differs from entries, ctx ends,
// or about five minutes pass, and returns the latest enumeration.
func (c *Core) Listen(ctx context.Context, entries []trezortypes.EnumerateEntry) ([]trezortypes.EnumerateEntry, error) {
	const (
		iterMax   = 600
		iterDelay = 500 * time.Millisecond
	)

	sort.Sort(EnumerateEntries(entries))

	for i := 0; i < iterMax; i++ {
		e, err := c.Enumerate()
		if err != nil {
			return nil, err
		}
		if !reflect.DeepEqual(strip(entries), strip(e)) {
			return e, nil
		}
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(iterDelay):
		}
	}
	return entries, nil
}

// strip drops what is not compared across Listen calls.
func strip(entries []trezortypes.EnumerateEntry) []trezortypes.EnumerateEntry {
	res := make([]trezortypes.EnumerateEntry, len(entries))
	copy(res, entries)
	for i := range res {
		res[i].Type = 0
	}
	return res
}

// Acquire opens a session on the device at path. prev must name the
// session currently open there, if any; it is closed first.
func (c *Core) Acquire(path, prev string, debug bool) (*Session, error) {
	c.sessionsMutex.Lock()
	defer c.sessionsMutex.Unlock()

	c.log.Logf("acquire %s, prev %q", path, prev)

	prevSession := ""
	if ss := c.findSession(path, debug); ss != nil {
		prevSession = ss.id
	}
	if prevSession != prev {
		return nil, ErrWrongPrevSession
	}

	if prev != "" {
		ss := c.sessions(debug)[prev]
		delete(c.sessions(debug), prev)
		ss.detach()
		if err := ss.Close(); err != nil {
			return nil, err
		}
	}

	dev, err := c.tryConnect(path, debug)
	if err != nil {
		return nil, err
	}

	c.latestSessionID++
	id := strconv.Itoa(c.latestSessionID)
	if debug {
		id = "debug" + id
	}

	s := NewSession(
		NewFramedChannel(dev, c.log),
		Named(id, path, debug),
		RoundTimeout(c.timeout),
		WithLogger(c.log),
	)
	s.busy = c.busy
	s.onClose = c.forget

	c.log.Logf("acquire - new session is %s", id)
	c.sessions(debug)[id] = s
	return s, nil
}

// Release closes the session with the given id.
func (c *Core) Release(id string, debug bool) error {
	c.sessionsMutex.Lock()
	s := c.sessions(debug)[id]
	c.sessionsMutex.Unlock()
	if s == nil {
		return ErrSessionNotFound
	}
	return s.Close()
}

func (c *Core) forget(s *Session) {
	c.sessionsMutex.Lock()
	defer c.sessionsMutex.Unlock()
	delete(c.sessions(s.debug), s.id)
}

func (c *Core) busy(b bool) {
	c.callMutex.Lock()
	defer c.callMutex.Unlock()
	if b {
		c.callsInProgress++
	} else {
		c.callsInProgress--
	}
}

// A freshly plugged device sometimes refuses the first open.
// Try 3 times with a 100ms delay.
func (c *Core) tryConnect(path string, debug bool) (Device, error) {
	tries := 0
	for {
		dev, err := c.bus.Connect(path, debug)
		if err == nil {
			return dev, nil
		}
		if tries >= 3 {
			return nil, fmt.Errorf("connecting %s: %w", path, err)
		}
		c.log.Logf("connect %s failed, retrying: %s", path, err)
		tries++
		time.Sleep(100 * time.Millisecond)
	}
}
