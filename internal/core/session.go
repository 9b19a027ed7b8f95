package core

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/trezor/trezorlib-go/internal/logs"
	pb "github.com/trezor/trezorlib-go/trezorapi/trezorpb"
	"github.com/trezor/trezorlib-go/trezorapi/trezorpb/marshal"
	"github.com/trezor/trezorlib-go/trezorapi/trezortypes"
)

const (
	DefaultRoundTimeout = 60 * time.Second

	// MaxSimpleSignTxSize bounds the encoded SimpleSignTx request.
	// Anything bigger has to go through SignTx.
	MaxSimpleSignTxSize = 16 << 10

	// how many prompts or stream requests may still arrive after Cancel
	maxSkipped = 8
)

var ErrSimpleSignTxTooLarge = errors.New("transaction too large for SimpleSignTx")

// Session is one exclusive connection to a device. Calls on a session
// are serialized; the channel is never shared by two calls at once.
type Session struct {
	id    string
	path  string
	debug bool

	ch      Channel
	log     *logs.Logger
	timeout time.Duration

	commsLock chan struct{}

	mutex   sync.Mutex // guards broken, closed, onClose
	broken  bool
	closed  bool
	onClose func(*Session)

	// set by Core to keep bus enumeration out of the way of calls
	busy func(bool)
}

type SessionOption func(*Session)

// RoundTimeout bounds every wait for the device except the one after a
// ButtonAck. Zero disables the bound.
func RoundTimeout(d time.Duration) SessionOption {
	return func(s *Session) {
		s.timeout = d
	}
}

func WithLogger(l *logs.Logger) SessionOption {
	return func(s *Session) {
		s.log = l
	}
}

// Named sets the identity reported by ID, Path and Debug.
func Named(id, path string, debug bool) SessionOption {
	return func(s *Session) {
		s.id = id
		s.path = path
		s.debug = debug
	}
}

// NewSession wraps an already opened channel.
func NewSession(ch Channel, opts ...SessionOption) *Session {
	s := &Session{
		ch:        ch,
		timeout:   DefaultRoundTimeout,
		commsLock: make(chan struct{}, 1),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Session) ID() string   { return s.id }
func (s *Session) Path() string { return s.path }
func (s *Session) Debug() bool  { return s.debug }

func (s *Session) usable() error {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	if s.closed {
		return ErrSessionClosed
	}
	if s.broken {
		return ErrSessionBroken
	}
	return nil
}

func (s *Session) markBroken() {
	s.mutex.Lock()
	s.broken = true
	s.mutex.Unlock()
}

func (s *Session) lock(ctx context.Context) error {
	select {
	case s.commsLock <- struct{}{}:
	case <-ctx.Done():
		return fmt.Errorf("%w: %v", ErrCancelled, ctx.Err())
	}
	if err := s.usable(); err != nil {
		<-s.commsLock
		return err
	}
	if s.busy != nil {
		s.busy(true)
	}
	return nil
}

func (s *Session) unlock() {
	if s.busy != nil {
		s.busy(false)
	}
	<-s.commsLock
}

// Close releases the channel. A call in progress fails with a
// transport error.
func (s *Session) Close() error {
	s.mutex.Lock()
	if s.closed {
		s.mutex.Unlock()
		return nil
	}
	s.closed = true
	onClose := s.onClose
	s.onClose = nil
	s.mutex.Unlock()

	s.log.Logf("closing session %s", s.id)
	err := s.ch.Close()
	if onClose != nil {
		onClose(s)
	}
	return err
}

// detach stops Close from reporting back to Core.
func (s *Session) detach() {
	s.mutex.Lock()
	s.onClose = nil
	s.mutex.Unlock()
}

// Call sends req and drives the conversation until the device sends the
// response that completes it, which is returned unchanged.
func (s *Session) Call(ctx context.Context, req pb.Message, cb *Callbacks) (pb.Message, error) {
	_, res, err := s.perform(ctx, req, cb)
	return res, err
}

// SignTx streams tx to the device as it asks for it and returns the
// signed transaction.
func (s *Session) SignTx(ctx context.Context, req *pb.SignTx, tx *TxData, cb *Callbacks) (*SignedTx, error) {
	var c Callbacks
	if cb != nil {
		c = *cb
	}
	c.Tx = tx
	if err := tx.check(); err != nil {
		return nil, err
	}
	return s.signTx(ctx, req, &c)
}

// SimpleSignTx sends the whole transaction in one request. It is meant
// for small transactions only; the device may still ask for parts of it,
// which are answered from the request itself.
func (s *Session) SimpleSignTx(ctx context.Context, req *pb.SimpleSignTx, cb *Callbacks) (*SignedTx, error) {
	if req == nil {
		return nil, marshal.ErrNilMessage
	}
	tx := &TxData{Inputs: req.Inputs, Outputs: req.Outputs, Prev: req.Transactions}
	if err := tx.check(); err != nil {
		return nil, err
	}
	data, err := marshal.Encode(req)
	if err != nil {
		return nil, err
	}
	if len(data) > MaxSimpleSignTxSize {
		return nil, fmt.Errorf("%w: %d bytes", ErrSimpleSignTxTooLarge, len(data))
	}
	return s.signTx(ctx, req, cb)
}

func (s *Session) signTx(ctx context.Context, req pb.Message, cb *Callbacks) (*SignedTx, error) {
	cl, _, err := s.perform(ctx, req, cb)
	if err != nil {
		return nil, err
	}
	d := cl.driver.(*txDriver)
	res := d.result
	return &res, nil
}

// Post writes msg without waiting for any answer. Used for debug link
// messages that have none.
func (s *Session) Post(ctx context.Context, msg pb.Message) error {
	if err := s.lock(ctx); err != nil {
		return err
	}
	defer s.unlock()
	return s.send(msg)
}

// Read waits for one message without sending anything first.
func (s *Session) Read(ctx context.Context) (pb.Message, error) {
	if err := s.lock(ctx); err != nil {
		return nil, err
	}
	defer s.unlock()
	return s.read(ctx, s.timeout, nil)
}

func (s *Session) perform(ctx context.Context, req pb.Message, cb *Callbacks) (*call, pb.Message, error) {
	if req == nil {
		return nil, nil, marshal.ErrNilMessage
	}
	if _, ok := terminal[req.MessageType()]; !ok {
		return nil, nil, fmt.Errorf("%w: %s", ErrUnsupportedRequest, req.MessageType())
	}
	if err := s.lock(ctx); err != nil {
		return nil, nil, err
	}
	defer s.unlock()

	cl := newCall(req, cb)
	s.log.Logf("call %s", cl.kind)
	if err := s.send(req); err != nil {
		return cl, nil, err
	}

	for {
		msg, err := s.receive(ctx, cl)
		if err != nil {
			if errors.Is(err, ErrProtocolViolation) && !cl.cancelled {
				s.abort(cl)
			}
			return cl, nil, err
		}

		if f, ok := msg.(*pb.Failure); ok {
			ferr := failureError(f)
			s.log.Logf("failure %s", ferr.Code)
			if cl.cancelled {
				return cl, nil, fmt.Errorf("%w: %w", ErrCancelled, ferr)
			}
			return cl, nil, ferr
		}

		if isTerminal(cl.kind, msg) {
			if f, ok := cl.driver.(finisher); ok {
				f.finish(msg)
			}
			if cl.cancelled {
				// the device finished before it saw Cancel and still owes
				// a Failure for it
				s.drain()
				return cl, nil, &CancelledError{Response: msg}
			}
			s.log.Logf("call %s done", cl.kind)
			return cl, msg, nil
		}

		if cl.cancelled {
			cl.skipped++
			if cl.skipped > maxSkipped {
				s.markBroken()
				return cl, nil, cl.violation(msg, "device keeps asking after cancel")
			}
			s.log.Logf("not answering %s after cancel", msg.MessageType())
			continue
		}

		reply, err := s.answer(ctx, cl, msg)
		if err != nil {
			s.log.Logf("cannot answer %s: %s", msg.MessageType(), err)
			s.abort(cl)
			return cl, nil, err
		}
		if err := s.send(reply); err != nil {
			return cl, nil, err
		}
	}
}

// finisher is a driver that also reads the terminal message.
type finisher interface {
	finish(msg pb.Message)
}

func (d *txDriver) finish(msg pb.Message) {
	if m, ok := msg.(*pb.TxRequest); ok {
		d.collect(m)
	}
}

func (s *Session) answer(ctx context.Context, cl *call, msg pb.Message) (pb.Message, error) {
	if streaming(msg) {
		if cl.driver == nil {
			return nil, cl.violation(msg, "no stream in progress")
		}
		s.log.Logf("stream %s", msg.MessageType())
		return cl.driver.next(ctx, msg)
	}
	if prompt(msg) {
		return s.resolve(ctx, cl, msg)
	}
	return nil, cl.violation(msg, "")
}

// abort sends a local Cancel and reads until the device confirms it,
// so the next call starts on a quiet channel.
func (s *Session) abort(cl *call) {
	if err := s.cancel(cl); err != nil {
		return
	}
	s.drain()
}

// drain reads until the Failure answering our Cancel. Anything the device
// sent before it saw the Cancel is dropped.
func (s *Session) drain() {
	for i := 0; i <= maxSkipped; i++ {
		msg, err := s.read(context.Background(), s.timeout, nil)
		if err != nil {
			s.log.Logf("draining after cancel: %s", err)
			s.markBroken()
			return
		}
		if _, ok := msg.(*pb.Failure); ok {
			return
		}
		s.log.Logf("dropping %s after cancel", msg.MessageType())
	}
	s.markBroken()
}

func (s *Session) cancel(cl *call) error {
	cl.cancelled = true
	s.log.Logf("cancelling %s", cl.kind)
	return s.send(&pb.Cancel{})
}

func (s *Session) send(msg pb.Message) error {
	raw, err := marshal.Marshal(msg)
	if err != nil {
		return err
	}
	s.log.Logf("send %s", msg.MessageType())
	if err := s.ch.WriteMessage(raw); err != nil {
		s.markBroken()
		return &TransportError{Op: "write", Err: err}
	}
	return nil
}

func (s *Session) receive(ctx context.Context, cl *call) (pb.Message, error) {
	timeout := s.timeout
	if cl.awaitingButton {
		timeout = 0
		cl.awaitingButton = false
	}
	var onDone func() error
	if !cl.cancelled {
		onDone = func() error {
			return s.cancel(cl)
		}
	} else {
		ctx = context.Background()
	}
	msg, err := s.read(ctx, timeout, onDone)
	var pe *ProtocolError
	if errors.As(err, &pe) && pe.Request == 0 {
		pe.Request = cl.kind
	}
	return msg, err
}

type readResult struct {
	msg *trezortypes.Message
	err error
}

// read waits for the next message. If ctx ends first, onDone is run once
// and the wait goes on, now bounded by the round timeout; with a nil
// onDone the read is given up and the session is broken.
func (s *Session) read(ctx context.Context, timeout time.Duration, onDone func() error) (pb.Message, error) {
	results := make(chan readResult, 1)
	go func() {
		m, err := s.ch.ReadMessage()
		results <- readResult{msg: m, err: err}
	}()

	var (
		timer   *time.Timer
		expired <-chan time.Time
	)
	arm := func(d time.Duration) {
		if d > 0 && timer == nil {
			timer = time.NewTimer(d)
			expired = timer.C
		}
	}
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()
	arm(timeout)

	done := ctx.Done()
	for {
		select {
		case r := <-results:
			if r.err != nil {
				s.markBroken()
				return nil, &TransportError{Op: "read", Err: r.err}
			}
			msg, err := marshal.Unmarshal(r.msg)
			if err != nil {
				return nil, &ProtocolError{
					Received: pb.MessageType(r.msg.Kind),
					Reason:   err.Error(),
				}
			}
			s.log.Logf("recv %s", msg.MessageType())
			return msg, nil

		case <-done:
			done = nil
			if onDone == nil {
				s.markBroken()
				return nil, fmt.Errorf("%w: %v", ErrCancelled, ctx.Err())
			}
			if err := onDone(); err != nil {
				return nil, err
			}
			arm(s.timeout)

		case <-expired:
			s.markBroken()
			return nil, &TransportError{Op: "read", Err: ErrTimeout}
		}
	}
}
