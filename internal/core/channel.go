package core

import (
	"io"
	"sync"

	"github.com/trezor/trezorlib-go/internal/message"
	"github.com/trezor/trezorlib-go/trezorapi/trezortypes"
)

// Channel moves whole wire messages to and from one device, in order.
// ReadMessage blocks until a message arrives or the channel is closed;
// Close must unblock a pending ReadMessage.
type Channel interface {
	WriteMessage(m *trezortypes.Message) error
	ReadMessage() (*trezortypes.Message, error)
	Close() error
}

// Device is a raw report pipe to one device, as opened by a Bus.
type Device interface {
	io.ReadWriteCloser
}

type framedChannel struct {
	dev Device
	log io.Writer

	closeOnce sync.Once
	closeErr  error
}

// NewFramedChannel frames messages into 64-byte reports on dev.
func NewFramedChannel(dev Device, log io.Writer) Channel {
	return &framedChannel{dev: dev, log: log}
}

func (c *framedChannel) WriteMessage(m *trezortypes.Message) error {
	_, err := message.WriteToDevice(m, c.dev, c.log)
	return err
}

func (c *framedChannel) ReadMessage() (*trezortypes.Message, error) {
	return message.ReadFromDevice(c.dev, c.log)
}

func (c *framedChannel) Close() error {
	c.closeOnce.Do(func() {
		c.closeErr = c.dev.Close()
	})
	return c.closeErr
}
