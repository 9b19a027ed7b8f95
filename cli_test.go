package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trezor/trezorlib-go/internal/emulator"
	pb "github.com/trezor/trezorlib-go/trezorapi/trezorpb"
)

const testAddress = "1BoatSLRHtKNngkdXEeobR76b53LETtpyT"

// device is a scripted firmware that remembers what the host sent.
type device struct {
	mutex sync.Mutex
	pins  []string
	words []string
	label string
}

func (d *device) respond(msg pb.Message) []pb.Message {
	d.mutex.Lock()
	defer d.mutex.Unlock()

	switch m := msg.(type) {
	case *pb.Initialize, *pb.GetFeatures:
		return []pb.Message{&pb.Features{
			Vendor:       pb.String("trezor.io"),
			MajorVersion: pb.Uint32(2),
			MinorVersion: pb.Uint32(1),
			DeviceId:     pb.String("EMULATOR"),
			Label:        pb.String(d.label),
			Initialized:  pb.Bool(true),
		}}
	case *pb.GetAddress:
		if m.GetShowDisplay() {
			return []pb.Message{&pb.ButtonRequest{}}
		}
		return []pb.Message{&pb.Address{Address: pb.String(testAddress)}}
	case *pb.ButtonAck:
		return []pb.Message{&pb.Address{Address: pb.String(testAddress)}}
	case *pb.Ping:
		if m.GetMessage() == "locked" {
			return []pb.Message{&pb.PinMatrixRequest{}}
		}
		return []pb.Message{&pb.Success{Message: m.Message}}
	case *pb.PinMatrixAck:
		d.pins = append(d.pins, m.GetPin())
		return []pb.Message{&pb.Success{Message: pb.String("unlocked")}}
	case *pb.ApplySettings:
		d.label = m.GetLabel()
		return []pb.Message{&pb.Success{}}
	case *pb.RecoveryDevice:
		return []pb.Message{&pb.WordRequest{}}
	case *pb.WordAck:
		d.words = append(d.words, m.GetWord())
		if len(d.words) < 2 {
			return []pb.Message{&pb.WordRequest{}}
		}
		return []pb.Message{&pb.Success{}}
	case *pb.Cancel:
		code := pb.FailureActionCancelled
		return []pb.Message{&pb.Failure{Code: &code, Message: pb.String("Cancelled")}}
	}
	code := pb.FailureUnexpectedMessage
	return []pb.Message{&pb.Failure{Code: &code, Message: pb.String("Unexpected message")}}
}

type fixture struct {
	dev  *device
	port string
}

func newFixture(t *testing.T) *fixture {
	d := &device{label: "test"}
	emu, err := emulator.Start(d.respond)
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, emu.Close())
		assert.NoError(t, emu.Err())
	})
	return &fixture{dev: d, port: strconv.Itoa(emu.Port())}
}

// run executes trezorctl against the emulator with stdin as the user's
// typing and returns what it printed.
func (f *fixture) run(t *testing.T, stdin string, args ...string) (string, error) {
	var out, errOut bytes.Buffer
	app := newApp()
	app.Reader = strings.NewReader(stdin)
	app.Writer = &out
	app.ErrWriter = &errOut

	full := append([]string{"trezorctl", "--no-bridge", "--usb=false", "--udp", f.port, "--timeout", "5s"}, args...)
	err := app.Run(full)
	return out.String(), err
}

func TestHelpAndVersion(t *testing.T) {
	for _, args := range [][]string{{"--help"}, {"-v"}, {"--version"}, {"list", "--help"}} {
		var out bytes.Buffer
		app := newApp()
		app.Writer = &out
		app.ErrWriter = &bytes.Buffer{}
		require.NoError(t, app.Run(append([]string{"trezorctl"}, args...)), "%v", args)
		assert.NotEmpty(t, out.String(), "%v", args)
	}

	var out bytes.Buffer
	app := newApp()
	app.Writer = &out
	require.NoError(t, app.Run([]string{"trezorctl", "-v"}))
	assert.Contains(t, out.String(), version)
}

func TestListAndFeatures(t *testing.T) {
	f := newFixture(t)

	out, err := f.run(t, "", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "emulator"+f.port)
	assert.Contains(t, out, "Emulator")

	out, err = f.run(t, "", "features")
	require.NoError(t, err)
	assert.Contains(t, out, "EMULATOR")
	assert.Contains(t, out, "2.1.0")
}

func TestAddressCommand(t *testing.T) {
	f := newFixture(t)

	out, err := f.run(t, "", "address", "-n", "m/44'/0'/0'/0/0")
	require.NoError(t, err)
	assert.Equal(t, testAddress+"\n", out)

	out, err = f.run(t, "", "address", "--show")
	require.NoError(t, err)
	assert.Contains(t, out, "confirm the action on your device")
	assert.Contains(t, out, testAddress)

	_, err = f.run(t, "", "address", "-n", "44/0")
	assert.Error(t, err)
}

func TestPINIsAsked(t *testing.T) {
	f := newFixture(t)

	// the first answer is refused locally and asked again
	out, err := f.run(t, "12a\n159\n", "ping", "locked")
	require.NoError(t, err)
	assert.Contains(t, out, "7 8 9")
	assert.Contains(t, out, "Use only the digits 1 to 9.")
	assert.Contains(t, out, "unlocked")

	f.dev.mutex.Lock()
	defer f.dev.mutex.Unlock()
	assert.Equal(t, []string{"159"}, f.dev.pins)
}

func TestPINWithoutInput(t *testing.T) {
	f := newFixture(t)

	_, err := f.run(t, "", "ping", "locked")
	require.Error(t, err)

	// the device was told to cancel and the next call works
	out, err := f.run(t, "", "ping", "hello", "there")
	require.NoError(t, err)
	assert.Equal(t, "hello there\n", out)
}

func TestRecoverAsksWords(t *testing.T) {
	f := newFixture(t)

	out, err := f.run(t, " Abandon\nABILITY \n", "recover", "--words", "12")
	require.NoError(t, err)
	assert.Contains(t, out, "Word #1")
	assert.Contains(t, out, "Word #2")

	f.dev.mutex.Lock()
	defer f.dev.mutex.Unlock()
	assert.Equal(t, []string{"abandon", "ability"}, f.dev.words)
}

func TestSetLabel(t *testing.T) {
	f := newFixture(t)

	_, err := f.run(t, "", "set-label", "savings")
	require.NoError(t, err)
	out, err := f.run(t, "", "features")
	require.NoError(t, err)
	assert.Contains(t, out, "savings")

	_, err = f.run(t, "", "set-label")
	assert.Error(t, err)
}

func TestUnknownPath(t *testing.T) {
	f := newFixture(t)

	_, err := f.run(t, "", "--path", "emulator1", "features")
	require.Error(t, err)
	assert.ErrorIs(t, err, errNoDevice)
}

func TestConfigFile(t *testing.T) {
	f := newFixture(t)

	name := filepath.Join(t.TempDir(), "trezorctl.toml")
	body := "no_bridge = true\nusb = false\ntimeout = \"5s\"\nudp = [\"" + f.port + "\"]\ncoin = \"Testnet\"\n"
	require.NoError(t, os.WriteFile(name, []byte(body), 0o600))

	var out bytes.Buffer
	app := newApp()
	app.Writer = &out
	app.ErrWriter = &bytes.Buffer{}
	require.NoError(t, app.Run([]string{"trezorctl", "--config", name, "ping", "from", "file"}))
	assert.Equal(t, "from file\n", out.String())
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name string
		body string
		err  bool
		want func(t *testing.T, cfg config)
	}{
		{
			name: "defaults survive an empty file",
			body: "",
			want: func(t *testing.T, cfg config) {
				assert.Equal(t, defaultConfig(), cfg)
			},
		},
		{
			name: "explicit false overrides default",
			body: "usb = false\nudp = [\"21324:21325\", \"21326\"]\ntimeout = \"90s\"",
			want: func(t *testing.T, cfg config) {
				assert.False(t, cfg.usb)
				assert.Equal(t, []touple{{21324, 21325}, {21326, 0}}, cfg.touples)
				assert.Equal(t, 90*time.Second, cfg.timeout)
			},
		},
		{name: "unknown key", body: "colour = \"red\"", err: true},
		{name: "bad timeout", body: "timeout = \"soon\"", err: true},
		{name: "bad port", body: "udp = [\"1:2:3\"]", err: true},
	}
	for i, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			name := filepath.Join(dir, strconv.Itoa(i)+".toml")
			require.NoError(t, os.WriteFile(name, []byte(tt.body), 0o600))

			cfg := defaultConfig()
			err := loadFile(&cfg, name)
			if tt.err {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			tt.want(t, cfg)
		})
	}
}

func TestValidPIN(t *testing.T) {
	for pin, ok := range map[string]bool{
		"1":          true,
		"123456789":  true,
		"":           false,
		"0":          false,
		"12a":        false,
		"1234567891": false,
	} {
		assert.Equal(t, ok, validPIN(pin), "pin %q", pin)
	}
}
