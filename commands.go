package main

import (
	"context"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"math/big"
	"net/http"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/urfave/cli/v2"

	"github.com/trezor/trezorlib-go/internal/server"
	"github.com/trezor/trezorlib-go/trezorapi"
	pb "github.com/trezor/trezorlib-go/trezorapi/trezorpb"
	"github.com/trezor/trezorlib-go/trezorapi/trezortypes"
)

var errNoDevice = errors.New("no device connected")

const tailLines = 10

// env is what every command runs with.
type env struct {
	cfg  config
	api  *trezorapi.API
	logs *loggers
	out  io.Writer
	cb   *trezorapi.Callbacks

	closePrompt func()
}

func setup(c *cli.Context) (*env, error) {
	cfg, err := loadConfig(c)
	if err != nil {
		return nil, err
	}
	l, err := initLoggers(cfg.logfile, cfg.verbose, c.App.ErrWriter)
	if err != nil {
		return nil, err
	}
	a, err := trezorapi.New(append(cfg.apiOptions(), trezorapi.LogWriter(l.long))...)
	if err != nil {
		l.close()
		return nil, err
	}

	in := c.App.Reader
	if in == nil {
		in = os.Stdin
	}
	out := c.App.Writer
	if out == nil {
		out = os.Stdout
	}
	p, closePrompt := newPrompter(in, out)
	return &env{
		cfg:         cfg,
		api:         a,
		logs:        l,
		out:         out,
		cb:          callbacks(p, out),
		closePrompt: closePrompt,
	}, nil
}

func (e *env) close() {
	e.closePrompt()
	e.api.Close()
	e.logs.close()
}

// acquire opens the device named by --path, or the first one.
func (e *env) acquire(ctx context.Context) (*trezorapi.Session, error) {
	entries, err := e.api.Enumerate(ctx)
	if err != nil {
		return nil, err
	}
	for _, entry := range entries {
		if e.cfg.path == "" || entry.Path == e.cfg.path {
			return e.api.AcquireEntry(ctx, entry, false)
		}
	}
	if e.cfg.path != "" {
		return nil, fmt.Errorf("%w at %s", errNoDevice, e.cfg.path)
	}
	return nil, errNoDevice
}

func withAPI(fn func(c *cli.Context, e *env) error) cli.ActionFunc {
	return func(c *cli.Context) error {
		e, err := setup(c)
		if err != nil {
			return err
		}
		defer e.close()
		err = fn(c, e)
		if errors.Is(err, trezorapi.ErrTransport) || errors.Is(err, trezorapi.ErrProtocolViolation) {
			e.dumpTail()
		}
		return err
	}
}

// dumpTail prints the last device log lines after a link failure, unless
// they already went to stderr.
func (e *env) dumpTail() {
	if e.cfg.verbose {
		return
	}
	lines := e.logs.long.Tail(tailLines)
	if len(lines) == 0 {
		return
	}
	fmt.Fprintln(e.logs.stderr, "Last log lines:")
	for _, line := range lines {
		fmt.Fprintln(e.logs.stderr, "  "+line)
	}
}

// withSession runs fn with the device acquired and releases it after.
func withSession(fn func(c *cli.Context, e *env, s *trezorapi.Session) error) cli.ActionFunc {
	return withAPI(func(c *cli.Context, e *env) error {
		s, err := e.acquire(c.Context)
		if err != nil {
			return err
		}
		err = fn(c, e, s)
		if errClose := s.Close(); errClose != nil && err == nil {
			err = errClose
		}
		return err
	})
}

func derivation(c *cli.Context) (trezorapi.DerivationPath, error) {
	return trezorapi.ParseDerivationPath(c.String(derivationFlag.Name))
}

func needArgs(c *cli.Context, n int) error {
	if c.NArg() != n {
		return fmt.Errorf("%s needs %d arguments, got %d", c.Command.Name, n, c.NArg())
	}
	return nil
}

var commands = []*cli.Command{
	{
		Name:   "list",
		Usage:  "List connected devices",
		Action: withAPI(listDevices),
	},
	{
		Name:   "features",
		Usage:  "Show what the device reports about itself",
		Action: withSession(showFeatures),
	},
	{
		Name:      "ping",
		Usage:     "Send a message the device echoes back",
		ArgsUsage: "<message>",
		Flags:     []cli.Flag{buttonFlag},
		Action:    withSession(ping),
	},
	{
		Name:   "address",
		Usage:  "Show the address at a derivation path",
		Flags:  []cli.Flag{derivationFlag, showFlag},
		Action: withSession(getAddress),
	},
	{
		Name:   "pubkey",
		Usage:  "Show the extended public key at a derivation path",
		Flags:  []cli.Flag{derivationFlag, showFlag},
		Action: withSession(getPublicKey),
	},
	{
		Name:      "sign-message",
		Usage:     "Sign a message with the key at a derivation path",
		ArgsUsage: "<message>",
		Flags:     []cli.Flag{derivationFlag},
		Action:    withSession(signMessage),
	},
	{
		Name:      "verify-message",
		Usage:     "Verify a message signature",
		ArgsUsage: "<address> <base64 signature> <message>",
		Action:    withSession(verifyMessage),
	},
	{
		Name:      "sign-tx",
		Usage:     "Sign a Bitcoin transaction described in a JSON file",
		ArgsUsage: "<file.json>",
		Action:    withSession(signTx),
	},
	{
		Name:   "eth-address",
		Usage:  "Show the Ethereum address at a derivation path",
		Flags:  []cli.Flag{ethDerivationFlag, showFlag},
		Action: withSession(ethAddress),
	},
	{
		Name:      "eth-sign-message",
		Usage:     "Sign a message with an Ethereum key",
		ArgsUsage: "<message>",
		Flags:     []cli.Flag{ethDerivationFlag},
		Action:    withSession(ethSignMessage),
	},
	{
		Name:      "eth-sign-tx",
		Usage:     "Sign an Ethereum transaction",
		ArgsUsage: "<to> <value in wei>",
		Flags: []cli.Flag{
			ethDerivationFlag,
			chainIDFlag,
			&cli.Uint64Flag{Name: "nonce"},
			&cli.StringFlag{Name: "gas-price", Value: "20000000000"},
			&cli.StringFlag{Name: "gas-limit", Value: "21000"},
			&cli.StringFlag{Name: "data", Usage: "hex encoded call data"},
		},
		Action: withSession(ethSignTx),
	},
	{
		Name:   "entropy",
		Usage:  "Get random bytes from the device",
		Flags:  []cli.Flag{sizeFlag},
		Action: withSession(getEntropy),
	},
	{
		Name:      "set-label",
		Usage:     "Change the device label",
		ArgsUsage: "<label>",
		Action:    withSession(setLabel),
	},
	{
		Name:   "change-pin",
		Usage:  "Set, change or remove the PIN",
		Flags:  []cli.Flag{removeFlag},
		Action: withSession(changePin),
	},
	{
		Name:   "wipe",
		Usage:  "Erase the seed and all settings",
		Action: withSession(wipe),
	},
	{
		Name:   "reset",
		Usage:  "Create a new seed on the device",
		Flags:  []cli.Flag{strengthFlag, labelFlag, pinProtectionFlag, passphraseProtectionFlag},
		Action: withSession(resetDevice),
	},
	{
		Name:   "recover",
		Usage:  "Recover a seed by typing the words the device asks for",
		Flags:  []cli.Flag{wordsFlag, labelFlag, pinProtectionFlag, passphraseProtectionFlag, dryRunFlag},
		Action: withSession(recoverDevice),
	},
	{
		Name:      "firmware-update",
		Usage:     "Install a firmware image; the device must be in bootloader mode",
		ArgsUsage: "<firmware.bin>",
		Action:    withSession(firmwareUpdate),
	},
	{
		Name:   "serve",
		Usage:  "Run the local HTTP gateway",
		Flags:  []cli.Flag{listenFlag},
		Action: withAPI(serve),
	},
}

func deviceName(e trezortypes.EnumerateEntry) string {
	switch e.Type {
	case trezortypes.TypeT1Hid, trezortypes.TypeT1Webusb, trezortypes.TypeT1WebusbBoot:
		return "Trezor One"
	case trezortypes.TypeT2, trezortypes.TypeT2Boot:
		return "Trezor T"
	case trezortypes.TypeEmulator:
		return "Emulator"
	}
	return "Trezor"
}

func listDevices(c *cli.Context, e *env) error {
	entries, err := e.api.Enumerate(c.Context)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		fmt.Fprintln(e.out, "No devices found.")
		return nil
	}
	w := tabwriter.NewWriter(e.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "PATH\tDEVICE\tSESSION")
	for _, entry := range entries {
		session := "-"
		if entry.Session != nil {
			session = *entry.Session
		}
		fmt.Fprintf(w, "%s\t%s\t%s\n", entry.Path, deviceName(entry), session)
	}
	return w.Flush()
}

func showFeatures(c *cli.Context, e *env, s *trezorapi.Session) error {
	f, err := s.Initialize(c.Context)
	if err != nil {
		return err
	}
	w := tabwriter.NewWriter(e.out, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "vendor\t%s\n", f.GetVendor())
	fmt.Fprintf(w, "version\t%d.%d.%d\n", f.GetMajorVersion(), f.GetMinorVersion(), f.GetPatchVersion())
	fmt.Fprintf(w, "device id\t%s\n", f.GetDeviceId())
	fmt.Fprintf(w, "label\t%s\n", f.GetLabel())
	fmt.Fprintf(w, "initialized\t%t\n", f.GetInitialized())
	fmt.Fprintf(w, "bootloader\t%t\n", f.GetBootloaderMode())
	fmt.Fprintf(w, "pin protection\t%t\n", f.GetPinProtection())
	fmt.Fprintf(w, "passphrase protection\t%t\n", f.GetPassphraseProtection())
	return w.Flush()
}

func ping(c *cli.Context, e *env, s *trezorapi.Session) error {
	res, err := s.Ping(c.Context, strings.Join(c.Args().Slice(), " "), c.Bool(buttonFlag.Name), false, false, e.cb)
	if err != nil {
		return err
	}
	fmt.Fprintln(e.out, res)
	return nil
}

func getAddress(c *cli.Context, e *env, s *trezorapi.Session) error {
	path, err := derivation(c)
	if err != nil {
		return err
	}
	addr, err := s.GetAddress(c.Context, path, e.cfg.coin, c.Bool(showFlag.Name), e.cb)
	if err != nil {
		return err
	}
	fmt.Fprintln(e.out, addr)
	return nil
}

func getPublicKey(c *cli.Context, e *env, s *trezorapi.Session) error {
	path, err := derivation(c)
	if err != nil {
		return err
	}
	pk, err := s.GetPublicKey(c.Context, &pb.GetPublicKey{
		AddressN:    path,
		CoinName:    pb.String(e.cfg.coin),
		ShowDisplay: pb.Bool(c.Bool(showFlag.Name)),
	}, e.cb)
	if err != nil {
		return err
	}
	fmt.Fprintln(e.out, pk.GetXpub())
	return nil
}

func signMessage(c *cli.Context, e *env, s *trezorapi.Session) error {
	if err := needArgs(c, 1); err != nil {
		return err
	}
	path, err := derivation(c)
	if err != nil {
		return err
	}
	addr, sig, err := s.SignMessage(c.Context, path, []byte(c.Args().First()), e.cfg.coin, e.cb)
	if err != nil {
		return err
	}
	fmt.Fprintf(e.out, "address: %s\nsignature: %s\n", addr, base64.StdEncoding.EncodeToString(sig))
	return nil
}

func verifyMessage(c *cli.Context, e *env, s *trezorapi.Session) error {
	if err := needArgs(c, 3); err != nil {
		return err
	}
	sig, err := base64.StdEncoding.DecodeString(c.Args().Get(1))
	if err != nil {
		return fmt.Errorf("signature: %w", err)
	}
	err = s.VerifyMessage(c.Context, c.Args().Get(0), sig, []byte(c.Args().Get(2)), e.cfg.coin, e.cb)
	if err != nil {
		return err
	}
	fmt.Fprintln(e.out, "Signature is valid.")
	return nil
}

func signTx(c *cli.Context, e *env, s *trezorapi.Session) error {
	if err := needArgs(c, 1); err != nil {
		return err
	}
	f, err := readTxFile(c.Args().First())
	if err != nil {
		return err
	}
	req, tx, err := f.request(e.cfg.coin)
	if err != nil {
		return err
	}
	signed, err := s.SignTx(c.Context, req, tx, e.cb)
	if err != nil {
		return err
	}
	fmt.Fprintln(e.out, hex.EncodeToString(signed.Serialized))
	return nil
}

func ethAddress(c *cli.Context, e *env, s *trezorapi.Session) error {
	path, err := trezorapi.ParseDerivationPath(c.String(ethDerivationFlag.Name))
	if err != nil {
		return err
	}
	addr, err := s.EthereumGetAddress(c.Context, path, c.Bool(showFlag.Name), e.cb)
	if err != nil {
		return err
	}
	fmt.Fprintf(e.out, "0x%x\n", addr)
	return nil
}

func ethSignMessage(c *cli.Context, e *env, s *trezorapi.Session) error {
	if err := needArgs(c, 1); err != nil {
		return err
	}
	path, err := trezorapi.ParseDerivationPath(c.String(ethDerivationFlag.Name))
	if err != nil {
		return err
	}
	sig, err := s.EthereumSignMessage(c.Context, path, []byte(c.Args().First()), e.cb)
	if err != nil {
		return err
	}
	fmt.Fprintf(e.out, "address: 0x%x\nsignature: 0x%x\n", sig.GetAddress(), sig.GetSignature())
	return nil
}

// bigEndian encodes a decimal or 0x-prefixed integer the way
// EthereumSignTx expects its numeric fields.
func bigEndian(s string) ([]byte, error) {
	n, ok := new(big.Int).SetString(s, 0)
	if !ok || n.Sign() < 0 {
		return nil, fmt.Errorf("bad number %q", s)
	}
	return n.Bytes(), nil
}

func ethSignTx(c *cli.Context, e *env, s *trezorapi.Session) error {
	if err := needArgs(c, 2); err != nil {
		return err
	}
	path, err := trezorapi.ParseDerivationPath(c.String(ethDerivationFlag.Name))
	if err != nil {
		return err
	}
	to, err := hex.DecodeString(strings.TrimPrefix(c.Args().Get(0), "0x"))
	if err != nil || len(to) != 20 {
		return fmt.Errorf("bad recipient %q", c.Args().Get(0))
	}
	value, err := bigEndian(c.Args().Get(1))
	if err != nil {
		return err
	}
	gasPrice, err := bigEndian(c.String("gas-price"))
	if err != nil {
		return err
	}
	gasLimit, err := bigEndian(c.String("gas-limit"))
	if err != nil {
		return err
	}
	data, err := hex.DecodeString(strings.TrimPrefix(c.String("data"), "0x"))
	if err != nil {
		return fmt.Errorf("data: %w", err)
	}
	req := &pb.EthereumSignTx{
		AddressN: path,
		Nonce:    new(big.Int).SetUint64(c.Uint64("nonce")).Bytes(),
		GasPrice: gasPrice,
		GasLimit: gasLimit,
		To:       to,
		Value:    value,
		ChainId:  pb.Uint32(uint32(c.Uint(chainIDFlag.Name))),
	}
	res, err := s.EthereumSignTx(c.Context, req, data, e.cb)
	if err != nil {
		return err
	}
	fmt.Fprintf(e.out, "v: %d\nr: 0x%x\ns: 0x%x\n", res.GetSignatureV(), res.GetSignatureR(), res.GetSignatureS())
	return nil
}

func getEntropy(c *cli.Context, e *env, s *trezorapi.Session) error {
	b, err := s.GetEntropy(c.Context, uint32(c.Uint(sizeFlag.Name)), e.cb)
	if err != nil {
		return err
	}
	fmt.Fprintln(e.out, hex.EncodeToString(b))
	return nil
}

func setLabel(c *cli.Context, e *env, s *trezorapi.Session) error {
	if err := needArgs(c, 1); err != nil {
		return err
	}
	return s.SetLabel(c.Context, c.Args().First(), e.cb)
}

func changePin(c *cli.Context, e *env, s *trezorapi.Session) error {
	return s.ChangePin(c.Context, c.Bool(removeFlag.Name), e.cb)
}

func wipe(c *cli.Context, e *env, s *trezorapi.Session) error {
	if err := s.WipeDevice(c.Context, e.cb); err != nil {
		return err
	}
	fmt.Fprintln(e.out, "Device wiped.")
	return nil
}

func resetDevice(c *cli.Context, e *env, s *trezorapi.Session) error {
	req := &pb.ResetDevice{
		Strength:             pb.Uint32(uint32(c.Uint(strengthFlag.Name))),
		PinProtection:        pb.Bool(c.Bool(pinProtectionFlag.Name)),
		PassphraseProtection: pb.Bool(c.Bool(passphraseProtectionFlag.Name)),
	}
	if c.IsSet(labelFlag.Name) {
		req.Label = pb.String(c.String(labelFlag.Name))
	}
	if err := s.ResetDevice(c.Context, req, e.cb); err != nil {
		return err
	}
	fmt.Fprintln(e.out, "Seed created. Write down the words shown on the device.")
	return nil
}

func recoverDevice(c *cli.Context, e *env, s *trezorapi.Session) error {
	req := &pb.RecoveryDevice{
		WordCount:            pb.Uint32(uint32(c.Uint(wordsFlag.Name))),
		PinProtection:        pb.Bool(c.Bool(pinProtectionFlag.Name)),
		PassphraseProtection: pb.Bool(c.Bool(passphraseProtectionFlag.Name)),
		DryRun:               pb.Bool(c.Bool(dryRunFlag.Name)),
	}
	if c.IsSet(labelFlag.Name) {
		req.Label = pb.String(c.String(labelFlag.Name))
	}
	if err := s.RecoveryDevice(c.Context, req, e.cb); err != nil {
		return err
	}
	fmt.Fprintln(e.out, "Seed recovered.")
	return nil
}

func firmwareUpdate(c *cli.Context, e *env, s *trezorapi.Session) error {
	if err := needArgs(c, 1); err != nil {
		return err
	}
	image, err := os.ReadFile(c.Args().First())
	if err != nil {
		return err
	}
	fmt.Fprintf(e.out, "Uploading %d bytes.\n", len(image))
	if err := s.UpdateFirmware(c.Context, image, e.cb); err != nil {
		return err
	}
	fmt.Fprintln(e.out, "Firmware installed.")
	return nil
}

func serve(c *cli.Context, e *env) error {
	addr := e.cfg.listen
	if c.IsSet(listenFlag.Name) {
		addr = c.String(listenFlag.Name)
	}
	s := server.New(e.api, e.logs.stderr, e.logs.short, e.logs.long, server.Config{
		Addr:    addr,
		Version: version,
	})
	fmt.Fprintf(e.logs.stderr, "trezorctl is listening on %s\n", addr)

	errc := make(chan error, 1)
	go func() {
		errc <- s.Run()
	}()
	select {
	case err := <-errc:
		return err
	case <-c.Context.Done():
	}
	if err := s.Shutdown(context.Background()); err != nil {
		return err
	}
	if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
