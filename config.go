package main

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/urfave/cli/v2"

	"github.com/trezor/trezorlib-go/internal/core"
	"github.com/trezor/trezorlib-go/internal/server"
	"github.com/trezor/trezorlib-go/trezorapi"
)

// config is everything that decides how trezorctl reaches the device.
// Defaults come first, then the config file, then flags.
type config struct {
	bridgeURL string
	noBridge  bool
	usb       bool
	touples   []touple
	timeout   time.Duration
	logfile   string
	verbose   bool
	path      string
	coin      string
	listen    string
}

type touple struct {
	normal int
	debug  int
}

func defaultConfig() config {
	return config{
		usb:     true,
		timeout: core.DefaultRoundTimeout,
		coin:    "Bitcoin",
		listen:  server.DefaultAddr,
	}
}

type fileConfig struct {
	BridgeURL string   `toml:"bridge_url"`
	NoBridge  bool     `toml:"no_bridge"`
	USB       bool     `toml:"usb"`
	UDP       []string `toml:"udp"`
	Timeout   string   `toml:"timeout"`
	Log       string   `toml:"log"`
	Verbose   bool     `toml:"verbose"`
	Path      string   `toml:"path"`
	Coin      string   `toml:"coin"`
	Listen    string   `toml:"listen"`
}

// loadFile overrides cfg with what the file at path defines.
func loadFile(cfg *config, path string) error {
	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return fmt.Errorf("load config: unknown key %s", undecoded[0])
	}

	if meta.IsDefined("bridge_url") {
		cfg.bridgeURL = strings.TrimSpace(raw.BridgeURL)
	}
	if meta.IsDefined("no_bridge") {
		cfg.noBridge = raw.NoBridge
	}
	if meta.IsDefined("usb") {
		cfg.usb = raw.USB
	}
	if meta.IsDefined("udp") {
		cfg.touples = nil
		for _, s := range raw.UDP {
			t, err := parseTouple(s)
			if err != nil {
				return fmt.Errorf("parse udp: %w", err)
			}
			cfg.touples = append(cfg.touples, t)
		}
	}
	if meta.IsDefined("timeout") {
		d, err := time.ParseDuration(strings.TrimSpace(raw.Timeout))
		if err != nil {
			return fmt.Errorf("parse timeout: %w", err)
		}
		cfg.timeout = d
	}
	if meta.IsDefined("log") {
		cfg.logfile = raw.Log
	}
	if meta.IsDefined("verbose") {
		cfg.verbose = raw.Verbose
	}
	if meta.IsDefined("path") {
		cfg.path = strings.TrimSpace(raw.Path)
	}
	if meta.IsDefined("coin") {
		cfg.coin = strings.TrimSpace(raw.Coin)
	}
	if meta.IsDefined("listen") {
		cfg.listen = strings.TrimSpace(raw.Listen)
	}
	return nil
}

// parseTouple reads "21324" or "21324:21325", the normal port and the
// debug link port of an emulator.
func parseTouple(value string) (touple, error) {
	split := strings.Split(strings.TrimSpace(value), ":")
	if len(split) > 2 {
		return touple{}, fmt.Errorf("bad emulator ports %q", value)
	}
	n, err := strconv.Atoi(split[0])
	if err != nil {
		return touple{}, err
	}
	t := touple{normal: n}
	if len(split) == 2 {
		d, err := strconv.Atoi(split[1])
		if err != nil {
			return touple{}, err
		}
		t.debug = d
	}
	return t, nil
}

// loadConfig merges the config file and the global flags of c.
func loadConfig(c *cli.Context) (config, error) {
	cfg := defaultConfig()
	if path := c.String(configFlag.Name); path != "" {
		if err := loadFile(&cfg, path); err != nil {
			return cfg, err
		}
	}

	if c.IsSet(bridgeFlag.Name) {
		cfg.bridgeURL = c.String(bridgeFlag.Name)
	}
	if c.IsSet(noBridgeFlag.Name) {
		cfg.noBridge = c.Bool(noBridgeFlag.Name)
	}
	if c.IsSet(usbFlag.Name) {
		cfg.usb = c.Bool(usbFlag.Name)
	}
	if c.IsSet(udpFlag.Name) {
		cfg.touples = nil
		for _, s := range c.StringSlice(udpFlag.Name) {
			t, err := parseTouple(s)
			if err != nil {
				return cfg, fmt.Errorf("parse --%s: %w", udpFlag.Name, err)
			}
			cfg.touples = append(cfg.touples, t)
		}
	}
	if c.IsSet(timeoutFlag.Name) {
		cfg.timeout = c.Duration(timeoutFlag.Name)
	}
	if c.IsSet(logFlag.Name) {
		cfg.logfile = c.String(logFlag.Name)
	}
	if c.IsSet(verboseFlag.Name) {
		cfg.verbose = c.Bool(verboseFlag.Name)
	}
	if c.IsSet(pathFlag.Name) {
		cfg.path = c.String(pathFlag.Name)
	}
	if c.IsSet(coinFlag.Name) {
		cfg.coin = c.String(coinFlag.Name)
	}
	return cfg, nil
}

func (cfg config) apiOptions() []trezorapi.InitOption {
	opts := []trezorapi.InitOption{
		trezorapi.WithUSB(cfg.usb),
		trezorapi.RoundTimeout(cfg.timeout),
	}
	if cfg.noBridge {
		opts = append(opts, trezorapi.DisableBridge())
	} else if cfg.bridgeURL != "" {
		opts = append(opts, trezorapi.BridgeURL(cfg.bridgeURL))
	}
	for _, t := range cfg.touples {
		opts = append(opts, trezorapi.AddUDPTouple(t.normal, t.debug))
	}
	return opts
}
