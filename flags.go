package main

import (
	"github.com/urfave/cli/v2"

	"github.com/trezor/trezorlib-go/internal/bridge"
	"github.com/trezor/trezorlib-go/internal/core"
	"github.com/trezor/trezorlib-go/internal/server"
)

var (
	configFlag = &cli.StringFlag{
		Name:    "config",
		Usage:   "TOML file with default settings",
		EnvVars: []string{"TREZORCTL_CONFIG"},
	}
	bridgeFlag = &cli.StringFlag{
		Name:  "bridge",
		Usage: "URL of a running trezord",
		Value: bridge.DefaultURL,
	}
	noBridgeFlag = &cli.BoolFlag{
		Name:  "no-bridge",
		Usage: "Talk to devices directly even if trezord is running",
	}
	udpFlag = &cli.StringSliceFlag{
		Name: "udp",
		Usage: "Use UDP port for emulator, optionally with a debug link port. " +
			"Can be repeated. Example: --udp 21324 --udp 21326:21327",
	}
	usbFlag = &cli.BoolFlag{
		Name:  "usb",
		Usage: "Use USB devices. Can be disabled for testing environments. Example: --udp 21324 --usb=false",
		Value: true,
	}
	timeoutFlag = &cli.DurationFlag{
		Name:  "timeout",
		Usage: "How long to wait for each device answer; waiting for a button press is not limited",
		Value: core.DefaultRoundTimeout,
	}
	logFlag = &cli.StringFlag{
		Name:  "log",
		Usage: "Log into a file, rotating after 20MB",
	}
	verboseFlag = &cli.BoolFlag{
		Name:  "verbose",
		Usage: "Write verbose logs to either stderr or logfile",
	}
	pathFlag = &cli.StringFlag{
		Name:  "path",
		Usage: "Device to use, as listed by the list command; the first one by default",
	}
	coinFlag = &cli.StringFlag{
		Name:  "coin",
		Usage: "Coin name as the firmware knows it",
		Value: "Bitcoin",
	}

	globalFlags = []cli.Flag{
		configFlag,
		bridgeFlag,
		noBridgeFlag,
		udpFlag,
		usbFlag,
		timeoutFlag,
		logFlag,
		verboseFlag,
		pathFlag,
		coinFlag,
	}
)

// command flags
var (
	derivationFlag = &cli.StringFlag{
		Name:    "derivation",
		Aliases: []string{"n"},
		Usage:   "BIP-32 path",
		Value:   "m/44'/0'/0'/0/0",
	}
	ethDerivationFlag = &cli.StringFlag{
		Name:    "derivation",
		Aliases: []string{"n"},
		Usage:   "BIP-32 path",
		Value:   "m/44'/60'/0'/0/0",
	}
	showFlag = &cli.BoolFlag{
		Name:  "show",
		Usage: "Show the result on the device screen for comparison",
	}
	buttonFlag = &cli.BoolFlag{
		Name:  "button",
		Usage: "Ask for a button press before answering",
	}
	removeFlag = &cli.BoolFlag{
		Name:  "remove",
		Usage: "Remove the PIN instead of changing it",
	}
	strengthFlag = &cli.UintFlag{
		Name:  "strength",
		Usage: "Seed strength in bits: 128, 192 or 256",
		Value: 256,
	}
	wordsFlag = &cli.UintFlag{
		Name:  "words",
		Usage: "Number of words of the seed: 12, 18 or 24",
		Value: 24,
	}
	labelFlag = &cli.StringFlag{
		Name:  "label",
		Usage: "Device label",
	}
	pinProtectionFlag = &cli.BoolFlag{
		Name:  "pin-protection",
		Usage: "Protect the device with a PIN",
	}
	passphraseProtectionFlag = &cli.BoolFlag{
		Name:  "passphrase-protection",
		Usage: "Enable passphrase",
	}
	dryRunFlag = &cli.BoolFlag{
		Name:  "dry-run",
		Usage: "Only check the seed, do not load it",
	}
	sizeFlag = &cli.UintFlag{
		Name:  "size",
		Usage: "Number of bytes",
		Value: 32,
	}
	listenFlag = &cli.StringFlag{
		Name:  "listen",
		Usage: "Address the gateway listens on",
		Value: server.DefaultAddr,
	}
	chainIDFlag = &cli.UintFlag{
		Name:  "chain-id",
		Usage: "EIP-155 chain ID",
		Value: 1,
	}
)
