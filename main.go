// Command trezorctl talks to Trezor devices from the terminal. It reaches
// them through a running trezord when there is one and over USB or the
// emulator's UDP port otherwise. "trezorctl serve" runs a small local
// HTTP gateway instead.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v2"
)

const version = "0.3.0"

func newApp() *cli.App {
	return &cli.App{
		Name:                 "trezorctl",
		Usage:                "talk to Trezor hardware wallets",
		Version:              version,
		Flags:                globalFlags,
		Commands:             commands,
		EnableBashCompletion: true,
	}
}

func main() {
	// Ctrl-C cancels the running call; the device is told with Cancel.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newApp().RunContext(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, errorColor(err.Error()))
		stop()
		os.Exit(1)
	}
}
