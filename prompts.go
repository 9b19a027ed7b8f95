package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/peterh/liner"

	"github.com/trezor/trezorlib-go/trezorapi"
	pb "github.com/trezor/trezorlib-go/trezorapi/trezorpb"
)

// prompter reads what the device asks the user for.
type prompter interface {
	Prompt(p string) (string, error)
	PasswordPrompt(p string) (string, error)
}

// dumbterm is used when stdin is not a terminal; secrets echo.
type dumbterm struct {
	r *bufio.Reader
	w io.Writer
}

func (d dumbterm) Prompt(p string) (string, error) {
	fmt.Fprint(d.w, p)
	line, err := d.r.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func (d dumbterm) PasswordPrompt(p string) (string, error) {
	return d.Prompt(p)
}

// newPrompter picks liner for an interactive stdin. The returned func
// restores the terminal.
func newPrompter(in io.Reader, out io.Writer) (prompter, func()) {
	if f, ok := in.(*os.File); ok && f == os.Stdin && liner.TerminalSupported() {
		lr := liner.NewLiner()
		lr.SetCtrlCAborts(true)
		return lr, func() { lr.Close() }
	}
	return dumbterm{r: bufio.NewReader(in), w: out}, func() {}
}

var (
	noticeColor = color.New(color.FgYellow).SprintFunc()
	matrixColor = color.New(color.Bold).SprintFunc()
	errorColor  = color.New(color.FgHiRed).SprintFunc()
)

// pinMatrix is the layout of the numeric keypad. The device shows the
// digits scrambled in these positions.
const pinMatrix = "  7 8 9\n  4 5 6\n  1 2 3\n"

func pinTitle(t pb.PinMatrixRequestType) string {
	switch t {
	case pb.PinMatrixRequestNewFirst:
		return "Enter a new PIN"
	case pb.PinMatrixRequestNewSecond:
		return "Enter the new PIN again"
	}
	return "Enter the PIN"
}

func validPIN(pin string) bool {
	if pin == "" || len(pin) > 9 {
		return false
	}
	for _, c := range pin {
		if c < '1' || c > '9' {
			return false
		}
	}
	return true
}

// callbacks answers device prompts on the terminal.
func callbacks(p prompter, out io.Writer) *trezorapi.Callbacks {
	return &trezorapi.Callbacks{
		Button: func(ctx context.Context, req *pb.ButtonRequest) {
			fmt.Fprintln(out, noticeColor("Please confirm the action on your device."))
		},
		PIN: func(ctx context.Context, req *pb.PinMatrixRequest) (string, error) {
			fmt.Fprintf(out, "%s, using the positions shown on the device:\n", pinTitle(req.GetType()))
			fmt.Fprint(out, matrixColor(pinMatrix))
			for {
				pin, err := p.PasswordPrompt("PIN: ")
				if err != nil {
					return "", err
				}
				pin = strings.TrimSpace(pin)
				if validPIN(pin) {
					return pin, nil
				}
				fmt.Fprintln(out, errorColor("Use only the digits 1 to 9."))
			}
		},
		Passphrase: func(ctx context.Context, req *pb.PassphraseRequest) (string, error) {
			return p.PasswordPrompt("Passphrase: ")
		},
		Word: func(ctx context.Context, step int, req *pb.WordRequest) (string, error) {
			w, err := p.Prompt(fmt.Sprintf("Word #%d (as asked on the device): ", step+1))
			if err != nil {
				return "", err
			}
			return strings.ToLower(strings.TrimSpace(w)), nil
		},
	}
}
