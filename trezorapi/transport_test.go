package trezorapi_test

import (
	"context"
	"fmt"

	"github.com/trezor/trezorlib-go/trezorapi"
	"github.com/trezor/trezorlib-go/trezorapi/trezorpb"
)

func Example() {
	// creating an API object
	a, err := trezorapi.New(trezorapi.AddUDPPort(21324))
	if err != nil {
		panic(err)
	}
	defer a.Close()

	ctx := context.Background()

	// enumerating
	ds, err := a.Enumerate(ctx)
	if err != nil {
		panic(err)
	}
	d := ds[0] // panics when len < 1

	// acquiring
	s, err := a.AcquireEntry(ctx, d, false)
	if err != nil {
		panic(err)
	}
	defer s.Close()

	// calling; the user confirms on the device
	path, err := trezorapi.ParseDerivationPath("m/44'/0'/0'/0/0")
	if err != nil {
		panic(err)
	}
	address, err := s.GetAddress(ctx, path, "Bitcoin", true, &trezorapi.Callbacks{
		Button: func(ctx context.Context, req *trezorpb.ButtonRequest) {
			fmt.Println("Confirm on device.")
		},
	})
	if err != nil {
		panic(err)
	}
	fmt.Printf("Address: %s", address)
}
