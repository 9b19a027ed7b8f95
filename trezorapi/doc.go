/*
Package trezorapi is for connecting Trezor to go programs.

It automatically uses bridge, if it's available; if it isn't,
it opens the devices directly through hidapi, and emulators over UDP.

Either way, a call is one request from the host. The device may answer
it with prompts (button, PIN matrix, passphrase, recovery word) and with
requests for more data (transaction parts, Ethereum data, firmware
chunks, host entropy) before it sends the message that completes it.
Session.Call handles all of that; prompts are answered through the
Callbacks given to the call, and data is streamed from what the call
was given.

Also read the docs for trezorpb and trezorpbcall.

Errors

Device failures, protocol violations, transport failures, missing or
declining callbacks and cancellation are told apart with errors.Is
against ErrDeviceFailure, ErrProtocolViolation, ErrTransport,
ErrCallbackMissing, ErrCallbackRejected and ErrCancelled.

OS support

It works on macOS, Windows, and Linux.

On Linux, end user of your app needs to install udev rules -
see https://wiki.trezor.io/Udev_rules - however, that is
automatically done when installing bridge.

Trezor support

This works with both T1 and TT, and also with UDP emulators of both T1 and TT.
However, if bridge is running at local computer, emulator might not
connect; use DisableBridge.
*/
package trezorapi
