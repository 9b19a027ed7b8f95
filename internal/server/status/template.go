package status

import (
	"html/template"

	"github.com/trezor/trezorlib-go/trezorapi/trezortypes"
)

type statusTemplateDevice struct {
	Type    trezortypes.DeviceType
	Path    string
	Used    bool
	Session string
}

type statusTemplateData struct {
	Version     string
	Devices     []statusTemplateDevice
	DeviceCount int
	Log         string

	IsError bool
	Error   string

	CSRFField template.HTML
}

var deviceNames = map[trezortypes.DeviceType]string{
	trezortypes.TypeT1Hid:           "Trezor One (HID)",
	trezortypes.TypeT1Webusb:        "Trezor One (WebUSB)",
	trezortypes.TypeT1WebusbBoot:    "Trezor One (WebUSB, bootloader)",
	trezortypes.TypeT2:              "Trezor Model T",
	trezortypes.TypeT2Boot:          "Trezor Model T (bootloader)",
	trezortypes.TypeEmulator:        "Trezor Emulator",
	trezortypes.TypeBridgeTransport: "Trezor (through bridge)",
}

func deviceName(t trezortypes.DeviceType) string {
	if name, ok := deviceNames[t]; ok {
		return name
	}
	return "Unknown device"
}

const templateString = `
<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="utf-8">
  <meta name="viewport" content="width=device-width, initial-scale=1, shrink-to-fit=no">
  <title>trezorctl gateway status</title>
  <style>
    body {
      font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", "Roboto", "Helvetica Neue", Arial, sans-serif;
    }
    p {
      color: #858585;
    }
    .error {
      border: 1px solid orangered;
      border-radius: 4px;
      max-width: 500px;
      margin: 20px auto;
      padding: 10px;
      color: darkred;
    }
    .item {
      border: 1px solid lightgray;
      border-radius: 4px;
      max-width: 500px;
      margin: 20px auto;
      padding: 10px;
    }
    .inner-container {
      max-width: 1024px;
      margin: 0 auto;
      text-align: center;
    }
    .badge {
      display: inline-block;
      padding: 6px 10px;
      border: 1px solid #01B757;
      border-radius: 4px;
      color: #01B757;
    }
    .btn-primary {
      display: inline-block;
      padding: 10px 40px;
      background-color: #01B757;
      color: white;
      border: none;
      border-radius: 4px;
      cursor: pointer;
    }
  </style>
</head>

<body>
  <div class="inner-container">
    <h1>trezorctl gateway status</h1>
    <span class="badge">Version: {{.Version}}</span>

    <p>Connected devices: {{.DeviceCount}}</p>

    {{if .IsError}}
      <div class="error"><b>Error:</b> {{.Error}}</div>
    {{end}}

    {{range .Devices}}
    <div class="item">
      <h3>{{deviceName .Type}}</h3>
      <span>Session: {{if .Used}}{{.Session}}{{else}}no session{{end}}</span>
      <p>Path: {{.Path}}</p>
    </div>
    {{end}}

    <p>Console Log</p>
    <textarea rows="25" cols="150" id="log">
{{.Log}}
    </textarea>
    <form method="post" action="/status/log.gz">
      {{.CSRFField}}
      <button class="btn-primary" type="submit">Download detailed log</button>
    </form>
  </div>
</body>
</html>
`

var statusTemplate = template.Must(template.New("status").
	Funcs(template.FuncMap{"deviceName": deviceName}).
	Parse(templateString))
