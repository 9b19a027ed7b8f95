package trezorapi

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDerivationPath(t *testing.T) {
	tests := []struct {
		input  string
		output DerivationPath
	}{
		{"m", DerivationPath{}},
		{"m/0", DerivationPath{0}},
		{"m/44'/0'/0'/0/0", DerivationPath{Hardened + 44, Hardened, Hardened, 0, 0}},
		{"m/44h/60h/0h/0/7", DerivationPath{Hardened + 44, Hardened + 60, Hardened, 0, 7}},
		{" m / 44' / 1 ", DerivationPath{Hardened + 44, 1}},
		{"m/2147483647'", DerivationPath{0xffffffff}},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			p, err := ParseDerivationPath(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.output, p)
		})
	}
}

func TestParseDerivationPathErrors(t *testing.T) {
	for _, input := range []string{
		"",
		"44'/0'",
		"/44'",
		"m/",
		"m/44'//0",
		"m/x",
		"m/-1",
		"m/2147483648",
		"m/2147483648'",
	} {
		t.Run(input, func(t *testing.T) {
			_, err := ParseDerivationPath(input)
			assert.Error(t, err)
		})
	}
}

func TestDerivationPathString(t *testing.T) {
	p := DerivationPath{Hardened + 44, Hardened, Hardened, 1, 5}
	assert.Equal(t, "m/44'/0'/0'/1/5", p.String())

	b, err := json.Marshal(p)
	require.NoError(t, err)
	var back DerivationPath
	require.NoError(t, json.Unmarshal(b, &back))
	assert.Equal(t, p, back)
}
