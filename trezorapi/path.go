package trezorapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Hardened is added to a path component to derive it hardened.
const Hardened = uint32(0x80000000)

// DerivationPath is a BIP-32 path in the form devices take it,
// m/44'/0'/0'/0/0 being {44|Hardened, Hardened, Hardened, 0, 0}.
type DerivationPath []uint32

// ParseDerivationPath converts "m/44'/0'/0'/0/0" to its binary form.
// The path must start with "m"; "h" works as well as "'" for hardened
// components. Whitespace around components is ignored.
func ParseDerivationPath(path string) (DerivationPath, error) {
	components := strings.Split(path, "/")
	if strings.TrimSpace(components[0]) != "m" {
		return nil, errors.New("derivation path must start with m/")
	}
	components = components[1:]

	if len(components) == 0 {
		return DerivationPath{}, nil
	}

	result := make(DerivationPath, 0, len(components))
	for _, component := range components {
		component = strings.TrimSpace(component)
		if component == "" {
			return nil, errors.New("empty derivation path component")
		}

		var value uint32
		if strings.HasSuffix(component, "'") || strings.HasSuffix(component, "h") {
			value = Hardened
			component = strings.TrimSpace(component[:len(component)-1])
		}

		n, err := strconv.ParseUint(component, 10, 32)
		if err != nil {
			return nil, fmt.Errorf("invalid component %q", component)
		}
		if uint32(n) >= Hardened {
			return nil, fmt.Errorf("component %d out of allowed range [0, %d]", n, Hardened-1)
		}
		result = append(result, value+uint32(n))
	}
	return result, nil
}

func (path DerivationPath) String() string {
	var b strings.Builder
	b.WriteString("m")
	for _, component := range path {
		hardened := component >= Hardened
		if hardened {
			component -= Hardened
		}
		fmt.Fprintf(&b, "/%d", component)
		if hardened {
			b.WriteString("'")
		}
	}
	return b.String()
}

func (path DerivationPath) MarshalJSON() ([]byte, error) {
	return json.Marshal(path.String())
}

func (path *DerivationPath) UnmarshalJSON(b []byte) error {
	var dp string
	if err := json.Unmarshal(b, &dp); err != nil {
		return err
	}
	p, err := ParseDerivationPath(dp)
	if err != nil {
		return err
	}
	*path = p
	return nil
}
