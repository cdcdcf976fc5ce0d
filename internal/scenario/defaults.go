package scenario

import (
	_ "embed"
	"fmt"
)

//go:embed defaults/earth-moon.yaml
var earthMoonYAML []byte

//go:embed defaults/inner-system.yaml
var innerSystemYAML []byte

//go:embed defaults/binary-pair.yaml
var binaryPairYAML []byte

func init() {
	for _, data := range [][]byte{earthMoonYAML, innerSystemYAML, binaryPairYAML} {
		s, err := Parse(data)
		if err != nil {
			panic(fmt.Sprintf("scenario: embedded default is invalid: %v", err))
		}
		Register(s)
	}
}
