package test

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"
)

// DecodeHexString is a helper function for tests that decodes hex strings. It doesn't return
// an error value, which makes it usable inline.
func DecodeHexString(hexData string) []byte {
	// Strip off any leading/trailing whitespace in hex string
	hexData = strings.TrimSpace(hexData)
	decoded, err := hex.DecodeString(hexData)
	if err != nil {
		panic(fmt.Sprintf("error decoding hex: %s", err))
	}
	return decoded
}

// JSONRoundTrip passes a JSON-mirror value through encoding/json and back.
// Tests use it so FromJSON sees the generic types an external caller
// would provide (float64 numbers, map[string]any objects) rather than the
// native types ToJSON produced in-process.
func JSONRoundTrip(v any) any {
	data, err := json.Marshal(v)
	if err != nil {
		panic(fmt.Sprintf("error encoding JSON: %s", err))
	}
	var ret any
	if err := json.Unmarshal(data, &ret); err != nil {
		panic(fmt.Sprintf("error decoding JSON: %s", err))
	}
	return ret
}
