package loader

import (
	"bytes"
	"encoding/json"
)

// Config is the part of the generator configuration a strategy reads from.
type Config interface {
	// DependsProperty returns the ordered dependency list stored under name.
	DependsProperty(name string) []string

	// NeedFunction flags a helper function that the final header must define.
	NeedFunction(name string)
}

// Strategy produces the condition/loader pair for one module system.
type Strategy interface {
	Name() string

	// Condition is the expression that selects this strategy at load time.
	Condition() string

	// Loader is the statement that registers the factory result.
	Loader() string
}

// Quote renders s as a JavaScript string literal using JSON rules. Invalid
// UTF-8 bytes are replaced with \ufffd, so such input does not round-trip.
func Quote(s string) string {
	buf := new(bytes.Buffer)
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		// a Go string always encodes
		return `""`
	}
	return string(bytes.TrimSuffix(buf.Bytes(), []byte("\n")))
}
