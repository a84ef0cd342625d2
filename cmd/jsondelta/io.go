package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// readArg reads path's contents, treating "-" as stdin.
func readArg(path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(os.Stdin)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return b, nil
}

// unmarshalDelta decodes a jsondelta-produced JSON document, treating the
// literal "null" as a nil delta rather than an error.
func unmarshalDelta(b []byte, v *interface{}) error {
	if err := json.Unmarshal(b, v); err != nil {
		return fmt.Errorf("decoding delta: %w", err)
	}
	return nil
}
