package main

import (
	"bytes"
	"strings"
	"testing"
)

func TestUnpatchCmdReversesDelta(t *testing.T) {
	dir := t.TempDir()
	right := writeTempJSON(t, dir, "right.json", `{"a":2}`)
	delta := writeTempJSON(t, dir, "delta.json", `{"a":[1,2]}`)

	cmd := unpatchCmd()
	buf := &bytes.Buffer{}
	cmd.SetOut(buf)
	cmd.SetArgs([]string{right, delta})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute: %v", err)
	}

	if !strings.Contains(buf.String(), `"a":1`) {
		t.Errorf("output %q, want unpatched value 1 for a", buf.String())
	}
}
