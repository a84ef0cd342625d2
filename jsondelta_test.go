package jsondelta

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDiffJSONPatchJSONRoundTrip(t *testing.T) {
	left := []byte(`{"name":"old","tags":["a","b","c"]}`)
	right := []byte(`{"name":"new","tags":["a","c","d"]}`)

	delta, err := DiffJSON(left, right)
	if err != nil {
		t.Fatalf("DiffJSON: %v", err)
	}

	patched, err := PatchJSON(left, delta)
	if err != nil {
		t.Fatalf("PatchJSON: %v", err)
	}

	var gotRight, wantRight interface{}
	if err := json.Unmarshal(patched, &gotRight); err != nil {
		t.Fatalf("unmarshal patched: %v", err)
	}
	if err := json.Unmarshal(right, &wantRight); err != nil {
		t.Fatalf("unmarshal right: %v", err)
	}
	if diff := cmp.Diff(wantRight, gotRight); diff != "" {
		t.Errorf("PatchJSON(left, DiffJSON(left, right)) (-want +got):\n%s", diff)
	}

	unpatched, err := UnpatchJSON(right, delta)
	if err != nil {
		t.Fatalf("UnpatchJSON: %v", err)
	}
	var gotLeft, wantLeft interface{}
	if err := json.Unmarshal(unpatched, &gotLeft); err != nil {
		t.Fatalf("unmarshal unpatched: %v", err)
	}
	if err := json.Unmarshal(left, &wantLeft); err != nil {
		t.Fatalf("unmarshal left: %v", err)
	}
	if diff := cmp.Diff(wantLeft, gotLeft); diff != "" {
		t.Errorf("UnpatchJSON(right, DiffJSON(left, right)) (-want +got):\n%s", diff)
	}
}

func TestDiffJSONEqualDocumentsYieldsNull(t *testing.T) {
	doc := []byte(`{"a":1}`)
	delta, err := DiffJSON(doc, doc)
	if err != nil {
		t.Fatalf("DiffJSON: %v", err)
	}
	if string(delta) != "null" {
		t.Errorf("DiffJSON(doc, doc) = %s, want null", delta)
	}
}

func TestDiffJSONEmptyInputTreatedAsNull(t *testing.T) {
	delta, err := DiffJSON(nil, []byte(`{}`))
	if err != nil {
		t.Fatalf("DiffJSON: %v", err)
	}
	var v interface{}
	if err := json.Unmarshal(delta, &v); err != nil {
		t.Fatalf("unmarshal delta: %v", err)
	}
	arr, ok := v.([]interface{})
	if !ok || len(arr) != 2 {
		t.Fatalf("delta = %s, want a 2-element replace encoding", delta)
	}
}

func TestPatchJSONInvalidJSONErrors(t *testing.T) {
	_, err := PatchJSON([]byte(`not json`), []byte(`null`))
	if err == nil {
		t.Fatal("expected an error for malformed JSON input")
	}
}
