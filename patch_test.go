package jsondelta

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestPatchScalarCases(t *testing.T) {
	cases := []struct {
		description       string
		left, delta, want interface{}
	}{
		{"replace", "before", []interface{}{"before", "after"}, "after"},
		{"add", nil, []interface{}{"added"}, "added"},
		{"delete", "gone", []interface{}{"gone", 0, 0}, nil},
		{"identity nil delta", "unchanged", nil, "unchanged"},
		{"identity empty string delta", "unchanged", "", "unchanged"},
	}

	for _, c := range cases {
		t.Run(c.description, func(t *testing.T) {
			got, err := Patch(c.left, c.delta)
			if err != nil {
				t.Fatalf("Patch: %v", err)
			}
			if got != c.want {
				t.Errorf("Patch(%#v, %#v) = %#v, want %#v", c.left, c.delta, got, c.want)
			}
		})
	}
}

func TestPatchTextDiffOperationErrors(t *testing.T) {
	_, err := Patch("hello", []interface{}{"diffstring", 0, 2})
	if err == nil {
		t.Fatal("expected an error for the text diff operation code")
	}
}

func TestPatchObjectAddAndRemove(t *testing.T) {
	left := map[string]interface{}{"a": "x", "b": "y"}
	delta := map[string]interface{}{
		"a": []interface{}{"x", 0, 0},
		"c": []interface{}{"z"},
	}

	got, err := Patch(left, delta)
	if err != nil {
		t.Fatalf("Patch: %v", err)
	}
	m := got.(map[string]interface{})
	if _, ok := m["a"]; ok {
		t.Errorf("key \"a\" should have been removed: %#v", m)
	}
	if m["b"] != "y" {
		t.Errorf("untouched key \"b\" = %#v, want \"y\"", m["b"])
	}
	if m["c"] != "z" {
		t.Errorf("added key \"c\" = %#v, want \"z\"", m["c"])
	}
}

func TestPatchObjectDoesNotMutateLeft(t *testing.T) {
	left := map[string]interface{}{"a": "x"}
	before := cloneValue(left)
	delta := map[string]interface{}{"a": []interface{}{"x", "y"}}

	if _, err := Patch(left, delta); err != nil {
		t.Fatalf("Patch: %v", err)
	}
	if diff := cmp.Diff(before, left); diff != "" {
		t.Errorf("Patch mutated left (-want +got):\n%s", diff)
	}
}

func TestPatchArrayInsertAtEnd(t *testing.T) {
	left := toValues(1, 2)
	delta := map[string]interface{}{"_t": "a", "2": []interface{}{float64(3)}}

	got, err := Patch(left, delta)
	if err != nil {
		t.Fatalf("Patch: %v", err)
	}
	arr := got.([]interface{})
	if len(arr) != 3 || arr[2] != float64(3) {
		t.Errorf("Patch = %#v, want [1 2 3]", arr)
	}
}

func TestPatchArrayRemoveFromMiddle(t *testing.T) {
	left := []interface{}{"a", "b", "c"}
	delta := map[string]interface{}{"_t": "a", "_1": []interface{}{"b", 0, 0}}

	got, err := Patch(left, delta)
	if err != nil {
		t.Fatalf("Patch: %v", err)
	}
	arr := got.([]interface{})
	want := []interface{}{"a", "c"}
	if diff := cmp.Diff(want, arr); diff != "" {
		t.Errorf("Patch (-want +got):\n%s", diff)
	}
}

func TestPatchArrayMoveOrderingDoesNotCorruptIndices(t *testing.T) {
	left := toValues(1, 2, 3, 4)
	delta := map[string]interface{}{
		"_t": "a",
		"_0": []interface{}{"", 3, 3},
		"_1": []interface{}{"", 2, 3},
		"_2": []interface{}{"", 1, 3},
	}

	got, err := Patch(left, delta)
	if err != nil {
		t.Fatalf("Patch: %v", err)
	}
	want := toValues(4, 3, 2, 1)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Patch (-want +got):\n%s", diff)
	}
}

func TestPatchArrayModifyAfterRemove(t *testing.T) {
	left := []interface{}{"a", "b", "c"}
	delta := map[string]interface{}{
		"_t": "a",
		"_1": []interface{}{"b", 0, 0},
		"1":  []interface{}{"c", "C"},
	}

	got, err := Patch(left, delta)
	if err != nil {
		t.Fatalf("Patch: %v", err)
	}
	want := []interface{}{"a", "C"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Patch (-want +got):\n%s", diff)
	}
}

func TestPatchArrayAppliedToNonArrayErrors(t *testing.T) {
	_, err := Patch("not an array", map[string]interface{}{"_t": "a", "0": []interface{}{"x"}})
	if err == nil {
		t.Fatal("expected an error when applying an array delta to a non-array value")
	}
}
