package jsondelta

import "testing"

func TestDeepEqual(t *testing.T) {
	cases := []struct {
		description string
		a, b        interface{}
		want        bool
	}{
		{"equal scalars", "x", "x", true},
		{"unequal scalars", "x", "y", false},
		{"equal numbers", float64(1), float64(1), true},
		{"nil vs nil", nil, nil, true},
		{"nil vs string", nil, "", false},
		{"equal arrays", []interface{}{float64(1), "a"}, []interface{}{float64(1), "a"}, true},
		{"arrays differ by length", []interface{}{float64(1)}, []interface{}{float64(1), float64(2)}, false},
		{"arrays differ by order", []interface{}{float64(1), float64(2)}, []interface{}{float64(2), float64(1)}, false},
		{"equal objects, different key order", map[string]interface{}{"a": 1, "b": 2}, map[string]interface{}{"b": 2, "a": 1}, true},
		{"objects differ by key set", map[string]interface{}{"a": 1}, map[string]interface{}{"a": 1, "b": 2}, false},
		{"objects differ by value", map[string]interface{}{"a": 1}, map[string]interface{}{"a": 2}, false},
		{"nested equal structures", map[string]interface{}{"a": []interface{}{map[string]interface{}{"b": float64(1)}}}, map[string]interface{}{"a": []interface{}{map[string]interface{}{"b": float64(1)}}}, true},
	}

	for _, c := range cases {
		t.Run(c.description, func(t *testing.T) {
			got := deepEqual(c.a, c.b)
			if got != c.want {
				t.Errorf("deepEqual(%#v, %#v) = %v, want %v", c.a, c.b, got, c.want)
			}
		})
	}
}

func TestCloneValueDoesNotAlias(t *testing.T) {
	original := map[string]interface{}{
		"a": []interface{}{float64(1), float64(2)},
		"b": map[string]interface{}{"c": "d"},
	}

	clone := cloneValue(original).(map[string]interface{})
	if !deepEqual(original, clone) {
		t.Fatalf("clone is not deeply equal to original")
	}

	clone["a"].([]interface{})[0] = float64(99)
	clone["b"].(map[string]interface{})["c"] = "mutated"

	if original["a"].([]interface{})[0] != float64(1) {
		t.Errorf("mutating the clone's array leaked back into the original")
	}
	if original["b"].(map[string]interface{})["c"] != "d" {
		t.Errorf("mutating the clone's nested object leaked back into the original")
	}
}

func TestCloneValueScalarsPassThrough(t *testing.T) {
	for _, v := range []interface{}{nil, "s", float64(1), true} {
		if cloneValue(v) != v {
			t.Errorf("cloneValue(%#v) = %#v, want the same scalar", v, cloneValue(v))
		}
	}
}
