package jsondelta

import (
	"errors"
	"testing"
)

func TestToInt(t *testing.T) {
	if v, ok := toInt(3); !ok || v != 3 {
		t.Errorf("toInt(3) = (%d, %v), want (3, true)", v, ok)
	}
	if v, ok := toInt(float64(3)); !ok || v != 3 {
		t.Errorf("toInt(float64(3)) = (%d, %v), want (3, true)", v, ok)
	}
	if _, ok := toInt(float64(3.5)); ok {
		t.Error("toInt(3.5) should report not ok")
	}
	if _, ok := toInt("3"); ok {
		t.Error("toInt(\"3\") should report not ok")
	}
}

func TestParseScalarDelta(t *testing.T) {
	cases := []struct {
		description string
		in          []interface{}
		wantKind    string
		wantErr     error
	}{
		{"add", []interface{}{"v"}, "add", nil},
		{"replace", []interface{}{"a", "b"}, "replace", nil},
		{"delete", []interface{}{"v", 0, 0}, "delete", nil},
		{"move", []interface{}{"", 2, 3}, "move", nil},
		{"text diff is unsupported", []interface{}{"x", "y", 2}, "", ErrUnsupportedOperation},
		{"unknown code is invalid", []interface{}{"x", "y", 9}, "", ErrInvalidDelta},
		{"wrong length is invalid", []interface{}{"a", "b", "c", "d"}, "", ErrInvalidDelta},
	}

	for _, c := range cases {
		t.Run(c.description, func(t *testing.T) {
			kind, _, _, err := parseScalarDelta(c.in)
			if c.wantErr != nil {
				if !errors.Is(err, c.wantErr) {
					t.Fatalf("err = %v, want wrapping %v", err, c.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if kind != c.wantKind {
				t.Errorf("kind = %q, want %q", kind, c.wantKind)
			}
		})
	}
}

func TestIsAddAndDeleteEncoding(t *testing.T) {
	if !isAddEncoding([]interface{}{"v"}) {
		t.Error("[v] should be recognized as an add encoding")
	}
	if isAddEncoding([]interface{}{"a", "b"}) {
		t.Error("[a, b] should not be recognized as an add encoding")
	}
	if !isDeleteEncoding([]interface{}{"v", 0, 0}) {
		t.Error("[v, 0, 0] should be recognized as a delete encoding")
	}
	if isDeleteEncoding([]interface{}{"v", 2, 3}) {
		t.Error("a move encoding should not be recognized as a delete encoding")
	}
}
