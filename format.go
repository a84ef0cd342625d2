package jsondelta

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
)

// FormatPrettyString is a convenience wrapper around FormatPretty that
// writes to a string instead of an io.Writer.
func FormatPrettyString(delta interface{}, colorTTY bool) (string, error) {
	buf := &bytes.Buffer{}
	if err := FormatPretty(buf, delta, colorTTY); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// FormatPretty writes a human-readable report of delta to w: one line per
// changed path, prefixed with "+" for adds, "-" for removes, "~" for
// modifies and moves. If colorTTY is true the lines are wrapped in ANSI
// color codes.
func FormatPretty(w io.Writer, delta interface{}, colorTTY bool) error {
	var colorMap map[string]string
	if colorTTY {
		colorMap = map[string]string{
			"close":  "\x1b[0m",
			"ctx":    "\x1b[37m",
			"insert": "\x1b[32m",
			"delete": "\x1b[31m",
			"update": "\x1b[34m",
		}
	}
	return formatPretty(w, delta, "", colorMap)
}

func formatPretty(w io.Writer, delta interface{}, path string, colorMap map[string]string) error {
	switch d := delta.(type) {
	case nil:
		return nil
	case string:
		return nil
	case []interface{}:
		kind, a, b, err := parseScalarDelta(d)
		if err != nil {
			return err
		}
		switch kind {
		case "add":
			return writeLine(w, "insert", "+", path, b, colorMap)
		case "delete":
			return writeLine(w, "delete", "-", path, a, colorMap)
		case "replace":
			return writeLine(w, "update", "~", path, b, colorMap)
		default:
			return fmt.Errorf("cannot format a bare move outside of an array: %w", ErrInvalidDelta)
		}
	case map[string]interface{}:
		if isArrayDelta(d) {
			return formatPrettyArray(w, d, path, colorMap)
		}
		keys := make([]string, 0, len(d))
		for k := range d {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			if err := formatPretty(w, d[k], joinPath(path, k), colorMap); err != nil {
				return err
			}
		}
		return nil
	default:
		return fmt.Errorf("delta has unsupported shape %T: %w", delta, ErrInvalidDelta)
	}
}

func formatPrettyArray(w io.Writer, d map[string]interface{}, path string, colorMap map[string]string) error {
	keys := make([]string, 0, len(d))
	for k := range d {
		if k == "_t" {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		v := d[k]
		childPath := path + "[" + strings.TrimPrefix(k, "_") + "]"
		if strings.HasPrefix(k, "_") {
			arr := v.([]interface{})
			code, _ := toInt(arr[2])
			if code == opMove {
				if err := writeLine(w, "update", "~", childPath, fmt.Sprintf("moved to %v", arr[1]), colorMap); err != nil {
					return err
				}
				continue
			}
			if err := writeLine(w, "delete", "-", childPath, arr[0], colorMap); err != nil {
				return err
			}
			continue
		}
		if isAddEncoding(v) {
			if err := writeLine(w, "insert", "+", childPath, v.([]interface{})[0], colorMap); err != nil {
				return err
			}
			continue
		}
		if err := formatPretty(w, v, childPath, colorMap); err != nil {
			return err
		}
	}
	return nil
}

func writeLine(w io.Writer, colorKey, sigil, path string, value interface{}, colorMap map[string]string) error {
	dataStr := ""
	if value != nil {
		b, err := json.Marshal(value)
		if err != nil {
			return err
		}
		dataStr = string(b)
	}
	_, err := fmt.Fprintf(w, "%s%s %s%s: %s%s\n", colorMap[colorKey], sigil, path, colorMap["close"], dataStr, colorMap["close"])
	return err
}

// FormatPrettyStats renders a one-line summary of s.
func FormatPrettyStats(s *Stats) string {
	return formatStats(s, false)
}

// FormatPrettyStatsColor renders a one-line summary of s wrapped in ANSI
// color codes.
func FormatPrettyStatsColor(s *Stats) string {
	return formatStats(s, true)
}

func formatStats(s *Stats, color bool) string {
	if s == nil {
		return "<nil>"
	}

	var neutral, insert, del, update, closeColor string
	if color {
		neutral = "\x1b[37m"
		insert = "\x1b[32m"
		del = "\x1b[31m"
		update = "\x1b[34m"
		closeColor = "\x1b[0m"
	}

	buf := &bytes.Buffer{}

	change := s.NodeChange()
	elsColor := neutral
	sign := ""
	switch {
	case change > 0:
		elsColor = insert
		sign = "+"
	case change < 0:
		elsColor = del
	}
	word := "elements"
	if change == 1 || change == -1 {
		word = "element"
	}
	fmt.Fprintf(buf, "%s%s%d%s %s%s%s.", elsColor, sign, change, closeColor, neutral, word, closeColor)

	writeCount(buf, insert, closeColor, s.Adds, "add", "adds")
	writeCount(buf, del, closeColor, s.Removes, "remove", "removes")
	writeCount(buf, update, closeColor, s.Edits, "edit", "edits")
	if s.Moves > 0 {
		writeCount(buf, update, closeColor, s.Moves, "move", "moves")
	}

	buf.WriteRune('\n')
	return buf.String()
}

func writeCount(buf *bytes.Buffer, color, closeColor string, n int, singular, plural string) {
	word := plural
	if n == 1 {
		word = singular
	}
	fmt.Fprintf(buf, " %s%s %s.%s", color, strconv.Itoa(n), word, closeColor)
}
