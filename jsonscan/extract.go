package jsonscan

import "strings"

// ExtractField scans body textually for the first occurrence of
// "name":"value" and returns the raw (still escaped) value. The boolean
// reports whether the field was found with a terminated string value.
func ExtractField(body string, name string) (string, bool) {
	pattern := `"` + name + `":"`
	start := strings.Index(body, pattern)
	if start < 0 {
		return "", false
	}
	start += len(pattern)
	end := stringEnd(body, start)
	if end < 0 {
		return "", false
	}
	return body[start:end], true
}

// FirstField runs ExtractField over the names in priority order and
// returns the unescaped value of the first field found with a non-empty
// value. Ordering matters: {"result":"a","message":"b"} yields "a" when
// result precedes message in names.
func FirstField(body string, names []string) (string, bool) {
	for _, name := range names {
		if value, ok := ExtractField(body, name); ok && value != "" {
			return Unescape(value), true
		}
	}
	return "", false
}

// stringEnd finds the closing quote of a JSON string starting at start,
// skipping escaped quotes. A quote preceded by an even number of
// contiguous backslashes (including zero) terminates the string; an odd
// count means the quote is escaped and the scan continues. Returns -1 when
// the string never terminates.
func stringEnd(body string, start int) int {
	for i := start; i < len(body); i++ {
		if body[i] != '"' {
			continue
		}
		backslashes := 0
		for j := i - 1; j >= start && body[j] == '\\'; j-- {
			backslashes++
		}
		if backslashes%2 == 0 {
			return i
		}
	}
	return -1
}
