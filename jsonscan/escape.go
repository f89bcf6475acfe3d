package jsonscan

import "strings"

// escaper handles exactly the seven sequences the wire contract defines,
// backslash first so later replacements never double-escape. It does not
// escape control characters generally and does not emit \u escapes.
var escaper = strings.NewReplacer(
	`\`, `\\`,
	`"`, `\"`,
	"\n", `\n`,
	"\r", `\r`,
	"\t", `\t`,
	"\b", `\b`,
	"\f", `\f`,
)

// Escape applies the minimal JSON string escaping used when auto-wrapping
// payloads. Escaping a string with no special characters is a no-op.
func Escape(s string) string {
	return escaper.Replace(s)
}

// Unescape reverses Escape in a single left-to-right pass, so Escape and
// Unescape form a true inverse pair for the seven defined sequences.
// Unknown escape sequences are left untouched.
func Unescape(s string) string {
	if !strings.ContainsRune(s, '\\') {
		return s
	}
	var out strings.Builder
	out.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != '\\' || i+1 >= len(s) {
			out.WriteByte(c)
			continue
		}
		switch s[i+1] {
		case '"':
			out.WriteByte('"')
		case '\\':
			out.WriteByte('\\')
		case 'n':
			out.WriteByte('\n')
		case 'r':
			out.WriteByte('\r')
		case 't':
			out.WriteByte('\t')
		case 'b':
			out.WriteByte('\b')
		case 'f':
			out.WriteByte('\f')
		default:
			out.WriteByte(c)
			out.WriteByte(s[i+1])
		}
		i++
	}
	return out.String()
}

// WrapMessage applies the auto-wrapping rule: a payload that does not look
// like JSON is wrapped as a single-field object so callers may pass plain
// text. Pre-formed JSON (anything starting with { or [ after trimming)
// passes through unchanged; an empty payload becomes {"message":""}.
func WrapMessage(payload string) string {
	trimmed := strings.TrimSpace(payload)
	if strings.HasPrefix(trimmed, "{") || strings.HasPrefix(trimmed, "[") {
		return payload
	}
	return `{"message":"` + Escape(payload) + `"}`
}
