// Package jsonscan implements the deliberately minimal string-level JSON
// handling the invoker depends on: a seven-sequence escaper, a
// priority-ordered field scanner with backslash-parity quote detection, and
// the auto-wrapping rule for plain-text payloads.
//
// This is not a JSON codec and must not become one. The downstream
// extraction contract depends on this exact boundary-detection algorithm,
// so replacing it with encoding/json would change observable behavior.
package jsonscan
