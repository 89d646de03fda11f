package transcript

import "strings"

// Decode converts raw capture bytes to text. Invalid UTF-8 sequences are
// replaced with U+FFFD instead of failing; capture files routinely contain
// torn multi-byte sequences around redraws.
func Decode(raw []byte) string {
	return strings.ToValidUTF8(string(raw), "�")
}

// Normalize unifies line endings and drops NUL bytes: \r\n and lone \r both
// become \n. No other mutation.
func Normalize(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	return strings.ReplaceAll(text, "\x00", "")
}
