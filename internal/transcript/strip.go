package transcript

// StripControl removes terminal escape and control sequences from one line of
// normalized text, leaving printable content untouched. A malformed escape
// sequence loses its ESC byte to the final control-byte pass and its payload
// may survive as visible garbage; that is accepted rather than guessed at.
// StripControl never fails and re-stripping a clean line is a no-op.
func StripControl(line string) string {
	s := oscTitlePattern.ReplaceAllString(line, "")
	s = bracketedPastePattern.ReplaceAllString(s, "")
	s = shiftPattern.ReplaceAllString(s, "")
	s = escapePattern.ReplaceAllString(s, "")
	return controlBytePattern.ReplaceAllString(s, "")
}
