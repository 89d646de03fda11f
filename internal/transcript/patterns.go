package transcript

import "regexp"

var (
	oscTitlePattern       *regexp.Regexp
	bracketedPastePattern *regexp.Regexp
	shiftPattern          *regexp.Regexp
	escapePattern         *regexp.Regexp
	controlBytePattern    *regexp.Regexp
)

func init() {
	// Window-title sequence up to the terminating BEL.
	oscTitlePattern = regexp.MustCompile(`\]0;[^\x07]*\x07`)
	// Bracketed-paste enable/disable; the introducer bracket is often
	// already gone by the time the line reaches us.
	bracketedPastePattern = regexp.MustCompile(`\[?\?2004[hl]`)
	// Shift-out / shift-in charset switches.
	shiftPattern = regexp.MustCompile(`[\x0e\x0f]`)
	// ESC followed by a 7-bit Fe byte, or a full CSI sequence:
	// parameter bytes, intermediate bytes, one final byte.
	escapePattern = regexp.MustCompile(`\x1b(?:[@-Z\x5c-\x5f]|\[[0-?]*[ -/]*[@-~])`)
	// Catch-all for whatever control bytes survive the passes above.
	// Tab is the one control byte that carries content.
	controlBytePattern = regexp.MustCompile(`[\x00-\x08\x0b-\x1f\x7f]`)
}
