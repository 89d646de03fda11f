package transcript

import "regexp"

// boundary gates lines to the segmenter. Forwarding begins after the first
// start-sentinel and the first end-sentinel halts processing outright, no
// matter where it appears.
type boundary struct {
	start  *regexp.Regexp
	end    *regexp.Regexp
	active bool
}

// admit reports whether the line should be forwarded to the segmenter and
// whether processing must halt. Sentinel lines themselves are never forwarded.
func (b *boundary) admit(line string) (forward, halt bool) {
	if b.start.MatchString(line) {
		b.active = true
		return false, false
	}
	if b.end.MatchString(line) {
		return false, true
	}
	return b.active, false
}
