// Package transcript turns a raw byte-level capture of an interactive
// terminal session into an ordered sequence of command/output records.
//
// The pipeline is a batch, whole-file transform: decode permissively,
// normalize line endings, gate on the capture tool's session sentinels, strip
// terminal control sequences per line, and run a heuristic prompt/command
// state machine over what remains. Structural oddities in the capture (no
// sentinels, unconventional prompts, full-screen repaints) degrade the result
// instead of failing it.
package transcript

import (
	"strings"

	"github.com/user/termscribe/internal/profile"
)

// Engine segments terminal captures according to one prompt profile. An
// Engine is stateless across calls; independent parses may run concurrently.
type Engine struct {
	prof *profile.Profile
}

// New returns an engine using the given profile, or the default script(1)
// profile when prof is nil.
func New(prof *profile.Profile) *Engine {
	if prof == nil {
		prof = profile.Default()
	}
	return &Engine{prof: prof}
}

// Parse converts one raw capture into finalized records. It never fails:
// a capture with no recognizable session yields zero records.
func (e *Engine) Parse(raw []byte) []Record {
	text := Normalize(Decode(raw))

	gate := &boundary{start: e.prof.Start(), end: e.prof.End()}
	seg := newSegmenter(e.prof.Prompt())

	for _, line := range strings.Split(text, "\n") {
		forward, halt := gate.admit(line)
		if halt {
			break
		}
		if !forward {
			continue
		}
		seg.feed(StripControl(line))
	}
	return seg.finish()
}
