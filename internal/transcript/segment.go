package transcript

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

// state is the segmenter's position in the command/output cycle.
type state int

const (
	// stateAwaiting means no command is open; lines are candidates for a
	// prompt or an implicit command.
	stateAwaiting state = iota
	// stateActive means a command is open and collecting output.
	stateActive
)

// segmenter reconstructs command/output records from cleaned lines. It is
// built fresh per parse and holds all mutable state of one invocation.
type segmenter struct {
	prompt  *regexp.Regexp
	st      state
	command string
	output  []string
	nextID  int
	records []Record
}

func newSegmenter(prompt *regexp.Regexp) *segmenter {
	return &segmenter{prompt: prompt, nextID: 1}
}

// feed classifies one cleaned line and applies the corresponding transition.
// Exactly one decision is made per line.
func (s *segmenter) feed(line string) {
	if m := s.prompt.FindStringSubmatch(line); m != nil {
		s.onPrompt(strings.TrimSpace(m[2]))
		return
	}
	switch s.st {
	case stateAwaiting:
		s.onLooseLine(line)
	case stateActive:
		s.onOutputLine(line)
	}
}

// onPrompt handles a recognized prompt line carrying typed text (possibly
// empty). An open command is finalized first. A bare prompt discards any
// buffered output without emitting; if one shows up mid-capture the trailing
// output of the previous repaint is lost, which is the intended trade-off.
func (s *segmenter) onPrompt(typed string) {
	if s.st == stateActive {
		s.finalize()
	}
	s.output = nil
	if typed == "" {
		s.command = ""
		s.st = stateAwaiting
		return
	}
	s.command = typed
	s.st = stateActive
}

// onLooseLine handles a non-prompt line while no command is open. Full-screen
// programs repaint without emitting a prompt, so a non-indented, non-blank
// line is taken as the command itself. Blank or indented lines are dropped.
func (s *segmenter) onLooseLine(line string) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || strings.HasPrefix(line, " ") || strings.HasPrefix(line, "\t") {
		return
	}
	s.command = trimmed
	s.output = nil
	s.st = stateActive
}

// onOutputLine handles a non-prompt line while a command is open. The
// terminal's echo of the typed command is dropped; everything else is
// buffered right-trimmed.
func (s *segmenter) onOutputLine(line string) {
	if strings.TrimSpace(line) == s.command {
		return
	}
	s.output = append(s.output, strings.TrimRightFunc(line, unicode.IsSpace))
}

// finalize emits the open command with the next sequential id. Output lines
// are joined with newlines and the joined text trimmed of surrounding
// whitespace.
func (s *segmenter) finalize() {
	s.records = append(s.records, Record{
		ID:      strconv.Itoa(s.nextID),
		Command: s.command,
		Output:  strings.TrimSpace(strings.Join(s.output, "\n")),
	})
	s.nextID++
}

// finish runs the end-of-stream transition and returns all finalized records.
func (s *segmenter) finish() []Record {
	if s.st == stateActive {
		s.finalize()
		s.st = stateAwaiting
		s.command = ""
		s.output = nil
	}
	return s.records
}
