package profile

import (
	"errors"
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"
)

// Profile describes how one capture flavor looks on the wire: which characters
// end a shell prompt, and the sentinel lines the capturing tool wraps the
// session in. The zero defaults match util-linux script(1) with a POSIX shell.
type Profile struct {
	Name          string `yaml:"name"`
	Terminators   string `yaml:"terminators"`
	StartSentinel string `yaml:"start_sentinel"`
	EndSentinel   string `yaml:"end_sentinel"`

	prompt *regexp.Regexp
	start  *regexp.Regexp
	end    *regexp.Regexp
}

// Default returns the profile for script(1) output and conventional
// sh/bash/zsh prompts.
func Default() *Profile {
	p := &Profile{
		Name:          "script",
		Terminators:   "$#%>",
		StartSentinel: `^Script started on.*\[.*\]$`,
		EndSentinel:   `^Script done on.*\[.*\]$`,
	}
	if err := p.compile(); err != nil {
		panic(fmt.Sprintf("default profile does not compile: %v", err))
	}
	return p
}

// Load reads a profile from a YAML file. Fields left empty in the file fall
// back to the default profile's values.
func Load(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read profile file: %w", err)
	}

	p := Default()
	if err := yaml.Unmarshal(data, p); err != nil {
		return nil, fmt.Errorf("parse profile file %q: %w", path, err)
	}
	if err := p.validate(); err != nil {
		return nil, fmt.Errorf("invalid profile %q: %w", path, err)
	}
	if err := p.compile(); err != nil {
		return nil, fmt.Errorf("invalid profile %q: %w", path, err)
	}
	return p, nil
}

func (p *Profile) validate() error {
	if p.Terminators == "" {
		return errors.New("terminators must not be empty")
	}
	if p.StartSentinel == "" {
		return errors.New("start_sentinel must not be empty")
	}
	if p.EndSentinel == "" {
		return errors.New("end_sentinel must not be empty")
	}
	return nil
}

func (p *Profile) compile() error {
	// The prefix is greedy: when a line offers several terminator
	// candidates the match binds to the last one.
	prompt, err := regexp.Compile(`^(.+)[` + regexp.QuoteMeta(p.Terminators) + `]\s*(.*)$`)
	if err != nil {
		return fmt.Errorf("compile prompt pattern: %w", err)
	}
	start, err := regexp.Compile(p.StartSentinel)
	if err != nil {
		return fmt.Errorf("compile start_sentinel: %w", err)
	}
	end, err := regexp.Compile(p.EndSentinel)
	if err != nil {
		return fmt.Errorf("compile end_sentinel: %w", err)
	}
	p.prompt, p.start, p.end = prompt, start, end
	return nil
}

// Prompt returns the compiled prompt-line pattern. Submatch 1 is the prompt
// prefix, submatch 2 the trailing typed text.
func (p *Profile) Prompt() *regexp.Regexp { return p.prompt }

// Start returns the compiled start-sentinel pattern.
func (p *Profile) Start() *regexp.Regexp { return p.start }

// End returns the compiled end-sentinel pattern.
func (p *Profile) End() *regexp.Regexp { return p.end }
