package sequence

import (
	"strconv"
	"time"
)

// Step is one element of a coupling cycle: either a single directive line
// or a nested sub-cycle running at a finer interval.
type Step struct {
	Line string
	Sub  *Cycle
}

// Cycle is a timestep block: the directives executed once per Interval,
// rendered as "@<seconds> ... @". Sub-cycles nest recursively.
type Cycle struct {
	Interval time.Duration
	Steps    []Step
}

func (c *Cycle) addLine(line string) {
	c.Steps = append(c.Steps, Step{Line: line})
}

func (c *Cycle) addSub(sub *Cycle) {
	c.Steps = append(c.Steps, Step{Sub: sub})
}

// Empty reports whether the cycle holds no directives.
func (c *Cycle) Empty() bool { return len(c.Steps) == 0 }

// Lines renders the block. Every line carries prefix; nested content is
// indented by one more unit. Both output dialects (the indented
// nems.configure runSeq and the flat ufs.configure one) render through
// here with different prefix/unit choices.
func (c *Cycle) Lines(prefix, unit string) []string {
	seconds := strconv.FormatInt(int64(c.Interval/time.Second), 10)
	out := []string{prefix + "@" + seconds}
	for _, s := range c.Steps {
		if s.Sub != nil {
			out = append(out, s.Sub.Lines(prefix+unit, unit)...)
			continue
		}
		out = append(out, prefix+unit+s.Line)
	}
	return append(out, prefix+"@")
}
