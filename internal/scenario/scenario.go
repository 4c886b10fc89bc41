// Package scenario loads and saves the declarative YAML description of a
// coupled run: the time window, the participating components with their
// processor ranges and attributes, and the connection list. A scenario
// builds into a system.System; file order is registration order.
package scenario

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/nemsgen/internal/nems"
	"github.com/san-kum/nemsgen/internal/sequence"
	"github.com/san-kum/nemsgen/internal/system"
)

type Scenario struct {
	Name            string      `yaml:"name,omitempty"`
	StartTime       string      `yaml:"start_time"`
	EndTime         string      `yaml:"end_time"`
	IntervalSeconds int         `yaml:"interval_seconds"`
	Mode            string      `yaml:"mode"`
	Components      []Component `yaml:"components"`
	Connections     []Link      `yaml:"connections,omitempty"`
}

type Component struct {
	Role               string     `yaml:"role"`
	Name               string     `yaml:"name"`
	Petlist            []int      `yaml:"petlist"`
	Threads            int        `yaml:"threads,omitempty"`
	Attributes         Attributes `yaml:"attributes,omitempty"`
	ForcingFile        string     `yaml:"forcing_file,omitempty"`
	SubIntervalSeconds int        `yaml:"sub_interval_seconds,omitempty"`
}

type Link struct {
	From   string `yaml:"from"`
	To     string `yaml:"to"`
	Method string `yaml:"method,omitempty"`
}

func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var sc Scenario
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, err
	}
	return &sc, nil
}

func Save(path string, sc *Scenario) error {
	data, err := yaml.Marshal(sc)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// SequenceMode resolves the scenario's mode string, defaulting to the
// traditional ordering when unset.
func (sc *Scenario) SequenceMode() (sequence.Mode, error) {
	if sc.Mode == "" {
		return sequence.Traditional, nil
	}
	return sequence.ParseMode(sc.Mode)
}

// Build constructs the modeling system the scenario describes.
func (sc *Scenario) Build() (*system.System, error) {
	start, err := ParseTime(sc.StartTime)
	if err != nil {
		return nil, fmt.Errorf("%w: start_time: %v", nems.ErrInvalid, err)
	}
	end, err := ParseTime(sc.EndTime)
	if err != nil {
		return nil, fmt.Errorf("%w: end_time: %v", nems.ErrInvalid, err)
	}

	sys, err := system.New(start, end, time.Duration(sc.IntervalSeconds)*time.Second)
	if err != nil {
		return nil, err
	}

	for _, c := range sc.Components {
		entry, err := c.build()
		if err != nil {
			return nil, err
		}
		if err := sys.Register(entry); err != nil {
			return nil, err
		}
	}

	for _, l := range sc.Connections {
		source, err := nems.ParseRole(l.From)
		if err != nil {
			return nil, err
		}
		target, err := nems.ParseRole(l.To)
		if err != nil {
			return nil, err
		}
		if err := sys.Connect(source, target, l.Method); err != nil {
			return nil, err
		}
	}
	return sys, nil
}

func (c Component) build() (*nems.Entry, error) {
	role, err := nems.ParseRole(c.Role)
	if err != nil {
		return nil, err
	}
	if len(c.Petlist) != 2 {
		return nil, fmt.Errorf("%w: %s petlist needs exactly two bounds, got %d",
			nems.ErrInvalid, role, len(c.Petlist))
	}
	threads := c.Threads
	if threads == 0 {
		threads = 1
	}
	entry, err := nems.NewEntry(c.Name, role, c.Petlist[0], c.Petlist[1], threads)
	if err != nil {
		return nil, err
	}
	for _, p := range c.Attributes.Pairs {
		entry.Attributes.Set(p.Key, nems.FromAny(p.Value))
	}
	entry.ForcingFile = c.ForcingFile
	entry.SubInterval = time.Duration(c.SubIntervalSeconds) * time.Second
	return entry, nil
}

// Time formats accepted in scenario files, most specific first.
var timeFormats = []string{
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
	"20060102 15:04:05",
	"20060102 15:04",
	"20060102",
}

func ParseTime(value string) (time.Time, error) {
	for _, layout := range timeFormats {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("time %q does not match any known format", value)
}
