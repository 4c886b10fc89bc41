// Package system ties the data model together: it owns the registered
// component entries and their connection graph, carries the simulated
// time window, and assembles the document that the configfile writers
// serialize.
package system

import (
	"fmt"
	"log"
	"time"

	"github.com/san-kum/nemsgen/internal/nems"
	"github.com/san-kum/nemsgen/internal/sequence"
)

// System is the aggregate modeling system. It is exclusively owned by its
// caller for the duration of configuration construction; there is no
// process-wide instance.
type System struct {
	StartTime time.Time
	EndTime   time.Time
	Interval  time.Duration

	entries []*nems.Entry
	index   map[nems.Role]int
	conns   sequence.Connections
}

func New(start, end time.Time, interval time.Duration) (*System, error) {
	if !end.After(start) {
		return nil, fmt.Errorf("%w: end time %s is not after start time %s",
			nems.ErrInvalid, end.Format(time.RFC3339), start.Format(time.RFC3339))
	}
	if interval <= 0 {
		return nil, fmt.Errorf("%w: coupling interval %s must be positive", nems.ErrInvalid, interval)
	}
	if end.Sub(start)%interval != 0 {
		log.Printf("warning: duration %s is not an integer multiple of interval %s", end.Sub(start), interval)
	}
	return &System{
		StartTime: start,
		EndTime:   end,
		Interval:  interval,
		index:     make(map[nems.Role]int),
	}, nil
}

func (s *System) Duration() time.Duration { return s.EndTime.Sub(s.StartTime) }

// Register adds entry under its role key. Registering over an existing
// role replaces the old entry in place: last write wins, but the role
// keeps its original position in emitted output.
func (s *System) Register(entry *nems.Entry) error {
	if entry == nil {
		return fmt.Errorf("%w: nil entry", nems.ErrInvalid)
	}
	if i, ok := s.index[entry.Role]; ok {
		s.entries[i] = entry
		return nil
	}
	s.index[entry.Role] = len(s.entries)
	s.entries = append(s.entries, entry)
	return nil
}

func (s *System) Entry(role nems.Role) (*nems.Entry, bool) {
	i, ok := s.index[role]
	if !ok {
		return nil, false
	}
	return s.entries[i], true
}

// Entries returns the registered entries in registration order.
func (s *System) Entries() []*nems.Entry {
	out := make([]*nems.Entry, len(s.entries))
	copy(out, s.entries)
	return out
}

func (s *System) Connections() sequence.Connections {
	out := make(sequence.Connections, len(s.conns))
	copy(out, s.conns)
	return out
}

// Connect declares a directed exchange between two registered roles. Both
// endpoints must already be registered; self-connections are rejected.
func (s *System) Connect(source, target nems.Role, method string) error {
	if source == target {
		return fmt.Errorf("%w: connection from %s to itself", nems.ErrInvalid, source)
	}
	if _, ok := s.index[source]; !ok {
		return fmt.Errorf("%w: connection source %s", nems.ErrUnknownRole, source)
	}
	if _, ok := s.index[target]; !ok {
		return fmt.Errorf("%w: connection target %s", nems.ErrUnknownRole, target)
	}
	s.conns = append(s.conns, sequence.NewConnection(source, target, method))
	return nil
}

// TotalProcessors sums the PET counts of all registered entries
// (PE_MEMBER01 in model_configure).
func (s *System) TotalProcessors() int {
	total := 0
	for _, e := range s.entries {
		total += e.Processors()
	}
	return total
}
