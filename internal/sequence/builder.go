package sequence

import (
	"fmt"
	"time"

	"github.com/san-kum/nemsgen/internal/nems"
)

// Build expands the registered entries and connections into one coupling
// cycle for the given mode. The result is pure: identical inputs produce
// an identical directive tree. Ties are never re-sorted; whenever several
// directives are eligible at the same stage they keep entry/connection
// registration order. Zero entries yield an empty cycle.
func Build(entries []*nems.Entry, conns Connections, interval time.Duration, mode Mode) *Cycle {
	cycle := &Cycle{Interval: interval}
	steps, ok := modeSteps[mode]
	if !ok {
		steps = modeSteps[Traditional]
	}

	b := builder{entries: entries, conns: conns}
	for _, s := range steps {
		switch s {
		case stepMediatorPrep:
			b.mediatorPrep(cycle)
		case stepExchangeAll:
			b.exchanges(cycle, conns)
		case stepExchangeInward:
			b.exchanges(cycle, b.inward())
		case stepExchangeOutward:
			b.exchanges(cycle, b.outward())
		case stepModelRuns:
			b.modelRuns(cycle)
		case stepMediatorPost:
			b.mediatorPost(cycle)
		case stepMediatorHousekeeping:
			b.mediatorHousekeeping(cycle)
		}
	}
	return cycle
}

// ExchangeLine is the wire form of one data-exchange directive.
func ExchangeLine(c Connection) string {
	return fmt.Sprintf("%s -> %s :remapMethod=%s", c.Source, c.Target, c.Method)
}

type builder struct {
	entries []*nems.Entry
	conns   Connections
}

func (b builder) hasMediator() bool {
	for _, e := range b.entries {
		if e.Role == nems.RoleMED {
			return true
		}
	}
	return false
}

// mediatorPartners lists the non-mediator roles coupled through MED, in
// entry registration order.
func (b builder) mediatorPartners() []nems.Role {
	var partners []nems.Role
	for _, e := range b.entries {
		if e.Role == nems.RoleMED {
			continue
		}
		for _, c := range b.conns {
			if (c.Source == e.Role && c.Target == nems.RoleMED) ||
				(c.Source == nems.RoleMED && c.Target == e.Role) {
				partners = append(partners, e.Role)
				break
			}
		}
	}
	return partners
}

// inward: exchanges toward the mediator, plus any exchange that bypasses
// it entirely. outward: exchanges leaving the mediator.
func (b builder) inward() Connections {
	var out Connections
	for _, c := range b.conns {
		if c.Source != nems.RoleMED {
			out = append(out, c)
		}
	}
	return out
}

func (b builder) outward() Connections {
	return b.conns.From(nems.RoleMED)
}

func (b builder) exchanges(cycle *Cycle, conns Connections) {
	for _, c := range conns {
		cycle.addLine(ExchangeLine(c))
	}
}

func (b builder) mediatorPrep(cycle *Cycle) {
	for _, role := range b.mediatorPartners() {
		for _, phase := range prepPhases(role) {
			cycle.addLine("MED " + phase)
		}
	}
}

func (b builder) mediatorPost(cycle *Cycle) {
	for _, role := range b.mediatorPartners() {
		cycle.addLine("MED med_phases_post_" + role.Lower())
	}
}

func (b builder) mediatorHousekeeping(cycle *Cycle) {
	if !b.hasMediator() {
		return
	}
	cycle.addLine("MED med_phases_history_write")
	cycle.addLine("MED med_phases_restart_write")
}

// modelRuns emits one bare invocation per registered role. Consecutive
// entries sharing a finer coupling interval fold into one nested block.
func (b builder) modelRuns(cycle *Cycle) {
	var sub *Cycle
	for _, e := range b.entries {
		if e.SubInterval <= 0 {
			sub = nil
			cycle.addLine(string(e.Role))
			continue
		}
		if sub == nil || sub.Interval != e.SubInterval {
			sub = &Cycle{Interval: e.SubInterval}
			cycle.addSub(sub)
		}
		sub.addLine(string(e.Role))
	}
}

// Ocean and wave fields are accumulated across the cycle and averaged
// before handoff; the other components take a single prep phase.
func prepPhases(role nems.Role) []string {
	switch role {
	case nems.RoleOCN, nems.RoleWAV:
		return []string{
			"med_phases_prep_" + role.Lower() + "_accum",
			"med_phases_prep_" + role.Lower() + "_avg",
		}
	default:
		return []string{"med_phases_prep_" + role.Lower()}
	}
}
