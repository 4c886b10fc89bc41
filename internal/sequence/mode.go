package sequence

import (
	"fmt"
	"strings"

	"github.com/san-kum/nemsgen/internal/nems"
)

// Mode selects the canonical phase ordering for one coupling cycle. The
// directive vocabulary (exchange lines, bare invocations, mediator phase
// lines) is shared between modes; only the order differs.
type Mode string

const (
	// Traditional is the NEMS driver convention: mediator prep phases,
	// then exchanges, then model runs, then mediator post phases.
	Traditional Mode = "traditional"

	// Coastal is the UFS coastal driver convention: exchanges toward
	// the mediator, mediator post then prep phases, exchanges outward,
	// then model runs.
	Coastal Mode = "coastal"
)

func ParseMode(s string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case Traditional:
		return Traditional, nil
	case Coastal:
		return Coastal, nil
	}
	return "", fmt.Errorf("%w: unknown sequence mode %q", nems.ErrInvalid, s)
}

// step is one phase-generating stage of cycle assembly. Each mode is an
// ordered list of steps over the same vocabulary rather than a divergent
// code path.
type step int

const (
	stepMediatorPrep step = iota
	stepExchangeAll
	stepExchangeInward
	stepExchangeOutward
	stepModelRuns
	stepMediatorPost
	stepMediatorHousekeeping
)

var modeSteps = map[Mode][]step{
	Traditional: {
		stepMediatorPrep,
		stepExchangeAll,
		stepModelRuns,
		stepMediatorPost,
		stepMediatorHousekeeping,
	},
	Coastal: {
		stepExchangeInward,
		stepMediatorPost,
		stepMediatorPrep,
		stepExchangeOutward,
		stepModelRuns,
		stepMediatorHousekeeping,
	},
}
