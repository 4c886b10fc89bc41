package nems

import (
	"fmt"
	"time"
)

// Entry describes one model component: the executable name the driver
// should load, its role slot, its inclusive PET (processor) range, and
// its attribute block. Entries carry no behavior beyond data; all
// cross-component relationships are expressed in the sequence package.
type Entry struct {
	Name       string
	Role       Role
	PetLower   int
	PetUpper   int
	Threads    int
	Attributes *Attributes

	// ForcingFile, when set, adds a forcing-file reference for this
	// component to config.rc.
	ForcingFile string

	// SubInterval, when positive, couples this component at a finer
	// cadence than the overall cycle: its invocation is wrapped in a
	// nested timestep block.
	SubInterval time.Duration
}

// NewEntry validates the processor assignment eagerly: bounds are an
// inclusive pair with lo <= hi and lo >= 0, threads must be positive.
// Overlap between the ranges of different entries is legal input and is
// left to the driver runtime to arbitrate.
func NewEntry(name string, role Role, petLower, petUpper, threads int) (*Entry, error) {
	if petLower < 0 {
		return nil, fmt.Errorf("%w: %s petlist lower bound %d is negative", ErrInvalid, role, petLower)
	}
	if petLower > petUpper {
		return nil, fmt.Errorf("%w: %s petlist bounds %d %d are reversed", ErrInvalid, role, petLower, petUpper)
	}
	if threads < 1 {
		return nil, fmt.Errorf("%w: %s omp_num_threads %d must be positive", ErrInvalid, role, threads)
	}
	return &Entry{
		Name:       name,
		Role:       role,
		PetLower:   petLower,
		PetUpper:   petUpper,
		Threads:    threads,
		Attributes: NewAttributes(),
	}, nil
}

// Processors is the PET count assigned to this entry.
func (e *Entry) Processors() int {
	return e.PetUpper - e.PetLower + 1
}

// PetBounds renders the petlist pair as it appears on the wire ("0 159").
func (e *Entry) PetBounds() string {
	return fmt.Sprintf("%d %d", e.PetLower, e.PetUpper)
}

// RecognizedAttributes lists the option names each role's downstream model
// is known to read. The list is a documentation aid, not a schema: any
// attribute name is accepted and passed through verbatim.
var RecognizedAttributes = map[Role][]string{
	RoleMED: {
		"ATM_model", "OCN_model", "WAV_model", "ICE_model",
		"history_n", "history_option", "history_ymd",
		"coupling_mode", "pio_typename", "pio_stride",
	},
	RoleATM: {"Verbosity", "DumpFields", "ProfileMemory", "OverwriteSlice"},
	RoleOCN: {
		"Verbosity", "DumpFields", "ProfileMemory", "OverwriteSlice",
		"meshloc", "CouplingConfig",
	},
	RoleWAV: {"Verbosity", "DumpFields", "ProfileMemory", "OverwriteSlice"},
}
