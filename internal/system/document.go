package system

import (
	"fmt"
	"sort"
	"time"

	"github.com/san-kum/nemsgen/internal/nems"
	"github.com/san-kum/nemsgen/internal/sequence"
)

// BuildOptions carries the late-bound values supplied at write time.
// Override keys take precedence over entry-stored attributes for the keys
// they name; other entry attributes are untouched.
type BuildOptions struct {
	// Overrides lands on every component block whose role stores or
	// recognizes the key (history_n, coupling_mode, ...). The restart_n
	// and stop_n keys also replace the matching ALLCOMP scalars.
	Overrides *nems.Attributes

	// AllComp adds to or replaces keys in the ALLCOMP_attributes block.
	AllComp *nems.Attributes
}

// ComponentBlock is one per-role section of the assembled document, with
// write-time overrides already merged in.
type ComponentBlock struct {
	Role        nems.Role
	Model       string
	PetBounds   string
	Threads     int
	Attributes  *nems.Attributes
	ForcingFile string
}

// Document is the assembled configuration: everything the file writers
// need, in final order, with no remaining lookups.
type Document struct {
	Mode            sequence.Mode
	StartTime       time.Time
	Duration        time.Duration
	Interval        time.Duration
	TotalProcessors int
	Components      []ComponentBlock
	Sequence        *sequence.Cycle
	AllComp         *nems.Attributes
}

// BuildDocument assembles the complete document for the given mode. It is
// a pure function of the system's entries, connections, and interval plus
// opts: repeated calls with unchanged inputs yield identical documents.
// A system with zero registered entries cannot be written and fails here,
// not at registration time, since partial construction is legitimate.
func (s *System) BuildDocument(mode sequence.Mode, opts BuildOptions) (*Document, error) {
	if len(s.entries) == 0 {
		return nil, fmt.Errorf("%w: no model entries registered", nems.ErrInvalid)
	}

	doc := &Document{
		Mode:            mode,
		StartTime:       s.StartTime,
		Duration:        s.Duration(),
		Interval:        s.Interval,
		TotalProcessors: s.TotalProcessors(),
		Sequence:        sequence.Build(s.entries, s.conns, s.Interval, mode),
		AllComp:         allCompAttributes(opts),
	}

	for _, e := range s.entries {
		doc.Components = append(doc.Components, ComponentBlock{
			Role:        e.Role,
			Model:       e.Name,
			PetBounds:   e.PetBounds(),
			Threads:     e.Threads,
			Attributes:  mergedAttributes(e, opts.Overrides),
			ForcingFile: e.ForcingFile,
		})
	}
	return doc, nil
}

// ComponentList returns the role prefixes in registration order.
func (d *Document) ComponentList() []string {
	out := make([]string, len(d.Components))
	for i, c := range d.Components {
		out[i] = string(c.Role)
	}
	return out
}

// SortedComponentList is the alphabetical variant used by the UFS writer.
func (d *Document) SortedComponentList() []string {
	out := d.ComponentList()
	sort.Strings(out)
	return out
}

// mergedAttributes applies write-time overrides on top of an entry's
// stored attributes. An override is relevant to a block when the entry
// already stores the key or the role's model is known to read it.
func mergedAttributes(e *nems.Entry, overrides *nems.Attributes) *nems.Attributes {
	merged := e.Attributes.Clone()
	if overrides == nil {
		return merged
	}
	for _, key := range overrides.Keys() {
		if !merged.Has(key) && !recognizes(e.Role, key) {
			continue
		}
		v, _ := overrides.Get(key)
		merged.Set(key, v)
	}
	return merged
}

func recognizes(role nems.Role, key string) bool {
	for _, known := range nems.RecognizedAttributes[role] {
		if known == key {
			return true
		}
	}
	return false
}

// Run-control and orbital scalars for the ALLCOMP trailer. Values follow
// the UFS coupled defaults; restart_n and stop_n yield to write-time
// overrides, everything else to opts.AllComp.
func allCompAttributes(opts BuildOptions) *nems.Attributes {
	a := nems.NewAttributes()
	a.Set("ScalarFieldCount", nems.Int(3))
	a.Set("ScalarFieldIdxGridNX", nems.Int(1))
	a.Set("ScalarFieldIdxGridNY", nems.Int(2))
	a.Set("ScalarFieldIdxNextSwCday", nems.Int(3))
	a.Set("ScalarFieldName", nems.String("cpl_scalars"))
	a.Set("start_type", nems.String("startup"))
	a.Set("restart_dir", nems.String("RESTART/"))
	a.Set("case_name", nems.String("ufs.cpld"))
	a.Set("restart_n", nems.Int(12))
	a.Set("restart_option", nems.String("nhours"))
	a.Set("restart_ymd", nems.Int(-999))
	a.Set("orb_eccen", nems.String("1.e36"))
	a.Set("orb_iyear", nems.Int(2000))
	a.Set("orb_iyear_align", nems.Int(2000))
	a.Set("orb_mode", nems.String("fixed_year"))
	a.Set("orb_mvelp", nems.String("1.e36"))
	a.Set("orb_obliq", nems.String("1.e36"))
	a.Set("stop_n", nems.Int(120))
	a.Set("stop_option", nems.String("nhours"))
	a.Set("stop_ymd", nems.Int(-999))

	if opts.Overrides != nil {
		for _, key := range []string{"restart_n", "stop_n"} {
			if v, ok := opts.Overrides.Get(key); ok {
				a.Set(key, v)
			}
		}
	}
	return a.Merge(opts.AllComp)
}
