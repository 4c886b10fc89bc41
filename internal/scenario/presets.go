package scenario

// Presets are ready-made scenarios for common coupled setups: a coastal
// ATM+OCN run mediated by CMEPS, and a standalone ocean run.
var Presets = map[string]*Scenario{
	"atm2ocn": {
		Name:            "coastal ATM+OCN through CMEPS",
		StartTime:       "2012-10-27 00:00:00",
		EndTime:         "2012-10-29 08:00:00",
		IntervalSeconds: 1800,
		Mode:            "coastal",
		Components: []Component{
			{
				Role: "MED", Name: "cmeps", Petlist: []int{0, 319}, Threads: 1,
				Attributes: Attributes{Pairs: []Pair{
					{Key: "ATM_model", Value: "datm"},
					{Key: "OCN_model", Value: "schism"},
					{Key: "history_n", Value: 1},
					{Key: "history_option", Value: "nhours"},
					{Key: "history_ymd", Value: -999},
					{Key: "coupling_mode", Value: "coastal"},
					{Key: "pio_typename", Value: "PNETCDF"},
					{Key: "pio_stride", Value: 8},
				}},
			},
			{
				Role: "ATM", Name: "datm", Petlist: []int{0, 159}, Threads: 1,
				Attributes: Attributes{Pairs: []Pair{
					{Key: "Verbosity", Value: 0},
					{Key: "DumpFields", Value: "false"},
					{Key: "ProfileMemory", Value: "false"},
					{Key: "OverwriteSlice", Value: "true"},
				}},
			},
			{
				Role: "OCN", Name: "schism", Petlist: []int{160, 319}, Threads: 1,
				Attributes: Attributes{Pairs: []Pair{
					{Key: "Verbosity", Value: 0},
					{Key: "DumpFields", Value: "false"},
					{Key: "ProfileMemory", Value: "false"},
					{Key: "OverwriteSlice", Value: "true"},
					{Key: "meshloc", Value: "element"},
					{Key: "CouplingConfig", Value: "none"},
				}},
			},
		},
		Connections: []Link{
			{From: "ATM", To: "MED"},
			{From: "OCN", To: "MED"},
		},
	},
	"ocn": {
		Name:            "standalone ocean",
		StartTime:       "2020-06-01 00:00:00",
		EndTime:         "2020-06-02 00:00:00",
		IntervalSeconds: 3600,
		Mode:            "coastal",
		Components: []Component{
			{
				Role: "OCN", Name: "schism", Petlist: []int{8, 15}, Threads: 1,
				Attributes: Attributes{Pairs: []Pair{
					{Key: "Verbosity", Value: 0},
					{Key: "DumpFields", Value: "false"},
					{Key: "ProfileMemory", Value: "false"},
					{Key: "OverwriteSlice", Value: "true"},
					{Key: "meshloc", Value: "element"},
					{Key: "CouplingConfig", Value: "none"},
				}},
			},
		},
	},
}

// PresetNames lists the built-in scenarios in a stable order.
func PresetNames() []string {
	return []string{"atm2ocn", "ocn"}
}

// GetPreset returns a named preset, or nil when the name is unknown.
func GetPreset(name string) *Scenario {
	return Presets[name]
}
