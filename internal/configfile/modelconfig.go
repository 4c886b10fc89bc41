package configfile

import (
	"fmt"
	"strings"
	"time"

	"github.com/san-kum/nemsgen/internal/system"
)

// ModelConfigureFileName is the flat key-value file carrying start time,
// forecast length, and output options.
const ModelConfigureFileName = "model_configure"

// AtmNamelistFileName aliases model_configure for legacy drivers that
// look the namelist up under its old name.
const AtmNamelistFileName = "atm_namelist.rc"

// keyColumn pads keys so values align at a fixed column, matching the
// layout the drivers were built against.
const keyColumn = 25

// ModelConfigureOptions are the caller-supplied numeric and boolean
// options of the UFS model_configure flavor.
type ModelConfigureOptions struct {
	DtAtmos            int
	RestartInterval    int
	Quilting           bool
	QuiltingRestart    bool
	WriteGroups        int
	WriteTasksPerGroup int
	Itasks             int
	OutputHistory      bool
	Imo                int
	Jmo                int
	OutputFH           string
}

// RenderModelConfigure produces the traditional model_configure text.
// When namelist is true the namelist key points at atm_namelist.rc and a
// symlink by that name is expected alongside the file.
func RenderModelConfigure(doc *system.Document, namelist bool) string {
	name := ModelConfigureFileName
	if namelist {
		name = AtmNamelistFileName
	}
	lines := []string{
		kv("total_member:", "1"),
		kv("print_esmf:", ".true."),
		kv("namelist:", name),
		kv("PE_MEMBER01:", itoa(doc.TotalProcessors)),
	}
	lines = append(lines, startTimeLines(doc.StartTime)...)
	lines = append(lines,
		kv("nhours_fcst:", itoa(durationHours(doc.Duration))),
		kv("RUN_CONTINUE:", ".false."),
		kv("ENS_SPS:", ".false."),
	)
	return strings.Join(lines, "\n")
}

// RenderUFSModelConfigure produces the UFS model_configure flavor, which
// adds the atmosphere timestep and the quilting/write-component options.
// Booleans render as Fortran literals.
func RenderUFSModelConfigure(doc *system.Document, mc ModelConfigureOptions) string {
	lines := []string{
		kv("total_member:", "1"),
		kv("print_esmf:", ".true."),
		kv("PE_MEMBER01:", itoa(doc.TotalProcessors)),
	}
	lines = append(lines, startTimeLines(doc.StartTime)...)
	lines = append(lines,
		kv("nhours_fcst:", itoa(durationHours(doc.Duration))),
		kv("fhrot:", "0"),
		kv("dt_atmos:", itoa(mc.DtAtmos)),
		kv("restart_interval:", itoa(mc.RestartInterval)),
		kv("quilting:", fortranBool(mc.Quilting)),
		kv("quilting_restart:", fortranBool(mc.QuiltingRestart)),
		kv("write_groups:", itoa(mc.WriteGroups)),
		kv("write_tasks_per_group:", itoa(mc.WriteTasksPerGroup)),
		kv("itasks:", itoa(mc.Itasks)),
		kv("output_history:", fortranBool(mc.OutputHistory)),
		kv("imo:", itoa(mc.Imo)),
		kv("jmo:", itoa(mc.Jmo)),
		kv("output_fh:", mc.OutputFH),
	)
	return strings.Join(lines, "\n")
}

// WriteModelConfigure writes the traditional model_configure and, when
// namelist is set, places the atm_namelist.rc alias next to it.
func WriteModelConfigure(doc *system.Document, directory string, namelist bool, opts Options) (string, error) {
	if err := checkDocument(doc); err != nil {
		return "", err
	}
	path, err := writeText(directory, ModelConfigureFileName, RenderModelConfigure(doc, namelist), opts)
	if err != nil {
		return "", err
	}
	if namelist {
		if err := symlinkOrCopy(path, directory, AtmNamelistFileName); err != nil {
			return "", err
		}
	}
	return path, nil
}

// WriteUFSModelConfigure writes the UFS model_configure flavor.
func WriteUFSModelConfigure(doc *system.Document, directory string, mc ModelConfigureOptions, opts Options) (string, error) {
	if err := checkDocument(doc); err != nil {
		return "", err
	}
	return writeText(directory, ModelConfigureFileName, RenderUFSModelConfigure(doc, mc), opts)
}

func startTimeLines(start time.Time) []string {
	return []string{
		kv("start_year:", itoa(start.Year())),
		kv("start_month:", itoa(int(start.Month()))),
		kv("start_day:", itoa(start.Day())),
		kv("start_hour:", itoa(start.Hour())),
		kv("start_minute:", itoa(start.Minute())),
		kv("start_second:", itoa(start.Second())),
	}
}

func kv(key, value string) string {
	return fmt.Sprintf("%-*s%s", keyColumn, key, value)
}

func itoa(i int) string { return fmt.Sprintf("%d", i) }

func fortranBool(b bool) string {
	if b {
		return ".true."
	}
	return ".false."
}

func durationHours(d time.Duration) int {
	return int((d + time.Hour/2) / time.Hour)
}
