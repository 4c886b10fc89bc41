package configfile

import (
	"strings"

	"github.com/san-kum/nemsgen/internal/system"
)

// UFSFileName is the configuration file read by the UFS driver.
const UFSFileName = "ufs.configure"

// RenderUFS produces the ufs.configure text. The UFS dialect differs
// from the traditional one: a banner and ESMF header lead the file, the
// EARTH component list is sorted alphabetically, and the runSeq block is
// flat rather than indented.
func RenderUFS(doc *system.Document) string {
	lines := []string{
		"#############################################",
		"####  NEMS Run-Time Configuration File  #####",
		"#############################################",
		"# ESMF #",
		"logKindFlag:            ESMF_LOGKIND_MULTI",
		"globalResourceControl:  true",
		"# EARTH #",
		"EARTH_component_list: " + strings.Join(doc.SortedComponentList(), " "),
		"EARTH_attributes::",
		indent + "Verbosity = 0",
		"::",
	}

	for _, c := range doc.Components {
		lines = append(lines, "# "+string(c.Role)+" #")
		lines = append(lines, componentBlock(c)...)
		lines = append(lines, "")
	}

	lines = append(lines, "# Run Sequence #")
	lines = append(lines, "runSeq::")
	lines = append(lines, doc.Sequence.Lines("", indent)...)
	lines = append(lines, "::")

	lines = append(lines, attributeBlock("ALLCOMP_attributes", doc.AllComp)...)

	return strings.Join(lines, "\n")
}

// WriteUFS writes ufs.configure into directory.
func WriteUFS(doc *system.Document, directory string, opts Options) (string, error) {
	if err := checkDocument(doc); err != nil {
		return "", err
	}
	return writeText(directory, UFSFileName, RenderUFS(doc), opts)
}
