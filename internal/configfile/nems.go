package configfile

import (
	"strconv"
	"strings"

	"github.com/san-kum/nemsgen/internal/nems"
	"github.com/san-kum/nemsgen/internal/system"
)

// NEMSFileName is the configuration file read by the traditional NEMS driver.
const NEMSFileName = "nems.configure"

const indent = "  "

// RenderNEMS produces the traditional nems.configure text: an EARTH
// section, one block per component in registration order, the indented
// runSeq block, and the ALLCOMP trailer.
func RenderNEMS(doc *system.Document) string {
	var lines []string

	lines = append(lines, "# EARTH #")
	lines = append(lines, "EARTH_component_list: "+strings.Join(doc.ComponentList(), " "))
	lines = append(lines, "EARTH_attributes::")
	lines = append(lines, indent+"Verbosity = off")
	lines = append(lines, "::", "")

	for _, c := range doc.Components {
		lines = append(lines, "# "+string(c.Role)+" #")
		lines = append(lines, componentBlock(c)...)
		lines = append(lines, "")
	}

	lines = append(lines, "# Run Sequence #")
	lines = append(lines, "runSeq::")
	lines = append(lines, doc.Sequence.Lines(indent, indent)...)
	lines = append(lines, "::", "")

	lines = append(lines, attributeBlock("ALLCOMP_attributes", doc.AllComp)...)

	return strings.Join(lines, "\n")
}

// WriteNEMS writes nems.configure into directory.
func WriteNEMS(doc *system.Document, directory string, opts Options) (string, error) {
	if err := checkDocument(doc); err != nil {
		return "", err
	}
	return writeText(directory, NEMSFileName, RenderNEMS(doc), opts)
}

func componentBlock(c system.ComponentBlock) []string {
	prefix := string(c.Role)
	lines := []string{
		prefix + "_model: " + c.Model,
		prefix + "_petlist_bounds: " + c.PetBounds,
		prefix + "_omp_num_threads: " + strconv.Itoa(c.Threads),
	}
	return append(lines, attributeBlock(prefix+"_attributes", c.Attributes)...)
}

func attributeBlock(title string, attrs *nems.Attributes) []string {
	lines := []string{title + "::"}
	for _, key := range attrs.Keys() {
		v, _ := attrs.Get(key)
		lines = append(lines, indent+key+" = "+v.String())
	}
	return append(lines, "::")
}
